package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mfranczak/shoal/internal/config"
	"github.com/mfranczak/shoal/internal/torrents"
	"github.com/mfranczak/shoal/internal/transmission"
)

// Run connects to the daemon and drives the TUI until the user quits or
// the context is cancelled.
func Run(ctx context.Context, settings *config.Settings, registry *config.Registry) error {
	client := transmission.NewHTTPClient(settings.URL, settings.Username, settings.Password)
	return runWith(ctx, settings, registry, client)
}

func runWith(ctx context.Context, settings *config.Settings, registry *config.Registry, client transmission.Client) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	table := torrents.NewTable()
	stats := &torrents.StatsCell{}
	mgr := torrents.NewManager(client, table)

	m := NewModel(ctx, settings, registry, table, stats, mgr)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	go torrents.PollTorrents(ctx, client, table, settings.Interval(), func(err error) {
		p.Send(torrentsUpdatedMsg{err: err})
	})
	go torrents.PollStats(ctx, client, stats, settings.Interval(), func(err error) {
		p.Send(statsUpdatedMsg{err: err})
	})
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case res := <-mgr.Results():
				p.Send(commandDoneMsg{res: res})
			}
		}
	}()
	if settings.WatchDir != "" {
		go func() {
			if err := torrents.WatchDir(ctx, settings.WatchDir, mgr, func(err error) {
				p.Send(watcherErrMsg{err: err})
			}); err != nil {
				p.Send(watcherErrMsg{err: err})
			}
		}()
	}

	_, err := p.Run()
	return err
}
