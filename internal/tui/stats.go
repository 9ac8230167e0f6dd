package tui

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/mfranczak/shoal/internal/action"
	"github.com/mfranczak/shoal/internal/torrents"
	"github.com/mfranczak/shoal/internal/ui"
)

// statsPopup shows the daemon-wide session statistics. It reads from the
// shared cell on every render, so the numbers keep updating while the
// popup is open.
type statsPopup struct {
	cell *torrents.StatsCell
}

func newStatsPopup(cell *torrents.StatsCell) *statsPopup {
	return &statsPopup{cell: cell}
}

func (p *statsPopup) Handle(a action.Action) action.Action {
	switch a.Kind {
	case action.KindQuit, action.KindSoftQuit, action.KindConfirm, action.KindShowStats:
		return action.Quit
	}
	return action.Nothing
}

func (p *statsPopup) Frame() ui.PopupFrame {
	return ui.DefaultPopupFrame()
}

func (p *statsPopup) View(width, height int) string {
	stats, ok := p.cell.Get()
	if !ok {
		return ui.TitleStyle.Render("Session statistics") + "\n\n" +
			ui.SubtleStyle.Render("waiting for the daemon...")
	}

	row := func(label, value string) string {
		return fmt.Sprintf("  %s %s",
			ui.SubtleStyle.Render(fmt.Sprintf("%-14s", label)),
			ui.TextStyle.Render(value))
	}

	return ui.TitleStyle.Render("Session statistics") + "\n\n" +
		row("Download", humanize.Bytes(uint64(stats.DownloadSpeed))+"/s") + "\n" +
		row("Upload", humanize.Bytes(uint64(stats.UploadSpeed))+"/s") + "\n" +
		row("Torrents", fmt.Sprintf("%d (%d active, %d paused)",
			stats.TorrentCount, stats.ActiveCount, stats.PausedCount)) + "\n\n" +
		row("Downloaded", humanize.Bytes(uint64(stats.Cumulative.DownloadedBytes))) + "\n" +
		row("Uploaded", humanize.Bytes(uint64(stats.Cumulative.UploadedBytes)))
}
