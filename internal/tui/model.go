package tui

import (
	"context"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mfranczak/shoal/internal/action"
	"github.com/mfranczak/shoal/internal/config"
	"github.com/mfranczak/shoal/internal/torrents"
	"github.com/mfranczak/shoal/internal/ui"
)

// Messages delivered from the background loops via program.Send.
type (
	torrentsUpdatedMsg struct{ err error }
	statsUpdatedMsg    struct{ err error }
	commandDoneMsg     struct{ res torrents.Result }
	watcherErrMsg      struct{ err error }
)

// Tab numbers reachable through the digit keys.
const (
	tabTorrents = 1
	tabSearch   = 2
)

// Model is the Bubbletea model for the main view: the torrent table with
// a stats header, a filter line, and a popup stack on top.
type Model struct {
	ctx      context.Context
	resolver *action.Resolver
	registry *config.Registry
	settings *config.Settings
	table    *torrents.Table
	stats    *torrents.StatsCell
	mgr      *torrents.Manager
	stack    *Stack

	filter    textinput.Model
	filtering bool
	spin      spinner.Model

	// copyFn is swapped out in tests; the default writes to the system
	// clipboard.
	copyFn func(string) error

	width    int
	height   int
	status   string
	quitting bool
}

// NewModel assembles the main view over shared state owned by the caller.
func NewModel(ctx context.Context, settings *config.Settings, registry *config.Registry, table *torrents.Table, stats *torrents.StatsCell, mgr *torrents.Manager) Model {
	filter := textinput.New()
	filter.Placeholder = "filter torrents"
	filter.Prompt = "/ "

	spin := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(ui.TitleStyle),
	)

	return Model{
		ctx:      ctx,
		resolver: action.NewResolver(registry.Compiled()),
		registry: registry,
		settings: settings,
		table:    table,
		stats:    stats,
		mgr:      mgr,
		stack:    &Stack{},
		filter:   filter,
		spin:     spin,
		copyFn:   clipboard.WriteAll,
		width:    80,
		height:   24,
	}
}

func (m Model) Init() tea.Cmd {
	return m.spin.Tick
}

// mode reports the resolver mode for the next key event: input while a
// form popup or the filter line owns the keyboard, normal otherwise.
func (m Model) mode() action.Mode {
	if m.stack.WantsInput() || m.filtering {
		return action.ModeInput
	}
	return action.ModeNormal
}
