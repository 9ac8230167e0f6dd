package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mfranczak/shoal/internal/action"
	"github.com/mfranczak/shoal/internal/torrents"
	"github.com/mfranczak/shoal/internal/transmission"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case torrentsUpdatedMsg:
		if msg.err != nil {
			m.status = "daemon unreachable: " + msg.err.Error()
		} else {
			m.status = ""
		}
		return m, nil

	case statsUpdatedMsg:
		if msg.err != nil && m.status == "" {
			m.status = "daemon unreachable: " + msg.err.Error()
		}
		return m, nil

	case watcherErrMsg:
		m.stack.Push(newErrorPopup(fmt.Errorf("watch directory: %w", msg.err)))
		return m, nil

	case commandDoneMsg:
		return m.handleResult(msg.res)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	// Everything else (cursor blinks, form internals) belongs to whoever
	// is reading raw input.
	if top, ok := m.stack.Active(); ok {
		if f, ok := top.(keyForwarder); ok {
			closed, cmd := f.Forward(msg)
			if closed {
				m.stack.Pop()
			}
			return m, cmd
		}
		return m, nil
	}
	if m.filtering {
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ev, ok := eventFromKey(msg)
	if !ok {
		return m, nil
	}
	if ev.Kind == action.EventQuit {
		m.quitting = true
		return m, tea.Quit
	}
	act, ok := m.resolver.Resolve(m.mode(), ev)
	if !ok {
		return m, nil
	}
	if act.Kind == action.KindInput {
		return m.handleInput(msg)
	}
	return m.dispatch(act)
}

// handleInput feeds a raw key to the active text consumer. Esc always
// backs out; enter and tab commit the filter and return focus to the
// table.
func (m Model) handleInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if top, ok := m.stack.Active(); ok {
		f, forwards := top.(keyForwarder)
		if !forwards {
			return m, nil
		}
		if msg.Type == tea.KeyEsc {
			m.stack.Pop()
			return m, nil
		}
		closed, cmd := f.Forward(msg)
		if closed {
			m.stack.Pop()
		}
		return m, cmd
	}

	if !m.filtering {
		return m, nil
	}
	switch msg.Type {
	case tea.KeyEsc:
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.table.SetFilter("")
		return m, nil
	case tea.KeyEnter, tea.KeyTab:
		m.filtering = false
		m.filter.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.table.SetFilter(m.filter.Value())
	return m, cmd
}

func (m Model) dispatch(act action.Action) (tea.Model, tea.Cmd) {
	// An open popup swallows every action; its close request becomes a
	// plain render inside the stack.
	if _, ok := m.stack.Active(); ok {
		m.stack.Handle(act)
		return m, nil
	}

	switch act.Kind {
	case action.KindQuit:
		m.quitting = true
		return m, tea.Quit

	case action.KindSoftQuit:
		if m.table.Filter() != "" {
			m.filter.SetValue("")
			m.table.SetFilter("")
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case action.KindUp:
		m.table.SelectPrev()
	case action.KindDown:
		m.table.SelectNext()
	case action.KindHome:
		m.table.SelectFirst()
	case action.KindEnd:
		m.table.SelectLast()
	case action.KindScrollPageUp:
		m.table.PageBy(-m.pageSize())
	case action.KindScrollPageDown:
		m.table.PageBy(m.pageSize())

	case action.KindSearch:
		return m.startFiltering()
	case action.KindChangeTab:
		if act.Tab == tabSearch {
			return m.startFiltering()
		}

	case action.KindShowHelp:
		m.stack.Push(newHelpPopup(m.registry))
	case action.KindShowStats:
		m.stack.Push(newStatsPopup(m.stats))
	case action.KindShowFiles:
		if cur, ok := m.table.Current(); ok {
			m.mgr.Issue(m.ctx, torrents.Command{
				Kind: torrents.CmdFetchFiles,
				IDs:  []int64{cur.ID},
				Name: cur.Name,
			})
		}

	case action.KindPause, action.KindSpace:
		if cur, ok := m.table.Current(); ok {
			m.mgr.TogglePause(m.ctx, cur)
		}

	case action.KindDeleteWithoutFiles:
		return m.confirmRemove(false)
	case action.KindDeleteWithFiles:
		return m.confirmRemove(true)

	case action.KindAddMagnet:
		popup := newAddMagnetPopup(func(uri, dir string) {
			m.mgr.Issue(m.ctx, torrents.Command{
				Kind: torrents.CmdAdd,
				Add:  transmission.AddRequest{URI: uri, DownloadDir: dir},
			})
		})
		m.stack.Push(popup)
		return m, popup.Init()

	case action.KindCopyMagnet:
		if cur, ok := m.table.Current(); ok {
			if err := m.copyFn(cur.MagnetLink); err != nil {
				m.stack.Push(newErrorPopup(fmt.Errorf("clipboard: %w", err)))
			} else {
				m.status = "magnet link copied"
			}
		}
	}
	return m, nil
}

func (m Model) startFiltering() (tea.Model, tea.Cmd) {
	m.filtering = true
	return m, m.filter.Focus()
}

func (m Model) confirmRemove(deleteData bool) (tea.Model, tea.Cmd) {
	cur, ok := m.table.Current()
	if !ok {
		return m, nil
	}
	prompt := fmt.Sprintf("Remove %q from the list?", cur.Name)
	if deleteData {
		prompt = fmt.Sprintf("Remove %q and delete its data from disk?", cur.Name)
	}
	id := cur.ID
	m.stack.Push(newConfirmPopup(prompt, func() {
		m.mgr.Issue(m.ctx, torrents.Command{
			Kind:       torrents.CmdRemove,
			IDs:        []int64{id},
			DeleteData: deleteData,
		})
	}))
	return m, nil
}

func (m Model) handleResult(res torrents.Result) (tea.Model, tea.Cmd) {
	if res.Err != nil {
		m.stack.Push(newErrorPopup(fmt.Errorf("%s: %w", res.Cmd.Kind, res.Err)))
		return m, nil
	}
	if res.Cmd.Kind == torrents.CmdFetchFiles {
		m.stack.Push(newFilesPopup(res.Cmd.Name, res.Files))
	}
	return m, nil
}

func (m Model) pageSize() int {
	if n := m.height - 6; n > 1 {
		return n
	}
	return 1
}
