package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/mfranczak/shoal/internal/action"
	"github.com/mfranczak/shoal/internal/ui"
)

// addMagnetPopup hosts the add-torrent form. It implements keyForwarder:
// raw key messages go straight to the form so text entry, completion and
// field navigation behave exactly as the form library intends.
type addMagnetPopup struct {
	form     *huh.Form
	uri      string
	dir      string
	onSubmit func(uri, dir string)
}

func newAddMagnetPopup(onSubmit func(uri, dir string)) *addMagnetPopup {
	p := &addMagnetPopup{onSubmit: onSubmit}
	p.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Magnet link or torrent URL").
				Placeholder("magnet:?xt=urn:btih:...").
				Value(&p.uri),
			huh.NewInput().
				Title("Download directory").
				Placeholder("daemon default").
				Value(&p.dir),
		),
	).WithShowHelp(false).WithWidth(60)
	return p
}

// Init starts the form; the returned command must reach the program.
func (p *addMagnetPopup) Init() tea.Cmd {
	return p.form.Init()
}

func (p *addMagnetPopup) Forward(msg tea.Msg) (bool, tea.Cmd) {
	model, cmd := p.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		p.form = f
	}
	switch p.form.State {
	case huh.StateCompleted:
		if uri := strings.TrimSpace(p.uri); uri != "" {
			p.onSubmit(uri, strings.TrimSpace(p.dir))
		}
		return true, cmd
	case huh.StateAborted:
		return true, cmd
	}
	return false, cmd
}

func (p *addMagnetPopup) Handle(a action.Action) action.Action {
	if a.Kind == action.KindQuit || a.Kind == action.KindSoftQuit {
		return action.Quit
	}
	return action.Nothing
}

func (p *addMagnetPopup) Frame() ui.PopupFrame {
	return ui.DefaultPopupFrame()
}

func (p *addMagnetPopup) View(width, height int) string {
	return ui.TitleStyle.Render("Add torrent") + "\n\n" + p.form.View()
}
