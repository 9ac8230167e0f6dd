package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/mfranczak/shoal/internal/action"
	"github.com/mfranczak/shoal/internal/ui"
)

// messagePopup shows a title and a short body, closing on any confirm or
// dismiss key. Used for surfacing daemon and watcher errors.
type messagePopup struct {
	title string
	body  string
	frame ui.PopupFrame
}

func newErrorPopup(err error) *messagePopup {
	return &messagePopup{
		title: "Error",
		body:  err.Error(),
		frame: ui.DangerPopupFrame(),
	}
}

func (p *messagePopup) Handle(a action.Action) action.Action {
	switch a.Kind {
	case action.KindQuit, action.KindSoftQuit, action.KindConfirm, action.KindSpace:
		return action.Quit
	}
	return action.Nothing
}

func (p *messagePopup) Frame() ui.PopupFrame {
	return p.frame
}

func (p *messagePopup) View(width, height int) string {
	style := ui.TitleStyle
	if p.frame.BorderColor == ui.ErrorColor {
		style = ui.ErrorStyle
	}
	body := wrapText(p.body, width-10)
	return style.Render(p.title) + "\n\n" +
		ui.TextStyle.Render(body) + "\n\n" +
		ui.SubtleStyle.Render("press enter to dismiss")
}

// wrapText folds a string at word boundaries to the given width.
func wrapText(s string, width int) string {
	if width < 20 {
		width = 20
	}
	var b strings.Builder
	line := 0
	for _, word := range strings.Fields(s) {
		w := runewidth.StringWidth(word)
		if line > 0 && line+1+w > width {
			b.WriteByte('\n')
			line = 0
		} else if line > 0 {
			b.WriteByte(' ')
			line++
		}
		b.WriteString(word)
		line += w
	}
	return b.String()
}
