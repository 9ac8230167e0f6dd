package tui

import (
	"github.com/mfranczak/shoal/internal/action"
	"github.com/mfranczak/shoal/internal/ui"
)

// confirmPopup guards a destructive operation behind an explicit yes.
// Enter runs the operation; esc or q dismisses.
type confirmPopup struct {
	prompt    string
	onConfirm func()
}

func newConfirmPopup(prompt string, onConfirm func()) *confirmPopup {
	return &confirmPopup{prompt: prompt, onConfirm: onConfirm}
}

func (p *confirmPopup) Handle(a action.Action) action.Action {
	switch a.Kind {
	case action.KindConfirm:
		p.onConfirm()
		return action.Quit
	case action.KindQuit, action.KindSoftQuit:
		return action.Quit
	}
	return action.Nothing
}

func (p *confirmPopup) Frame() ui.PopupFrame {
	return ui.DangerPopupFrame()
}

func (p *confirmPopup) View(width, height int) string {
	return ui.WarningStyle.Render("Confirm") + "\n\n" +
		ui.TextStyle.Render(wrapText(p.prompt, width-10)) + "\n\n" +
		ui.SubtleStyle.Render("enter: yes    esc: no")
}
