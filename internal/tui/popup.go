package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mfranczak/shoal/internal/action"
	"github.com/mfranczak/shoal/internal/ui"
)

// Popup is a modal component layered over the main view. While a popup is
// open it receives every resolved action; the main view sees none of them.
// A popup signals that it wants to close by returning action.Quit from
// Handle; the stack absorbs that and turns it into a render request, so a
// quit never leaks out of a popup to terminate the program.
type Popup interface {
	Handle(a action.Action) action.Action
	View(width, height int) string
	Frame() ui.PopupFrame
}

// keyForwarder is implemented by popups that host text entry and need raw
// terminal messages in addition to resolved actions.
type keyForwarder interface {
	Forward(msg tea.Msg) (closed bool, cmd tea.Cmd)
}

// Stack manages the open popups. Only the top popup is visible and
// receives input.
type Stack struct {
	popups []Popup
}

// Push opens a popup on top of the stack.
func (s *Stack) Push(p Popup) {
	s.popups = append(s.popups, p)
}

// Pop closes the top popup.
func (s *Stack) Pop() {
	if n := len(s.popups); n > 0 {
		s.popups = s.popups[:n-1]
	}
}

// Active returns the top popup.
func (s *Stack) Active() (Popup, bool) {
	if n := len(s.popups); n > 0 {
		return s.popups[n-1], true
	}
	return nil, false
}

// Handle routes an action to the top popup. The popup's close request is
// translated into a render request here; every other return value passes
// through untouched.
func (s *Stack) Handle(a action.Action) action.Action {
	top, ok := s.Active()
	if !ok {
		return action.Nothing
	}
	out := top.Handle(a)
	if out == action.Quit {
		s.Pop()
		return action.Render
	}
	return out
}

// WantsInput reports whether the top popup consumes raw key input.
func (s *Stack) WantsInput() bool {
	top, ok := s.Active()
	if !ok {
		return false
	}
	_, forwards := top.(keyForwarder)
	return forwards
}
