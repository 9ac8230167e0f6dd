package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mfranczak/shoal/internal/action"
	"github.com/mfranczak/shoal/internal/keys"
)

func TestEventFromKey(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want keys.Chord
	}{
		{
			name: "plain rune",
			msg:  tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}},
			want: keys.Chord{Key: keys.Char('j')},
		},
		{
			name: "uppercase rune carries no modifier",
			msg:  tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'D'}},
			want: keys.Chord{Key: keys.Char('D')},
		},
		{
			name: "arrow key",
			msg:  tea.KeyMsg{Type: tea.KeyUp},
			want: keys.Chord{Key: keys.Named(keys.KindUp)},
		},
		{
			name: "page up",
			msg:  tea.KeyMsg{Type: tea.KeyPgUp},
			want: keys.Chord{Key: keys.Named(keys.KindPageUp)},
		},
		{
			name: "enter",
			msg:  tea.KeyMsg{Type: tea.KeyEnter},
			want: keys.Chord{Key: keys.Named(keys.KindEnter)},
		},
		{
			name: "ctrl chord",
			msg:  tea.KeyMsg{Type: tea.KeyCtrlDown},
			want: keys.Chord{Key: keys.Named(keys.KindDown), Modifier: keys.ModCtrl},
		},
		{
			name: "shift chord",
			msg:  tea.KeyMsg{Type: tea.KeyShiftUp},
			want: keys.Chord{Key: keys.Named(keys.KindUp), Modifier: keys.ModShift},
		},
		{
			name: "function key",
			msg:  tea.KeyMsg{Type: tea.KeyF5},
			want: keys.Chord{Key: keys.Fn(5)},
		},
		{
			name: "space",
			msg:  tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}},
			want: keys.Chord{Key: keys.Char(' ')},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, ok := eventFromKey(tt.msg)
			if !ok {
				t.Fatalf("eventFromKey(%q) not translated", tt.msg.String())
			}
			if ev.Kind != action.EventKey {
				t.Fatalf("kind = %v, want key event", ev.Kind)
			}
			if ev.Key != tt.want {
				t.Errorf("chord = %+v, want %+v", ev.Key, tt.want)
			}
		})
	}
}

func TestEventFromKey_CtrlCIsAlwaysQuit(t *testing.T) {
	ev, ok := eventFromKey(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !ok || ev.Kind != action.EventQuit {
		t.Fatalf("ctrl+c = %+v, %v, want quit event", ev, ok)
	}
}

func TestEventFromKey_DropsUnrepresentable(t *testing.T) {
	alt := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true}
	if _, ok := eventFromKey(alt); ok {
		t.Error("alt chord should not translate")
	}
}
