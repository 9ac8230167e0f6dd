package tui

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mfranczak/shoal/internal/action"
	"github.com/mfranczak/shoal/internal/keys"
)

// teaKeyNames maps bubbletea's key names onto chord kinds. Only keys the
// keymap can express are listed; anything else is dropped.
var teaKeyNames = map[string]keys.Kind{
	"enter":     keys.KindEnter,
	"esc":       keys.KindEsc,
	"up":        keys.KindUp,
	"down":      keys.KindDown,
	"left":      keys.KindLeft,
	"right":     keys.KindRight,
	"home":      keys.KindHome,
	"end":       keys.KindEnd,
	"pgup":      keys.KindPageUp,
	"pgdown":    keys.KindPageDown,
	"tab":       keys.KindTab,
	"backspace": keys.KindBackspace,
	"delete":    keys.KindDelete,
}

// eventFromKey translates a terminal key message into a resolver event.
// Ctrl-C is always a quit event so a broken keymap can never lock the
// user in. Unrepresentable keys (alt chords, unknown names) return false.
func eventFromKey(msg tea.KeyMsg) (action.Event, bool) {
	if msg.Type == tea.KeyCtrlC {
		return action.Event{Kind: action.EventQuit}, true
	}

	name := msg.String()
	mod := keys.ModNone
	if rest, ok := strings.CutPrefix(name, "ctrl+"); ok {
		mod = keys.ModCtrl
		name = rest
	} else if rest, ok := strings.CutPrefix(name, "shift+"); ok {
		mod = keys.ModShift
		name = rest
	}
	if strings.Contains(name, "+") {
		return action.Event{}, false
	}

	if kind, ok := teaKeyNames[name]; ok {
		return action.KeyEvent(keys.Chord{Key: keys.Named(kind), Modifier: mod}), true
	}
	if rest, ok := strings.CutPrefix(name, "f"); ok && len(rest) > 0 && len(rest) <= 2 {
		if n, err := strconv.ParseUint(rest, 10, 8); err == nil {
			return action.KeyEvent(keys.Chord{Key: keys.Fn(uint8(n)), Modifier: mod}), true
		}
	}
	if runes := []rune(name); len(runes) == 1 {
		return action.KeyEvent(keys.Chord{Key: keys.Char(runes[0]), Modifier: mod}), true
	}
	return action.Event{}, false
}
