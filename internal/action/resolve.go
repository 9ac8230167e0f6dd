package action

import "github.com/mfranczak/shoal/internal/keys"

// Mode is the input mode supplied by the caller on every resolution.
// In input mode key events are forwarded verbatim to the focused text
// consumer instead of being looked up as bindings.
type Mode int

const (
	ModeNormal Mode = iota
	ModeInput
)

// EventKind discriminates the events the resolver accepts.
type EventKind int

const (
	EventKey EventKind = iota
	EventQuit
	EventRender
)

// Event is a raw input or system event, already decoupled from the
// terminal backend.
type Event struct {
	Kind EventKind
	Key  keys.Chord
}

// KeyEvent wraps a chord as a key event.
func KeyEvent(c keys.Chord) Event { return Event{Kind: EventKey, Key: c} }

// Resolver turns events into actions. It is stateless: the active mode is
// passed in on each call. User bindings take precedence over the fixed
// fallback table; a miss on both yields no action.
type Resolver struct {
	bindings map[keys.Chord]Action
}

// NewResolver builds a resolver over a compiled binding map. A nil map is
// valid and leaves only the fallback bindings.
func NewResolver(bindings map[keys.Chord]Action) *Resolver {
	return &Resolver{bindings: bindings}
}

// Resolve maps an event to at most one action.
func (r *Resolver) Resolve(mode Mode, ev Event) (Action, bool) {
	switch ev.Kind {
	case EventQuit:
		return Quit, true
	case EventRender:
		return Render, true
	case EventKey:
		if mode == ModeInput {
			return Input(ev.Key), true
		}
		if a, ok := r.bindings[ev.Key]; ok {
			return a, true
		}
		return fallback(ev.Key)
	}
	return Nothing, false
}

// fallback holds the fixed, non-configurable bindings for canonical
// navigation: digits switch tabs, enter confirms, tab changes focus, and
// the arrow keys always move.
func fallback(c keys.Chord) (Action, bool) {
	if c.Modifier != keys.ModNone {
		return Nothing, false
	}
	switch c.Key.Kind {
	case keys.KindTab:
		return ChangeFocus, true
	case keys.KindEnter:
		return Confirm, true
	case keys.KindUp:
		return Up, true
	case keys.KindDown:
		return Down, true
	case keys.KindLeft:
		return Left, true
	case keys.KindRight:
		return Right, true
	case keys.KindChar:
		switch r := c.Key.Rune; {
		case r == ' ':
			return Space, true
		case r >= '1' && r <= '9':
			return ChangeTab(int(r - '0')), true
		}
	}
	return Nothing, false
}
