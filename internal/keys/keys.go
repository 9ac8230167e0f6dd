package keys

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidKeySpec is returned when a token looks like a function key
	// but its index does not parse as an unsigned 8-bit integer.
	ErrInvalidKeySpec = errors.New("invalid key spec")

	// ErrUnknownKeyToken is returned for literal tokens outside the
	// supported named-key set.
	ErrUnknownKeyToken = errors.New("unknown key token")
)

// Kind discriminates the key variants a chord can carry.
type Kind int

const (
	KindChar Kind = iota
	KindEnter
	KindEsc
	KindUp
	KindDown
	KindLeft
	KindRight
	KindHome
	KindEnd
	KindPageUp
	KindPageDown
	KindTab
	KindBackspace
	KindDelete
	KindFn
)

// Key is a single physical key: a character, a named key, or a function
// key with its index. Exactly one variant is populated.
type Key struct {
	Kind Kind
	Rune rune  // set for KindChar
	Fn   uint8 // set for KindFn
}

// Char returns a character key.
func Char(r rune) Key { return Key{Kind: KindChar, Rune: r} }

// Fn returns a function key with the given index.
func Fn(n uint8) Key { return Key{Kind: KindFn, Fn: n} }

// Named returns a named key for the given kind.
func Named(k Kind) Key { return Key{Kind: k} }

var namedTokens = map[string]Kind{
	"enter":     KindEnter,
	"esc":       KindEsc,
	"up":        KindUp,
	"down":      KindDown,
	"left":      KindLeft,
	"right":     KindRight,
	"home":      KindHome,
	"end":       KindEnd,
	"pageup":    KindPageUp,
	"pagedown":  KindPageDown,
	"tab":       KindTab,
	"backspace": KindBackspace,
	"delete":    KindDelete,
}

// ParseToken converts a keymap token into a Key.
//
// A single-character token is a character key. "F" followed by one or two
// digits is a function key. Everything else must be one of the named-key
// literals, matched case-insensitively.
func ParseToken(token string) (Key, error) {
	if len([]rune(token)) == 1 {
		return Char([]rune(token)[0]), nil
	}
	if strings.HasPrefix(token, "F") && (len(token) == 2 || len(token) == 3) {
		n, err := strconv.ParseUint(token[1:], 10, 8)
		if err != nil {
			return Key{}, fmt.Errorf("%w: %q", ErrInvalidKeySpec, token)
		}
		return Fn(uint8(n)), nil
	}
	if kind, ok := namedTokens[strings.ToLower(token)]; ok {
		return Named(kind), nil
	}
	return Key{}, fmt.Errorf("%w: %q", ErrUnknownKeyToken, token)
}

// String renders the key for help legends. Arrow keys render as glyphs.
func (k Key) String() string {
	switch k.Kind {
	case KindChar:
		return string(k.Rune)
	case KindEnter:
		return "Enter"
	case KindEsc:
		return "Esc"
	case KindUp:
		return "↑"
	case KindDown:
		return "↓"
	case KindLeft:
		return "←"
	case KindRight:
		return "→"
	case KindHome:
		return "Home"
	case KindEnd:
		return "End"
	case KindPageUp:
		return "PageUp"
	case KindPageDown:
		return "PageDown"
	case KindTab:
		return "Tab"
	case KindBackspace:
		return "Backspace"
	case KindDelete:
		return "Delete"
	case KindFn:
		return fmt.Sprintf("F%d", k.Fn)
	}
	return ""
}

// Modifier is the modifier half of a chord.
type Modifier int

const (
	ModNone Modifier = iota
	ModCtrl
	ModShift
)

// ParseModifier converts a keymap modifier value into a Modifier.
func ParseModifier(s string) (Modifier, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return ModNone, nil
	case "ctrl":
		return ModCtrl, nil
	case "shift":
		return ModShift, nil
	}
	return ModNone, fmt.Errorf("unknown modifier %q", s)
}

func (m Modifier) String() string {
	switch m {
	case ModCtrl:
		return "CTRL"
	case ModShift:
		return "SHIFT"
	}
	return ""
}

// Chord is the atomic unit a user can bind: one key plus one modifier.
// Chords are comparable and used directly as map keys.
type Chord struct {
	Key      Key
	Modifier Modifier
}

// String renders the chord as "MODIFIER-KEY", or just "KEY" when the
// modifier is none.
func (c Chord) String() string {
	if c.Modifier == ModNone {
		return c.Key.String()
	}
	return c.Modifier.String() + "-" + c.Key.String()
}
