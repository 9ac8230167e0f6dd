package config

import (
	"errors"
	"testing"

	"github.com/mfranczak/shoal/internal/keys"
)

func TestParseKeymap_Basic(t *testing.T) {
	doc := `
general:
  keybindings:
    - on: q
      action: Quit
    - on: down
      modifier: ctrl
      action: ScrollPageDown
torrents_tab:
  keybindings:
    - on: F5
      action: Pause
`
	km, err := ParseKeymap([]byte(doc))
	if err != nil {
		t.Fatalf("ParseKeymap error: %v", err)
	}

	if n := len(km.General.Keybindings); n != 2 {
		t.Fatalf("general bindings = %d, want 2", n)
	}
	first := km.General.Keybindings[0]
	if first.Chord != (keys.Chord{Key: keys.Char('q')}) || first.Action != GeneralQuit {
		t.Fatalf("first binding = %+v", first)
	}
	second := km.General.Keybindings[1]
	if second.Chord.Modifier != keys.ModCtrl || second.Chord.Key.Kind != keys.KindDown {
		t.Fatalf("second binding = %+v", second)
	}

	tb := km.TorrentsTab.Keybindings[0]
	if tb.Chord.Key != keys.Fn(5) || tb.Action != TorrentsPause {
		t.Fatalf("torrents binding = %+v", tb)
	}
}

func TestParseKeymap_DuplicateField(t *testing.T) {
	doc := `
general:
  keybindings:
    - on: q
      on: w
      action: Quit
`
	_, err := ParseKeymap([]byte(doc))
	var dup DuplicateFieldError
	if !errors.As(err, &dup) || dup.Field != "on" {
		t.Fatalf("error = %v, want DuplicateFieldError{on}", err)
	}
}

func TestParseKeymap_MissingFields(t *testing.T) {
	tests := []struct {
		doc   string
		field string
	}{
		{"general:\n  keybindings:\n    - action: Quit\n", "on"},
		{"general:\n  keybindings:\n    - on: q\n", "action"},
	}
	for _, tt := range tests {
		_, err := ParseKeymap([]byte(tt.doc))
		var missing MissingFieldError
		if !errors.As(err, &missing) || missing.Field != tt.field {
			t.Errorf("error = %v, want MissingFieldError{%s}", err, tt.field)
		}
	}
}

func TestParseKeymap_UnknownAction(t *testing.T) {
	doc := `
torrents_tab:
  keybindings:
    - on: x
      action: Defragment
`
	_, err := ParseKeymap([]byte(doc))
	var unknown UnknownActionError
	if !errors.As(err, &unknown) {
		t.Fatalf("error = %v, want UnknownActionError", err)
	}
	if unknown.Context != "torrents_tab" || unknown.Name != "Defragment" {
		t.Fatalf("UnknownActionError = %+v", unknown)
	}
}

func TestParseKeymap_ActionFromWrongContext(t *testing.T) {
	// AddMagnet belongs to the torrents_tab catalog only.
	doc := `
general:
  keybindings:
    - on: a
      action: AddMagnet
`
	_, err := ParseKeymap([]byte(doc))
	var unknown UnknownActionError
	if !errors.As(err, &unknown) || unknown.Context != "general" {
		t.Fatalf("error = %v, want UnknownActionError in general", err)
	}
}

func TestParseKeymap_InvalidKeyTokens(t *testing.T) {
	doc := `
general:
  keybindings:
    - on: Fzz
      action: Quit
`
	_, err := ParseKeymap([]byte(doc))
	if !errors.Is(err, keys.ErrInvalidKeySpec) {
		t.Fatalf("error = %v, want ErrInvalidKeySpec", err)
	}

	doc = `
general:
  keybindings:
    - on: meta
      action: Quit
`
	_, err = ParseKeymap([]byte(doc))
	if !errors.Is(err, keys.ErrUnknownKeyToken) {
		t.Fatalf("error = %v, want ErrUnknownKeyToken", err)
	}
}

func TestParseKeymap_UnknownField(t *testing.T) {
	doc := `
general:
  keybindings:
    - on: q
      action: Quit
      when: always
`
	_, err := ParseKeymap([]byte(doc))
	var unknown UnknownFieldError
	if !errors.As(err, &unknown) || unknown.Field != "when" {
		t.Fatalf("error = %v, want UnknownFieldError{when}", err)
	}
}

func TestDefaultKeymapParses(t *testing.T) {
	r, err := BuildRegistry([]byte(DefaultKeymapYAML))
	if err != nil {
		t.Fatalf("default keymap does not build: %v", err)
	}
	if len(r.Compiled()) == 0 {
		t.Fatal("default keymap compiled to an empty map")
	}
}
