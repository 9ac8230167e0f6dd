package action

import (
	"testing"

	"github.com/mfranczak/shoal/internal/keys"
)

func chord(r rune) keys.Chord {
	return keys.Chord{Key: keys.Char(r)}
}

func TestResolve_SystemEvents(t *testing.T) {
	r := NewResolver(nil)

	for _, mode := range []Mode{ModeNormal, ModeInput} {
		if a, ok := r.Resolve(mode, Event{Kind: EventQuit}); !ok || a != Quit {
			t.Fatalf("quit event in mode %v = %+v, %v", mode, a, ok)
		}
		if a, ok := r.Resolve(mode, Event{Kind: EventRender}); !ok || !a.IsRender() {
			t.Fatalf("render event in mode %v = %+v, %v", mode, a, ok)
		}
	}
}

func TestResolve_InputModeForwardsVerbatim(t *testing.T) {
	r := NewResolver(map[keys.Chord]Action{chord('q'): Quit})

	// Even a bound chord is forwarded while in input mode.
	a, ok := r.Resolve(ModeInput, KeyEvent(chord('q')))
	if !ok || a.Kind != KindInput {
		t.Fatalf("Resolve = %+v, %v, want input action", a, ok)
	}
	if a.Key != chord('q') {
		t.Fatalf("forwarded chord = %+v", a.Key)
	}
}

func TestResolve_NormalModeLookup(t *testing.T) {
	r := NewResolver(map[keys.Chord]Action{
		chord('j'): Down,
		chord('d'): DeleteWithoutFiles,
	})

	if a, ok := r.Resolve(ModeNormal, KeyEvent(chord('j'))); !ok || a != Down {
		t.Fatalf("j = %+v, %v", a, ok)
	}
	if a, ok := r.Resolve(ModeNormal, KeyEvent(chord('d'))); !ok || a != DeleteWithoutFiles {
		t.Fatalf("d = %+v, %v", a, ok)
	}
}

func TestResolve_UserBindingOverridesFallback(t *testing.T) {
	r := NewResolver(map[keys.Chord]Action{
		{Key: keys.Named(keys.KindEnter)}: ShowStats,
	})

	a, ok := r.Resolve(ModeNormal, KeyEvent(keys.Chord{Key: keys.Named(keys.KindEnter)}))
	if !ok || a != ShowStats {
		t.Fatalf("enter = %+v, %v, want user override", a, ok)
	}
}

func TestResolve_FallbackBindings(t *testing.T) {
	r := NewResolver(nil)

	tests := []struct {
		chord keys.Chord
		want  Action
	}{
		{keys.Chord{Key: keys.Named(keys.KindTab)}, ChangeFocus},
		{keys.Chord{Key: keys.Named(keys.KindEnter)}, Confirm},
		{keys.Chord{Key: keys.Named(keys.KindUp)}, Up},
		{keys.Chord{Key: keys.Named(keys.KindDown)}, Down},
		{chord(' '), Space},
		{chord('1'), ChangeTab(1)},
		{chord('9'), ChangeTab(9)},
	}
	for _, tt := range tests {
		a, ok := r.Resolve(ModeNormal, KeyEvent(tt.chord))
		if !ok || a != tt.want {
			t.Errorf("Resolve(%s) = %+v, %v, want %+v", tt.chord, a, ok, tt.want)
		}
	}
}

func TestResolve_MissIsSilentlyDropped(t *testing.T) {
	r := NewResolver(nil)

	if a, ok := r.Resolve(ModeNormal, KeyEvent(chord('z'))); ok {
		t.Fatalf("unbound chord resolved to %+v", a)
	}
	ctrlTab := keys.Chord{Key: keys.Named(keys.KindTab), Modifier: keys.ModCtrl}
	if a, ok := r.Resolve(ModeNormal, KeyEvent(ctrlTab)); ok {
		t.Fatalf("modified fallback chord resolved to %+v", a)
	}
}
