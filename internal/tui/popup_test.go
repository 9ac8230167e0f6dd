package tui

import (
	"errors"
	"strings"
	"testing"

	"github.com/mfranczak/shoal/internal/action"
	"github.com/mfranczak/shoal/internal/config"
	"github.com/mfranczak/shoal/internal/ui"
)

// recordingPopup scripts its Handle return and records what it saw.
type recordingPopup struct {
	seen []action.Action
	out  action.Action
}

func (p *recordingPopup) Handle(a action.Action) action.Action {
	p.seen = append(p.seen, a)
	return p.out
}

func (p *recordingPopup) View(width, height int) string { return "popup" }
func (p *recordingPopup) Frame() ui.PopupFrame          { return ui.DefaultPopupFrame() }

func TestStack_EmptyHandlesNothing(t *testing.T) {
	s := &Stack{}
	if out := s.Handle(action.Down); out != action.Nothing {
		t.Errorf("empty stack returned %+v", out)
	}
	if _, ok := s.Active(); ok {
		t.Error("empty stack has an active popup")
	}
}

func TestStack_CloseRequestBecomesRender(t *testing.T) {
	s := &Stack{}
	p := &recordingPopup{out: action.Quit}
	s.Push(p)

	out := s.Handle(action.SoftQuit)
	if !out.IsRender() {
		t.Errorf("close request surfaced as %+v, want render", out)
	}
	if _, ok := s.Active(); ok {
		t.Error("popup still open after close request")
	}
	if len(p.seen) != 1 || p.seen[0] != action.SoftQuit {
		t.Errorf("popup saw %+v", p.seen)
	}
}

func TestStack_OtherReturnsPassThrough(t *testing.T) {
	s := &Stack{}
	s.Push(&recordingPopup{out: action.Render})

	if out := s.Handle(action.Down); !out.IsRender() {
		t.Errorf("got %+v, want render", out)
	}
	if _, ok := s.Active(); !ok {
		t.Error("popup closed although it only asked for a render")
	}
}

func TestStack_TopPopupWins(t *testing.T) {
	s := &Stack{}
	bottom := &recordingPopup{out: action.Nothing}
	top := &recordingPopup{out: action.Quit}
	s.Push(bottom)
	s.Push(top)

	s.Handle(action.Confirm)
	if len(bottom.seen) != 0 {
		t.Errorf("bottom popup saw %+v while covered", bottom.seen)
	}
	if len(top.seen) != 1 {
		t.Errorf("top popup saw %d actions, want 1", len(top.seen))
	}
	// Closing the top popup reveals the bottom one.
	if active, ok := s.Active(); !ok || active != Popup(bottom) {
		t.Error("bottom popup not revealed after top closed")
	}
}

func TestStack_WantsInput(t *testing.T) {
	s := &Stack{}
	if s.WantsInput() {
		t.Error("empty stack wants input")
	}
	s.Push(&recordingPopup{})
	if s.WantsInput() {
		t.Error("plain popup wants input")
	}
	s.Push(newAddMagnetPopup(func(uri, dir string) {}))
	if !s.WantsInput() {
		t.Error("form popup does not want input")
	}
}

func TestHelpPopup_ClosesAndScrolls(t *testing.T) {
	registry, err := config.BuildRegistry([]byte(config.DefaultKeymapYAML))
	if err != nil {
		t.Fatal(err)
	}
	p := newHelpPopup(registry)

	if out := p.Handle(action.Down); !out.IsRender() {
		t.Errorf("scroll returned %+v", out)
	}
	if out := p.Handle(action.ShowHelp); out != action.Quit {
		t.Errorf("help key on open help returned %+v, want close", out)
	}

	view := p.View(80, 40)
	for _, want := range []string{"General", "Torrents", "Built-in"} {
		if !strings.Contains(view, want) {
			t.Errorf("help view missing section %q", want)
		}
	}
}

func TestErrorPopup_DismissKeys(t *testing.T) {
	p := newErrorPopup(errors.New("daemon exploded"))

	if out := p.Handle(action.Down); out != action.Nothing {
		t.Errorf("movement dismissed the error popup: %+v", out)
	}
	if out := p.Handle(action.Confirm); out != action.Quit {
		t.Errorf("confirm returned %+v, want close", out)
	}
	if !strings.Contains(p.View(80, 24), "daemon exploded") {
		t.Error("error text missing from view")
	}
}

func TestWrapText_MeasuresCellsNotBytes(t *testing.T) {
	// Multi-byte words fit by their display width, not their byte count:
	// three six-cell umlaut words fill exactly 20 cells on one line.
	if got := wrapText("ääääää ääääää ääääää", 20); strings.Contains(got, "\n") {
		t.Errorf("narrow words wrapped early: %q", got)
	}

	got := wrapText("alpha beta gamma", 20)
	want := "alpha beta gamma"
	if got != want {
		t.Errorf("wrapText = %q, want %q", got, want)
	}
	if got := wrapText("alpha beta gamma delta", 20); !strings.Contains(got, "\n") {
		t.Errorf("long line did not wrap: %q", got)
	}
}

func TestConfirmPopup_RunsOnlyOnConfirm(t *testing.T) {
	ran := false
	p := newConfirmPopup("Remove?", func() { ran = true })

	if out := p.Handle(action.SoftQuit); out != action.Quit {
		t.Errorf("dismiss returned %+v", out)
	}
	if ran {
		t.Fatal("callback ran on dismiss")
	}

	if out := p.Handle(action.Confirm); out != action.Quit {
		t.Errorf("confirm returned %+v", out)
	}
	if !ran {
		t.Fatal("callback did not run on confirm")
	}
}
