package tui

import (
	"fmt"
	"strings"

	"github.com/mfranczak/shoal/internal/action"
	"github.com/mfranczak/shoal/internal/config"
	"github.com/mfranczak/shoal/internal/ui"
)

// fixedBindings documents the built-in keys that exist regardless of the
// keymap file, shown in the help popup below the configured sections.
var fixedBindings = []config.HelpEntry{
	{Key: "Enter", Desc: "confirm"},
	{Key: "Tab", Desc: "change focus"},
	{Key: "1-9", Desc: "switch tab"},
	{Key: "CTRL-c", Desc: "force quit"},
}

// helpPopup renders the keymap legend. Long legends scroll with the
// normal movement keys.
type helpPopup struct {
	sections []config.HelpSection
	offset   int
}

func newHelpPopup(registry *config.Registry) *helpPopup {
	sections := registry.HelpSections()
	sections = append(sections, config.HelpSection{
		Title:   "Built-in",
		Entries: fixedBindings,
	})
	return &helpPopup{sections: sections}
}

func (p *helpPopup) Handle(a action.Action) action.Action {
	switch a.Kind {
	case action.KindQuit, action.KindSoftQuit, action.KindConfirm, action.KindShowHelp:
		return action.Quit
	case action.KindDown:
		p.offset++
		return action.Render
	case action.KindUp:
		if p.offset > 0 {
			p.offset--
		}
		return action.Render
	case action.KindHome:
		p.offset = 0
		return action.Render
	}
	return action.Nothing
}

func (p *helpPopup) Frame() ui.PopupFrame {
	return ui.DefaultPopupFrame()
}

func (p *helpPopup) View(width, height int) string {
	var lines []string
	lines = append(lines, ui.TitleStyle.Render("Keybindings"), "")

	keyWidth := 0
	for _, sec := range p.sections {
		for _, e := range sec.Entries {
			if len(e.Key) > keyWidth {
				keyWidth = len(e.Key)
			}
		}
	}

	for i, sec := range p.sections {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, ui.HeaderStyle.Render(sec.Title))
		for _, e := range sec.Entries {
			lines = append(lines, fmt.Sprintf("  %s  %s",
				ui.TextStyle.Render(fmt.Sprintf("%-*s", keyWidth, e.Key)),
				ui.SubtleStyle.Render(e.Desc)))
		}
	}

	return scrollLines(lines, p.offset, height-6)
}

// scrollLines clips a line list to a window starting at offset. The
// offset saturates so scrolling past the end shows the last page.
func scrollLines(lines []string, offset, max int) string {
	if max < 3 {
		max = 3
	}
	if offset > len(lines)-max {
		offset = len(lines) - max
	}
	if offset < 0 {
		offset = 0
	}
	end := offset + max
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[offset:end], "\n")
}
