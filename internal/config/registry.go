package config

import (
	"github.com/mfranczak/shoal/internal/action"
	"github.com/mfranczak/shoal/internal/keys"
)

// HelpEntry is one line of the help legend: the chord's display string and
// the action's description.
type HelpEntry struct {
	Key  string
	Desc string
}

// HelpSection is the ordered legend of one context.
type HelpSection struct {
	Title   string
	Entries []HelpEntry
}

// Registry holds the validated keymap and its compiled lookup map.
type Registry struct {
	keymap   *Keymap
	compiled map[keys.Chord]action.Action
}

// BuildRegistry parses and compiles a keymap document into a registry.
// All configuration errors surface here, once, at startup.
func BuildRegistry(data []byte) (*Registry, error) {
	km, err := ParseKeymap(data)
	if err != nil {
		return nil, err
	}
	return NewRegistry(km), nil
}

// NewRegistry compiles an already-parsed keymap. Contexts are merged in
// declaration order, so when two contexts bind the same chord the
// later-merged context wins. That override is deliberate: torrents_tab is
// more specific than general.
func NewRegistry(km *Keymap) *Registry {
	compiled := make(map[keys.Chord]action.Action)
	for _, b := range km.General.Keybindings {
		compiled[b.Chord] = b.Action.Global()
	}
	for _, b := range km.TorrentsTab.Keybindings {
		compiled[b.Chord] = b.Action.Global()
	}
	return &Registry{keymap: km, compiled: compiled}
}

// Compiled returns the flattened (chord, action) lookup map.
func (r *Registry) Compiled() map[keys.Chord]action.Action {
	return r.compiled
}

// Lookup resolves a chord against the compiled map.
func (r *Registry) Lookup(c keys.Chord) (action.Action, bool) {
	a, ok := r.compiled[c]
	return a, ok
}

// HelpSections returns the per-context legend in document order, for the
// help popup and the keymap show command.
func (r *Registry) HelpSections() []HelpSection {
	general := HelpSection{Title: "General"}
	for _, b := range r.keymap.General.Keybindings {
		general.Entries = append(general.Entries, HelpEntry{
			Key:  b.Chord.String(),
			Desc: b.Action.Desc(),
		})
	}

	torrents := HelpSection{Title: "Torrents"}
	for _, b := range r.keymap.TorrentsTab.Keybindings {
		torrents.Entries = append(torrents.Entries, HelpEntry{
			Key:  b.Chord.String(),
			Desc: b.Action.Desc(),
		})
	}

	return []HelpSection{general, torrents}
}
