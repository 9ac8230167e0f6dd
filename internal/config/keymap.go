package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/mfranczak/shoal/internal/keys"
)

// Keymap is the parsed keybinding document: one context per top-level key.
type Keymap struct {
	General     GeneralSection  `yaml:"general"`
	TorrentsTab TorrentsSection `yaml:"torrents_tab"`
}

// GeneralSection holds the keybindings of the "general" context.
type GeneralSection struct {
	Keybindings []GeneralBinding `yaml:"keybindings"`
}

// TorrentsSection holds the keybindings of the "torrents_tab" context.
type TorrentsSection struct {
	Keybindings []TorrentsBinding `yaml:"keybindings"`
}

// GeneralBinding binds a chord to a general-context catalog entry.
type GeneralBinding struct {
	Chord  keys.Chord
	Action GeneralAction
}

// UnmarshalYAML decodes one keybinding entry with explicit field tracking
// so duplicate and missing fields are detected.
func (b *GeneralBinding) UnmarshalYAML(value *yaml.Node) error {
	raw, err := decodeBinding(value)
	if err != nil {
		return err
	}
	act, err := ParseGeneralAction(raw.action)
	if err != nil {
		return err
	}
	b.Chord, b.Action = raw.chord, act
	return nil
}

// TorrentsBinding binds a chord to a torrents-tab catalog entry.
type TorrentsBinding struct {
	Chord  keys.Chord
	Action TorrentsAction
}

func (b *TorrentsBinding) UnmarshalYAML(value *yaml.Node) error {
	raw, err := decodeBinding(value)
	if err != nil {
		return err
	}
	act, err := ParseTorrentsAction(raw.action)
	if err != nil {
		return err
	}
	b.Chord, b.Action = raw.chord, act
	return nil
}

type rawBinding struct {
	chord  keys.Chord
	action string
}

// decodeBinding walks the mapping node by hand instead of letting yaml.v3
// decode into a struct: the default decoder silently keeps the last value
// of a repeated key, and the schema requires repeats to be rejected.
func decodeBinding(value *yaml.Node) (rawBinding, error) {
	var raw rawBinding
	if value.Kind != yaml.MappingNode {
		return raw, fmt.Errorf("line %d: keybinding must be a mapping", value.Line)
	}

	var haveOn, haveModifier, haveAction bool
	for i := 0; i+1 < len(value.Content); i += 2 {
		field, val := value.Content[i], value.Content[i+1]
		switch field.Value {
		case "on":
			if haveOn {
				return raw, DuplicateFieldError{Field: "on"}
			}
			haveOn = true
			key, err := keys.ParseToken(val.Value)
			if err != nil {
				return raw, fmt.Errorf("line %d: %w", val.Line, err)
			}
			raw.chord.Key = key
		case "modifier":
			if haveModifier {
				return raw, DuplicateFieldError{Field: "modifier"}
			}
			haveModifier = true
			mod, err := keys.ParseModifier(val.Value)
			if err != nil {
				return raw, fmt.Errorf("line %d: %w", val.Line, err)
			}
			raw.chord.Modifier = mod
		case "action":
			if haveAction {
				return raw, DuplicateFieldError{Field: "action"}
			}
			haveAction = true
			raw.action = val.Value
		default:
			return raw, UnknownFieldError{Field: field.Value}
		}
	}

	if !haveOn {
		return raw, MissingFieldError{Field: "on"}
	}
	if !haveAction {
		return raw, MissingFieldError{Field: "action"}
	}
	return raw, nil
}

// ParseKeymap parses a keymap document.
func ParseKeymap(data []byte) (*Keymap, error) {
	var km Keymap
	if err := yaml.Unmarshal(data, &km); err != nil {
		return nil, fmt.Errorf("failed to parse keymap: %w", err)
	}
	return &km, nil
}
