package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	KeymapFileName   = "keymap.yaml"
	SettingsFileName = "config.yaml"
)

var ErrConfigNotFound = errors.New("config not found")

// IsNotFound reports whether err means a configuration file was absent,
// as opposed to present but malformed.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrConfigNotFound)
}

// Dir returns the shoal configuration directory. The resolution happens
// once at startup and the result is threaded through constructors; nothing
// else in the program touches the environment.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot resolve config directory: %w", err)
	}
	return filepath.Join(base, "shoal"), nil
}

// LoadRegistry reads and compiles the keymap from dir. A missing file is
// not an error: the built-in default keymap applies.
func LoadRegistry(dir string) (*Registry, error) {
	data, err := os.ReadFile(filepath.Join(dir, KeymapFileName))
	if errors.Is(err, os.ErrNotExist) {
		return BuildRegistry([]byte(DefaultKeymapYAML))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read keymap: %w", err)
	}
	return BuildRegistry(data)
}

// DefaultKeymapYAML is the built-in keymap, used verbatim when the user
// has no keymap file. It goes through the same parser and validation as a
// user document.
const DefaultKeymapYAML = `general:
  keybindings:
    - on: "?"
      action: ShowHelp
    - on: q
      action: Quit
    - on: esc
      action: SoftQuit
    - on: h
      action: Left
    - on: l
      action: Right
    - on: j
      action: Down
    - on: k
      action: Up
    - on: "/"
      action: Search
    - on: pagedown
      action: ScrollPageDown
    - on: pageup
      action: ScrollPageUp
    - on: home
      action: GoToBeginning
    - on: end
      action: GoToEnd
torrents_tab:
  keybindings:
    - on: a
      action: AddMagnet
    - on: p
      action: Pause
    - on: d
      action: DeleteWithoutFiles
    - on: D
      action: DeleteWithFiles
    - on: f
      action: ShowFiles
    - on: t
      action: ShowStats
    - on: y
      action: CopyMagnet
`
