package config

import "fmt"

// DuplicateFieldError reports a field repeated within a single keybinding
// entry. Collisions across entries are not errors; the registry merges
// them last-write-wins.
type DuplicateFieldError struct {
	Field string
}

func (e DuplicateFieldError) Error() string {
	return fmt.Sprintf("duplicate field %q in keybinding", e.Field)
}

// MissingFieldError reports a required keybinding field that is absent.
type MissingFieldError struct {
	Field string
}

func (e MissingFieldError) Error() string {
	return fmt.Sprintf("missing field %q in keybinding", e.Field)
}

// UnknownFieldError reports a keybinding field outside the schema.
type UnknownFieldError struct {
	Field string
}

func (e UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown keybinding field %q", e.Field)
}

// UnknownActionError reports an action name with no catalog entry in the
// context it was used in.
type UnknownActionError struct {
	Context string
	Name    string
}

func (e UnknownActionError) Error() string {
	return fmt.Sprintf("unknown action %q in context %q", e.Name, e.Context)
}
