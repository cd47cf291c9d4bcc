// Package theme holds the visual theme preference of a client and the stores
// that persist it between visits.
package theme

import (
	"errors"
	"fmt"
	"strings"
)

// Theme is the visual theme selected by the user.
type Theme string

const (
	Light  Theme = "light"
	Dark   Theme = "dark"
	System Theme = "system"
)

// Default is the theme used when nothing has been persisted yet.
const Default = Dark

// DefaultKey is the storage key the preference is saved under.
const DefaultKey = "ui-theme"

var (
	// ErrInvalidTheme is returned for values outside light, dark and system.
	ErrInvalidTheme = errors.New("invalid theme")
	// ErrNotFound is returned by a Persister when no preference has been saved.
	ErrNotFound = errors.New("theme preference not found")
)

// All lists the selectable themes in menu order.
func All() []Theme {
	return []Theme{Light, Dark, System}
}

// Parse converts a stored or submitted value into a Theme.
func Parse(s string) (Theme, error) {
	t := Theme(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidTheme, s)
	}
	return t, nil
}

// Valid reports whether t is one of the known themes.
func (t Theme) Valid() bool {
	switch t {
	case Light, Dark, System:
		return true
	}
	return false
}

// Resolve maps System onto the client's preferred scheme.
func (t Theme) Resolve(prefersDark bool) Theme {
	if t != System {
		return t
	}
	if prefersDark {
		return Dark
	}
	return Light
}

// Opposite returns the theme a toggle switches to.
func (t Theme) Opposite(prefersDark bool) Theme {
	if t.Resolve(prefersDark) == Dark {
		return Light
	}
	return Dark
}

// Label is the human readable menu label.
func (t Theme) Label() string {
	switch t {
	case Light:
		return "Light"
	case Dark:
		return "Dark"
	case System:
		return "System"
	}
	return string(t)
}

func (t Theme) String() string {
	return string(t)
}
