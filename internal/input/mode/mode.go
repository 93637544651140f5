package mode

import (
	"errors"
	"fmt"
	"strings"
)

// Mode identifies one of the modal states.
type Mode string

// Standard mode names.
const (
	Normal Mode = "normal"
	Insert Mode = "insert"
)

// ErrUnknownMode is returned when a mode name is not recognized.
var ErrUnknownMode = errors.New("unknown mode")

// All returns the supported modes in display order.
func All() []Mode {
	return []Mode{Normal, Insert}
}

// String returns the mode name.
func (m Mode) String() string {
	return string(m)
}

// DisplayName returns a human-readable name for the status line.
func (m Mode) DisplayName() string {
	switch m {
	case Normal:
		return "NORMAL"
	case Insert:
		return "INSERT"
	default:
		return strings.ToUpper(string(m))
	}
}

// Valid reports whether m is a supported mode.
func (m Mode) Valid() bool {
	return m == Normal || m == Insert
}

// Parse converts a mode name (case-insensitive) to a Mode.
func Parse(name string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(name)))
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, name)
	}
	return m, nil
}
