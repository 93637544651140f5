package macro

import (
	"errors"
	"fmt"

	"github.com/dshills/vimfocus/internal/input/key"
)

// ErrEmptyMacro is returned when playing a macro without keys.
var ErrEmptyMacro = errors.New("empty macro")

// Macro is a named key sequence.
type Macro struct {
	Name string   `yaml:"name,omitempty"`
	Keys []string `yaml:"keys"`
}

// FromEvents builds a macro from recorded events. Modifier-only events,
// which have no combination, are dropped.
func FromEvents(name string, events []key.Event) Macro {
	m := Macro{Name: name, Keys: make([]string, 0, len(events))}
	for _, ev := range events {
		if c := ev.Combo(); c != "" {
			m.Keys = append(m.Keys, c)
		}
	}
	return m
}

// Len returns the number of keys.
func (m Macro) Len() int {
	return len(m.Keys)
}

// Events parses the keys into events.
func (m Macro) Events() ([]key.Event, error) {
	events := make([]key.Event, 0, len(m.Keys))
	for i, spec := range m.Keys {
		ev, err := key.ParseCombo(spec)
		if err != nil {
			return nil, fmt.Errorf("key %d %q: %w", i+1, spec, err)
		}
		events = append(events, ev)
	}
	return events, nil
}
