package key

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Event represents a single keydown.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	if r == ' ' {
		return Event{Key: KeySpace, Modifiers: mods}
	}
	return Event{
		Key:       KeyRune,
		Rune:      r,
		Modifiers: mods,
	}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(key Key, mods Modifier) Event {
	return Event{
		Key:       key,
		Modifiers: mods,
	}
}

// FromDOM builds an event from the fields of a browser KeyboardEvent:
// the key property plus the ctrlKey, shiftKey, altKey and metaKey flags.
// Unknown multi-character names (e.g. "Shift", "Unidentified") yield
// an event with KeyNone.
func FromDOM(name string, ctrl, shift, alt, meta bool) Event {
	var mods Modifier
	if ctrl {
		mods = mods.With(ModCtrl)
	}
	if shift {
		mods = mods.With(ModShift)
	}
	if alt {
		mods = mods.With(ModAlt)
	}
	if meta {
		mods = mods.With(ModMeta)
	}

	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		return NewRuneEvent(r, mods)
	}
	return NewSpecialEvent(KeyFromName(name), mods)
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsModified returns true if Ctrl, Alt or Meta is held.
// Shift alone does not count since it changes the character itself.
func (e Event) IsModified() bool {
	return e.Modifiers&(ModCtrl|ModAlt|ModMeta) != 0
}

// Digit reports the value of an unmodified ASCII digit key.
func (e Event) Digit() (int, bool) {
	if !e.IsRune() || e.IsModified() || e.Modifiers.HasShift() {
		return 0, false
	}
	if e.Rune < '0' || e.Rune > '9' {
		return 0, false
	}
	return int(e.Rune - '0'), true
}

// Name returns the key name part of the combination.
// Letters are upper-cased when Shift is held so that "S-H" and "C-S-I"
// match what a browser reports for the shifted key, and lower-cased for
// other modified letters ("C-s" whatever the caps lock state).
func (e Event) Name() string {
	switch e.Key {
	case KeyRune:
		r := e.Rune
		if e.Modifiers.HasShift() {
			r = unicode.ToUpper(r)
		} else if e.IsModified() {
			r = unicode.ToLower(r)
		}
		return string(r)
	case KeyNone:
		return ""
	default:
		return e.Key.String()
	}
}

// Combo returns the canonical combination string for the event:
// modifier flags in the order C, S, A, M followed by the key name,
// joined with hyphens. Unmodified keys are just their name.
func (e Event) Combo() string {
	name := e.Name()
	if name == "" {
		return ""
	}
	prefix := e.Modifiers.ShortString()
	if prefix == "" {
		return name
	}
	return prefix + "-" + name
}

// String returns the canonical combination.
func (e Event) String() string {
	return e.Combo()
}

// Equals returns true if two events produce the same combination.
func (e Event) Equals(other Event) bool {
	return e.Combo() == other.Combo()
}

// GoString implements fmt.GoStringer for debugging.
func (e Event) GoString() string {
	return fmt.Sprintf("Event{Key: %s, Rune: %q, Modifiers: %s}",
		e.Key.String(), e.Rune, strings.ReplaceAll(e.Modifiers.String(), "+", "|"))
}
