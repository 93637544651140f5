package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Parse errors
var (
	ErrEmptyCombo   = errors.New("empty key combination")
	ErrInvalidCombo = errors.New("invalid key combination")
)

// ParseCombo parses a key combination into an Event.
//
// Supported formats:
//   - Canonical: "h", "S-H", "C-S-I", "C-Tab", "ArrowLeft", "F5"
//   - Vim-style: "<C-s>", "<A-f>", "<C-S-i>", "<Esc>"
//   - Readable: "Ctrl+S", "Alt+F4", "Ctrl+Shift+I"
//
// A lone "-" or "+" is the key itself; "C--" is Ctrl with the minus key.
func ParseCombo(spec string) (Event, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Event{}, ErrEmptyCombo
	}

	if len(spec) > 2 && strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") {
		return parseHyphenated(spec[1 : len(spec)-1])
	}
	if len(spec) > 1 && strings.Contains(spec[:len(spec)-1], "+") {
		return parsePlus(spec)
	}
	return parseHyphenated(spec)
}

// parseHyphenated consumes single-letter modifier prefixes ("C-", "S-",
// "A-", "M-") and treats the remainder as the key name.
func parseHyphenated(spec string) (Event, error) {
	var mods Modifier
	rest := spec
	for len(rest) > 2 && rest[1] == '-' {
		mod := ModifierFromName(rest[:1])
		if mod == ModNone {
			return Event{}, fmt.Errorf("%w: unknown modifier %q in %q", ErrInvalidCombo, rest[:1], spec)
		}
		mods = mods.With(mod)
		rest = rest[2:]
	}
	return parseKeyName(rest, mods, spec)
}

// parsePlus parses "Ctrl+Shift+I" style notation.
func parsePlus(spec string) (Event, error) {
	parts := strings.Split(spec, "+")
	keyPart := parts[len(parts)-1]
	if keyPart == "" {
		// "Ctrl++" binds the plus key itself.
		keyPart = "+"
		parts = parts[:len(parts)-1]
	}

	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		mod := ModifierFromName(p)
		if mod == ModNone {
			return Event{}, fmt.Errorf("%w: unknown modifier %q in %q", ErrInvalidCombo, p, spec)
		}
		mods = mods.With(mod)
	}
	return parseKeyName(keyPart, mods, spec)
}

func parseKeyName(name string, mods Modifier, spec string) (Event, error) {
	if name == "" {
		return Event{}, fmt.Errorf("%w: missing key in %q", ErrInvalidCombo, spec)
	}

	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		return NewRuneEvent(r, mods), nil
	}

	k := KeyFromName(name)
	if k == KeyNone {
		return Event{}, fmt.Errorf("%w: unknown key %q in %q", ErrInvalidCombo, name, spec)
	}
	return NewSpecialEvent(k, mods), nil
}

// MustParseCombo parses a combination and panics on error.
// Use only for known-valid combinations in initialization code.
func MustParseCombo(spec string) Event {
	event, err := ParseCombo(spec)
	if err != nil {
		panic("invalid key combination: " + spec + ": " + err.Error())
	}
	return event
}

// NormalizeCombo parses and re-formats a combination to its canonical form.
func NormalizeCombo(spec string) (string, error) {
	event, err := ParseCombo(spec)
	if err != nil {
		return "", err
	}
	return event.Combo(), nil
}
