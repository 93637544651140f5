package keymap

import (
	"fmt"
	"sort"

	"github.com/dshills/vimfocus/internal/input/key"
	"github.com/dshills/vimfocus/internal/input/mode"
)

// Table maps canonical key combinations to bindings, per mode.
type Table struct {
	modes map[mode.Mode]map[string]Binding
}

// NewTable creates an empty table.
func NewTable() *Table {
	t := &Table{modes: make(map[mode.Mode]map[string]Binding)}
	for _, m := range mode.All() {
		t.modes[m] = make(map[string]Binding)
	}
	return t
}

// Set binds combo in mode m. Without override an existing binding is an
// error.
func (t *Table) Set(m mode.Mode, combo string, b Binding, override bool) error {
	bindings, canon, err := t.resolve(m, combo)
	if err != nil {
		return err
	}
	if b.Handler == nil {
		return fmt.Errorf("%w: %s %q has no handler", ErrInvalidBinding, m, canon)
	}
	if _, exists := bindings[canon]; exists && !override {
		return fmt.Errorf("%w: %s %q", ErrAlreadyBound, m, canon)
	}
	bindings[canon] = b
	return nil
}

// Lookup returns the binding for combo in mode m.
func (t *Table) Lookup(m mode.Mode, combo string) (Binding, bool) {
	bindings := t.modes[m]
	if b, ok := bindings[combo]; ok {
		return b, true
	}
	canon, err := key.NormalizeCombo(combo)
	if err != nil {
		return Binding{}, false
	}
	b, ok := bindings[canon]
	return b, ok
}

// Match finds the binding for a key event in mode m and returns it with
// the combination that matched. A shifted letter also matches a binding
// for the bare capital ("I" as well as "S-I").
func (t *Table) Match(m mode.Mode, ev key.Event) (Binding, string, bool) {
	combo := ev.Combo()
	if combo == "" {
		return Binding{}, "", false
	}
	bindings := t.modes[m]
	if b, ok := bindings[combo]; ok {
		return b, combo, true
	}
	if ev.IsRune() && ev.Modifiers == key.ModShift {
		name := ev.Name()
		if b, ok := bindings[name]; ok {
			return b, name, true
		}
	}
	return Binding{}, combo, false
}

// Has reports whether combo is bound in mode m.
func (t *Table) Has(m mode.Mode, combo string) bool {
	_, ok := t.Lookup(m, combo)
	return ok
}

// Unset removes the binding for combo. Returns false if nothing was bound.
func (t *Table) Unset(m mode.Mode, combo string) bool {
	bindings, canon, err := t.resolve(m, combo)
	if err != nil {
		return false
	}
	if _, ok := bindings[canon]; !ok {
		return false
	}
	delete(bindings, canon)
	return true
}

// Rename moves the binding of from to the combination to.
func (t *Table) Rename(m mode.Mode, from, to string) error {
	bindings, src, err := t.resolve(m, from)
	if err != nil {
		return err
	}
	_, dst, err := t.resolve(m, to)
	if err != nil {
		return err
	}

	b, ok := bindings[src]
	if !ok {
		return fmt.Errorf("%w: %s %q", ErrNotBound, m, src)
	}
	if src == dst {
		return nil
	}
	if _, exists := bindings[dst]; exists {
		return fmt.Errorf("%w: %s %q", ErrAlreadyBound, m, dst)
	}
	bindings[dst] = b
	delete(bindings, src)
	return nil
}

// Alias redirects combo to the binding of target. Both combinations must
// already be bound.
func (t *Table) Alias(m mode.Mode, combo, target string) error {
	bindings, alias, err := t.resolve(m, combo)
	if err != nil {
		return err
	}
	_, dst, err := t.resolve(m, target)
	if err != nil {
		return err
	}

	if _, ok := bindings[alias]; !ok {
		return fmt.Errorf("%w: %s %q", ErrNotBound, m, alias)
	}
	b, ok := bindings[dst]
	if !ok {
		return fmt.Errorf("%w: %s %q", ErrNotBound, m, dst)
	}
	bindings[alias] = b
	return nil
}

// Bindings returns the entries of mode m sorted by combination.
func (t *Table) Bindings(m mode.Mode) []Entry {
	bindings := t.modes[m]
	entries := make([]Entry, 0, len(bindings))
	for combo, b := range bindings {
		entries = append(entries, Entry{Combo: combo, Binding: b})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Combo < entries[j].Combo
	})
	return entries
}

// Len returns the number of bindings in mode m.
func (t *Table) Len(m mode.Mode) int {
	return len(t.modes[m])
}

// Clone returns a copy that can be modified independently.
func (t *Table) Clone() *Table {
	clone := &Table{modes: make(map[mode.Mode]map[string]Binding, len(t.modes))}
	for m, bindings := range t.modes {
		cp := make(map[string]Binding, len(bindings))
		for combo, b := range bindings {
			cp[combo] = b
		}
		clone.modes[m] = cp
	}
	return clone
}

func (t *Table) resolve(m mode.Mode, combo string) (map[string]Binding, string, error) {
	bindings, ok := t.modes[m]
	if !ok {
		return nil, "", fmt.Errorf("%w: %q", mode.ErrUnknownMode, m)
	}
	canon, err := key.NormalizeCombo(combo)
	if err != nil {
		return nil, "", err
	}
	return bindings, canon, nil
}
