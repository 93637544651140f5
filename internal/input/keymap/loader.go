package keymap

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dshills/vimfocus/internal/input/mode"
)

// Overrides maps mode names to combination → action name entries, the
// shape keymaps take in configuration files.
type Overrides map[string]map[string]string

// Apply binds every entry of o into t, replacing existing bindings.
// Entries that fail are skipped; their errors are joined in the result.
func Apply(t *Table, actions *Actions, o Overrides) error {
	var errs []error

	modeNames := make([]string, 0, len(o))
	for name := range o {
		modeNames = append(modeNames, name)
	}
	sort.Strings(modeNames)

	for _, name := range modeNames {
		m, err := mode.Parse(name)
		if err != nil {
			errs = append(errs, fmt.Errorf("keymap.%s: %w", name, err))
			continue
		}

		entries := o[name]
		combos := make([]string, 0, len(entries))
		for combo := range entries {
			combos = append(combos, combo)
		}
		sort.Strings(combos)

		for _, combo := range combos {
			if err := applyEntry(t, actions, m, combo, entries[combo]); err != nil {
				errs = append(errs, fmt.Errorf("keymap.%s %q: %w", m, combo, err))
			}
		}
	}
	return errors.Join(errs...)
}

func applyEntry(t *Table, actions *Actions, m mode.Mode, combo, action string) error {
	b, err := actions.Binding(action)
	if err != nil {
		return err
	}
	return t.Set(m, combo, b, true)
}

// Export returns the action names bound in t, in the Overrides shape.
// Bindings to handlers without a registered action are left out.
func Export(t *Table, actions *Actions) Overrides {
	o := make(Overrides)
	for _, m := range mode.All() {
		entries := make(map[string]string)
		for _, e := range t.Bindings(m) {
			if _, err := actions.Lookup(e.Action); err != nil {
				continue
			}
			entries[e.Combo] = e.Action
		}
		o[m.String()] = entries
	}
	return o
}
