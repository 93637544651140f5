package keymap

import (
	"fmt"

	"github.com/dshills/vimfocus/internal/input/mode"
)

// DefaultBinding names an action bound out of the box.
type DefaultBinding struct {
	Mode   mode.Mode
	Combo  string
	Action string
}

// DefaultBindings returns the built-in bindings.
func DefaultBindings() []DefaultBinding {
	bindings := []DefaultBinding{
		// Movement
		{mode.Normal, "h", ActionFocusLeft},
		{mode.Normal, "j", ActionFocusDown},
		{mode.Normal, "k", ActionFocusUp},
		{mode.Normal, "l", ActionFocusRight},
		{mode.Normal, "ArrowLeft", ActionFocusLeft},
		{mode.Normal, "ArrowDown", ActionFocusDown},
		{mode.Normal, "ArrowUp", ActionFocusUp},
		{mode.Normal, "ArrowRight", ActionFocusRight},

		// Mode switching
		{mode.Normal, "i", ActionModeInsert},
		{mode.Normal, "I", ActionModeInsertStart},
		{mode.Normal, "a", ActionModeInsertAfter},
		{mode.Normal, "A", ActionModeInsertEnd},
		{mode.Insert, "Escape", ActionModeNormal},

		// Browser shortcuts: tab switching and devtools
		{mode.Normal, "C-Tab", ActionBrowserDefault},
		{mode.Normal, "C-S-I", ActionBrowserDefault},
		{mode.Normal, "C-S-J", ActionBrowserDefault},
	}

	for i := 1; i <= 12; i++ {
		bindings = append(bindings, DefaultBinding{mode.Normal, fmt.Sprintf("F%d", i), ActionBrowserDefault})
	}
	return bindings
}

// Defaults builds a table holding the built-in bindings.
func Defaults(actions *Actions) (*Table, error) {
	t := NewTable()
	for _, d := range DefaultBindings() {
		b, err := actions.Binding(d.Action)
		if err != nil {
			return nil, fmt.Errorf("default %s %q: %w", d.Mode, d.Combo, err)
		}
		if err := t.Set(d.Mode, d.Combo, b, false); err != nil {
			return nil, fmt.Errorf("default %s %q: %w", d.Mode, d.Combo, err)
		}
	}
	return t, nil
}
