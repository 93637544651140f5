// Package keymap holds the per-mode key binding table.
//
// A binding maps a canonical key combination ("h", "C-Tab", "C-S-I") to a
// handler. Handlers are usually named actions from an Actions registry
// ("focus.left", "mode.insert"), but scripts can bind arbitrary handlers.
//
// Combinations are validated and normalised with key.ParseCombo before
// they are stored, so "Ctrl+Shift+i", "<C-S-i>" and "C-S-I" all name the
// same binding.
//
// # Usage
//
//	actions := keymap.NewActions()
//	table, err := keymap.Defaults(actions)
//	if err != nil {
//	    return err
//	}
//
//	// Remap w to move right, replacing any existing binding.
//	b, _ := actions.Binding("focus.right")
//	table.Set(mode.Normal, "w", b, true)
//
//	// Look up the binding for a key event.
//	if b, combo, ok := table.Match(mode.Normal, ev); ok {
//	    ...
//	}
//
// A Table is owned by the event loop and is not safe for concurrent use.
// Clone it to build a replacement off the loop.
package keymap
