// Package key provides key event types and combination strings for the
// modal dispatcher.
//
// This package defines the fundamental types for representing keyboard input:
//
//   - Key: Identifies a keyboard key (special keys, function keys, or runes)
//   - Modifier: Represents modifier keys (Ctrl, Shift, Alt, Meta)
//   - Event: A single keydown with modifiers
//
// # Combinations
//
// Every keydown is reduced to a canonical combination string used as the
// keymap lookup key. Modifier flags come first in fixed order (C, S, A, M),
// followed by the key name, all joined by a hyphen:
//
//	"h"        - unmodified letter
//	"S-H"      - Shift+h (shifted letters are upper case)
//	"C-S-I"    - Ctrl+Shift+i
//	"C-Tab"    - Ctrl+Tab
//	"ArrowUp"  - special keys use their KeyboardEvent.key name
//
// ParseCombo accepts the canonical form as well as "<C-S-i>" and
// "Ctrl+Shift+I" and normalises all of them to the canonical form.
package key
