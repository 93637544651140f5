// Package input turns keydowns into focus motions and mode switches.
//
// The Dispatcher is a two-state machine (normal and insert) sitting between
// the page's keyboard events and the focus graph:
//
//   - In normal mode, unmodified digits build a repeat count ("3 l" moves
//     three elements right). A leading zero is an ordinary key.
//   - The combination of each key ("j", "C-Tab", "C-S-I") is looked up in
//     the binding table for the current mode. A bound action runs with the
//     active element, the navigator, the mode controller and the count.
//   - The host is told to suppress the event unless the action asked for
//     the default behaviour, which browser shortcuts and function keys do.
//   - Unbound keys are swallowed in normal mode and pass through in insert
//     mode so that typing works.
//
// # Usage
//
//	actions := keymap.NewActions()
//	table, _ := keymap.Defaults(actions)
//	nav := focus.NewNavigator(graph)
//	d, err := input.NewDispatcher(input.DefaultConfig(), host, nav, table, logger)
//	if err != nil {
//	    return err
//	}
//
//	out := d.HandleKeyDown(key.FromDOM("j", false, false, false, false))
//	if out.Suppress {
//	    // preventDefault + stopPropagation
//	}
//
// Hooks observe keys before and after dispatch; Metrics counts outcomes.
package input
