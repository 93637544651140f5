// Package app assembles vimfocus: it builds the focus graph from a page,
// layers the keymap (defaults, Lua script edits, config file), creates the
// dispatcher and keeps the graph in step with page mutations.
//
// Config reloads arrive on the channel returned by Watch and are applied
// with ApplyReload on the event loop. Replay drives the dispatcher from a
// recorded key session without a terminal.
package app
