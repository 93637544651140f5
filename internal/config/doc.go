// Package config provides the configuration system for vimfocus.
//
// Configuration is read from a TOML or YAML file (chosen by extension),
// overlaid on the built-in defaults, then overridden by VIMFOCUS_*
// environment variables. The keymap section names actions from the
// keymap action registry and is applied on top of the default bindings.
//
// A Watcher reloads the file when it changes and posts the result on a
// channel so the event loop can swap the rebuilt keymap in.
package config
