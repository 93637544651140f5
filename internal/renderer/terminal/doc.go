// Package terminal is an interactive tcell front end for vimfocus. It
// scales a page's element rectangles onto the terminal grid, highlights
// the focused element and translates terminal keypresses into the
// browser-style key events the dispatcher expects.
package terminal
