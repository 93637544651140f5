package keymap

import (
	"github.com/dshills/vimfocus/internal/focus"
	"github.com/dshills/vimfocus/internal/input/mode"
)

// Handler runs a bound action.
type Handler func(ctx *Context) error

// Context is passed to a handler for one keydown.
type Context struct {
	// Element is the page's active element, or nil.
	Element focus.Element

	// Host moves focus on the page.
	Host focus.Host

	// Navigator resolves directional motions.
	Navigator *focus.Navigator

	// Modes is the dispatcher's mode controller.
	Modes *mode.Controller

	// Count is the repeat count, 1 when none was typed.
	Count int

	// Combo is the combination that matched the binding.
	Combo string

	runDefault bool
}

// RunDefault lets the host's native handling of the key proceed.
func (c *Context) RunDefault() {
	c.runDefault = true
}

// DefaultRequested reports whether the handler called RunDefault.
func (c *Context) DefaultRequested() bool {
	return c.runDefault
}

// Move moves focus Count steps in direction d. Without an active element,
// or when the active element is not part of the graph, the anchor is
// focused instead.
func (c *Context) Move(d focus.Direction) (focus.Element, bool) {
	if c.Navigator == nil {
		return nil, false
	}
	if c.Element == nil || !c.Navigator.Graph().Contains(c.Element) {
		return c.Navigator.FocusAnchor(c.Host)
	}
	return c.Navigator.Move(c.Host, c.Element, d, c.Count)
}

// FocusAnchor focuses the top-left element.
func (c *Context) FocusAnchor() (focus.Element, bool) {
	if c.Navigator == nil {
		return nil, false
	}
	return c.Navigator.FocusAnchor(c.Host)
}

// SetCaret places the caret in the active element when the host supports
// it. Returns false when there is no element or no caret support.
func (c *Context) SetCaret(pos focus.CaretPosition) bool {
	ch, ok := c.Host.(focus.CaretHost)
	if !ok || c.Element == nil {
		return false
	}
	ch.SetCaret(c.Element, pos)
	return true
}

// SetMode switches the dispatcher's mode.
func (c *Context) SetMode(m mode.Mode) error {
	return c.Modes.Set(m)
}
