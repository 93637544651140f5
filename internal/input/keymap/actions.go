package keymap

import (
	"fmt"
	"sort"

	"github.com/dshills/vimfocus/internal/focus"
	"github.com/dshills/vimfocus/internal/input/mode"
)

// Built-in action names.
const (
	ActionFocusLeft   = "focus.left"
	ActionFocusRight  = "focus.right"
	ActionFocusUp     = "focus.up"
	ActionFocusDown   = "focus.down"
	ActionFocusAnchor = "focus.anchor"

	ActionModeInsert      = "mode.insert"
	ActionModeNormal      = "mode.normal"
	ActionModeInsertStart = "mode.insertStart"
	ActionModeInsertAfter = "mode.insertAfter"
	ActionModeInsertEnd   = "mode.insertEnd"

	ActionBrowserDefault = "browser.default"
	ActionCountClear     = "count.clear"
)

// Action is a named handler that bindings can refer to.
type Action struct {
	Name        string
	Description string
	Category    string
	Handler     Handler
}

// Binding returns a binding that runs the action.
func (a Action) Binding() Binding {
	return Binding{
		Action:      a.Name,
		Handler:     a.Handler,
		Description: a.Description,
		Category:    a.Category,
	}
}

// Actions is a registry of named actions.
type Actions struct {
	byName map[string]Action
}

// NewActions creates a registry holding the built-in actions.
func NewActions() *Actions {
	a := &Actions{byName: make(map[string]Action)}
	for _, act := range builtinActions() {
		a.byName[act.Name] = act
	}
	return a
}

// Register adds or replaces a named action.
func (a *Actions) Register(act Action) error {
	if act.Name == "" {
		return fmt.Errorf("%w: action has no name", ErrInvalidBinding)
	}
	if act.Handler == nil {
		return fmt.Errorf("%w: action %q has no handler", ErrInvalidBinding, act.Name)
	}
	a.byName[act.Name] = act
	return nil
}

// Lookup returns the action registered under name.
func (a *Actions) Lookup(name string) (Action, error) {
	act, ok := a.byName[name]
	if !ok {
		return Action{}, fmt.Errorf("%w: %q", ErrUnknownAction, name)
	}
	return act, nil
}

// Binding returns a binding for the named action.
func (a *Actions) Binding(name string) (Binding, error) {
	act, err := a.Lookup(name)
	if err != nil {
		return Binding{}, err
	}
	return act.Binding(), nil
}

// Names returns the registered action names in sorted order.
func (a *Actions) Names() []string {
	names := make([]string, 0, len(a.byName))
	for name := range a.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func builtinActions() []Action {
	move := func(d focus.Direction) Handler {
		return func(ctx *Context) error {
			ctx.Move(d)
			return nil
		}
	}
	insertAt := func(pos focus.CaretPosition) Handler {
		return func(ctx *Context) error {
			ctx.SetCaret(pos)
			return ctx.SetMode(mode.Insert)
		}
	}

	return []Action{
		{Name: ActionFocusLeft, Description: "Focus element to the left", Category: "Navigation", Handler: move(focus.Left)},
		{Name: ActionFocusRight, Description: "Focus element to the right", Category: "Navigation", Handler: move(focus.Right)},
		{Name: ActionFocusUp, Description: "Focus element above", Category: "Navigation", Handler: move(focus.Up)},
		{Name: ActionFocusDown, Description: "Focus element below", Category: "Navigation", Handler: move(focus.Down)},
		{
			Name:        ActionFocusAnchor,
			Description: "Focus the top-left element",
			Category:    "Navigation",
			Handler: func(ctx *Context) error {
				ctx.FocusAnchor()
				return nil
			},
		},

		{
			Name:        ActionModeInsert,
			Description: "Enter insert mode",
			Category:    "Mode",
			Handler: func(ctx *Context) error {
				return ctx.SetMode(mode.Insert)
			},
		},
		{
			Name:        ActionModeNormal,
			Description: "Return to normal mode",
			Category:    "Mode",
			Handler: func(ctx *Context) error {
				return ctx.SetMode(mode.Normal)
			},
		},
		{Name: ActionModeInsertStart, Description: "Insert at start of field", Category: "Mode", Handler: insertAt(focus.CaretStart)},
		{Name: ActionModeInsertAfter, Description: "Insert after caret", Category: "Mode", Handler: insertAt(focus.CaretNext)},
		{Name: ActionModeInsertEnd, Description: "Insert at end of field", Category: "Mode", Handler: insertAt(focus.CaretEnd)},

		{
			Name:        ActionBrowserDefault,
			Description: "Pass the key through to the page",
			Category:    "Browser",
			Handler: func(ctx *Context) error {
				ctx.RunDefault()
				return nil
			},
		},
		{
			Name:        ActionCountClear,
			Description: "Discard the pending count",
			Category:    "Other",
			Handler:     func(*Context) error { return nil },
		},
	}
}
