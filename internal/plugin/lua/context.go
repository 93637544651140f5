package lua

import (
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/vimfocus/internal/focus"
	"github.com/dshills/vimfocus/internal/input/keymap"
)

var caretPositions = map[string]focus.CaretPosition{
	"start": focus.CaretStart,
	"next":  focus.CaretNext,
	"end":   focus.CaretEnd,
}

// newContextTable exposes a keydown context to a Lua handler.
func newContextTable(L *lua.LState, kc *keymap.Context) *lua.LTable {
	ctx := L.NewTable()
	L.SetField(ctx, "count", lua.LNumber(kc.Count))
	L.SetField(ctx, "combo", lua.LString(kc.Combo))
	L.SetField(ctx, "element", elementID(kc.Element))
	if kc.Modes != nil {
		L.SetField(ctx, "mode", lua.LString(kc.Modes.Current()))
	}

	// move(dir[, n]) -> moved, element
	L.SetField(ctx, "move", L.NewFunction(func(L *lua.LState) int {
		d, err := focus.ParseDirection(L.CheckString(1))
		if err != nil {
			L.ArgError(1, err.Error())
			return 0
		}
		step := *kc
		step.Count = L.OptInt(2, kc.Count)
		el, moved := step.Move(d)
		L.Push(lua.LBool(moved))
		L.Push(elementID(el))
		return 2
	}))

	// focus_anchor() -> moved, element
	L.SetField(ctx, "focus_anchor", L.NewFunction(func(L *lua.LState) int {
		el, moved := kc.FocusAnchor()
		L.Push(lua.LBool(moved))
		L.Push(elementID(el))
		return 2
	}))

	// set_mode(name)
	L.SetField(ctx, "set_mode", L.NewFunction(func(L *lua.LState) int {
		m := checkMode(L, 1)
		if kc.Modes == nil {
			L.RaiseError("set_mode: no mode controller")
			return 0
		}
		if err := kc.SetMode(m); err != nil {
			raise(L, "set_mode", err)
		}
		return 0
	}))

	// set_caret("start"|"next"|"end") -> placed
	L.SetField(ctx, "set_caret", L.NewFunction(func(L *lua.LState) int {
		pos, ok := caretPositions[strings.ToLower(L.CheckString(1))]
		if !ok {
			L.ArgError(1, "expected start, next or end")
			return 0
		}
		L.Push(lua.LBool(kc.SetCaret(pos)))
		return 1
	}))

	// run_default()
	L.SetField(ctx, "run_default", L.NewFunction(func(L *lua.LState) int {
		kc.RunDefault()
		return 0
	}))

	return ctx
}

// elementID names el for scripts: its ID when it has one, else its id
// attribute, else its tag.
func elementID(el focus.Element) lua.LValue {
	if el == nil {
		return lua.LNil
	}
	if v, ok := el.(interface{ ID() string }); ok {
		return lua.LString(v.ID())
	}
	if id, ok := el.Attr("id"); ok && id != "" {
		return lua.LString(id)
	}
	return lua.LString(el.Tag())
}
