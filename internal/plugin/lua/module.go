package lua

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/vimfocus/internal/input/keymap"
	"github.com/dshills/vimfocus/internal/input/mode"
)

// ScriptAction is the action name of bindings created with bind.
const ScriptAction = "lua:bind"

// install registers the vimfocus module as a global and for require.
func (p *Plugin) install() {
	L := p.state.L
	mod := p.module(L)
	L.PreloadModule(ModuleName, func(L *lua.LState) int {
		L.Push(mod)
		return 1
	})
	L.SetGlobal(ModuleName, mod)
}

func (p *Plugin) module(L *lua.LState) *lua.LTable {
	return L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"map":      p.luaMap(false),
		"noremap":  p.luaMap(true),
		"unmap":    p.luaUnmap,
		"alias":    p.luaAlias,
		"rename":   p.luaRename,
		"bind":     p.luaBind,
		"action":   p.luaAction,
		"bindings": p.luaBindings,
		"actions":  p.luaActions,
	})
}

// checkMode reads a mode name argument.
func checkMode(L *lua.LState, n int) mode.Mode {
	m, err := mode.Parse(L.CheckString(n))
	if err != nil {
		L.ArgError(n, err.Error())
	}
	return m
}

// raise turns a keymap error into a Lua error.
func raise(L *lua.LState, fn string, err error) {
	L.RaiseError("%s: %v", fn, err)
}

// map(mode, combo, action[, desc]) and noremap(...) with override.
func (p *Plugin) luaMap(override bool) lua.LGFunction {
	name := "map"
	if override {
		name = "noremap"
	}
	return func(L *lua.LState) int {
		m := checkMode(L, 1)
		combo := L.CheckString(2)
		action := L.CheckString(3)
		desc := L.OptString(4, "")

		b, err := p.actions.Binding(action)
		if err != nil {
			raise(L, name, err)
			return 0
		}
		if desc != "" {
			b = b.WithDescription(desc)
		}

		err = p.record(edit{
			desc:  fmt.Sprintf("%s %s %q %s", name, m, combo, action),
			apply: func(t *keymap.Table) error { return t.Set(m, combo, b, override) },
		})
		if err != nil {
			raise(L, name, err)
		}
		return 0
	}
}

// unmap(mode, combo) -> removed
func (p *Plugin) luaUnmap(L *lua.LState) int {
	m := checkMode(L, 1)
	combo := L.CheckString(2)

	removed := p.table.Unset(m, combo)
	if removed {
		p.journal = append(p.journal, edit{
			desc: fmt.Sprintf("unmap %s %q", m, combo),
			apply: func(t *keymap.Table) error {
				t.Unset(m, combo)
				return nil
			},
		})
	}
	L.Push(lua.LBool(removed))
	return 1
}

// alias(mode, combo, target)
func (p *Plugin) luaAlias(L *lua.LState) int {
	m := checkMode(L, 1)
	combo := L.CheckString(2)
	target := L.CheckString(3)

	err := p.record(edit{
		desc:  fmt.Sprintf("alias %s %q %q", m, combo, target),
		apply: func(t *keymap.Table) error { return t.Alias(m, combo, target) },
	})
	if err != nil {
		raise(L, "alias", err)
	}
	return 0
}

// rename(mode, from, to)
func (p *Plugin) luaRename(L *lua.LState) int {
	m := checkMode(L, 1)
	from := L.CheckString(2)
	to := L.CheckString(3)

	err := p.record(edit{
		desc:  fmt.Sprintf("rename %s %q %q", m, from, to),
		apply: func(t *keymap.Table) error { return t.Rename(m, from, to) },
	})
	if err != nil {
		raise(L, "rename", err)
	}
	return 0
}

// bind(mode, combo, fn[, desc]) replaces any binding of combo.
func (p *Plugin) luaBind(L *lua.LState) int {
	m := checkMode(L, 1)
	combo := L.CheckString(2)
	fn := L.CheckFunction(3)
	desc := L.OptString(4, "")

	b := keymap.NewBinding(ScriptAction, p.handler(fn)).
		WithDescription(desc).
		WithCategory("Script")

	err := p.record(edit{
		desc:  fmt.Sprintf("bind %s %q", m, combo),
		apply: func(t *keymap.Table) error { return t.Set(m, combo, b, true) },
	})
	if err != nil {
		raise(L, "bind", err)
	}
	return 0
}

// action(name, fn[, desc]) registers a named action usable from config.
func (p *Plugin) luaAction(L *lua.LState) int {
	name := L.CheckString(1)
	fn := L.CheckFunction(2)
	desc := L.OptString(3, "")

	err := p.actions.Register(keymap.Action{
		Name:        name,
		Description: desc,
		Category:    "Script",
		Handler:     p.handler(fn),
	})
	if err != nil {
		raise(L, "action", err)
	}
	return 0
}

// bindings(mode) -> { {combo=, action=, desc=}, ... }
func (p *Plugin) luaBindings(L *lua.LState) int {
	m := checkMode(L, 1)

	list := L.NewTable()
	for _, e := range p.table.Bindings(m) {
		row := L.NewTable()
		L.SetField(row, "combo", lua.LString(e.Combo))
		L.SetField(row, "action", lua.LString(e.Action))
		L.SetField(row, "desc", lua.LString(e.Description))
		list.Append(row)
	}
	L.Push(list)
	return 1
}

// actions() -> { name, ... }
func (p *Plugin) luaActions(L *lua.LState) int {
	list := L.NewTable()
	for _, name := range p.actions.Names() {
		list.Append(lua.LString(name))
	}
	L.Push(list)
	return 1
}
