// Package lua provides the Lua scripting surface for rebinding keys.
//
// Scripts run in a sandboxed gopher-lua state with only the base, table,
// string and math libraries. The "vimfocus" module is available both as a
// global and through require:
//
//	local vf = require("vimfocus")
//	vf.map("normal", "w", "focus.right")
//	vf.noremap("normal", "l", "focus.anchor")
//	vf.alias("normal", "b", "h")
//	vf.rename("normal", "i", "o")
//	vf.bind("normal", "g", function(ctx)
//	  ctx.move("down", ctx.count * 2)
//	end, "double down")
//
// Handlers receive a ctx table with count, mode, combo and element (the
// active element's id) plus the functions move, focus_anchor, set_mode,
// set_caret and run_default. Errors from the keymap are raised as Lua
// errors.
//
// Every successful keymap edit is journaled so it can be replayed onto a
// freshly built table after a configuration reload.
package lua
