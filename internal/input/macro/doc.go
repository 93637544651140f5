// Package macro records and replays key sessions.
//
// A Recorder captures the keydowns of an interactive session. The result
// is a Macro: a named list of combination strings that can be saved to
// YAML, edited by hand and played back through a dispatcher:
//
//	rec := macro.NewRecorder()
//	rec.Start("login")
//	// ... each keydown passed to rec.Record ...
//	m := rec.Stop()
//	_ = macro.Save("login.yaml", m)
//
//	m, _ = macro.Load("login.yaml")
//	_ = macro.Play(ctx, m, 1, func(ev key.Event) error {
//	    d.HandleKeyDown(ev)
//	    return nil
//	})
package macro
