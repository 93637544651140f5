package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/dshills/vimfocus/internal/config"
	"github.com/dshills/vimfocus/internal/focus"
	"github.com/dshills/vimfocus/internal/input"
	"github.com/dshills/vimfocus/internal/input/key"
	"github.com/dshills/vimfocus/internal/input/keymap"
	"github.com/dshills/vimfocus/internal/input/mode"
	"github.com/dshills/vimfocus/internal/page"
)

const formPage = `<html><body>
  <button id="a" data-rect="0,0,40,20">A</button>
  <button id="b" data-rect="100,0,40,20">B</button>
  <button id="c" data-rect="200,0,40,20">C</button>
  <input id="name" value="vimfocus" data-rect="0,100,240,20">
</body></html>`

func newTestApp(t *testing.T, opts Options) *Application {
	t.Helper()
	pg, err := page.Parse(formPage, nil)
	require.NoError(t, err)
	a, err := New(pg, opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func press(t *testing.T, a *Application, combos ...string) []input.Outcome {
	t.Helper()
	outs := make([]input.Outcome, 0, len(combos))
	for _, c := range combos {
		outs = append(outs, a.HandleKey(key.MustParseCombo(c)))
	}
	return outs
}

func focusedID(a *Application) string {
	if el, ok := a.Focused(); ok {
		return el.ID()
	}
	return ""
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewDefaults(t *testing.T) {
	a := newTestApp(t, Options{})

	assert.Equal(t, 4, a.Graph().Len())
	assert.Equal(t, mode.Normal, a.Mode())
	assert.Equal(t, config.Default().Navigation, a.Config().Navigation)
	assert.Equal(t, 2, a.Dispatcher().Hooks().Count())
	assert.NoError(t, a.Graph().CheckSymmetry())
}

func TestNavigation(t *testing.T) {
	a := newTestApp(t, Options{})

	press(t, a, "l")
	assert.Equal(t, "a", focusedID(a), "first motion focuses the anchor")

	press(t, a, "2", "l")
	assert.Equal(t, "c", focusedID(a))

	press(t, a, "j")
	assert.Equal(t, "name", focusedID(a))

	out := press(t, a, "A")[0]
	assert.Equal(t, keymap.ActionModeInsertEnd, out.Action)
	assert.Equal(t, mode.Insert, a.Mode())

	el, _ := a.Page().ByID("name")
	assert.Equal(t, len("vimfocus"), a.Page().Caret(el))

	out = press(t, a, "k")[0]
	assert.True(t, out.PassThrough(), "insert mode lets text through")
	assert.Equal(t, "name", focusedID(a))

	press(t, a, "Escape", "k")
	assert.Equal(t, mode.Normal, a.Mode())
	assert.Equal(t, "b", focusedID(a))
}

func TestMutationKeepsGraphInStep(t *testing.T) {
	a := newTestApp(t, Options{})
	press(t, a, "l", "l", "l")
	require.Equal(t, "c", focusedID(a))

	_, err := a.Page().Append("body", `<button id="d" data-rect="300,0,40,20">D</button>`)
	require.NoError(t, err)
	assert.Equal(t, 5, a.Graph().Len())

	press(t, a, "l")
	assert.Equal(t, "d", focusedID(a))

	_, err = a.Page().Remove("#b")
	require.NoError(t, err)
	assert.Equal(t, 4, a.Graph().Len())
	assert.NoError(t, a.Graph().CheckSymmetry())

	press(t, a, "h", "h")
	assert.Equal(t, "a", focusedID(a), "removed element is skipped")

	_, err = a.Page().SetAttr("#c", "disabled", "")
	require.NoError(t, err)
	press(t, a, "l")
	assert.Equal(t, "d", focusedID(a), "disabled element is passed over")

	_, err = a.Page().SetAttr("#a", "data-rect", "0,200,40,20")
	require.NoError(t, err)
	name, _ := a.Page().ByID("name")
	below, ok := a.Graph().Neighbor(name, focus.Down)
	require.True(t, ok, "moved element is linked at its new position")
	assert.Equal(t, "a", below.(*page.Element).ID())
	assert.NoError(t, a.Graph().CheckSymmetry())
}

func TestKeymapLayering(t *testing.T) {
	dir := t.TempDir()
	script := writeFile(t, dir, "init.lua", `
vimfocus.map("normal", "w", "focus.right")
vimfocus.map("normal", "b", "focus.left")
vimfocus.action("focus.first", function(ctx)
  ctx.focus_anchor()
end, "focus the top-left element")
`)

	cfg := config.Default()
	cfg.Keymap = keymap.Overrides{
		"normal": {"w": keymap.ActionFocusDown, "g": "focus.first"},
	}

	core, logs := observer.New(zapcore.InfoLevel)
	a := newTestApp(t, Options{Config: cfg, ScriptPath: script, Logger: zap.New(core)})

	loaded := logs.FilterMessage("plugin script loaded").All()
	require.Len(t, loaded, 1)
	assert.Equal(t, int64(2), loaded[0].ContextMap()["edits"])

	press(t, a, "l", "w")
	assert.Equal(t, "name", focusedID(a), "config overrides the script's w")

	press(t, a, "k", "b")
	assert.Equal(t, "a", focusedID(a), "script binding stays when config is silent")

	press(t, a, "l", "l", "g")
	assert.Equal(t, "a", focusedID(a), "config can bind a script action")
}

func TestBrokenScriptFallsBack(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	script := writeFile(t, t.TempDir(), "init.lua", `vimfocus.map("normal", "h", "focus.nowhere")`)

	a := newTestApp(t, Options{ScriptPath: script, Logger: zap.New(core)})

	press(t, a, "l", "l", "h")
	assert.Equal(t, "a", focusedID(a), "defaults still apply")
	assert.Equal(t, 1, logs.FilterMessage("plugin script skipped").Len())
}

func TestApplyReload(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	script := writeFile(t, t.TempDir(), "init.lua", `vimfocus.map("normal", "w", "focus.right")`)
	a := newTestApp(t, Options{ScriptPath: script, Logger: zap.New(core)})

	next := config.Default()
	next.Keymap = keymap.Overrides{"normal": {"x": keymap.ActionFocusDown}}
	require.NoError(t, a.ApplyReload(config.Reload{Config: next}))
	assert.Same(t, next, a.Config())

	press(t, a, "l", "w", "x")
	assert.Equal(t, "name", focusedID(a), "script and config bindings both survive the reload")
	assert.Equal(t, 1, logs.FilterMessage("config reloaded").Len())

	bad := config.Reload{Err: config.ErrInvalidConfig}
	assert.ErrorIs(t, a.ApplyReload(bad), config.ErrInvalidConfig)
	assert.Same(t, next, a.Config())
	assert.True(t, a.Dispatcher().Keymap().Has(mode.Normal, "x"))
}

func TestApplyReloadNavigationChange(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	a := newTestApp(t, Options{Logger: zap.New(core)})

	next := config.Default()
	next.Navigation.MaxChainSteps = 3
	next.Navigation.CancelKey = "C-g"
	next.Keymap = keymap.Overrides{"normal": {"w": keymap.ActionFocusRight}}
	require.NoError(t, a.ApplyReload(config.Reload{Config: next}))
	assert.Equal(t, 1, logs.FilterMessage("navigation settings change on restart").Len())

	assert.Equal(t, config.Default().Navigation, a.Config().Navigation)
	assert.Equal(t, keymap.ActionFocusRight, a.Config().Keymap["normal"]["w"])

	require.NoError(t, a.ApplyReload(config.Reload{Config: next}))
	assert.Equal(t, 2, logs.FilterMessage("navigation settings change on restart").Len())
}

func TestWatch(t *testing.T) {
	a := newTestApp(t, Options{})
	_, err := a.Watch()
	assert.ErrorIs(t, err, ErrNoConfigPath)

	dir := t.TempDir()
	path := writeFile(t, dir, "config.toml", "[log]\nlevel = \"info\"\n")
	cfg, err := config.Load(path)
	require.NoError(t, err)

	b := newTestApp(t, Options{Config: cfg, ConfigPath: path})
	reloads, err := b.Watch(config.WithDebounce(10 * time.Millisecond))
	require.NoError(t, err)

	again, err := b.Watch()
	require.NoError(t, err)
	assert.Equal(t, reloads, again)

	writeFile(t, dir, "config.toml", "[keymap.normal]\n\"x\" = \"focus.down\"\n")

	select {
	case r := <-reloads:
		require.NoError(t, b.ApplyReload(r))
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after config change")
	}
	press(t, b, "l", "x")
	assert.Equal(t, "name", focusedID(b))

	require.NoError(t, b.Close())
	_, err = b.Watch()
	assert.ErrorIs(t, err, ErrClosed)
}

func TestRecorderHook(t *testing.T) {
	a := newTestApp(t, Options{})

	press(t, a, "l")
	a.Recorder().Start("session")
	press(t, a, "2", "l", "i")
	m := a.Recorder().Stop()

	assert.Equal(t, "session", m.Name)
	assert.Equal(t, []string{"2", "l", "i"}, m.Keys)
}

func TestCloseDetachesPage(t *testing.T) {
	a := newTestApp(t, Options{})
	require.NoError(t, a.Close())
	require.NoError(t, a.Close())

	_, err := a.Page().Append("body", `<button id="d" data-rect="300,0,40,20">D</button>`)
	require.NoError(t, err)
	assert.Equal(t, 4, a.Graph().Len())
}

func TestInitError(t *testing.T) {
	err := &InitError{Component: "keymap", Err: keymap.ErrUnknownAction}
	assert.ErrorIs(t, err, keymap.ErrUnknownAction)
	assert.Contains(t, err.Error(), "keymap")
}

func TestNewCopiesConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Keymap = keymap.Overrides{"normal": {"w": keymap.ActionFocusRight}}
	a := newTestApp(t, Options{Config: cfg})

	cfg.Keymap["normal"]["w"] = keymap.ActionFocusLeft
	assert.Equal(t, keymap.ActionFocusRight, a.Config().Keymap["normal"]["w"])
}
