package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/vimfocus/internal/input/macro"
)

const formPage = `<html><head><title>Form</title></head><body>
  <button id="a" data-rect="0,0,40,20">A</button>
  <button id="b" data-rect="100,0,40,20">B</button>
  <button id="c" data-rect="200,0,40,20" disabled>C</button>
  <input id="name" value="vimfocus" data-rect="0,100,240,20">
</body></html>`

// isolate keeps the user's config and environment out of the test.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("VIMFOCUS_CONFIG", "")
	t.Setenv("VIMFOCUS_LOG_LEVEL", "")
	t.Setenv("VIMFOCUS_MAX_CHAIN_STEPS", "")
	return dir
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--log-level", "off"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestGraphText(t *testing.T) {
	dir := isolate(t)
	pagePath := writeFile(t, dir, "form.html", formPage)

	out, err := execute(t, "graph", pagePath)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "ID"))
	assert.Contains(t, lines[1], "anchor")
	assert.Contains(t, lines[3], "skipped")
	assert.Regexp(t, `^a\s+button\s+0,0 40x20\s+-\s+b\s`, lines[1])
}

func TestGraphJSON(t *testing.T) {
	dir := isolate(t)
	pagePath := writeFile(t, dir, "form.html", formPage)

	out, err := execute(t, "graph", pagePath, "--format", "json")
	require.NoError(t, err)

	var nodes []graphNode
	require.NoError(t, json.Unmarshal([]byte(out), &nodes))
	require.Len(t, nodes, 4)
	assert.Equal(t, "a", nodes[0].ID)
	assert.True(t, nodes[0].Anchor)
	assert.Equal(t, "b", nodes[0].Neighbors["right"])
	assert.Equal(t, "name", nodes[1].Neighbors["down"])
	assert.False(t, nodes[2].Eligible)
}

func TestGraphErrors(t *testing.T) {
	dir := isolate(t)
	pagePath := writeFile(t, dir, "form.html", formPage)

	_, err := execute(t, "graph", pagePath, "--format", "xml")
	assert.ErrorContains(t, err, "unknown format")

	_, err = execute(t, "graph", filepath.Join(dir, "missing.html"))
	assert.ErrorContains(t, err, "loading page")

	_, err = execute(t, "graph")
	assert.Error(t, err)
}

func TestReplayArgs(t *testing.T) {
	dir := isolate(t)
	pagePath := writeFile(t, dir, "form.html", formPage)

	out, err := execute(t, "replay", pagePath, "l", "2", "l", "j", "i", "x", "Escape", "F5")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 9)
	assert.Regexp(t, `^l\s+action\s+focus.right\s+prevented\s+a\s+normal`, lines[1])
	assert.Regexp(t, `^2\s+count\s+-\s+prevented\s+a\s+normal\s+2`, lines[2])
	assert.Regexp(t, `^j\s+action\s+focus.down\s+prevented\s+name\s+normal`, lines[4])
	assert.Regexp(t, `^x\s+unbound\s+-\s+allowed\s+name\s+insert`, lines[6])
	assert.Regexp(t, `^F5\s+action\s+browser.default\s+allowed`, lines[8])
}

func TestReplayJSON(t *testing.T) {
	dir := isolate(t)
	pagePath := writeFile(t, dir, "form.html", formPage)

	out, err := execute(t, "replay", pagePath, "--format", "json", "l", "3", "l")
	require.NoError(t, err)

	var steps []replayStep
	require.NoError(t, json.Unmarshal([]byte(out), &steps))
	require.Len(t, steps, 3)
	assert.Equal(t, "count", steps[1].Result)
	assert.Equal(t, 3, steps[2].Count)
	assert.Equal(t, "b", steps[2].Focused, "the disabled button is skipped and the count clamps")
}

func TestReplayFile(t *testing.T) {
	dir := isolate(t)
	pagePath := writeFile(t, dir, "form.html", formPage)
	macroPath := filepath.Join(dir, "session.yaml")
	require.NoError(t, macro.Save(macroPath, macro.Macro{Name: "s", Keys: []string{"l", "l", "j"}}))

	out, err := execute(t, "replay", pagePath, "--file", macroPath, "--format", "json")
	require.NoError(t, err)

	var steps []replayStep
	require.NoError(t, json.Unmarshal([]byte(out), &steps))
	require.Len(t, steps, 3)
	assert.Equal(t, "name", steps[2].Focused)
}

func TestReplayErrors(t *testing.T) {
	dir := isolate(t)
	pagePath := writeFile(t, dir, "form.html", formPage)

	_, err := execute(t, "replay", pagePath)
	assert.ErrorContains(t, err, "no keys")

	_, err = execute(t, "replay", pagePath, "--file", "x.yaml", "l")
	assert.ErrorContains(t, err, "not both")

	_, err = execute(t, "replay", pagePath, "C-")
	assert.Error(t, err)
}

func TestReplayScriptAndConfig(t *testing.T) {
	dir := isolate(t)
	pagePath := writeFile(t, dir, "form.html", formPage)
	script := writeFile(t, dir, "init.lua", `vimfocus.map("normal", "w", "focus.right")`)
	cfgPath := writeFile(t, dir, "config.toml", "[keymap.normal]\n\"x\" = \"focus.down\"\n")

	out, err := execute(t, "--config", cfgPath, "replay", pagePath, "--script", script, "--format", "json", "l", "w", "x")
	require.NoError(t, err)

	var steps []replayStep
	require.NoError(t, json.Unmarshal([]byte(out), &steps))
	require.Len(t, steps, 3)
	assert.Equal(t, "b", steps[1].Focused)
	assert.Equal(t, "name", steps[2].Focused)
}

func TestKeys(t *testing.T) {
	dir := isolate(t)
	cfgPath := writeFile(t, dir, "config.yaml", "keymap:\n  normal:\n    w: focus.right\n")

	out, err := execute(t, "--config", cfgPath, "keys")
	require.NoError(t, err)
	assert.Contains(t, out, "NORMAL mode")
	assert.Contains(t, out, "INSERT mode")
	assert.Regexp(t, `\n\s+w\s+focus.right`, out)
	assert.Regexp(t, `\n\s+Escape\s+mode.normal`, out)

	out, err = execute(t, "keys", "--mode", "insert")
	require.NoError(t, err)
	assert.NotContains(t, out, "NORMAL mode")

	_, err = execute(t, "keys", "--mode", "visual")
	assert.Error(t, err)
}

func TestConfigCommand(t *testing.T) {
	dir := isolate(t)

	out, err := execute(t, "config", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "max_chain_steps: 100")

	cfgPath := writeFile(t, dir, "config.toml", "[navigation]\nmax_chain_steps = 12\n")
	out, err = execute(t, "--config", cfgPath, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "max_chain_steps = 12")

	_, err = execute(t, "config", "--format", "ini")
	assert.Error(t, err)

	bad := writeFile(t, dir, "bad.toml", "[navigation]\nmax_chain_steps = -1\n")
	_, err = execute(t, "--config", bad, "config")
	assert.Error(t, err)
}

func TestConfigKeymap(t *testing.T) {
	dir := isolate(t)
	script := writeFile(t, dir, "init.lua", `vimfocus.map("normal", "w", "focus.right")`)

	out, err := execute(t, "config", "--keymap", "--format", "yaml", "--script", script)
	require.NoError(t, err)
	assert.Contains(t, out, "l: focus.right")
	assert.Contains(t, out, "w: focus.right")
	assert.Contains(t, out, "Escape: mode.normal")

	out, err = execute(t, "config", "--format", "yaml")
	require.NoError(t, err)
	assert.NotContains(t, out, "keymap:")
}

func TestSessionName(t *testing.T) {
	name := sessionName("/tmp/demo.yaml")
	assert.True(t, strings.HasPrefix(name, "demo-"))
	assert.Len(t, name, len("demo-")+8)
}
