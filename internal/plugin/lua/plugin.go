package lua

import (
	"errors"
	"fmt"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/dshills/vimfocus/internal/input/keymap"
)

// Plugin runs a keymap script against a binding table.
type Plugin struct {
	state   *State
	table   *keymap.Table
	actions *keymap.Actions
	journal []edit
	logger  *zap.Logger
}

// edit is one successful keymap change, replayable onto another table.
type edit struct {
	desc  string
	apply func(*keymap.Table) error
}

// New creates a plugin editing table. Actions registered by scripts are
// added to actions so configuration files can name them.
func New(table *keymap.Table, actions *keymap.Actions, logger *zap.Logger, opts ...StateOption) *Plugin {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("lua")

	p := &Plugin{
		table:   table,
		actions: actions,
		logger:  logger,
	}
	p.state = NewState(append([]StateOption{WithLogger(logger)}, opts...)...)
	p.install()
	return p
}

// Run executes the script at path.
func (p *Plugin) Run(path string) error {
	if err := p.state.DoFile(path); err != nil {
		p.logger.Warn("script failed", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("running %s: %w", path, err)
	}
	p.logger.Debug("script loaded", zap.String("path", path), zap.Int("edits", len(p.journal)))
	return nil
}

// RunString executes a Lua chunk.
func (p *Plugin) RunString(code string) error {
	if err := p.state.DoString(code); err != nil {
		p.logger.Warn("script failed", zap.Error(err))
		return err
	}
	return nil
}

// Table returns the table the plugin currently edits.
func (p *Plugin) Table() *keymap.Table {
	return p.table
}

// Edits returns the number of journaled keymap edits.
func (p *Plugin) Edits() int {
	return len(p.journal)
}

// Replay applies every journaled edit to t and makes t the plugin's
// table. Edits that no longer apply are skipped; their errors are
// returned joined.
func (p *Plugin) Replay(t *keymap.Table) error {
	var errs []error
	for _, e := range p.journal {
		if err := e.apply(t); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", e.desc, err))
		}
	}
	p.table = t
	return errors.Join(errs...)
}

// Close releases the Lua state.
func (p *Plugin) Close() error {
	return p.state.Close()
}

// record applies e to the current table and journals it on success.
func (p *Plugin) record(e edit) error {
	if err := e.apply(p.table); err != nil {
		return err
	}
	p.journal = append(p.journal, e)
	p.logger.Debug("keymap edit", zap.String("edit", e.desc))
	return nil
}

// handler adapts a Lua function to a keymap handler.
func (p *Plugin) handler(fn *lua.LFunction) keymap.Handler {
	return func(kc *keymap.Context) error {
		return p.state.CallFunction(fn, newContextTable(p.state.L, kc))
	}
}
