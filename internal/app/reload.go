package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/dshills/vimfocus/internal/config"
	"github.com/dshills/vimfocus/internal/input/keymap"
	"github.com/dshills/vimfocus/internal/input/mode"
)

// Watch starts reloading the config file on change. The event loop must
// receive from the returned channel and pass each value to ApplyReload.
func (a *Application) Watch(opts ...config.WatcherOption) (<-chan config.Reload, error) {
	if a.closed {
		return nil, ErrClosed
	}
	if a.configPath == "" {
		return nil, ErrNoConfigPath
	}
	if a.watcher != nil {
		return a.watcher.Reloads(), nil
	}

	opts = append([]config.WatcherOption{config.WithWatcherLogger(a.logger)}, opts...)
	w, err := config.NewWatcher(a.configPath, opts...)
	if err != nil {
		return nil, fmt.Errorf("watching config: %w", err)
	}
	a.watcher = w
	return w.Reloads(), nil
}

// ApplyReload rebuilds the keymap from a reloaded configuration and swaps
// it into the dispatcher. A failed reload keeps the current keymap.
// Navigation settings stay as they were at startup.
func (a *Application) ApplyReload(r config.Reload) error {
	if r.Err != nil {
		a.logger.Warn("config reload rejected, keeping current keymap", zap.Error(r.Err))
		return r.Err
	}

	table, err := a.buildKeymap(r.Config)
	if err != nil {
		return err
	}
	a.dispatcher.SetKeymap(table)

	cfg := r.Config.Clone()
	if cfg.Navigation != a.cfg.Navigation {
		a.logger.Info("navigation settings change on restart")
		cfg.Navigation = a.cfg.Navigation
	}
	a.cfg = cfg

	a.logger.Info("config reloaded",
		zap.Int("normal", table.Len(mode.Normal)),
		zap.Int("insert", table.Len(mode.Insert)),
	)
	return nil
}

// buildKeymap layers the defaults, the script's edits and the config's
// keymap section, in that order. Rejected script edits and config
// entries are logged; the table is still returned.
func (a *Application) buildKeymap(cfg *config.Config) (*keymap.Table, error) {
	table, err := keymap.Defaults(a.actions)
	if err != nil {
		return nil, fmt.Errorf("default keymap: %w", err)
	}
	if a.plugin != nil {
		if err := a.plugin.Replay(table); err != nil {
			a.logger.Warn("script edits no longer apply", zap.Error(err))
		}
	}
	if err := keymap.Apply(table, a.actions, cfg.Keymap); err != nil {
		a.logger.Warn("rejected config bindings", zap.Error(err))
	}
	return table, nil
}
