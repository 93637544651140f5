package app

import (
	"go.uber.org/zap"

	"github.com/dshills/vimfocus/internal/config"
	"github.com/dshills/vimfocus/internal/focus"
	"github.com/dshills/vimfocus/internal/input"
	"github.com/dshills/vimfocus/internal/input/key"
	"github.com/dshills/vimfocus/internal/input/keymap"
	"github.com/dshills/vimfocus/internal/input/macro"
	"github.com/dshills/vimfocus/internal/input/mode"
	"github.com/dshills/vimfocus/internal/page"
	"github.com/dshills/vimfocus/internal/plugin/lua"
)

// Options configures the application.
type Options struct {
	// Config is the effective configuration. Nil means config.Default().
	// The application keeps its own copy.
	Config *config.Config

	// ConfigPath is the file Watch reloads.
	ConfigPath string

	// ScriptPath overrides the configured Lua script.
	ScriptPath string

	// Logger receives all component logs. Nil means no logging.
	Logger *zap.Logger
}

// Application wires a page to the focus graph, the navigator and the
// modal dispatcher, and keeps the graph in step with page mutations.
//
// An Application is owned by one event loop goroutine.
type Application struct {
	cfg        *config.Config
	configPath string

	page       *page.Page
	graph      *focus.Graph
	nav        *focus.Navigator
	actions    *keymap.Actions
	dispatcher *input.Dispatcher
	plugin     *lua.Plugin
	recorder   *macro.Recorder
	watcher    *config.Watcher

	unobserve func()
	logger    *zap.Logger
	closed    bool
}

// New assembles an application around pg.
func New(pg *page.Page, opts Options) (*Application, error) {
	cfg := config.Default()
	if opts.Config != nil {
		cfg = opts.Config.Clone()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	a := &Application{
		cfg:        cfg,
		configPath: opts.ConfigPath,
		page:       pg,
		actions:    keymap.NewActions(),
		recorder:   macro.NewRecorder(),
		logger:     logger.Named("app"),
	}

	a.graph = focus.NewGraph(logger)
	n := a.graph.Register(pg.Focusables()...)
	a.logger.Debug("graph built", zap.Int("elements", n))

	a.nav = focus.NewNavigator(a.graph,
		focus.WithMaxChainSteps(cfg.Navigation.MaxChainSteps),
		focus.WithLogger(logger),
	)

	table, err := keymap.Defaults(a.actions)
	if err != nil {
		return nil, &InitError{Component: "keymap", Err: err}
	}

	script := opts.ScriptPath
	if script == "" {
		script = cfg.ScriptPath()
	}
	if script != "" {
		a.plugin = lua.New(table, a.actions, logger)
		if err := a.plugin.Run(script); err != nil {
			a.logger.Warn("plugin script skipped", zap.String("path", script), zap.Error(err))
		} else {
			a.logger.Info("plugin script loaded", zap.String("path", script), zap.Int("edits", a.plugin.Edits()))
		}
	}

	if err := keymap.Apply(table, a.actions, cfg.Keymap); err != nil {
		a.logger.Warn("rejected config bindings", zap.Error(err))
	}

	a.dispatcher, err = input.NewDispatcher(
		input.Config{CancelKey: cfg.Navigation.CancelKey},
		pg, a.nav, table, logger,
	)
	if err != nil {
		a.closePlugin()
		return nil, &InitError{Component: "dispatcher", Err: err}
	}

	a.dispatcher.Hooks().Register(input.FuncHook{
		Pre: func(ev key.Event, _ mode.Mode) bool {
			a.recorder.Record(ev)
			return false
		},
	}, "recorder", input.HookPriorityHigh)
	a.dispatcher.Hooks().Register(input.LoggingHook{Logger: logger.Named("keys")}, "logging", input.HookPriorityLow)

	a.unobserve = pg.Observe(a.applyMutation)
	return a, nil
}

// HandleKey dispatches one keydown.
func (a *Application) HandleKey(ev key.Event) input.Outcome {
	return a.dispatcher.HandleKeyDown(ev)
}

// applyMutation keeps the graph in step with the page.
func (a *Application) applyMutation(m page.Mutation) {
	for _, el := range m.Removed {
		a.graph.Unregister(el)
	}
	for _, el := range m.Moved {
		a.graph.Refresh(el)
	}
	added := a.graph.Register(m.Added...)

	a.logger.Debug("page mutation",
		zap.Int("added", added),
		zap.Int("removed", len(m.Removed)),
		zap.Int("moved", len(m.Moved)),
		zap.Int("elements", a.graph.Len()),
	)
}

// Page returns the page.
func (a *Application) Page() *page.Page { return a.page }

// Graph returns the focus graph.
func (a *Application) Graph() *focus.Graph { return a.graph }

// Navigator returns the directional resolver.
func (a *Application) Navigator() *focus.Navigator { return a.nav }

// Dispatcher returns the key dispatcher.
func (a *Application) Dispatcher() *input.Dispatcher { return a.dispatcher }

// Actions returns the action registry, including script actions.
func (a *Application) Actions() *keymap.Actions { return a.actions }

// Config returns the effective configuration.
func (a *Application) Config() *config.Config { return a.cfg }

// Recorder returns the key session recorder.
func (a *Application) Recorder() *macro.Recorder { return a.recorder }

// Mode returns the current mode.
func (a *Application) Mode() mode.Mode { return a.dispatcher.Mode() }

// Focused returns the active element, if any.
func (a *Application) Focused() (*page.Element, bool) {
	return a.page.Active()
}

// Close stops the config watcher, detaches from the page and releases the
// Lua state.
func (a *Application) Close() error {
	if a.closed {
		return nil
	}
	a.closed = true

	var err error
	if a.watcher != nil {
		err = a.watcher.Close()
	}
	if a.unobserve != nil {
		a.unobserve()
	}
	a.closePlugin()
	return err
}

func (a *Application) closePlugin() {
	if a.plugin != nil {
		_ = a.plugin.Close()
	}
}
