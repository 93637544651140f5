package input

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/dshills/vimfocus/internal/focus"
	"github.com/dshills/vimfocus/internal/input/count"
	"github.com/dshills/vimfocus/internal/input/key"
	"github.com/dshills/vimfocus/internal/input/keymap"
	"github.com/dshills/vimfocus/internal/input/mode"
)

// ErrNoHost is returned when a dispatcher is created without a page host.
var ErrNoHost = errors.New("dispatcher requires a host")

// Config configures the dispatcher.
type Config struct {
	// CancelKey clears the pending count in normal mode when it is not
	// bound to anything. Default: "Escape"
	CancelKey string
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		CancelKey: "Escape",
	}
}

// Dispatcher is the keydown entry point. It owns the mode state, the
// pending count and the binding table, and runs bound actions against the
// focus navigator.
//
// A Dispatcher is owned by the event loop and is not safe for concurrent
// use.
type Dispatcher struct {
	cancel key.Event

	modes  *mode.Controller
	count  count.Buffer
	keymap *keymap.Table

	host focus.Host
	nav  *focus.Navigator

	hooks   *HookManager
	metrics *Metrics

	logger *zap.Logger
}

// NewDispatcher creates a dispatcher in normal mode.
func NewDispatcher(cfg Config, host focus.Host, nav *focus.Navigator, table *keymap.Table, logger *zap.Logger) (*Dispatcher, error) {
	if host == nil {
		return nil, ErrNoHost
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.CancelKey == "" {
		cfg.CancelKey = DefaultConfig().CancelKey
	}
	cancel, err := key.ParseCombo(cfg.CancelKey)
	if err != nil {
		return nil, fmt.Errorf("cancel key: %w", err)
	}
	if table == nil {
		table = keymap.NewTable()
	}

	d := &Dispatcher{
		cancel:  cancel,
		modes:   mode.NewController(logger),
		keymap:  table,
		host:    host,
		nav:     nav,
		hooks:   NewHookManager(),
		metrics: NewMetrics(),
		logger:  logger.Named("dispatch"),
	}

	// A count never survives a mode switch.
	d.modes.OnChange(func(_, _ mode.Mode) {
		d.count.Reset()
	})
	return d, nil
}

// HandleKeyDown processes one keydown and reports how the host should
// treat the event.
func (d *Dispatcher) HandleKeyDown(ev key.Event) Outcome {
	start := time.Now()
	out := d.dispatch(ev)
	d.hooks.post(ev, out)
	d.metrics.record(out, time.Since(start))
	return out
}

func (d *Dispatcher) dispatch(ev key.Event) Outcome {
	m := d.modes.Current()
	out := Outcome{Mode: m, Combo: ev.Combo()}

	if d.hooks.pre(ev, m) {
		out.Result = ResultHook
		out.Suppress = true
		return out
	}

	// Bare modifiers and unidentified keys leave the count alone.
	if out.Combo == "" {
		out.Result = ResultIgnored
		out.Suppress = m == mode.Normal
		return out
	}

	if m == mode.Normal {
		if digit, ok := ev.Digit(); ok && d.count.Push(digit) {
			out.Result = ResultCount
			out.Suppress = true
			return out
		}
	}

	b, combo, ok := d.keymap.Match(m, ev)
	if !ok {
		out.Result = ResultUnbound
		if m == mode.Normal {
			if ev.Equals(d.cancel) {
				out.Result = ResultCancel
			}
			d.count.Reset()
			out.Suppress = true
		}
		return out
	}
	out.Combo = combo

	n := d.count.Take()
	ctx := &keymap.Context{
		Element:   d.host.ActiveElement(),
		Host:      d.host,
		Navigator: d.nav,
		Modes:     d.modes,
		Count:     n,
		Combo:     combo,
	}
	if err := b.Handler(ctx); err != nil {
		d.logger.Warn("action failed",
			zap.String("action", b.Action),
			zap.String("combo", combo),
			zap.Error(err),
		)
		out.Err = err
	}

	out.Result = ResultAction
	out.Action = b.Action
	out.Count = n
	out.Suppress = !ctx.DefaultRequested()

	d.logger.Debug("dispatched",
		zap.Stringer("mode", m),
		zap.String("combo", combo),
		zap.String("action", b.Action),
		zap.Int("count", n),
		zap.Bool("suppress", out.Suppress),
	)
	return out
}

// Modes returns the mode controller.
func (d *Dispatcher) Modes() *mode.Controller {
	return d.modes
}

// Mode returns the current mode.
func (d *Dispatcher) Mode() mode.Mode {
	return d.modes.Current()
}

// Keymap returns the active binding table.
func (d *Dispatcher) Keymap() *keymap.Table {
	return d.keymap
}

// SetKeymap replaces the binding table. The pending count is discarded.
func (d *Dispatcher) SetKeymap(t *keymap.Table) {
	if t == nil {
		return
	}
	d.keymap = t
	d.count.Reset()
	d.logger.Debug("keymap replaced",
		zap.Int("normal", t.Len(mode.Normal)),
		zap.Int("insert", t.Len(mode.Insert)),
	)
}

// Navigator returns the focus navigator.
func (d *Dispatcher) Navigator() *focus.Navigator {
	return d.nav
}

// Host returns the page host.
func (d *Dispatcher) Host() focus.Host {
	return d.host
}

// PendingCount returns the digits typed so far, or "" when none.
func (d *Dispatcher) PendingCount() string {
	return d.count.Pending()
}

// Hooks returns the hook manager.
func (d *Dispatcher) Hooks() *HookManager {
	return d.hooks
}

// Metrics returns the dispatch counters.
func (d *Dispatcher) Metrics() *Metrics {
	return d.metrics
}
