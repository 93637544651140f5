package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce coalesces the bursts of events editors emit on save.
const DefaultDebounce = 100 * time.Millisecond

// Reload carries the outcome of re-reading the config file.
// Exactly one of Config and Err is set.
type Reload struct {
	Config *Config
	Err    error
}

// Watcher reloads a config file when it is written or replaced.
//
// The parent directory is watched rather than the file itself so that
// atomic saves (write to a temp file, rename over the original) are seen.
// Results are posted on Reloads; the receiver owns them.
type Watcher struct {
	path     string
	debounce time.Duration
	load     func(string) (*Config, error)
	logger   *zap.Logger

	fs      *fsnotify.Watcher
	reloads chan Reload

	mu       sync.Mutex
	closed   bool
	closeCh  chan struct{}
	closedWg sync.WaitGroup
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce sets the quiet period before a reload.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithWatcherLogger sets the watcher's logger.
func WithWatcherLogger(logger *zap.Logger) WatcherOption {
	return func(w *Watcher) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// WithLoader replaces Load as the function used to re-read the file.
func WithLoader(load func(string) (*Config, error)) WatcherOption {
	return func(w *Watcher) {
		if load != nil {
			w.load = load
		}
	}
}

// NewWatcher starts watching path.
func NewWatcher(path string, opts ...WatcherOption) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}

	w := &Watcher{
		path:     abs,
		debounce: DefaultDebounce,
		load:     Load,
		logger:   zap.NewNop(),
		reloads:  make(chan Reload, 1),
		closeCh:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.logger = w.logger.Named("config-watcher")

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}
	w.fs = fsw

	w.closedWg.Add(1)
	go w.processLoop()

	w.logger.Debug("watching config", zap.String("path", abs))
	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Reloads returns the channel reload results are posted on.
func (w *Watcher) Reloads() <-chan Reload {
	return w.reloads
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	w.mu.Unlock()

	w.closedWg.Wait()
	close(w.reloads)
	return w.fs.Close()
}

func (w *Watcher) processLoop() {
	defer w.closedWg.Done()

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-w.closeCh:
			return

		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			w.logger.Debug("config changed", zap.String("op", ev.Op.String()))
			timer.Reset(w.debounce)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", zap.Error(err))
			w.post(Reload{Err: err})

		case <-timer.C:
			cfg, err := w.load(w.path)
			if err != nil {
				w.logger.Warn("config reload failed", zap.Error(err))
				w.post(Reload{Err: err})
				continue
			}
			w.post(Reload{Config: cfg})
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)
}

func (w *Watcher) post(r Reload) {
	select {
	case w.reloads <- r:
	case <-w.closeCh:
	}
}
