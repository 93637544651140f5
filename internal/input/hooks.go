package input

import (
	"sort"

	"go.uber.org/zap"

	"github.com/dshills/vimfocus/internal/input/key"
	"github.com/dshills/vimfocus/internal/input/mode"
)

// Hook observes keydowns around dispatch.
type Hook interface {
	// PreKeyDown is called before a key is dispatched.
	// Return true to consume the key; it is then suppressed.
	PreKeyDown(ev key.Event, m mode.Mode) bool

	// PostKeyDown is called with the outcome of every key.
	PostKeyDown(ev key.Event, out Outcome)
}

// HookPriority defines the execution order for hooks.
// Lower values execute first.
type HookPriority int

const (
	// HookPriorityHigh runs early in the hook chain.
	HookPriorityHigh HookPriority = -100
	// HookPriorityNormal is the default priority.
	HookPriorityNormal HookPriority = 0
	// HookPriorityLow runs late in the hook chain.
	HookPriorityLow HookPriority = 100
)

// HookID uniquely identifies a registered hook.
type HookID uint64

// HookRegistration holds metadata about a registered hook.
type HookRegistration struct {
	ID       HookID
	Name     string
	Priority HookPriority
	Hook     Hook
}

// HookManager runs hooks in priority order. Hooks with the same priority
// run in registration order.
type HookManager struct {
	hooks  []HookRegistration
	nextID HookID
	sorted bool
}

// NewHookManager creates an empty hook manager.
func NewHookManager() *HookManager {
	return &HookManager{sorted: true}
}

// Register adds a hook and returns its ID.
func (m *HookManager) Register(hook Hook, name string, priority HookPriority) HookID {
	m.nextID++
	m.hooks = append(m.hooks, HookRegistration{
		ID:       m.nextID,
		Name:     name,
		Priority: priority,
		Hook:     hook,
	})
	m.sorted = false
	return m.nextID
}

// Unregister removes a hook by ID.
func (m *HookManager) Unregister(id HookID) bool {
	for i := range m.hooks {
		if m.hooks[i].ID == id {
			m.hooks = append(m.hooks[:i], m.hooks[i+1:]...)
			return true
		}
	}
	return false
}

// Count returns the number of registered hooks.
func (m *HookManager) Count() int {
	return len(m.hooks)
}

// List returns the registrations in execution order.
func (m *HookManager) List() []HookRegistration {
	m.ensureSorted()
	result := make([]HookRegistration, len(m.hooks))
	copy(result, m.hooks)
	return result
}

func (m *HookManager) ensureSorted() {
	if m.sorted {
		return
	}
	sort.SliceStable(m.hooks, func(i, j int) bool {
		return m.hooks[i].Priority < m.hooks[j].Priority
	})
	m.sorted = true
}

func (m *HookManager) pre(ev key.Event, md mode.Mode) bool {
	m.ensureSorted()
	for _, reg := range m.hooks {
		if reg.Hook.PreKeyDown(ev, md) {
			return true
		}
	}
	return false
}

func (m *HookManager) post(ev key.Event, out Outcome) {
	m.ensureSorted()
	for _, reg := range m.hooks {
		reg.Hook.PostKeyDown(ev, out)
	}
}

// FuncHook wraps functions into a Hook. Nil functions are no-ops.
type FuncHook struct {
	Pre  func(ev key.Event, m mode.Mode) bool
	Post func(ev key.Event, out Outcome)
}

// PreKeyDown calls Pre if set.
func (h FuncHook) PreKeyDown(ev key.Event, m mode.Mode) bool {
	if h.Pre != nil {
		return h.Pre(ev, m)
	}
	return false
}

// PostKeyDown calls Post if set.
func (h FuncHook) PostKeyDown(ev key.Event, out Outcome) {
	if h.Post != nil {
		h.Post(ev, out)
	}
}

// LoggingHook logs every outcome at debug level.
type LoggingHook struct {
	Logger *zap.Logger
}

// PreKeyDown never consumes.
func (LoggingHook) PreKeyDown(key.Event, mode.Mode) bool {
	return false
}

// PostKeyDown logs the outcome.
func (h LoggingHook) PostKeyDown(ev key.Event, out Outcome) {
	if h.Logger == nil {
		return
	}
	h.Logger.Debug("key",
		zap.String("key", ev.GoString()),
		zap.Stringer("mode", out.Mode),
		zap.Stringer("result", out.Result),
		zap.String("action", out.Action),
		zap.Bool("suppress", out.Suppress),
	)
}
