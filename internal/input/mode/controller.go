package mode

import (
	"fmt"

	"go.uber.org/zap"
)

// ChangeCallback is called when the mode changes.
type ChangeCallback func(from, to Mode)

// Controller holds the current mode.
// It is owned by the event loop and is not safe for concurrent use.
type Controller struct {
	current Mode

	// callbacks are notified on mode changes.
	callbacks []ChangeCallback

	logger *zap.Logger
}

// NewController creates a controller in normal mode.
func NewController(logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		current: Normal,
		logger:  logger.Named("mode"),
	}
}

// Current returns the current mode.
func (c *Controller) Current() Mode {
	return c.current
}

// Is returns true if the current mode matches m.
func (c *Controller) Is(m Mode) bool {
	return c.current == m
}

// Set switches to m. Switching to the current mode is a no-op and does
// not notify callbacks.
func (c *Controller) Set(m Mode) error {
	if !m.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownMode, m)
	}
	if c.current == m {
		return nil
	}

	from := c.current
	c.current = m
	c.logger.Debug("mode changed", zap.Stringer("from", from), zap.Stringer("to", m))

	for _, cb := range c.callbacks {
		if cb != nil {
			cb(from, m)
		}
	}
	return nil
}

// OnChange registers a callback for mode changes.
// Returns a function to unregister the callback.
func (c *Controller) OnChange(callback ChangeCallback) func() {
	c.callbacks = append(c.callbacks, callback)
	index := len(c.callbacks) - 1

	return func() {
		// Remove callback by setting to nil (preserves indices)
		if index < len(c.callbacks) {
			c.callbacks[index] = nil
		}
	}
}
