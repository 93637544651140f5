package macro

import (
	"context"
	"errors"

	"github.com/dshills/vimfocus/internal/input/key"
)

// EventHandler processes one replayed key event. Returning an error stops
// playback.
type EventHandler func(ev key.Event) error

// Play replays m count times (at least once) through handler. It stops
// early when ctx is done or handler fails.
func Play(ctx context.Context, m Macro, count int, handler EventHandler) error {
	if handler == nil {
		return errors.New("macro: nil handler")
	}
	if m.Len() == 0 {
		return ErrEmptyMacro
	}
	events, err := m.Events()
	if err != nil {
		return err
	}
	if count < 1 {
		count = 1
	}

	for i := 0; i < count; i++ {
		for _, ev := range events {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := handler(ev); err != nil {
				return err
			}
		}
	}
	return nil
}
