package app

import (
	"context"

	"github.com/dshills/vimfocus/internal/input"
	"github.com/dshills/vimfocus/internal/input/key"
	"github.com/dshills/vimfocus/internal/input/macro"
	"github.com/dshills/vimfocus/internal/input/mode"
)

// Step is the state after one replayed key.
type Step struct {
	Combo   string
	Outcome input.Outcome
	Focused string
	Mode    mode.Mode
	Pending string
}

// Press dispatches ev and reports the resulting state.
func (a *Application) Press(ev key.Event) Step {
	out := a.HandleKey(ev)
	s := Step{
		Combo:   ev.Combo(),
		Outcome: out,
		Mode:    a.Mode(),
		Pending: a.dispatcher.PendingCount(),
	}
	if el, ok := a.Focused(); ok {
		s.Focused = el.ID()
	}
	return s
}

// Replay feeds m through the dispatcher and returns one step per key.
func (a *Application) Replay(ctx context.Context, m macro.Macro) ([]Step, error) {
	steps := make([]Step, 0, m.Len())
	err := macro.Play(ctx, m, 1, func(ev key.Event) error {
		steps = append(steps, a.Press(ev))
		return nil
	})
	return steps, err
}
