package input

import (
	"github.com/dshills/vimfocus/internal/input/mode"
)

// Result classifies how a keydown was handled.
type Result uint8

const (
	// ResultIgnored is a key with no combination, such as a bare modifier.
	ResultIgnored Result = iota
	// ResultCount is a digit added to the pending count.
	ResultCount
	// ResultCancel is the cancel key clearing the pending count.
	ResultCancel
	// ResultAction is a key that ran a binding.
	ResultAction
	// ResultUnbound is a key with no binding in the current mode.
	ResultUnbound
	// ResultHook is a key consumed by a hook.
	ResultHook
)

// String returns a string representation of the result.
func (r Result) String() string {
	switch r {
	case ResultIgnored:
		return "ignored"
	case ResultCount:
		return "count"
	case ResultCancel:
		return "cancel"
	case ResultAction:
		return "action"
	case ResultUnbound:
		return "unbound"
	case ResultHook:
		return "hook"
	default:
		return "unknown"
	}
}

// Outcome reports what the dispatcher did with one keydown.
type Outcome struct {
	// Mode is the mode the key arrived in.
	Mode mode.Mode

	// Combo is the canonical combination of the key.
	Combo string

	// Result classifies the handling.
	Result Result

	// Action is the bound action name for ResultAction.
	Action string

	// Count is the repeat count the action ran with.
	Count int

	// Suppress tells the host to stop the event: no default action and no
	// further propagation.
	Suppress bool

	// Err is the error returned by the action handler, if any.
	Err error
}

// PassThrough reports whether the host should let the key through.
func (o Outcome) PassThrough() bool {
	return !o.Suppress
}
