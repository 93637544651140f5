package keymap

import "errors"

// Errors returned by the binding table and action registry.
var (
	ErrAlreadyBound   = errors.New("combination already bound")
	ErrNotBound       = errors.New("combination not bound")
	ErrUnknownAction  = errors.New("unknown action")
	ErrInvalidBinding = errors.New("invalid binding")
)
