package focus

import "errors"

// Errors returned by the focus package.
var (
	ErrUnknownDirection = errors.New("unknown direction")
	ErrAsymmetricLink   = errors.New("asymmetric neighbor link")
	ErrChainTooLong     = errors.New("neighbor chain exceeded step limit")
)
