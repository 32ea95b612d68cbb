package risk

import "errors"

// Sentinel kinds for risk errors.
var (
	ErrInvalidAmount = errors.New("invalid heat amount")
)
