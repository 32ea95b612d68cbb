package engine

import "errors"

// Sentinel kinds for engine errors.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotOwned     = errors.New("vehicle not owned")
)
