package upgrade

import "errors"

// Sentinel kinds for upgrade cost errors.
var (
	ErrAtMaxLevel   = errors.New("upgrade already at max level")
	ErrInvalidLevel = errors.New("invalid upgrade level")
)
