package stats

import "errors"

// Sentinel kinds for stat compilation errors.
var (
	ErrMissingDefinition = errors.New("upgrade category has no definition")
)
