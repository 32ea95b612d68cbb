package prestige

import "errors"

// Sentinel kinds for prestige errors.
var (
	ErrRequirementsNotMet = errors.New("prestige requirements not met")
)
