package catalog

import "errors"

// Sentinel kinds for catalog errors.
var (
	ErrNotFound          = errors.New("not found in catalog")
	ErrInvalidDefinition = errors.New("invalid catalog definition")
	ErrLoadCatalog       = errors.New("load catalog failed")
)
