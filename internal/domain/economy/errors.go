package economy

import "errors"

// Sentinel kinds for ledger errors.
var (
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrInsufficientFunds = errors.New("insufficient funds")
)
