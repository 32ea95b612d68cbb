// Package economy enforces the money invariants and computes race payouts.
package economy

import (
	"fmt"

	"github.com/redlinehq/redline/internal/domain/model"
)

// Default payout tuning. Both tables are ascending by tier, and the
// sanctioned table exceeds the unsanctioned one at every tier to compensate
// for carrying no heat.
const payoutTiers = 5

var (
	defaultUnsanctionedPayouts = [payoutTiers]int64{500, 900, 1500, 2400, 3600}
	defaultSanctionedPayouts   = [payoutTiers]int64{800, 1400, 2200, 3400, 5000}
)

// Ledger performs the money-side operations over a player ledger.
type Ledger struct {
	unsanctionedPayouts [payoutTiers]int64
	sanctionedPayouts   [payoutTiers]int64
}

// Option applies a configuration option to the Ledger.
type Option func(*Ledger)

// WithPayoutTable overrides the base payout table for one risk class.
func WithPayoutTable(class model.RiskClass, table [payoutTiers]int64) Option {
	return func(l *Ledger) {
		if class == model.Sanctioned {
			l.sanctionedPayouts = table
			return
		}
		l.unsanctionedPayouts = table
	}
}

// New creates an economy ledger with default payout tuning.
func New(opts ...Option) *Ledger {
	l := &Ledger{
		unsanctionedPayouts: defaultUnsanctionedPayouts,
		sanctionedPayouts:   defaultSanctionedPayouts,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// TrySpend deducts amount from the ledger. On failure the ledger is left
// unchanged: ErrInvalidAmount for negative amounts, ErrInsufficientFunds
// when the balance cannot cover it. Money never goes negative.
func (l *Ledger) TrySpend(ledger *model.PlayerLedger, amount int64) error {
	if amount < 0 {
		return fmt.Errorf("%w: spend %d", ErrInvalidAmount, amount)
	}
	if ledger.Money < amount {
		return fmt.Errorf("%w: have %d, need %d", ErrInsufficientFunds, ledger.Money, amount)
	}
	ledger.Money -= amount
	return nil
}

// AddMoney credits amount to the ledger. Negative amounts leave the ledger
// untouched and return ErrInvalidAmount.
func (l *Ledger) AddMoney(ledger *model.PlayerLedger, amount int64) error {
	if amount < 0 {
		return fmt.Errorf("%w: credit %d", ErrInvalidAmount, amount)
	}
	ledger.Money += amount
	return nil
}

// RacePayout computes the payout for one resolution. Returns 0 whenever the
// race was not won. Otherwise the base table entry for the event's class and
// clamped tier is scaled by the payout multiplier and the income multiplier,
// truncated to whole currency. The income multiplier is owned by the prestige
// controller, which caps it before it reaches this path; values below 1 are
// treated as no bonus.
func (l *Ledger) RacePayout(class model.RiskClass, opponentTier int, won bool, payoutMultiplier, incomeMultiplier float64) int64 {
	if !won {
		return 0
	}
	if opponentTier < 0 {
		opponentTier = 0
	}
	if opponentTier >= payoutTiers {
		opponentTier = payoutTiers - 1
	}
	base := l.unsanctionedPayouts[opponentTier]
	if class == model.Sanctioned {
		base = l.sanctionedPayouts[opponentTier]
	}
	if incomeMultiplier < 1 {
		incomeMultiplier = 1
	}
	amount := int64(float64(base) * payoutMultiplier * incomeMultiplier)
	if amount < 0 {
		return 0
	}
	return amount
}
