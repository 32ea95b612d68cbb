// Package prestige implements the progression reset cycle and its derived
// bonus multipliers.
package prestige

import (
	"fmt"

	"github.com/redlinehq/redline/internal/domain/model"
)

// Default gate thresholds and bonus rates. All bonuses are linear in the
// prestige level and never compound: multiplier = 1 +/- rate*level, clamped.
const (
	defaultMoneyThreshold      = 250_000
	defaultReputationThreshold = 5_000
	defaultCredThreshold       = 2_500
	defaultResetMoney          = 5_000

	defaultCostReductionPerLevel = 0.05
	defaultHeatReductionPerLevel = 0.04
	defaultIncomeBonusPerLevel   = 0.10

	minHeatGainMultiplier = 0.5
	maxIncomeMultiplier   = 3.0
)

// Controller gates and applies prestige resets.
type Controller struct {
	moneyThreshold      int64
	reputationThreshold int64
	credThreshold       int64
	resetMoney          int64

	costReductionPerLevel float64
	heatReductionPerLevel float64
	incomeBonusPerLevel   float64
}

// Option applies a configuration option to the Controller.
type Option func(*Controller)

// WithThresholds sets the three independent qualification thresholds.
func WithThresholds(money, reputation, cred int64) Option {
	return func(c *Controller) {
		if money > 0 && reputation > 0 && cred > 0 {
			c.moneyThreshold = money
			c.reputationThreshold = reputation
			c.credThreshold = cred
		}
	}
}

// WithResetMoney sets the money balance a fresh cycle starts with.
func WithResetMoney(amount int64) Option {
	return func(c *Controller) {
		if amount >= 0 {
			c.resetMoney = amount
		}
	}
}

// WithBonusRates sets the per-level rates for the three derived bonuses.
func WithBonusRates(costReduction, heatReduction, incomeBonus float64) Option {
	return func(c *Controller) {
		if costReduction >= 0 && heatReduction >= 0 && incomeBonus >= 0 {
			c.costReductionPerLevel = costReduction
			c.heatReductionPerLevel = heatReduction
			c.incomeBonusPerLevel = incomeBonus
		}
	}
}

// New creates a prestige controller with default tuning.
func New(opts ...Option) *Controller {
	c := &Controller{
		moneyThreshold:        defaultMoneyThreshold,
		reputationThreshold:   defaultReputationThreshold,
		credThreshold:         defaultCredThreshold,
		resetMoney:            defaultResetMoney,
		costReductionPerLevel: defaultCostReductionPerLevel,
		heatReductionPerLevel: defaultHeatReductionPerLevel,
		incomeBonusPerLevel:   defaultIncomeBonusPerLevel,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CanPrestige reports whether any one of money, reputation or cred has
// reached its threshold. Any single qualification is enough.
func (c *Controller) CanPrestige(ledger *model.PlayerLedger) bool {
	return ledger.Money >= c.moneyThreshold ||
		ledger.Reputation >= c.reputationThreshold ||
		ledger.Cred >= c.credThreshold
}

// ApplyPrestige runs one reset cycle: prestige level up, money back to the
// starting balance, heat/cred/reputation zeroed. Owned vehicles and upgrade
// states survive the reset; that carry-over is the incentive to prestige.
func (c *Controller) ApplyPrestige(ledger *model.PlayerLedger) error {
	if !c.CanPrestige(ledger) {
		return fmt.Errorf("%w: money %d, reputation %d, cred %d",
			ErrRequirementsNotMet, ledger.Money, ledger.Reputation, ledger.Cred)
	}
	ledger.Prestige++
	ledger.Money = c.resetMoney
	ledger.Heat = 0
	ledger.Cred = 0
	ledger.Reputation = 0
	return nil
}

// CostMultiplier returns the upgrade cost multiplier for a prestige level.
// Linear reduction, floored at 0.
func (c *Controller) CostMultiplier(level int) float64 {
	m := 1 - c.costReductionPerLevel*float64(level)
	if m < 0 {
		return 0
	}
	return m
}

// HeatGainMultiplier returns the multiplier applied to heat accrued from
// risky events. Linear reduction, floored so heat never fully disappears.
func (c *Controller) HeatGainMultiplier(level int) float64 {
	m := 1 - c.heatReductionPerLevel*float64(level)
	if m < minHeatGainMultiplier {
		return minHeatGainMultiplier
	}
	return m
}

// IncomeMultiplier returns the payout bonus multiplier, capped.
func (c *Controller) IncomeMultiplier(level int) float64 {
	m := 1 + c.incomeBonusPerLevel*float64(level)
	if m > maxIncomeMultiplier {
		return maxIncomeMultiplier
	}
	return m
}
