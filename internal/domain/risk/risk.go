// Package risk implements the heat state machine and police encounters.
package risk

import (
	"fmt"
	"math/rand"

	"github.com/redlinehq/redline/internal/domain/model"
)

// Heat bounds and default encounter tuning.
const (
	MinHeat = 0.0
	MaxHeat = 100.0

	defaultLowThreshold    = 25.0
	defaultMediumThreshold = 50.0
	defaultHighThreshold   = 75.0

	defaultLowChance    = 0.08
	defaultMediumChance = 0.20
	defaultHighChance   = 0.40

	defaultEscapeBase         = 0.25
	defaultEscapePerStatPoint = 0.002
	defaultEscapeHeatFraction = 0.35

	defaultBaseFine           = 1000
	defaultFineHeatMultiplier = 25.0
)

// System owns the heat side of the ledger. It computes fines but never
// touches the money side; callers collect fines through the economy ledger.
type System struct {
	lowThreshold    float64
	mediumThreshold float64
	highThreshold   float64
	lowChance       float64
	mediumChance    float64
	highChance      float64

	escapeBase     float64
	escapePerPoint float64
	escapeFraction float64
	baseFine       int64
	fineHeatMult   float64
}

// Option applies a configuration option to the System.
type Option func(*System)

// WithEncounterTiers sets the three heat thresholds and their trigger
// probabilities. Thresholds must be ascending, probabilities in [0,1].
func WithEncounterTiers(low, medium, high float64, lowP, mediumP, highP float64) Option {
	return func(s *System) {
		if low < medium && medium < high && validProb(lowP) && validProb(mediumP) && validProb(highP) {
			s.lowThreshold, s.mediumThreshold, s.highThreshold = low, medium, high
			s.lowChance, s.mediumChance, s.highChance = lowP, mediumP, highP
		}
	}
}

// WithEscapeTuning sets the pursuit escape parameters.
func WithEscapeTuning(base, perPoint, heatFraction float64) Option {
	return func(s *System) {
		if validProb(base) && perPoint >= 0 && validProb(heatFraction) {
			s.escapeBase = base
			s.escapePerPoint = perPoint
			s.escapeFraction = heatFraction
		}
	}
}

// WithFineTuning sets the capture fine parameters.
func WithFineTuning(baseFine int64, heatMultiplier float64) Option {
	return func(s *System) {
		if baseFine >= 0 && heatMultiplier >= 0 {
			s.baseFine = baseFine
			s.fineHeatMult = heatMultiplier
		}
	}
}

func validProb(p float64) bool { return p >= 0 && p <= 1 }

// New creates a risk system with default tuning.
func New(opts ...Option) *System {
	s := &System{
		lowThreshold:    defaultLowThreshold,
		mediumThreshold: defaultMediumThreshold,
		highThreshold:   defaultHighThreshold,
		lowChance:       defaultLowChance,
		mediumChance:    defaultMediumChance,
		highChance:      defaultHighChance,
		escapeBase:      defaultEscapeBase,
		escapePerPoint:  defaultEscapePerStatPoint,
		escapeFraction:  defaultEscapeHeatFraction,
		baseFine:        defaultBaseFine,
		fineHeatMult:    defaultFineHeatMultiplier,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddHeat raises the ledger's heat, clamped to [MinHeat, MaxHeat].
// Negative amounts are rejected and leave the ledger unchanged.
func (s *System) AddHeat(ledger *model.PlayerLedger, amount float64) error {
	if amount < 0 {
		return fmt.Errorf("%w: heat %v", ErrInvalidAmount, amount)
	}
	ledger.Heat = clampHeat(ledger.Heat + amount)
	return nil
}

// DecayHeat lowers heat by rate*elapsed seconds, floored at MinHeat.
func (s *System) DecayHeat(ledger *model.PlayerLedger, ratePerSecond, elapsedSeconds float64) error {
	if ratePerSecond < 0 || elapsedSeconds < 0 {
		return fmt.Errorf("%w: rate %v elapsed %v", ErrInvalidAmount, ratePerSecond, elapsedSeconds)
	}
	ledger.Heat = clampHeat(ledger.Heat - ratePerSecond*elapsedSeconds)
	return nil
}

// ShouldTriggerEncounter buckets heat into four tiers and draws one uniform
// sample against the tier's probability. Below the low threshold an
// encounter never triggers.
func (s *System) ShouldTriggerEncounter(heat float64, rng *rand.Rand) bool {
	var chance float64
	switch {
	case heat < s.lowThreshold:
		return false
	case heat < s.mediumThreshold:
		chance = s.lowChance
	case heat < s.highThreshold:
		chance = s.mediumChance
	default:
		chance = s.highChance
	}
	return rng.Float64() < chance
}

// ResolveEncounter runs one pursuit. Escape probability grows with grip and
// suspension. On escape only a fraction of the current heat is shed and no
// fine is due. On capture the fine scales with heat and all accrued heat is
// cleared. The fine amount is returned for the caller to collect; this
// method mutates heat only.
func (s *System) ResolveEncounter(ledger *model.PlayerLedger, stats model.AggregatedStats, rng *rand.Rand) model.PoliceOutcome {
	escapeChance := s.escapeBase + (stats.Grip+stats.Suspension)*s.escapePerPoint
	if escapeChance < 0 {
		escapeChance = 0
	}
	if escapeChance > 1 {
		escapeChance = 1
	}

	if rng.Float64() < escapeChance {
		removed := ledger.Heat * s.escapeFraction
		ledger.Heat = clampHeat(ledger.Heat - removed)
		return model.PoliceOutcome{Escaped: true, HeatRemoved: removed}
	}

	fine := s.baseFine + int64(ledger.Heat*s.fineHeatMult)
	removed := ledger.Heat
	ledger.Heat = MinHeat
	return model.PoliceOutcome{Escaped: false, Fine: fine, HeatRemoved: removed}
}

func clampHeat(h float64) float64 {
	if h < MinHeat {
		return MinHeat
	}
	if h > MaxHeat {
		return MaxHeat
	}
	return h
}
