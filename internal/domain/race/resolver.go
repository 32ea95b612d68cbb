// Package race computes performance ratings and resolves race outcomes.
package race

import (
	"math/rand"

	"github.com/redlinehq/redline/internal/domain/model"
)

// Default tuning constants. The venue coefficients keep unsanctioned events
// slightly above 1.0 and sanctioned events slightly below.
const (
	ratingHPWeight     = 0.6
	ratingTorqueWeight = 0.4
	ratingWeightWeight = 0.1
	ratingGripWeight   = 0.05
	ratingSuspWeight   = 0.03

	defaultStreetCoef  = 1.04
	defaultHighwayCoef = 1.07
	defaultTrackCoef   = 0.97
	defaultCircuitCoef = 0.94

	// Skill matters more where the field is professional.
	defaultUnsanctionedSkillCoef = 0.15
	defaultSanctionedSkillCoef   = 0.25

	// RNG variance band of +/-3% applied independently to each side.
	defaultVarianceBand = 0.03

	defaultWinBaseline          = 1.0
	defaultMinPayoutMultiplier  = 0.5
	defaultMaxPayoutMultiplier  = 3.0
	defaultLossPayoutMultiplier = 0.1
)

// Resolver resolves race outcomes from compiled stats, skill input and an
// injected RNG source.
type Resolver struct {
	venueCoefs  map[model.Venue]float64
	skillCoefs  map[model.RiskClass]float64
	variance    float64
	winBaseline float64
	minMult     float64
	maxMult     float64
	lossMult    float64
}

// Option applies a configuration option to the Resolver.
type Option func(*Resolver)

// WithVenueCoefficient overrides the rating coefficient for one venue.
func WithVenueCoefficient(v model.Venue, coef float64) Option {
	return func(r *Resolver) {
		if coef > 0 {
			r.venueCoefs[v] = coef
		}
	}
}

// WithSkillCoefficient overrides the skill boost coefficient for one class.
func WithSkillCoefficient(c model.RiskClass, coef float64) Option {
	return func(r *Resolver) {
		if coef >= 0 {
			r.skillCoefs[c] = coef
		}
	}
}

// WithVarianceBand sets the half-width of the RNG factor band.
func WithVarianceBand(band float64) Option {
	return func(r *Resolver) {
		if band >= 0 && band < 1 {
			r.variance = band
		}
	}
}

// WithPayoutMultiplierBounds sets the clamp range for win multipliers.
func WithPayoutMultiplierBounds(minMult, maxMult float64) Option {
	return func(r *Resolver) {
		if minMult > 0 && maxMult > minMult {
			r.minMult = minMult
			r.maxMult = maxMult
		}
	}
}

// WithLossMultiplier sets the fixed participation multiplier on a loss.
func WithLossMultiplier(mult float64) Option {
	return func(r *Resolver) {
		if mult >= 0 {
			r.lossMult = mult
		}
	}
}

// NewResolver creates a race resolver with default tuning.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		venueCoefs: map[model.Venue]float64{
			model.VenueStreet:  defaultStreetCoef,
			model.VenueHighway: defaultHighwayCoef,
			model.VenueTrack:   defaultTrackCoef,
			model.VenueCircuit: defaultCircuitCoef,
		},
		skillCoefs: map[model.RiskClass]float64{
			model.Unsanctioned: defaultUnsanctionedSkillCoef,
			model.Sanctioned:   defaultSanctionedSkillCoef,
		},
		variance:    defaultVarianceBand,
		winBaseline: defaultWinBaseline,
		minMult:     defaultMinPayoutMultiplier,
		maxMult:     defaultMaxPayoutMultiplier,
		lossMult:    defaultLossPayoutMultiplier,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// PerformanceRating summarises a stat block into one scalar for the given
// venue, floored at 0.
func (r *Resolver) PerformanceRating(s model.AggregatedStats, venue model.Venue) float64 {
	rating := ratingHPWeight*s.HP +
		ratingTorqueWeight*s.Torque -
		ratingWeightWeight*s.Weight +
		ratingGripWeight*s.Grip +
		ratingSuspWeight*s.Suspension
	if coef, ok := r.venueCoefs[venue]; ok {
		rating *= coef
	}
	if rating < 0 {
		return 0
	}
	return rating
}

// Resolve runs one race. The RNG source must be supplied by the caller;
// resolution draws exactly two samples (player variance first, then
// opponent), so a fixed seed reproduces the outcome bit for bit.
func (r *Resolver) Resolve(playerStats, opponentStats model.AggregatedStats, event model.EventSpec, skill model.SkillInput, prestigeLevel int, rng *rand.Rand) model.ResolutionOutcome {
	playerRating := r.PerformanceRating(playerStats, event.Venue)
	opponentRating := r.PerformanceRating(opponentStats, event.Venue)

	playerRating *= 1 + r.skillCoefs[event.Venue.Class()]*skill.Overall()
	if prestigeLevel > 0 {
		playerRating += float64(prestigeLevel)
	}

	playerRating *= r.varianceFactor(rng)
	opponentRating *= r.varianceFactor(rng)

	// Ties favour the opponent.
	won := playerRating > opponentRating

	mult := r.lossMult
	if won {
		ratio := 1.0
		if opponentRating > 0 {
			ratio = playerRating / opponentRating
		}
		mult = r.winBaseline / ratio
		if mult < r.minMult {
			mult = r.minMult
		}
		if mult > r.maxMult {
			mult = r.maxMult
		}
	}

	return model.ResolutionOutcome{
		Won:              won,
		PlayerRating:     playerRating,
		OpponentRating:   opponentRating,
		PayoutMultiplier: mult,
	}
}

// varianceFactor draws one uniform factor in [1-band, 1+band].
func (r *Resolver) varianceFactor(rng *rand.Rand) float64 {
	return 1 - r.variance + rng.Float64()*2*r.variance
}
