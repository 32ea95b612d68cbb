package engine

import (
	"math/rand"

	"github.com/redlinehq/redline/internal/adapters/storage"
	"github.com/redlinehq/redline/internal/domain/economy"
	"github.com/redlinehq/redline/internal/domain/prestige"
	"github.com/redlinehq/redline/internal/domain/race"
	"github.com/redlinehq/redline/internal/domain/risk"
	"github.com/redlinehq/redline/pkg/logger"
	"github.com/redlinehq/redline/pkg/metrics"
)

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithStore sets the profile persistence store.
func WithStore(store *storage.Store) Option {
	return func(e *Engine) {
		if store != nil {
			e.store = store
		}
	}
}

// WithLogger sets a custom logger.
func WithLogger(log logger.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// WithMetrics sets the metrics manager.
func WithMetrics(m *metrics.Manager) Option {
	return func(e *Engine) {
		if m != nil {
			e.mtr = m
		}
	}
}

// WithSeed seeds the engine RNG. Identical seeds replay identical sessions.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewSource(seed)) //nolint:gosec // deterministic seed for reproducible sessions
	}
}

// WithResolver replaces the default race resolver.
func WithResolver(r *race.Resolver) Option {
	return func(e *Engine) {
		if r != nil {
			e.resolver = r
		}
	}
}

// WithEconomy replaces the default economy ledger.
func WithEconomy(l *economy.Ledger) Option {
	return func(e *Engine) {
		if l != nil {
			e.econ = l
		}
	}
}

// WithRiskSystem replaces the default risk system.
func WithRiskSystem(s *risk.System) Option {
	return func(e *Engine) {
		if s != nil {
			e.risk = s
		}
	}
}

// WithPrestigeController replaces the default prestige controller.
func WithPrestigeController(c *prestige.Controller) Option {
	return func(e *Engine) {
		if c != nil {
			e.prestige = c
		}
	}
}

// WithHeatPerRace sets the heat accrued per unsanctioned race by venue.
func WithHeatPerRace(street, highway float64) Option {
	return func(e *Engine) {
		if street >= 0 && highway >= 0 {
			e.streetHeat = street
			e.highwayHeat = highway
		}
	}
}

// WithHeatDecayRate sets the passive decay rate used by DecayHeat.
func WithHeatDecayRate(perSecond float64) Option {
	return func(e *Engine) {
		if perSecond >= 0 {
			e.heatDecayPPS = perSecond
		}
	}
}

// WithWinGains sets the cred/reputation earned per win at tier 0.
func WithWinGains(cred, reputation int64) Option {
	return func(e *Engine) {
		if cred >= 0 && reputation >= 0 {
			e.credPerWin = cred
			e.repPerWin = reputation
		}
	}
}
