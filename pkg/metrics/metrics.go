// Package metrics provides Prometheus metrics for the progression engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	defaultNamespace = "redline"
	defaultSubsystem = "engine"
)

// Manager manages the Prometheus metrics for the engine.
type Manager struct {
	namespace string
	subsystem string
	enabled   bool
	registry  prometheus.Registerer

	racesResolved     prometheus.Counter
	racesWon          prometheus.Counter
	upgradesPurchased prometheus.Counter
	prestigeResets    prometheus.Counter
	encounters        prometheus.Counter
	busts             prometheus.Counter

	payoutAmounts prometheus.Histogram

	playerMoney prometheus.Gauge
	playerHeat  prometheus.Gauge
}

// NewManager creates a metrics manager and registers all collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: defaultNamespace,
		subsystem: defaultSubsystem,
		enabled:   true,
		registry:  prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	if !m.enabled {
		return m
	}

	factory := promauto.With(m.registry)
	m.racesResolved = factory.NewCounter(m.counterOpts("races_resolved_total", "Total races resolved."))
	m.racesWon = factory.NewCounter(m.counterOpts("races_won_total", "Total races won by the player."))
	m.upgradesPurchased = factory.NewCounter(m.counterOpts("upgrades_purchased_total", "Total upgrade levels purchased."))
	m.prestigeResets = factory.NewCounter(m.counterOpts("prestige_resets_total", "Total prestige reset cycles applied."))
	m.encounters = factory.NewCounter(m.counterOpts("police_encounters_total", "Total police encounters triggered."))
	m.busts = factory.NewCounter(m.counterOpts("police_busts_total", "Total encounters ending in capture."))

	m.payoutAmounts = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "race_payout_amount",
		Help:      "Distribution of race payout amounts.",
		Buckets:   prometheus.ExponentialBuckets(100, 2, 10),
	})

	m.playerMoney = factory.NewGauge(m.gaugeOpts("player_money", "Current player money balance."))
	m.playerHeat = factory.NewGauge(m.gaugeOpts("player_heat", "Current player heat level."))

	return m
}

func (m *Manager) counterOpts(name, help string) prometheus.CounterOpts {
	return prometheus.CounterOpts{Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help}
}

func (m *Manager) gaugeOpts(name, help string) prometheus.GaugeOpts {
	return prometheus.GaugeOpts{Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help}
}

// RecordRace counts one resolved race and observes its payout.
func (m *Manager) RecordRace(won bool, payout int64) {
	if !m.enabled {
		return
	}
	m.racesResolved.Inc()
	if won {
		m.racesWon.Inc()
	}
	if payout > 0 {
		m.payoutAmounts.Observe(float64(payout))
	}
}

// RecordEncounter counts one police encounter and its resolution.
func (m *Manager) RecordEncounter(escaped bool) {
	if !m.enabled {
		return
	}
	m.encounters.Inc()
	if !escaped {
		m.busts.Inc()
	}
}

// RecordUpgrade counts one upgrade purchase.
func (m *Manager) RecordUpgrade() {
	if m.enabled {
		m.upgradesPurchased.Inc()
	}
}

// RecordPrestige counts one prestige reset.
func (m *Manager) RecordPrestige() {
	if m.enabled {
		m.prestigeResets.Inc()
	}
}

// SetLedgerGauges publishes the current ledger balances.
func (m *Manager) SetLedgerGauges(money int64, heat float64) {
	if !m.enabled {
		return
	}
	m.playerMoney.Set(float64(money))
	m.playerHeat.Set(heat)
}
