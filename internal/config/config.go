// Package config defines engine configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) initializer to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration and gameplay tuning overrides.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// MetricsAddr configures the Prometheus listen address, e.g. ":9090".
	MetricsAddr string `koanf:"metrics_addr"`

	// CatalogPath points at the vehicle/upgrade catalog YAML file.
	CatalogPath string `koanf:"catalog_path"`

	// ProfilePath points at the persisted player profile.
	ProfilePath string `koanf:"profile_path"`

	// Seed seeds the engine RNG. A fixed seed reproduces every race and
	// encounter outcome.
	Seed int64 `koanf:"seed"`

	// StartingMoney is the balance of a brand-new profile.
	StartingMoney int64 `koanf:"starting_money"`

	// HeatDecayPerSecond is the passive heat decay rate.
	HeatDecayPerSecond float64 `koanf:"heat_decay_per_second"`

	// Prestige gate thresholds; any single one qualifies.
	PrestigeMoneyThreshold      int64 `koanf:"prestige_money_threshold"`
	PrestigeReputationThreshold int64 `koanf:"prestige_reputation_threshold"`
	PrestigeCredThreshold       int64 `koanf:"prestige_cred_threshold"`

	// PrestigeResetMoney is the balance after a prestige reset.
	PrestigeResetMoney int64 `koanf:"prestige_reset_money"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:                    "info",
		MetricsAddr:                 ":9090",
		CatalogPath:                 "catalog.yaml",
		ProfilePath:                 "profile.yaml",
		Seed:                        42,
		StartingMoney:               10_000,
		HeatDecayPerSecond:          0.05,
		PrestigeMoneyThreshold:      250_000,
		PrestigeReputationThreshold: 5_000,
		PrestigeCredThreshold:       2_500,
		PrestigeResetMoney:          5_000,
	}
}
