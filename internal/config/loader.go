package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if REDLINE_CONFIG is set
//  3. env (prefix REDLINE_)
func Load() (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("REDLINE_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
	}

	// Environment variables: REDLINE_METRICS_ADDR, REDLINE_SEED, ...
	// Underscores are preserved to match the koanf tags on the struct.
	envProvider := env.Provider("REDLINE_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "redline_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate rejects configurations the engine cannot run with.
func (c *Config) validate() error {
	if c.CatalogPath == "" {
		return fmt.Errorf("%w: catalog_path must not be empty", ErrInvalidConfig)
	}
	if c.ProfilePath == "" {
		return fmt.Errorf("%w: profile_path must not be empty", ErrInvalidConfig)
	}
	if c.StartingMoney < 0 {
		return fmt.Errorf("%w: starting_money must not be negative", ErrInvalidConfig)
	}
	if c.HeatDecayPerSecond < 0 {
		return fmt.Errorf("%w: heat_decay_per_second must not be negative", ErrInvalidConfig)
	}
	if c.PrestigeMoneyThreshold <= 0 || c.PrestigeReputationThreshold <= 0 || c.PrestigeCredThreshold <= 0 {
		return fmt.Errorf("%w: prestige thresholds must be positive", ErrInvalidConfig)
	}
	if c.PrestigeResetMoney < 0 {
		return fmt.Errorf("%w: prestige_reset_money must not be negative", ErrInvalidConfig)
	}
	return nil
}
