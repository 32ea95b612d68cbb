// Package storage provides the profile persistence capability consumed by
// the engine. The on-disk format is an implementation detail; callers only
// see Load and Save.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/redlinehq/redline/internal/domain/model"
)

const (
	defaultProfilePath  = "profile.yaml"
	defaultStartMoney   = 10_000
	profileFilePerm     = 0o600
	profileDirPerm      = 0o755
	tempProfileSuffix   = ".tmp"
	emptyProfileMessage = "empty profile file"
)

// Store persists a single player ledger to a file.
type Store struct {
	path       string
	startMoney int64
}

// Option applies a configuration option to the Store.
type Option func(*Store)

// WithPath sets the profile file path.
func WithPath(path string) Option {
	return func(s *Store) {
		if path != "" {
			s.path = path
		}
	}
}

// WithStartingMoney sets the balance a brand-new profile starts with.
func WithStartingMoney(amount int64) Option {
	return func(s *Store) {
		if amount >= 0 {
			s.startMoney = amount
		}
	}
}

// New creates a file-backed profile store.
func New(opts ...Option) *Store {
	s := &Store{
		path:       defaultProfilePath,
		startMoney: defaultStartMoney,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load restores the ledger from disk. A missing file is not an error: a
// fresh default ledger is returned instead, to be persisted on first save.
func (s *Store) Load() (*model.PlayerLedger, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return model.NewPlayerLedger(s.startMoney), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadProfile, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrLoadProfile, emptyProfileMessage)
	}

	var ledger model.PlayerLedger
	if err := yaml.Unmarshal(data, &ledger); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadProfile, err)
	}
	if ledger.OwnedVehicles == nil {
		ledger.OwnedVehicles = make(map[string]bool)
	}
	if ledger.Upgrades == nil {
		ledger.Upgrades = make(map[string]*model.UpgradeState)
	}
	return &ledger, nil
}

// Save writes the ledger to disk atomically: marshal, write to a temp file
// beside the target, then rename over it.
func (s *Store) Save(ledger *model.PlayerLedger) error {
	if ledger == nil {
		return fmt.Errorf("%w: nil ledger", ErrSaveProfile)
	}
	data, err := yaml.Marshal(ledger)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSaveProfile, err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, profileDirPerm); err != nil {
			return fmt.Errorf("%w: %v", ErrSaveProfile, err)
		}
	}

	tmp := s.path + tempProfileSuffix
	if err := os.WriteFile(tmp, data, profileFilePerm); err != nil {
		return fmt.Errorf("%w: %v", ErrSaveProfile, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("%w: %v", ErrSaveProfile, err)
	}
	return nil
}
