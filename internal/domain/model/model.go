// Package model contains the domain values passed between the engine layers.
package model

import "github.com/google/uuid"

// RiskClass splits events into the two legal regimes. Unsanctioned events
// accrue heat, sanctioned events do not.
type RiskClass int

const (
	Unsanctioned RiskClass = iota
	Sanctioned
)

func (c RiskClass) String() string {
	if c == Sanctioned {
		return "sanctioned"
	}
	return "unsanctioned"
}

// Venue identifies where an event runs. Each risk class has two venue tiers.
type Venue int

const (
	VenueStreet Venue = iota // unsanctioned, entry
	VenueHighway             // unsanctioned, high stakes
	VenueTrack               // sanctioned, entry
	VenueCircuit             // sanctioned, high stakes
)

// Class returns the risk class a venue belongs to.
func (v Venue) Class() RiskClass {
	if v == VenueTrack || v == VenueCircuit {
		return Sanctioned
	}
	return Unsanctioned
}

func (v Venue) String() string {
	switch v {
	case VenueStreet:
		return "street"
	case VenueHighway:
		return "highway"
	case VenueTrack:
		return "track"
	case VenueCircuit:
		return "circuit"
	default:
		return "unknown"
	}
}

// Drivetrain layouts recognised by the catalog.
const (
	DrivetrainFWD = "FWD"
	DrivetrainRWD = "RWD"
	DrivetrainAWD = "AWD"
)

// BaseStats is the raw stat block shared by vehicle definitions and
// aggregated outputs.
type BaseStats struct {
	HP         float64 `yaml:"hp"`
	Torque     float64 `yaml:"torque"`
	Weight     float64 `yaml:"weight"`
	Grip       float64 `yaml:"grip"`
	Suspension float64 `yaml:"suspension"`
}

// VehicleDefinition is an immutable catalog entry. Never mutated at runtime.
type VehicleDefinition struct {
	ID         string    `yaml:"id"`
	Name       string    `yaml:"name"`
	Stats      BaseStats `yaml:"stats"`
	Drivetrain string    `yaml:"drivetrain"`
	Tier       int       `yaml:"tier"`
	Value      int64     `yaml:"value"`
}

// StatDelta is one level's contribution to the aggregate. Deltas apply
// cumulatively: level N includes the deltas of levels 1..N.
type StatDelta struct {
	HP         float64 `yaml:"hp"`
	Torque     float64 `yaml:"torque"`
	Weight     float64 `yaml:"weight"`
	Grip       float64 `yaml:"grip"`
	Suspension float64 `yaml:"suspension"`
}

// UpgradeDefinition is an immutable catalog entry for one upgrade category.
// Deltas must have exactly MaxLevel entries; the catalog validates this at
// load time.
type UpgradeDefinition struct {
	Category   string      `yaml:"category"`
	Name       string      `yaml:"name"`
	MaxLevel   int         `yaml:"max_level"`
	BaseCost   int64       `yaml:"base_cost"`
	CostGrowth float64     `yaml:"cost_growth"`
	Deltas     []StatDelta `yaml:"deltas"`
}

// UpgradeState tracks current levels per category for one (player, vehicle)
// pair. Each level sits in [0, MaxLevel] for its category.
type UpgradeState struct {
	Levels map[string]int `yaml:"levels"`
}

// NewUpgradeState returns an empty state with an initialised level map.
func NewUpgradeState() *UpgradeState {
	return &UpgradeState{Levels: make(map[string]int)}
}

// Level returns the current level for a category, zero when absent.
func (s *UpgradeState) Level(category string) int {
	if s == nil || s.Levels == nil {
		return 0
	}
	return s.Levels[category]
}

// AggregatedStats is the derived stat block after all upgrade deltas,
// recomputed on demand and never stored.
type AggregatedStats struct {
	BaseStats
	Drivetrain string
}

// PlayerLedger is the single mutable persistent state for one player.
// Invariants: Money >= 0, Heat in [0,100], Prestige/Cred/Reputation >= 0.
type PlayerLedger struct {
	ProfileID     string                   `yaml:"profile_id"`
	Money         int64                    `yaml:"money"`
	Prestige      int                      `yaml:"prestige"`
	Heat          float64                  `yaml:"heat"`
	Cred          int64                    `yaml:"cred"`
	Reputation    int64                    `yaml:"reputation"`
	ActiveVehicle string                   `yaml:"active_vehicle"`
	OwnedVehicles map[string]bool          `yaml:"owned_vehicles"`
	Upgrades      map[string]*UpgradeState `yaml:"upgrades"`
}

// NewPlayerLedger builds a fresh ledger with default starting values.
func NewPlayerLedger(startingMoney int64) *PlayerLedger {
	return &PlayerLedger{
		ProfileID:     uuid.NewString(),
		Money:         startingMoney,
		OwnedVehicles: make(map[string]bool),
		Upgrades:      make(map[string]*UpgradeState),
	}
}

// Owns reports whether the player owns the given vehicle.
func (l *PlayerLedger) Owns(vehicleID string) bool {
	return l.OwnedVehicles[vehicleID]
}

// UpgradesFor returns the upgrade state for a vehicle, creating it lazily.
// Entries persist for the player's lifetime and survive prestige resets.
func (l *PlayerLedger) UpgradesFor(vehicleID string) *UpgradeState {
	if l.Upgrades == nil {
		l.Upgrades = make(map[string]*UpgradeState)
	}
	st, ok := l.Upgrades[vehicleID]
	if !ok {
		st = NewUpgradeState()
		l.Upgrades[vehicleID] = st
	}
	if st.Levels == nil {
		st.Levels = make(map[string]int)
	}
	return st
}

// EventSpec describes one competitive opportunity.
type EventSpec struct {
	Venue          Venue
	OpponentTier   int // 0..4 inclusive
	SuggestedStake int64
}

// Skill combination weights. The three timings are captured independently
// and combined into one overall score.
const (
	skillWeightA = 0.40
	skillWeightB = 0.35
	skillWeightC = 0.25
)

// SkillInput carries the three timing scores, each in [0,1].
type SkillInput struct {
	TimingA float64
	TimingB float64
	TimingC float64
}

// Overall returns the weighted combination of the three timings, in [0,1].
// Out-of-range inputs are clamped rather than rejected.
func (s SkillInput) Overall() float64 {
	return skillWeightA*clamp01(s.TimingA) +
		skillWeightB*clamp01(s.TimingB) +
		skillWeightC*clamp01(s.TimingC)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ResolutionOutcome is the ephemeral result of one race resolution.
type ResolutionOutcome struct {
	Won              bool
	PlayerRating     float64
	OpponentRating   float64
	PayoutMultiplier float64
}

// PoliceOutcome is the ephemeral result of one police encounter.
type PoliceOutcome struct {
	Escaped     bool
	Fine        int64
	HeatRemoved float64
}
