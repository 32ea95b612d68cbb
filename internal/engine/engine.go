// Package engine composes the simulation components into the per-action
// operations an orchestrating frontend calls. It is the explicit session
// context object: constructed once at startup and passed into every call
// site, with no ambient globals.
package engine

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/redlinehq/redline/internal/adapters/storage"
	"github.com/redlinehq/redline/internal/catalog"
	"github.com/redlinehq/redline/internal/domain/economy"
	"github.com/redlinehq/redline/internal/domain/model"
	"github.com/redlinehq/redline/internal/domain/prestige"
	"github.com/redlinehq/redline/internal/domain/race"
	"github.com/redlinehq/redline/internal/domain/risk"
	"github.com/redlinehq/redline/internal/domain/stats"
	"github.com/redlinehq/redline/internal/domain/upgrade"
	"github.com/redlinehq/redline/pkg/logger"
	"github.com/redlinehq/redline/pkg/metrics"
)

// Default engine tuning.
const (
	defaultSeed = 42

	// Heat accrued per unsanctioned race, by venue.
	defaultStreetHeatPerRace  = 8.0
	defaultHighwayHeatPerRace = 14.0

	// Cred (unsanctioned) and reputation (sanctioned) earned per win is
	// tier-scaled from these bases.
	defaultCredPerWin       = 50
	defaultReputationPerWin = 40

	defaultHeatDecayPerSecond = 0.05

	// Opponent stat baselines, scaled by tier.
	opponentBaseHP         = 180.0
	opponentBaseTorque     = 200.0
	opponentBaseWeight     = 1300.0
	opponentBaseGrip       = 60.0
	opponentBaseSuspension = 50.0
	opponentTierScale      = 0.30
)

// RaceReport is the full result of one resolved race action.
type RaceReport struct {
	Outcome   model.ResolutionOutcome
	Payout    int64
	HeatAdded float64
	Police    *model.PoliceOutcome
	FinePaid  int64
}

// PurchaseReport is the result of one upgrade purchase.
type PurchaseReport struct {
	Category string
	NewLevel int
	Cost     int64
}

// Engine wires the catalog, tuning and domain components together and owns
// the seeded RNG. All methods are synchronous; the caller serialises player
// actions.
type Engine struct {
	catalog *catalog.Catalog
	store   *storage.Store

	resolver *race.Resolver
	econ     *economy.Ledger
	risk     *risk.System
	prestige *prestige.Controller

	rng *rand.Rand
	log logger.Logger
	mtr *metrics.Manager

	streetHeat   float64
	highwayHeat  float64
	credPerWin   int64
	repPerWin    int64
	heatDecayPPS float64
}

// New constructs an engine around an already-loaded catalog.
func New(cat *catalog.Catalog, opts ...Option) (*Engine, error) {
	if cat == nil {
		return nil, fmt.Errorf("%w: nil catalog", ErrInvalidInput)
	}
	e := &Engine{
		catalog:      cat,
		resolver:     race.NewResolver(),
		econ:         economy.New(),
		risk:         risk.New(),
		prestige:     prestige.New(),
		rng:          rand.New(rand.NewSource(defaultSeed)), //nolint:gosec // deterministic seed for reproducible sessions
		streetHeat:   defaultStreetHeatPerRace,
		highwayHeat:  defaultHighwayHeatPerRace,
		credPerWin:   defaultCredPerWin,
		repPerWin:    defaultReputationPerWin,
		heatDecayPPS: defaultHeatDecayPerSecond,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.log == nil {
		e.log = logger.Get()
	}
	return e, nil
}

// LoadProfile restores the player ledger through the configured store.
func (e *Engine) LoadProfile(ctx context.Context) (*model.PlayerLedger, error) {
	if e.store == nil {
		return nil, fmt.Errorf("%w: no profile store configured", ErrInvalidInput)
	}
	ledger, err := e.store.Load()
	if err != nil {
		return nil, err
	}
	e.log.Info(ctx, "profile loaded",
		logger.String("profile", ledger.ProfileID),
		logger.Int("prestige", ledger.Prestige),
	)
	return ledger, nil
}

// saveProfile persists the ledger after a mutating action. Engines without
// a store (tests, embedded use) skip persistence.
func (e *Engine) saveProfile(ctx context.Context, ledger *model.PlayerLedger) error {
	if e.store == nil {
		return nil
	}
	if err := e.store.Save(ledger); err != nil {
		e.log.Error(ctx, "profile save failed", logger.Error(err))
		return err
	}
	return nil
}

// CompileStats aggregates the stats of one owned vehicle. Upgrade
// categories without a catalog definition contribute zero; they are logged
// and skipped rather than failing the action.
func (e *Engine) CompileStats(ctx context.Context, ledger *model.PlayerLedger, vehicleID string) (model.AggregatedStats, error) {
	def, err := e.catalog.Vehicle(vehicleID)
	if err != nil {
		return model.AggregatedStats{}, err
	}
	agg, err := stats.Compile(def, ledger.UpgradesFor(vehicleID), e.catalog.Upgrades())
	if err != nil {
		if !errors.Is(err, stats.ErrMissingDefinition) {
			return model.AggregatedStats{}, err
		}
		e.log.Warn(ctx, "skipping undefined upgrade categories", logger.Error(err))
	}
	return agg, nil
}

// UpgradeCost returns the prestige-adjusted cost of the next level of a
// category on a vehicle. ErrAtMaxLevel surfaces unchanged.
func (e *Engine) UpgradeCost(ledger *model.PlayerLedger, vehicleID, category string) (int64, error) {
	def, err := e.catalog.Upgrade(category)
	if err != nil {
		return 0, err
	}
	base, err := upgrade.CostForLevel(def, ledger.UpgradesFor(vehicleID).Level(category))
	if err != nil {
		return 0, err
	}
	adjusted := int64(math.Round(float64(base) * e.prestige.CostMultiplier(ledger.Prestige)))
	if adjusted < 0 {
		adjusted = 0
	}
	return adjusted, nil
}

// PurchaseUpgrade buys the next level of a category for an owned vehicle:
// cost lookup, spend, then level bump. Failure at any step leaves the
// ledger untouched.
func (e *Engine) PurchaseUpgrade(ctx context.Context, ledger *model.PlayerLedger, vehicleID, category string) (PurchaseReport, error) {
	if !ledger.Owns(vehicleID) {
		return PurchaseReport{}, fmt.Errorf("%w: vehicle %q", ErrNotOwned, vehicleID)
	}
	cost, err := e.UpgradeCost(ledger, vehicleID, category)
	if err != nil {
		return PurchaseReport{}, err
	}
	if err := e.econ.TrySpend(ledger, cost); err != nil {
		return PurchaseReport{}, err
	}
	st := ledger.UpgradesFor(vehicleID)
	st.Levels[category]++

	report := PurchaseReport{Category: category, NewLevel: st.Levels[category], Cost: cost}
	e.log.Info(ctx, "upgrade purchased",
		logger.String("vehicle", vehicleID),
		logger.String("category", category),
		logger.Int("level", report.NewLevel),
		logger.Int64("cost", cost),
	)
	e.mtrUpgrade()
	return report, e.saveProfile(ctx, ledger)
}

// BuyVehicle purchases a catalog vehicle at its listed value and adds it to
// the garage. The first vehicle bought becomes the active one.
func (e *Engine) BuyVehicle(ctx context.Context, ledger *model.PlayerLedger, vehicleID string) error {
	def, err := e.catalog.Vehicle(vehicleID)
	if err != nil {
		return err
	}
	if ledger.Owns(vehicleID) {
		return fmt.Errorf("%w: vehicle %q already owned", ErrInvalidInput, vehicleID)
	}
	if err := e.econ.TrySpend(ledger, def.Value); err != nil {
		return err
	}
	ledger.OwnedVehicles[vehicleID] = true
	ledger.UpgradesFor(vehicleID)
	if ledger.ActiveVehicle == "" {
		ledger.ActiveVehicle = vehicleID
	}
	e.log.Info(ctx, "vehicle purchased",
		logger.String("vehicle", vehicleID),
		logger.Int64("value", def.Value),
	)
	return e.saveProfile(ctx, ledger)
}

// SelectVehicle switches the active vehicle to an owned one.
func (e *Engine) SelectVehicle(ctx context.Context, ledger *model.PlayerLedger, vehicleID string) error {
	if !ledger.Owns(vehicleID) {
		return fmt.Errorf("%w: vehicle %q", ErrNotOwned, vehicleID)
	}
	ledger.ActiveVehicle = vehicleID
	return e.saveProfile(ctx, ledger)
}

// ResolveRace runs the whole race action for the active vehicle: stat
// compilation, outcome resolution, payout, heat accrual for unsanctioned
// venues, cred/reputation gains, and a possible police encounter whose fine
// is collected on the spot (capped at the cash on hand).
func (e *Engine) ResolveRace(ctx context.Context, ledger *model.PlayerLedger, event model.EventSpec, skill model.SkillInput) (RaceReport, error) {
	if ledger.ActiveVehicle == "" {
		return RaceReport{}, fmt.Errorf("%w: no active vehicle", ErrInvalidInput)
	}
	playerStats, err := e.CompileStats(ctx, ledger, ledger.ActiveVehicle)
	if err != nil {
		return RaceReport{}, err
	}
	opponentStats := e.opponentStats(event.OpponentTier)

	outcome := e.resolver.Resolve(playerStats, opponentStats, event, skill, ledger.Prestige, e.rng)

	report := RaceReport{Outcome: outcome}
	class := event.Venue.Class()

	payout := e.econ.RacePayout(class, event.OpponentTier, outcome.Won, outcome.PayoutMultiplier, e.prestige.IncomeMultiplier(ledger.Prestige))
	if payout > 0 {
		_ = e.econ.AddMoney(ledger, payout)
	}
	report.Payout = payout

	if outcome.Won {
		gain := int64(event.OpponentTier+1) * e.credPerWin
		if class == model.Sanctioned {
			ledger.Reputation += int64(event.OpponentTier+1) * e.repPerWin
		} else {
			ledger.Cred += gain
		}
	}

	if class == model.Unsanctioned {
		added := e.heatForVenue(event.Venue) * e.prestige.HeatGainMultiplier(ledger.Prestige)
		_ = e.risk.AddHeat(ledger, added)
		report.HeatAdded = added

		if e.risk.ShouldTriggerEncounter(ledger.Heat, e.rng) {
			police := e.risk.ResolveEncounter(ledger, playerStats, e.rng)
			report.Police = &police
			if !police.Escaped && police.Fine > 0 {
				paid := police.Fine
				if paid > ledger.Money {
					paid = ledger.Money
				}
				if err := e.econ.TrySpend(ledger, paid); err == nil {
					report.FinePaid = paid
				}
			}
			e.mtrEncounter(police.Escaped)
		}
	}

	e.log.Info(ctx, "race resolved",
		logger.String("venue", event.Venue.String()),
		logger.Int("tier", event.OpponentTier),
		logger.Any("won", outcome.Won),
		logger.Int64("payout", payout),
		logger.Float64("heat", ledger.Heat),
	)
	e.mtrRace(outcome.Won, payout, ledger)
	return report, e.saveProfile(ctx, ledger)
}

// DecayHeat applies passive heat decay for an elapsed wall-clock interval.
func (e *Engine) DecayHeat(ctx context.Context, ledger *model.PlayerLedger, elapsedSeconds float64) error {
	if err := e.risk.DecayHeat(ledger, e.heatDecayPPS, elapsedSeconds); err != nil {
		return err
	}
	return e.saveProfile(ctx, ledger)
}

// CanPrestige reports prestige eligibility without mutating anything.
func (e *Engine) CanPrestige(ledger *model.PlayerLedger) bool {
	return e.prestige.CanPrestige(ledger)
}

// Prestige applies one reset cycle.
func (e *Engine) Prestige(ctx context.Context, ledger *model.PlayerLedger) error {
	if err := e.prestige.ApplyPrestige(ledger); err != nil {
		return err
	}
	e.log.Info(ctx, "prestige applied", logger.Int("level", ledger.Prestige))
	e.mtrPrestige()
	return e.saveProfile(ctx, ledger)
}

// opponentStats synthesizes an opponent stat block from the tier baseline
// so that resolution depends only on (tier, RNG), not on catalog contents.
func (e *Engine) opponentStats(tier int) model.AggregatedStats {
	if tier < 0 {
		tier = 0
	}
	if tier > 4 {
		tier = 4
	}
	scale := 1 + opponentTierScale*float64(tier)
	return model.AggregatedStats{
		BaseStats: model.BaseStats{
			HP:         opponentBaseHP * scale,
			Torque:     opponentBaseTorque * scale,
			Weight:     opponentBaseWeight,
			Grip:       opponentBaseGrip * scale,
			Suspension: opponentBaseSuspension * scale,
		},
		Drivetrain: model.DrivetrainAWD,
	}
}

func (e *Engine) heatForVenue(v model.Venue) float64 {
	if v == model.VenueHighway {
		return e.highwayHeat
	}
	return e.streetHeat
}

func (e *Engine) mtrRace(won bool, payout int64, ledger *model.PlayerLedger) {
	if e.mtr == nil {
		return
	}
	e.mtr.RecordRace(won, payout)
	e.mtr.SetLedgerGauges(ledger.Money, ledger.Heat)
}

func (e *Engine) mtrEncounter(escaped bool) {
	if e.mtr != nil {
		e.mtr.RecordEncounter(escaped)
	}
}

func (e *Engine) mtrUpgrade() {
	if e.mtr != nil {
		e.mtr.RecordUpgrade()
	}
}

func (e *Engine) mtrPrestige() {
	if e.mtr != nil {
		e.mtr.RecordPrestige()
	}
}
