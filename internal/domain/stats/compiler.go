// Package stats aggregates vehicle performance stats from upgrade levels.
package stats

import (
	"fmt"
	"sort"
	"strings"

	"github.com/redlinehq/redline/internal/domain/model"
)

// Compile builds the aggregated stat block for a vehicle: base stats plus
// the cumulative per-level deltas of every upgraded category. Level N applies
// the deltas of levels 1..N. Each component is floored at 0 after all
// categories are applied (weight reduction may carry negative deltas, but the
// aggregate never goes negative). Drivetrain is copied through unchanged.
//
// Categories present in state with no matching definition contribute zero.
// The returned stats are always valid; when such categories exist the error
// wraps ErrMissingDefinition naming them, so strict callers can still branch
// while the engine treats it as "skip".
func Compile(vehicle model.VehicleDefinition, state *model.UpgradeState, defs map[string]model.UpgradeDefinition) (model.AggregatedStats, error) {
	agg := model.AggregatedStats{
		BaseStats:  vehicle.Stats,
		Drivetrain: vehicle.Drivetrain,
	}

	var missing []string
	if state != nil {
		// Deterministic application order; addition commutes, but stable
		// iteration keeps logs and debugging sane.
		categories := make([]string, 0, len(state.Levels))
		for cat := range state.Levels {
			categories = append(categories, cat)
		}
		sort.Strings(categories)

		for _, cat := range categories {
			level := state.Levels[cat]
			if level <= 0 {
				continue
			}
			def, ok := defs[cat]
			if !ok {
				missing = append(missing, cat)
				continue
			}
			if level > def.MaxLevel {
				level = def.MaxLevel
			}
			for i := 0; i < level && i < len(def.Deltas); i++ {
				d := def.Deltas[i]
				agg.HP += d.HP
				agg.Torque += d.Torque
				agg.Weight += d.Weight
				agg.Grip += d.Grip
				agg.Suspension += d.Suspension
			}
		}
	}

	agg.HP = floorZero(agg.HP)
	agg.Torque = floorZero(agg.Torque)
	agg.Weight = floorZero(agg.Weight)
	agg.Grip = floorZero(agg.Grip)
	agg.Suspension = floorZero(agg.Suspension)

	if len(missing) > 0 {
		return agg, fmt.Errorf("%w: %s", ErrMissingDefinition, strings.Join(missing, ", "))
	}
	return agg, nil
}

func floorZero(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
