// Package upgrade implements the upgrade cost curve.
package upgrade

import (
	"fmt"
	"math"

	"github.com/redlinehq/redline/internal/domain/model"
)

// CostForLevel returns the cost of buying the next level when the player is
// at currentLevel. The curve is cost = round(baseCost * growth^currentLevel),
// so the first purchase (level 0 -> 1) costs exactly baseCost. Any prestige
// cost multiplier is applied by the caller; the curve itself stays pure.
//
// Returns ErrAtMaxLevel once currentLevel has reached the definition's max.
func CostForLevel(def model.UpgradeDefinition, currentLevel int) (int64, error) {
	if currentLevel < 0 {
		return 0, fmt.Errorf("%w: negative level %d", ErrInvalidLevel, currentLevel)
	}
	if currentLevel >= def.MaxLevel {
		return 0, fmt.Errorf("%w: %s level %d", ErrAtMaxLevel, def.Category, currentLevel)
	}
	cost := int64(math.Round(float64(def.BaseCost) * math.Pow(def.CostGrowth, float64(currentLevel))))
	if cost < 0 {
		cost = 0
	}
	return cost, nil
}
