// Package catalog holds the immutable vehicle and upgrade definitions.
// Catalogs are loaded once at startup, validated, and read-only afterwards.
package catalog

import (
	"fmt"
	"maps"

	"github.com/redlinehq/redline/internal/domain/model"
)

// Catalog is the validated, immutable lookup table set.
type Catalog struct {
	vehicles map[string]model.VehicleDefinition
	upgrades map[string]model.UpgradeDefinition
}

// New builds a catalog from definition slices, validating every entry.
// Validation failures are load-time errors; nothing is re-checked at
// runtime.
func New(vehicles []model.VehicleDefinition, upgrades []model.UpgradeDefinition) (*Catalog, error) {
	c := &Catalog{
		vehicles: make(map[string]model.VehicleDefinition, len(vehicles)),
		upgrades: make(map[string]model.UpgradeDefinition, len(upgrades)),
	}

	for _, v := range vehicles {
		if v.ID == "" {
			return nil, fmt.Errorf("%w: vehicle with empty id", ErrInvalidDefinition)
		}
		if _, dup := c.vehicles[v.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate vehicle %q", ErrInvalidDefinition, v.ID)
		}
		if v.Tier < 0 {
			return nil, fmt.Errorf("%w: vehicle %q has negative tier", ErrInvalidDefinition, v.ID)
		}
		if v.Value < 0 {
			return nil, fmt.Errorf("%w: vehicle %q has negative value", ErrInvalidDefinition, v.ID)
		}
		c.vehicles[v.ID] = v
	}

	for _, u := range upgrades {
		if u.Category == "" {
			return nil, fmt.Errorf("%w: upgrade with empty category", ErrInvalidDefinition)
		}
		if _, dup := c.upgrades[u.Category]; dup {
			return nil, fmt.Errorf("%w: duplicate upgrade %q", ErrInvalidDefinition, u.Category)
		}
		if u.MaxLevel < 1 {
			return nil, fmt.Errorf("%w: upgrade %q max level %d", ErrInvalidDefinition, u.Category, u.MaxLevel)
		}
		if u.CostGrowth < 1 {
			return nil, fmt.Errorf("%w: upgrade %q cost growth %v", ErrInvalidDefinition, u.Category, u.CostGrowth)
		}
		if u.BaseCost < 0 {
			return nil, fmt.Errorf("%w: upgrade %q negative base cost", ErrInvalidDefinition, u.Category)
		}
		// Fixed-length delta list, one entry per level. Sizing is checked
		// here once instead of being resized reactively at runtime.
		if len(u.Deltas) != u.MaxLevel {
			return nil, fmt.Errorf("%w: upgrade %q has %d deltas for max level %d",
				ErrInvalidDefinition, u.Category, len(u.Deltas), u.MaxLevel)
		}
		c.upgrades[u.Category] = u
	}

	return c, nil
}

// Vehicle looks up a vehicle definition by id.
func (c *Catalog) Vehicle(id string) (model.VehicleDefinition, error) {
	v, ok := c.vehicles[id]
	if !ok {
		return model.VehicleDefinition{}, fmt.Errorf("%w: vehicle %q", ErrNotFound, id)
	}
	return v, nil
}

// Upgrade looks up an upgrade definition by category.
func (c *Catalog) Upgrade(category string) (model.UpgradeDefinition, error) {
	u, ok := c.upgrades[category]
	if !ok {
		return model.UpgradeDefinition{}, fmt.Errorf("%w: upgrade %q", ErrNotFound, category)
	}
	return u, nil
}

// Upgrades returns a copy of the full upgrade definition map, so mutating
// the result cannot reach the catalog's own entries.
func (c *Catalog) Upgrades() map[string]model.UpgradeDefinition {
	return maps.Clone(c.upgrades)
}

// VehicleCount returns the number of catalogued vehicles.
func (c *Catalog) VehicleCount() int {
	return len(c.vehicles)
}
