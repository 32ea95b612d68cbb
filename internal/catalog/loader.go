package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/redlinehq/redline/internal/domain/model"
)

// catalogFile is the on-disk YAML shape.
type catalogFile struct {
	Vehicles []model.VehicleDefinition `yaml:"vehicles"`
	Upgrades []model.UpgradeDefinition `yaml:"upgrades"`
}

// LoadFile reads and validates a catalog from a YAML file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoadCatalog, path, err)
	}
	return Parse(data)
}

// Parse builds a catalog from raw YAML bytes.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadCatalog, err)
	}
	return New(f.Vehicles, f.Upgrades)
}
