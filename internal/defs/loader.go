// internal/defs/loader.go
package defs

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"node-zero/internal/component"
)

//go:embed upgrades.json
var defaultUpgrades []byte

// UpgradeLibrary holds all upgrade definitions, keyed by their ID.
var UpgradeLibrary map[string]UpgradeDefinition

// LoadUpgradeDefinitions reads an upgrade catalog file and populates the UpgradeLibrary.
func LoadUpgradeDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read upgrade definitions file: %w", err)
	}
	return setUpgrades(file)
}

// LoadUpgrades loads the catalog at path, or the built-in one when path is empty.
func LoadUpgrades(path string) error {
	if path == "" {
		return LoadDefaultUpgrades()
	}
	return LoadUpgradeDefinitions(path)
}

// LoadDefaultUpgrades populates the UpgradeLibrary from the built-in catalog.
func LoadDefaultUpgrades() error {
	return setUpgrades(defaultUpgrades)
}

// ParseUpgradeDefinitions decodes and checks a catalog without touching the UpgradeLibrary.
func ParseUpgradeDefinitions(data []byte) (map[string]UpgradeDefinition, error) {
	var upgradeDefs []UpgradeDefinition
	if err := json.Unmarshal(data, &upgradeDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal upgrade definitions: %w", err)
	}

	library := make(map[string]UpgradeDefinition, len(upgradeDefs))
	for _, def := range upgradeDefs {
		if def.Cost <= 0 || def.Amount <= 0 {
			return nil, fmt.Errorf("upgrade %q: cost and amount must be positive", def.ID)
		}
		library[def.ID] = def
	}
	for _, kind := range component.UpgradeKinds {
		if _, ok := library[kind.String()]; !ok {
			return nil, fmt.Errorf("upgrade %q is missing", kind)
		}
	}
	return library, nil
}

// Upgrade returns the definition for kind, falling back to the built-in catalog.
func Upgrade(kind component.UpgradeKind) UpgradeDefinition {
	if UpgradeLibrary == nil {
		if err := LoadDefaultUpgrades(); err != nil {
			panic(err) // the embedded catalog is covered by tests
		}
	}
	return UpgradeLibrary[kind.String()]
}

func setUpgrades(data []byte) error {
	library, err := ParseUpgradeDefinitions(data)
	if err != nil {
		return err
	}
	UpgradeLibrary = library
	return nil
}
