// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

// LoadTowerDefinitions reads a JSON array of tower definitions from disk.
func LoadTowerDefinitions(path string) (Library, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tower definitions file: %w", err)
	}
	lib, err := ParseTowerDefinitions(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Printf("Loaded %d tower definitions from %s", len(lib), path)
	return lib, nil
}

// ParseTowerDefinitions decodes and validates a JSON array of tower definitions.
func ParseTowerDefinitions(data []byte) (Library, error) {
	var towerDefs []TowerDefinition
	if err := json.Unmarshal(data, &towerDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tower definitions: %w", err)
	}

	lib := make(Library, len(towerDefs))
	for _, def := range towerDefs {
		if _, dup := lib[def.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrInvalidTowerDefinition, def.ID)
		}
		lib[def.ID] = def
	}
	if err := lib.Validate(); err != nil {
		return nil, err
	}
	return lib, nil
}
