// internal/config/settings.go
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"go-path-defense/internal/defs"
	"go-path-defense/pkg/geom"
)

var ErrInvalidSettings = errors.New("invalid settings")

// Settings are read once when a session starts.
type Settings struct {
	InitialGold   int             `json:"initial_gold"`
	InitialHealth int             `json:"initial_health"`
	KillBounty    int             `json:"kill_bounty"`
	EnemyRadius   float64         `json:"enemy_radius"`
	FieldWidth    float64         `json:"field_width"`
	FieldHeight   float64         `json:"field_height"`
	PathClearance float64         `json:"path_clearance"`
	TowerRadius   float64         `json:"tower_radius"`
	Path          geom.Path       `json:"path"`
	TowersFile    string          `json:"towers_file,omitempty"`
	Waves         defs.WaveGrowth `json:"waves"`

	// Towers is filled from TowersFile, or the stock towers when no file is given.
	Towers defs.Library `json:"-"`
}

// ReferencePath is the stock six-waypoint route across an 800×600 field.
func ReferencePath() geom.Path {
	return geom.Path{
		{X: 0, Y: 300}, {X: 200, Y: 300}, {X: 200, Y: 100},
		{X: 600, Y: 100}, {X: 600, Y: 500}, {X: 800, Y: 500},
	}
}

// Default returns the stock settings.
func Default() Settings {
	return Settings{
		InitialGold:   InitialGold,
		InitialHealth: InitialHealth,
		KillBounty:    KillBounty,
		EnemyRadius:   EnemyRadius,
		FieldWidth:    ScreenWidth,
		FieldHeight:   ScreenHeight,
		PathClearance: PathClearance,
		TowerRadius:   TowerRadius,
		Path:          ReferencePath(),
		Waves:         defs.DefaultWaveGrowth(),
		Towers:        defs.DefaultTowers(),
	}
}

// Load reads settings from a JSON file. Missing fields keep their default values.
// A relative towers_file is resolved against the settings file's directory.
func Load(path string) (Settings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("failed to read settings file: %w", err)
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	if s.TowersFile != "" {
		towersPath := s.TowersFile
		if !filepath.IsAbs(towersPath) {
			towersPath = filepath.Join(filepath.Dir(path), towersPath)
		}
		lib, err := defs.LoadTowerDefinitions(towersPath)
		if err != nil {
			return s, err
		}
		s.Towers = lib
	}
	if err := s.Validate(); err != nil {
		return s, err
	}
	log.Printf("Loaded settings from %s", path)
	return s, nil
}

// Validate checks every option and the nested tower and wave definitions.
func (s Settings) Validate() error {
	switch {
	case s.InitialGold < 0:
		return fmt.Errorf("%w: initial gold must be >= 0", ErrInvalidSettings)
	case s.InitialHealth <= 0:
		return fmt.Errorf("%w: initial health must be > 0", ErrInvalidSettings)
	case s.KillBounty < 0:
		return fmt.Errorf("%w: kill bounty must be >= 0", ErrInvalidSettings)
	case s.EnemyRadius <= 0:
		return fmt.Errorf("%w: enemy radius must be > 0", ErrInvalidSettings)
	case s.FieldWidth <= 0 || s.FieldHeight <= 0:
		return fmt.Errorf("%w: field size must be positive", ErrInvalidSettings)
	case s.PathClearance < 0 || s.TowerRadius < 0:
		return fmt.Errorf("%w: clearances must be >= 0", ErrInvalidSettings)
	}
	if err := s.Path.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	if err := s.Towers.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	if err := s.Waves.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	return nil
}
