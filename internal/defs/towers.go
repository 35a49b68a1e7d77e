// internal/defs/towers.go
package defs

import (
	"errors"
	"fmt"
	"image/color"
	"sort"
)

const (
	TowerFire = "FIRE"
	TowerIce  = "ICE"
)

// ErrInvalidTowerDefinition wraps every validation failure of a tower definition.
var ErrInvalidTowerDefinition = errors.New("invalid tower definition")

// TowerDefinition holds all the static data for a specific type of tower.
type TowerDefinition struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Cost              int        `json:"cost"`
	Range             float64    `json:"range"`
	Damage            float64    `json:"damage"`
	FireIntervalTicks int        `json:"fire_interval_ticks"`
	ProjectileSpeed   float64    `json:"projectile_speed"`
	SlowFactor        float64    `json:"slow_factor,omitempty"` // 0 means no slow
	SlowDurationTicks int        `json:"slow_duration_ticks,omitempty"`
	Color             color.RGBA `json:"color"`
}

// Slows reports whether projectiles of this tower apply a slow effect.
func (d TowerDefinition) Slows() bool {
	return d.SlowFactor > 0
}

// Validate checks the invariants every tower profile must satisfy.
func (d TowerDefinition) Validate() error {
	switch {
	case d.ID == "":
		return fmt.Errorf("%w: empty id", ErrInvalidTowerDefinition)
	case d.Cost <= 0:
		return fmt.Errorf("%w: %s: cost must be > 0", ErrInvalidTowerDefinition, d.ID)
	case d.Range <= 0:
		return fmt.Errorf("%w: %s: range must be > 0", ErrInvalidTowerDefinition, d.ID)
	case d.Damage <= 0:
		return fmt.Errorf("%w: %s: damage must be > 0", ErrInvalidTowerDefinition, d.ID)
	case d.FireIntervalTicks <= 0:
		return fmt.Errorf("%w: %s: fire interval must be > 0", ErrInvalidTowerDefinition, d.ID)
	case d.ProjectileSpeed <= 0:
		return fmt.Errorf("%w: %s: projectile speed must be > 0", ErrInvalidTowerDefinition, d.ID)
	case d.SlowFactor < 0 || d.SlowFactor >= 1:
		return fmt.Errorf("%w: %s: slow factor must be in [0, 1)", ErrInvalidTowerDefinition, d.ID)
	case d.Slows() && d.SlowDurationTicks <= 0:
		return fmt.Errorf("%w: %s: slowing tower needs a slow duration", ErrInvalidTowerDefinition, d.ID)
	}
	return nil
}

// Library maps tower ids to their definitions.
type Library map[string]TowerDefinition

// IDs returns the tower ids sorted by cost, then id.
func (l Library) IDs() []string {
	ids := make([]string, 0, len(l))
	for id := range l {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, b := l[ids[i]], l[ids[j]]
		if a.Cost != b.Cost {
			return a.Cost < b.Cost
		}
		return a.ID < b.ID
	})
	return ids
}

// Validate validates every definition in the library.
func (l Library) Validate() error {
	if len(l) == 0 {
		return fmt.Errorf("%w: library is empty", ErrInvalidTowerDefinition)
	}
	for id, def := range l {
		if id != def.ID {
			return fmt.Errorf("%w: key %q does not match id %q", ErrInvalidTowerDefinition, id, def.ID)
		}
		if err := def.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// DefaultTowers returns the two stock towers. ICE deals half a point per hit and halves
// the target's speed for 120 ticks (two seconds at 60 TPS).
func DefaultTowers() Library {
	return Library{
		TowerFire: {
			ID:                TowerFire,
			Name:              "Fire",
			Cost:              100,
			Range:             100,
			Damage:            1,
			FireIntervalTicks: 60,
			ProjectileSpeed:   5,
			Color:             color.RGBA{231, 76, 60, 255},
		},
		TowerIce: {
			ID:                TowerIce,
			Name:              "Ice",
			Cost:              120,
			Range:             80,
			Damage:            0.5,
			FireIntervalTicks: 90,
			ProjectileSpeed:   4,
			SlowFactor:        0.5,
			SlowDurationTicks: 120,
			Color:             color.RGBA{52, 152, 219, 255},
		},
	}
}
