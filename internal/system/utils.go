// internal/system/utils.go
package system

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/types"
	"go-path-defense/pkg/geom"
)

// ApplyDamage subtracts damage from an enemy, clamping health at zero.
// It reports whether the enemy is dead afterwards; the caller removes it.
func ApplyDamage(ecs *entity.ECS, entityID types.EntityID, damage float64) bool {
	health, ok := ecs.Healths[entityID]
	if !ok {
		return false
	}
	if damage > 0 {
		health.Current -= damage
	}
	if health.Current < 0 {
		health.Current = 0
	}
	return health.Current <= 0
}

func pointOf(pos *component.Position) geom.Point {
	return geom.Point{X: pos.X, Y: pos.Y}
}
