// internal/system/movement.go
package system

import (
	"go-path-defense/internal/entity"
	"go-path-defense/internal/interfaces"
	"go-path-defense/internal/types"
	"go-path-defense/pkg/geom"
)

// MovementSystem walks enemies along the shared path.
type MovementSystem struct {
	ecs     *entity.ECS
	game    interfaces.GameContext
	effects *StatusEffectSystem
}

func NewMovementSystem(ecs *entity.ECS, game interfaces.GameContext) *MovementSystem {
	return &MovementSystem{ecs: ecs, game: game, effects: NewStatusEffectSystem(ecs)}
}

// Update advances every live enemy in spawn order and reports leaks.
// It returns true when a leak ended the session; the remaining enemies are not moved.
func (s *MovementSystem) Update() (halted bool) {
	for _, id := range s.ecs.EnemyIDs() {
		if !s.ecs.EnemyAlive(id) {
			continue
		}
		s.Advance(id)
		if s.Leaked(id) && s.game != nil && s.game.OnEnemyLeaked(id) {
			return true
		}
	}
	return false
}

// Advance moves one enemy by one tick.
// Reaching a waypoint snaps onto it and drops the leftover distance.
func (s *MovementSystem) Advance(id types.EntityID) {
	pos, vel, progress := s.ecs.Positions[id], s.ecs.Velocities[id], s.ecs.Paths[id]
	if pos == nil || vel == nil || progress == nil {
		return
	}
	path := s.ecs.Path
	if progress.Index >= len(path) {
		return
	}

	speed := s.effects.SpeedForTick(id)
	next, arrived := geom.StepToward(pointOf(pos), path[progress.Index], speed)
	pos.X, pos.Y = next.X, next.Y
	if arrived {
		progress.Index++
	}
}

// Leaked reports whether the enemy has gone past the last waypoint.
func (s *MovementSystem) Leaked(id types.EntityID) bool {
	progress, ok := s.ecs.Paths[id]
	return ok && progress.Index >= len(s.ecs.Path)
}
