// internal/system/status_effect.go
package system

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/types"
)

// StatusEffectSystem owns the slow effect lifecycle.
type StatusEffectSystem struct {
	ecs *entity.ECS
}

func NewStatusEffectSystem(ecs *entity.ECS) *StatusEffectSystem {
	return &StatusEffectSystem{ecs: ecs}
}

// SpeedForTick returns the speed an enemy moves with this tick and uses up one tick of slow.
//
// The slowed speed is used for every tick that consumes slow time, so a slow of N ticks
// slows exactly N moves. Effective speed is left at what the next tick will use.
func (s *StatusEffectSystem) SpeedForTick(id types.EntityID) float64 {
	vel, ok := s.ecs.Velocities[id]
	if !ok {
		return 0
	}
	slow, slowed := s.ecs.SlowEffects[id]
	if !slowed {
		vel.Effective = vel.Base
		return vel.Base
	}

	speed := vel.Base
	if slow.RemainingTicks > 0 {
		speed = vel.Base * slow.Factor
		slow.RemainingTicks--
	}
	if slow.RemainingTicks <= 0 {
		delete(s.ecs.SlowEffects, id)
		vel.Effective = vel.Base
	} else {
		vel.Effective = vel.Base * slow.Factor
	}
	return speed
}

// ApplySlow refreshes the slow effect of an enemy to the longer of the current and the new
// duration and records the factor. Effective speed changes right away.
func ApplySlow(ecs *entity.ECS, entityID types.EntityID, durationTicks int, factor float64) {
	vel, ok := ecs.Velocities[entityID]
	if !ok || durationTicks <= 0 || factor <= 0 {
		return
	}
	effect, exists := ecs.SlowEffects[entityID]
	if !exists {
		effect = &component.SlowEffect{}
		ecs.SlowEffects[entityID] = effect
	}
	if durationTicks > effect.RemainingTicks {
		effect.RemainingTicks = durationTicks
	}
	effect.Factor = factor
	vel.Effective = vel.Base * factor
}
