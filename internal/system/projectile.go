// internal/system/projectile.go
package system

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
	"go-path-defense/internal/types"
	"go-path-defense/pkg/geom"
)

// FlightOutcome is the result of advancing a projectile by one tick.
type FlightOutcome int

const (
	InFlight FlightOutcome = iota
	Impact
	TargetLost
)

func (o FlightOutcome) String() string {
	switch o {
	case InFlight:
		return "in-flight"
	case Impact:
		return "impact"
	case TargetLost:
		return "target-lost"
	default:
		return "unknown"
	}
}

// ProjectileSystem moves projectiles and resolves hits.
type ProjectileSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewProjectileSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
	}
}

// Update advances projectiles in creation order. A projectile is removed as soon as it is
// resolved, whether it hit or lost its target. When several projectiles finish the same
// enemy in one tick, only the first in creation order gets the kill; the rest see target-lost.
func (s *ProjectileSystem) Update() {
	for _, id := range s.ecs.ProjectileIDs() {
		proj, ok := s.ecs.Projectiles[id]
		if !ok {
			continue
		}
		switch s.Advance(id) {
		case InFlight:
			continue
		case Impact:
			s.hitTarget(id, proj)
		case TargetLost:
			s.dispatch(event.Event{Type: event.ProjectileLost, Data: id})
		}
		s.ecs.RemoveProjectile(id)
	}
}

// Advance homes one projectile toward the current position of its target.
func (s *ProjectileSystem) Advance(id types.EntityID) FlightOutcome {
	proj, ok := s.ecs.Projectiles[id]
	pos := s.ecs.Positions[id]
	if !ok || pos == nil {
		return TargetLost
	}
	if !s.ecs.EnemyAlive(proj.TargetID) {
		return TargetLost
	}
	targetPos, ok := s.ecs.Positions[proj.TargetID]
	if !ok {
		return TargetLost
	}

	next, arrived := geom.StepToward(pointOf(pos), pointOf(targetPos), proj.Speed)
	pos.X, pos.Y = next.X, next.Y
	if arrived {
		return Impact
	}
	return InFlight
}

func (s *ProjectileSystem) hitTarget(projectileID types.EntityID, proj *component.Projectile) {
	killed := ApplyDamage(s.ecs, proj.TargetID, proj.Damage)
	if proj.SlowFactor > 0 {
		ApplySlow(s.ecs, proj.TargetID, proj.SlowDurationTicks, proj.SlowFactor)
	}
	if !killed {
		s.dispatch(event.Event{
			Type: event.EnemyDamaged,
			Data: event.EnemyDamagedData{
				EnemyID:      proj.TargetID,
				ProjectileID: projectileID,
				Damage:       proj.Damage,
				Remaining:    s.ecs.Healths[proj.TargetID].Current,
			},
		})
		return
	}

	data := event.EnemyKilledData{EnemyID: proj.TargetID, ProjectileID: projectileID}
	if enemy, ok := s.ecs.Enemies[proj.TargetID]; ok {
		data.Bounty = enemy.Bounty
	}
	if pos, ok := s.ecs.Positions[proj.TargetID]; ok {
		data.X, data.Y = pos.X, pos.Y
	}
	s.ecs.RemoveEnemy(proj.TargetID)
	s.dispatch(event.Event{Type: event.EnemyKilled, Data: data})
}

func (s *ProjectileSystem) dispatch(e event.Event) {
	if s.eventDispatcher != nil {
		s.eventDispatcher.Dispatch(e)
	}
}
