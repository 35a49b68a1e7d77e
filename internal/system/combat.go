// internal/system/combat.go
package system

import (
	"math"

	"go-path-defense/internal/component"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
	"go-path-defense/internal/types"
	"go-path-defense/pkg/geom"
)

// CombatSystem runs tower cooldowns, targeting and firing.
//
// Targeting is nearest-in-range: the closest enemy strictly inside the range wins and ties
// go to the enemy spawned first. It is not first-to-leak targeting.
type CombatSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

func (s *CombatSystem) Update() {
	enemies := s.ecs.EnemyIDs()
	for _, id := range s.ecs.TowerIDs() {
		s.UpdateTower(id, enemies)
	}
}

// UpdateTower runs one tick of a single tower and returns the id of the projectile it fired, or 0.
// An idle tower keeps its cooldown at zero and looks for a target again next tick.
func (s *CombatSystem) UpdateTower(id types.EntityID, enemies []types.EntityID) types.EntityID {
	combat, ok := s.ecs.Combats[id]
	pos := s.ecs.Positions[id]
	if !ok || pos == nil {
		return 0
	}
	if combat.CooldownTicks > 0 {
		combat.CooldownTicks--
		return 0
	}

	target := s.SelectTarget(pointOf(pos), combat.Range, enemies)
	if target == 0 {
		return 0
	}
	projID := s.createProjectile(id, target, combat)
	combat.CooldownTicks = combat.FireIntervalTicks
	return projID
}

// SelectTarget returns the nearest live enemy whose distance to from is strictly less than
// rangeRadius, or 0 when none qualifies.
func (s *CombatSystem) SelectTarget(from geom.Point, rangeRadius float64, enemies []types.EntityID) types.EntityID {
	var nearestEnemy types.EntityID
	minDistance := math.MaxFloat64
	for _, enemyID := range enemies {
		if !s.ecs.EnemyAlive(enemyID) {
			continue
		}
		enemyPos, ok := s.ecs.Positions[enemyID]
		if !ok {
			continue
		}
		distance := geom.Distance(from, pointOf(enemyPos))
		if distance < rangeRadius && distance < minDistance {
			minDistance = distance
			nearestEnemy = enemyID
		}
	}
	return nearestEnemy
}

func (s *CombatSystem) createProjectile(towerID, enemyID types.EntityID, combat *component.Combat) types.EntityID {
	projID := s.ecs.NewEntity()
	towerPos := s.ecs.Positions[towerID]

	proj := &component.Projectile{
		TargetID: enemyID,
		SourceID: towerID,
		Speed:    combat.ProjectileSpeed,
		Damage:   combat.Damage,
	}
	if tower, ok := s.ecs.Towers[towerID]; ok {
		proj.DefID = tower.DefID
	}
	if combat.SlowFactor > 0 {
		proj.SlowFactor = combat.SlowFactor
		proj.SlowDurationTicks = combat.SlowDurationTicks
	}

	s.ecs.Positions[projID] = &component.Position{X: towerPos.X, Y: towerPos.Y}
	s.ecs.AddProjectile(projID, proj)

	if s.eventDispatcher != nil {
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.ProjectileFired,
			Data: event.ProjectileFiredData{ProjectileID: projID, TowerID: towerID, TargetID: enemyID},
		})
	}
	return projID
}
