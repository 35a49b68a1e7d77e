// internal/entity/ecs.go
package entity

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/types"
	"go-path-defense/pkg/geom"
)

// ECS owns every entity of one session. Maps give O(1) liveness checks for handles,
// the order slices give a deterministic iteration order (spawn/creation order).
type ECS struct {
	Tick          uint64
	NextID        types.EntityID
	Path          geom.Path
	Positions     map[types.EntityID]*component.Position
	Velocities    map[types.EntityID]*component.Velocity
	Paths         map[types.EntityID]*component.PathProgress
	Healths       map[types.EntityID]*component.Health
	SlowEffects   map[types.EntityID]*component.SlowEffect
	Enemies       map[types.EntityID]*component.Enemy
	Towers        map[types.EntityID]*component.Tower
	Combats       map[types.EntityID]*component.Combat
	Projectiles   map[types.EntityID]*component.Projectile
	DamageFlashes map[types.EntityID]*component.DamageFlash
	Bursts        []*component.Burst // presentation only, never read by the simulation
	Wave          *component.Wave
	GameState     *component.GameState

	enemyOrder      []types.EntityID
	towerOrder      []types.EntityID
	projectileOrder []types.EntityID
}

func NewECS(path geom.Path, ledger component.Ledger) *ECS {
	return &ECS{
		NextID:        1,
		Path:          path,
		Positions:     make(map[types.EntityID]*component.Position),
		Velocities:    make(map[types.EntityID]*component.Velocity),
		Paths:         make(map[types.EntityID]*component.PathProgress),
		Healths:       make(map[types.EntityID]*component.Health),
		SlowEffects:   make(map[types.EntityID]*component.SlowEffect),
		Enemies:       make(map[types.EntityID]*component.Enemy),
		Towers:        make(map[types.EntityID]*component.Tower),
		Combats:       make(map[types.EntityID]*component.Combat),
		Projectiles:   make(map[types.EntityID]*component.Projectile),
		DamageFlashes: make(map[types.EntityID]*component.DamageFlash),
		Wave:          nil,
		GameState: &component.GameState{
			Phase:  component.BuildPhase,
			Ledger: ledger,
		},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// AddEnemy registers an enemy id in iteration order. Components are set by the caller.
func (ecs *ECS) AddEnemy(id types.EntityID, enemy *component.Enemy) {
	ecs.Enemies[id] = enemy
	ecs.enemyOrder = append(ecs.enemyOrder, id)
}

func (ecs *ECS) AddTower(id types.EntityID, tower *component.Tower) {
	ecs.Towers[id] = tower
	ecs.towerOrder = append(ecs.towerOrder, id)
}

func (ecs *ECS) AddProjectile(id types.EntityID, proj *component.Projectile) {
	ecs.Projectiles[id] = proj
	ecs.projectileOrder = append(ecs.projectileOrder, id)
}

// RemoveEnemy drops every component of an enemy. Removing a dead id is a no-op.
func (ecs *ECS) RemoveEnemy(id types.EntityID) {
	if _, ok := ecs.Enemies[id]; !ok {
		return
	}
	delete(ecs.Enemies, id)
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Paths, id)
	delete(ecs.Healths, id)
	delete(ecs.SlowEffects, id)
	delete(ecs.DamageFlashes, id)
	ecs.enemyOrder = removeID(ecs.enemyOrder, id)
}

func (ecs *ECS) RemoveProjectile(id types.EntityID) {
	if _, ok := ecs.Projectiles[id]; !ok {
		return
	}
	delete(ecs.Projectiles, id)
	delete(ecs.Positions, id)
	ecs.projectileOrder = removeID(ecs.projectileOrder, id)
}

// EnemyAlive reports whether a handle still refers to a live enemy.
func (ecs *ECS) EnemyAlive(id types.EntityID) bool {
	_, ok := ecs.Enemies[id]
	return ok
}

// EnemyIDs returns a snapshot of live enemies in spawn order; safe to mutate the world while ranging over it.
func (ecs *ECS) EnemyIDs() []types.EntityID {
	return append([]types.EntityID(nil), ecs.enemyOrder...)
}

func (ecs *ECS) TowerIDs() []types.EntityID {
	return append([]types.EntityID(nil), ecs.towerOrder...)
}

func (ecs *ECS) ProjectileIDs() []types.EntityID {
	return append([]types.EntityID(nil), ecs.projectileOrder...)
}

func (ecs *ECS) EnemyCount() int      { return len(ecs.enemyOrder) }
func (ecs *ECS) TowerCount() int      { return len(ecs.towerOrder) }
func (ecs *ECS) ProjectileCount() int { return len(ecs.projectileOrder) }

// ClearProjectiles drops every in-flight projectile.
func (ecs *ECS) ClearProjectiles() {
	for _, id := range ecs.ProjectileIDs() {
		ecs.RemoveProjectile(id)
	}
}

func removeID(ids []types.EntityID, id types.EntityID) []types.EntityID {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
