// internal/app/snapshot.go
package app

import (
	"encoding/json"
	"fmt"

	"go-path-defense/internal/types"
)

// EnemyView is the read-only render data of one enemy.
type EnemyView struct {
	ID             types.EntityID `json:"id"`
	X              float64        `json:"x"`
	Y              float64        `json:"y"`
	Radius         float64        `json:"radius"`
	Health         float64        `json:"health"`
	MaxHealth      float64        `json:"max_health"`
	HealthFraction float64        `json:"health_fraction"`
	Speed          float64        `json:"speed"`
	Slowed         bool           `json:"slowed"`
	PathIndex      int            `json:"path_index"`
}

type TowerView struct {
	ID       types.EntityID `json:"id"`
	DefID    string         `json:"def_id"`
	X        float64        `json:"x"`
	Y        float64        `json:"y"`
	Range    float64        `json:"range"`
	Cooldown int            `json:"cooldown"`
}

type ProjectileView struct {
	ID       types.EntityID `json:"id"`
	DefID    string         `json:"def_id"`
	X        float64        `json:"x"`
	Y        float64        `json:"y"`
	TargetID types.EntityID `json:"target_id"`
}

// Snapshot is a copy of everything a renderer or UI needs after a tick.
// It shares no memory with the world.
type Snapshot struct {
	Session        string           `json:"session"`
	Tick           uint64           `json:"tick"`
	Phase          string           `json:"phase"`
	GameOver       bool             `json:"game_over"`
	Gold           int              `json:"gold"`
	Health         int              `json:"health"`
	Wave           int              `json:"wave"`
	WaveInProgress bool             `json:"wave_in_progress"`
	PendingSpawns  int              `json:"pending_spawns"`
	Enemies        []EnemyView      `json:"enemies"`
	Towers         []TowerView      `json:"towers"`
	Projectiles    []ProjectileView `json:"projectiles"`
}

// Snapshot copies the current state in iteration order.
func (g *Game) Snapshot() Snapshot {
	ecs := g.ECS
	snap := Snapshot{
		Session:        g.sessionID,
		Tick:           ecs.Tick,
		Phase:          g.Phase().String(),
		GameOver:       g.IsGameOver(),
		Gold:           g.Gold(),
		Health:         g.Health(),
		Wave:           g.WaveSystem.Number(),
		WaveInProgress: g.WaveSystem.InProgress(),
		PendingSpawns:  ecs.Wave.Pending(),
		Enemies:        make([]EnemyView, 0, ecs.EnemyCount()),
		Towers:         make([]TowerView, 0, ecs.TowerCount()),
		Projectiles:    make([]ProjectileView, 0, ecs.ProjectileCount()),
	}

	for _, id := range ecs.EnemyIDs() {
		pos, health, vel, enemy := ecs.Positions[id], ecs.Healths[id], ecs.Velocities[id], ecs.Enemies[id]
		if pos == nil || health == nil || vel == nil || enemy == nil {
			continue
		}
		view := EnemyView{
			ID:             id,
			X:              pos.X,
			Y:              pos.Y,
			Radius:         enemy.Radius,
			Health:         health.Current,
			MaxHealth:      health.Max,
			HealthFraction: health.Fraction(),
			Speed:          vel.Effective,
		}
		if slow, ok := ecs.SlowEffects[id]; ok && slow.RemainingTicks > 0 {
			view.Slowed = true
		}
		if progress, ok := ecs.Paths[id]; ok {
			view.PathIndex = progress.Index
		}
		snap.Enemies = append(snap.Enemies, view)
	}

	for _, id := range ecs.TowerIDs() {
		pos, tower, combat := ecs.Positions[id], ecs.Towers[id], ecs.Combats[id]
		if pos == nil || tower == nil || combat == nil {
			continue
		}
		snap.Towers = append(snap.Towers, TowerView{
			ID:       id,
			DefID:    tower.DefID,
			X:        pos.X,
			Y:        pos.Y,
			Range:    combat.Range,
			Cooldown: combat.CooldownTicks,
		})
	}

	for _, id := range ecs.ProjectileIDs() {
		pos, proj := ecs.Positions[id], ecs.Projectiles[id]
		if pos == nil || proj == nil {
			continue
		}
		snap.Projectiles = append(snap.Projectiles, ProjectileView{
			ID:       id,
			DefID:    proj.DefID,
			X:        pos.X,
			Y:        pos.Y,
			TargetID: proj.TargetID,
		})
	}
	return snap
}

// SnapshotJSON encodes the current snapshot for export.
func (g *Game) SnapshotJSON() ([]byte, error) {
	data, err := json.MarshalIndent(g.Snapshot(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return data, nil
}
