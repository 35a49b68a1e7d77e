package entity

import (
	"testing"

	"go-path-defense/internal/component"
	"go-path-defense/internal/types"
	"go-path-defense/pkg/geom"
)

func newTestECS() *ECS {
	return NewECS(geom.Path{{X: 0, Y: 0}, {X: 100, Y: 0}}, component.Ledger{Gold: 10, Health: 5})
}

func TestNewEntityIsMonotonic(t *testing.T) {
	ecs := newTestECS()
	a := ecs.NewEntity()
	b := ecs.NewEntity()
	if a == 0 || b <= a {
		t.Fatalf("expected increasing non-zero ids, got %d then %d", a, b)
	}
}

func TestRemoveEnemyKeepsOrder(t *testing.T) {
	ecs := newTestECS()
	var ids []types.EntityID
	for i := 0; i < 4; i++ {
		id := ecs.NewEntity()
		ecs.Positions[id] = &component.Position{}
		ecs.Healths[id] = &component.Health{Current: 1, Max: 1}
		ecs.AddEnemy(id, &component.Enemy{})
		ids = append(ids, id)
	}

	snapshot := ecs.EnemyIDs()
	ecs.RemoveEnemy(ids[1])
	ecs.RemoveEnemy(ids[1]) // second removal is a no-op

	if len(snapshot) != 4 {
		t.Fatalf("snapshot must not be affected by removal, len=%d", len(snapshot))
	}
	got := ecs.EnemyIDs()
	want := []types.EntityID{ids[0], ids[2], ids[3]}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
	if ecs.EnemyAlive(ids[1]) {
		t.Fatal("removed enemy still alive")
	}
	if _, ok := ecs.Positions[ids[1]]; ok {
		t.Fatal("position of removed enemy not cleaned up")
	}
}

func TestClearProjectiles(t *testing.T) {
	ecs := newTestECS()
	for i := 0; i < 3; i++ {
		id := ecs.NewEntity()
		ecs.Positions[id] = &component.Position{}
		ecs.AddProjectile(id, &component.Projectile{})
	}
	ecs.ClearProjectiles()
	if ecs.ProjectileCount() != 0 || len(ecs.Projectiles) != 0 || len(ecs.Positions) != 0 {
		t.Fatalf("projectiles left behind: %d", ecs.ProjectileCount())
	}
}
