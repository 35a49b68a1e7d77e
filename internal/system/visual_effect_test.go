package system

import (
	"image/color"
	"testing"

	"go-path-defense/internal/component"
	"go-path-defense/internal/event"
)

func TestVisualEffectsFollowCombatEvents(t *testing.T) {
	w := newTestWorld(t, straightPath(500))
	vs := NewVisualEffectSystem(w.ecs, w.dispatcher, color.RGBA{255, 200, 0, 255})
	ps := NewProjectileSystem(w.ecs, w.dispatcher)

	tough := w.addEnemy(2, 0, 10, 1, 1)
	weak := w.addEnemy(50, 20, 1, 1, 1)
	w.addProjectile(0, 0, component.Projectile{TargetID: tough, Speed: 5, Damage: 1})
	w.addProjectile(48, 20, component.Projectile{TargetID: weak, Speed: 5, Damage: 1})
	ps.Update()

	if w.count(event.EnemyDamaged) != 1 {
		t.Fatalf("EnemyDamaged dispatched %d times, want 1", w.count(event.EnemyDamaged))
	}
	if flash, ok := w.ecs.DamageFlashes[tough]; !ok || flash.RemainingTicks != FlashTicks {
		t.Fatalf("no flash on the damaged enemy: %+v", flash)
	}
	if len(w.ecs.Bursts) != 1 || w.ecs.Bursts[0].X != 50 || w.ecs.Bursts[0].Y != 20 {
		t.Fatalf("burst not placed where the enemy died: %+v", w.ecs.Bursts)
	}

	for i := 0; i < FlashTicks; i++ {
		vs.Update()
	}
	if _, ok := w.ecs.DamageFlashes[tough]; ok {
		t.Fatal("flash outlived its duration")
	}
	if len(w.ecs.Bursts) != 1 {
		t.Fatal("burst expired early")
	}
	for i := FlashTicks; i < BurstTicks; i++ {
		vs.Update()
	}
	if len(w.ecs.Bursts) != 0 {
		t.Fatalf("%d bursts left after their duration", len(w.ecs.Bursts))
	}
}

func TestBurstProgress(t *testing.T) {
	b := &component.Burst{DurationTicks: 10}
	if b.Progress() != 0 {
		t.Fatal("new burst should start at 0")
	}
	b.AgeTicks = 5
	if b.Progress() != 0.5 {
		t.Fatalf("progress %v, want 0.5", b.Progress())
	}
	b.AgeTicks = 50
	if b.Progress() != 1 {
		t.Fatal("progress should clamp at 1")
	}
}

func TestRemovedEnemyLosesFlash(t *testing.T) {
	w := newTestWorld(t, straightPath(500))
	id := w.addEnemy(0, 0, 5, 1, 1)
	w.ecs.DamageFlashes[id] = &component.DamageFlash{RemainingTicks: FlashTicks}
	w.ecs.RemoveEnemy(id)
	if _, ok := w.ecs.DamageFlashes[id]; ok {
		t.Fatal("flash kept for a removed enemy")
	}
}
