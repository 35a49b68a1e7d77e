package system

import (
	"testing"

	"go-path-defense/internal/types"
	"go-path-defense/pkg/geom"
)

type leakRecorder struct {
	leaked  []types.EntityID
	haltOn  int // halt on the n-th leak, 0 never halts
	removeF func(types.EntityID)
}

func (r *leakRecorder) OnEnemyLeaked(id types.EntityID) bool {
	r.leaked = append(r.leaked, id)
	if r.removeF != nil {
		r.removeF(id)
	}
	return r.haltOn > 0 && len(r.leaked) >= r.haltOn
}

func TestAdvanceSnapsWithoutCarryOver(t *testing.T) {
	w := newTestWorld(t, geom.Path{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}})
	id := w.addEnemy(0, 0, 10, 3, 1)
	ms := NewMovementSystem(w.ecs, nil)

	want := []geom.Point{{X: 3, Y: 0}, {X: 6, Y: 0}, {X: 9, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 3}}
	wantIndex := []int{1, 1, 1, 2, 2}
	for i := range want {
		ms.Advance(id)
		if got := w.pos(id); got != want[i] {
			t.Fatalf("step %d: position %v, want %v", i, got, want[i])
		}
		if got := w.ecs.Paths[id].Index; got != wantIndex[i] {
			t.Fatalf("step %d: index %d, want %d", i, got, wantIndex[i])
		}
	}
}

func TestAdvancePastTerminalIsNoop(t *testing.T) {
	w := newTestWorld(t, straightPath(10))
	id := w.addEnemy(10, 0, 10, 3, 2)
	ms := NewMovementSystem(w.ecs, nil)
	ms.Advance(id)
	if got := w.pos(id); got != (geom.Point{X: 10, Y: 0}) {
		t.Fatalf("enemy past the end moved to %v", got)
	}
	if !ms.Leaked(id) {
		t.Fatal("expected enemy to be reported as leaked")
	}
}

func TestPathIndexIsMonotonic(t *testing.T) {
	w := newTestWorld(t, geom.Path{{X: 0, Y: 0}, {X: 50, Y: 0}, {X: 50, Y: 50}, {X: 0, Y: 50}})
	id := w.addEnemy(0, 0, 10, 2.5, 1)
	ms := NewMovementSystem(w.ecs, nil)
	last := w.ecs.Paths[id].Index
	for i := 0; i < 200 && !ms.Leaked(id); i++ {
		ms.Advance(id)
		cur := w.ecs.Paths[id].Index
		if cur < last {
			t.Fatalf("path index went back from %d to %d", last, cur)
		}
		last = cur
	}
	if !ms.Leaked(id) {
		t.Fatal("enemy never reached the end of the path")
	}
}

func TestUpdateReportsLeaks(t *testing.T) {
	w := newTestWorld(t, straightPath(10))
	nearEnd := w.addEnemy(9, 0, 10, 2, 1)
	far := w.addEnemy(0, 0, 10, 2, 1)
	rec := &leakRecorder{removeF: w.ecs.RemoveEnemy}
	ms := NewMovementSystem(w.ecs, rec)

	if halted := ms.Update(); halted {
		t.Fatal("no halt expected")
	}
	if len(rec.leaked) != 1 || rec.leaked[0] != nearEnd {
		t.Fatalf("leaked %v, want [%d]", rec.leaked, nearEnd)
	}
	if got := w.pos(far); got != (geom.Point{X: 2, Y: 0}) {
		t.Fatalf("far enemy at %v", got)
	}
}

func TestUpdateHaltsAfterTerminalLeak(t *testing.T) {
	w := newTestWorld(t, straightPath(10))
	w.addEnemy(9, 0, 10, 2, 1)
	w.addEnemy(9, 0, 10, 2, 1)
	third := w.addEnemy(0, 0, 10, 2, 1)
	rec := &leakRecorder{haltOn: 1, removeF: w.ecs.RemoveEnemy}
	ms := NewMovementSystem(w.ecs, rec)

	if halted := ms.Update(); !halted {
		t.Fatal("expected halt")
	}
	if len(rec.leaked) != 1 {
		t.Fatalf("expected processing to stop after the first leak, got %d leaks", len(rec.leaked))
	}
	if got := w.pos(third); got != (geom.Point{X: 0, Y: 0}) {
		t.Fatalf("enemy after the halt moved to %v", got)
	}
}

func TestSlowDecaysBackToBaseSpeed(t *testing.T) {
	w := newTestWorld(t, straightPath(100))
	id := w.addEnemy(0, 0, 10, 2, 1)
	ms := NewMovementSystem(w.ecs, nil)

	ApplySlow(w.ecs, id, 3, 0.5)
	if got := w.ecs.Velocities[id].Effective; got != 1 {
		t.Fatalf("effective speed after slow = %v, want 1", got)
	}

	wantX := []float64{1, 2, 3, 5, 7}
	for i, x := range wantX {
		ms.Advance(id)
		if got := w.pos(id).X; got != x {
			t.Fatalf("step %d: x=%v, want %v", i, got, x)
		}
	}
	if _, ok := w.ecs.SlowEffects[id]; ok {
		t.Fatal("expired slow effect not removed")
	}
	if got := w.ecs.Velocities[id].Effective; got != 2 {
		t.Fatalf("effective speed after decay = %v, want 2", got)
	}
}

func TestApplySlowRefreshesWithoutStacking(t *testing.T) {
	w := newTestWorld(t, straightPath(100))
	id := w.addEnemy(0, 0, 10, 2, 1)

	ApplySlow(w.ecs, id, 10, 0.5)
	ApplySlow(w.ecs, id, 4, 0.5)
	if got := w.ecs.SlowEffects[id].RemainingTicks; got != 10 {
		t.Fatalf("shorter slow shortened the effect: %d", got)
	}
	if got := w.ecs.Velocities[id].Effective; got != 1 {
		t.Fatalf("slows stacked: effective %v", got)
	}
	ApplySlow(w.ecs, id, 20, 0.5)
	if got := w.ecs.SlowEffects[id].RemainingTicks; got != 20 {
		t.Fatalf("longer slow not refreshed: %d", got)
	}
}
