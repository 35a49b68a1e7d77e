package system

import (
	"testing"

	"go-path-defense/internal/component"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
	"go-path-defense/internal/types"
	"go-path-defense/pkg/geom"
)

// testWorld bundles a world with a dispatcher that records every event it sees.
type testWorld struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	events     []event.Event
}

func newTestWorld(t *testing.T, path geom.Path) *testWorld {
	t.Helper()
	w := &testWorld{
		ecs:        entity.NewECS(path, component.Ledger{Gold: 100, Health: 5}),
		dispatcher: event.NewDispatcher(),
	}
	record := func(e event.Event) { w.events = append(w.events, e) }
	for _, et := range []event.EventType{
		event.EnemySpawned, event.EnemyDamaged, event.EnemyKilled, event.EnemyLeaked, event.ProjectileFired,
		event.ProjectileLost, event.WaveStarted, event.WaveEnded, event.GameOver,
	} {
		w.dispatcher.SubscribeFunc(et, record)
	}
	return w
}

func (w *testWorld) count(et event.EventType) int {
	n := 0
	for _, e := range w.events {
		if e.Type == et {
			n++
		}
	}
	return n
}

// addEnemy places an enemy heading to path[index].
func (w *testWorld) addEnemy(x, y, health, speed float64, index int) types.EntityID {
	id := w.ecs.NewEntity()
	w.ecs.Positions[id] = &component.Position{X: x, Y: y}
	w.ecs.Velocities[id] = &component.Velocity{Base: speed, Effective: speed}
	w.ecs.Paths[id] = &component.PathProgress{Index: index}
	w.ecs.Healths[id] = &component.Health{Current: health, Max: health}
	w.ecs.AddEnemy(id, &component.Enemy{Radius: 10, Bounty: 10, Wave: 1})
	return id
}

func (w *testWorld) addTower(x, y float64, combat component.Combat) types.EntityID {
	id := w.ecs.NewEntity()
	w.ecs.Positions[id] = &component.Position{X: x, Y: y}
	w.ecs.AddTower(id, &component.Tower{DefID: "TEST"})
	c := combat
	w.ecs.Combats[id] = &c
	return id
}

func (w *testWorld) addProjectile(x, y float64, proj component.Projectile) types.EntityID {
	id := w.ecs.NewEntity()
	w.ecs.Positions[id] = &component.Position{X: x, Y: y}
	p := proj
	w.ecs.AddProjectile(id, &p)
	return id
}

func (w *testWorld) pos(id types.EntityID) geom.Point {
	p := w.ecs.Positions[id]
	return geom.Point{X: p.X, Y: p.Y}
}

func straightPath(length float64) geom.Path {
	return geom.Path{{X: 0, Y: 0}, {X: length, Y: 0}}
}
