// internal/system/visual_effect.go
package system

import (
	"image/color"

	"go-path-defense/internal/component"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
)

const (
	FlashTicks     = 6
	BurstTicks     = 20
	BurstMaxRadius = 24.0
)

// VisualEffectSystem turns combat events into short-lived effects for the renderer.
// It never changes simulation state.
type VisualEffectSystem struct {
	ecs        *entity.ECS
	burstColor color.RGBA
}

func NewVisualEffectSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, burstColor color.RGBA) *VisualEffectSystem {
	s := &VisualEffectSystem{ecs: ecs, burstColor: burstColor}
	eventDispatcher.Subscribe(event.EnemyDamaged, s)
	eventDispatcher.Subscribe(event.EnemyKilled, s)
	return s
}

func (s *VisualEffectSystem) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.EnemyDamagedData:
		if s.ecs.EnemyAlive(data.EnemyID) {
			s.ecs.DamageFlashes[data.EnemyID] = &component.DamageFlash{RemainingTicks: FlashTicks}
		}
	case event.EnemyKilledData:
		s.ecs.Bursts = append(s.ecs.Bursts, &component.Burst{
			X:             data.X,
			Y:             data.Y,
			MaxRadius:     BurstMaxRadius,
			DurationTicks: BurstTicks,
			Color:         s.burstColor,
		})
	}
}

// Update ages every effect by one tick and drops the finished ones.
func (s *VisualEffectSystem) Update() {
	for id, flash := range s.ecs.DamageFlashes {
		flash.RemainingTicks--
		if flash.RemainingTicks <= 0 || !s.ecs.EnemyAlive(id) {
			delete(s.ecs.DamageFlashes, id)
		}
	}

	live := s.ecs.Bursts[:0]
	for _, b := range s.ecs.Bursts {
		b.AgeTicks++
		if b.AgeTicks < b.DurationTicks {
			live = append(live, b)
		}
	}
	s.ecs.Bursts = live
}
