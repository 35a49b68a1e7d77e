// internal/system/wave.go
package system

import (
	"errors"

	"go-path-defense/internal/component"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
)

var ErrWaveInProgress = errors.New("wave already in progress")

// EnemyTemplate holds the per-enemy values that do not depend on the wave.
type EnemyTemplate struct {
	Radius float64
	Bounty int
}

// WaveSystem schedules and releases enemies and detects cleared waves.
// Spawns live in a tick-stamped queue on the wave, checked once per tick.
type WaveSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	growth          defs.WaveGrowth
	template        EnemyTemplate
}

func NewWaveSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, growth defs.WaveGrowth, template EnemyTemplate) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		growth:          growth,
		template:        template,
	}
}

// StartWave begins the next wave. The first enemy appears on the next tick, the rest follow
// every SpawnIntervalTicks. While a wave is running it returns the current wave and ErrWaveInProgress.
func (s *WaveSystem) StartWave() (*component.Wave, error) {
	if current := s.ecs.Wave; current != nil && current.InProgress {
		return current, ErrWaveInProgress
	}

	number := 1
	if s.ecs.Wave != nil {
		number = s.ecs.Wave.Number + 1
	}
	def := s.growth.ForWave(number)

	first := s.ecs.Tick + 1
	schedule := make([]component.SpawnEvent, def.Count)
	for i := range schedule {
		schedule[i] = component.SpawnEvent{
			AtTick: first + uint64(i*def.SpawnInterval),
			Health: def.Health,
			Speed:  def.Speed,
		}
	}

	wave := &component.Wave{
		Number:     number,
		Total:      def.Count,
		InProgress: true,
		Health:     def.Health,
		Speed:      def.Speed,
		Schedule:   schedule,
	}
	s.ecs.Wave = wave
	s.dispatch(event.Event{Type: event.WaveStarted, Data: event.WaveData{Number: number, Count: def.Count, Bonus: def.Bonus}})
	return wave, nil
}

// SpawnDue releases every scheduled spawn whose tick has come and returns how many were released.
func (s *WaveSystem) SpawnDue() int {
	wave := s.ecs.Wave
	if wave == nil || !wave.InProgress {
		return 0
	}
	released := 0
	for len(wave.Schedule) > 0 && wave.Schedule[0].AtTick <= s.ecs.Tick {
		s.spawnEnemy(wave, wave.Schedule[0])
		wave.Schedule = wave.Schedule[1:]
		wave.Spawned++
		released++
	}
	return released
}

func (s *WaveSystem) spawnEnemy(wave *component.Wave, spawn component.SpawnEvent) {
	id := s.ecs.NewEntity()
	start := s.ecs.Path.Spawn()
	s.ecs.Positions[id] = &component.Position{X: start.X, Y: start.Y}
	s.ecs.Velocities[id] = &component.Velocity{Base: spawn.Speed, Effective: spawn.Speed}
	s.ecs.Paths[id] = &component.PathProgress{Index: 1}
	s.ecs.Healths[id] = &component.Health{Current: spawn.Health, Max: spawn.Health}
	s.ecs.AddEnemy(id, &component.Enemy{
		Radius: s.template.Radius,
		Bounty: s.template.Bounty,
		Wave:   wave.Number,
	})
	s.dispatch(event.Event{Type: event.EnemySpawned, Data: id})
}

// CheckComplete ends the running wave once nothing is scheduled and no enemy is left.
// It dispatches WaveEnded (carrying the clear bonus) and reports whether the wave ended now.
func (s *WaveSystem) CheckComplete() bool {
	wave := s.ecs.Wave
	if wave == nil || !wave.InProgress {
		return false
	}
	if wave.Pending() > 0 || s.ecs.EnemyCount() > 0 {
		return false
	}
	wave.InProgress = false
	s.dispatch(event.Event{
		Type: event.WaveEnded,
		Data: event.WaveData{Number: wave.Number, Count: wave.Total, Bonus: s.growth.ForWave(wave.Number).Bonus},
	})
	return true
}

// InProgress reports whether a wave is running.
func (s *WaveSystem) InProgress() bool {
	return s.ecs.Wave != nil && s.ecs.Wave.InProgress
}

// Number returns the number of the current or last wave, 0 before the first one.
func (s *WaveSystem) Number() int {
	if s.ecs.Wave == nil {
		return 0
	}
	return s.ecs.Wave.Number
}

func (s *WaveSystem) dispatch(e event.Event) {
	if s.eventDispatcher != nil {
		s.eventDispatcher.Dispatch(e)
	}
}
