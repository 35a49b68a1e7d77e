// internal/system/state.go
package system

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
)

// StateSystem tracks the session phase. Game over is terminal: later events are ignored.
type StateSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *StateSystem {
	ss := &StateSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
	}
	eventDispatcher.Subscribe(event.WaveStarted, ss)
	eventDispatcher.Subscribe(event.WaveEnded, ss)
	return ss
}

func (s *StateSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.WaveStarted:
		s.switchTo(component.WavePhase)
	case event.WaveEnded:
		s.switchTo(component.BuildPhase)
	}
}

// SwitchToGameOver enters the terminal phase. It returns false when the session was already over,
// so the caller announces game over exactly once.
func (s *StateSystem) SwitchToGameOver() bool {
	if s.Current() == component.GameOverPhase {
		return false
	}
	s.ecs.GameState.Phase = component.GameOverPhase
	return true
}

func (s *StateSystem) switchTo(phase component.Phase) {
	if s.Current() == component.GameOverPhase {
		return
	}
	s.ecs.GameState.Phase = phase
}

func (s *StateSystem) Current() component.Phase {
	return s.ecs.GameState.Phase
}
