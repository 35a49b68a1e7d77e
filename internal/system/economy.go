// internal/system/economy.go
package system

import (
	"errors"
	"fmt"

	"go-path-defense/internal/component"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
)

var ErrInsufficientGold = errors.New("insufficient gold")

// EconomySystem owns the gold and health ledger. Gold never drops below zero.
type EconomySystem struct {
	ecs *entity.ECS
}

func NewEconomySystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *EconomySystem {
	s := &EconomySystem{ecs: ecs}
	if eventDispatcher != nil {
		eventDispatcher.Subscribe(event.EnemyKilled, s)
		eventDispatcher.Subscribe(event.WaveEnded, s)
	}
	return s
}

func (s *EconomySystem) ledger() *component.Ledger {
	return &s.ecs.GameState.Ledger
}

func (s *EconomySystem) Gold() int   { return s.ledger().Gold }
func (s *EconomySystem) Health() int { return s.ledger().Health }

func (s *EconomySystem) CanAfford(cost int) bool {
	return cost >= 0 && s.ledger().Gold >= cost
}

// Spend deducts cost or, when the player cannot afford it, leaves the ledger untouched.
func (s *EconomySystem) Spend(cost int) error {
	if !s.CanAfford(cost) {
		return fmt.Errorf("%w: need %d, have %d", ErrInsufficientGold, cost, s.ledger().Gold)
	}
	s.ledger().Gold -= cost
	return nil
}

// Award adds gold. Non-positive amounts are ignored.
func (s *EconomySystem) Award(amount int) {
	if amount > 0 {
		s.ledger().Gold += amount
	}
}

// Leak takes one health point and reports whether health is depleted.
func (s *EconomySystem) Leak() (depleted bool) {
	s.ledger().Health--
	return s.ledger().Health <= 0
}

func (s *EconomySystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled:
		if data, ok := e.Data.(event.EnemyKilledData); ok {
			s.Award(data.Bounty)
		}
	case event.WaveEnded:
		if data, ok := e.Data.(event.WaveData); ok {
			s.Award(data.Bonus)
		}
	}
}
