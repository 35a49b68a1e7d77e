// internal/app/game.go
package app

import (
	"errors"
	"fmt"
	"log"

	"go-path-defense/internal/component"
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
	"go-path-defense/internal/system"
	"go-path-defense/internal/types"

	"github.com/google/uuid"
)

var ErrGameOver = errors.New("game is over")

// Outcome is what a tick reports to the driver.
type Outcome int

const (
	Running Outcome = iota
	GameOver
)

func (o Outcome) String() string {
	if o == GameOver {
		return "game over"
	}
	return "running"
}

// Game is one simulation session. It owns the world and every system and is driven by
// calling Tick once per fixed time step. It is not safe for concurrent use.
type Game struct {
	ECS              *entity.ECS
	Settings         config.Settings
	Towers           defs.Library
	EventDispatcher  *event.Dispatcher
	MovementSystem   *system.MovementSystem
	CombatSystem     *system.CombatSystem
	ProjectileSystem *system.ProjectileSystem
	WaveSystem       *system.WaveSystem
	EconomySystem    *system.EconomySystem
	StateSystem      *system.StateSystem
	VisualSystem     *system.VisualEffectSystem

	// Placement validates tower positions; nil accepts any position.
	Placement PlacementRule
	// Logger receives lifecycle messages. Defaults to the standard logger with a session prefix.
	Logger *log.Logger

	sessionID string
}

// NewGame validates the settings and builds a fresh session.
func NewGame(settings config.Settings) (*Game, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	ecs := entity.NewECS(settings.Path, component.Ledger{
		Gold:   settings.InitialGold,
		Health: settings.InitialHealth,
	})
	eventDispatcher := event.NewDispatcher()
	sessionID := "s_" + uuid.NewString()[:8]

	g := &Game{
		ECS:             ecs,
		Settings:        settings,
		Towers:          settings.Towers,
		EventDispatcher: eventDispatcher,
		Placement:       NewPathClearanceRule(settings),
		Logger:          log.New(log.Writer(), fmt.Sprintf("[%s] ", sessionID), log.Flags()),
		sessionID:       sessionID,
	}
	// Economy subscribes first so the ledger is settled before other listeners see an event.
	g.EconomySystem = system.NewEconomySystem(ecs, eventDispatcher)
	g.StateSystem = system.NewStateSystem(ecs, eventDispatcher)
	g.MovementSystem = system.NewMovementSystem(ecs, g)
	g.CombatSystem = system.NewCombatSystem(ecs, eventDispatcher)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, eventDispatcher)
	g.WaveSystem = system.NewWaveSystem(ecs, eventDispatcher, settings.Waves, system.EnemyTemplate{
		Radius: settings.EnemyRadius,
		Bounty: settings.KillBounty,
	})

	g.VisualSystem = system.NewVisualEffectSystem(ecs, eventDispatcher, config.BurstColor)

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.WaveStarted, listener)
	eventDispatcher.Subscribe(event.WaveEnded, listener)
	eventDispatcher.Subscribe(event.GameOver, listener)

	return g, nil
}

// Tick advances the simulation by one step:
// due spawns, enemy movement and leaks, towers, projectiles, wave completion,
// then effect ageing, which does not feed back into the simulation.
// After game over it does nothing and keeps returning GameOver.
func (g *Game) Tick() Outcome {
	if g.IsGameOver() {
		return GameOver
	}
	g.ECS.Tick++

	g.WaveSystem.SpawnDue()
	if halted := g.MovementSystem.Update(); halted {
		return GameOver
	}
	g.CombatSystem.Update()
	g.ProjectileSystem.Update()
	g.WaveSystem.CheckComplete()
	g.VisualSystem.Update()
	return Running
}

// StartWave starts the next wave.
func (g *Game) StartWave() error {
	if g.IsGameOver() {
		return ErrGameOver
	}
	_, err := g.WaveSystem.StartWave()
	return err
}

// OnEnemyLeaked implements interfaces.GameContext.
func (g *Game) OnEnemyLeaked(id types.EntityID) bool {
	g.ECS.RemoveEnemy(id)
	depleted := g.EconomySystem.Leak()
	g.EventDispatcher.Dispatch(event.Event{Type: event.EnemyLeaked, Data: event.EnemyLeakedData{EnemyID: id}})
	if !depleted {
		return false
	}
	if g.StateSystem.SwitchToGameOver() {
		g.EventDispatcher.Dispatch(event.Event{
			Type: event.GameOver,
			Data: event.GameOverData{Tick: g.ECS.Tick, Wave: g.WaveSystem.Number()},
		})
	}
	return true
}

func (g *Game) IsGameOver() bool {
	return g.StateSystem.Current() == component.GameOverPhase
}

func (g *Game) Phase() component.Phase {
	return g.StateSystem.Current()
}

func (g *Game) SessionID() string {
	return g.sessionID
}

func (g *Game) Gold() int   { return g.EconomySystem.Gold() }
func (g *Game) Health() int { return g.EconomySystem.Health() }
func (g *Game) Wave() int   { return g.WaveSystem.Number() }

// GameEventListener logs session milestones.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	logger := l.game.Logger
	if logger == nil {
		return
	}
	switch e.Type {
	case event.WaveStarted:
		if data, ok := e.Data.(event.WaveData); ok {
			logger.Printf("wave %d started: %d enemies", data.Number, data.Count)
		}
	case event.WaveEnded:
		if data, ok := e.Data.(event.WaveData); ok {
			logger.Printf("wave %d cleared: bonus %d, gold %d", data.Number, data.Bonus, l.game.Gold())
		}
	case event.GameOver:
		if data, ok := e.Data.(event.GameOverData); ok {
			logger.Printf("game over at tick %d during wave %d", data.Tick, data.Wave)
		}
	}
}
