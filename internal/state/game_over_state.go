// internal/state/game_over_state.go
package state

import (
	"fmt"
	"image/color"

	"go-path-defense/internal/config"
	"go-path-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GameOverState shows the final field. R starts a new session, Escape goes back to the menu.
type GameOverState struct {
	sm       *StateMachine
	previous *GameState
}

func NewGameOverState(sm *StateMachine, previous *GameState) *GameOverState {
	return &GameOverState{sm: sm, previous: previous}
}

func (s *GameOverState) Enter() {
	g := s.previous.game
	if g.Logger != nil {
		g.Logger.Printf("final: wave %d, gold %d, tick %d", g.Wave(), g.Gold(), g.ECS.Tick)
	}
}

func (s *GameOverState) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		gs, err := NewGameState(s.sm, s.previous.settings)
		if err != nil {
			return err
		}
		s.sm.SetState(gs)
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		s.sm.SetState(NewMenuState(s.sm, s.previous.settings))
	case inpututil.IsKeyJustPressed(ebiten.KeyF2):
		s.previous.copySnapshot()
	}
	return nil
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.previous.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 150}, false)
	cx, cy := config.ScreenWidth/2, config.ScreenHeight/2
	ui.DrawCentered(screen, "GAME OVER", cx, cy-30, config.GameOverColor)
	ui.DrawCentered(screen, fmt.Sprintf("Reached wave %d", s.previous.game.Wave()), cx, cy, config.TextLightColor)
	ui.DrawCentered(screen, "R - play again   Esc - menu   F2 - copy state", cx, cy+30, config.TextLightColor)
}

func (s *GameOverState) Exit() {}
