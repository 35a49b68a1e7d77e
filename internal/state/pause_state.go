// internal/state/pause_state.go
package state

import (
	"image/color"

	"go-path-defense/internal/config"
	"go-path-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var _ State = (*PauseState)(nil)

// PauseState freezes the session. The world is drawn but not ticked.
type PauseState struct {
	sm       *StateMachine
	previous *GameState
}

func NewPauseState(sm *StateMachine, previous *GameState) *PauseState {
	return &PauseState{sm: sm, previous: previous}
}

func (s *PauseState) Enter() {
	s.previous.pauseButton.SetPaused(true)
}

func (s *PauseState) Update() error {
	resume := inpututil.IsKeyJustPressed(ebiten.KeyP) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyF9)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		resume = resume || s.previous.pauseButton.IsClicked(x, y)
	}
	if resume {
		s.previous.pauseButton.TogglePause()
		s.sm.SetState(s.previous)
	}
	return nil
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previous.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 128}, false)
	ui.DrawCentered(screen, "PAUSED", config.ScreenWidth/2, config.ScreenHeight/2, color.White)
}

func (s *PauseState) Exit() {}
