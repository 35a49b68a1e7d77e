// internal/state/menu_state.go
package state

import (
	"go-path-defense/internal/config"
	"go-path-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MenuState is the title screen. Space starts a new session, Escape quits.
type MenuState struct {
	sm       *StateMachine
	settings config.Settings
	err      error
}

func NewMenuState(sm *StateMachine, settings config.Settings) *MenuState {
	return &MenuState{sm: sm, settings: settings}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		gs, err := NewGameState(m.sm, m.settings)
		if err != nil {
			m.err = err
			return nil
		}
		m.sm.SetState(gs)
	}
	return nil
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	cx := config.ScreenWidth / 2
	ui.DrawCentered(screen, "PATH DEFENSE", cx, config.ScreenHeight/2-40, config.TextLightColor)
	ui.DrawCentered(screen, "Press Space to start, Esc to quit", cx, config.ScreenHeight/2, config.TextLightColor)
	if m.err != nil {
		ui.DrawCentered(screen, m.err.Error(), cx, config.ScreenHeight/2+40, config.GameOverColor)
	}
}

func (m *MenuState) Exit() {}
