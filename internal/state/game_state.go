// internal/state/game_state.go
package state

import (
	"errors"
	"fmt"
	"time"

	"go-path-defense/internal/app"
	"go-path-defense/internal/config"
	"go-path-defense/internal/system"
	"go-path-defense/internal/types"
	"go-path-defense/internal/ui"
	"go-path-defense/pkg/geom"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const messageDuration = 2 * time.Second

var towerKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5, ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9}

// GameState is the running session: it feeds input to the game and ticks it
// once per frame times the speed multiplier.
type GameState struct {
	sm       *StateMachine
	settings config.Settings
	game     *app.Game
	renderer *system.RenderSystem

	indicator       *ui.StateIndicator
	healthIndicator *ui.PlayerHealthIndicator
	waveIndicator   *ui.WaveIndicator
	infoPanel       *ui.InfoPanel
	speedButton     *ui.SpeedButton
	pauseButton     *ui.PauseButton
	startButton     *ui.Button
	towerButtons    []*ui.Button
	towerIDs        []string

	selectedDef  string
	showDebug    bool
	message      string
	messageUntil time.Time
}

func NewGameState(sm *StateMachine, settings config.Settings) (*GameState, error) {
	g, err := app.NewGame(settings)
	if err != nil {
		return nil, err
	}

	gs := &GameState{
		sm:              sm,
		settings:        settings,
		game:            g,
		renderer:        system.NewRenderSystem(g.ECS, g.Towers),
		indicator:       ui.NewStateIndicator(config.ScreenWidth-20, config.HUDHeight/2, 10),
		healthIndicator: ui.NewPlayerHealthIndicator(8, 4),
		waveIndicator:   ui.NewWaveIndicator(config.ScreenWidth/2+120, config.HUDHeight/2),
		infoPanel:       ui.NewInfoPanel(),
		speedButton:     ui.NewSpeedButton(config.ScreenWidth-100, config.ToolbarY+config.ButtonHeight/2, 10, config.SpeedButtonColors, config.SpeedMultipliers),
		pauseButton:     ui.NewPauseButton(config.ScreenWidth-30, config.ToolbarY+config.ButtonHeight/2, 10, config.PauseColor, config.PlayColor),
		startButton:     ui.NewButton(config.ScreenWidth-260, config.ToolbarY, 120, config.ButtonHeight, "Start wave"),
		towerIDs:        g.Towers.IDs(),
	}
	for i, id := range gs.towerIDs {
		def := g.Towers[id]
		label := fmt.Sprintf("%d %s $%d", i+1, def.Name, def.Cost)
		gs.towerButtons = append(gs.towerButtons, ui.NewButton(float32(10+i*130), config.ToolbarY, 120, config.ButtonHeight, label))
	}
	return gs, nil
}

func (g *GameState) Enter() {}

func (g *GameState) Update() error {
	g.infoPanel.Update(g.game.ECS)
	g.refreshButtons()

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.selectedDef = ""
		g.infoPanel.Hide()
	}
	for i, key := range towerKeys {
		if i < len(g.towerIDs) && inpututil.IsKeyJustPressed(key) {
			g.selectTower(g.towerIDs[i])
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyW) {
		g.startWave()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		g.copySnapshot()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.showDebug = !g.showDebug
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if g.handleUIClick(x, y) {
			if _, paused := g.sm.Current().(*PauseState); paused {
				return nil
			}
		} else {
			g.handleGameClick(x, y)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.selectedDef = ""
	}

	for i := 0; i < g.speedButton.Multiplier(); i++ {
		if g.game.Tick() == app.GameOver {
			g.sm.SetState(NewGameOverState(g.sm, g))
			return nil
		}
	}
	return nil
}

func (g *GameState) refreshButtons() {
	g.startButton.Enabled = !g.game.WaveSystem.InProgress()
	for i, b := range g.towerButtons {
		b.Enabled = g.game.EconomySystem.CanAfford(g.game.Towers[g.towerIDs[i]].Cost)
		b.Selected = g.towerIDs[i] == g.selectedDef
	}
}

func (g *GameState) selectTower(defID string) {
	if g.selectedDef == defID {
		g.selectedDef = ""
		return
	}
	g.selectedDef = defID
}

func (g *GameState) startWave() {
	if err := g.game.StartWave(); err != nil {
		g.flash(err.Error())
	}
}

// handleUIClick reports whether the click landed on a widget.
func (g *GameState) handleUIClick(x, y int) bool {
	now := time.Now()
	switch {
	case g.speedButton.IsClicked(x, y):
		if now.Sub(g.speedButton.LastToggleTime) >= time.Duration(config.ClickCooldown)*time.Millisecond {
			g.speedButton.ToggleState()
		}
		return true
	case g.pauseButton.IsClicked(x, y):
		g.pauseButton.TogglePause()
		g.sm.SetState(NewPauseState(g.sm, g))
		return true
	case g.indicator.IsClicked(x, y):
		g.indicator.HandleClick()
		return true
	case g.startButton.Contains(x, y):
		if g.startButton.Click(x, y, now) {
			g.startWave()
		}
		return true
	case g.infoPanel.Contains(x, y):
		return true
	}
	for i, b := range g.towerButtons {
		if b.Contains(x, y) {
			if b.Click(x, y, now) {
				g.selectTower(g.towerIDs[i])
			}
			return true
		}
	}
	return y < config.HUDHeight
}

func (g *GameState) handleGameClick(x, y int) {
	pos := geom.Point{X: float64(x), Y: float64(y)}
	if g.selectedDef == "" {
		if id, found := g.findEntityAt(pos); found {
			g.infoPanel.SetTarget(id)
		} else {
			g.infoPanel.Hide()
		}
		return
	}
	if _, err := g.game.PlaceTower(pos, g.selectedDef); err != nil {
		g.flash(placementMessage(err))
		return
	}
	if !g.game.EconomySystem.CanAfford(g.game.Towers[g.selectedDef].Cost) {
		g.selectedDef = ""
	}
}

// placementMessage turns a placement error into a short player-facing line.
func placementMessage(err error) string {
	switch {
	case errors.Is(err, system.ErrInsufficientGold):
		return "Not enough gold"
	case errors.Is(err, app.ErrInvalidPlacement):
		return "Can't build there"
	case errors.Is(err, app.ErrUnknownTower):
		return "Unknown tower"
	case errors.Is(err, app.ErrGameOver):
		return "Game over"
	}
	return err.Error()
}

func (g *GameState) findEntityAt(pos geom.Point) (types.EntityID, bool) {
	ecs := g.game.ECS
	for _, id := range ecs.TowerIDs() {
		if p, ok := ecs.Positions[id]; ok && geom.Distance(pos, geom.Point{X: p.X, Y: p.Y}) <= config.TowerRadius {
			return id, true
		}
	}
	for _, id := range ecs.EnemyIDs() {
		if p, ok := ecs.Positions[id]; ok && geom.Distance(pos, geom.Point{X: p.X, Y: p.Y}) <= config.EnemyRadius+2 {
			return id, true
		}
	}
	return 0, false
}

// copySnapshot puts the JSON state of the session on the clipboard.
func (g *GameState) copySnapshot() {
	data, err := g.game.SnapshotJSON()
	if err == nil {
		err = clipboard.WriteAll(string(data))
	}
	if err != nil {
		if g.game.Logger != nil {
			g.game.Logger.Printf("copy snapshot: %v", err)
		}
		g.flash("Copy failed")
		return
	}
	g.flash("State copied to clipboard")
}

func (g *GameState) flash(msg string) {
	g.message = msg
	g.messageUntil = time.Now().Add(messageDuration)
}

func (g *GameState) Draw(screen *ebiten.Image) {
	cx, cy := ebiten.CursorPosition()
	cursor := geom.Point{X: float64(cx), Y: float64(cy)}

	var preview *system.PlacementPreview
	if g.selectedDef != "" && cy > config.HUDHeight && cy < config.ToolbarY {
		preview = &system.PlacementPreview{
			Pos:   cursor,
			DefID: g.selectedDef,
			Valid: g.game.CanPlace(cursor, g.selectedDef) == nil,
		}
	}
	g.renderer.Draw(screen, cursor, preview)

	snap := g.game.Snapshot()
	g.healthIndicator.Draw(screen, snap.Health, g.settings.InitialHealth, snap.Gold)
	g.waveIndicator.Draw(screen, snap.Wave, snap.PendingSpawns)
	g.indicator.Draw(screen, g.game.Phase())
	for _, b := range g.towerButtons {
		b.Draw(screen, cx, cy)
	}
	g.startButton.Draw(screen, cx, cy)
	g.speedButton.Draw(screen)
	g.pauseButton.Draw(screen)
	g.infoPanel.Draw(screen, g.game.ECS, g.game.Towers)

	if g.message != "" && time.Now().Before(g.messageUntil) {
		ui.DrawCentered(screen, g.message, config.ScreenWidth/2, config.ToolbarY-15, config.GameOverColor)
	}
	if g.showDebug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("session %s  tick %d  TPS %.0f  enemies %d  projectiles %d",
			snap.Session, snap.Tick, ebiten.ActualTPS(), len(snap.Enemies), len(snap.Projectiles)), 8, config.HUDHeight+4)
	}
}

func (g *GameState) Exit() {}
