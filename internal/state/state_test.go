package state

import (
	"errors"
	"fmt"
	"testing"

	"go-path-defense/internal/app"
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/system"
	"go-path-defense/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
)

type recordingState struct {
	name string
	log  *[]string
}

func (s recordingState) Enter()                   { *s.log = append(*s.log, "enter "+s.name) }
func (s recordingState) Exit()                    { *s.log = append(*s.log, "exit "+s.name) }
func (s recordingState) Update() error            { *s.log = append(*s.log, "update "+s.name); return nil }
func (s recordingState) Draw(screen *ebiten.Image) {}

func TestStateMachineTransitions(t *testing.T) {
	var log []string
	sm := NewStateMachine()
	if err := sm.Update(); err != nil {
		t.Fatalf("empty machine: %v", err)
	}

	sm.SetState(recordingState{"a", &log})
	_ = sm.Update()
	sm.SetState(recordingState{"b", &log})
	sm.SetState(nil)
	_ = sm.Update()

	want := []string{"enter a", "update a", "exit a", "enter b", "exit b"}
	if fmt.Sprint(log) != fmt.Sprint(want) {
		t.Fatalf("log %v, want %v", log, want)
	}
	if sm.Current() != nil {
		t.Fatal("current state should be nil")
	}
}

func TestPlacementMessage(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{fmt.Errorf("%w: need 100", system.ErrInsufficientGold), "Not enough gold"},
		{fmt.Errorf("%w: too close", app.ErrInvalidPlacement), "Can't build there"},
		{app.ErrUnknownTower, "Unknown tower"},
		{app.ErrGameOver, "Game over"},
		{errors.New("boom"), "boom"},
	}
	for _, c := range cases {
		if got := placementMessage(c.err); got != c.want {
			t.Errorf("placementMessage(%v) = %q, want %q", c.err, got, c.want)
		}
	}
}

func TestNewGameStateBuildsToolbar(t *testing.T) {
	gs, err := NewGameState(NewStateMachine(), config.Default())
	if err != nil {
		t.Fatal(err)
	}
	if len(gs.towerButtons) != 2 || gs.towerIDs[0] != defs.TowerFire || gs.towerIDs[1] != defs.TowerIce {
		t.Fatalf("toolbar %v", gs.towerIDs)
	}
	gs.game.Logger = nil

	gs.selectTower(defs.TowerIce)
	gs.refreshButtons()
	if !gs.towerButtons[1].Selected || gs.towerButtons[0].Selected {
		t.Fatal("selected button not highlighted")
	}
	gs.selectTower(defs.TowerIce)
	if gs.selectedDef != "" {
		t.Fatal("selecting the same tower twice should clear the selection")
	}

	gs.selectTower(defs.TowerFire)
	gs.handleGameClick(100, 200)
	if gs.game.ECS.TowerCount() != 1 || gs.game.Gold() != 150 {
		t.Fatalf("click did not place a tower: towers=%d gold=%d", gs.game.ECS.TowerCount(), gs.game.Gold())
	}
	gs.handleGameClick(100, 300)
	if gs.message != "Can't build there" {
		t.Fatalf("message %q", gs.message)
	}

	gs.selectedDef = ""
	gs.handleGameClick(100, 200)
	if !gs.infoPanel.IsVisible {
		t.Fatal("clicking a tower should open the info panel")
	}

	gs.startWave()
	gs.refreshButtons()
	if gs.startButton.Enabled {
		t.Fatal("start button enabled during a wave")
	}
	if id, ok := gs.findEntityAt(geom.Point{X: 400, Y: 400}); ok {
		t.Fatalf("found entity %d on empty ground", id)
	}
}
