package ui

import (
	"strings"
	"testing"
	"time"

	"go-path-defense/internal/component"
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/entity"
	"go-path-defense/pkg/geom"
)

func TestToRoman(t *testing.T) {
	cases := map[int]string{0: "", -3: "", 1: "I", 4: "IV", 9: "IX", 14: "XIV", 40: "XL", 1994: "MCMXCIV"}
	for n, want := range cases {
		if got := toRoman(n); got != want {
			t.Errorf("toRoman(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestWaveLabel(t *testing.T) {
	if got := WaveLabel(0, 0); got != "Wave -" {
		t.Errorf("no wave: %q", got)
	}
	if got := WaveLabel(3, 5); got != "Wave III (5 to come)" {
		t.Errorf("running wave: %q", got)
	}
	if got := WaveLabel(3, 0); got != "Wave III" {
		t.Errorf("fully spawned wave: %q", got)
	}
}

func TestButtonClick(t *testing.T) {
	b := NewButton(10, 10, 100, 30, "Start")
	now := time.Now()

	if b.Click(5, 5, now) {
		t.Fatal("click outside the button accepted")
	}
	if !b.Click(50, 20, now) {
		t.Fatal("click inside the button rejected")
	}
	if b.Click(50, 20, now.Add(10*time.Millisecond)) {
		t.Fatal("second click within the cooldown accepted")
	}
	if !b.Click(50, 20, now.Add(time.Second)) {
		t.Fatal("click after the cooldown rejected")
	}
	b.Enabled = false
	if b.Click(50, 20, now.Add(2*time.Second)) {
		t.Fatal("disabled button accepted a click")
	}
}

func TestSpeedButtonCycles(t *testing.T) {
	b := NewSpeedButton(0, 0, 10, config.SpeedButtonColors, config.SpeedMultipliers)
	var got []int
	for i := 0; i < 4; i++ {
		got = append(got, b.Multiplier())
		b.ToggleState()
	}
	want := []int{1, 2, 4, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("multipliers %v, want %v", got, want)
		}
	}
	if (&SpeedButton{}).Multiplier() != 1 {
		t.Fatal("empty speed button should run at x1")
	}
}

func TestHealthCellColors(t *testing.T) {
	if cellColor(0, 20, 20) != config.HealthFullColor {
		t.Error("full health should use the full colour")
	}
	if cellColor(0, 10, 20) != config.HealthLowColor {
		t.Error("half health should use the low colour")
	}
	if cellColor(15, 10, 20) != config.HealthEmptyColor {
		t.Error("lost health should be empty")
	}
}

func TestPhaseColor(t *testing.T) {
	if PhaseColor(component.BuildPhase) != config.BuildPhaseColor ||
		PhaseColor(component.WavePhase) != config.WavePhaseColor ||
		PhaseColor(component.GameOverPhase) != config.GameOverColor {
		t.Fatal("unexpected phase colours")
	}
}

func TestEntityInfo(t *testing.T) {
	ecs := entity.NewECS(geom.Path{{X: 0, Y: 0}, {X: 100, Y: 0}}, component.Ledger{Gold: 100, Health: 20})
	towers := defs.DefaultTowers()

	tower := ecs.NewEntity()
	ecs.Positions[tower] = &component.Position{X: 50, Y: 50}
	ecs.AddTower(tower, &component.Tower{DefID: defs.TowerIce})
	ice := towers[defs.TowerIce]
	ecs.Combats[tower] = &component.Combat{Range: ice.Range, Damage: ice.Damage, FireIntervalTicks: ice.FireIntervalTicks, SlowFactor: ice.SlowFactor, SlowDurationTicks: ice.SlowDurationTicks}

	lines := EntityInfo(ecs, towers, tower)
	if !strings.HasPrefix(lines[0], ice.Name) {
		t.Fatalf("title %q", lines[0])
	}
	if !strings.Contains(strings.Join(lines, "\n"), "Slow x0.5 for 120 ticks") {
		t.Fatalf("missing slow line in %v", lines)
	}

	if got := EntityInfo(ecs, towers, 999); got[0] != "Nothing selected" {
		t.Fatalf("unknown entity: %v", got)
	}
}
