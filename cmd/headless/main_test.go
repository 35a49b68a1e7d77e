package main

import (
	"io"
	"log"
	"strings"
	"testing"

	"go-path-defense/internal/app"
	"go-path-defense/internal/config"
)

func TestParseLayout(t *testing.T) {
	plan, err := parseLayout(" fire@100,200 ; ICE@ 150.5 , 80 ;")
	if err != nil {
		t.Fatal(err)
	}
	if len(plan) != 2 {
		t.Fatalf("expected 2 placements, got %d", len(plan))
	}
	if plan[0].defID != "FIRE" || plan[0].pos.X != 100 || plan[0].pos.Y != 200 {
		t.Fatalf("first placement %+v", plan[0])
	}
	if plan[1].defID != "ICE" || plan[1].pos.X != 150.5 || plan[1].pos.Y != 80 {
		t.Fatalf("second placement %+v", plan[1])
	}
}

func TestParseLayoutRejectsMalformedItems(t *testing.T) {
	for _, s := range []string{"FIRE", "FIRE@100", "FIRE@x,1", "FIRE@1,y"} {
		if _, err := parseLayout(s); err == nil {
			t.Errorf("parseLayout(%q) accepted", s)
		}
	}
}

func TestRunDefaultLayout(t *testing.T) {
	g, err := app.NewGame(config.Default())
	if err != nil {
		t.Fatal(err)
	}
	g.Logger = log.New(io.Discard, "", 0)
	plan, err := parseLayout(defaultLayout)
	if err != nil {
		t.Fatal(err)
	}

	stats := run(g, plan, 2, 60*60*5)
	if stats.waves < 1 || stats.ticks == 0 {
		t.Fatalf("nothing was played: %+v", stats)
	}
	if stats.towers == 0 {
		t.Fatal("no tower was built")
	}
	if stats.gold < 0 || stats.health < 0 {
		t.Fatalf("ledger out of range: %+v", stats)
	}
	if !stats.gameOver && stats.wavesCleared != stats.waves {
		t.Fatalf("survived but cleared %d of %d waves", stats.wavesCleared, stats.waves)
	}

	report := formatReport(stats)
	for _, want := range []string{"session=s_", "waves reached=", "kills="} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
}
