package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"go-path-defense/internal/app"
	"go-path-defense/internal/config"
	"go-path-defense/internal/event"
	"go-path-defense/pkg/geom"
)

const defaultLayout = "FIRE@250,200;ICE@150,200;FIRE@550,200;ICE@650,400;FIRE@400,150;FIRE@550,450"

type placement struct {
	defID string
	pos   geom.Point
}

type runStats struct {
	waves        int
	wavesCleared int
	ticks        uint64
	kills        int
	leaks        int
	fired        int
	lost         int
	towers       int
	gold         int
	health       int
	gameOver     bool
	session      string
}

func main() {
	var configPath string
	var waves int
	var maxTicks int
	var layout string
	var dumpJSON bool
	var verbose bool

	flag.StringVar(&configPath, "config", "", "path to a JSON settings file")
	flag.IntVar(&waves, "waves", 5, "number of waves to play")
	flag.IntVar(&maxTicks, "max-ticks", 60*60*10, "stop after this many ticks")
	flag.StringVar(&layout, "layout", defaultLayout, "towers to build, as DEF@x,y separated by ';'")
	flag.BoolVar(&dumpJSON, "json", false, "print the final snapshot as JSON")
	flag.BoolVar(&verbose, "v", false, "log session events")
	flag.Parse()

	if waves <= 0 || maxTicks <= 0 {
		fmt.Println("error: -waves and -max-ticks must be > 0")
		os.Exit(2)
	}
	plan, err := parseLayout(layout)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(2)
	}

	settings := config.Default()
	if configPath != "" {
		if settings, err = config.Load(configPath); err != nil {
			log.Fatalf("failed to load settings: %v", err)
		}
	}
	g, err := app.NewGame(settings)
	if err != nil {
		log.Fatal(err)
	}
	if !verbose {
		g.Logger = log.New(io.Discard, "", 0)
	}

	stats := run(g, plan, waves, maxTicks)

	fmt.Printf("=== Headless Defense Report ===\n")
	fmt.Printf("layout=%q waves=%d max_ticks=%d\n\n", layout, waves, maxTicks)
	fmt.Print(formatReport(stats))

	if dumpJSON {
		data, err := g.SnapshotJSON()
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(string(data))
	}
}

// run builds what the plan allows, then plays waves until the limit, game over, or the tick budget.
// Unaffordable towers are retried between waves.
func run(g *app.Game, plan []placement, waves, maxTicks int) runStats {
	var stats runStats
	g.EventDispatcher.SubscribeFunc(event.EnemyKilled, func(event.Event) { stats.kills++ })
	g.EventDispatcher.SubscribeFunc(event.EnemyLeaked, func(event.Event) { stats.leaks++ })
	g.EventDispatcher.SubscribeFunc(event.ProjectileFired, func(event.Event) { stats.fired++ })
	g.EventDispatcher.SubscribeFunc(event.ProjectileLost, func(event.Event) { stats.lost++ })
	g.EventDispatcher.SubscribeFunc(event.WaveEnded, func(event.Event) { stats.wavesCleared++ })

	pending := plan
	for ticks := 0; ticks < maxTicks; ticks++ {
		if !g.WaveSystem.InProgress() {
			pending = build(g, pending)
			if g.Wave() >= waves {
				break
			}
			if err := g.StartWave(); err != nil {
				break
			}
		}
		if g.Tick() == app.GameOver {
			break
		}
	}

	stats.waves = g.Wave()
	stats.ticks = g.ECS.Tick
	stats.towers = g.ECS.TowerCount()
	stats.gold = g.Gold()
	stats.health = g.Health()
	stats.gameOver = g.IsGameOver()
	stats.session = g.SessionID()
	return stats
}

// build places every affordable tower of the plan and returns the rest.
// Placements rejected for any other reason are dropped.
func build(g *app.Game, plan []placement) []placement {
	var rest []placement
	for _, p := range plan {
		def, ok := g.Towers[p.defID]
		if ok && !g.EconomySystem.CanAfford(def.Cost) {
			rest = append(rest, p)
			continue
		}
		if _, err := g.PlaceTower(p.pos, p.defID); err != nil {
			fmt.Printf("skip %s at (%.0f,%.0f): %v\n", p.defID, p.pos.X, p.pos.Y, err)
		}
	}
	return rest
}

func parseLayout(s string) ([]placement, error) {
	var plan []placement
	for _, item := range strings.Split(s, ";") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		defID, coords, ok := strings.Cut(item, "@")
		if !ok {
			return nil, fmt.Errorf("layout item %q: want DEF@x,y", item)
		}
		xs, ys, ok := strings.Cut(coords, ",")
		if !ok {
			return nil, fmt.Errorf("layout item %q: want DEF@x,y", item)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
		if err != nil {
			return nil, fmt.Errorf("layout item %q: bad x: %w", item, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
		if err != nil {
			return nil, fmt.Errorf("layout item %q: bad y: %w", item, err)
		}
		plan = append(plan, placement{defID: strings.ToUpper(strings.TrimSpace(defID)), pos: geom.Point{X: x, Y: y}})
	}
	return plan, nil
}

func formatReport(s runStats) string {
	var b strings.Builder
	outcome := "survived"
	if s.gameOver {
		outcome = "game over"
	}
	fmt.Fprintf(&b, "session=%s outcome=%s\n", s.session, outcome)
	fmt.Fprintf(&b, "waves reached=%d cleared=%d ticks=%d\n", s.waves, s.wavesCleared, s.ticks)
	fmt.Fprintf(&b, "towers=%d shots=%d lost=%d\n", s.towers, s.fired, s.lost)
	fmt.Fprintf(&b, "kills=%d leaks=%d\n", s.kills, s.leaks)
	fmt.Fprintf(&b, "gold=%d health=%d\n", s.gold, s.health)
	return b.String()
}
