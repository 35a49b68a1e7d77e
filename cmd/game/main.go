// cmd/game/main.go
package main

import (
	"errors"
	"flag"
	"log"

	"go-path-defense/internal/config"
	"go-path-defense/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine *state.StateMachine
}

func (a *AppGame) Update() error {
	return a.stateMachine.Update()
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	configPath := flag.String("config", "", "path to a JSON settings file")
	skipMenu := flag.Bool("play", false, "start a session right away instead of showing the menu")
	flag.Parse()

	settings := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("failed to load settings: %v", err)
		}
		settings = loaded
	}

	sm := state.NewStateMachine()
	if *skipMenu {
		gs, err := state.NewGameState(sm, settings)
		if err != nil {
			log.Fatal(err)
		}
		sm.SetState(gs)
	} else {
		sm.SetState(state.NewMenuState(sm, settings))
	}

	// one simulation tick per frame at x1 speed
	ebiten.SetTPS(config.TicksPerSec)
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Path Defense")
	if err := ebiten.RunGame(&AppGame{stateMachine: sm}); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
