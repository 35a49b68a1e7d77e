// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"go-path-defense/internal/component"
	"go-path-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// StateIndicator is a circle coloured by the current phase.
type StateIndicator struct {
	X, Y          float32
	Radius        float32
	LastClickTime time.Time
}

func NewStateIndicator(x, y, radius float32) *StateIndicator {
	return &StateIndicator{X: x, Y: y, Radius: radius}
}

// PhaseColor maps a phase to its indicator colour.
func PhaseColor(phase component.Phase) color.RGBA {
	switch phase {
	case component.WavePhase:
		return config.WavePhaseColor
	case component.GameOverPhase:
		return config.GameOverColor
	default:
		return config.BuildPhaseColor
	}
}

func (i *StateIndicator) Draw(screen *ebiten.Image, phase component.Phase) {
	elapsed := time.Since(i.LastClickTime).Seconds()
	radius := i.Radius * float32(1.0+0.3*math.Exp(-elapsed*8))
	vector.DrawFilledCircle(screen, i.X, i.Y, radius, PhaseColor(phase), true)
	vector.StrokeCircle(screen, i.X, i.Y, radius, 1, color.White, true)
}

// IsClicked reports whether (x, y) falls inside the circle.
func (i *StateIndicator) IsClicked(x, y int) bool {
	dx, dy := float32(x)-i.X, float32(y)-i.Y
	return dx*dx+dy*dy <= i.Radius*i.Radius
}

func (i *StateIndicator) HandleClick() {
	i.LastClickTime = time.Now()
}
