// internal/ui/player_health_indicator.go
package ui

import (
	"fmt"
	"image/color"

	"go-path-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	HealthCols          = 10
	HealthCircleRadius  = 5.0
	HealthCircleSpacing = 2.0
)

// PlayerHealthIndicator shows health as a grid of circles and gold as text next to it.
type PlayerHealthIndicator struct {
	X, Y float32
}

func NewPlayerHealthIndicator(x, y float32) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y}
}

// cellColor picks the colour of the j-th circle: past the health it is empty,
// and the whole grid turns red once health is at half or less.
func cellColor(j, health, maxHealth int) color.RGBA {
	switch {
	case j >= health:
		return config.HealthEmptyColor
	case health <= maxHealth/2:
		return config.HealthLowColor
	default:
		return config.HealthFullColor
	}
}

func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, health, maxHealth, gold int) {
	step := float32(HealthCircleRadius*2 + HealthCircleSpacing)
	for j := 0; j < maxHealth; j++ {
		x := i.X + float32(j%HealthCols)*step + HealthCircleRadius
		y := i.Y + float32(j/HealthCols)*step + HealthCircleRadius
		vector.DrawFilledCircle(screen, x, y, HealthCircleRadius, cellColor(j, health, maxHealth), true)
	}
	textX := int(i.X + float32(HealthCols)*step + 10)
	DrawText(screen, fmt.Sprintf("Health %d/%d", health, maxHealth), textX, int(i.Y)+10, config.TextLightColor)
	DrawText(screen, fmt.Sprintf("Gold %d", gold), textX+110, int(i.Y)+10, config.TextLightColor)
}
