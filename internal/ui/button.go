// internal/ui/button.go
package ui

import (
	"image/color"
	"time"

	"go-path-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Button is a clickable rectangle with a label.
type Button struct {
	X, Y, Width, Height float32
	Label               string
	Enabled             bool
	Selected            bool
	LastClickTime       time.Time
}

func NewButton(x, y, width, height float32, label string) *Button {
	return &Button{X: x, Y: y, Width: width, Height: height, Label: label, Enabled: true}
}

// Contains reports whether the screen point is inside the button.
func (b *Button) Contains(x, y int) bool {
	fx, fy := float32(x), float32(y)
	return fx >= b.X && fx <= b.X+b.Width && fy >= b.Y && fy <= b.Y+b.Height
}

// Click reports whether a click at (x, y) activates the button and records it.
// Clicks closer together than the cooldown are ignored.
func (b *Button) Click(x, y int, now time.Time) bool {
	if !b.Enabled || !b.Contains(x, y) {
		return false
	}
	if now.Sub(b.LastClickTime) < time.Duration(config.ClickCooldown)*time.Millisecond {
		return false
	}
	b.LastClickTime = now
	return true
}

func (b *Button) Draw(screen *ebiten.Image, cursorX, cursorY int) {
	var bg color.Color = config.ButtonColor
	switch {
	case !b.Enabled:
		bg = config.ButtonDisabled
	case b.Contains(cursorX, cursorY):
		bg = config.ButtonHover
	}
	vector.DrawFilledRect(screen, b.X, b.Y, b.Width, b.Height, bg, true)

	border := config.BorderColor
	width := float32(1)
	if b.Selected {
		border = color.RGBA{255, 255, 255, 255}
		width = 3
	}
	vector.StrokeRect(screen, b.X, b.Y, b.Width, b.Height, width, border, true)
	DrawCentered(screen, b.Label, int(b.X+b.Width/2), int(b.Y+b.Height/2), config.TextLightColor)
}
