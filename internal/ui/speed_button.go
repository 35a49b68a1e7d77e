// internal/ui/speed_button.go
package ui

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SpeedButton cycles the simulation speed through its multipliers.
type SpeedButton struct {
	X, Y           float32
	Size           float32
	LastClickTime  time.Time
	LastToggleTime time.Time
	StateColors    []color.Color
	Multipliers    []int
	CurrentState   int
}

func NewSpeedButton(x, y, size float32, stateColors []color.Color, multipliers []int) *SpeedButton {
	return &SpeedButton{
		X:           x,
		Y:           y,
		Size:        size,
		StateColors: stateColors,
		Multipliers: multipliers,
	}
}

// Multiplier is the number of ticks to run per frame.
func (b *SpeedButton) Multiplier() int {
	if len(b.Multipliers) == 0 {
		return 1
	}
	return b.Multipliers[b.CurrentState]
}

func (b *SpeedButton) ToggleState() {
	if len(b.Multipliers) == 0 {
		return
	}
	b.CurrentState = (b.CurrentState + 1) % len(b.Multipliers)
	b.LastClickTime = time.Now()
	b.LastToggleTime = b.LastClickTime
}

// IsClicked uses a circle for hit testing because the shape is two triangles.
func (b *SpeedButton) IsClicked(x, y int) bool {
	dx, dy := float32(x)-b.X, float32(y)-b.Y
	r := b.Size * 1.5
	return dx*dx+dy*dy <= r*r
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	size := b.Size * float32(scale)

	var fill color.Color = color.White
	if len(b.StateColors) > 0 {
		fill = b.StateColors[b.CurrentState%len(b.StateColors)]
	}
	height := size * 1.2
	offset := size * 0.8
	drawTriangle(screen, b.X-size, b.Y-height/2, b.X, b.Y, b.X-size, b.Y+height/2, fill)
	drawTriangle(screen, b.X-size+offset, b.Y-height/2, b.X+offset, b.Y, b.X-size+offset, b.Y+height/2, fill)
	DrawText(screen, fmt.Sprintf("x%d", b.Multiplier()), int(b.X+size+4), int(b.Y+5), color.White)
}

func drawTriangle(screen *ebiten.Image, x1, y1, x2, y2, x3, y3 float32, clr color.Color) {
	var path vector.Path
	path.MoveTo(x1, y1)
	path.LineTo(x2, y2)
	path.LineTo(x3, y3)
	path.Close()

	vertices, indices := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := clr.RGBA()
	for i := range vertices {
		vertices[i].SrcX, vertices[i].SrcY = 1, 1
		vertices[i].ColorR = float32(r) / 0xffff
		vertices[i].ColorG = float32(g) / 0xffff
		vertices[i].ColorB = float32(b) / 0xffff
		vertices[i].ColorA = float32(a) / 0xffff
	}
	screen.DrawTriangles(vertices, indices, whiteSubImage(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}
