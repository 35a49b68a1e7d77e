// internal/ui/label.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Face is the font every widget uses.
var Face font.Face = basicfont.Face7x13

// TextWidth returns the rendered width of s in pixels.
func TextWidth(s string) int {
	return font.MeasureString(Face, s).Ceil()
}

// DrawText draws s with its baseline at y.
func DrawText(screen *ebiten.Image, s string, x, y int, clr color.Color) {
	text.Draw(screen, s, Face, x, y, clr)
}

// DrawCentered draws s centred on (cx, cy).
func DrawCentered(screen *ebiten.Image, s string, cx, cy int, clr color.Color) {
	m := Face.Metrics()
	height := (m.Ascent + m.Descent).Ceil()
	text.Draw(screen, s, Face, cx-TextWidth(s)/2, cy-height/2+m.Ascent.Ceil(), clr)
}

var whitePixel *ebiten.Image

// whiteSubImage is the 1x1 source for filled triangles. It is created on first use.
func whiteSubImage() *ebiten.Image {
	if whitePixel == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whitePixel = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whitePixel
}
