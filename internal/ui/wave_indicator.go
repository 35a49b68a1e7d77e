// internal/ui/wave_indicator.go
package ui

import (
	"fmt"
	"image/color"
	"strings"

	"go-path-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
)

// WaveIndicator shows the wave number in Roman numerals and the spawns still queued.
type WaveIndicator struct {
	X, Y         int
	Color        color.Color
	OutlineColor color.Color
}

func NewWaveIndicator(x, y int) *WaveIndicator {
	return &WaveIndicator{
		X:            x,
		Y:            y,
		Color:        config.TextLightColor,
		OutlineColor: color.Black,
	}
}

// toRoman converts a positive integer; zero and negatives give "".
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// WaveLabel is the indicator text for a wave and its pending spawns.
func WaveLabel(wave, pending int) string {
	if wave <= 0 {
		return "Wave -"
	}
	if pending > 0 {
		return fmt.Sprintf("Wave %s (%d to come)", toRoman(wave), pending)
	}
	return "Wave " + toRoman(wave)
}

func (i *WaveIndicator) Draw(screen *ebiten.Image, wave, pending int) {
	label := WaveLabel(wave, pending)
	textColor := i.Color
	if wave > 0 && wave%10 == 0 {
		textColor = config.GameOverColor
	}
	for _, d := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		DrawCentered(screen, label, i.X+d[0], i.Y+d[1], i.OutlineColor)
	}
	DrawCentered(screen, label, i.X, i.Y, textColor)
}
