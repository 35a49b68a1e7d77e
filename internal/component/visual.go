// internal/component/visual.go
package component

import "image/color"

// DamageFlash marks an enemy to be drawn in the hit colour for a few ticks.
type DamageFlash struct {
	RemainingTicks int
}

// Burst is an expanding ring left where an enemy died.
type Burst struct {
	X, Y          float64
	MaxRadius     float64
	AgeTicks      int
	DurationTicks int
	Color         color.RGBA
}

// Progress is how far the burst is through its life, in [0, 1].
func (b *Burst) Progress() float64 {
	if b.DurationTicks <= 0 {
		return 1
	}
	p := float64(b.AgeTicks) / float64(b.DurationTicks)
	if p > 1 {
		return 1
	}
	return p
}
