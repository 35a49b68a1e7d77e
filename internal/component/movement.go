// internal/component/movement.go
package component

// Position is the pixel position of an entity.
type Position struct {
	X, Y float64
}

// Velocity holds the base speed and the speed currently in effect (pixels per tick).
type Velocity struct {
	Base      float64
	Effective float64
}

// PathProgress holds the index of the next waypoint the enemy is heading to.
// Index 0 is the spawn waypoint and is consumed at spawn time.
type PathProgress struct {
	Index int
}
