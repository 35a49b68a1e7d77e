// pkg/geom/point.go
package geom

import "math"

// Point is an immutable pixel coordinate on the playing field.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// StepToward moves from `from` toward `to` by at most `step` units.
// When the remaining distance is strictly less than step the result snaps onto `to`
// and arrived is true; leftover distance is dropped.
func StepToward(from, to Point, step float64) (next Point, arrived bool) {
	dx := to.X - from.X
	dy := to.Y - from.Y
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist < step {
		return to, true
	}
	return Point{
		X: from.X + (dx/dist)*step,
		Y: from.Y + (dy/dist)*step,
	}, false
}
