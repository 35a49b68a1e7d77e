// pkg/geom/path.go
package geom

import (
	"errors"
	"fmt"
	"math"
)

// ErrPathTooShort is returned for paths with fewer than two waypoints.
var ErrPathTooShort = errors.New("path needs at least two waypoints")

// Path is an ordered waypoint sequence shared read-only by every enemy.
// The first waypoint is the spawn point, the last one is the leak point.
type Path []Point

// Validate checks the structural invariants of the path.
func (p Path) Validate() error {
	if len(p) < 2 {
		return fmt.Errorf("%w: got %d", ErrPathTooShort, len(p))
	}
	for i, wp := range p {
		if math.IsNaN(wp.X) || math.IsNaN(wp.Y) || math.IsInf(wp.X, 0) || math.IsInf(wp.Y, 0) {
			return fmt.Errorf("waypoint %d is not a finite coordinate", i)
		}
	}
	return nil
}

// Spawn returns the first waypoint.
func (p Path) Spawn() Point {
	return p[0]
}

// Leak returns the last waypoint.
func (p Path) Leak() Point {
	return p[len(p)-1]
}

// Length returns the total polyline length.
func (p Path) Length() float64 {
	total := 0.0
	for i := 1; i < len(p); i++ {
		total += Distance(p[i-1], p[i])
	}
	return total
}

// DistanceTo returns the shortest distance from pt to any segment of the path.
func (p Path) DistanceTo(pt Point) float64 {
	if len(p) == 0 {
		return math.Inf(1)
	}
	if len(p) == 1 {
		return Distance(p[0], pt)
	}
	best := math.Inf(1)
	for i := 1; i < len(p); i++ {
		if d := segmentDistance(p[i-1], p[i], pt); d < best {
			best = d
		}
	}
	return best
}

func segmentDistance(a, b, pt Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return Distance(a, pt)
	}
	t := ((pt.X-a.X)*dx + (pt.Y-a.Y)*dy) / lenSq
	t = math.Max(0, math.Min(1, t))
	return Distance(Point{X: a.X + t*dx, Y: a.Y + t*dy}, pt)
}
