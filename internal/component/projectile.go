// internal/component/projectile.go
package component

import "go-path-defense/internal/types"

// Projectile is a homing shot locked onto one enemy for its whole flight.
// TargetID does not own the enemy; the target may disappear before impact.
type Projectile struct {
	TargetID          types.EntityID
	SourceID          types.EntityID // tower that fired it
	DefID             string
	Speed             float64
	Damage            float64
	SlowFactor        float64
	SlowDurationTicks int
}
