// internal/component/combat.go
package component

// Health is the hit points of an enemy. Current stays within [0, Max].
type Health struct {
	Current float64
	Max     float64
}

// Fraction returns Current/Max for health bars.
func (h *Health) Fraction() float64 {
	if h.Max <= 0 {
		return 0
	}
	return h.Current / h.Max
}

// Combat is the firing state of a tower, copied from its definition at placement time.
type Combat struct {
	Range             float64
	Damage            float64
	FireIntervalTicks int
	CooldownTicks     int
	ProjectileSpeed   float64
	SlowFactor        float64 // 0 means the tower does not slow
	SlowDurationTicks int
}
