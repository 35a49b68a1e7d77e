// internal/component/status_effect.go
package component

// SlowEffect indicates that an enemy is slowed.
// Repeated applications refresh RemainingTicks to the larger value, they never stack.
type SlowEffect struct {
	RemainingTicks int
	Factor         float64 // multiplier for speed (e.g. 0.5)
}
