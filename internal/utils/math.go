// internal/utils/math.go
package utils

// Lerp is the standard linear interpolation; t is not clamped.
func Lerp(from, to float32, t float32) float32 {
	return from + (to-from)*t
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
