// Package mathutil provides angle and damping math for transform interpolation.
package mathutil

import "math"

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// NormalizeAngle wraps an angle in degrees into [0, 360).
func NormalizeAngle(a float64) float64 {
	m := math.Mod(a, fullTurn)
	if m < 0 {
		m += fullTurn
	}
	return m
}

// DeltaAngle returns the shortest signed difference in degrees from
// current to target, in (-180, 180].
func DeltaAngle(current, target float64) float64 {
	d := math.Mod(target-current, fullTurn)
	if d > halfTurn {
		d -= fullTurn
	}
	if d <= -halfTurn {
		d += fullTurn
	}
	return d
}
