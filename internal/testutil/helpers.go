// Package testutil provides reusable test helper functions for
// interpolation tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r3"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance  = 1e-9
	CurveTolerance    = 1e-6
	ConvergeTolerance = 1e-2
)

// AssertVecInDelta verifies that each component of got is within tolerance
// of want.
func AssertVecInDelta(t *testing.T, want, got r3.Vec, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	ok := assert.InDelta(t, want.X, got.X, tolerance, msgAndArgs...)
	ok = assert.InDelta(t, want.Y, got.Y, tolerance, msgAndArgs...) && ok
	ok = assert.InDelta(t, want.Z, got.Z, tolerance, msgAndArgs...) && ok
	return ok
}

// AssertAngleInDelta verifies that two angles in degrees are within
// tolerance of each other modulo 360.
func AssertAngleInDelta(t *testing.T, want, got, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	d := math.Mod(got-want, 360)
	if d > 180 {
		d -= 360
	}
	if d < -180 {
		d += 360
	}
	return assert.InDelta(t, 0, d, tolerance, msgAndArgs...)
}

// AssertNoNaN verifies that no component of v is NaN.
func AssertNoNaN(t *testing.T, v r3.Vec, msgAndArgs ...any) bool {
	t.Helper()
	for _, c := range []float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) {
			return assert.Fail(t, "found NaN component", msgAndArgs...)
		}
	}
	return true
}
