package ease

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const endpointTolerance = 1e-9

// TestEndpointIdentity verifies f(start, end, 0) == start and
// f(start, end, 1) == end for every curve family.
func TestEndpointIdentity(t *testing.T) {
	const start, end = 10.0, 50.0

	for _, typ := range Types() {
		t.Run(typ.String(), func(t *testing.T) {
			fn, err := ForType(typ)
			require.NoError(t, err)

			assert.InDelta(t, start, fn(start, end, 0), endpointTolerance,
				"%s at t=0 should return start", typ)
			assert.InDelta(t, end, fn(start, end, 1), endpointTolerance,
				"%s at t=1 should return end", typ)
		})
	}
}

// TestClerpShortestPath verifies the wrap-aware lerp chooses the shorter
// direction around the circle.
func TestClerpShortestPath(t *testing.T) {
	testCases := []struct {
		name             string
		start, end, t    float64
		want             float64
	}{
		// 10 -> 350 the short way is 20 degrees backward through 0/360.
		{"wraps_backward", 10, 350, 0.5, 0},
		// 350 -> 10 the short way is 20 degrees forward through 0/360.
		{"wraps_forward", 350, 10, 0.5, 360},
		// No wrap needed when the direct path is already shortest.
		{"direct", 10, 100, 0.5, 55},
		{"direct_down", 100, 10, 0.5, 55},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, Clerp(tc.start, tc.end, tc.t), endpointTolerance)
		})
	}
}

// TestClerpDiffersFromLerp verifies Clerp only deviates from plain Lerp
// when the direct span exceeds a half turn.
func TestClerpDiffersFromLerp(t *testing.T) {
	assert.InDelta(t, Lerp(30, 200, 0.25), Clerp(30, 200, 0.25), endpointTolerance,
		"span of 170 should not wrap")
	assert.Greater(t, math.Abs(Lerp(10, 350, 0.5)-Clerp(10, 350, 0.5)), 100.0,
		"span of 340 should wrap")
}

// TestForTypeUnknown verifies selection fails for values outside the
// closed enumeration.
func TestForTypeUnknown(t *testing.T) {
	fn, err := ForType(Type(9999))
	assert.Nil(t, fn)
	require.ErrorIs(t, err, ErrUnknownType)
}

// TestParseTypeRoundTrip verifies every type's name parses back to itself.
func TestParseTypeRoundTrip(t *testing.T) {
	for _, typ := range Types() {
		parsed, err := ParseType(typ.String())
		require.NoError(t, err, "parsing %q", typ.String())
		assert.Equal(t, typ, parsed)
	}

	_, err := ParseType("zigzag")
	assert.ErrorIs(t, err, ErrUnknownType)
}

// TestOvershootFamilies verifies back and elastic intentionally leave the
// [start, end] range for intermediate t while bounce stays inside it.
func TestOvershootFamilies(t *testing.T) {
	const start, end = 0.0, 1.0

	backFn, err := ForType(BackIn)
	require.NoError(t, err)
	assert.Less(t, backFn(start, end, 0.2), start,
		"back-in should pull below the start")

	elasticFn, err := ForType(ElasticOut)
	require.NoError(t, err)

	overshot := false
	for i := 1; i < 100; i++ {
		if elasticFn(start, end, float64(i)/100) > end {
			overshot = true
			break
		}
	}
	assert.True(t, overshot, "elastic-out should overshoot the end")

	bounceFn, err := ForType(BounceOut)
	require.NoError(t, err)
	for i := 0; i <= 100; i++ {
		v := bounceFn(start, end, float64(i)/100)
		assert.GreaterOrEqual(t, v, start)
		assert.LessOrEqual(t, v, end+endpointTolerance)
	}
}

// TestMidpointSymmetry spot-checks a few in-out curves at the midpoint,
// where they should all pass through the halfway value.
func TestMidpointSymmetry(t *testing.T) {
	const start, end = 10.0, 50.0
	const mid = (start + end) / 2

	for _, typ := range []Type{Linear, Smoothstep, QuadInOut, CubicInOut, QuintInOut, SineInOut, CircInOut} {
		fn, err := ForType(typ)
		require.NoError(t, err)
		assert.InDelta(t, mid, fn(start, end, 0.5), endpointTolerance,
			"%s at t=0.5", typ)
	}
}
