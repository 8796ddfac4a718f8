// Package ease provides the curve library for transform interpolation.
//
// Every curve is a pure function of (start, end, t) where t is the
// normalized time, conventionally in [0, 1]. All curves satisfy
// f(start, end, 0) == start and f(start, end, 1) == end. The back and
// elastic families intentionally overshoot the [start, end] range for
// intermediate t; the bounce family stays within it. Behavior outside
// [0, 1] is implementation-defined per curve.
//
// Curves are selected by a closed [Type] enumeration via [ForType].
// [Clerp] is the wrap-aware variant of [Linear] for angles in degrees.
package ease

import (
	"errors"
	"fmt"
	"math"
)

// Function computes an interpolated value between start and end at
// normalized time t. Functions are stateless and safe for concurrent use.
type Function func(start, end, t float64) float64

// Type enumerates the available curve families.
type Type int

const (
	// Linear interpolates at constant speed.
	Linear Type = iota

	// Smoothstep is the classic 3t²-2t³ hermite ramp.
	Smoothstep

	// Spring overshoots the target and settles with a damped oscillation.
	Spring

	// QuadIn accelerates from rest (t²).
	QuadIn
	// QuadOut decelerates to rest.
	QuadOut
	// QuadInOut accelerates, then decelerates.
	QuadInOut

	// CubicIn accelerates from rest (t³).
	CubicIn
	CubicOut
	CubicInOut

	// QuartIn accelerates from rest (t⁴).
	QuartIn
	QuartOut
	QuartInOut

	// QuintIn accelerates from rest (t⁵).
	QuintIn
	QuintOut
	QuintInOut

	// SineIn follows a quarter sine wave.
	SineIn
	SineOut
	SineInOut

	// ExpoIn follows an exponential ramp (2^(10(t-1))).
	ExpoIn
	ExpoOut
	ExpoInOut

	// CircIn follows a quarter circle arc.
	CircIn
	CircOut
	CircInOut

	// ElasticIn oscillates with exponentially growing amplitude.
	ElasticIn
	ElasticOut
	ElasticInOut

	// BounceIn simulates a ball dropped toward the target.
	BounceIn
	BounceOut
	BounceInOut

	// BackIn pulls back past the start before moving to the target.
	BackIn
	BackOut
	BackInOut

	// CircularLerp interpolates angles in degrees along the shortest
	// path around the circle. See [Clerp].
	CircularLerp
)

// ErrUnknownType indicates a Type value outside the closed enumeration.
// Reaching it means a broken invariant at the call site, not bad data.
var ErrUnknownType = errors.New("unknown ease type")

// functions maps each Type to its implementation. The table is the single
// source of truth for the closed enumeration.
var functions = map[Type]Function{
	Linear:       Lerp,
	Smoothstep:   smoothstep,
	Spring:       spring,
	QuadIn:       quadIn,
	QuadOut:      quadOut,
	QuadInOut:    quadInOut,
	CubicIn:      cubicIn,
	CubicOut:     cubicOut,
	CubicInOut:   cubicInOut,
	QuartIn:      quartIn,
	QuartOut:     quartOut,
	QuartInOut:   quartInOut,
	QuintIn:      quintIn,
	QuintOut:     quintOut,
	QuintInOut:   quintInOut,
	SineIn:       sineIn,
	SineOut:      sineOut,
	SineInOut:    sineInOut,
	ExpoIn:       expoIn,
	ExpoOut:      expoOut,
	ExpoInOut:    expoInOut,
	CircIn:       circIn,
	CircOut:      circOut,
	CircInOut:    circInOut,
	ElasticIn:    elasticIn,
	ElasticOut:   elasticOut,
	ElasticInOut: elasticInOut,
	BounceIn:     bounceIn,
	BounceOut:    bounceOut,
	BounceInOut:  bounceInOut,
	BackIn:       backIn,
	BackOut:      backOut,
	BackInOut:    backInOut,
	CircularLerp: Clerp,
}

// names maps each Type to its canonical string form, used by YAML
// settings files and command-line tools.
var names = map[Type]string{
	Linear:       "linear",
	Smoothstep:   "smoothstep",
	Spring:       "spring",
	QuadIn:       "quad-in",
	QuadOut:      "quad-out",
	QuadInOut:    "quad-in-out",
	CubicIn:      "cubic-in",
	CubicOut:     "cubic-out",
	CubicInOut:   "cubic-in-out",
	QuartIn:      "quart-in",
	QuartOut:     "quart-out",
	QuartInOut:   "quart-in-out",
	QuintIn:      "quint-in",
	QuintOut:     "quint-out",
	QuintInOut:   "quint-in-out",
	SineIn:       "sine-in",
	SineOut:      "sine-out",
	SineInOut:    "sine-in-out",
	ExpoIn:       "expo-in",
	ExpoOut:      "expo-out",
	ExpoInOut:    "expo-in-out",
	CircIn:       "circ-in",
	CircOut:      "circ-out",
	CircInOut:    "circ-in-out",
	ElasticIn:    "elastic-in",
	ElasticOut:   "elastic-out",
	ElasticInOut: "elastic-in-out",
	BounceIn:     "bounce-in",
	BounceOut:    "bounce-out",
	BounceInOut:  "bounce-in-out",
	BackIn:       "back-in",
	BackOut:      "back-out",
	BackInOut:    "back-in-out",
	CircularLerp: "circular-lerp",
}

// ForType returns the Function for the given Type.
// Returns ErrUnknownType for values outside the closed enumeration.
func ForType(t Type) (Function, error) {
	fn, ok := functions[t]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, int(t))
	}
	return fn, nil
}

// String returns the canonical name of the Type, or "unknown" for values
// outside the enumeration.
func (t Type) String() string {
	if name, ok := names[t]; ok {
		return name
	}
	return "unknown"
}

// ParseType returns the Type with the given canonical name.
func ParseType(name string) (Type, error) {
	for t, n := range names {
		if n == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownType, name)
}

// Types returns all defined types in enumeration order.
func Types() []Type {
	ts := make([]Type, 0, len(names))
	for t := Linear; t <= CircularLerp; t++ {
		ts = append(ts, t)
	}
	return ts
}

// Lerp linearly interpolates between start and end.
func Lerp(start, end, t float64) float64 {
	return start + (end-start)*t
}

// Clerp interpolates angles in degrees, domain [0, 360), along the
// shortest signed path around the circle. Whenever |end-start| exceeds
// a half turn the interpolation wraps through 0/360 instead of crossing
// the long way, so Clerp(10, 350, 0.5) passes near 0, not 180.
func Clerp(start, end, t float64) float64 {
	const turn = 360.0
	const half = turn / 2

	switch delta := end - start; {
	case delta < -half:
		// Short way is forward through the wrap point.
		return start + (turn+delta)*t
	case delta > half:
		// Short way is backward through the wrap point.
		return start + (delta-turn)*t
	default:
		return start + delta*t
	}
}

func smoothstep(start, end, t float64) float64 {
	return start + (end-start)*(t*t*(3-2*t))
}

// spring is a damped overshoot toward the target. Endpoints hold exactly:
// the sine term is zeroed by the (1-t) factors at t=1 and by sin(0) at t=0.
func spring(start, end, t float64) float64 {
	f := math.Sin(t*math.Pi*(0.2+2.5*t*t*t))*math.Pow(1-t, 2.2) + t
	f *= 1 + 1.2*(1-t)
	return start + (end-start)*f
}

func quadIn(start, end, t float64) float64 {
	return start + (end-start)*t*t
}

func quadOut(start, end, t float64) float64 {
	u := 1 - t
	return start + (end-start)*(1-u*u)
}

func quadInOut(start, end, t float64) float64 {
	if t < 0.5 {
		return start + (end-start)*2*t*t
	}
	u := -2*t + 2
	return start + (end-start)*(1-u*u/2)
}

func cubicIn(start, end, t float64) float64 {
	return start + (end-start)*t*t*t
}

func cubicOut(start, end, t float64) float64 {
	u := 1 - t
	return start + (end-start)*(1-u*u*u)
}

func cubicInOut(start, end, t float64) float64 {
	if t < 0.5 {
		return start + (end-start)*4*t*t*t
	}
	u := -2*t + 2
	return start + (end-start)*(1-u*u*u/2)
}

func quartIn(start, end, t float64) float64 {
	return start + (end-start)*t*t*t*t
}

func quartOut(start, end, t float64) float64 {
	u := 1 - t
	return start + (end-start)*(1-u*u*u*u)
}

func quartInOut(start, end, t float64) float64 {
	if t < 0.5 {
		return start + (end-start)*8*t*t*t*t
	}
	u := -2*t + 2
	return start + (end-start)*(1-u*u*u*u/2)
}

func quintIn(start, end, t float64) float64 {
	return start + (end-start)*t*t*t*t*t
}

func quintOut(start, end, t float64) float64 {
	u := 1 - t
	return start + (end-start)*(1-u*u*u*u*u)
}

func quintInOut(start, end, t float64) float64 {
	if t < 0.5 {
		return start + (end-start)*16*t*t*t*t*t
	}
	u := -2*t + 2
	return start + (end-start)*(1-u*u*u*u*u/2)
}

func sineIn(start, end, t float64) float64 {
	return start + (end-start)*(1-math.Cos(t*math.Pi/2))
}

func sineOut(start, end, t float64) float64 {
	return start + (end-start)*math.Sin(t*math.Pi/2)
}

func sineInOut(start, end, t float64) float64 {
	return start + (end-start)*(-(math.Cos(math.Pi*t)-1)/2)
}

func expoIn(start, end, t float64) float64 {
	if t == 0 {
		return start
	}
	return start + (end-start)*math.Pow(2, 10*t-10)
}

func expoOut(start, end, t float64) float64 {
	if t == 1 {
		return end
	}
	return start + (end-start)*(1-math.Pow(2, -10*t))
}

func expoInOut(start, end, t float64) float64 {
	switch {
	case t == 0:
		return start
	case t == 1:
		return end
	case t < 0.5:
		return start + (end-start)*math.Pow(2, 20*t-10)/2
	default:
		return start + (end-start)*(2-math.Pow(2, -20*t+10))/2
	}
}

func circIn(start, end, t float64) float64 {
	return start + (end-start)*(1-math.Sqrt(1-t*t))
}

func circOut(start, end, t float64) float64 {
	u := t - 1
	return start + (end-start)*math.Sqrt(1-u*u)
}

func circInOut(start, end, t float64) float64 {
	if t < 0.5 {
		return start + (end-start)*(1-math.Sqrt(1-4*t*t))/2
	}
	u := -2*t + 2
	return start + (end-start)*(math.Sqrt(1-u*u)+1)/2
}

func elasticIn(start, end, t float64) float64 {
	switch t {
	case 0:
		return start
	case 1:
		return end
	}
	const c4 = (2 * math.Pi) / 3
	return start + (end-start)*(-math.Pow(2, 10*t-10)*math.Sin((t*10-10.75)*c4))
}

func elasticOut(start, end, t float64) float64 {
	switch t {
	case 0:
		return start
	case 1:
		return end
	}
	const c4 = (2 * math.Pi) / 3
	return start + (end-start)*(math.Pow(2, -10*t)*math.Sin((t*10-0.75)*c4)+1)
}

func elasticInOut(start, end, t float64) float64 {
	const c5 = (2 * math.Pi) / 4.5
	switch {
	case t == 0:
		return start
	case t == 1:
		return end
	case t < 0.5:
		return start + (end-start)*(-(math.Pow(2, 20*t-10)*math.Sin((20*t-11.125)*c5))/2)
	default:
		return start + (end-start)*((math.Pow(2, -20*t+10)*math.Sin((20*t-11.125)*c5))/2+1)
	}
}

// bounceCurve is the normalized ease-out bounce on [0, 1].
func bounceCurve(t float64) float64 {
	const n1 = 7.5625
	const d1 = 2.75

	switch {
	case t < 1.0/d1:
		return n1 * t * t
	case t < 2.0/d1:
		t -= 1.5 / d1
		return n1*t*t + 0.75
	case t < 2.5/d1:
		t -= 2.25 / d1
		return n1*t*t + 0.9375
	default:
		t -= 2.625 / d1
		return n1*t*t + 0.984375
	}
}

func bounceIn(start, end, t float64) float64 {
	return start + (end-start)*(1-bounceCurve(1-t))
}

func bounceOut(start, end, t float64) float64 {
	return start + (end-start)*bounceCurve(t)
}

func bounceInOut(start, end, t float64) float64 {
	if t < 0.5 {
		return start + (end-start)*(1-bounceCurve(1-2*t))/2
	}
	return start + (end-start)*(1+bounceCurve(2*t-1))/2
}

func backIn(start, end, t float64) float64 {
	const c1 = 1.70158
	const c3 = c1 + 1
	return start + (end-start)*(c3*t*t*t-c1*t*t)
}

func backOut(start, end, t float64) float64 {
	const c1 = 1.70158
	const c3 = c1 + 1
	u := t - 1
	return start + (end-start)*(1+c3*u*u*u+c1*u*u)
}

func backInOut(start, end, t float64) float64 {
	const c1 = 1.70158
	const c2 = c1 * 1.525

	if t < 0.5 {
		return start + (end-start)*(2*t*2*t*((c2+1)*2*t-c2))/2
	}
	u := 2*t - 2
	return start + (end-start)*(u*u*((c2+1)*u+c2)+2)/2
}
