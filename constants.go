package tween

import "math"

// Settings defaults.
const (
	defaultDuration   = 1.0 // seconds
	defaultSmoothTime = 0.3 // seconds, matches typical camera smoothing
)

// Conversion factor between radians and degrees for the aim accessors.
const degPerRad = 180.0 / math.Pi
