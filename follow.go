package tween

import (
	"fmt"
	"log"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/tphakala/go-transform-tween/internal/mathutil"
)

// Follow is the unbounded interpolation driver: every tick it recomputes
// the current and target values and moves toward the target with per-axis
// critically damped smoothing, like a camera trailing a player. It never
// reports complete.
//
// The per-axis velocity vector is owned by the driver and mutated in
// place each tick. Axes are independent, so their update order does not
// matter.
type Follow struct {
	target   Target
	settings *Settings

	// angular selects shortest-path damping per axis, for Euler angles
	// in degrees.
	angular bool

	initialized bool
	value       r3.Vec
	velocity    r3.Vec
}

// NewFollow creates an unbounded positional follow over target. A nil
// settings uses DefaultSettings. The settings pointer is retained.
func NewFollow(target Target, settings *Settings) (*Follow, error) {
	return newFollow(target, settings, false)
}

// NewAngularFollow is NewFollow for Euler rotations: each axis approaches
// its target along the shortest path around the circle.
func NewAngularFollow(target Target, settings *Settings) (*Follow, error) {
	return newFollow(target, settings, true)
}

func newFollow(target Target, settings *Settings, angular bool) (*Follow, error) {
	if target == nil {
		return nil, fmt.Errorf("%w: nil target", ErrNoTarget)
	}

	if settings == nil {
		settings = DefaultSettings()
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return &Follow{
		target:   target,
		settings: settings,
		angular:  angular,
	}, nil
}

// Settings returns the live settings the driver reads each tick.
func (f *Follow) Settings() *Settings {
	return f.settings
}

// IsComplete always reports false: a follow interpolation has no end.
func (f *Follow) IsComplete() bool {
	return false
}

// Value returns the most recently computed output value.
func (f *Follow) Value() r3.Vec {
	return f.value
}

// Reset clears the velocity state and re-derives any cached target state.
func (f *Follow) Reset() {
	f.initialized = false
	f.value = r3.Vec{}
	f.velocity = r3.Vec{}

	if r, ok := f.target.(Refresher); ok {
		r.Refresh()
	}
}

// Update advances the follow by deltaTime seconds. Always returns true
// while a target is present; a missing target logs an error and returns
// false.
func (f *Follow) Update(deltaTime float64) bool {
	current, err := f.target.From()
	if err != nil {
		log.Printf("tween: follow update skipped: %v", err)
		return false
	}

	if !f.initialized {
		f.value = current
		f.velocity = r3.Vec{}
		f.initialized = true
	}

	to := f.target.To(current)

	maxSpeed := f.settings.MaxSpeed
	if maxSpeed <= 0 {
		maxSpeed = math.Inf(1)
	}

	damp := mathutil.SmoothDamp
	if f.angular {
		damp = mathutil.SmoothDampAngle
	}

	var v r3.Vec
	v.X, f.velocity.X = damp(current.X, to.X, f.velocity.X, f.settings.SmoothTime, maxSpeed, deltaTime)
	v.Y, f.velocity.Y = damp(current.Y, to.Y, f.velocity.Y, f.settings.SmoothTime, maxSpeed, deltaTime)
	v.Z, f.velocity.Z = damp(current.Z, to.Z, f.velocity.Z, f.settings.SmoothTime, maxSpeed, deltaTime)

	f.value = v
	if f.settings.AutoApply {
		f.target.Apply(v)
	}
	return true
}
