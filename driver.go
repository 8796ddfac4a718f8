package tween

import (
	"fmt"
	"log"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/tphakala/go-transform-tween/ease"
)

// phase is the explicit lifecycle state of a driver. One enum replaces
// the sticky boolean flag combinations a subclass hierarchy would scatter
// across base and derived types.
type phase int

const (
	// phaseIdle: constructed or reset, waiting for lazy initialization.
	phaseIdle phase = iota

	// phaseRunning: initialized, elapsed time advancing.
	phaseRunning

	// phaseComplete: arrived at the target and frozen. Updates are no-ops.
	phaseComplete

	// phaseTracking: arrived, but the target is dynamic, so every tick
	// still re-locks the output to the moving to-value (lockstep, not
	// eased).
	phaseTracking
)

// Ease is the bounded interpolation driver: it moves a value from its
// state at first update to the target value over Duration seconds, shaped
// by the configured curve. Each of the three axes is interpolated
// independently with the same curve and normalized time.
//
// Arrival is exact: once cumulative elapsed time reaches the duration the
// to-value is applied verbatim, so floating-point drift never leaves the
// output short of the target.
type Ease struct {
	target   Target
	settings *Settings
	fn       ease.Function

	phase   phase
	elapsed float64
	from    r3.Vec
	to      r3.Vec
	value   r3.Vec
}

// NewEase creates a bounded interpolator over target with the given
// settings. A nil settings uses DefaultSettings. The settings pointer is
// retained, so later mutations take effect on the next tick.
func NewEase(target Target, settings *Settings) (*Ease, error) {
	if target == nil {
		return nil, fmt.Errorf("%w: nil target", ErrNoTarget)
	}

	if settings == nil {
		settings = DefaultSettings()
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	fn, err := ease.ForType(settings.Ease)
	if err != nil {
		return nil, err
	}

	return &Ease{
		target:   target,
		settings: settings,
		fn:       fn,
	}, nil
}

// Settings returns the live settings the driver reads each tick.
func (e *Ease) Settings() *Settings {
	return e.settings
}

// Elapsed returns the accumulated run time in seconds.
func (e *Ease) Elapsed() float64 {
	return e.elapsed
}

// IsComplete reports whether the interpolation has arrived at its target.
// Sticky until Reset, including while a dynamic target is still tracked.
func (e *Ease) IsComplete() bool {
	return e.phase == phaseComplete || e.phase == phaseTracking
}

// Value returns the most recently computed output value.
func (e *Ease) Value() r3.Vec {
	return e.value
}

// Reset clears all per-run state and re-derives any cached target state,
// returning the driver to its uninitialized phase.
func (e *Ease) Reset() {
	e.phase = phaseIdle
	e.elapsed = 0
	e.from = r3.Vec{}
	e.to = r3.Vec{}
	e.value = r3.Vec{}

	if r, ok := e.target.(Refresher); ok {
		r.Refresh()
	}
}

// Update advances the interpolation by deltaTime seconds and reports
// whether it is still actively easing. A missing target logs an error and
// returns false; nothing is thrown and the next Update retries
// initialization.
func (e *Ease) Update(deltaTime float64) bool {
	switch e.phase {
	case phaseComplete:
		return false

	case phaseTracking:
		// Arrived, but the target moves: re-lock every tick.
		e.advance(deltaTime)
		e.to = e.target.To(e.from)
		e.apply(e.to)
		return false

	case phaseIdle:
		if !e.init() {
			return false
		}
	}

	e.advance(deltaTime)

	if e.settings.DynamicTarget {
		e.to = e.target.To(e.from)
	}

	if e.settings.Duration == 0 {
		e.finish()
		return false
	}

	normalized := e.elapsed / e.settings.Duration
	if normalized >= 1 {
		e.finish()
		return false
	}

	e.apply(r3.Vec{
		X: e.fn(e.from.X, e.to.X, normalized),
		Y: e.fn(e.from.Y, e.to.Y, normalized),
		Z: e.fn(e.from.Z, e.to.Z, normalized),
	})
	return true
}

// init performs lazy initialization: clear per-run state, capture the
// from-value, then derive the to-value from it.
func (e *Ease) init() bool {
	e.Reset()

	from, err := e.target.From()
	if err != nil {
		log.Printf("tween: ease update skipped: %v", err)
		return false
	}

	e.from = from
	e.to = e.target.To(from)
	e.phase = phaseRunning
	return true
}

// advance accumulates elapsed time. Negative deltas rewind but elapsed
// time never goes below zero.
func (e *Ease) advance(deltaTime float64) {
	e.elapsed += deltaTime
	if e.elapsed < 0 {
		e.elapsed = 0
	}
}

// finish applies the to-value exactly and transitions to the terminal
// phase for the configured target kind.
func (e *Ease) finish() {
	e.apply(e.to)
	if e.settings.DynamicTarget {
		e.phase = phaseTracking
	} else {
		e.phase = phaseComplete
	}
}

func (e *Ease) apply(v r3.Vec) {
	e.value = v
	if e.settings.AutoApply {
		e.target.Apply(v)
	}
}
