package tween

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/tphakala/go-transform-tween/ease"
)

// Interpolator is the common contract of the ease and follow drivers.
//
// The host scheduler calls Update once per logical tick. The returned
// bool reports whether the interpolator is still actively easing: false
// means idle, complete, or failed-soft (missing target). deltaTime may be
// any float, including negative for rewind; internal elapsed time never
// goes below zero.
type Interpolator interface {
	// Update advances the interpolation by deltaTime seconds.
	Update(deltaTime float64) bool

	// Reset clears all per-run state so the instance can be reused.
	Reset()

	// IsComplete reports whether the interpolation has arrived at its
	// target. Sticky: once true it stays true until Reset.
	IsComplete() bool

	// Value returns the most recently computed output value.
	Value() r3.Vec
}

// Space selects which coordinate space the target accessors read and write.
type Space int

const (
	// World uses world-space position and rotation.
	World Space = iota

	// Local uses the transform's local fields. Keeping local and world
	// fields coherent is the host scene graph's job, not this library's.
	Local
)

// String returns the canonical name of the Space.
func (s Space) String() string {
	if s == Local {
		return "local"
	}
	return "world"
}

// ParseSpace returns the Space with the given canonical name.
func ParseSpace(name string) (Space, error) {
	switch name {
	case "world", "":
		return World, nil
	case "local":
		return Local, nil
	default:
		return 0, fmt.Errorf("%w: unknown space %q", ErrInvalidSettings, name)
	}
}

// Settings holds interpolation configuration.
//
// Fields are plain and mutable: a Settings value is commonly shared by
// reference between a driver and an external configuration surface so
// that live tweaks take effect on the next tick. There is no enforced
// exclusive ownership; sharing is single-threaded by contract.
type Settings struct {
	// Duration is the target duration in seconds. Zero snaps to the
	// target on the first update. Never negative; use SetDuration to
	// clamp external writes.
	Duration float64

	// Ease selects the curve family for bounded interpolation. The
	// curve is resolved when a driver is constructed; other fields are
	// read live every tick.
	Ease ease.Type

	// Space selects world or local coordinates.
	Space Space

	// DynamicTarget recomputes the to-value every tick so the
	// interpolation tracks a moving target. A bounded ease with a
	// dynamic target keeps reconciling after arrival instead of
	// freezing.
	DynamicTarget bool

	// AutoApply writes each computed value back through the target's
	// apply accessor. When false the host reads Value and applies it
	// itself.
	AutoApply bool

	// SmoothTime is the follow driver's smoothing time constant in
	// seconds: roughly the time to cover most of the remaining distance.
	SmoothTime float64

	// MaxSpeed clamps the follow driver's approach speed in units per
	// second. Zero or negative means unclamped.
	MaxSpeed float64
}

// Common errors returned by the library.
var (
	// ErrInvalidSettings indicates invalid interpolation settings.
	ErrInvalidSettings = errors.New("invalid interpolation settings")

	// ErrNoTarget indicates a missing or invalid interpolation target.
	// Per-tick this is a recoverable "nothing to do" condition: Update
	// logs it and returns false rather than failing hard.
	ErrNoTarget = errors.New("no interpolation target")

	// ErrInvalidPool indicates invalid pool construction parameters.
	ErrInvalidPool = errors.New("invalid pool configuration")
)

// DefaultSettings returns settings with sensible defaults: one second
// duration, linear easing, world space, auto-apply on, 0.3s smooth time,
// unclamped speed.
func DefaultSettings() *Settings {
	return &Settings{
		Duration:   defaultDuration,
		Ease:       ease.Linear,
		Space:      World,
		AutoApply:  true,
		SmoothTime: defaultSmoothTime,
	}
}

// SetDuration sets the duration, clamping negative values to zero.
func (s *Settings) SetDuration(d float64) {
	if d < 0 {
		d = 0
	}
	s.Duration = d
}

// Validate checks if the settings are valid.
func (s *Settings) Validate() error {
	if s.Duration < 0 {
		return fmt.Errorf("%w: duration must be >= 0, got %v", ErrInvalidSettings, s.Duration)
	}

	if s.SmoothTime < 0 {
		return fmt.Errorf("%w: smooth time must be >= 0, got %v", ErrInvalidSettings, s.SmoothTime)
	}

	if s.Space != World && s.Space != Local {
		return fmt.Errorf("%w: unknown space %d", ErrInvalidSettings, int(s.Space))
	}

	if _, err := ease.ForType(s.Ease); err != nil {
		return err
	}

	return nil
}
