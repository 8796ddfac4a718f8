package tween

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/tphakala/go-transform-tween/internal/mathutil"
)

// Target supplies the value accessors a driver interpolates through.
// The driver calls these at well-defined points in its state machine and
// never inspects their internals:
//
//   - From is called once at lazy initialization to capture the start
//     value. It returns an error when the underlying target is missing,
//     which the driver treats as fail-soft.
//   - To derives the destination value. It receives the captured start
//     value because some derivations depend on it, such as shortest-path
//     angle wrapping. For dynamic targets the driver calls To every tick.
//   - Apply writes a computed value back to the target.
type Target interface {
	From() (r3.Vec, error)
	To(from r3.Vec) r3.Vec
	Apply(v r3.Vec)
}

// Refresher is implemented by targets that cache auxiliary state derived
// from the underlying object, such as a physics-body handle. The driver
// calls Refresh on every Reset so the cache is re-derived whenever the
// target changes.
type Refresher interface {
	Refresh()
}

// Transform is a minimal scene-node stand-in: a world and local position
// plus Euler rotations in degrees. The host engine owns the relationship
// between the world and local fields; this library only reads and writes
// whichever pair the configured Space selects.
type Transform struct {
	Position r3.Vec
	Rotation r3.Vec // Euler angles, degrees

	LocalPosition r3.Vec
	LocalRotation r3.Vec // Euler angles, degrees
}

func (t *Transform) position(s Space) r3.Vec {
	if s == Local {
		return t.LocalPosition
	}
	return t.Position
}

func (t *Transform) setPosition(s Space, v r3.Vec) {
	if s == Local {
		t.LocalPosition = v
		return
	}
	t.Position = v
}

func (t *Transform) rotation(s Space) r3.Vec {
	if s == Local {
		return t.LocalRotation
	}
	return t.Rotation
}

func (t *Transform) setRotation(s Space, v r3.Vec) {
	if s == Local {
		t.LocalRotation = v
		return
	}
	t.Rotation = v
}

// PositionTarget interpolates a transform's position toward a fixed point
// or toward another transform. When Dest is non-nil it takes precedence
// over Point; Offset is added to either.
type PositionTarget struct {
	Subject *Transform
	Dest    *Transform
	Point   r3.Vec
	Offset  r3.Vec
	Space   Space
}

// From returns the subject's current position.
func (p *PositionTarget) From() (r3.Vec, error) {
	if p.Subject == nil {
		return r3.Vec{}, ErrNoTarget
	}
	return p.Subject.position(p.Space), nil
}

// To returns the destination position.
func (p *PositionTarget) To(_ r3.Vec) r3.Vec {
	if p.Dest != nil {
		return r3.Add(p.Dest.position(p.Space), p.Offset)
	}
	return r3.Add(p.Point, p.Offset)
}

// Apply writes the value to the subject's position.
func (p *PositionTarget) Apply(v r3.Vec) {
	p.Subject.setPosition(p.Space, v)
}

// RotationTarget interpolates a transform's Euler rotation toward fixed
// angles or toward another transform's rotation, per axis along the
// shortest path around the circle.
type RotationTarget struct {
	Subject *Transform
	Dest    *Transform
	Euler   r3.Vec // degrees, used when Dest is nil
	Space   Space
}

// From returns the subject's current rotation.
func (rt *RotationTarget) From() (r3.Vec, error) {
	if rt.Subject == nil {
		return r3.Vec{}, ErrNoTarget
	}
	return rt.Subject.rotation(rt.Space), nil
}

// To returns the destination rotation rewritten relative to from so each
// axis travels the shortest path. The result may leave [0, 360); exact
// arrival applies it as-is.
func (rt *RotationTarget) To(from r3.Vec) r3.Vec {
	raw := rt.Euler
	if rt.Dest != nil {
		raw = rt.Dest.rotation(rt.Space)
	}
	return r3.Vec{
		X: from.X + mathutil.DeltaAngle(from.X, raw.X),
		Y: from.Y + mathutil.DeltaAngle(from.Y, raw.Y),
		Z: from.Z + mathutil.DeltaAngle(from.Z, raw.Z),
	}
}

// Apply writes the value to the subject's rotation.
func (rt *RotationTarget) Apply(v r3.Vec) {
	rt.Subject.setRotation(rt.Space, v)
}

// AimTarget rotates a transform's yaw (the signed angle around the up
// axis) to face another transform. The yaw derivation is undefined when
// the direction from Subject to Dest has no horizontal-plane projection,
// i.e. points straight up or down; callers are responsible for avoiding
// that configuration.
type AimTarget struct {
	Subject *Transform
	Dest    *Transform
	Space   Space
}

// From returns the subject's current rotation.
func (a *AimTarget) From() (r3.Vec, error) {
	if a.Subject == nil || a.Dest == nil {
		return r3.Vec{}, ErrNoTarget
	}
	return a.Subject.rotation(a.Space), nil
}

// To returns the rotation whose yaw faces Dest, taking the shortest path
// from the current yaw. Pitch and roll are left untouched.
func (a *AimTarget) To(from r3.Vec) r3.Vec {
	dir := r3.Sub(a.Dest.position(a.Space), a.Subject.position(a.Space))
	yaw := math.Atan2(dir.X, dir.Z) * degPerRad
	return r3.Vec{
		X: from.X,
		Y: from.Y + mathutil.DeltaAngle(from.Y, mathutil.NormalizeAngle(yaw)),
		Z: from.Z,
	}
}

// Apply writes the value to the subject's rotation.
func (a *AimTarget) Apply(v r3.Vec) {
	a.Subject.setRotation(a.Space, v)
}

// FuncTarget adapts plain closures to the Target interface for values that
// do not live on a Transform.
type FuncTarget struct {
	// FromFunc captures the start value. Required.
	FromFunc func() (r3.Vec, error)

	// ToFunc derives the destination from the captured start value.
	// Required.
	ToFunc func(from r3.Vec) r3.Vec

	// ApplyFunc writes a computed value back. Optional; nil means the
	// host reads the driver's Value itself.
	ApplyFunc func(v r3.Vec)
}

// From invokes FromFunc, or fails with ErrNoTarget when it is nil.
func (f *FuncTarget) From() (r3.Vec, error) {
	if f.FromFunc == nil {
		return r3.Vec{}, ErrNoTarget
	}
	return f.FromFunc()
}

// To invokes ToFunc, or returns from unchanged when it is nil.
func (f *FuncTarget) To(from r3.Vec) r3.Vec {
	if f.ToFunc == nil {
		return from
	}
	return f.ToFunc(from)
}

// Apply invokes ApplyFunc when set.
func (f *FuncTarget) Apply(v r3.Vec) {
	if f.ApplyFunc != nil {
		f.ApplyFunc(v)
	}
}
