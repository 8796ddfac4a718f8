// Package tween provides time-based transform interpolation in pure Go.
//
// The library drives a 3D value (a position or an Euler rotation) from a
// start point to a target point over time using a pluggable easing curve,
// with support for static targets, moving targets, and never-completing
// smooth-damp "follow" behaviors. It is frame-driven and allocation-free
// per tick, built for game loops and other cooperative schedulers.
//
// # Quick Start
//
// Ease a transform's position to a fixed point over two seconds:
//
//	subject := &tween.Transform{}
//	settings := tween.DefaultSettings()
//	settings.Duration = 2
//	settings.Ease = ease.CubicOut
//
//	tw, err := tween.NewPositionTween(subject, r3.Vec{X: 10}, settings)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Once per frame:
//	for tw.Update(dt) {
//	}
//
// Follow a moving transform with critically damped smoothing:
//
//	follow, err := tween.NewPositionFollow(camera, player, r3.Vec{Z: -8}, settings)
//
// # Architecture
//
// A single generic driver owns the update-loop state machine; behavior is
// composed from two small strategies rather than inheritance:
//
//	[Target accessors] -> [Ease or Follow driver] -> [applied value]
//	  from/to/apply         elapsed, phase, curve
//
// [Ease] is bounded: it completes when elapsed time reaches the configured
// duration and guarantees exact arrival at the target value. With a
// dynamic target it keeps re-locking to the moving target after arrival
// instead of freezing. [Follow] is unbounded: it never completes and
// approaches the target with per-axis critically damped smoothing and an
// optional maximum speed clamp.
//
// Rotation variants interpolate each Euler angle independently along the
// shortest path around the circle. Per-axis easing is a deliberate
// trade-off: it supports overshoot and bounce curves that quaternion
// slerp cannot express, at the cost of the usual gimbal caveats.
//
// # Easing Curves
//
// The [github.com/tphakala/go-transform-tween/ease] subpackage provides
// the closed set of curve families (linear, polynomial, trigonometric,
// exponential, circular, elastic, bounce, back, spring) plus a wrap-aware
// circular lerp for angles in degrees.
//
// # Pooling
//
// [Pool] is a generic bounded free list for reusing interpolator and
// timer instances across runs without allocation churn.
//
// # Thread Safety
//
// The entire core is single-threaded by contract: all work happens
// synchronously inside whatever per-frame callback the host invokes.
// Update never blocks and performs constant-time work per call. A
// [Settings] value may be shared between a runtime driver and an external
// configuration surface; coordinating concurrent mutation of shared
// settings is the caller's responsibility.
package tween
