package mathutil

import "math"

// SmoothDamp moves current toward target with critically damped spring
// smoothing, never overshooting. velocity is the caller-owned axis velocity
// from the previous call; the updated value and velocity are returned.
//
// smoothTime is roughly the time to cover most of the remaining distance.
// maxSpeed clamps the approach speed; pass math.Inf(1) for no clamp.
//
// The implementation follows Game Programming Gems 4, chapter 1.10
// ("Critically Damped Ease-In/Ease-Out Smoothing").
func SmoothDamp(current, target, velocity, smoothTime, maxSpeed, dt float64) (float64, float64) {
	if dt <= 0 {
		return current, velocity
	}
	smoothTime = math.Max(smoothTime, minSmoothTime)

	omega := 2 / smoothTime
	x := omega * dt
	decay := 1 / (1 + x + smoothDampCoeff2*x*x + smoothDampCoeff3*x*x*x)

	change := current - target
	originalTarget := target

	// Clamp the distance covered per smoothTime window to respect maxSpeed.
	maxChange := maxSpeed * smoothTime
	change = Clamp(change, -maxChange, maxChange)
	target = current - change

	temp := (velocity + omega*change) * dt
	velocity = (velocity - omega*temp) * decay
	output := target + (change+temp)*decay

	// Prevent overshoot past the real target.
	if (originalTarget-current > 0) == (output > originalTarget) {
		output = originalTarget
		velocity = (output - originalTarget) / dt
	}

	return output, velocity
}

// SmoothDampAngle is SmoothDamp for angles in degrees: the target is first
// rewritten so the approach takes the shortest path around the circle.
func SmoothDampAngle(current, target, velocity, smoothTime, maxSpeed, dt float64) (float64, float64) {
	target = current + DeltaAngle(current, target)
	return SmoothDamp(current, target, velocity, smoothTime, maxSpeed, dt)
}
