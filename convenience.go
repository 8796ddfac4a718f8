package tween

import "gonum.org/v1/gonum/spatial/r3"

// NewPositionTween eases subject's position to a fixed point.
func NewPositionTween(subject *Transform, point r3.Vec, settings *Settings) (*Ease, error) {
	if settings == nil {
		settings = DefaultSettings()
	}
	return NewEase(&PositionTarget{
		Subject: subject,
		Point:   point,
		Space:   settings.Space,
	}, settings)
}

// NewPositionTweenTo eases subject's position toward dest plus offset.
// With DynamicTarget set, the tween tracks dest as it moves and keeps
// re-locking after arrival.
func NewPositionTweenTo(subject, dest *Transform, offset r3.Vec, settings *Settings) (*Ease, error) {
	if settings == nil {
		settings = DefaultSettings()
	}
	return NewEase(&PositionTarget{
		Subject: subject,
		Dest:    dest,
		Offset:  offset,
		Space:   settings.Space,
	}, settings)
}

// NewRotationTween eases subject's Euler rotation to fixed angles in
// degrees, each axis along the shortest path around the circle.
func NewRotationTween(subject *Transform, euler r3.Vec, settings *Settings) (*Ease, error) {
	if settings == nil {
		settings = DefaultSettings()
	}
	return NewEase(&RotationTarget{
		Subject: subject,
		Euler:   euler,
		Space:   settings.Space,
	}, settings)
}

// NewRotationTweenTo eases subject's Euler rotation toward dest's
// rotation, each axis along the shortest path around the circle.
func NewRotationTweenTo(subject, dest *Transform, settings *Settings) (*Ease, error) {
	if settings == nil {
		settings = DefaultSettings()
	}
	return NewEase(&RotationTarget{
		Subject: subject,
		Dest:    dest,
		Space:   settings.Space,
	}, settings)
}

// NewPositionFollow smooth-damps subject's position after dest plus
// offset, forever.
func NewPositionFollow(subject, dest *Transform, offset r3.Vec, settings *Settings) (*Follow, error) {
	if settings == nil {
		settings = DefaultSettings()
	}
	return NewFollow(&PositionTarget{
		Subject: subject,
		Dest:    dest,
		Offset:  offset,
		Space:   settings.Space,
	}, settings)
}

// NewRotationFollow smooth-damps subject's Euler rotation after dest's
// rotation, each axis along the shortest path around the circle.
func NewRotationFollow(subject, dest *Transform, settings *Settings) (*Follow, error) {
	if settings == nil {
		settings = DefaultSettings()
	}
	return NewAngularFollow(&RotationTarget{
		Subject: subject,
		Dest:    dest,
		Space:   settings.Space,
	}, settings)
}

// NewAimFollow smooth-damps subject's yaw to keep facing dest. See
// AimTarget for the singular-direction caveat.
func NewAimFollow(subject, dest *Transform, settings *Settings) (*Follow, error) {
	if settings == nil {
		settings = DefaultSettings()
	}
	return NewAngularFollow(&AimTarget{
		Subject: subject,
		Dest:    dest,
		Space:   settings.Space,
	}, settings)
}
