package mathutil

// Degrees in a full turn and a half turn.
const (
	fullTurn = 360.0
	halfTurn = 180.0
)

// Smooth-damp approximation coefficients.
//
// The damped spring response e^(-omega*t) is approximated by the rational
// polynomial 1/(1 + x + 0.48x² + 0.235x³), which stays stable for the
// large omega*dt values a frame hitch can produce.
const (
	smoothDampCoeff2 = 0.48
	smoothDampCoeff3 = 0.235

	// minSmoothTime keeps omega finite for degenerate smoothing times.
	minSmoothTime = 1e-4
)
