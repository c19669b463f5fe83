package solver

import (
	"errors"
	"math"
)

var (
	// ErrNoSignChange is returned when the given interval does not bracket
	// a root (f has the same sign at both ends).
	ErrNoSignChange = errors.New("solver: interval does not bracket a root")

	// ErrNoConvergence is returned when the Pegasus iteration fails to
	// reach the requested accuracy within its iteration budget.
	ErrNoConvergence = errors.New("solver: no convergence within iteration limit")
)

// pegasusMaxIterations bounds the refinement loop. The method converges
// superlinearly on a valid bracket, so hitting the cap means the bracket
// invariant was violated upstream.
const pegasusMaxIterations = 30

// Pegasus finds a root of f within [lower, upper] to the given accuracy
// using the Pegasus variant of regula falsi. f(lower) and f(upper) must have
// opposite signs, otherwise ErrNoSignChange is returned.
//
// Compared to plain false position, the Pegasus correction rescales the
// retained endpoint's function value (f1 = f1·f2/(f2+f3)) whenever the new
// estimate lands on the same side twice, which keeps the bracket from
// stagnating on one end.
func Pegasus(lower, upper, accuracy float64, f func(float64) float64) (float64, error) {
	x1, x2 := lower, upper
	f1, f2 := f(x1), f(x2)

	if f1*f2 > 0 {
		return 0, ErrNoSignChange
	}

	for i := 0; i < pegasusMaxIterations; i++ {
		x3 := x2 - f2*(x2-x1)/(f2-f1)
		f3 := f(x3)

		if f3*f2 <= 0 {
			// The root is between x2 and x3: shift the bracket.
			x1, f1 = x2, f2
		} else {
			// Same side as x2: keep x1 but shrink its weight.
			f1 = f1 * f2 / (f2 + f3)
		}
		x2, f2 = x3, f3

		if math.Abs(x2-x1) <= accuracy {
			// Return the endpoint whose function value is closest to zero.
			if math.Abs(f1) < math.Abs(f2) {
				return x1, nil
			}
			return x2, nil
		}
	}

	return 0, ErrNoConvergence
}
