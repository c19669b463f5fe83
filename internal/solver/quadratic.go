// Package solver contains the root-finding machinery behind the event
// searches: a three-point quadratic interpolator for coarse root/extremum
// isolation, a Pegasus refiner for bracketed roots, and a bisection refiner
// for extrema.
package solver

import "math"

// Interpolation is the result of fitting a parabola through three samples of
// a scalar function taken at x = -1, 0 and +1.
type Interpolation struct {
	// Xe, Ye locate the vertex of the parabola. Xe may fall outside the
	// sampled window.
	Xe, Ye float64

	// Root1 and Root2 are the roots of the parabola, in ascending order as
	// computed. Only NumRoots of them lie within [-1, +1].
	Root1, Root2 float64

	// NumRoots is how many roots fall within the sampled window (0, 1 or 2).
	NumRoots int

	// Maximum is true when the vertex is a maximum (downward-opening
	// parabola), false for a minimum.
	Maximum bool

	a, b float64
}

// Interpolate fits f(x) = a·x² + b·x + c through the samples
// (-1, yMinus), (0, y0), (+1, yPlus) and reports its vertex and the roots
// that fall inside the sampled window.
func Interpolate(yMinus, y0, yPlus float64) Interpolation {
	a := 0.5*(yPlus+yMinus) - y0
	b := 0.5 * (yPlus - yMinus)
	c := y0

	xe := -b / (2.0 * a)
	ye := (a*xe+b)*xe + c

	n := 0
	var r1, r2 float64

	dis := b*b - 4.0*a*c
	if dis >= 0 {
		dx := 0.5 * math.Sqrt(dis) / math.Abs(a)
		r1 = xe - dx
		r2 = xe + dx

		if math.Abs(r1) <= 1.0 {
			n++
		}
		if math.Abs(r2) <= 1.0 {
			n++
		}
		// Historical relabeling: when the lower root falls left of the
		// window, Root1 is overwritten with Root2 so that the single-root
		// case can always be read from Root1. This happens regardless of
		// which root a directional search actually wants; kept as-is.
		if r1 < -1.0 {
			r1 = r2
		}
	}

	return Interpolation{
		Xe:       xe,
		Ye:       ye,
		Root1:    r1,
		Root2:    r2,
		NumRoots: n,
		Maximum:  a < 0,
		a:        a,
		b:        b,
	}
}

// Increasing reports whether the fitted parabola is increasing at x, i.e.
// whether a root there is an upward crossing.
func (i Interpolation) Increasing(x float64) bool {
	return 2.0*i.a*x+i.b > 0
}
