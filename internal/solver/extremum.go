package solver

// ReadjustMax sharpens an approximate maximum of f. Starting from the window
// [x-frame, x+frame], it bisects depth times, each step keeping the half
// whose boundary value is larger, and finally returns the boundary with the
// larger value.
//
// Quadratic interpolation only locates an extremum to within a fraction of
// the sampling step; this narrows it to frame/2^depth.
func ReadjustMax(x, frame float64, depth int, f func(float64) float64) float64 {
	lo, hi := x-frame, x+frame
	return readjust(lo, hi, f(lo), f(hi), depth, f, func(a, b float64) bool { return a > b })
}

// ReadjustMin is the minimum-seeking counterpart of ReadjustMax.
func ReadjustMin(x, frame float64, depth int, f func(float64) float64) float64 {
	lo, hi := x-frame, x+frame
	return readjust(lo, hi, f(lo), f(hi), depth, f, func(a, b float64) bool { return a < b })
}

func readjust(lo, hi, ylo, yhi float64, depth int, f func(float64) float64, better func(a, b float64) bool) float64 {
	if depth == 0 {
		if better(ylo, yhi) {
			return lo
		}
		return hi
	}

	mid := 0.5 * (lo + hi)
	ym := f(mid)

	if better(ylo, yhi) {
		return readjust(lo, mid, ylo, ym, depth-1, f, better)
	}
	return readjust(mid, hi, ym, yhi, depth-1, f, better)
}
