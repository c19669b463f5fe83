package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// quadratic f(x) = x² + 2x - 3, roots at -3 and 1, vertex at -1.
func fq(x float64) float64 { return x*x + 2*x - 3 }

func TestInterpolate_RootInWindow(t *testing.T) {
	// Window centred on x=1: the root sits exactly at offset 0.
	qi := Interpolate(fq(0), fq(1), fq(2))
	require.Equal(t, 1, qi.NumRoots)
	assert.InDelta(t, 0.0, qi.Root1, 0.001)
	assert.False(t, qi.Maximum)
	assert.True(t, qi.Increasing(qi.Root1), "f is rising through its right root")

	// Window centred on x=-3: same root offset, but a falling crossing.
	qi = Interpolate(fq(-4), fq(-3), fq(-2))
	require.Equal(t, 1, qi.NumRoots)
	assert.InDelta(t, 0.0, qi.Root1, 0.001)
	assert.False(t, qi.Increasing(qi.Root1), "f is falling through its left root")
}

func TestInterpolate_TwoRoots(t *testing.T) {
	// f(x) = x² - 0.25 has both roots inside a unit-spaced window.
	f := func(x float64) float64 { return x*x - 0.25 }
	qi := Interpolate(f(-1), f(0), f(1))

	require.Equal(t, 2, qi.NumRoots)
	assert.InDelta(t, -0.5, qi.Root1, 0.001)
	assert.InDelta(t, 0.5, qi.Root2, 0.001)
	assert.False(t, qi.Maximum)
	assert.InDelta(t, 0.0, qi.Xe, 0.001)
}

func TestInterpolate_NoRoots(t *testing.T) {
	// f(x) = x² + 3 never crosses zero.
	f := func(x float64) float64 { return x*x + 3 }
	qi := Interpolate(f(-1), f(0), f(1))

	assert.Equal(t, 0, qi.NumRoots)
	assert.InDelta(t, 3.0, qi.Ye, 0.001)
	assert.False(t, qi.Maximum)
}

func TestInterpolate_Vertex(t *testing.T) {
	// f(x) = -(x-0.2)² + 1: maximum at x=0.2, value 1.
	f := func(x float64) float64 { return -(x-0.2)*(x-0.2) + 1 }
	qi := Interpolate(f(-1), f(0), f(1))

	assert.True(t, qi.Maximum)
	assert.InDelta(t, 0.2, qi.Xe, 0.001)
	assert.InDelta(t, 1.0, qi.Ye, 0.001)
}

func TestInterpolate_SingleRootRelabeling(t *testing.T) {
	// f(x) = (x+1.5)(x-0.5): the lower root is left of the window, so
	// Root1 must carry the in-window root after relabeling.
	f := func(x float64) float64 { return (x + 1.5) * (x - 0.5) }
	qi := Interpolate(f(-1), f(0), f(1))

	require.Equal(t, 1, qi.NumRoots)
	assert.InDelta(t, 0.5, qi.Root1, 0.001)
}
