package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPegasus_FindsBothRoots(t *testing.T) {
	f := func(x float64) float64 { return x*x + 2*x - 3 }

	root, err := Pegasus(0, 2, 1e-6, f)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, root, 1e-5)

	root, err = Pegasus(-5, -2, 1e-6, f)
	require.NoError(t, err)
	assert.InDelta(t, -3.0, root, 1e-5)
}

func TestPegasus_NoSignChange(t *testing.T) {
	f := func(x float64) float64 { return x*x + 3 }

	_, err := Pegasus(-1, 1, 1e-6, f)
	assert.ErrorIs(t, err, ErrNoSignChange)
}

func TestPegasus_TightBracket(t *testing.T) {
	// A bracket already narrower than the accuracy still converges.
	f := func(x float64) float64 { return x }
	root, err := Pegasus(-1e-9, 1e-9, 1e-6, f)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, root, 1e-6)
}
