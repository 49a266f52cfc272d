package electromagnetism_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/engmath/electromagnetism"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoulombsLaw(t *testing.T) {
	f, err := electromagnetism.CoulombsLaw(1, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, electromagnetism.CoulombConstant, f)

	// opposite charges attract; doubling distance quarters the force
	near, err := electromagnetism.CoulombsLaw(1e-6, -2e-6, 0.1)
	require.NoError(t, err)
	far, err := electromagnetism.CoulombsLaw(1e-6, -2e-6, 0.2)
	require.NoError(t, err)
	assert.Less(t, near, 0.0)
	assert.InEpsilon(t, 4.0, near/far, 1e-12)
	assert.InDelta(t, -1.79751035846, near, 1e-9)
}

func TestCoulombsLaw_InvalidDistance(t *testing.T) {
	for _, d := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := electromagnetism.CoulombsLaw(1, 1, d)
		assert.ErrorIs(t, err, electromagnetism.ErrNonPositiveDistance, "distance=%g", d)
	}
}

func TestFaradaysLaw(t *testing.T) {
	emf, err := electromagnetism.FaradaysLaw(0.5, 0.1)
	require.NoError(t, err)
	assert.InDelta(t, -5.0, emf, 1e-12)

	_, err = electromagnetism.FaradaysLaw(0.5, 0)
	require.ErrorIs(t, err, electromagnetism.ErrNonPositiveInterval)
	_, err = electromagnetism.FaradaysLaw(0.5, -0.1)
	require.ErrorIs(t, err, electromagnetism.ErrNonPositiveInterval)
}
