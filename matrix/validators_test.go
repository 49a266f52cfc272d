package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/engmath/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidateSystem_Priority(t *testing.T) {
	sq := MustDense(t, 2, 2)

	require.NoError(t, matrix.ValidateSystem(sq, []float64{1, 2}))
	require.ErrorIs(t, matrix.ValidateSystem(nil, nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateSystem(MustDense(t, 1, 2), nil), matrix.ErrNonSquare)
	require.ErrorIs(t, matrix.ValidateSystem(sq, []float64{1}), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateSystem(sq, []float64{1, math.Inf(-1)}), matrix.ErrNaNInf)
}

func TestValidateMulCompatible(t *testing.T) {
	require.NoError(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), MustDense(t, 3, 4)))
	require.ErrorIs(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), MustDense(t, 2, 3)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), nil), matrix.ErrNilMatrix)
}

func TestValidateFiniteVec(t *testing.T) {
	require.NoError(t, matrix.ValidateFiniteVec([]float64{0, -1, 1e300}))
	require.ErrorIs(t, matrix.ValidateFiniteVec([]float64{0, math.NaN()}), matrix.ErrNaNInf)
}
