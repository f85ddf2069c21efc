package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hclust/matrix"
)

func TestValidateSquare(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateSquare(nil), matrix.ErrNilMatrix)

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.ErrorIs(t, matrix.ValidateSquare(rect), matrix.ErrNonSquare)

	sq, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateSquare(sq))
}

func TestValidateSymmetric(t *testing.T) {
	m, err := matrix.NewFromRows([][]float64{
		{0, 1, 2},
		{1, 0, 3},
		{2, 3.0000001, 0},
	})
	require.NoError(t, err)

	require.ErrorIs(t, matrix.ValidateSymmetric(m, 1e-9), matrix.ErrAsymmetry)
	require.NoError(t, matrix.ValidateSymmetric(m, 1e-6))
	require.NoError(t, matrix.ValidateSymmetric(m, -1e-6)) // folded to |tol|
	require.ErrorIs(t, matrix.ValidateSymmetric(m, math.NaN()), matrix.ErrNaNInf)

	rect, err := matrix.NewDense(2, 1)
	require.NoError(t, err)
	require.ErrorIs(t, matrix.ValidateSymmetric(rect, 0), matrix.ErrNonSquare)
}

func TestValidateZeroDiagonal(t *testing.T) {
	m, err := matrix.NewFromRows([][]float64{{0, 1}, {1, 0.5}})
	require.NoError(t, err)
	require.ErrorIs(t, matrix.ValidateZeroDiagonal(m, 1e-9), matrix.ErrNonZeroDiagonal)

	require.NoError(t, m.Set(1, 1, 0))
	require.NoError(t, matrix.ValidateZeroDiagonal(m, 1e-9))
	require.ErrorIs(t, matrix.ValidateZeroDiagonal(nil, 0), matrix.ErrNilMatrix)
}
