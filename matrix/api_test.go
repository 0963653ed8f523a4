// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvfit/matrix"
)

func TestNewIdentity(t *testing.T) {
	for _, l := range layouts {
		I, err := matrix.NewIdentity(3, l)
		require.NoError(t, err)
		require.Equal(t, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1}, I.Values())
	}
	_, err := matrix.NewIdentity(-1, matrix.RowMajor)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestNewVectorAndZeros(t *testing.T) {
	v, err := matrix.NewVector([]float64{57, 22, 41}, matrix.ColMajor)
	require.NoError(t, err)
	require.Equal(t, 3, v.Rows())
	require.Equal(t, 1, v.Cols())
	require.Equal(t, 3, v.LeadingDim())
	require.Equal(t, 22.0, v.At(1, 0))

	z, err := matrix.NewZeros(2, 2, matrix.RowMajor)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0, 0, 0}, z.Values())
}

func TestFromRows(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{1, 2}, {3, 4}, {5, 6}}, matrix.ColMajor)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 3, 5, 2, 4, 6}, m.RawData())

	_, err = matrix.FromRows([][]float64{{1, 2}, {3}}, matrix.RowMajor)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	empty, err := matrix.FromRows(nil, matrix.RowMajor)
	require.NoError(t, err)
	require.True(t, empty.IsEmpty())
}

func TestMulMixedLayouts(t *testing.T) {
	a := mustFrom(t, 2, 3, matrix.RowMajor, []float64{1, 2, 3, 4, 5, 6})
	b := mustFrom(t, 3, 2, matrix.ColMajor, []float64{7, 8, 9, 10, 11, 12})

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, matrix.RowMajor, got.Layout())
	require.Equal(t, []float64{58, 64, 139, 154}, got.Values())

	_, err = matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
