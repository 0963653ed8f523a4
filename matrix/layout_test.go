// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvfit/matrix"
)

func TestLayoutString(t *testing.T) {
	require.Equal(t, "row", matrix.RowMajor.String())
	require.Equal(t, "col", matrix.ColMajor.String())
	require.Equal(t, "Layout(7)", matrix.Layout(7).String())
	require.False(t, matrix.Layout(7).Valid())
	require.Equal(t, matrix.RowMajor, matrix.DefaultLayout)
}

func TestParseLayout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want matrix.Layout
	}{
		{"row", matrix.RowMajor},
		{"Row-Major", matrix.RowMajor},
		{" c ", matrix.RowMajor},
		{"col", matrix.ColMajor},
		{"column-major", matrix.ColMajor},
		{"F", matrix.ColMajor},
	}
	for _, tc := range tests {
		got, err := matrix.ParseLayout(tc.in)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, got, tc.in)
	}

	_, err := matrix.ParseLayout("diagonal")
	require.ErrorIs(t, err, matrix.ErrUnknownLayout)
}

// TestLayoutOffsets pins the physical position of every logical cell.
func TestLayoutOffsets(t *testing.T) {
	vals := []float64{1, 2, 3, 4, 5, 6} // 2×3, logical row-major

	rm := mustFrom(t, 2, 3, matrix.RowMajor, vals)
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6}, rm.RawData())
	require.Equal(t, 3, rm.LeadingDim())

	cm := mustFrom(t, 2, 3, matrix.ColMajor, vals)
	require.Equal(t, []float64{1, 4, 2, 5, 3, 6}, cm.RawData())
	require.Equal(t, 2, cm.LeadingDim())

	// row + col*rows for column-major, row*cols + col for row-major.
	var i, j int
	for i = 0; i < 2; i++ {
		for j = 0; j < 3; j++ {
			require.Equal(t, cm.RawData()[i+j*2], cm.At(i, j))
			require.Equal(t, rm.RawData()[i*3+j], rm.At(i, j))
		}
	}
}
