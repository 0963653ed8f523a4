// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvfit/matrix"
)

// TestValidateRHS covers nil inputs, layout and row-count mismatches.
func TestValidateRHS(t *testing.T) {
	t.Parallel()

	a := mustDense(t, 3, 3, matrix.ColMajor)
	tests := []struct {
		name    string
		a, b    *matrix.Dense
		wantErr error
	}{
		{"nil rhs", a, nil, matrix.ErrNilMatrix},
		{"ok", a, mustDense(t, 3, 2, matrix.ColMajor), nil},
		{"layout mismatch", a, mustDense(t, 3, 1, matrix.RowMajor), matrix.ErrLayoutMismatch},
		{"row mismatch", a, mustDense(t, 2, 1, matrix.ColMajor), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateRHS(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.Truef(t, errors.Is(err, tc.wantErr),
					"expected errors.Is(%v, %v)", err, tc.wantErr)
			}
		})
	}
}

// TestValidateSquare covers nil inputs, square and non-square cases.
func TestValidateSquare(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, matrix.ValidateSquare(nil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateSquare(mustDense(t, 0, 0, matrix.RowMajor)))
	require.NoError(t, matrix.ValidateSquare(mustDense(t, 4, 4, matrix.RowMajor)))
	require.ErrorIs(t, matrix.ValidateSquare(mustDense(t, 3, 4, matrix.RowMajor)), matrix.ErrNonSquare)
}

func TestValidateMiscellaneous(t *testing.T) {
	t.Parallel()

	a := mustDense(t, 2, 3, matrix.RowMajor)
	require.NoError(t, matrix.ValidateSameShape(a, a.ToLayout(matrix.ColMajor)))
	require.ErrorIs(t, matrix.ValidateSameShape(a, mustDense(t, 3, 2, matrix.RowMajor)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateSameLayout(a, a.ToLayout(matrix.ColMajor)), matrix.ErrLayoutMismatch)
	require.NoError(t, matrix.ValidateMulCompatible(a, mustDense(t, 3, 1, matrix.RowMajor)))
	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
}
