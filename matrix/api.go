// SPDX-License-Identifier: MIT
// Package matrix - constructors and small compositions over Dense.
//
// Purpose:
//   - Thin, intention-revealing entry points (NewZeros, NewIdentity, FromRows).
//   - Mul for checks that need a product (residuals, SVD reconstruction).
//
// Determinism & Policy:
//   - Fixed i→k→j loop orders; layouts of the result follow the left operand.

package matrix

import "fmt"

// NewZeros returns a rows×cols zero matrix. Alias of NewDense.
func NewZeros(rows, cols int, layout Layout) (*Dense, error) {
	return NewDense(rows, cols, layout)
}

// NewIdentity returns I_n in the given layout.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int, layout Layout) (*Dense, error) {
	I, err := NewDense(n, n, layout)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		I.Set(i, i, 1.0)
	}

	return I, nil
}

// NewVector returns an n×1 column vector holding a copy of values.
func NewVector(values []float64, layout Layout) (*Dense, error) {
	return NewDenseFrom(len(values), 1, layout, values)
}

// FromRows builds a matrix from a slice of equally long rows.
// Errors: ErrDimensionMismatch on a ragged input.
func FromRows(rows [][]float64, layout Layout) (*Dense, error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	m, err := NewDense(r, c, layout)
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	for i, row := range rows {
		if len(row) != c {
			return nil, matrixErrorf(opFromRows, fmt.Errorf("row %d has %d values, want %d: %w", i, len(row), c, ErrDimensionMismatch))
		}
		for j, v := range row {
			m.Set(i, j, v)
		}
	}

	return m, nil
}

// Mul returns a×b in a's layout.
// Implementation:
//   - Stage 1: validate non-nil operands and a.Cols == b.Rows.
//   - Stage 2: i→k→j accumulation through the layout-aware accessors, so
//     operands of different layouts multiply correctly.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*n*c), Space O(r*c).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	out, err := NewDense(a.r, b.c, a.layout)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var i, j, k int
	var aik float64
	for i = 0; i < a.r; i++ {
		for k = 0; k < a.c; k++ {
			aik = a.At(i, k)
			for j = 0; j < b.c; j++ {
				out.Set(i, j, out.At(i, j)+aik*b.At(k, j))
			}
		}
	}

	return out, nil
}
