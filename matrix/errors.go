// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Functions return these sentinels (optionally wrapped with an op tag
// via matrixErrorf) and tests check them via errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Wrap with fmt.Errorf("ctx: %w", ErrX) when the
// call site adds context; callers still match with errors.Is.

var (
	// ErrInvalidDimensions is returned when a requested dimension is negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrDimensionMismatch indicates a flat value sequence or operand whose
	// length/shape does not match the expected size.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrOutOfRange indicates that an index (row or column) is outside valid
	// bounds. Only the checked accessors report it; At/Set are unchecked.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrLayoutMismatch signals two operands with different storage orders
	// where the operation requires the same physical layout.
	ErrLayoutMismatch = errors.New("matrix: storage layout mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil *Dense was passed.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrUnknownLayout is returned for a Layout value or name that is neither
	// row-major nor column-major.
	ErrUnknownLayout = errors.New("matrix: unknown storage layout")

	// ErrNaNInf signals a NaN or ±Inf tolerance passed to AllClose.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)

// Operation tags for matrixErrorf (no magic strings at call sites).
const (
	opNewDense     = "NewDense"
	opNewDenseFrom = "NewDenseFrom"
	opSetValues    = "SetValues"
	opCopyFrom     = "CopyFrom"
	opMoveFrom     = "MoveFrom"
	opAllClose     = "AllClose"
	opEqual        = "Equal"
	opIdentity     = "NewIdentity"
	opFromRows     = "FromRows"
	opMul          = "Mul"
)

// matrixErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Callers gate it with err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}
