// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels and the solver backends minimal by delegating shape/nil/layout
//    checks here.
//
// Determinism & Performance:
//  - All checks are pure, O(1) and allocate nothing.
//
// Note:
//  - Composite validators follow a fixed sequence: NotNil → Layout → Shape.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures every given matrix reference is non-nil.
// Complexity: O(len(ms)).
func ValidateNotNil(ms ...*Dense) error {
	for _, m := range ms {
		if m == nil {
			return validatorErrorf("ValidateNotNil", ErrNilMatrix)
		}
	}

	return nil
}

// ValidateSquare checks that m is non-nil and Rows == Cols.
func ValidateSquare(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", fmt.Errorf("%dx%d: %w", m.r, m.c, ErrNonSquare))
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
func ValidateSameShape(a, b *Dense) error {
	if err := ValidateNotNil(a, b); err != nil {
		return err
	}
	if a.r != b.r || a.c != b.c {
		return validatorErrorf("ValidateSameShape", fmt.Errorf("%dx%d vs %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch))
	}

	return nil
}

// ValidateSameLayout ensures a and b share a storage order, as required when
// both buffers are handed to one external routine call.
func ValidateSameLayout(a, b *Dense) error {
	if err := ValidateNotNil(a, b); err != nil {
		return err
	}
	if a.layout != b.layout {
		return validatorErrorf("ValidateSameLayout", fmt.Errorf("%s vs %s: %w", a.layout, b.layout, ErrLayoutMismatch))
	}

	return nil
}

// ValidateRHS checks a right-hand side for the system a·X = b:
// same layout and b.Rows() == a.Rows().
func ValidateRHS(a, b *Dense) error {
	if err := ValidateSameLayout(a, b); err != nil {
		return err
	}
	if b.r != a.r {
		return validatorErrorf("ValidateRHS", fmt.Errorf("rhs has %d rows, want %d: %w", b.r, a.r, ErrDimensionMismatch))
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows.
func ValidateMulCompatible(a, b *Dense) error {
	if err := ValidateNotNil(a, b); err != nil {
		return err
	}
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible", fmt.Errorf("%dx%d · %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch))
	}

	return nil
}

// ValidateVecLen ensures len(x) == n.
func ValidateVecLen(x []float64, n int) error {
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", fmt.Errorf("len %d, want %d: %w", len(x), n, ErrDimensionMismatch))
	}

	return nil
}
