// SPDX-License-Identifier: MIT

// Package matrix - logical comparisons across layouts.
//
// Both helpers compare by (row, col), never by raw buffer, so a row-major and
// a column-major matrix holding the same logical values compare equal.

package matrix

import "math"

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN != anything; +Inf equals +Inf; -Inf equals -Inf.
//
// Policy:
//   - a and b must be non-nil and have identical shapes; layouts may differ.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances are rejected.
//
// Complexity: Time O(r*c), Space O(1).
func AllClose(a, b *Dense, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	// Same layout: a single flat walk visits the same logical cells.
	if a.layout == b.layout {
		for k, av := range a.data {
			if !closeTo(av, b.data[k], rtol, atol) {
				return false, nil
			}
		}

		return true, nil
	}

	var i, j int
	for i = 0; i < a.r; i++ {
		for j = 0; j < a.c; j++ {
			if !closeTo(a.At(i, j), b.At(i, j), rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}

// closeTo is the scalar predicate behind AllClose.
func closeTo(av, bv, rtol, atol float64) bool {
	if av == bv { // covers ±Inf == ±Inf
		return true
	}

	return math.Abs(av-bv) <= atol+rtol*math.Abs(bv)
}

// Equal reports exact logical equality of a and b (same shape, same values).
// Errors: ErrNilMatrix.
func Equal(a, b *Dense) (bool, error) {
	if err := ValidateNotNil(a, b); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if a.r != b.r || a.c != b.c {
		return false, nil
	}
	var i, j int
	for i = 0; i < a.r; i++ {
		for j = 0; j < a.c; j++ {
			if a.At(i, j) != b.At(i, j) {
				return false, nil
			}
		}
	}

	return true, nil
}
