// SPDX-License-Identifier: MIT

// Package polyfit - single least-squares fit.
//
// Purpose:
//   - Build the (order+1)×(order+1) normal-equations system from power sums.
//   - Solve it through an injected lapack.Solver and return coefficients in
//     descending degree (highest power first, as numpy.poly1d expects).
//
// Numeric policy:
//   - Powers via math.Pow; plain summation in i→j→k order, no compensation.
//     The accumulation order is part of the contract: Fitter reproduces it
//     bit for bit.

package polyfit

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/lvfit/matrix"
)

// NormalEquations builds the least-squares system M·c = R for a polynomial of
// the given order:
//
//	M[i][j] = Σ_k xs[k]^(i+j),  R[j] = Σ_k xs[k]^j · ys[k],  i,j ∈ [0, order].
//
// M is (order+1)×(order+1), R is (order+1)×1, both in the given layout.
//
// Errors:
//   - ErrDimensionMismatch when len(xs) != len(ys).
//   - ErrInvalidOrder when order < 0.
//
// Complexity: Time O(order^2 * n), Space O(order^2).
func NormalEquations(xs, ys []float64, order int, layout matrix.Layout) (*matrix.Dense, *matrix.Dense, error) {
	if err := validateSamples(xs, ys, order); err != nil {
		return nil, nil, polyErrorf(opNormal, err)
	}
	n := order + 1

	lhs, err := matrix.NewDense(n, n, layout)
	if err != nil {
		return nil, nil, polyErrorf(opNormal, err)
	}
	rhs, err := matrix.NewDense(n, 1, layout)
	if err != nil {
		return nil, nil, polyErrorf(opNormal, err)
	}

	var i, j, k int
	var val float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			val = 0
			for k = 0; k < len(xs); k++ {
				val += math.Pow(xs[k], float64(i+j))
			}
			lhs.Set(i, j, val)
		}
	}
	for j = 0; j < n; j++ {
		val = 0
		for k = 0; k < len(ys); k++ {
			val += math.Pow(xs[k], float64(j)) * ys[k]
		}
		rhs.Set(j, 0, val)
	}

	return lhs, rhs, nil
}

// Fit returns the least-squares polynomial of the given order through the
// point cloud (xs, ys), coefficients ordered highest degree first.
// Implementation:
//   - Stage 1: validate lengths and order (before any computation).
//   - Stage 2: build M and R (NormalEquations) in the configured layout.
//   - Stage 3: solve M·c = R with the configured solver.
//   - Stage 4: reverse c (ascending → descending degree).
//
// Errors:
//   - ErrDimensionMismatch, ErrInvalidOrder.
//   - lapack.ErrSolverFailure (as *lapack.SolverError) for a singular system,
//     e.g. fewer distinct xs than order+1.
func Fit(xs, ys []float64, order int, opts ...Option) ([]float64, error) {
	o := gatherOptions(opts...)
	coeffs, err := fit(xs, ys, order, o)
	if err != nil {
		return nil, polyErrorf(opFit, err)
	}

	return coeffs, nil
}

// fit is Fit with resolved options; FitIntervals calls it per interval.
func fit(xs, ys []float64, order int, o Options) ([]float64, error) {
	lhs, rhs, err := NormalEquations(xs, ys, order, o.layout)
	if err != nil {
		return nil, err
	}
	if err = o.solver.Solve(lhs, rhs); err != nil {
		return nil, err
	}
	coeffs := rhs.Values()
	slices.Reverse(coeffs)

	o.logger.Debug("polyfit: fitted",
		"samples", len(xs),
		"order", order,
		"layout", o.layout.String(),
		"solver", o.solver.Name(),
	)

	return coeffs, nil
}

// validateSamples checks the preconditions shared by every entry point.
func validateSamples(xs, ys []float64, order int) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("len(xs)=%d, len(ys)=%d: %w", len(xs), len(ys), ErrDimensionMismatch)
	}
	if order < 0 {
		return fmt.Errorf("order %d: %w", order, ErrInvalidOrder)
	}

	return nil
}
