// SPDX-License-Identifier: MIT

// Package polyfit - streaming accumulator.
//
// Fitter keeps only the power sums Σx^p (p ≤ 2·order) and Σx^p·y (p ≤ order),
// so samples can be added one at a time without retaining them. Because every
// cell of the normal matrix depends only on i+j and each sum is accumulated
// in sample order, Solve returns exactly what Fit would for the same samples.

package polyfit

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/lvfit/matrix"
)

// Fitter accumulates samples for a least-squares polynomial of fixed order.
// A Fitter is not safe for concurrent use.
type Fitter struct {
	order  int
	xSums  []float64 // xSums[p] = Σ x^p, p ∈ [0, 2·order]
	xySums []float64 // xySums[p] = Σ x^p · y, p ∈ [0, order]
	n      int
	opts   Options
}

// NewFitter returns an empty Fitter.
// Errors: ErrInvalidOrder when order < 0.
func NewFitter(order int, opts ...Option) (*Fitter, error) {
	if order < 0 {
		return nil, fmt.Errorf("NewFitter: order %d: %w", order, ErrInvalidOrder)
	}

	return &Fitter{
		order:  order,
		xSums:  make([]float64, 2*order+1),
		xySums: make([]float64, order+1),
		opts:   gatherOptions(opts...),
	}, nil
}

// Add accumulates one sample.
func (f *Fitter) Add(x, y float64) {
	for p := range f.xSums {
		f.xSums[p] += math.Pow(x, float64(p))
	}
	for p := range f.xySums {
		f.xySums[p] += math.Pow(x, float64(p)) * y
	}
	f.n++
}

// AddAll accumulates xs[k], ys[k] pairs in index order.
// Errors: ErrDimensionMismatch; nothing is added then.
func (f *Fitter) AddAll(xs, ys []float64) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("Fitter.AddAll: len(xs)=%d, len(ys)=%d: %w", len(xs), len(ys), ErrDimensionMismatch)
	}
	for k := range xs {
		f.Add(xs[k], ys[k])
	}

	return nil
}

// Len returns the number of accumulated samples.
func (f *Fitter) Len() int { return f.n }

// Order returns the polynomial order.
func (f *Fitter) Order() int { return f.order }

// Reset discards all accumulated samples.
func (f *Fitter) Reset() {
	clear(f.xSums)
	clear(f.xySums)
	f.n = 0
}

// Solve returns the coefficients (descending degree) for the samples added
// so far. The accumulator is left untouched, so more samples may follow.
// Errors: lapack.ErrSolverFailure when the system is singular.
func (f *Fitter) Solve() ([]float64, error) {
	n := f.order + 1
	lhs, err := matrix.NewDense(n, n, f.opts.layout)
	if err != nil {
		return nil, polyErrorf(opFitterSolve, err)
	}
	rhs, err := matrix.NewDense(n, 1, f.opts.layout)
	if err != nil {
		return nil, polyErrorf(opFitterSolve, err)
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			lhs.Set(i, j, f.xSums[i+j])
		}
		rhs.Set(i, 0, f.xySums[i])
	}
	if err = f.opts.solver.Solve(lhs, rhs); err != nil {
		return nil, polyErrorf(opFitterSolve, err)
	}
	coeffs := rhs.Values()
	slices.Reverse(coeffs)

	return coeffs, nil
}
