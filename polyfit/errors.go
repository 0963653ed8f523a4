// SPDX-License-Identifier: MIT
// Package polyfit: sentinel errors and the per-interval error wrapper.

package polyfit

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvfit/matrix"
)

var (
	// ErrDimensionMismatch is returned when xs and ys differ in length.
	// It is the matrix sentinel, so errors.Is matches either name.
	ErrDimensionMismatch = matrix.ErrDimensionMismatch

	// ErrInvalidOrder is returned for a negative polynomial order.
	ErrInvalidOrder = errors.New("polyfit: order must be >= 0")

	// ErrEmptyInput is returned by FitIntervals when there are no samples.
	ErrEmptyInput = errors.New("polyfit: no samples")

	// ErrNonFinite is returned by FitIntervals when an x is NaN or ±Inf.
	ErrNonFinite = errors.New("polyfit: non-finite x coordinate")

	// ErrRangeTooLarge is returned by FitIntervals when the x-range spans more
	// than MaxIntervals unit intervals.
	ErrRangeTooLarge = errors.New("polyfit: x range spans too many intervals")

	// ErrUnsorted is returned under WithStrictOrder when xs is not ascending.
	ErrUnsorted = errors.New("polyfit: x coordinates not sorted ascending")
)

// Operation tags.
const (
	opFit          = "Fit"
	opFitIntervals = "FitIntervals"
	opNormal       = "NormalEquations"
	opResiduals    = "Residuals"
	opFitterSolve  = "Fitter.Solve"
)

// polyErrorf wraps err with an operation tag.
func polyErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// IntervalError reports which unit interval of FitIntervals failed.
type IntervalError struct {
	Index        int     // row in the result matrix
	Lower, Upper float64 // interval [Lower, Upper)
	Samples      int     // number of samples in the interval
	Err          error
}

// Error implements error.
func (e *IntervalError) Error() string {
	return fmt.Sprintf("polyfit: interval %d [%g, %g) with %d samples: %v", e.Index, e.Lower, e.Upper, e.Samples, e.Err)
}

// Unwrap exposes the sub-fit error to errors.Is / errors.As.
func (e *IntervalError) Unwrap() error { return e.Err }
