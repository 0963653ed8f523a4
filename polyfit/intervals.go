// SPDX-License-Identifier: MIT

// Package polyfit - batched fits over unit x-intervals.

package polyfit

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/lvfit/matrix"
)

// MaxIntervals bounds the number of unit intervals FitIntervals will allocate.
const MaxIntervals = 1 << 24

// FitIntervals fits one polynomial per unit interval of x and returns them as
// the rows of an nIntervals×(order+1) matrix (configured layout), each row in
// descending degree.
//
// Partitioning:
//   - xmin = floor(min(xs)), xmax = ceil(max(xs)), nIntervals = xmax − xmin.
//   - Row k covers [xmin+k, xmin+k+1). The last row takes every sample the
//     scan has not consumed yet, so x == xmax lands there, and in lax mode so
//     does any unsorted tail.
//   - Groups are cut by one forward scan over xs in index order: a new group
//     starts every time xs[i] >= the current upper bound. This assumes xs is
//     sorted ascending. Unsorted input is not an error by default; it is
//     grouped by the same scan, which then no longer matches value ranges.
//     WithStrictOrder turns it into ErrUnsorted.
//   - Rows whose interval receives no samples stay zero.
//
// Errors:
//   - ErrDimensionMismatch, ErrInvalidOrder, ErrEmptyInput, ErrNonFinite,
//     ErrUnsorted (strict mode only).
//   - ErrRangeTooLarge when ceil(max)-floor(min) exceeds MaxIntervals.
//   - *IntervalError wrapping the sub-fit failure (e.g. lapack.ErrSolverFailure
//     when an interval has fewer distinct xs than order+1).
//
// Complexity: Time O(order^2 * n + order^3 * nIntervals), Space O(nIntervals*order).
func FitIntervals(xs, ys []float64, order int, opts ...Option) (*matrix.Dense, error) {
	o := gatherOptions(opts...)
	if err := validateSamples(xs, ys, order); err != nil {
		return nil, polyErrorf(opFitIntervals, err)
	}
	if len(xs) == 0 {
		return nil, polyErrorf(opFitIntervals, ErrEmptyInput)
	}
	for i, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, polyErrorf(opFitIntervals, fmt.Errorf("xs[%d]=%g: %w", i, x, ErrNonFinite))
		}
	}
	if o.strictOrder {
		if i := firstDescent(xs); i >= 0 {
			return nil, polyErrorf(opFitIntervals, fmt.Errorf("xs[%d]=%g < xs[%d]=%g: %w", i, xs[i], i-1, xs[i-1], ErrUnsorted))
		}
	}

	xmin := math.Floor(slices.Min(xs))
	xmax := math.Ceil(slices.Max(xs))
	if span := xmax - xmin; span > MaxIntervals {
		return nil, polyErrorf(opFitIntervals, fmt.Errorf("[%g, %g] is %g intervals, limit %d: %w", xmin, xmax, span, MaxIntervals, ErrRangeTooLarge))
	}
	nIntervals := int(xmax - xmin)

	out, err := matrix.NewDense(nIntervals, order+1, o.layout)
	if err != nil {
		return nil, polyErrorf(opFitIntervals, err)
	}
	if nIntervals == 0 {
		o.logger.Warn("polyfit: all samples share one integer x; no interval to fit",
			"x", xmin, "samples", len(xs))

		return out, nil
	}

	var it, start, stop, j int
	var lower, upper float64
	for it = 0; it < nIntervals; it++ {
		lower = xmin + float64(it)
		upper = lower + 1
		stop = start
		if it == nIntervals-1 {
			stop = len(xs) // everything left, including x == xmax
		} else {
			for stop < len(xs) && xs[stop] < upper {
				stop++
			}
		}

		if stop > start {
			coeffs, ferr := fit(xs[start:stop], ys[start:stop], order, o)
			if ferr != nil {
				return nil, polyErrorf(opFitIntervals, &IntervalError{
					Index: it, Lower: lower, Upper: upper, Samples: stop - start, Err: ferr,
				})
			}
			for j = range coeffs {
				out.Set(it, j, coeffs[j])
			}
		} else {
			o.logger.Debug("polyfit: empty interval", "index", it, "lower", lower, "upper", upper)
		}

		start = stop
	}

	return out, nil
}

// firstDescent returns the first index i with xs[i] < xs[i-1], or -1.
func firstDescent(xs []float64) int {
	for i := 1; i < len(xs); i++ {
		if xs[i] < xs[i-1] {
			return i
		}
	}

	return -1
}
