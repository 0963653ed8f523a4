// Package polyfit computes least-squares polynomial fits through the normal
// equations, solved by a pluggable lapack.Solver.
//
//   - Fit:          one polynomial through a point cloud.
//   - FitIntervals: one polynomial per unit x-interval of sorted samples,
//     stacked as the rows of a matrix.Dense.
//   - Fitter:       streaming accumulation of the same power sums.
//   - Poly:         descending-degree coefficients with Horner evaluation.
//
// Coefficients are always highest degree first:
//
//	c, _ := polyfit.Fit([]float64{0, 1, 2, 3}, []float64{2, 4, 8, 14}, 2)
//	// c ≈ [1 1 2], i.e. x² + x + 2
//
// Configuration is by functional options (WithSolver, WithLayout, WithLogger,
// WithStrictOrder); the zero configuration uses the gonum backend, row-major
// storage and a silent logger.
package polyfit
