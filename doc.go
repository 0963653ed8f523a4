// Package lvfit is a small dense linear-algebra toolkit built around one
// idea: a matrix whose storage order is chosen once and honoured everywhere
// its buffer goes.
//
// Layout:
//
//	matrix/     Dense: owned float64 buffer, row- or column-major, value semantics
//	lapack/     Solver: LU solve, SVD, least squares (gonum and native backends)
//	polyfit/    Fit / FitIntervals / Fitter: least-squares polynomial fits
//	cmd/lvfit/  command-line front end
//
// Quick example:
//
//	a, _ := matrix.NewDenseFrom(3, 3, matrix.ColMajor, []float64{3, 5, 2, 2, 1, 3, 4, 3, 2})
//	b, _ := matrix.NewDenseFrom(3, 1, matrix.ColMajor, []float64{57, 22, 41})
//	_ = lapack.Default().Solve(a, b) // b now holds [2 9 3]
//
//	go get github.com/katalvlaran/lvfit
package lvfit
