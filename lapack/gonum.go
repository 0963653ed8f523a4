// SPDX-License-Identifier: MIT

// Package lapack - gonum backend.
//
// gonum's lapack64 works on row-major blas64.General values (Stride = leading
// dimension = number of columns). Column-major inputs are therefore staged
// into a row-major copy, solved there and written back in the caller's
// layout; row-major inputs are handed over without copying. This mirrors
// LAPACKE's row-major entry points, which transpose for the Fortran core.

package lapack

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack"
	"gonum.org/v1/gonum/lapack/lapack64"

	"github.com/katalvlaran/lvfit/matrix"
)

// Gonum solves through gonum.org/v1/gonum/lapack/lapack64.
// The zero value is ready to use.
type Gonum struct{}

var _ Solver = Gonum{}

// Name implements Solver.
func (Gonum) Name() string { return NameGonum }

// rowMajor returns m itself when it is already row-major, otherwise a staged
// row-major copy. staged reports whether a copy was made.
func rowMajor(m *matrix.Dense) (rm *matrix.Dense, staged bool) {
	if m.Layout() == matrix.RowMajor {
		return m, false
	}

	return m.ToLayout(matrix.RowMajor), true
}

// general describes a row-major Dense as a blas64.General without copying.
func general(m *matrix.Dense) blas64.General {
	r, c := m.Shape()

	return blas64.General{
		Rows:   r,
		Cols:   c,
		Stride: m.LeadingDim(),
		Data:   m.RawData(),
	}
}

// Solve implements Solver with dgetrf + dgetrs.
// Implementation:
//   - Stage 1: validate shape/layout; n == 0 is a no-op.
//   - Stage 2: stage column-major operands into row-major copies.
//   - Stage 3: factor (Getrf); a zero pivot yields *SolverError{dgetrf, info}.
//   - Stage 4: back-solve (Getrs) and write factors and solution back.
//
// Complexity: Time O(n^3 + n^2*nrhs); Space O(n^2 + n*nrhs) when staging.
func (g Gonum) Solve(a, b *matrix.Dense) error {
	if err := validateSolve(a, b); err != nil {
		return lapackErrorf(NameGonum, opSolve, err)
	}
	n := a.Rows()
	if n == 0 || b.Cols() == 0 {
		return nil
	}

	ra, stagedA := rowMajor(a)
	rb, stagedB := rowMajor(b)
	ipiv := make([]int, n)

	ok := lapack64.Getrf(general(ra), ipiv)
	if stagedA {
		assignLogical(a, ra)
	}
	if !ok {
		return lapackErrorf(NameGonum, opSolve, &SolverError{Routine: routineGetrf, Status: firstZeroPivot(ra)})
	}

	lapack64.Getrs(blas.NoTrans, general(ra), general(rb), ipiv)
	if stagedB {
		assignLogical(b, rb)
	}

	return nil
}

// SVD implements Solver with dgesvd (jobu = jobvt = 'A').
// The input is always copied because dgesvd destroys it.
func (g Gonum) SVD(a *matrix.Dense) (*SVDResult, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, lapackErrorf(NameGonum, opSVD, err)
	}
	m, n := a.Shape()
	layout := a.Layout()

	ra := a.ToLayout(matrix.RowMajor)
	u, err := matrix.NewDense(m, m, matrix.RowMajor)
	if err != nil {
		return nil, lapackErrorf(NameGonum, opSVD, err)
	}
	vt, err := matrix.NewDense(n, n, matrix.RowMajor)
	if err != nil {
		return nil, lapackErrorf(NameGonum, opSVD, err)
	}
	s := make([]float64, min(m, n))

	if m > 0 && n > 0 {
		// Workspace query, then the real call.
		work := make([]float64, 1)
		lapack64.Gesvd(lapack.SVDAll, lapack.SVDAll, general(ra), general(u), general(vt), s, work, -1)
		work = make([]float64, int(work[0]))
		if ok := lapack64.Gesvd(lapack.SVDAll, lapack.SVDAll, general(ra), general(u), general(vt), s, work, len(work)); !ok {
			return nil, lapackErrorf(NameGonum, opSVD, &SolverError{Routine: routineGesvd, Status: 1})
		}
	}

	return &SVDResult{S: s, U: u.ToLayout(layout), Vt: vt.ToLayout(layout)}, nil
}

// LeastSquares implements Solver with dgels (no transpose).
// B is staged into a max(m,n)×nrhs row-major buffer as dgels requires;
// the first n rows hold the solution.
func (g Gonum) LeastSquares(a, b *matrix.Dense) (*matrix.Dense, error) {
	if err := validateLeastSquares(a, b); err != nil {
		return nil, lapackErrorf(NameGonum, opLeastSquares, err)
	}
	m, n := a.Shape()
	nrhs := b.Cols()
	layout := a.Layout()

	x, err := matrix.NewDense(n, nrhs, layout)
	if err != nil {
		return nil, lapackErrorf(NameGonum, opLeastSquares, err)
	}
	if m == 0 || n == 0 || nrhs == 0 {
		return x, nil
	}

	ra := a.ToLayout(matrix.RowMajor)
	rb, err := matrix.NewDense(max(m, n), nrhs, matrix.RowMajor)
	if err != nil {
		return nil, lapackErrorf(NameGonum, opLeastSquares, err)
	}
	var i, j int
	for i = 0; i < m; i++ {
		for j = 0; j < nrhs; j++ {
			rb.Set(i, j, b.At(i, j))
		}
	}

	work := make([]float64, 1)
	lapack64.Gels(blas.NoTrans, general(ra), general(rb), work, -1)
	work = make([]float64, int(work[0]))
	if ok := lapack64.Gels(blas.NoTrans, general(ra), general(rb), work, len(work)); !ok {
		status := firstZeroPivot(ra)
		if status == 0 {
			status = 1
		}

		return nil, lapackErrorf(NameGonum, opLeastSquares, &SolverError{Routine: routineGels, Status: status})
	}

	for i = 0; i < n; i++ {
		for j = 0; j < nrhs; j++ {
			x.Set(i, j, rb.At(i, j))
		}
	}

	return x, nil
}
