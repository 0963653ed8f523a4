// SPDX-License-Identifier: MIT

// Package lapack - native backend.
//
// Native factors in place through matrix.Dense's layout-aware accessors, so a
// column-major and a row-major operand are both solved without transposition.
// LU uses partial (row) pivoting with the dgetf2 update order; least squares
// uses Householder reflections. SVD is delegated to the gonum backend.

package lapack

import (
	"math"

	"github.com/katalvlaran/lvfit/matrix"
)

// ZeroPivot is the exact-zero sentinel for singular pivots.
const ZeroPivot = 0.0

// Native is a pure-Go, layout-agnostic backend. The zero value is ready to use.
type Native struct{}

var _ Solver = Native{}

// Name implements Solver.
func (Native) Name() string { return NameNative }

// Solve implements Solver: getrf (partial pivoting) then getrs, in place.
// Complexity: Time O(n^3 + n^2*nrhs), Space O(n) for the pivot vector.
func (s Native) Solve(a, b *matrix.Dense) error {
	if err := validateSolve(a, b); err != nil {
		return lapackErrorf(NameNative, opSolve, err)
	}
	if a.Rows() == 0 || b.Cols() == 0 {
		return nil
	}

	ipiv, info := getrf(a)
	if info != 0 {
		return lapackErrorf(NameNative, opSolve, &SolverError{Routine: routineGetrf, Status: info})
	}
	getrs(a, ipiv, b)

	return nil
}

// SVD implements Solver by delegating to Gonum.
func (s Native) SVD(a *matrix.Dense) (*SVDResult, error) {
	return Gonum{}.SVD(a)
}

// LeastSquares implements Solver. Overdetermined and square systems (m >= n)
// are solved by Householder QR; underdetermined ones are delegated to Gonum
// (minimum-norm solution).
func (s Native) LeastSquares(a, b *matrix.Dense) (*matrix.Dense, error) {
	if err := validateLeastSquares(a, b); err != nil {
		return nil, lapackErrorf(NameNative, opLeastSquares, err)
	}
	m, n := a.Shape()
	if m < n {
		return Gonum{}.LeastSquares(a, b)
	}
	x, info := householderSolve(a, b)
	if info != 0 {
		return nil, lapackErrorf(NameNative, opLeastSquares, &SolverError{Routine: routineGels, Status: info})
	}

	return x, nil
}

// getrf factors the square matrix a in place as P·A = L·U (unit L below the
// diagonal, U on and above it) and returns the 0-based pivot rows and the
// LAPACK info value.
// Implementation:
//   - Stage 1: for column k pick the row p ≥ k with the largest |a[p,k]|.
//   - Stage 2: exact zero pivot → record info = k+1 (first one only), skip.
//   - Stage 3: swap rows k and p, scale the column below the pivot.
//   - Stage 4: rank-1 update of the trailing submatrix.
//
// Complexity: Time O(n^3), Space O(n).
func getrf(a *matrix.Dense) (ipiv []int, info int) {
	n := a.Rows()
	ipiv = make([]int, n)

	var i, j, k, p int
	var pivot, best, v, lik float64
	for k = 0; k < n; k++ {
		p, best = k, math.Abs(a.At(k, k))
		for i = k + 1; i < n; i++ {
			if v = math.Abs(a.At(i, k)); v > best {
				p, best = i, v
			}
		}
		ipiv[k] = p

		if a.At(p, k) == ZeroPivot {
			if info == 0 {
				info = k + 1
			}
			continue
		}
		if p != k {
			swapRows(a, k, p)
		}

		pivot = a.At(k, k)
		for i = k + 1; i < n; i++ {
			a.Set(i, k, a.At(i, k)/pivot)
		}
		for i = k + 1; i < n; i++ {
			lik = a.At(i, k)
			if lik == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				a.Set(i, j, a.At(i, j)-lik*a.At(k, j))
			}
		}
	}

	return ipiv, info
}

// getrs solves A·X = B with the factors from getrf, overwriting b.
func getrs(lu *matrix.Dense, ipiv []int, b *matrix.Dense) {
	n := lu.Rows()
	nrhs := b.Cols()

	// Apply the row interchanges in factorization order.
	for k, p := range ipiv {
		if p != k {
			swapRows(b, k, p)
		}
	}

	var i, k, col int
	var sum float64
	for col = 0; col < nrhs; col++ {
		// Forward substitution: L·y = P·b (unit diagonal).
		for i = 0; i < n; i++ {
			sum = b.At(i, col)
			for k = 0; k < i; k++ {
				sum -= lu.At(i, k) * b.At(k, col)
			}
			b.Set(i, col, sum)
		}
		// Backward substitution: U·x = y.
		for i = n - 1; i >= 0; i-- {
			sum = b.At(i, col)
			for k = i + 1; k < n; k++ {
				sum -= lu.At(i, k) * b.At(k, col)
			}
			b.Set(i, col, sum/lu.At(i, i))
		}
	}
}

// swapRows exchanges rows r1 and r2 across all columns.
func swapRows(m *matrix.Dense, r1, r2 int) {
	var tmp float64
	for j := 0; j < m.Cols(); j++ {
		tmp = m.At(r1, j)
		m.Set(r1, j, m.At(r2, j))
		m.Set(r2, j, tmp)
	}
}

// householderSolve minimizes ||A·X − B|| for m ≥ n on copies of a and b.
// Implementation:
//   - Stage 1: for k = 0..n-1 build the reflector v that zeroes A[k+1:m, k].
//   - Stage 2: apply it to the trailing columns of A and to every column of B.
//   - Stage 3: back-substitute R·X = (QᵀB)[0:n].
//
// Returns info = k+1 when column k is (numerically exactly) dependent.
// Complexity: Time O(m*n^2 + m*n*nrhs), Space O(m*(n+nrhs)).
func householderSolve(a, b *matrix.Dense) (*matrix.Dense, int) {
	m, n := a.Shape()
	nrhs := b.Cols()
	qa := a.Clone()
	qb := b.Clone()
	v := make([]float64, m)

	var i, j, k int
	var norm, alpha, beta, tau, sum float64
	for k = 0; k < n; k++ {
		norm = 0
		for i = k; i < m; i++ {
			norm += qa.At(i, k) * qa.At(i, k)
		}
		norm = math.Sqrt(norm)
		if norm == ZeroPivot {
			return nil, k + 1
		}
		alpha = -math.Copysign(norm, qa.At(k, k))

		for i = k; i < m; i++ {
			v[i] = qa.At(i, k)
		}
		v[k] -= alpha
		beta = 0
		for i = k; i < m; i++ {
			beta += v[i] * v[i]
		}
		tau = 2.0 / beta

		for j = k; j < n; j++ {
			sum = 0
			for i = k; i < m; i++ {
				sum += v[i] * qa.At(i, j)
			}
			for i = k; i < m; i++ {
				qa.Set(i, j, qa.At(i, j)-tau*v[i]*sum)
			}
		}
		for j = 0; j < nrhs; j++ {
			sum = 0
			for i = k; i < m; i++ {
				sum += v[i] * qb.At(i, j)
			}
			for i = k; i < m; i++ {
				qb.Set(i, j, qb.At(i, j)-tau*v[i]*sum)
			}
		}
	}

	x, _ := matrix.NewDense(n, nrhs, a.Layout())
	for j = 0; j < nrhs; j++ {
		for i = n - 1; i >= 0; i-- {
			sum = qb.At(i, j)
			for k = i + 1; k < n; k++ {
				sum -= qa.At(i, k) * x.At(k, j)
			}
			x.Set(i, j, sum/qa.At(i, i))
		}
	}

	return x, 0
}
