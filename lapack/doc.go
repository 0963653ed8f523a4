// Package lapack adapts dense LAPACK-style routines to matrix.Dense.
//
// The Solver interface covers the three calls the rest of the module needs:
//
//   - Solve:        A·X = B via LU with partial pivoting (dgetrf + dgetrs).
//   - SVD:          A = U·diag(S)·Vt with full U and Vt (dgesvd, jobu=jobvt='A').
//   - LeastSquares: min ||A·X − B|| for full-rank A (dgels).
//
// Two backends are provided:
//
//	Gonum:  gonum.org/v1/gonum/lapack/lapack64; row-major native, so
//	         column-major operands are transposed into a staging copy.
//	Native: pure Go over Dense's accessors; works on either layout in place.
//
// A non-zero routine status surfaces as *SolverError, which matches
// ErrSolverFailure under errors.Is and carries the raw status code.
//
// Each call allocates its own pivot and workspace buffers; no state is shared
// between calls.
package lapack
