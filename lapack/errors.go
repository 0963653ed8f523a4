// SPDX-License-Identifier: MIT
// Package lapack: sentinel errors and the typed status error.

package lapack

import (
	"errors"
	"fmt"
)

var (
	// ErrSolverFailure matches every *SolverError via errors.Is.
	ErrSolverFailure = errors.New("lapack: solver failure")

	// ErrUnknownSolver is returned by ByName for an unregistered backend name.
	ErrUnknownSolver = errors.New("lapack: unknown solver")
)

// Routine names reported in SolverError (LAPACK double-precision names).
const (
	routineGetrf = "dgetrf"
	routineGesvd = "dgesvd"
	routineGels  = "dgels"
)

// Operation tags for lapackErrorf.
const (
	opSolve        = "Solve"
	opSVD          = "SVD"
	opLeastSquares = "LeastSquares"
)

// SolverError reports a non-zero status from a factorization routine.
// Status follows the LAPACK info convention: for dgetrf, Status = k > 0 means
// U[k-1,k-1] is exactly zero and the system is singular.
type SolverError struct {
	Routine string
	Status  int
}

// Error implements error.
func (e *SolverError) Error() string {
	return fmt.Sprintf("lapack: %s returned status %d", e.Routine, e.Status)
}

// Is makes errors.Is(err, ErrSolverFailure) true for any *SolverError.
func (e *SolverError) Is(target error) bool { return target == ErrSolverFailure }

// lapackErrorf wraps err with an operation and backend tag.
func lapackErrorf(backend, op string, err error) error {
	return fmt.Errorf("%s.%s: %w", backend, op, err)
}
