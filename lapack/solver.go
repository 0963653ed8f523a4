// SPDX-License-Identifier: MIT

// Package lapack - the Solver contract and backend registry.
//
// Purpose:
//   - Treat the dense LU/SVD/least-squares routines as an injected collaborator
//     so callers (package polyfit) are testable against any backend.
//   - Keep every backend honest about the storage-order contract of
//     matrix.Dense: inputs share one layout, results come back in it.

package lapack

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/lvfit/matrix"
)

// Solver is a dense linear-algebra backend.
type Solver interface {
	// Name identifies the backend ("gonum", "native").
	Name() string

	// Solve solves A·X = B for square A. On success X overwrites b and a holds
	// its LU factorization (as dgesv leaves it). a and b must share a layout
	// and b.Rows() == a.Rows(). A singular A yields a *SolverError.
	Solve(a, b *matrix.Dense) error

	// SVD computes A = U·diag(S)·Vt with full U (m×m) and Vt (n×n), returned
	// in a's layout. a is not modified.
	SVD(a *matrix.Dense) (*SVDResult, error)

	// LeastSquares returns X (n×nrhs) minimizing ||A·X − B|| for a full-rank
	// m×n A and an m×nrhs B in the same layout. a and b are not modified.
	LeastSquares(a, b *matrix.Dense) (*matrix.Dense, error)
}

// SVDResult holds the factors of a singular value decomposition.
// S is in non-increasing order; len(S) == min(m, n).
type SVDResult struct {
	S  []float64
	U  *matrix.Dense
	Vt *matrix.Dense
}

// Backend names accepted by ByName.
const (
	NameGonum  = "gonum"
	NameNative = "native"
)

// DefaultName is the backend returned by Default.
const DefaultName = NameGonum

var registry = map[string]func() Solver{
	NameGonum:  func() Solver { return Gonum{} },
	NameNative: func() Solver { return Native{} },
}

// Default returns the default backend (gonum).
func Default() Solver { return Gonum{} }

// ByName returns a backend by (case-insensitive) name.
// Errors: ErrUnknownSolver.
func ByName(name string) (Solver, error) {
	ctor, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("ByName(%q): %w", name, ErrUnknownSolver)
	}

	return ctor(), nil
}

// Names lists registered backends in sorted order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// validateSolve checks the Solve preconditions shared by backends.
func validateSolve(a, b *matrix.Dense) error {
	if err := matrix.ValidateSquare(a); err != nil {
		return err
	}

	return matrix.ValidateRHS(a, b)
}

// validateLeastSquares checks the LeastSquares preconditions.
func validateLeastSquares(a, b *matrix.Dense) error {
	return matrix.ValidateRHS(a, b)
}

// assignLogical writes src into dst cell by cell. Shapes must match; layouts
// may differ. Used to return results computed on a staged copy.
func assignLogical(dst, src *matrix.Dense) {
	if dst.Layout() == src.Layout() {
		copy(dst.RawData(), src.RawData())

		return
	}
	r, c := src.Shape()
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			dst.Set(i, j, src.At(i, j))
		}
	}
}

// firstZeroPivot returns the LAPACK info value for a factored square matrix:
// the 1-based index of the first exactly-zero diagonal, or 0.
func firstZeroPivot(lu *matrix.Dense) int {
	n := lu.Rows()
	if c := lu.Cols(); c < n {
		n = c
	}
	for i := 0; i < n; i++ {
		if lu.At(i, i) == 0 {
			return i + 1
		}
	}

	return 0
}
