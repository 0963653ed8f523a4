// SPDX-License-Identifier: MIT

package polyfit_test

import (
	"bytes"
	"log/slog"

	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/katalvlaran/lvfit/lapack"
	"github.com/katalvlaran/lvfit/matrix"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

// failingSolver records what it was asked to solve and always fails.
type failingSolver struct {
	calls   int
	layouts []matrix.Layout
	status  int
}

func (f *failingSolver) Name() string { return "failing" }

func (f *failingSolver) Solve(a, b *matrix.Dense) error {
	f.calls++
	f.layouts = append(f.layouts, a.Layout())

	return &lapack.SolverError{Routine: "dgetrf", Status: f.status}
}

func (f *failingSolver) SVD(*matrix.Dense) (*lapack.SVDResult, error) {
	return nil, &lapack.SolverError{Routine: "dgesvd", Status: f.status}
}

func (f *failingSolver) LeastSquares(*matrix.Dense, *matrix.Dense) (*matrix.Dense, error) {
	return nil, &lapack.SolverError{Routine: "dgels", Status: f.status}
}

// debugLogger returns a text logger writing every level into buf.
func debugLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
