// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures shared by the Dense tests and benchmarks.
//   • Build every fixture in both layouts so each assertion runs twice.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvfit/matrix"
)

// layouts is the table every layout-sensitive test ranges over.
var layouts = []matrix.Layout{matrix.RowMajor, matrix.ColMajor}

// mustDense allocates an r×c *Dense or fails the test.
func mustDense(tb testing.TB, r, c int, l matrix.Layout) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c, l)
	if err != nil {
		tb.Fatalf("NewDense(%d,%d,%s): %v", r, c, l, err)
	}

	return m
}

// mustFrom builds an r×c matrix from row-major logical values or fails the test.
func mustFrom(tb testing.TB, r, c int, l matrix.Layout, vals []float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFrom(r, c, l, vals)
	if err != nil {
		tb.Fatalf("NewDenseFrom(%d,%d,%s): %v", r, c, l, err)
	}

	return m
}

// fillDenseRand fills m with values in [-1, 1) from a fixed seed.
func fillDenseRand(tb testing.TB, m *matrix.Dense, seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			m.Set(i, j, rng.Float64()*2-1)
		}
	}
}
