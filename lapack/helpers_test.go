// SPDX-License-Identifier: MIT

package lapack_test

import (
	"testing"

	"github.com/katalvlaran/lvfit/lapack"
	"github.com/katalvlaran/lvfit/matrix"
)

var (
	layouts  = []matrix.Layout{matrix.RowMajor, matrix.ColMajor}
	backends = []lapack.Solver{lapack.Gonum{}, lapack.Native{}}
)

// The canonical 3×3 system; its exact solution is x = [2 9 3].
var (
	sysA = []float64{
		3, 5, 2,
		2, 1, 3,
		4, 3, 2,
	}
	sysB = []float64{57, 22, 41}
	sysX = []float64{2, 9, 3}
)

func mustFrom(tb testing.TB, r, c int, l matrix.Layout, vals []float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFrom(r, c, l, vals)
	if err != nil {
		tb.Fatalf("NewDenseFrom(%d,%d,%s): %v", r, c, l, err)
	}

	return m
}

// forEach runs fn for every backend × layout pair as a named subtest.
func forEach(t *testing.T, fn func(t *testing.T, s lapack.Solver, l matrix.Layout)) {
	for _, s := range backends {
		for _, l := range layouts {
			s, l := s, l
			t.Run(s.Name()+"/"+l.String(), func(t *testing.T) { fn(t, s, l) })
		}
	}
}
