// SPDX-License-Identifier: MIT

package polyfit

import (
	"fmt"
	"strconv"
	"strings"
)

// Poly is a polynomial with coefficients in descending degree, the order Fit
// returns: Poly{a, b, c} is a·x² + b·x + c.
type Poly []float64

// Degree returns len(p)-1, or -1 for the empty polynomial.
func (p Poly) Degree() int { return len(p) - 1 }

// Eval evaluates p at x by Horner's rule. The empty polynomial is 0.
func (p Poly) Eval(x float64) float64 {
	var y float64
	for _, c := range p {
		y = y*x + c
	}

	return y
}

// EvalAll evaluates p at every x.
func (p Poly) EvalAll(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = p.Eval(x)
	}

	return out
}

// String renders p as "1x^2 - 3x + 2" using the shortest %g form of each
// coefficient.
func (p Poly) String() string {
	if len(p) == 0 {
		return "0"
	}
	var b strings.Builder
	for i, c := range p {
		deg := len(p) - 1 - i
		switch {
		case i > 0 && c < 0:
			b.WriteString(" - ")
			c = -c
		case i > 0:
			b.WriteString(" + ")
		}
		b.WriteString(strconv.FormatFloat(c, 'g', -1, 64))
		switch {
		case deg > 1:
			fmt.Fprintf(&b, "x^%d", deg)
		case deg == 1:
			b.WriteString("x")
		}
	}

	return b.String()
}

// Residuals returns ys[k] − p(xs[k]) for every sample.
// Errors: ErrDimensionMismatch when len(xs) != len(ys).
func Residuals(p Poly, xs, ys []float64) ([]float64, error) {
	if len(xs) != len(ys) {
		return nil, polyErrorf(opResiduals, fmt.Errorf("len(xs)=%d, len(ys)=%d: %w", len(xs), len(ys), ErrDimensionMismatch))
	}
	out := make([]float64, len(xs))
	for k := range xs {
		out[k] = ys[k] - p.Eval(xs[k])
	}

	return out, nil
}
