package polyfit_test

import (
	"fmt"

	"github.com/katalvlaran/lvfit/polyfit"
)

func ExampleFit() {
	c, err := polyfit.Fit([]float64{0, 1, 2, 3}, []float64{2, 4, 8, 14}, 2)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.3f\n", c)
	fmt.Printf("%.3f\n", polyfit.Poly(c).Eval(4))
	// Output:
	// [1.000 1.000 2.000]
	// 22.000
}

// ExampleFitIntervals fits a line per unit interval; [1,2) has no samples
// and stays zero.
func ExampleFitIntervals() {
	xs := []float64{0.2, 0.7, 2.1, 2.6}
	ys := []float64{1.4, 2.4, 1.9, 1.4}

	rows, err := polyfit.FitIntervals(xs, ys, 1)
	if err != nil {
		fmt.Println(err)
		return
	}
	for i := 0; i < rows.Rows(); i++ {
		fmt.Printf("%d: %.3f %.3f\n", i, rows.At(i, 0), rows.At(i, 1))
	}
	// Output:
	// 0: 2.000 1.000
	// 1: 0.000 0.000
	// 2: -1.000 4.000
}
