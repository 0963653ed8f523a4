package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/katalvlaran/lvfit/lapack"
	"github.com/katalvlaran/lvfit/matrix"
	"github.com/katalvlaran/lvfit/polyfit"
)

// Canonical 3×3 system and 3×4 SVD input used by the solve/svd demos.
var (
	demoA   = []float64{3, 5, 2, 2, 1, 3, 4, 3, 2}
	demoB   = []float64{57, 22, 41}
	demoSVD = []float64{3, 5, 2, 6, 2, 1, 3, 2, 4, 3, 2, 4}
)

// solverFlag registers -solver on fs.
func solverFlag(fs *flag.FlagSet) *string {
	return fs.String("solver", lapack.DefaultName, "backend: "+strings.Join(lapack.Names(), "|"))
}

func runFit(args []string, stdin io.Reader, stdout, stderr io.Writer, logger *slog.Logger) error {
	fs := flag.NewFlagSet("fit", flag.ContinueOnError)
	fs.SetOutput(stderr)
	order := fs.Int("order", 2, "polynomial order")
	intervals := fs.Bool("intervals", false, "fit one polynomial per unit x-interval")
	strict := fs.Bool("strict", false, "reject unsorted x with -intervals")
	layoutName := fs.String("layout", matrix.DefaultLayout.String(), "storage layout: row|col")
	solverName := solverFlag(fs)
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	layout, err := matrix.ParseLayout(*layoutName)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return errUsage
	}
	solver, err := lapack.ByName(*solverName)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return errUsage
	}

	in := stdin
	source := "stdin"
	if fs.NArg() > 0 {
		f, err := os.Open(fs.Arg(0))
		if err != nil {
			return err
		}
		defer f.Close()
		in, source = f, fs.Arg(0)
	}
	xs, ys, err := readSamples(in)
	if err != nil {
		return fmt.Errorf("read %s: %w", source, err)
	}
	logger.Info("samples loaded", "source", source, "count", len(xs))

	opts := []polyfit.Option{
		polyfit.WithSolver(solver),
		polyfit.WithLayout(layout),
		polyfit.WithLogger(logger),
	}
	if *strict {
		opts = append(opts, polyfit.WithStrictOrder())
	}

	if !*intervals {
		coeffs, err := polyfit.Fit(xs, ys, *order, opts...)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, formatRow(coeffs))
		logger.Debug("fitted polynomial", "poly", polyfit.Poly(coeffs).String())

		return nil
	}

	rows, err := polyfit.FitIntervals(xs, ys, *order, opts...)
	if err != nil {
		return err
	}
	for i := 0; i < rows.Rows(); i++ {
		row := make([]float64, rows.Cols())
		for j := range row {
			row[j] = rows.At(i, j)
		}
		fmt.Fprintln(stdout, formatRow(row))
	}
	logger.Info("intervals fitted", "count", rows.Rows())

	return nil
}

func runSolve(args []string, stdout, stderr io.Writer, logger *slog.Logger) error {
	fs := flag.NewFlagSet("solve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	solverName := solverFlag(fs)
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	solver, err := lapack.ByName(*solverName)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return errUsage
	}

	for _, layout := range []matrix.Layout{matrix.RowMajor, matrix.ColMajor} {
		a, err := matrix.NewDenseFrom(3, 3, layout, demoA)
		if err != nil {
			return err
		}
		b, err := matrix.NewDenseFrom(3, 1, layout, demoB)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, ">>> Solve Ax=b (%s major)\n", layout)
		fmt.Fprintf(stdout, "A:\n%s data: %s\n", a, a.BufferString())
		fmt.Fprintf(stdout, "b: %s\n", formatRow(b.Values()))

		if err = solver.Solve(a, b); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "solution x: %s\n", formatRow(b.Values()))
		logger.Debug("solved", "layout", layout.String(), "solver", solver.Name(), "lda", a.LeadingDim())
	}

	return nil
}

func runSVD(args []string, stdout, stderr io.Writer, logger *slog.Logger) error {
	fs := flag.NewFlagSet("svd", flag.ContinueOnError)
	fs.SetOutput(stderr)
	layoutName := fs.String("layout", matrix.ColMajor.String(), "storage layout: row|col")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	layout, err := matrix.ParseLayout(*layoutName)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return errUsage
	}

	a, err := matrix.NewDenseFrom(3, 4, layout, demoSVD)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, ">>> SVD\nA:\n%s", a)

	res, err := lapack.Default().SVD(a)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "singular values: %s\n", formatRow(res.S))
	fmt.Fprintf(stdout, "u:\n%s", res.U)
	fmt.Fprintf(stdout, "vt:\n%s", res.Vt)
	logger.Debug("svd done", "m", a.Rows(), "n", a.Cols(), "layout", layout.String())

	return nil
}

// formatRow joins values with single spaces using %g.
func formatRow(vs []float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = fmt.Sprintf("%g", v)
	}

	return strings.Join(parts, " ")
}
