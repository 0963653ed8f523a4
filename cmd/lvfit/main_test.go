package main

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err = run(args, strings.NewReader(stdin), &out, &errOut)

	return out.String(), errOut.String(), err
}

func TestReadSamples(t *testing.T) {
	xs, ys, err := readSamples(strings.NewReader("# x y\n0 2\n\n1\t4\n  2 8  \n"))
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1, 2}, xs)
	require.Equal(t, []float64{2, 4, 8}, ys)

	_, _, err = readSamples(strings.NewReader("1 2 3\n"))
	require.ErrorContains(t, err, "line 1: want 2 fields, got 3")

	_, _, err = readSamples(strings.NewReader("0 1\nx 2\n"))
	require.ErrorContains(t, err, "line 2: x:")
}

func TestRunFitStdin(t *testing.T) {
	out, _, err := runCLI(t, "0 2\n1 4\n2 8\n3 14\n", "fit", "-order", "1")
	require.NoError(t, err)
	// y = 4x + 1 is the best line through x² + x + 2 on 0..3.
	require.Equal(t, "4 1\n", roundLine(t, out))
}

func TestRunFitFileColumnMajorNative(t *testing.T) {
	path := filepath.Join(t.TempDir(), "samples.txt")
	require.NoError(t, os.WriteFile(path, []byte("0 2\n1 4\n2 8\n3 14\n"), 0o600))

	out, _, err := runCLI(t, "", "fit", "-layout", "col", "-solver", "native", path)
	require.NoError(t, err)
	require.Equal(t, "1 1 2\n", roundLine(t, out))
}

func TestRunFitIntervals(t *testing.T) {
	in := "0.2 1.4\n0.7 2.4\n2.1 1.9\n2.6 1.4\n"
	out, _, err := runCLI(t, in, "fit", "-order", "1", "-intervals")
	require.NoError(t, err)
	require.Equal(t, "2 1\n0 0\n-1 4\n", roundLine(t, out))
}

func TestRunSolve(t *testing.T) {
	for _, solver := range []string{"gonum", "native"} {
		out, _, err := runCLI(t, "", "solve", "-solver", solver)
		require.NoError(t, err)
		require.Contains(t, out, ">>> Solve Ax=b (row major)")
		require.Contains(t, out, ">>> Solve Ax=b (col major)")
		require.Contains(t, out, "data: [3, 2, 4, 5, 1, 3, 2, 3, 2]")
		require.Equal(t, 2, strings.Count(roundLine(t, out), "solution x: 2 9 3"))
	}
}

func TestRunSVD(t *testing.T) {
	out, _, err := runCLI(t, "", "-v", "svd")
	require.NoError(t, err)
	require.Contains(t, out, "singular values:")
	require.Contains(t, out, "u:\n")
	require.Contains(t, out, "vt:\n")
}

func TestRunUsageErrors(t *testing.T) {
	_, _, err := runCLI(t, "")
	require.ErrorIs(t, err, errUsage)

	_, stderr, err := runCLI(t, "", "frobnicate")
	require.ErrorIs(t, err, errUsage)
	require.Contains(t, stderr, `unknown command "frobnicate"`)

	_, _, err = runCLI(t, "", "fit", "-layout", "diagonal")
	require.ErrorIs(t, err, errUsage)

	_, _, err = runCLI(t, "", "solve", "-solver", "mkl")
	require.ErrorIs(t, err, errUsage)

	_, _, err = runCLI(t, "", "fit", "-bogus")
	require.ErrorIs(t, err, errUsage)
}

func TestRunFitErrors(t *testing.T) {
	_, _, err := runCLI(t, "0 1\n", "fit", "-order", "1")
	require.Error(t, err)
	require.NotErrorIs(t, err, errUsage)

	_, _, err = runCLI(t, "", "fit", filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
}

// roundLine re-renders every numeric token of out rounded to 9 decimals so
// floating noise does not leak into the comparisons.
func roundLine(t *testing.T, out string) string {
	t.Helper()
	lines := strings.Split(out, "\n")
	for i, line := range lines {
		fields := strings.Fields(line)
		for j, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				continue
			}
			v = math.Round(v*1e9) / 1e9
			if v == 0 {
				v = 0 // drop the sign of -0
			}
			fields[j] = formatRow([]float64{v})
		}
		lines[i] = strings.Join(fields, " ")
	}

	return strings.Join(lines, "\n")
}
