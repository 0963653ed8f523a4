// Command lvfit fits least-squares polynomials to x/y samples and runs the
// layout demonstrations of the lapack package.
//
// Usage:
//
//	lvfit [-v] fit [-order N] [-intervals] [-strict] [-layout row|col] [-solver gonum|native] [file]
//	lvfit [-v] solve [-solver gonum|native]
//	lvfit [-v] svd [-layout row|col]
//
// fit reads whitespace-separated "x y" pairs, one per line, from file or
// stdin; blank lines and lines starting with '#' are skipped.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
)

// errUsage marks a command-line mistake (exit status 2).
var errUsage = errors.New("usage error")

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		slog.Error("lvfit failed", "err", err)
		os.Exit(1)
	}
}

// newLogger builds the tint-backed logger used by every subcommand.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
	}))
}

// run parses global flags and dispatches to a subcommand.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	global := flag.NewFlagSet("lvfit", flag.ContinueOnError)
	global.SetOutput(stderr)
	verbose := global.Bool("v", false, "verbose (debug) logging")
	global.Usage = func() {
		fmt.Fprintln(stderr, "usage: lvfit [-v] <fit|solve|svd> [flags]")
		global.PrintDefaults()
	}
	if err := global.Parse(args); err != nil {
		return errUsage
	}

	logger := newLogger(stderr, *verbose)
	slog.SetDefault(logger)

	rest := global.Args()
	if len(rest) == 0 {
		global.Usage()
		return errUsage
	}

	switch rest[0] {
	case "fit":
		return runFit(rest[1:], stdin, stdout, stderr, logger)
	case "solve":
		return runSolve(rest[1:], stdout, stderr, logger)
	case "svd":
		return runSVD(rest[1:], stdout, stderr, logger)
	default:
		fmt.Fprintf(stderr, "lvfit: unknown command %q\n", rest[0])
		global.Usage()
		return errUsage
	}
}
