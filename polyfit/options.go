// SPDX-License-Identifier: MIT

// Package polyfit: functional configuration for the fitting routines.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors that panic on nonsensical values (programmer error),
//   - gatherOptions, which resolves defaults then user options in order.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Every option changes observable behavior and is covered by tests.

package polyfit

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/lvfit/lapack"
	"github.com/katalvlaran/lvfit/matrix"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultLayout is the storage order of the normal-equations system and
	// of the FitIntervals result.
	DefaultLayout = matrix.RowMajor

	// DefaultStrictOrder keeps the forward-scan partitioning of FitIntervals
	// on unsorted input instead of rejecting it.
	DefaultStrictOrder = false
)

// ---------- Internal panic messages ----------

const (
	panicNilSolver     = "polyfit: WithSolver: solver must be non-nil"
	panicInvalidLayout = "polyfit: WithLayout: unknown layout"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	solver      lapack.Solver
	layout      matrix.Layout
	logger      *slog.Logger
	strictOrder bool
}

// Solver returns the configured backend.
func (o Options) Solver() lapack.Solver { return o.solver }

// Layout returns the configured storage order.
func (o Options) Layout() matrix.Layout { return o.layout }

// StrictOrder reports whether FitIntervals validates ascending xs.
func (o Options) StrictOrder() bool { return o.strictOrder }

// WithSolver selects the linear-system backend. Panics on nil.
func WithSolver(s lapack.Solver) Option {
	if s == nil {
		panic(panicNilSolver)
	}

	return func(o *Options) { o.solver = s }
}

// WithLayout selects the storage order handed to the solver. Both layouts
// produce the same coefficients. Panics on an undeclared layout.
func WithLayout(l matrix.Layout) Option {
	if !l.Valid() {
		panic(panicInvalidLayout)
	}

	return func(o *Options) { o.layout = l }
}

// WithLogger routes debug records (sample counts, per-interval progress) to l.
// A nil logger restores the silent default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = discardLogger()
		}
		o.logger = l
	}
}

// WithStrictOrder makes FitIntervals reject xs that are not sorted ascending
// (ErrUnsorted) instead of partitioning them by the forward scan.
func WithStrictOrder() Option {
	return func(o *Options) { o.strictOrder = true }
}

// NewOptions resolves opts against the defaults. Exposed for callers that
// want to inspect the effective configuration.
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }

func defaultOptions() Options {
	return Options{
		solver:      lapack.Default(),
		layout:      DefaultLayout,
		logger:      discardLogger(),
		strictOrder: DefaultStrictOrder,
	}
}

// gatherOptions applies user options over the defaults, left to right.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
