// SPDX-License-Identifier: MIT

// Package matrix - Dense storage with a construction-time layout.
//
// Purpose:
//   - Own one contiguous []float64 of exactly rows*cols elements.
//   - Map (row, col) to an offset through the Layout chosen at construction
//     (row-major: i*cols + j, column-major: i + j*rows).
//   - Hand the raw buffer and its leading dimension to external LAPACK-style
//     routines without copying.
//
// Ownership:
//   - Clone deep-copies; CopyFrom copy-assigns (reallocating only on a shape change);
//     Move/MoveFrom transfer the buffer and leave the source 0×0; Release drops it.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone/CopyFrom: O(r*c); Move: O(1).

package matrix

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// ---------- error context tags ----------

const (
	ctxAtChecked  = "AtChecked"
	ctxSetChecked = "SetChecked"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Dense is an owned two-dimensional float64 buffer.
//   - r,c hold dimensions (rows, cols); both may be zero.
//   - layout is fixed for the lifetime of the value.
//   - data has length r*c, nil when r*c == 0.
type Dense struct {
	r, c   int
	layout Layout
	data   []float64
}

// Compile-time assertions: *Dense is usable as a gonum matrix and prints itself.
var (
	_ mat.Matrix   = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix with the given storage layout.
// Implementation:
//   - Stage 1: validate rows>=0, cols>=0, rows*cols fits in an int, and layout.
//   - Stage 2: allocate the zero-filled buffer (nothing when r*c == 0).
//
// Errors:
//   - ErrInvalidDimensions for negative dimensions or a rows*cols that overflows int.
//   - ErrUnknownLayout for an undeclared Layout value.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, layout Layout) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf(opNewDense, ErrInvalidDimensions)
	}
	if cols != 0 && rows > math.MaxInt/cols {
		return nil, matrixErrorf(opNewDense, fmt.Errorf("%dx%d overflows int: %w", rows, cols, ErrInvalidDimensions))
	}
	if !layout.Valid() {
		return nil, matrixErrorf(opNewDense, ErrUnknownLayout)
	}

	m := &Dense{layout: layout}
	m.reset(rows, cols)

	return m, nil
}

// NewDenseFrom creates an r×c matrix and fills it from values, which are read
// in row-major logical order regardless of layout.
//
// Errors:
//   - everything NewDense returns.
//   - ErrDimensionMismatch when len(values) != rows*cols.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFrom(rows, cols int, layout Layout, values []float64) (*Dense, error) {
	m, err := NewDense(rows, cols, layout)
	if err != nil {
		return nil, err
	}
	if err = m.SetValues(values); err != nil {
		return nil, matrixErrorf(opNewDenseFrom, err)
	}

	return m, nil
}

// reset replaces the buffer with a fresh zeroed one of rows*cols elements.
// A zero-element shape keeps data nil.
func (m *Dense) reset(rows, cols int) {
	m.r, m.c = rows, cols
	if n := rows * cols; n > 0 {
		m.data = make([]float64, n)
	} else {
		m.data = nil
	}
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// Size returns Rows()*Cols(), which always equals len(RawData()).
func (m *Dense) Size() int { return m.r * m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// Layout returns the storage order fixed at construction.
func (m *Dense) Layout() Layout { return m.layout }

// LeadingDim returns the stride between consecutive columns (ColMajor) or
// rows (RowMajor), i.e. the lda/ldb argument of a LAPACK call.
// A 0×0 matrix reports 1 so it stays a legal LAPACK argument.
func (m *Dense) LeadingDim() int {
	if ld := m.layout.leadingDim(m.r, m.c); ld > 0 {
		return ld
	}

	return 1
}

// IsEmpty reports whether the matrix holds no elements.
func (m *Dense) IsEmpty() bool { return m.r*m.c == 0 }

// At returns the element at (row, col).
// The index is not validated: a wrong (row, col) reads some other element
// or panics on the slice bound, like indexing the raw buffer directly.
// Use AtChecked for a validated read.
func (m *Dense) At(row, col int) float64 {
	return m.data[m.layout.offset(row, col, m.r, m.c)]
}

// Set stores v at (row, col) without bounds validation (see At).
func (m *Dense) Set(row, col int, v float64) {
	m.data[m.layout.offset(row, col, m.r, m.c)] = v
}

// inBounds reports whether (row, col) addresses an element.
func (m *Dense) inBounds(row, col int) bool {
	return row >= 0 && row < m.r && col >= 0 && col < m.c
}

// AtChecked is At with bounds validation.
// Errors: ErrOutOfRange.
func (m *Dense) AtChecked(row, col int) (float64, error) {
	if !m.inBounds(row, col) {
		return 0, denseErrorf(ctxAtChecked, row, col, ErrOutOfRange)
	}

	return m.At(row, col), nil
}

// SetChecked is Set with bounds validation.
// Errors: ErrOutOfRange.
func (m *Dense) SetChecked(row, col int, v float64) error {
	if !m.inBounds(row, col) {
		return denseErrorf(ctxSetChecked, row, col, ErrOutOfRange)
	}
	m.Set(row, col, v)

	return nil
}

// RawData exposes the owned buffer in physical order for handoff to numerical
// routines. The slice aliases the matrix: writes through it are visible in
// At, and it must not be used after Release, Move or MoveFrom.
func (m *Dense) RawData() []float64 { return m.data }

// BufferCopy returns a copy of the buffer in physical order.
func (m *Dense) BufferCopy() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// Values returns the elements in row-major logical order, independent of layout.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) Values() []float64 {
	out := make([]float64, 0, m.r*m.c)
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			out = append(out, m.At(i, j))
		}
	}

	return out
}

// SetValues overwrites every element from values given in row-major logical order.
// Errors: ErrDimensionMismatch when len(values) != Size(); m is unchanged then.
func (m *Dense) SetValues(values []float64) error {
	if len(values) != m.Size() {
		return matrixErrorf(opSetValues, fmt.Errorf("%d values for %dx%d: %w", len(values), m.r, m.c, ErrDimensionMismatch))
	}
	if m.layout == RowMajor {
		copy(m.data, values) // logical and physical order coincide

		return nil
	}
	var i, j, k int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			m.Set(i, j, values[k])
			k++
		}
	}

	return nil
}

// Clone returns a deep copy with the same shape and layout.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	out := &Dense{r: m.r, c: m.c, layout: m.layout}
	if m.data != nil {
		out.data = make([]float64, len(m.data))
		copy(out.data, m.data)
	}

	return out
}

// CopyFrom copy-assigns src into m. The buffer is reallocated only when the
// shapes differ; otherwise it is overwritten in place. Copying onto itself
// is a no-op.
//
// Errors:
//   - ErrNilMatrix when src is nil.
//   - ErrLayoutMismatch when the layouts differ (m keeps its layout for life).
func (m *Dense) CopyFrom(src *Dense) error {
	if src == nil {
		return matrixErrorf(opCopyFrom, ErrNilMatrix)
	}
	if src == m {
		return nil
	}
	if src.layout != m.layout {
		return matrixErrorf(opCopyFrom, ErrLayoutMismatch)
	}
	if src.r != m.r || src.c != m.c {
		m.reset(src.r, src.c)
	}
	copy(m.data, src.data) // same layout: physical copy == logical copy

	return nil
}

// Move returns a new Dense that takes over m's buffer, shape and layout.
// m is left as a valid 0×0 matrix of the same layout.
// Complexity: O(1).
func (m *Dense) Move() *Dense {
	out := &Dense{r: m.r, c: m.c, layout: m.layout, data: m.data}
	m.Release()

	return out
}

// MoveFrom move-assigns src into m: m's buffer is released, then m takes src's
// buffer and shape and src becomes 0×0. Moving onto itself is a no-op.
//
// Errors:
//   - ErrNilMatrix when src is nil.
//   - ErrLayoutMismatch when the layouts differ.
func (m *Dense) MoveFrom(src *Dense) error {
	if src == nil {
		return matrixErrorf(opMoveFrom, ErrNilMatrix)
	}
	if src == m {
		return nil
	}
	if src.layout != m.layout {
		return matrixErrorf(opMoveFrom, ErrLayoutMismatch)
	}
	m.Release()
	m.r, m.c, m.data = src.r, src.c, src.data
	src.Release()

	return nil
}

// Release drops the buffer and leaves m as 0×0. Safe to call repeatedly.
func (m *Dense) Release() {
	m.reset(0, 0)
}

// ToLayout returns a logical copy of m stored in layout l. When l already is
// m's layout this is Clone.
// Complexity: O(r*c).
func (m *Dense) ToLayout(l Layout) *Dense {
	if l == m.layout {
		return m.Clone()
	}
	out := &Dense{layout: l}
	out.reset(m.r, m.c)
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			out.Set(i, j, m.At(i, j))
		}
	}

	return out
}

// Dims returns the shape; together with At and T it satisfies mat.Matrix.
func (m *Dense) Dims() (r, c int) { return m.r, m.c }

// T returns an implicit transpose view for gonum routines.
func (m *Dense) T() mat.Matrix { return mat.Transpose{Matrix: m} }

// String renders rows in logical order, one "[a, b, ...]" line per row.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.At(i, j)))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// BufferString renders the physical buffer, which differs from String's
// order for column-major matrices.
func (m *Dense) BufferString() string {
	var b strings.Builder
	b.WriteString(_fmtRowOpen)
	for k, v := range m.data {
		if k > 0 {
			b.WriteString(_fmtSep)
		}
		b.WriteString(fmt.Sprintf("%g", v))
	}
	b.WriteString("]")

	return b.String()
}
