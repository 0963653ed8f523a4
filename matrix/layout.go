// SPDX-License-Identifier: MIT

// Package matrix - storage-order tag for Dense.
//
// Purpose:
//   - Name the two index-mapping strategies into one flat buffer.
//   - Keep the mapping formula in exactly one place (offset) so Dense and the
//     solver backends agree on where (row, col) lives.

package matrix

import (
	"fmt"
	"strings"
)

// Layout selects how a logical (row, col) pair maps to a flat buffer offset.
// It is fixed when a Dense is constructed and never changes afterwards.
type Layout uint8

const (
	// RowMajor stores rows contiguously: offset = row*cols + col.
	RowMajor Layout = iota

	// ColMajor stores columns contiguously: offset = row + col*rows.
	// This is the native layout of Fortran LAPACK.
	ColMajor
)

// DefaultLayout is the layout used when callers do not pick one.
const DefaultLayout = RowMajor

const (
	layoutRowName = "row"
	layoutColName = "col"
)

// String returns "row" or "col".
func (l Layout) String() string {
	switch l {
	case RowMajor:
		return layoutRowName
	case ColMajor:
		return layoutColName
	default:
		return fmt.Sprintf("Layout(%d)", uint8(l))
	}
}

// Valid reports whether l is one of the declared layouts.
func (l Layout) Valid() bool { return l == RowMajor || l == ColMajor }

// ParseLayout maps user-facing names to a Layout.
// Accepted (case-insensitive): "row", "row-major", "c" and "col", "column",
// "col-major", "column-major", "f".
func ParseLayout(s string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case layoutRowName, "row-major", "rowmajor", "c":
		return RowMajor, nil
	case layoutColName, "column", "col-major", "column-major", "colmajor", "f":
		return ColMajor, nil
	}

	return 0, fmt.Errorf("ParseLayout(%q): %w", s, ErrUnknownLayout)
}

// offset is the single source of truth for the storage-order invariant.
// Complexity: O(1).
func (l Layout) offset(row, col, rows, cols int) int {
	if l == ColMajor {
		return row + col*rows
	}

	return row*cols + col
}

// leadingDim is the LAPACK leading dimension (stride between consecutive
// columns for ColMajor, rows for RowMajor).
func (l Layout) leadingDim(rows, cols int) int {
	if l == ColMajor {
		return rows
	}

	return cols
}
