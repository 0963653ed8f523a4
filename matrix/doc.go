// Package matrix provides Dense, an owned two-dimensional float64 buffer whose
// storage order (row-major or column-major) is chosen at construction.
//
// The matrix package provides:
//
//   - Dense with a fixed Layout and the offset formulas
//     row*cols + col (RowMajor) and row + col*rows (ColMajor).
//   - Unchecked At/Set for raw-buffer speed and AtChecked/SetChecked for
//     validated access.
//   - RawData and LeadingDim for handing the buffer to LAPACK-style routines
//     (see package lapack).
//   - Value semantics made explicit: Clone, CopyFrom, Move, MoveFrom, Release.
//   - Layout-independent comparison (AllClose, Equal) and conversion (ToLayout).
//
// *Dense also satisfies gonum's mat.Matrix, so it can be passed to gonum
// routines that accept a mat.Matrix.
package matrix
