// SPDX-License-Identifier: MIT

// Package matrix provides fixed-size matrices whose shape is part of the type.
//
// The package is built around three capabilities:
//
//   - UnsafeGetter: read an element by (row, column) without bounds checks.
//   - Matrix: an UnsafeGetter with a compile-time shape (see package dim),
//     plus checked Get, Size/Rows/Cols and Collect.
//   - Transposer: a Matrix that yields a lazy Transposed view of itself.
//
// Anything implementing UnsafeGet and Shape is a matrix-like value: the owned
// Mat, a Transposed view, a Func generator, a constant Fill, or an adapter over
// foreign storage (see package gonumat). Structural transforms never copy
// elements; Collect is the single point where an expression is evaluated into
// fresh owned storage.
//
//	m := matrix.MustFromRows[int, dim.U2, dim.U3]([][]int{{1, 2, 3}, {4, 5, 6}})
//	t := m.T()          // Transposed[int, dim.U3, dim.U2], nothing copied
//	fmt.Print(t.Collect())
//	// [1, 4]
//	// [2, 5]
//	// [3, 6]
//
// Errors:
//
// Checked access (Get, Set, Row) on an out-of-range index is a programming
// defect and panics with *BoundsError, which unwraps to ErrIndexOutOfBounds.
// Building a Mat from runtime data (FromRows, FromSlice, YAML) returns
// ErrShapeMismatch instead.
//
// Concurrency:
//
// Reads never mutate, so any matrix-like value may be read from many
// goroutines. Mat.Set writes the shared buffer and needs external
// synchronization against concurrent readers of the same Mat or its views.
package matrix
