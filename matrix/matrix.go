// SPDX-License-Identifier: MIT

// Package matrix - checked access, shape queries and materialization.
//
// Determinism & Policy:
//   - Shape queries read only the type parameters, never the value.
//   - Get validates once and delegates to UnsafeGet.
//   - Collect evaluates in row-major order (rows outer, columns inner); each
//     cell of the fresh storage is written exactly once and never read back.
package matrix

import "github.com/katalvlaran/fixmat/dim"

// Size returns (rows, columns) of m's type.
// Complexity: O(1).
func Size[E Scalar, R, C dim.Unsigned](m Matrix[E, R, C]) (rows, cols int) {
	return dim.Of[R](), dim.Of[C]()
}

// Rows returns the row count of m's type.
func Rows[E Scalar, R, C dim.Unsigned](m Matrix[E, R, C]) int { return dim.Of[R]() }

// Cols returns the column count of m's type.
func Cols[E Scalar, R, C dim.Unsigned](m Matrix[E, R, C]) int { return dim.Of[C]() }

// Get returns the element at (r, c).
//
// Panics with *BoundsError when r or c is negative or not less than the
// corresponding dimension. A bounds violation is a defect in the caller,
// not an input condition, so there is no error return.
func Get[E Scalar, R, C dim.Unsigned](m Matrix[E, R, C], r, c int) E {
	checkBounds(r, c, dim.Of[R](), dim.Of[C]())

	return m.UnsafeGet(r, c)
}

// Collect evaluates m into a newly allocated Mat of the same shape.
//
// Implementation:
//   - Stage 1: allocate exactly R*C slots.
//   - Stage 2: i-loop over rows, j-loop over columns, slot[i*C+j] = m.UnsafeGet(i, j).
//
// The loop bounds are the shape itself, so UnsafeGet is always in range.
// Complexity: O(R*C) time, one allocation.
func Collect[E Scalar, R, C dim.Unsigned](m Matrix[E, R, C]) Mat[E, R, C] {
	rows, cols := dim.Of[R](), dim.Of[C]()
	data := make([]E, rows*cols)

	var i, j, base int
	for i = 0; i < rows; i++ {
		base = i * cols
		for j = 0; j < cols; j++ {
			data[base+j] = m.UnsafeGet(i, j)
		}
	}

	return Mat[E, R, C]{data: data}
}

// checkBounds panics with *BoundsError unless 0 <= r < rows and 0 <= c < cols.
func checkBounds(r, c, rows, cols int) {
	if r < 0 || r >= rows || c < 0 || c >= cols {
		panic(&BoundsError{Row: r, Col: c, Rows: rows, Cols: cols})
	}
}
