// SPDX-License-Identifier: MIT

// Package matrix: the capability hierarchy.
//
//	UnsafeGetter[E]        raw element access, no bounds checking
//	  └─ Matrix[E, R, C]   + compile-time shape (R rows, C columns)
//	       └─ Transposer   + T(), a lazy transposed view
//
// Every capability is satisfied with value receivers. Matrix-like values are
// passed and stored by copy; none of the operations in this package take a
// pointer to one.
package matrix

import "github.com/katalvlaran/fixmat/dim"

// UnsafeGetter is the minimal contract of every matrix-like value.
//
// UnsafeGet returns the element at row r, column c without validating the
// indices. The caller guarantees 0 <= r < rows and 0 <= c < cols for the
// implementing type's shape; outside that range the result is unspecified
// (an unrelated element, or a runtime panic from the backing store). Use Get
// unless the range has already been established, as Collect does.
type UnsafeGetter[E Scalar] interface {
	UnsafeGet(r, c int) E
}

// Matrix is a matrix-like value with a compile-time shape of R rows and C
// columns. Shape binds R and C into the method set; it returns the zero
// markers and must not depend on runtime state.
//
// Operations provided on top of a Matrix: Get, Collect, Size, Rows, Cols, T.
type Matrix[E Scalar, R, C dim.Unsigned] interface {
	UnsafeGetter[E]
	Shape() (R, C)
}

// Transposer marks matrix-like values that produce their own transposed view.
// Any Matrix can be transposed with the free function T; implementing
// Transposer lets callers chain m.T().T().Collect().
type Transposer[E Scalar, R, C dim.Unsigned] interface {
	Matrix[E, R, C]
	T() Transposed[E, C, R]
}
