// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/fixmat/dim"

// Transposed is a lazy R×C view of a C×R matrix-like value.
// UnsafeGet(r, c) reads the source at (c, r); nothing is copied until Collect.
// The zero value has no source and must not be read.
type Transposed[E Scalar, R, C dim.Unsigned] struct {
	m Matrix[E, C, R]
}

var _ Transposer[int, dim.U2, dim.U3] = Transposed[int, dim.U2, dim.U3]{}

// T returns the transposed view of m. The view holds a copy of m.
// Complexity: O(1), no element is read.
func T[E Scalar, R, C dim.Unsigned](m Matrix[E, R, C]) Transposed[E, C, R] {
	return Transposed[E, C, R]{m: m}
}

// Source returns the value this view transposes.
func (t Transposed[E, R, C]) Source() Matrix[E, C, R] { return t.m }

// UnsafeGet implements UnsafeGetter with swapped coordinates.
func (t Transposed[E, R, C]) UnsafeGet(r, c int) E { return t.m.UnsafeGet(c, r) }

// Shape implements Matrix.
func (t Transposed[E, R, C]) Shape() (R, C) {
	var r R
	var c C
	return r, c
}

// T transposes the view again. The result reads the original source at the
// original coordinates.
func (t Transposed[E, R, C]) T() Transposed[E, C, R] { return Transposed[E, C, R]{m: t} }

// Get is the checked accessor; see Get.
func (t Transposed[E, R, C]) Get(r, c int) E { return Get[E, R, C](t, r, c) }

// Collect materializes the view; see Collect.
func (t Transposed[E, R, C]) Collect() Mat[E, R, C] { return Collect[E, R, C](t) }

// Size returns (R, C).
func (t Transposed[E, R, C]) Size() (rows, cols int) { return dim.Of[R](), dim.Of[C]() }

// Rows returns R.
func (t Transposed[E, R, C]) Rows() int { return dim.Of[R]() }

// Cols returns C.
func (t Transposed[E, R, C]) Cols() int { return dim.Of[C]() }
