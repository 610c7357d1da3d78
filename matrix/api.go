// SPDX-License-Identifier: MIT
// Package matrix - public API facades over the capability hierarchy.
//
// Every facade here accepts any Matrix and reads it through checked Get in
// row-major order; none of them allocate an owned Mat unless stated.

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/fixmat/dim"
)

// Transpose is an alias for T for API discoverability.
func Transpose[E Scalar, R, C dim.Unsigned](m Matrix[E, R, C]) Transposed[E, C, R] {
	return T[E, R, C](m)
}

// Materialize is an alias for Collect.
func Materialize[E Scalar, R, C dim.Unsigned](m Matrix[E, R, C]) Mat[E, R, C] {
	return Collect[E, R, C](m)
}

// Equal reports whether a and b agree element-for-element.
// Both operands share the compile-time shape, so no dimension check is needed.
// Complexity: O(R*C), stops at the first difference.
func Equal[E Scalar, R, C dim.Unsigned](a, b Matrix[E, R, C]) bool {
	rows, cols := dim.Of[R](), dim.Of[C]()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if a.UnsafeGet(i, j) != b.UnsafeGet(i, j) {
				return false
			}
		}
	}

	return true
}

// Format renders m one row per line.
// Defaults: "[1, 2]\n[3, 4]\n"; an empty shape renders as "".
func Format[E Scalar, R, C dim.Unsigned](m Matrix[E, R, C], opts ...FormatOption) string {
	o := gatherFormatOptions(opts...)
	elem := o.elemFormat()
	rows, cols := dim.Of[R](), dim.Of[C]()

	var b strings.Builder
	for i := 0; i < rows; i++ {
		b.WriteString(o.rowOpen)
		for j := 0; j < cols; j++ {
			if j > 0 {
				b.WriteString(o.sep)
			}
			fmt.Fprintf(&b, elem, Get(m, i, j))
		}
		b.WriteString(o.rowClose)
		b.WriteByte('\n')
	}

	return b.String()
}
