// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/fixmat/dim"

// Func is a matrix-like value computed on demand by f(r, c).
// f is called once per read; Collect calls it exactly once per cell in
// row-major order. The zero value has no function and must not be read.
type Func[E Scalar, R, C dim.Unsigned] struct {
	f func(r, c int) E
}

var _ Transposer[int, dim.U3, dim.U1] = Func[int, dim.U3, dim.U1]{}

// FuncOf wraps f as an R×C matrix-like value.
//
//	m := matrix.FuncOf[dim.U2, dim.U3](func(r, c int) int { return 3*r + c + 1 })
func FuncOf[R, C dim.Unsigned, E Scalar](f func(r, c int) E) Func[E, R, C] {
	return Func[E, R, C]{f: f}
}

// UnsafeGet implements UnsafeGetter.
func (m Func[E, R, C]) UnsafeGet(r, c int) E { return m.f(r, c) }

// Shape implements Matrix.
func (m Func[E, R, C]) Shape() (R, C) {
	var r R
	var c C
	return r, c
}

// Get is the checked accessor.
func (m Func[E, R, C]) Get(r, c int) E { return Get[E, R, C](m, r, c) }

// T returns the transposed view.
func (m Func[E, R, C]) T() Transposed[E, C, R] { return T[E, R, C](m) }

// Collect materializes m.
func (m Func[E, R, C]) Collect() Mat[E, R, C] { return Collect[E, R, C](m) }

// Fill is an R×C matrix-like value whose every element is the same.
type Fill[E Scalar, R, C dim.Unsigned] struct {
	v E
}

var _ Transposer[float32, dim.U4, dim.U4] = Fill[float32, dim.U4, dim.U4]{}

// FillOf returns an R×C value of v everywhere.
func FillOf[R, C dim.Unsigned, E Scalar](v E) Fill[E, R, C] {
	return Fill[E, R, C]{v: v}
}

// UnsafeGet implements UnsafeGetter.
func (m Fill[E, R, C]) UnsafeGet(int, int) E { return m.v }

// Shape implements Matrix.
func (m Fill[E, R, C]) Shape() (R, C) {
	var r R
	var c C
	return r, c
}

// Get is the checked accessor.
func (m Fill[E, R, C]) Get(r, c int) E { return Get[E, R, C](m, r, c) }

// T returns the transposed view.
func (m Fill[E, R, C]) T() Transposed[E, C, R] { return T[E, R, C](m) }

// Collect materializes m.
func (m Fill[E, R, C]) Collect() Mat[E, R, C] { return Collect[E, R, C](m) }

// Identity returns the N×N identity: one on the diagonal, Zero elsewhere.
func Identity[N dim.Unsigned, E Scalar]() Func[E, N, N] {
	return Func[E, N, N]{f: func(r, c int) E {
		if r == c {
			return 1
		}
		return Zero[E]()
	}}
}
