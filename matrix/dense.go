// SPDX-License-Identifier: MIT

// Package matrix - Mat, the owned row-major storage.
//
// Purpose:
//   - Hold exactly R*C elements in one contiguous buffer (offset = i*C + j).
//   - Be the target of Collect and the one place elements can be assigned.
//
// Sharing:
//   - Mat is a small value (one slice header). Copies, and views built from a
//     Mat (T, Format, adapters), share its buffer; Set through any copy is
//     visible through all of them. Use Clone or Collect for an independent
//     snapshot.
//   - The zero value is a valid all-zero matrix; its buffer is allocated on
//     the first Set, through that Set's receiver only. Copies and views taken
//     from a zero Mat before that first Set keep reading zeros and never see
//     the write. Build with New when a Mat is to be shared before it is filled.
//
// Complexity quicksheet:
//   - New/FromRows/FromSlice/Clone/Collect: O(R*C); Get/Set/UnsafeGet: O(1).
package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/fixmat/dim"
)

// ---------- error context tags ----------

const (
	ctxFromRows  = "FromRows"
	ctxFromSlice = "FromSlice"
	ctxUnmarshal = "UnmarshalYAML"
	ctxDecode    = "DecodeYAML"
)

// Mat is an owned R×C matrix of E in row-major order.
type Mat[E Scalar, R, C dim.Unsigned] struct {
	data []E // len == R*C, or nil for the zero value
}

// Compile-time assertions for capability & fmt.Stringer conformance.
var (
	_ Transposer[float64, dim.U2, dim.U3] = Mat[float64, dim.U2, dim.U3]{}
	_ fmt.Stringer                        = Mat[float64, dim.U2, dim.U3]{}
)

// New returns an R×C matrix with every element equal to Zero[E]().
func New[E Scalar, R, C dim.Unsigned]() Mat[E, R, C] {
	return Mat[E, R, C]{data: make([]E, dim.Product[R, C]())}
}

// FromRows copies rows into a new matrix.
// Errors: ErrShapeMismatch unless len(rows) == R and every row has C values;
// every offending row is reported.
func FromRows[E Scalar, R, C dim.Unsigned](rows [][]E) (Mat[E, R, C], error) {
	nr, nc := dim.Of[R](), dim.Of[C]()
	if err := validateRows(rows, nr, nc); err != nil {
		return Mat[E, R, C]{}, matErrorf(ctxFromRows, err)
	}

	data := make([]E, nr*nc)
	for i, row := range rows {
		copy(data[i*nc:(i+1)*nc], row)
	}

	return Mat[E, R, C]{data: data}, nil
}

// MustFromRows is FromRows for literals known to be well-formed.
// It panics on error.
func MustFromRows[E Scalar, R, C dim.Unsigned](rows [][]E) Mat[E, R, C] {
	m, err := FromRows[E, R, C](rows)
	if err != nil {
		panic(err)
	}

	return m
}

// FromSlice copies a row-major buffer of exactly R*C values into a new matrix.
func FromSlice[E Scalar, R, C dim.Unsigned](data []E) (Mat[E, R, C], error) {
	if err := validateLen(len(data), dim.Of[R](), dim.Of[C]()); err != nil {
		return Mat[E, R, C]{}, matErrorf(ctxFromSlice, err)
	}
	cp := make([]E, len(data))
	copy(cp, data)

	return Mat[E, R, C]{data: cp}, nil
}

// UnsafeGet implements UnsafeGetter. Out-of-range indices either panic in the
// runtime or alias another element.
func (m Mat[E, R, C]) UnsafeGet(r, c int) E {
	if m.data == nil {
		return Zero[E]()
	}

	return m.data[r*dim.Of[C]()+c]
}

// Shape implements Matrix.
func (m Mat[E, R, C]) Shape() (R, C) {
	var r R
	var c C
	return r, c
}

// Get returns the element at (r, c); panics with *BoundsError when out of range.
func (m Mat[E, R, C]) Get(r, c int) E { return Get[E, R, C](m, r, c) }

// Set stores v at (r, c); panics with *BoundsError when out of range.
// On a zero Mat the first Set allocates a buffer private to m; see the
// package notes on sharing.
func (m *Mat[E, R, C]) Set(r, c int, v E) {
	rows, cols := dim.Of[R](), dim.Of[C]()
	checkBounds(r, c, rows, cols)
	if m.data == nil {
		m.data = make([]E, rows*cols)
	}
	m.data[r*cols+c] = v
}

// Size returns (R, C).
func (m Mat[E, R, C]) Size() (rows, cols int) { return dim.Of[R](), dim.Of[C]() }

// Rows returns R.
func (m Mat[E, R, C]) Rows() int { return dim.Of[R]() }

// Cols returns C.
func (m Mat[E, R, C]) Cols() int { return dim.Of[C]() }

// T returns a lazy transposed view sharing m's buffer.
func (m Mat[E, R, C]) T() Transposed[E, C, R] { return T[E, R, C](m) }

// Collect returns an independent copy; see Collect.
func (m Mat[E, R, C]) Collect() Mat[E, R, C] { return Collect[E, R, C](m) }

// Clone is an alias of Collect for callers that think in terms of copies.
func (m Mat[E, R, C]) Clone() Mat[E, R, C] { return m.Collect() }

// Row returns a copy of row i; panics with *BoundsError when i is out of range.
func (m Mat[E, R, C]) Row(i int) []E {
	cols := dim.Of[C]()
	checkBounds(i, 0, dim.Of[R](), max(cols, 1))
	out := make([]E, cols)
	for j := range out {
		out[j] = m.UnsafeGet(i, j)
	}

	return out
}

// ToRows returns the matrix as freshly allocated row slices.
func (m Mat[E, R, C]) ToRows() [][]E {
	rows := make([][]E, dim.Of[R]())
	for i := range rows {
		rows[i] = m.Row(i)
	}

	return rows
}

// Data returns a copy of the row-major buffer (len == R*C).
func (m Mat[E, R, C]) Data() []E {
	out := make([]E, dim.Product[R, C]())
	copy(out, m.data)

	return out
}

// Equal reports whether m and o hold the same elements.
func (m Mat[E, R, C]) Equal(o Mat[E, R, C]) bool {
	return Equal[E, R, C](m, o)
}

// String renders rows as "[a, b]\n" lines; see Format for options.
func (m Mat[E, R, C]) String() string {
	return Format[E, R, C](m)
}

// GoString renders a Go-syntax-like description including the shape.
func (m Mat[E, R, C]) GoString() string {
	var b strings.Builder
	fmt.Fprintf(&b, "matrix.Mat[%s, %s]{", dim.Name[R](), dim.Name[C]())
	for i, row := range m.ToRows() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", row)
	}
	b.WriteString("}")

	return b.String()
}
