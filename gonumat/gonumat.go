// SPDX-License-Identifier: MIT

package gonumat

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/fixmat/dim"
	"github.com/katalvlaran/fixmat/matrix"
)

// ErrEmpty is returned by Dense for shapes gonum cannot hold (R or C == 0).
var ErrEmpty = errors.New("gonumat: gonum matrices must have non-zero dimensions")

// view adapts a matrix-like value to mat.Matrix.
type view[R, C dim.Unsigned] struct {
	m matrix.Matrix[float64, R, C]
}

var _ mat.Matrix = view[dim.U1, dim.U1]{}

// View returns m as a mat.Matrix without copying.
// At panics with *matrix.BoundsError on out-of-range indices.
func View[R, C dim.Unsigned](m matrix.Matrix[float64, R, C]) mat.Matrix {
	return view[R, C]{m: m}
}

func (v view[R, C]) Dims() (r, c int) { return dim.Of[R](), dim.Of[C]() }

func (v view[R, C]) At(i, j int) float64 { return matrix.Get(v.m, i, j) }

func (v view[R, C]) T() mat.Matrix { return mat.Transpose{Matrix: v} }

// Dense evaluates m in row-major order into a new *mat.Dense.
func Dense[R, C dim.Unsigned](m matrix.Matrix[float64, R, C]) (*mat.Dense, error) {
	r, c := dim.Of[R](), dim.Of[C]()
	if r == 0 || c == 0 {
		return nil, errors.Wrapf(ErrEmpty, "Dense: shape %dx%d", r, c)
	}

	return mat.NewDense(r, c, matrix.Collect(m).Data()), nil
}

// Source is a gonum matrix whose dimensions were checked against R×C.
// It shares the gonum matrix's storage.
type Source[R, C dim.Unsigned] struct {
	g mat.Matrix
}

var _ matrix.Transposer[float64, dim.U2, dim.U3] = Source[dim.U2, dim.U3]{}

// From wraps g after checking g.Dims() == (R, C).
// Errors: matrix.ErrNilSource for a nil g, matrix.ErrShapeMismatch otherwise.
func From[R, C dim.Unsigned](g mat.Matrix) (Source[R, C], error) {
	if g == nil {
		return Source[R, C]{}, errors.Wrap(matrix.ErrNilSource, "From")
	}
	gr, gc := g.Dims()
	if r, c := dim.Of[R](), dim.Of[C](); gr != r || gc != c {
		return Source[R, C]{}, errors.Wrapf(matrix.ErrShapeMismatch, "From: gonum matrix is %dx%d, want %dx%d", gr, gc, r, c)
	}

	return Source[R, C]{g: g}, nil
}

// UnsafeGet implements matrix.UnsafeGetter. gonum still checks its own bounds.
func (s Source[R, C]) UnsafeGet(r, c int) float64 { return s.g.At(r, c) }

// Shape implements matrix.Matrix.
func (s Source[R, C]) Shape() (R, C) {
	var r R
	var c C
	return r, c
}

// Get is the checked accessor.
func (s Source[R, C]) Get(r, c int) float64 { return matrix.Get[float64, R, C](s, r, c) }

// T returns a lazy transposed view.
func (s Source[R, C]) T() matrix.Transposed[float64, C, R] { return matrix.T[float64, R, C](s) }

// Collect copies the gonum matrix into owned storage.
func (s Source[R, C]) Collect() matrix.Mat[float64, R, C] { return matrix.Collect[float64, R, C](s) }
