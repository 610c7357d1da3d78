// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Checked element access reports bounds violations by panicking with a
// *BoundsError; everything that consumes caller-supplied data (FromRows,
// FromSlice, YAML decoding) returns errors matching these sentinels via
// errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfBounds indicates that a row or column index is outside the
	// compile-time shape. It is never returned: it is the cause unwrapped from
	// the *BoundsError panic value.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrShapeMismatch indicates that runtime data does not fit the
	// compile-time shape (wrong row count, ragged rows, wrong slice length).
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrNilSource indicates that a nil backing source was handed to an adapter.
	ErrNilSource = errors.New("matrix: nil source")
)

// BoundsError is the panic value raised by checked access on an index that
// does not satisfy 0 <= Row < Rows and 0 <= Col < Cols.
type BoundsError struct {
	Row, Col   int // requested coordinates
	Rows, Cols int // compile-time shape of the accessed value
}

// Error implements error.
func (e *BoundsError) Error() string {
	return fmt.Sprintf("matrix: index (%d,%d) out of bounds for %dx%d matrix", e.Row, e.Col, e.Rows, e.Cols)
}

// Unwrap exposes ErrIndexOutOfBounds to errors.Is.
func (e *BoundsError) Unwrap() error { return ErrIndexOutOfBounds }

// matErrorf wraps err with a uniform "Mat.<method>" context.
func matErrorf(method string, err error) error {
	return fmt.Errorf("Mat.%s: %w", method, err)
}
