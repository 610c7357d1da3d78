// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   • Provide the small, deterministic fixtures shared by the property tests.
//   • Centralize the assertion of a bounds-violation panic.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/fixmat/dim"
	"github.com/katalvlaran/fixmat/matrix"
	"github.com/stretchr/testify/require"
)

// m23 is the 2×3 fixture used throughout: rows [1,2,3] and [4,5,6].
func m23() matrix.Mat[int, dim.U2, dim.U3] {
	return matrix.MustFromRows[int, dim.U2, dim.U3]([][]int{{1, 2, 3}, {4, 5, 6}})
}

// seq returns an R×C generator whose element at (r, c) is r*C + c + 1.
func seq[R, C dim.Unsigned]() matrix.Func[int, R, C] {
	cols := dim.Of[C]()
	return matrix.FuncOf[R, C](func(r, c int) int { return r*cols + c + 1 })
}

// cell is one recorded UnsafeGet call.
type cell struct{ r, c int }

// recorder returns an R×C generator that appends every read to *log.
func recorder[R, C dim.Unsigned](log *[]cell) matrix.Func[int, R, C] {
	return matrix.FuncOf[R, C](func(r, c int) int {
		*log = append(*log, cell{r, c})
		return 10*r + c
	})
}

// requireBoundsPanic runs fn and asserts it panics with the exact BoundsError.
func requireBoundsPanic(t *testing.T, want matrix.BoundsError, fn func()) {
	t.Helper()
	defer func() {
		rec := recover()
		require.NotNil(t, rec, "expected a bounds panic")
		err, ok := rec.(error)
		require.True(t, ok, "panic value %T is not an error", rec)
		require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)

		var be *matrix.BoundsError
		require.ErrorAs(t, err, &be)
		require.Equal(t, want, *be)
	}()
	fn()
}
