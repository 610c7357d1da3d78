// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/fixmat/dim"
	"github.com/katalvlaran/fixmat/matrix"
	"github.com/stretchr/testify/require"
)

// TestTransposeCorrectness checks t.Get(c, r) == m.Get(r, c) and swapped dims.
func TestTransposeCorrectness(t *testing.T) {
	m := seq[dim.U3, dim.U5]()
	tr := matrix.T[int, dim.U3, dim.U5](m)

	r, c := tr.Size()
	require.Equal(t, 5, r)
	require.Equal(t, 3, c)
	require.Equal(t, 5, tr.Rows())
	require.Equal(t, 3, tr.Cols())

	for i := 0; i < 3; i++ {
		for j := 0; j < 5; j++ {
			require.Equal(t, m.Get(i, j), tr.Get(j, i), "(%d,%d)", i, j)
		}
	}
}

// TestTransposeBounds checks that the view validates against its own shape.
func TestTransposeBounds(t *testing.T) {
	tr := m23().T()
	require.Equal(t, 3, tr.Get(2, 0))
	requireBoundsPanic(t, matrix.BoundsError{Row: 0, Col: 2, Rows: 3, Cols: 2}, func() { _ = tr.Get(0, 2) })
	requireBoundsPanic(t, matrix.BoundsError{Row: 3, Col: 0, Rows: 3, Cols: 2}, func() { _ = tr.Get(3, 0) })
}

// TestDoubleTransposeIdentity checks T(T(m)).Collect() == m.Collect().
func TestDoubleTransposeIdentity(t *testing.T) {
	t.Run("owned", func(t *testing.T) {
		m := m23()
		require.True(t, m.T().T().Collect().Equal(m.Collect()))
	})
	t.Run("generator", func(t *testing.T) {
		m := seq[dim.U4, dim.U1]()
		require.Equal(t, m.Collect().ToRows(), m.T().T().Collect().ToRows())
	})
	t.Run("quadruple", func(t *testing.T) {
		m := seq[dim.U2, dim.U7]()
		require.True(t, m.T().T().T().T().Collect().Equal(m.Collect()))
	})
	t.Run("free function", func(t *testing.T) {
		m := m23()
		once := matrix.T[int, dim.U2, dim.U3](m)
		twice := matrix.T[int, dim.U3, dim.U2](once)
		require.True(t, matrix.Equal[int, dim.U2, dim.U3](twice, m))
	})
}

// TestTransposeIsLazy checks that building a view reads nothing and that the
// view reads its source with swapped coordinates.
func TestTransposeIsLazy(t *testing.T) {
	var log []cell
	tr := recorder[dim.U2, dim.U3](&log).T()
	require.Empty(t, log)

	got := tr.Collect()
	want := []cell{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0, 2}, {1, 2}}
	require.Equal(t, want, log)
	require.Equal(t, [][]int{{0, 10}, {1, 11}, {2, 12}}, got.ToRows())
}

// TestTransposeSharesStorage checks that a view over a Mat observes later writes.
func TestTransposeSharesStorage(t *testing.T) {
	m := m23()
	tr := m.T()
	m.Set(1, 2, 60)

	require.Equal(t, 60, tr.Get(2, 1))

	// A collected view is a snapshot.
	snap := tr.Collect()
	m.Set(1, 2, 6)
	require.Equal(t, 60, snap.Get(2, 1))
	require.Equal(t, 6, tr.Get(2, 1))
}

// TestTransposeSource checks the unwrap accessor.
func TestTransposeSource(t *testing.T) {
	m := m23()
	src := m.T().Source()
	require.True(t, matrix.Equal[int, dim.U2, dim.U3](src, m))
}

// TestTransposeEmpty checks degenerate shapes.
func TestTransposeEmpty(t *testing.T) {
	var z matrix.Mat[int, dim.U0, dim.U3]
	tr := z.T()
	r, c := tr.Size()
	require.Equal(t, 3, r)
	require.Equal(t, 0, c)
	require.Equal(t, [][]int{{}, {}, {}}, tr.Collect().ToRows())
}
