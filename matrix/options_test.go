// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/fixmat/dim"
	"github.com/katalvlaran/fixmat/matrix"
	"github.com/stretchr/testify/require"
)

// TestFormatDefaults pins the default layout for ints and floats.
func TestFormatDefaults(t *testing.T) {
	require.Equal(t, "[1, 2, 3]\n[4, 5, 6]\n", matrix.Format[int, dim.U2, dim.U3](m23()))
	require.Equal(t, "[1, 4]\n[2, 5]\n[3, 6]\n", matrix.Format[int, dim.U3, dim.U2](m23().T()))

	var empty matrix.Mat[int, dim.U0, dim.U2]
	require.Equal(t, "", matrix.Format[int, dim.U0, dim.U2](empty))
}

// TestFormatOptions exercises each option and their combination.
func TestFormatOptions(t *testing.T) {
	m := matrix.MustFromRows[float64, dim.U2, dim.U2]([][]float64{{1, 0.25}, {-3, 4}})

	tests := []struct {
		name string
		opts []matrix.FormatOption
		want string
	}{
		{"separator", []matrix.FormatOption{matrix.WithSeparator("\t")}, "[1\t0.25]\n[-3\t4]\n"},
		{"brackets", []matrix.FormatOption{matrix.WithRowBrackets("| ", " |")}, "| 1, 0.25 |\n| -3, 4 |\n"},
		{"fixed precision", []matrix.FormatOption{matrix.WithVerb('f'), matrix.WithPrecision(2)}, "[1.00, 0.25]\n[-3.00, 4.00]\n"},
		{"scientific", []matrix.FormatOption{matrix.WithVerb('e'), matrix.WithPrecision(1)}, "[1.0e+00, 2.5e-01]\n[-3.0e+00, 4.0e+00]\n"},
		{"nil option skipped", []matrix.FormatOption{nil}, "[1, 0.25]\n[-3, 4]\n"},
		{"csv-like", []matrix.FormatOption{matrix.WithRowBrackets("", ""), matrix.WithSeparator(",")}, "1,0.25\n-3,4\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, matrix.Format[float64, dim.U2, dim.U2](m, tc.opts...))
		})
	}
}

// TestFormatPrecisionIgnoredForIntegers ensures precision only affects float verbs.
func TestFormatPrecisionIgnoredForIntegers(t *testing.T) {
	got := matrix.Format[int, dim.U2, dim.U3](m23(), matrix.WithVerb('x'), matrix.WithPrecision(3))
	require.Equal(t, "[1, 2, 3]\n[4, 5, 6]\n", got)

	got = matrix.Format[int, dim.U2, dim.U3](m23(), matrix.WithVerb('b'))
	require.Equal(t, "[1, 10, 11]\n[100, 101, 110]\n", got)
}

// TestOptionPanics verifies programmer errors in option constructors.
func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { matrix.WithVerb('s') })
	require.Panics(t, func() { matrix.WithVerb('q') })
	require.Panics(t, func() { matrix.WithPrecision(-1) })
	require.NotPanics(t, func() { matrix.WithPrecision(0) })
}
