// SPDX-License-Identifier: MIT

// Package fixmat is a small toolkit for matrices whose shape is part of the
// type: a 2×3 matrix of float64 is matrix.Mat[float64, dim.U2, dim.U3], and
// transposing it yields a 3×2 type without copying a single element.
//
// Under the hood, everything is organized under a few subpackages:
//
//	dim/        compile-time dimensions (U0 … U16) and their runtime values
//	matrix/     the capability hierarchy (UnsafeGetter, Matrix, Transposer),
//	            checked access, Collect, lazy views and the owned Mat
//	gonumat/    adapters to and from gonum.org/v1/gonum/mat
//	cmd/fixmat  CLI to show and transpose YAML matrix files
//
// Quick example:
//
//	m := matrix.MustFromRows[int, dim.U2, dim.U3]([][]int{{1, 2, 3}, {4, 5, 6}})
//	fmt.Print(m.T().Collect())
//	// [1, 4]
//	// [2, 5]
//	// [3, 6]
//
//	go get github.com/katalvlaran/fixmat
package fixmat
