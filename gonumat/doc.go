// SPDX-License-Identifier: MIT

// Package gonumat bridges fixed-shape matrices and gonum.org/v1/gonum/mat.
//
// Three directions are supported:
//
//   - View wraps any matrix.Matrix[float64, R, C] as a lazy mat.Matrix.
//     Nothing is copied; At reads through the checked accessor and T returns
//     gonum's own zero-copy mat.Transpose.
//   - Dense materializes a matrix-like value into a fresh *mat.Dense.
//   - From checks a mat.Matrix against a compile-time shape once and exposes
//     it as a matrix.Matrix, so it can be transposed and collected like any
//     other matrix-like value.
//
// gonum cannot represent empty matrices; Dense reports ErrEmpty for shapes
// with a zero dimension.
package gonumat
