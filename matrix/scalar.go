// SPDX-License-Identifier: MIT

package matrix

import "golang.org/x/exp/constraints"

// Scalar is the set of element types a matrix may hold: every integer and
// floating-point type, including named types built on them. All of them are
// plain values, so copying a matrix-like value never copies ownership.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Zero returns the additive identity of T.
func Zero[T Scalar]() T {
	return T(0)
}
