// SPDX-License-Identifier: MIT
// Exports unexported validators to the external test package.

package matrix

// ValidateRows exposes validateRows to tests.
func ValidateRows[E Scalar](rows [][]E, nr, nc int) error { return validateRows(rows, nr, nc) }

// ValidateLen exposes validateLen to tests.
func ValidateLen(n, nr, nc int) error { return validateLen(n, nr, nc) }
