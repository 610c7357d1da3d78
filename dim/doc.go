// SPDX-License-Identifier: MIT

// Package dim provides compile-time matrix dimensions.
//
// A dimension is a type, not a value. Each marker (U0 … U16) is an empty
// struct whose Value method returns a constant, so a matrix type such as
// matrix.Mat[float64, dim.U2, dim.U3] carries its shape in the type system
// and never stores it in a field.
//
//	rows := dim.Of[dim.U2]()              // 2
//	size := dim.Product[dim.U2, dim.U3]() // 6
//
// Markers are comparable zero-size values; passing them around costs nothing.
package dim
