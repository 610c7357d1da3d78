// SPDX-License-Identifier: MIT

package dim

import "fmt"

// Unsigned is a compile-time natural number.
// Implementations must return the same constant from every value of the type.
type Unsigned interface {
	comparable
	Value() int
}

// Dimension markers.
type (
	U0  struct{}
	U1  struct{}
	U2  struct{}
	U3  struct{}
	U4  struct{}
	U5  struct{}
	U6  struct{}
	U7  struct{}
	U8  struct{}
	U9  struct{}
	U10 struct{}
	U11 struct{}
	U12 struct{}
	U13 struct{}
	U14 struct{}
	U15 struct{}
	U16 struct{}
)

func (U0) Value() int  { return 0 }
func (U1) Value() int  { return 1 }
func (U2) Value() int  { return 2 }
func (U3) Value() int  { return 3 }
func (U4) Value() int  { return 4 }
func (U5) Value() int  { return 5 }
func (U6) Value() int  { return 6 }
func (U7) Value() int  { return 7 }
func (U8) Value() int  { return 8 }
func (U9) Value() int  { return 9 }
func (U10) Value() int { return 10 }
func (U11) Value() int { return 11 }
func (U12) Value() int { return 12 }
func (U13) Value() int { return 13 }
func (U14) Value() int { return 14 }
func (U15) Value() int { return 15 }
func (U16) Value() int { return 16 }

// Max is the largest dimension that has a predeclared marker.
const Max = 16

// Of converts the marker type D to its runtime value.
func Of[D Unsigned]() int {
	var d D
	return d.Value()
}

// Product returns Of[A]() * Of[B](), the element count of an A×B matrix.
func Product[A, B Unsigned]() int {
	return Of[A]() * Of[B]()
}

// Name renders the marker as "U<n>" for diagnostics.
func Name[D Unsigned]() string {
	return fmt.Sprintf("U%d", Of[D]())
}
