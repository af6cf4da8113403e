// Released under an MIT license. See LICENSE.

// Package num provides frac's number type.
package num

import (
	"github.com/michaelmacinnis/frac/internal/common/interface/cell"
	"github.com/michaelmacinnis/frac/internal/common/interface/rational"
	"github.com/michaelmacinnis/frac/pkg/fraction"
)

const name = "number"

// T (num) wraps the fraction.T type.
type T fraction.T

type num = T

// New wraps the fraction f as a num.
func New(f fraction.T) cell.I {
	n := num(f)

	return &n
}

// Int creates a num from the integer i.
func Int(i int64) cell.I {
	return New(fraction.Int(i))
}

// Equal returns true if c is the same number as the num n.
func (n *num) Equal(c cell.I) bool {
	return Is(c) && n.Fraction().Equal(To(c).Fraction())
}

// Fraction returns the value of the num n as a fraction.T.
func (n *num) Fraction() fraction.T {
	return fraction.T(*n)
}

// Name returns the type name for the num n.
func (n *num) Name() string {
	return name
}

// String returns the text of the num n.
func (n *num) String() string {
	return n.Fraction().String()
}

// Is returns true if c is a *T.
func Is(c cell.I) bool {
	_, ok := c.(*num)
	return ok
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c cell.I) *num {
	if n, ok := c.(*num); ok {
		return n
	}

	panic("not a " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t num

	// The num type is a cell.
	_ = cell.I(&t)

	// The num type is a rational.
	_ = rational.I(&t)
}
