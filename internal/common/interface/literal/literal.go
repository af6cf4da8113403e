// Released under an MIT license. See LICENSE.

// Package literal defines the interface for frac types that can be expressed as literals.
package literal

import (
	"github.com/michaelmacinnis/frac/internal/common/interface/cell"
)

// I (literal) is any type that can be expressed as a literal.
type I interface {
	Literal() string
}

// String returns the literal representation of c, if it has one, and
// its plain text otherwise.
func String(c cell.I) string {
	if l, ok := c.(I); ok {
		return l.Literal()
	}

	return c.String()
}
