// Released under an MIT license. See LICENSE.

// Package str provides frac's text type.
package str

import (
	"github.com/michaelmacinnis/adapted"

	"github.com/michaelmacinnis/frac/internal/common/interface/cell"
	"github.com/michaelmacinnis/frac/internal/common/interface/literal"
)

const name = "text"

// T (str) wraps Go's string type.
type T string

type str = T

// New creates a new str cell.
func New(v string) cell.I {
	s := str(v)

	return &s
}

// Equal returns true if the cell c wraps the same string and false otherwise.
func (s *str) Equal(c cell.I) bool {
	o, ok := c.(*str)

	return ok && s.String() == o.String()
}

// Literal returns the text of the str s quoted so that every byte is visible.
func (s *str) Literal() string {
	return adapted.CanonicalString(string(*s))
}

// Name returns the name of the str type.
func (s *str) Name() string {
	return name
}

// String returns the text of the str s.
func (s *str) String() string {
	return string(*s)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t str

	// The str type is a cell.
	_ = cell.I(&t)

	// The str type has a literal representation.
	_ = literal.I(&t)
}
