// Released under an MIT license. See LICENSE.

// Package cell defines the interface for all frac values.
package cell

// I (cell) is the basic unit of storage in frac.
type I interface {
	Equal(c I) bool
	Name() string
	String() string
}
