// Released under an MIT license. See LICENSE.

// Package commands provides frac's operators and builtin functions.
package commands

import (
	"github.com/michaelmacinnis/frac/internal/common/interface/cell"
)

// Function is a builtin function.
type Function func(args []cell.I) (cell.I, error)

// Operator is a builtin infix operator.
type Operator func(l, r cell.I) (cell.I, error)

// Functions returns the builtin functions, by name.
func Functions() map[string]Function {
	return map[string]Function{
		"abs":         abs,
		"cmp":         cmp,
		"den":         den,
		"float":       float,
		"inv":         inv,
		"is_adjacent": isAdjacent,
		"is_integer":  isInteger,
		"is_proper":   isProper,
		"is_unit":     isUnit,
		"is_zero":     isZero,
		"mixed":       mixed,
		"neg":         neg,
		"num":         numerator,
		"pow":         pow,
		"str":         text,
	}
}

// Operators returns the builtin infix operators, by symbol.
func Operators() map[string]Operator {
	return map[string]Operator{
		"!=": ne,
		"*":  mul,
		"+":  add,
		"-":  sub,
		"/":  div,
		"<":  lt,
		"<=": le,
		"==": eq,
		">":  gt,
		">=": ge,
		"^":  power,
	}
}

// Negate is the prefix '-' operator.
func Negate(c cell.I) (cell.I, error) {
	return neg([]cell.I{c})
}
