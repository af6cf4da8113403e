// Released under an MIT license. See LICENSE.

package fraction

import "errors"

// Errors returned by fraction operations.
var (
	ErrDivisionByZero = errors.New("division by zero")
	ErrInvalidOperand = errors.New("invalid operand")
	ErrOverflow       = errors.New("fraction out of range")
)
