// Released under an MIT license. See LICENSE.

// Package rational converts a frac cell to a fraction, if possible.
package rational

import (
	"fmt"

	"github.com/michaelmacinnis/frac/internal/common/interface/cell"
	"github.com/michaelmacinnis/frac/pkg/fraction"
)

// I (rational) is anything that can be treated as a fraction in frac.
type I = fraction.Fractional

// Number returns the fraction value for a cell, if possible.
func Number(c cell.I) (fraction.T, error) {
	f, err := fraction.Operand(c)
	if err != nil {
		// Not all cell types can be treated as numbers.
		return f, fmt.Errorf("%w: %s is not a number", fraction.ErrInvalidOperand, c.Name())
	}

	return f, nil
}
