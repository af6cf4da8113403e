// Released under an MIT license. See LICENSE.

// Package integer converts a frac cell to an int value, if possible.
package integer

import (
	"fmt"
	"math"

	"github.com/michaelmacinnis/frac/internal/common/interface/cell"
	"github.com/michaelmacinnis/frac/internal/common/interface/rational"
	"github.com/michaelmacinnis/frac/pkg/fraction"
)

// Value returns the int value for a cell, if possible.
func Value(c cell.I) (int, error) {
	f, err := rational.Number(c)
	if err != nil {
		return 0, err
	}

	if !f.IsInteger() || f.Num() < math.MinInt || f.Num() > math.MaxInt {
		return 0, fmt.Errorf("%w: %s is not an integer", fraction.ErrInvalidOperand, f)
	}

	return int(f.Num()), nil
}
