// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/frac/internal/common/interface/cell"
	"github.com/michaelmacinnis/frac/internal/common/type/boolean"
	"github.com/michaelmacinnis/frac/pkg/fraction"
)

func isAdjacent(args []cell.I) (cell.I, error) {
	f, g, err := two(args)
	if err != nil {
		return nil, err
	}

	return boolean.Bool(f.IsAdjacent(g)), nil
}

func isInteger(args []cell.I) (cell.I, error) {
	return predicate(args, fraction.T.IsInteger)
}

func isProper(args []cell.I) (cell.I, error) {
	return predicate(args, fraction.T.IsProper)
}

func isUnit(args []cell.I) (cell.I, error) {
	return predicate(args, fraction.T.IsUnit)
}

func isZero(args []cell.I) (cell.I, error) {
	return predicate(args, fraction.T.IsZero)
}

func predicate(args []cell.I, p func(f fraction.T) bool) (cell.I, error) {
	f, err := one(args)
	if err != nil {
		return nil, err
	}

	return boolean.Bool(p(f)), nil
}
