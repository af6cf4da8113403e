// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/frac/internal/common/interface/cell"
	"github.com/michaelmacinnis/frac/internal/common/interface/rational"
	"github.com/michaelmacinnis/frac/internal/common/type/boolean"
	"github.com/michaelmacinnis/frac/pkg/fraction"
)

func eq(l, r cell.I) (cell.I, error) {
	return compare(l, r, fraction.T.Equal)
}

func ge(l, r cell.I) (cell.I, error) {
	return compare(l, r, func(f, g fraction.T) bool { return f.Cmp(g) >= 0 })
}

func gt(l, r cell.I) (cell.I, error) {
	return compare(l, r, func(f, g fraction.T) bool { return f.Cmp(g) > 0 })
}

func le(l, r cell.I) (cell.I, error) {
	return compare(l, r, func(f, g fraction.T) bool { return f.Cmp(g) <= 0 })
}

func lt(l, r cell.I) (cell.I, error) {
	return compare(l, r, func(f, g fraction.T) bool { return f.Cmp(g) < 0 })
}

func ne(l, r cell.I) (cell.I, error) {
	return compare(l, r, func(f, g fraction.T) bool { return !f.Equal(g) })
}

func compare(l, r cell.I, ok func(f, g fraction.T) bool) (cell.I, error) {
	f, err := rational.Number(l)
	if err != nil {
		return nil, err
	}

	g, err := rational.Number(r)
	if err != nil {
		return nil, err
	}

	return boolean.Bool(ok(f, g)), nil
}
