// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/frac/internal/common/interface/cell"
	"github.com/michaelmacinnis/frac/internal/common/interface/integer"
	"github.com/michaelmacinnis/frac/internal/common/interface/rational"
	"github.com/michaelmacinnis/frac/internal/common/type/num"
	"github.com/michaelmacinnis/frac/pkg/fraction"
)

func add(l, r cell.I) (cell.I, error) {
	return binary(l, r, fraction.T.Add)
}

func div(l, r cell.I) (cell.I, error) {
	return binary(l, r, fraction.T.Div)
}

func mul(l, r cell.I) (cell.I, error) {
	return binary(l, r, fraction.T.Mul)
}

func power(l, r cell.I) (cell.I, error) {
	f, err := rational.Number(l)
	if err != nil {
		return nil, err
	}

	n, err := integer.Value(r)
	if err != nil {
		return nil, err
	}

	return result(f.Pow(n))
}

func sub(l, r cell.I) (cell.I, error) {
	return binary(l, r, fraction.T.Sub)
}

func binary(l, r cell.I, op func(f, g fraction.T) (fraction.T, error)) (cell.I, error) {
	f, err := rational.Number(l)
	if err != nil {
		return nil, err
	}

	g, err := rational.Number(r)
	if err != nil {
		return nil, err
	}

	return result(op(f, g))
}

func result(f fraction.T, err error) (cell.I, error) {
	if err != nil {
		return nil, err
	}

	return num.New(f), nil
}
