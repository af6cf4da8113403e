// Released under an MIT license. See LICENSE.

package commands

import (
	"strconv"

	"github.com/michaelmacinnis/frac/internal/common/interface/cell"
	"github.com/michaelmacinnis/frac/internal/common/interface/rational"
	"github.com/michaelmacinnis/frac/internal/common/type/num"
	"github.com/michaelmacinnis/frac/internal/common/type/str"
	"github.com/michaelmacinnis/frac/internal/common/validate"
	"github.com/michaelmacinnis/frac/pkg/fraction"
)

func abs(args []cell.I) (cell.I, error) {
	return unary(args, fraction.T.Abs)
}

func cmp(args []cell.I) (cell.I, error) {
	f, g, err := two(args)
	if err != nil {
		return nil, err
	}

	return num.Int(int64(f.Cmp(g))), nil
}

func den(args []cell.I) (cell.I, error) {
	f, err := one(args)
	if err != nil {
		return nil, err
	}

	return num.Int(f.Den()), nil
}

func float(args []cell.I) (cell.I, error) {
	f, err := one(args)
	if err != nil {
		return nil, err
	}

	return str.New(strconv.FormatFloat(f.Float(), 'f', -1, 64)), nil
}

func inv(args []cell.I) (cell.I, error) {
	return unary(args, fraction.T.Inv)
}

func mixed(args []cell.I) (cell.I, error) {
	f, err := one(args)
	if err != nil {
		return nil, err
	}

	return str.New(f.Mixed()), nil
}

func neg(args []cell.I) (cell.I, error) {
	return unary(args, fraction.T.Neg)
}

func numerator(args []cell.I) (cell.I, error) {
	f, err := one(args)
	if err != nil {
		return nil, err
	}

	return num.Int(f.Num()), nil
}

func pow(args []cell.I) (cell.I, error) {
	if err := validate.Fixed(args, 2, 2); err != nil {
		return nil, err
	}

	return power(args[0], args[1])
}

func text(args []cell.I) (cell.I, error) {
	f, err := one(args)
	if err != nil {
		return nil, err
	}

	return str.New(f.String()), nil
}

func one(args []cell.I) (fraction.T, error) {
	if err := validate.Fixed(args, 1, 1); err != nil {
		return fraction.T{}, err
	}

	return rational.Number(args[0])
}

func two(args []cell.I) (fraction.T, fraction.T, error) {
	if err := validate.Fixed(args, 2, 2); err != nil {
		return fraction.T{}, fraction.T{}, err
	}

	f, err := rational.Number(args[0])
	if err != nil {
		return f, f, err
	}

	g, err := rational.Number(args[1])

	return f, g, err
}

func unary(args []cell.I, op func(f fraction.T) (fraction.T, error)) (cell.I, error) {
	f, err := one(args)
	if err != nil {
		return nil, err
	}

	return result(op(f))
}
