// Released under an MIT license. See LICENSE.

package fraction

import (
	"math/big"
)

// Add returns f + g.
func (f fraction) Add(g T) (T, error) {
	a, b := f.big()
	c, d := g.big()

	n := cross(a, d, c, b, (*big.Int).Add)

	return reduce(n, b.Mul(b, d))
}

// Sub returns f - g.
func (f fraction) Sub(g T) (T, error) {
	a, b := f.big()
	c, d := g.big()

	n := cross(a, d, c, b, (*big.Int).Sub)

	return reduce(n, b.Mul(b, d))
}

// Mul returns f * g.
func (f fraction) Mul(g T) (T, error) {
	a, b := f.big()
	c, d := g.big()

	return reduce(a.Mul(a, c), b.Mul(b, d))
}

// Div returns f / g. It fails with ErrDivisionByZero if g is zero.
func (f fraction) Div(g T) (T, error) {
	a, b := f.big()
	c, d := g.big()

	return reduce(a.Mul(a, d), b.Mul(b, c))
}

// Pow returns f raised to the integer power n.
//
// A negative exponent inverts f first so the result stays exact. Raising
// zero to a power that is not positive fails with ErrDivisionByZero.
func (f fraction) Pow(n int) (T, error) {
	a, b := f.Num(), f.Den()

	if n <= 0 && a == 0 {
		return T{}, ErrDivisionByZero
	}

	e := uint64(n)
	if n < 0 {
		a, b = b, a
		e = -e
	}

	x, err := power(a, e)
	if err != nil {
		return T{}, err
	}

	y, err := power(b, e)
	if err != nil {
		return T{}, err
	}

	return reduce(x, y)
}

// Abs returns |f|.
func (f fraction) Abs() (T, error) {
	if f.n < 0 {
		return f.Neg()
	}

	return f, nil
}

// Inv returns 1 / f. It fails with ErrDivisionByZero if f is zero.
func (f fraction) Inv() (T, error) {
	a, b := f.big()

	return reduce(b, a)
}

// Neg returns -f.
func (f fraction) Neg() (T, error) {
	a, b := f.big()

	return reduce(a.Neg(a), b)
}

// cross returns a*d op c*b.
func cross(a, d, c, b *big.Int, op func(z, x, y *big.Int) *big.Int) *big.Int {
	ad := new(big.Int).Mul(a, d)
	cb := new(big.Int).Mul(c, b)

	return op(ad, ad, cb)
}

// power returns x**e. Any |x| > 1 raised to 64 or more cannot fit in int64.
func power(x int64, e uint64) (*big.Int, error) {
	if e >= 64 && (x > 1 || x < -1) {
		return nil, ErrOverflow
	}

	z := big.NewInt(x)

	return z.Exp(z, new(big.Int).SetUint64(e), nil), nil
}
