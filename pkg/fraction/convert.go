// Released under an MIT license. See LICENSE.

package fraction

import (
	"math/big"
	"strconv"
)

// Cmp compares f and g and returns -1, 0 or +1.
func (f fraction) Cmp(g T) int {
	a, b := f.big()
	c, d := g.big()

	return a.Mul(a, d).Cmp(c.Mul(c, b))
}

// Equal returns true if f and g are the same rational number.
func (f fraction) Equal(g T) bool {
	return f.n == g.n && f.d1 == g.d1
}

// Float returns an approximation of f rounded to two decimal places.
//
// The nearest float64 to f is rounded on its exact binary value, with ties
// going to the even digit, so 1/8 is 0.12 and 3/8 is 0.38.
func (f fraction) Float() float64 {
	x, _ := f.Rat().Float64()

	v, _ := strconv.ParseFloat(strconv.FormatFloat(x, 'f', 2, 64), 64)

	return v
}

// Mixed returns f as an integer plus a proper fraction, "q + r / d".
//
// The integer part is rounded toward negative infinity so the remainder is
// never negative: -7/2 is "-4 + 1 / 2". Integers are returned as just "q".
func (f fraction) Mixed() string {
	n, d := f.Num(), f.Den()

	q, r := n/d, n%d
	if r < 0 {
		q--
		r += d
	}

	s := strconv.FormatInt(q, 10)
	if r == 0 {
		return s
	}

	return s + " + " + strconv.FormatInt(r, 10) + " / " + strconv.FormatInt(d, 10)
}

// Rat returns the exact value of f as a new *big.Rat.
func (f fraction) Rat() *big.Rat {
	return big.NewRat(f.Num(), f.Den())
}

// Sign returns -1, 0 or +1 depending on the sign of f.
func (f fraction) Sign() int {
	switch {
	case f.n < 0:
		return -1
	case f.n > 0:
		return 1
	}

	return 0
}

// String returns f as "n / d".
func (f fraction) String() string {
	return strconv.FormatInt(f.Num(), 10) + " / " + strconv.FormatInt(f.Den(), 10)
}
