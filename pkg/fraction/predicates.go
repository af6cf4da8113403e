// Released under an MIT license. See LICENSE.

package fraction

import (
	"math/big"
)

// IsAdjacent returns true if f and g differ by a unit fraction.
// For example, 1/2 and 2/3 are adjacent since 2/3 - 1/2 = 1/6.
func (f fraction) IsAdjacent(g T) bool {
	a, b := f.big()
	c, d := g.big()

	diff := cross(a, d, c, b, (*big.Int).Sub)
	den := b.Mul(b, d)

	return diff.CmpAbs(big.NewInt(1)) == 0 && den.Sign() > 0
}

// IsInteger returns true if f has no fractional part.
func (f fraction) IsInteger() bool {
	return f.Num()%f.Den() == 0
}

// IsProper returns true if |f| < 1.
func (f fraction) IsProper() bool {
	a, b := f.big()

	return a.CmpAbs(b) < 0
}

// IsUnit returns true if f is 1 or -1.
func (f fraction) IsUnit() bool {
	return (f.n == 1 || f.n == -1) && f.Den() == 1
}

// IsZero returns true if f is 0.
func (f fraction) IsZero() bool {
	return f.n == 0
}
