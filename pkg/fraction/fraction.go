// Released under an MIT license. See LICENSE.

// Package fraction provides an exact rational number type.
//
// A fraction is always kept in canonical form: the denominator is positive,
// the numerator carries the sign, and the two share no common factor. Zero
// is 0/1. Numerator and denominator are int64 values; any result whose
// canonical form does not fit fails with ErrOverflow.
package fraction

import (
	"fmt"
	"math/big"
	"reflect"
)

// T (fraction) is an immutable rational number.
//
// The zero value is 0/1. Since every T is canonical, two values can be
// compared with ==.
type T struct {
	n  int64 // Numerator.
	d1 int64 // Denominator minus one.
}

type fraction = T

// Fractional is anything that can be treated as a fraction.
type Fractional interface {
	Fraction() T
}

// New creates the fraction num/den in canonical form.
func New(num, den int64) (T, error) {
	return reduce(big.NewInt(num), big.NewInt(den))
}

// Must is like New but panics if num/den is not a valid fraction.
func Must(num, den int64) T {
	f, err := New(num, den)
	if err != nil {
		panic(err)
	}

	return f
}

// Int creates the fraction n/1.
func Int(n int64) T {
	return T{n: n}
}

// Operand returns v as a fraction if v is a T, a non-nil *T or a non-nil
// Fractional.
func Operand(v interface{}) (T, error) {
	switch v := v.(type) {
	case T:
		return v, nil
	case *T:
		if v != nil {
			return *v, nil
		}
	case Fractional:
		if r := reflect.ValueOf(v); r.Kind() != reflect.Ptr || !r.IsNil() {
			return v.Fraction(), nil
		}
	}

	return T{}, fmt.Errorf("%w: %T is not a fraction", ErrInvalidOperand, v)
}

// Den returns the denominator of f. It is always positive.
func (f fraction) Den() int64 {
	return f.d1 + 1
}

// Num returns the numerator of f.
func (f fraction) Num() int64 {
	return f.n
}

// Fraction returns f. It makes T a Fractional.
func (f fraction) Fraction() T {
	return f
}

func (f fraction) big() (*big.Int, *big.Int) {
	return big.NewInt(f.Num()), big.NewInt(f.Den())
}

// reduce is the only place a fraction is built from a raw numerator and
// denominator. Every constructor and operation goes through it.
func reduce(num, den *big.Int) (T, error) {
	if den.Sign() == 0 {
		return T{}, ErrDivisionByZero
	}

	// GCD(0, d) is |d| so zero always reduces to 0/±1.
	g := new(big.Int).GCD(nil, nil, num, den)

	n := new(big.Int).Quo(num, g)
	d := new(big.Int).Quo(den, g)

	if d.Sign() < 0 {
		n.Neg(n)
		d.Neg(d)
	}

	if !n.IsInt64() || !d.IsInt64() {
		return T{}, ErrOverflow
	}

	return T{n: n.Int64(), d1: d.Int64() - 1}, nil
}
