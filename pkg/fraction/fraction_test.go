package fraction_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/michaelmacinnis/frac/pkg/fraction"
)

var pairs = [][2]int64{ //nolint:gochecknoglobals
	{0, 1}, {0, -7}, {1, 2}, {2, 4}, {-2, 4}, {2, -4}, {-2, -4},
	{7, 2}, {8, 4}, {-9, 3}, {12, 18}, {1, 1}, {-1, -1},
	{math.MaxInt64, 1}, {1, math.MaxInt64}, {math.MinInt64, 2},
}

func TestConstructor(t *testing.T) {
	f, err := fraction.New(2, 4)
	require.NoError(t, err)
	require.EqualValues(t, 1, f.Num())
	require.EqualValues(t, 2, f.Den())

	z, err := fraction.New(0, -5)
	require.NoError(t, err)
	require.EqualValues(t, 0, z.Num())
	require.EqualValues(t, 1, z.Den())

	_, err = fraction.New(1, 0)
	require.ErrorIs(t, err, fraction.ErrDivisionByZero)
}

func TestZeroValue(t *testing.T) {
	var z fraction.T

	require.EqualValues(t, 0, z.Num())
	require.EqualValues(t, 1, z.Den())
	require.True(t, z.IsZero())
	require.Equal(t, fraction.Int(0), z)
	require.Equal(t, fraction.Must(0, 9), z)
	require.Equal(t, "0 / 1", z.String())
}

func TestIdempotence(t *testing.T) {
	for _, p := range pairs {
		f := fraction.Must(p[0], p[1])
		g := fraction.Must(f.Num(), f.Den())

		require.Equal(t, f, g, "New(%d, %d)", p[0], p[1])
	}
}

func TestPositiveDenominator(t *testing.T) {
	for _, p := range pairs {
		f := fraction.Must(p[0], p[1])

		require.Positive(t, f.Den(), "New(%d, %d)", p[0], p[1])
	}
}

func TestScaleInvariance(t *testing.T) {
	for _, p := range [][2]int64{{1, 2}, {3, 7}, {-5, 6}, {0, 3}, {4, 1}} {
		f := fraction.Must(p[0], p[1])

		for _, k := range []int64{1, 2, -1, -3, 17, -1000} {
			g := fraction.Must(k*p[0], k*p[1])

			require.True(t, f.Equal(g), "%v and %d*%v", f, k, p)
		}
	}

	require.True(t, fraction.Must(1, -2).Equal(fraction.Must(-1, 2)))
	require.True(t, fraction.Must(2, 4).Equal(fraction.Must(1, 2)))
	require.False(t, fraction.Must(1, 2).Equal(fraction.Must(2, 3)))
}

func TestIdentities(t *testing.T) {
	zero := fraction.Int(0)
	one := fraction.Int(1)

	for _, p := range pairs {
		f := fraction.Must(p[0], p[1])

		sum, err := f.Add(zero)
		require.NoError(t, err)
		require.Equal(t, f, sum)

		product, err := f.Mul(one)
		require.NoError(t, err)
		require.Equal(t, f, product)

		if f.IsZero() {
			continue
		}

		quotient, err := f.Div(f)
		require.NoError(t, err)
		require.Equal(t, one, quotient)
	}
}

func TestArithmetic(t *testing.T) {
	a := fraction.Must(1, 2)
	b := fraction.Must(2, 3)

	cases := []struct {
		op   func(fraction.T) (fraction.T, error)
		name string
		want string
	}{
		{a.Add, "add", "7 / 6"},
		{a.Sub, "sub", "-1 / 6"},
		{a.Mul, "mul", "1 / 3"},
		{a.Div, "div", "3 / 4"},
	}

	for _, c := range cases {
		got, err := c.op(b)
		require.NoError(t, err, c.name)
		require.Equal(t, c.want, got.String(), c.name)
	}

	require.Equal(t, fraction.Must(1, 2), a, "operands are untouched")
	require.Equal(t, fraction.Must(2, 3), b, "operands are untouched")
}

func TestDivisionByZero(t *testing.T) {
	_, err := fraction.Must(1, 2).Div(fraction.Must(0, 5))
	require.ErrorIs(t, err, fraction.ErrDivisionByZero)

	_, err = fraction.Int(0).Inv()
	require.ErrorIs(t, err, fraction.ErrDivisionByZero)
}

func TestPow(t *testing.T) {
	cases := []struct {
		f    fraction.T
		n    int
		want string
	}{
		{fraction.Must(1, 2), 2, "1 / 4"},
		{fraction.Must(-2, 3), 3, "-8 / 27"},
		{fraction.Must(-2, 3), 2, "4 / 9"},
		{fraction.Must(1, 2), -2, "4 / 1"},
		{fraction.Must(-2, 3), -3, "-27 / 8"},
		{fraction.Must(7, 5), 0, "1 / 1"},
		{fraction.Must(-1, 1), 1001, "-1 / 1"},
		{fraction.Must(-1, 1), -64, "1 / 1"},
		{fraction.Int(0), 5, "0 / 1"},
		{fraction.Int(2), 62, "4611686018427387904 / 1"},
	}

	for _, c := range cases {
		got, err := c.f.Pow(c.n)
		require.NoError(t, err, "%v ^ %d", c.f, c.n)
		require.Equal(t, c.want, got.String(), "%v ^ %d", c.f, c.n)
	}

	for _, n := range []int{0, -1, math.MinInt} {
		_, err := fraction.Int(0).Pow(n)
		require.ErrorIs(t, err, fraction.ErrDivisionByZero, "0 ^ %d", n)
	}

	for _, n := range []int{63, 64, math.MaxInt, math.MinInt} {
		_, err := fraction.Int(2).Pow(n)
		require.ErrorIs(t, err, fraction.ErrOverflow, "2 ^ %d", n)
	}
}

func TestOverflow(t *testing.T) {
	_, err := fraction.New(math.MinInt64, -1)
	require.ErrorIs(t, err, fraction.ErrOverflow)

	_, err = fraction.New(1, math.MinInt64)
	require.ErrorIs(t, err, fraction.ErrOverflow)

	f, err := fraction.New(math.MinInt64, math.MinInt64)
	require.NoError(t, err)
	require.Equal(t, fraction.Int(1), f)

	_, err = fraction.Int(math.MaxInt64).Add(fraction.Int(1))
	require.ErrorIs(t, err, fraction.ErrOverflow)

	_, err = fraction.Int(math.MinInt64).Neg()
	require.ErrorIs(t, err, fraction.ErrOverflow)

	// Intermediate products that do not fit are fine if the result does.
	big := fraction.Must(math.MaxInt64, 3)
	g, err := big.Mul(fraction.Must(3, math.MaxInt64))
	require.NoError(t, err)
	require.Equal(t, fraction.Int(1), g)
}

func TestMixed(t *testing.T) {
	cases := []struct {
		n, d int64
		want string
	}{
		{7, 2, "3 + 1 / 2"},
		{-7, 2, "-4 + 1 / 2"},
		{8, 4, "2"},
		{-8, 4, "-2"},
		{1, 3, "0 + 1 / 3"},
		{-1, 3, "-1 + 2 / 3"},
		{0, 5, "0"},
	}

	for _, c := range cases {
		got := fraction.Must(c.n, c.d).Mixed()
		require.Equal(t, c.want, got, "%d/%d", c.n, c.d)
	}
}

func TestFloat(t *testing.T) {
	require.Equal(t, 0.5, fraction.Must(1, 2).Float())
	require.Equal(t, 0.67, fraction.Must(2, 3).Float())
	require.Equal(t, -0.33, fraction.Must(-1, 3).Float())
	require.Equal(t, 3.0, fraction.Must(6, 2).Float())

	// Ties round to even on the exact binary value.
	require.Equal(t, 0.12, fraction.Must(1, 8).Float())
	require.Equal(t, 0.38, fraction.Must(3, 8).Float())
	require.Equal(t, 0.62, fraction.Must(5, 8).Float())
	require.Equal(t, -0.12, fraction.Must(-1, 8).Float())
}

func TestString(t *testing.T) {
	require.Equal(t, "-1 / 2", fraction.Must(1, -2).String())
	require.Equal(t, "2 / 1", fraction.Must(8, 4).String())
}

func TestCmp(t *testing.T) {
	a := fraction.Must(1, 2)
	b := fraction.Must(2, 3)

	require.Equal(t, -1, a.Cmp(b))
	require.Equal(t, 1, b.Cmp(a))
	require.Equal(t, 0, a.Cmp(fraction.Must(3, 6)))
	require.Equal(t, 1, fraction.Int(math.MaxInt64).Cmp(fraction.Must(math.MaxInt64-1, 1)))
	require.Equal(t, -1, fraction.Must(-1, 2).Sign())
	require.Equal(t, 0, fraction.Int(0).Sign())
}

func TestPredicates(t *testing.T) {
	require.True(t, fraction.Int(0).IsZero())
	require.False(t, fraction.Must(1, 2).IsZero())

	require.True(t, fraction.Must(8, 4).IsInteger())
	require.True(t, fraction.Int(0).IsInteger())
	require.False(t, fraction.Must(7, 2).IsInteger())

	require.True(t, fraction.Must(1, 2).IsProper())
	require.True(t, fraction.Must(-1, 2).IsProper())
	require.False(t, fraction.Must(3, 2).IsProper())
	require.False(t, fraction.Int(1).IsProper())
	require.False(t, fraction.Int(math.MinInt64).IsProper())

	require.True(t, fraction.Int(1).IsUnit())
	require.True(t, fraction.Int(-1).IsUnit())
	require.False(t, fraction.Must(1, 2).IsUnit())
	require.False(t, fraction.Int(2).IsUnit())
}

func TestIsAdjacent(t *testing.T) {
	require.True(t, fraction.Must(1, 2).IsAdjacent(fraction.Must(2, 3)))
	require.True(t, fraction.Must(2, 3).IsAdjacent(fraction.Must(1, 2)))
	require.True(t, fraction.Int(1).IsAdjacent(fraction.Int(2)))
	require.False(t, fraction.Must(1, 2).IsAdjacent(fraction.Must(3, 4)))
	require.False(t, fraction.Must(1, 3).IsAdjacent(fraction.Must(1, 3)))
}

type wrapped struct {
	f fraction.T
}

func (w wrapped) Fraction() fraction.T {
	return w.f
}

type boxed struct {
	f fraction.T
}

func (b *boxed) Fraction() fraction.T {
	return b.f
}

func TestOperand(t *testing.T) {
	half := fraction.Must(1, 2)

	for _, v := range []interface{}{half, &half, wrapped{half}, &boxed{half}} {
		f, err := fraction.Operand(v)
		require.NoError(t, err)
		require.Equal(t, half, f)
	}

	var (
		nilT     *fraction.T
		nilBoxed *boxed
	)

	for _, v := range []interface{}{nil, nilT, nilBoxed, fraction.Fractional(nilBoxed), 1, "1 / 2", 0.5} {
		_, err := fraction.Operand(v)
		require.ErrorIs(t, err, fraction.ErrInvalidOperand, "%#v", v)
	}
}

func TestConcurrentReaders(t *testing.T) {
	a := fraction.Must(1, 2)
	b := fraction.Must(2, 3)

	var g errgroup.Group

	for i := 0; i < 16; i++ {
		g.Go(func() error {
			for j := 0; j < 100; j++ {
				s, err := a.Add(b)
				if err != nil {
					return err
				}

				if s.String() != "7 / 6" || !a.IsAdjacent(b) {
					return fraction.ErrInvalidOperand
				}
			}

			return nil
		})
	}

	require.NoError(t, g.Wait())
}
