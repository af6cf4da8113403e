package fraction

import (
	"math/big"
	"testing"
)

func TestReduce(t *testing.T) {
	cases := []struct {
		n, d string
		want T
	}{
		{"2", "4", T{n: 1, d1: 1}},
		{"1", "-2", T{n: -1, d1: 1}},
		{"0", "-7", T{}},
		{"-6", "-9", T{n: 2, d1: 2}},
		{"18446744073709551616", "36893488147419103232", T{n: 1, d1: 1}},
	}

	for _, c := range cases {
		n, _ := new(big.Int).SetString(c.n, 10)
		d, _ := new(big.Int).SetString(c.d, 10)

		got, err := reduce(n, d)
		if err != nil {
			t.Errorf("reduce(%s, %s): %v", c.n, c.d, err)
		} else if got != c.want {
			t.Errorf("reduce(%s, %s): got %+v; want %+v", c.n, c.d, got, c.want)
		}
	}
}

func TestReduceDoesNotModifyArguments(t *testing.T) {
	n := big.NewInt(-4)
	d := big.NewInt(-6)

	if _, err := reduce(n, d); err != nil {
		t.Fatal(err)
	}

	if n.Int64() != -4 || d.Int64() != -6 {
		t.Errorf("reduce modified its arguments: %s, %s", n, d)
	}
}
