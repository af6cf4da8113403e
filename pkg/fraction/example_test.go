package fraction_test

import (
	"fmt"

	"github.com/michaelmacinnis/frac/pkg/fraction"
)

func Example() {
	a := fraction.Must(1, 2)
	b := fraction.Must(2, 3)

	sum, _ := a.Add(b)
	quotient, _ := a.Div(b)

	fmt.Println(sum)
	fmt.Println(quotient)
	fmt.Println(fraction.Must(7, 2).Mixed())
	fmt.Println(a.IsAdjacent(b))

	// Output:
	// 7 / 6
	// 3 / 4
	// 3 + 1 / 2
	// true
}

func ExampleT_Pow() {
	f := fraction.Must(-2, 3)

	cube, _ := f.Pow(3)
	inverse, _ := f.Pow(-2)

	fmt.Println(cube)
	fmt.Println(inverse)

	// Output:
	// -8 / 27
	// 9 / 4
}
