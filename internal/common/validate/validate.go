// Released under an MIT license. See LICENSE.

// Package validate checks the arguments passed to frac builtins.
package validate

import (
	"errors"
	"fmt"

	"github.com/michaelmacinnis/frac/internal/common/interface/cell"
)

// ErrArguments is wrapped by errors about the number of arguments.
var ErrArguments = errors.New("wrong number of arguments")

// Fixed returns an error unless there are between min and max args.
func Fixed(args []cell.I, min, max int) error {
	n := len(args)
	if n < min || n > max {
		return fmt.Errorf("%w: expected %s, passed %d", ErrArguments, expected(min, max), n)
	}

	return nil
}

// Count returns n followed by label, pluralized with p when n != 1.
func Count(n int, label string, p string) string {
	if n == 1 {
		p = ""
	}

	return fmt.Sprintf("%d %s%s", n, label, p)
}

func expected(min, max int) string {
	if min == max {
		return Count(max, "argument", "s")
	}

	return fmt.Sprintf("%d to %s", min, Count(max, "argument", "s"))
}
