// Released under an MIT license. See LICENSE.

package validate

import (
	"fmt"

	"github.com/HaydenSingleton/VT-Plotscript/internal/common/type/errsem"
	"github.com/HaydenSingleton/VT-Plotscript/internal/common/type/expression"
)

// Exact fails unless args holds exactly want arguments.
func Exact(name string, args []expression.T, want int) error {
	if len(args) != want {
		return complain(name, Count(want, "argument", "s"), len(args))
	}

	return nil
}

// Between fails unless args holds between min and max arguments.
func Between(name string, args []expression.T, min, max int) error {
	if len(args) < min || len(args) > max {
		s := Count(min, "argument", "s") + " to " + Count(max, "argument", "s")

		return complain(name, s, len(args))
	}

	return nil
}

// Count formats a count with an optional plural suffix.
func Count(n int, label string, p string) string {
	if n == 1 {
		p = ""
	}

	return fmt.Sprintf("%d %s%s", n, label, p)
}

func complain(name, expected string, got int) error {
	return errsem.Newf(
		"invalid number of arguments in call to %s: expected %s, passed %d",
		name, expected, got)
}
