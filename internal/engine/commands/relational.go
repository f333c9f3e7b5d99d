// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/HaydenSingleton/VT-Plotscript/internal/common/type/expression"
	"github.com/HaydenSingleton/VT-Plotscript/internal/common/validate"
)

// The ordering procedures compare real numbers only. Equality compares
// atoms of any kind, numbers within twice the machine epsilon.

func lt(args []expression.T) (expression.T, error) {
	return ordered("<", args, func(l, r float64) bool { return l < r })
}

func le(args []expression.T) (expression.T, error) {
	return ordered("<=", args, func(l, r float64) bool { return l <= r })
}

func gt(args []expression.T) (expression.T, error) {
	return ordered(">", args, func(l, r float64) bool { return l > r })
}

func ge(args []expression.T) (expression.T, error) {
	return ordered(">=", args, func(l, r float64) bool { return l >= r })
}

func eq(args []expression.T) (expression.T, error) {
	if err := validate.Exact("=", args, 2); err != nil {
		return expression.Empty(), err
	}

	l := args[0].Head()

	return truth(args[0].IsSingleton() && args[1].IsSingleton() &&
		l.Equal(args[1].Head())), nil
}

func ordered(name string, args []expression.T, cmp func(float64, float64) bool) (expression.T, error) {
	if err := validate.Exact(name, args, 2); err != nil {
		return expression.Empty(), err
	}

	l, err := argument(name, args[0])
	if err != nil {
		return expression.Empty(), err
	}

	r, err := argument(name, args[1])
	if err != nil {
		return expression.Empty(), err
	}

	return truth(cmp(l, r)), nil
}
