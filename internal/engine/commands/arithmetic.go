// Released under an MIT license. See LICENSE.

package commands

import (
	"math"
	"math/cmplx"

	"github.com/HaydenSingleton/VT-Plotscript/internal/common/type/errsem"
	"github.com/HaydenSingleton/VT-Plotscript/internal/common/type/expression"
	"github.com/HaydenSingleton/VT-Plotscript/internal/common/validate"
)

// add folds its arguments with identity 0. If any argument is complex
// the result is complex.
func add(args []expression.T) (expression.T, error) {
	sum := complex(0, 0)
	anyComplex := false

	for i := range args {
		v, wasComplex, err := promoted("add", args[i])
		if err != nil {
			return expression.Empty(), err
		}

		sum += v
		anyComplex = anyComplex || wasComplex
	}

	return numeric(sum, anyComplex), nil
}

// mul folds its arguments with identity 1.
func mul(args []expression.T) (expression.T, error) {
	product := complex(1, 0)
	anyComplex := false

	for i := range args {
		v, wasComplex, err := promoted("mul", args[i])
		if err != nil {
			return expression.Empty(), err
		}

		product *= v
		anyComplex = anyComplex || wasComplex
	}

	return numeric(product, anyComplex), nil
}

// sub negates a single argument or subtracts the second from the first.
func sub(args []expression.T) (expression.T, error) {
	if err := validate.Between("subneg", args, 1, 2); err != nil {
		return expression.Empty(), err
	}

	l, lc, err := promoted("subneg", args[0])
	if err != nil {
		return expression.Empty(), err
	}

	if len(args) == 1 {
		return numeric(-l, lc), nil
	}

	r, rc, err := promoted("subneg", args[1])
	if err != nil {
		return expression.Empty(), err
	}

	return numeric(l-r, lc || rc), nil
}

// div takes the reciprocal of a single argument or divides the first
// by the second.
func div(args []expression.T) (expression.T, error) {
	if err := validate.Between("div", args, 1, 2); err != nil {
		return expression.Empty(), err
	}

	l, lc, err := promoted("div", args[0])
	if err != nil {
		return expression.Empty(), err
	}

	if len(args) == 1 {
		return numeric(1/l, lc), nil
	}

	r, rc, err := promoted("div", args[1])
	if err != nil {
		return expression.Empty(), err
	}

	return numeric(l/r, lc || rc), nil
}

// sqrt is real for a non-negative real argument and complex otherwise.
func sqrt(args []expression.T) (expression.T, error) {
	if err := validate.Exact("sqrt", args, 1); err != nil {
		return expression.Empty(), err
	}

	v, wasComplex, err := promoted("sqrt", args[0])
	if err != nil {
		return expression.Empty(), err
	}

	if !wasComplex && real(v) >= 0 {
		return number(math.Sqrt(real(v))), nil
	}

	return numeric(cmplx.Sqrt(v), true), nil
}

// pow is real when both operands are real and the real result is
// defined, and complex otherwise.
func pow(args []expression.T) (expression.T, error) {
	if err := validate.Exact("pow", args, 2); err != nil {
		return expression.Empty(), err
	}

	l, lc, err := promoted("pow", args[0])
	if err != nil {
		return expression.Empty(), err
	}

	r, rc, err := promoted("pow", args[1])
	if err != nil {
		return expression.Empty(), err
	}

	if !lc && !rc {
		v := math.Pow(real(l), real(r))
		if !math.IsNaN(v) {
			return number(v), nil
		}
	}

	return numeric(cmplx.Pow(l, r), true), nil
}

func ln(args []expression.T) (expression.T, error) {
	if err := validate.Exact("ln", args, 1); err != nil {
		return expression.Empty(), err
	}

	v, err := argument("ln", args[0])
	if err != nil {
		return expression.Empty(), err
	}

	if v <= 0 {
		return expression.Empty(), errsem.New("in call to ln: argument not positive")
	}

	return number(math.Log(v)), nil
}

func sin(args []expression.T) (expression.T, error) {
	return trig("sin", math.Sin, args)
}

func cos(args []expression.T) (expression.T, error) {
	return trig("cos", math.Cos, args)
}

func tan(args []expression.T) (expression.T, error) {
	return trig("tan", math.Tan, args)
}

func trig(name string, fn func(float64) float64, args []expression.T) (expression.T, error) {
	if err := validate.Exact(name, args, 1); err != nil {
		return expression.Empty(), err
	}

	v, err := argument(name, args[0])
	if err != nil {
		return expression.Empty(), err
	}

	return number(fn(v)), nil
}
