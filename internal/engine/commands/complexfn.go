// Released under an MIT license. See LICENSE.

package commands

import (
	"math/cmplx"

	"github.com/HaydenSingleton/VT-Plotscript/internal/common/type/atom"
	"github.com/HaydenSingleton/VT-Plotscript/internal/common/type/expression"
	"github.com/HaydenSingleton/VT-Plotscript/internal/common/validate"
)

// The complex accessors accept real numbers as complexes with a zero
// imaginary part.

func realPart(args []expression.T) (expression.T, error) {
	return complexToReal("real", args, func(v complex128) float64 {
		return real(v)
	})
}

func imagPart(args []expression.T) (expression.T, error) {
	return complexToReal("imag", args, func(v complex128) float64 {
		return imag(v)
	})
}

func mag(args []expression.T) (expression.T, error) {
	return complexToReal("mag", args, cmplx.Abs)
}

func arg(args []expression.T) (expression.T, error) {
	return complexToReal("arg", args, cmplx.Phase)
}

func conj(args []expression.T) (expression.T, error) {
	if err := validate.Exact("conj", args, 1); err != nil {
		return expression.Empty(), err
	}

	v, _, err := promoted("conj", args[0])
	if err != nil {
		return expression.Empty(), err
	}

	return expression.New(atom.NewComplex(cmplx.Conj(v))), nil
}

func complexToReal(name string, args []expression.T, fn func(complex128) float64) (expression.T, error) {
	if err := validate.Exact(name, args, 1); err != nil {
		return expression.Empty(), err
	}

	v, _, err := promoted(name, args[0])
	if err != nil {
		return expression.Empty(), err
	}

	return number(fn(v)), nil
}
