// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/HaydenSingleton/VT-Plotscript/internal/common/type/atom"
	"github.com/HaydenSingleton/VT-Plotscript/internal/common/type/errsem"
	"github.com/HaydenSingleton/VT-Plotscript/internal/common/type/expression"
	"github.com/HaydenSingleton/VT-Plotscript/internal/common/validate"
)

// The plot primitives are the ABI consumed by an external renderer.
// Property keys and string values keep their quotes, matching how the
// language stores them.

func makePoint(args []expression.T) (expression.T, error) {
	if err := validate.Exact("make-point", args, 2); err != nil {
		return expression.Empty(), err
	}

	x, err := argument("make-point", args[0])
	if err != nil {
		return expression.Empty(), err
	}

	y, err := argument("make-point", args[1])
	if err != nil {
		return expression.Empty(), err
	}

	p := expression.NewList(number(x), number(y))
	p.SetProperty(`"object-name"`, text("point"))
	p.SetProperty(`"size"`, number(0))

	return p, nil
}

func makeLine(args []expression.T) (expression.T, error) {
	if err := validate.Exact("make-line", args, 2); err != nil {
		return expression.Empty(), err
	}

	for i := range args {
		if !isPoint(args[i]) {
			return expression.Empty(), errsem.New("argument to make-line not a point")
		}
	}

	l := expression.NewList(args[0].Copy(), args[1].Copy())
	l.SetProperty(`"object-name"`, text("line"))
	l.SetProperty(`"thickness"`, number(1))

	return l, nil
}

func makeText(args []expression.T) (expression.T, error) {
	if err := validate.Exact("make-text", args, 1); err != nil {
		return expression.Empty(), err
	}

	h := args[0].Head()
	if !args[0].IsSingleton() || !h.IsString() {
		return expression.Empty(), errsem.New("argument to make-text not a string")
	}

	origin, err := makePoint([]expression.T{number(0), number(0)})
	if err != nil {
		return expression.Empty(), err
	}

	t := expression.New(h)
	t.SetProperty(`"object-name"`, text("text"))
	t.SetProperty(`"position"`, origin)
	t.SetProperty(`"text-scale"`, number(1))
	t.SetProperty(`"text-rotation"`, number(0))

	return t, nil
}

func isPoint(c expression.T) bool {
	return c.IsList() && c.TailLength() == 2
}

func text(s string) expression.T {
	return expression.New(atom.NewString(s))
}
