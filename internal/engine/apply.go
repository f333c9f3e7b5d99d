// Released under an MIT license. See LICENSE.

package engine

import (
	"github.com/HaydenSingleton/VT-Plotscript/internal/common/type/atom"
	"github.com/HaydenSingleton/VT-Plotscript/internal/common/type/env"
	"github.com/HaydenSingleton/VT-Plotscript/internal/common/type/errsem"
	"github.com/HaydenSingleton/VT-Plotscript/internal/common/type/expression"
)

// Apply calls the operator named by op with the evaluated arguments
// args. A symbol bound to a lambda is called in a clone of scope with
// its parameters shadowed; otherwise op must name a built-in procedure.
func Apply(op atom.T, args []expression.T, scope *env.T) (expression.T, error) {
	if op.IsSymbol() {
		if bound, ok := scope.Exp(op.AsSymbol()); ok && bound.IsLambda() {
			return applyLambda(bound, args, scope)
		}
	}

	if !op.IsSymbol() {
		return expression.Empty(), errsem.New("not a symbol")
	}

	proc, ok := scope.Proc(op.AsSymbol())
	if !ok {
		return expression.Empty(), errsem.New("symbol does not name a procedure")
	}

	return proc(args)
}

func applyLambda(lambda expression.T, args []expression.T, scope *env.T) (expression.T, error) {
	template := lambda.Tail()[0]
	body := lambda.Tail()[1]

	params := make([]string, 0, template.TailLength()+1)

	head := template.Head()
	params = append(params, head.AsSymbol())

	for _, p := range template.Tail() {
		h := p.Head()
		params = append(params, h.AsSymbol())
	}

	if len(args) != len(params) {
		return expression.Empty(), errsem.New("invalid number of arguments in call to procedure")
	}

	inner := scope.Clone()

	for i, k := range params {
		inner.Shadow(k, args[i])
	}

	return Eval(body, inner)
}
