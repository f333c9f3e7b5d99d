// Released under an MIT license. See LICENSE.

// Package engine provides an evaluator for parsed plotscript code.
package engine

import (
	"github.com/HaydenSingleton/VT-Plotscript/internal/common/type/atom"
	"github.com/HaydenSingleton/VT-Plotscript/internal/common/type/env"
	"github.com/HaydenSingleton/VT-Plotscript/internal/common/type/errsem"
	"github.com/HaydenSingleton/VT-Plotscript/internal/common/type/expression"
	"github.com/HaydenSingleton/VT-Plotscript/internal/engine/interrupt"
)

// Eval evaluates the expression c in the environment scope.
func Eval(c expression.T, scope *env.T) (expression.T, error) {
	if interrupt.Requested() {
		return expression.Empty(), errsem.New("interpreter kernel interrupted")
	}

	head := c.Head()

	name := ""
	if head.IsSymbol() {
		name = head.AsSymbol()
	}

	// The list form precedes the empty-tail rule so that (list) is
	// the empty list.
	if name == "list" {
		return evalList(c, scope)
	}

	if c.TailLength() == 0 {
		return lookup(head, scope)
	}

	switch name {
	case "begin":
		return evalBegin(c, scope)
	case "define":
		return evalDefine(c, scope)
	case "lambda":
		return evalLambda(c, scope)
	case "apply":
		return evalApply(c, scope)
	case "map":
		return evalMap(c, scope)
	case "set-property":
		return evalSetProperty(c, scope)
	case "get-property":
		return evalGetProperty(c, scope)
	case "discrete-plot":
		return evalDiscretePlot(c, scope)
	case "continuous-plot":
		return evalContinuousPlot(c, scope)
	}

	args, err := evalEach(c.Tail(), scope)
	if err != nil {
		return expression.Empty(), err
	}

	return Apply(head, args, scope)
}

// lookup resolves a childless expression: scalars evaluate to
// themselves and symbols to their binding.
func lookup(head atom.T, scope *env.T) (expression.T, error) {
	switch {
	case head.IsSymbol():
		if v, ok := scope.Exp(head.AsSymbol()); ok {
			return v, nil
		}

		return expression.Empty(), errsem.Newf("unknown symbol %s", head.AsSymbol())
	case head.IsNumber(), head.IsComplex(), head.IsString():
		return expression.New(head), nil
	}

	return expression.Empty(), errsem.New("invalid terminal expression")
}

func evalEach(children []expression.T, scope *env.T) ([]expression.T, error) {
	results := make([]expression.T, 0, len(children))

	for i := range children {
		v, err := Eval(children[i], scope)
		if err != nil {
			return nil, err
		}

		results = append(results, v)
	}

	return results, nil
}
