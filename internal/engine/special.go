// Released under an MIT license. See LICENSE.

package engine

import (
	"github.com/HaydenSingleton/VT-Plotscript/internal/common/type/env"
	"github.com/HaydenSingleton/VT-Plotscript/internal/common/type/errsem"
	"github.com/HaydenSingleton/VT-Plotscript/internal/common/type/expression"
)

// evalList evaluates every child and wraps the results as a list.
func evalList(c expression.T, scope *env.T) (expression.T, error) {
	members, err := evalEach(c.Tail(), scope)
	if err != nil {
		return expression.Empty(), err
	}

	return expression.NewList(members...), nil
}

// evalBegin evaluates each child in order and returns the last result.
func evalBegin(c expression.T, scope *env.T) (expression.T, error) {
	result := expression.Empty()

	for _, child := range c.Tail() {
		v, err := Eval(child, scope)
		if err != nil {
			return expression.Empty(), err
		}

		result = v
	}

	return result, nil
}

func evalDefine(c expression.T, scope *env.T) (expression.T, error) {
	tail := c.Tail()

	if len(tail) != 2 {
		return expression.Empty(), errsem.New("invalid number of arguments to define")
	}

	head := tail[0].Head()
	if !head.IsSymbol() {
		return expression.Empty(), errsem.New("first argument to define not a symbol")
	}

	name := head.AsSymbol()

	switch {
	case env.SpecialForm(name):
		return expression.Empty(), errsem.New("attempt to redefine a special form")
	case scope.IsProc(name):
		return expression.Empty(), errsem.New("attempt to redefine a built-in procedure")
	case env.Constant(name):
		return expression.Empty(), errsem.New("attempt to redefine a reserved symbol")
	}

	result, err := Eval(tail[1], scope)
	if err != nil {
		return expression.Empty(), err
	}

	scope.Define(name, result)

	return result, nil
}

// evalLambda builds a lambda without evaluating its body. The first
// child supplies the parameter template, the second the body.
func evalLambda(c expression.T, scope *env.T) (expression.T, error) {
	tail := c.Tail()

	if len(tail) != 2 {
		return expression.Empty(), errsem.New("invalid number of arguments to lambda")
	}

	first := tail[0].Head()
	if !first.IsSymbol() {
		return expression.Empty(), errsem.New("parameter in lambda not a symbol")
	}

	template := expression.NewNode(first)

	for _, p := range tail[0].Tail() {
		h := p.Head()
		if !h.IsSymbol() || p.TailLength() > 0 {
			return expression.Empty(), errsem.New("parameter in lambda not a symbol")
		}

		template.Append(expression.New(h))
	}

	return expression.NewLambda(template, tail[1]), nil
}

func evalApply(c expression.T, scope *env.T) (expression.T, error) {
	tail := c.Tail()

	if len(tail) != 2 {
		return expression.Empty(), errsem.New("invalid number of arguments to apply")
	}

	if err := operator(tail[0], scope, "apply"); err != nil {
		return expression.Empty(), err
	}

	arguments, err := Eval(tail[1], scope)
	if err != nil {
		return expression.Empty(), err
	}

	if !arguments.IsList() {
		return expression.Empty(), errsem.New("second argument to apply not a list")
	}

	return Apply(tail[0].Head(), arguments.Tail(), scope)
}

func evalMap(c expression.T, scope *env.T) (expression.T, error) {
	tail := c.Tail()

	if len(tail) != 2 {
		return expression.Empty(), errsem.New("invalid number of arguments to map")
	}

	if err := operator(tail[0], scope, "map"); err != nil {
		return expression.Empty(), err
	}

	list, err := Eval(tail[1], scope)
	if err != nil {
		return expression.Empty(), err
	}

	if !list.IsList() {
		return expression.Empty(), errsem.New("second argument to map not a list")
	}

	results := make([]expression.T, 0, list.TailLength())

	for _, member := range list.Tail() {
		v, err := Apply(tail[0].Head(), []expression.T{member}, scope)
		if err != nil {
			return expression.Empty(), err
		}

		results = append(results, v)
	}

	return expression.NewList(results...), nil
}

func evalSetProperty(c expression.T, scope *env.T) (expression.T, error) {
	tail := c.Tail()

	if len(tail) != 3 {
		return expression.Empty(), errsem.New("invalid number of arguments for set-property")
	}

	key := tail[0].Head()
	if !key.IsString() {
		return expression.Empty(), errsem.New("first argument to set-property not a string")
	}

	target, err := Eval(tail[2], scope)
	if err != nil {
		return expression.Empty(), err
	}

	value, err := Eval(tail[1], scope)
	if err != nil {
		return expression.Empty(), err
	}

	result := target.Copy()
	result.SetProperty(key.AsText(), value)

	return result, nil
}

func evalGetProperty(c expression.T, scope *env.T) (expression.T, error) {
	tail := c.Tail()

	if len(tail) != 2 {
		return expression.Empty(), errsem.New("invalid number of arguments for get-property")
	}

	key := tail[0].Head()
	if !key.IsString() {
		return expression.Empty(), errsem.New("first argument to get-property not a string")
	}

	target, err := Eval(tail[1], scope)
	if err != nil {
		return expression.Empty(), err
	}

	if v, ok := target.Property(key.AsText()); ok {
		return v.Copy(), nil
	}

	return expression.Empty(), nil
}

// operator checks that the first argument to apply or map is usable as
// an operator: either a symbol bound to a lambda, or a bare procedure
// name with no arguments of its own.
func operator(c expression.T, scope *env.T, form string) error {
	head := c.Head()

	if head.IsSymbol() {
		if bound, ok := scope.Exp(head.AsSymbol()); ok && bound.IsLambda() {
			return nil
		}

		if scope.IsProc(head.AsSymbol()) && c.TailLength() == 0 {
			return nil
		}
	}

	return errsem.Newf("first argument to %s not a procedure", form)
}
