// Released under an MIT license. See LICENSE.

// Package commands provides plotscript's built-in procedures.
package commands

import (
	"github.com/HaydenSingleton/VT-Plotscript/internal/common/type/atom"
	"github.com/HaydenSingleton/VT-Plotscript/internal/common/type/env"
	"github.com/HaydenSingleton/VT-Plotscript/internal/common/type/errsem"
	"github.com/HaydenSingleton/VT-Plotscript/internal/common/type/expression"
)

// Table returns the default procedure table for a new environment.
func Table() map[string]env.Procedure {
	return map[string]env.Procedure{
		"+":    add,
		"*":    mul,
		"-":    sub,
		"/":    div,
		"sqrt": sqrt,
		"^":    pow,
		"ln":   ln,
		"sin":  sin,
		"cos":  cos,
		"tan":  tan,

		"real": realPart,
		"imag": imagPart,
		"mag":  mag,
		"arg":  arg,
		"conj": conj,

		"<":  lt,
		"<=": le,
		">":  gt,
		">=": ge,
		"=":  eq,

		"list":   list,
		"first":  first,
		"rest":   rest,
		"length": length,
		"append": appendProc,
		"join":   join,
		"range":  rangeProc,

		"make-point": makePoint,
		"make-line":  makeLine,
		"make-text":  makeText,
	}
}

// truth encodes a boolean result as the symbol True or False.
func truth(v bool) expression.T {
	if v {
		return expression.New(atom.NewSymbol("True"))
	}

	return expression.New(atom.NewSymbol("False"))
}

func number(v float64) expression.T {
	return expression.New(atom.NewNumber(v))
}

// argument extracts the float64 value of a number argument.
func argument(name string, c expression.T) (float64, error) {
	h := c.Head()
	if !c.IsSingleton() || !h.IsNumber() {
		return 0, errsem.Newf("in call to %s: argument not a number", name)
	}

	return h.AsNumber(), nil
}

// promoted extracts an argument as a complex number, reporting whether
// the argument was already complex (false when a real was promoted).
func promoted(name string, c expression.T) (v complex128, wasComplex bool, err error) {
	h := c.Head()

	switch {
	case c.IsSingleton() && h.IsNumber():
		return complex(h.AsNumber(), 0), false, nil
	case c.IsSingleton() && h.IsComplex():
		return h.AsComplex(), true, nil
	}

	return 0, false, errsem.Newf("in call to %s: argument not a number", name)
}

// numeric wraps a complex result as a complex atom, or as a number
// when no operand was complex.
func numeric(v complex128, anyComplex bool) expression.T {
	if anyComplex {
		return expression.New(atom.NewComplex(v))
	}

	return number(real(v))
}
