// Released under an MIT license. See LICENSE.

// Package env provides plotscript's environment type.
//
// An environment maps symbols to either a built-in procedure or a
// bound expression. Lambda application clones the caller's environment
// and shadows the parameter names, so writes inside a call never
// escape to the defining environment.
package env

import (
	"math"

	"github.com/HaydenSingleton/VT-Plotscript/internal/common/type/atom"
	"github.com/HaydenSingleton/VT-Plotscript/internal/common/type/expression"
)

// Procedure is a built-in callable. It receives evaluated arguments
// and fails with a semantic error on invalid arity or argument kinds.
type Procedure func(args []expression.T) (expression.T, error)

// binding is an environment entry: a procedure or a bound expression.
type binding struct {
	proc   Procedure
	exp    expression.T
	isProc bool
}

// T (env) maps symbols to bindings.
type T struct {
	bindings map[string]binding
	defaults map[string]Procedure
}

type env = T

// specialForms are the head symbols the evaluator dispatches without
// pre-evaluating their children. They can never be defined.
//
//nolint:gochecknoglobals
var specialForms = map[string]bool{
	"begin":           true,
	"define":          true,
	"lambda":          true,
	"list":            true,
	"apply":           true,
	"map":             true,
	"set-property":    true,
	"get-property":    true,
	"discrete-plot":   true,
	"continuous-plot": true,
}

// New creates an environment preloaded with the procedures in procs
// and the constants pi, e, and I.
func New(procs map[string]Procedure) *env {
	e := &env{defaults: procs}

	e.install()

	return e
}

// Clone creates a copy of the environment e. Bindings added to the
// clone are not visible in e.
func (e *env) Clone() *env {
	c := &env{
		bindings: make(map[string]binding, len(e.bindings)),
		defaults: e.defaults,
	}

	for k, v := range e.bindings {
		c.bindings[k] = v
	}

	return c
}

// IsKnown returns true if k names a procedure or a bound expression.
func (e *env) IsKnown(k string) bool {
	_, ok := e.bindings[k]

	return ok
}

// IsProc returns true if k names a built-in procedure.
func (e *env) IsProc(k string) bool {
	b, ok := e.bindings[k]

	return ok && b.isProc
}

// Proc returns the procedure bound to k, if any.
func (e *env) Proc(k string) (Procedure, bool) {
	b, ok := e.bindings[k]
	if !ok || !b.isProc {
		return nil, false
	}

	return b.proc, true
}

// IsExp returns true if k names a bound expression.
func (e *env) IsExp(k string) bool {
	b, ok := e.bindings[k]

	return ok && !b.isProc
}

// Exp returns a copy of the expression bound to k, if any.
func (e *env) Exp(k string) (expression.T, bool) {
	b, ok := e.bindings[k]
	if !ok || b.isProc {
		return expression.Empty(), false
	}

	return b.exp.Copy(), true
}

// Define binds or rebinds k to a copy of v. Callers other than lambda
// application must have already refused reserved names.
func (e *env) Define(k string, v expression.T) {
	e.bindings[k] = binding{exp: v.Copy()}
}

// Shadow unconditionally rebinds k to a copy of v in this environment.
// Lambda parameters may legally alias built-ins within the body.
func (e *env) Shadow(k string, v expression.T) {
	e.bindings[k] = binding{exp: v.Copy()}
}

// Reset discards all user bindings, restoring the default procedures
// and constants.
func (e *env) Reset() {
	e.install()
}

// SpecialForm returns true if k names a special form.
func SpecialForm(k string) bool {
	return specialForms[k]
}

// Constant returns true if k names a reserved constant.
func Constant(k string) bool {
	return k == "pi" || k == "e" || k == "I"
}

func (e *env) install() {
	e.bindings = make(map[string]binding, len(e.defaults)+3)

	for k, p := range e.defaults {
		e.bindings[k] = binding{proc: p, isProc: true}
	}

	e.bindings["pi"] = constant(atom.NewNumber(math.Pi))
	e.bindings["e"] = constant(atom.NewNumber(math.E))
	e.bindings["I"] = constant(atom.NewComplex(complex(0, 1)))
}

func constant(a atom.T) binding {
	return binding{exp: expression.New(a)}
}
