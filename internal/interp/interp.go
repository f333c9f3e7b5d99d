// Released under an MIT license. See LICENSE.

// Package interp ties the plotscript reader, environment, and
// evaluator together behind a small facade.
package interp

import (
	"io"

	"github.com/HaydenSingleton/VT-Plotscript/internal/common/type/env"
	"github.com/HaydenSingleton/VT-Plotscript/internal/common/type/expression"
	"github.com/HaydenSingleton/VT-Plotscript/internal/engine"
	"github.com/HaydenSingleton/VT-Plotscript/internal/engine/commands"
	"github.com/HaydenSingleton/VT-Plotscript/internal/reader"
)

// T (interp) owns one environment and the most recently parsed program.
type T struct {
	ast    expression.T
	reader *reader.T
	scope  *env.T
}

type interp = T

// New creates an interpreter with the default environment.
func New() *T {
	return &interp{
		reader: reader.New("plotscript"),
		scope:  env.New(commands.Table()),
	}
}

// ParseStream parses r, replacing the stored program. It reports
// whether the parse succeeded; on failure the stored program is empty.
func (i *interp) ParseStream(r io.Reader) bool {
	c, err := i.reader.Parse(r)
	if err != nil {
		i.ast = expression.Empty()

		return false
	}

	i.ast = c

	return true
}

// Evaluate evaluates the stored program against the interpreter's
// environment, propagating any semantic error.
func (i *interp) Evaluate() (expression.T, error) {
	return engine.Eval(i.ast, i.scope)
}

// Reset restores the environment's default procedures and constants.
func (i *interp) Reset() {
	i.scope.Reset()
}
