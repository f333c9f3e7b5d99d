// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent parser for the
// plotscript language.
package parser

import (
	"errors"
	"strconv"

	"github.com/HaydenSingleton/VT-Plotscript/internal/common/struct/token"
	"github.com/HaydenSingleton/VT-Plotscript/internal/common/type/atom"
	"github.com/HaydenSingleton/VT-Plotscript/internal/common/type/expression"
)

// T holds the state of the parser.
type T struct {
	ahead int             // Lookahead count.
	item  func() *token.T // Function to call to get another token.
	token *token.T        // Token lookahead.
}

// New creates a new parser consuming tokens from item.
func New(item func() *token.T) *T {
	return &T{item: item}
}

// Parse consumes every token and returns a single expression.
// Two or more top-level forms are wrapped in an implicit begin.
// Parse does not panic; any problem is returned as an error.
func (p *T) Parse() (c expression.T, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		c = expression.Empty()

		switch r := r.(type) {
		case error:
			err = r
		case string:
			err = errors.New(r)
		default:
			err = errors.New("unexpected error")
		}
	}()

	forms := []expression.T{}

	for t := p.peek(); t != nil; t = p.peek() {
		forms = append(forms, p.expression())
	}

	switch len(forms) {
	case 0:
		panic("empty program")
	case 1:
		return forms[0], nil
	}

	return expression.NewNode(atom.NewSymbol("begin"), forms...), nil
}

func (p *T) consume() *token.T {
	if p.ahead == 0 {
		panic("nothing to consume")
	}

	t := p.token

	p.ahead = 0
	p.token = nil

	return t
}

func (p *T) peek() *token.T {
	if p.ahead > 0 {
		return p.token
	}

	p.token = p.item()
	p.ahead = 1

	return p.token
}

// T state functions.

// <expression> ::= <atom> | '(' <expression>* ')' .
//
// The first element of a non-empty form is normally an atom and
// becomes the head. A form whose first element is itself a form gets a
// head with no value; such expressions parse but cannot be applied.
func (p *T) expression() expression.T {
	t := p.peek()

	if !t.Is('(') {
		return expression.New(p.atom())
	}

	p.consume()

	if p.peek().Is(')') {
		panic("empty expression")
	}

	var c expression.T
	if p.peek().Is('(') {
		c = expression.NewNode(atom.None(), p.expression())
	} else {
		c = expression.NewNode(p.atom())
	}

	for !p.peek().Is(')') {
		if p.peek() == nil {
			panic("unexpected end of program")
		}

		c.Append(p.expression())
	}

	p.consume()

	return c
}

func (p *T) atom() atom.T {
	t := p.peek()

	if t == nil {
		panic("unexpected end of program")
	}

	if t.Is(token.Error) {
		panic("unterminated string " + t.Value())
	}

	if !t.Is(token.Bare, token.String) {
		panic("unexpected '" + t.Value() + "'")
	}

	p.consume()

	v := t.Value()

	if t.Is(token.String) {
		return atom.NewText(v)
	}

	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return atom.NewNumber(f)
	}

	if v[0] >= '0' && v[0] <= '9' {
		panic("'" + v + "' is not a valid atom")
	}

	return atom.NewText(v)
}
