// Released under an MIT license. See LICENSE.

// Package expression provides plotscript's tree node type.
//
// An expression is a head atom, an ordered tail of child expressions,
// and a property map. Property keys created from language strings keep
// their surrounding quote characters.
package expression

import (
	"strings"

	"github.com/HaydenSingleton/VT-Plotscript/internal/common/type/atom"
)

// Kind distinguishes the roles an expression can play.
type Kind uint8

// Expression kinds.
const (
	None Kind = iota
	Singleton
	List
	Lambda
	Plot
)

// T (expression) is a node in a plotscript syntax or value tree.
type T struct {
	head       atom.T
	tail       []T
	properties map[string]T
	kind       Kind
}

type expression = T

// Empty creates an expression with no value.
func Empty() expression {
	return expression{}
}

// New creates a singleton expression holding the atom a.
func New(a atom.T) expression {
	return expression{head: a, kind: Singleton}
}

// NewNode creates an interior node with the head atom a and the given
// children. The parser and the evaluator use nodes for forms that have
// not yet been given a more specific kind.
func NewNode(a atom.T, children ...T) expression {
	return expression{head: a, tail: children}
}

// NewList creates a list expression. A list has no head.
func NewList(members ...T) expression {
	return expression{tail: members, kind: List}
}

// NewLambda creates a lambda expression from a parameter template and
// an unevaluated body.
func NewLambda(template, body T) expression {
	return expression{tail: []T{template, body}, kind: Lambda}
}

// NewPlot creates a plot expression of the named type ("DP" or "CP")
// whose children are drawable primitives.
func NewPlot(name string, children ...T) expression {
	p := expression{tail: children, kind: Plot}
	p.SetProperty("type", New(atom.NewSymbol(name)))

	return p
}

// Head returns the head atom of the expression e.
func (e expression) Head() atom.T {
	return e.head
}

// Tail returns the children of the expression e.
// The returned slice is shared with e and must not be modified.
func (e expression) Tail() []T {
	return e.tail
}

// TailLength returns the number of children of the expression e.
func (e expression) TailLength() int {
	return len(e.tail)
}

// Append adds children to the expression e.
func (e *expression) Append(children ...T) {
	e.tail = append(e.tail, children...)
}

// Kind returns the kind of the expression e.
func (e expression) Kind() Kind {
	return e.kind
}

// IsEmpty returns true if the expression e has no value at all.
func (e expression) IsEmpty() bool {
	return e.kind == None && e.head.IsNone() && len(e.tail) == 0
}

// IsSingleton returns true if the expression e is an atom leaf.
func (e expression) IsSingleton() bool {
	return e.kind == Singleton
}

// IsList returns true if the expression e is a list.
func (e expression) IsList() bool {
	return e.kind == List
}

// IsLambda returns true if the expression e is a lambda.
func (e expression) IsLambda() bool {
	return e.kind == Lambda
}

// IsPlot returns true if the expression e is a plot.
func (e expression) IsPlot() bool {
	return e.kind == Plot
}

// Property returns the property stored under key, if any.
func (e expression) Property(key string) (T, bool) {
	v, ok := e.properties[key]

	return v, ok
}

// SetProperty stores value under key, replacing any previous value.
func (e *expression) SetProperty(key string, value T) {
	if e.properties == nil {
		e.properties = map[string]T{}
	}

	e.properties[key] = value
}

// Copy creates a deep clone of the expression e.
func (e expression) Copy() T {
	c := expression{head: e.head, kind: e.kind}

	if e.tail != nil {
		c.tail = make([]T, len(e.tail))
		for i := range e.tail {
			c.tail[i] = e.tail[i].Copy()
		}
	}

	if e.properties != nil {
		c.properties = make(map[string]T, len(e.properties))
		for k, v := range e.properties {
			c.properties[k] = v.Copy()
		}
	}

	return c
}

// Equal returns true if c has the same head and, recursively, the same
// children as e. Properties do not participate in equality.
func (e expression) Equal(c T) bool {
	if !e.head.Equal(c.head) || len(e.tail) != len(c.tail) {
		return false
	}

	for i := range e.tail {
		if !e.tail[i].Equal(c.tail[i]) {
			return false
		}
	}

	return true
}

// String returns the printed form of the expression e. The empty
// expression prints as NONE, a complex singleton as (r,i) with no
// outer parentheses, any other singleton as its atom, a list as its
// members between parentheses, and an unevaluated form as its operator
// followed by its children.
func (e expression) String() string {
	if e.IsEmpty() {
		return "NONE"
	}

	if e.kind == Singleton {
		return e.head.String()
	}

	if e.kind == Lambda {
		return e.lambdaString()
	}

	var b strings.Builder

	b.WriteString("(")

	// Lists have no head. Unevaluated forms keep their operator.
	lead := false
	if !e.head.IsNone() && e.kind == None {
		b.WriteString(e.head.String())

		lead = true
	}

	for i := range e.tail {
		if i > 0 || lead {
			b.WriteString(" ")
		}

		b.WriteString(e.tail[i].String())
	}

	b.WriteString(")")

	return b.String()
}

// lambdaString prints a lambda as its parameter list and body. The
// template stores the first parameter as its head, so the generic rule
// of printing only children would lose it.
func (e expression) lambdaString() string {
	template := e.tail[0]

	var b strings.Builder

	b.WriteString("((")
	b.WriteString(template.head.String())

	for i := range template.tail {
		b.WriteString(" ")
		b.WriteString(template.tail[i].String())
	}

	b.WriteString(") ")
	b.WriteString(e.tail[1].String())
	b.WriteString(")")

	return b.String()
}
