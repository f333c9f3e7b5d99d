// Released under an MIT license. See LICENSE.

package parser

import (
	"testing"

	"github.com/HaydenSingleton/VT-Plotscript/internal/common/type/expression"
	"github.com/HaydenSingleton/VT-Plotscript/internal/reader/lexer"
)

func parse(t *testing.T, s string) (expression.T, error) {
	t.Helper()

	l := lexer.New("test")

	l.Scan(s + "\n")

	return New(l.Token).Parse()
}

func parsed(t *testing.T, s string) expression.T {
	t.Helper()

	c, err := parse(t, s)
	if err != nil {
		t.Fatalf("parse of %q failed: %v", s, err)
	}

	return c
}

func failed(t *testing.T, s string) {
	t.Helper()

	if _, err := parse(t, s); err == nil {
		t.Fatalf("parse of %q should have failed", s)
	}
}

func TestAtomClassification(t *testing.T) {
	c := parsed(t, "6")
	if !c.IsSingleton() || !c.Head().IsNumber() || c.Head().AsNumber() != 6 {
		t.Fatalf("6 did not parse as a number: %v", c)
	}

	c = parsed(t, "-3.5")
	if !c.Head().IsNumber() || c.Head().AsNumber() != -3.5 {
		t.Fatalf("-3.5 did not parse as a number: %v", c)
	}

	c = parsed(t, "foo")
	if !c.Head().IsSymbol() || c.Head().AsSymbol() != "foo" {
		t.Fatalf("foo did not parse as a symbol: %v", c)
	}

	c = parsed(t, `"foo"`)
	if !c.Head().IsString() || c.Head().AsText() != `"foo"` {
		t.Fatalf(`"foo" did not parse as a string: %v`, c)
	}
}

func TestBadAtom(t *testing.T) {
	failed(t, "2a")
}

func TestForm(t *testing.T) {
	c := parsed(t, "(+ 1 (* 2 3))")

	if c.Head().AsSymbol() != "+" || c.TailLength() != 2 {
		t.Fatalf("form has the wrong shape: %v", c)
	}

	inner := c.Tail()[1]
	if inner.Head().AsSymbol() != "*" || inner.TailLength() != 2 {
		t.Fatalf("nested form has the wrong shape: %v", inner)
	}
}

func TestEmptyForm(t *testing.T) {
	failed(t, "()")
}

func TestMismatchedParens(t *testing.T) {
	failed(t, "(+ 1 2")
	failed(t, ")")
	failed(t, "(+ 1 2))")
}

func TestEmptyProgram(t *testing.T) {
	failed(t, "")
	failed(t, "; only a comment")
}

func TestMultipleFormsBecomeBegin(t *testing.T) {
	c := parsed(t, "(define x 1) (define y 2)")

	if c.Head().AsSymbol() != "begin" || c.TailLength() != 2 {
		t.Fatalf("multiple forms did not wrap in begin: %v", c)
	}
}

func TestUnterminatedString(t *testing.T) {
	failed(t, `(define s "oops`)
}

func TestCommentInsideForm(t *testing.T) {
	c := parsed(t, "(+ 1 ; one\n 2)")

	if c.TailLength() != 2 {
		t.Fatalf("comment swallowed part of the form: %v", c)
	}
}
