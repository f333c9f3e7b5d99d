// Released under an MIT license. See LICENSE.

package engine

import (
	"testing"

	"github.com/HaydenSingleton/VT-Plotscript/internal/common/type/env"
	"github.com/HaydenSingleton/VT-Plotscript/internal/common/type/expression"
	"github.com/HaydenSingleton/VT-Plotscript/internal/engine/commands"
	"github.com/HaydenSingleton/VT-Plotscript/internal/engine/interrupt"
	"github.com/HaydenSingleton/VT-Plotscript/internal/reader"
)

type harness struct {
	scope *env.T
	t     *testing.T
}

func setup(t *testing.T) *harness {
	return &harness{scope: env.New(commands.Table()), t: t}
}

func (h *harness) eval(src string) (expression.T, error) {
	h.t.Helper()

	c, err := reader.New("test").ParseString(src)
	if err != nil {
		h.t.Fatalf("parse of %q failed: %v", src, err)
	}

	return Eval(c, h.scope)
}

func (h *harness) expect(src, want string) {
	h.t.Helper()

	v, err := h.eval(src)
	if err != nil {
		h.t.Fatalf("eval of %q failed: %v", src, err)
	}

	if got := v.String(); got != want {
		h.t.Fatalf("eval of %q = %s; want %s", src, got, want)
	}
}

func (h *harness) expectError(src, message string) {
	h.t.Helper()

	_, err := h.eval(src)
	if err == nil {
		h.t.Fatalf("eval of %q should have failed", src)
	}

	if message != "" && err.Error() != message {
		h.t.Fatalf("eval of %q failed with %q; want %q", src, err.Error(), message)
	}
}

func TestArithmetic(t *testing.T) {
	h := setup(t)

	h.expect("(+ 1 2 3)", "6")
	h.expect("(- 5 2)", "3")
	h.expect("(- 5)", "-5")
	h.expect("(* 2 3 4)", "24")
	h.expect("(/ 8 2)", "4")
	h.expect("(/ 2)", "0.5")
	h.expect("(^ 2 10)", "1024")
}

func TestNumericPromotion(t *testing.T) {
	h := setup(t)

	h.expect("(+ 1 2 I)", "(3,1)")
	h.expect("(* 2 I)", "(0,2)")
	h.expect("(sqrt -1)", "(0,1)")
	h.expect("(sqrt 4)", "2")
}

func TestDefineAndBegin(t *testing.T) {
	h := setup(t)

	h.expect("(begin (define a 3) (define b (+ 1 a)) b)", "4")
	h.expect("a", "3")
}

func TestLexicalScoping(t *testing.T) {
	h := setup(t)

	h.expect("(begin (define x 1) (define f (lambda (x) x)) (f 2))", "2")
	h.expect("x", "1")
}

func TestLambda(t *testing.T) {
	h := setup(t)

	h.expect("(begin (define sq (lambda (x) (* x x))) (sq 5))", "25")
	h.expect("(begin (define hyp (lambda (a b) (sqrt (+ (* a a) (* b b))))) (hyp 3 4))", "5")
	h.expectError("(begin (define id (lambda (x) x)) (id 1 2))",
		"Error: invalid number of arguments in call to procedure")
}

func TestLambdaShadowsBuiltin(t *testing.T) {
	h := setup(t)

	// A parameter may legally alias a built-in within the body.
	h.expect("(begin (define f (lambda (first) (* first 2))) (f 21))", "42")
}

func TestListTotality(t *testing.T) {
	h := setup(t)

	h.expect("(list)", "()")
	h.expect("(length (list))", "0")
	h.expect("(list 1 2 3)", "(1 2 3)")
}

func TestMap(t *testing.T) {
	h := setup(t)

	h.expect("(define sq (lambda (x) (* x x))) (map sq (list 1 2 3))", "(1 4 9)")
	h.expect("(map - (list 1 2 3))", "(-1 -2 -3)")
	h.expectError("(map + 3)", "Error: second argument to map not a list")
	h.expectError("(map 3 (list 1 2))", "Error: first argument to map not a procedure")
}

func TestApply(t *testing.T) {
	h := setup(t)

	h.expect("(apply + (list 1 2 3))", "6")
	h.expect("(begin (define sq (lambda (x) (* x x))) (apply sq (list 4)))", "16")
	h.expectError("(apply + 3)", "Error: second argument to apply not a list")
	h.expectError("(apply (+ 1) (list 1 2))", "Error: first argument to apply not a procedure")
}

func TestListProcedures(t *testing.T) {
	h := setup(t)

	h.expect("(first (list 1 2 3))", "1")
	h.expect("(rest (list 1 2 3))", "(2 3)")
	h.expect("(append (list 1 2) 3)", "(1 2 3)")
	h.expect("(join (list 1 2) (list 3 4))", "(1 2 3 4)")
	h.expect("(range 0 4 2)", "(0 2 4)")
	h.expectError("(first (list))", "Error: argument to first is an empty list")
	h.expectError("(first 1)", "Error: argument to first is not a list")
}

func TestProperties(t *testing.T) {
	h := setup(t)

	h.expect(`(get-property "key" (set-property "key" 42 (list 1 2)))`, "42")
	h.expect(`(get-property "missing" (list 1 2))`, "NONE")
	h.expect(`(set-property "key" 42 (list 1 2))`, "(1 2)")
	h.expectError(`(set-property 1 42 (list 1 2))`,
		"Error: first argument to set-property not a string")
}

func TestRedefinitionRefused(t *testing.T) {
	h := setup(t)

	h.expectError("(define define 3)", "Error: attempt to redefine a special form")
	h.expectError("(define list 3)", "Error: attempt to redefine a special form")
	h.expectError("(define + 3)", "Error: attempt to redefine a built-in procedure")
	h.expectError("(define pi 3)", "Error: attempt to redefine a reserved symbol")
}

func TestUnknownSymbol(t *testing.T) {
	h := setup(t)

	h.expectError("nope", "Error: unknown symbol nope")
	h.expectError("(nope 1 2)", "")
}

func TestPartialBeginEffectsPersist(t *testing.T) {
	h := setup(t)

	h.expectError("(begin (define a 1) (first (list)))", "")
	h.expect("a", "1")
}

func TestInterrupt(t *testing.T) {
	h := setup(t)

	interrupt.Set()
	defer interrupt.Clear()

	h.expectError("(+ 1 2)", "Error: interpreter kernel interrupted")
}

func TestBooleans(t *testing.T) {
	h := setup(t)

	h.expect("(< 1 2)", "True")
	h.expect("(>= 1 2)", "False")
	h.expect("(= 2 2)", "True")
	h.expect("(= 2 3)", "False")
}

func TestConstants(t *testing.T) {
	h := setup(t)

	h.expect("(cos pi)", "-1")
	h.expect("(* I I)", "(-1,0)")
}

func TestDiscretePlot(t *testing.T) {
	h := setup(t)

	v, err := h.eval(`(discrete-plot (list (list -1 -1) (list 1 1))
		(list (list "title" "The Data")))`)
	if err != nil {
		t.Fatalf("discrete-plot failed: %v", err)
	}

	if !v.IsPlot() {
		t.Fatal("discrete-plot did not return a plot")
	}

	kind, ok := v.Property("type")
	if !ok || kind.Head().AsSymbol() != "DP" {
		t.Fatal("plot type property is not DP")
	}

	n, ok := v.Property("numpoints")
	if !ok || n.Head().AsNumber() != 2 {
		t.Fatal("numpoints property is wrong")
	}

	n, ok = v.Property("numoptions")
	if !ok || n.Head().AsNumber() != 1 {
		t.Fatal("numoptions property is wrong")
	}

	if v.TailLength() < 8 {
		t.Fatalf("plot is missing primitives: %d children", v.TailLength())
	}

	h.expectError("(discrete-plot 1 (list))", "Error: an argument to discrete-plot is not a list")
}

func TestContinuousPlot(t *testing.T) {
	h := setup(t)

	v, err := h.eval(`(continuous-plot (lambda (x) x) (list -1 1)
		(list (list "title" "A Line")))`)
	if err != nil {
		t.Fatalf("continuous-plot failed: %v", err)
	}

	if !v.IsPlot() {
		t.Fatal("continuous-plot did not return a plot")
	}

	kind, ok := v.Property("type")
	if !ok || kind.Head().AsSymbol() != "CP" {
		t.Fatal("plot type property is not CP")
	}

	n, ok := v.Property("numpoints")
	if !ok || n.Head().AsNumber() != 51 {
		t.Fatal("numpoints property is wrong")
	}

	h.expectError("(continuous-plot 1 (list -1 1))",
		"Error: first argument to continuous-plot not a lambda")
	h.expectError("(continuous-plot (lambda (x) x) 1)",
		"Error: second argument to continuous-plot not a list")
}

func TestPrintedResultsReparse(t *testing.T) {
	h := setup(t)

	for _, src := range []string{
		"(+ 1 2 3)",
		"(list 1 2 3)",
		"(list (list 1) (list 2))",
		"(lambda (x) (* x x))",
		`"hello"`,
	} {
		v, err := h.eval(src)
		if err != nil {
			t.Fatalf("eval of %q failed: %v", src, err)
		}

		printed := v.String()

		if _, err := reader.New("reparse").ParseString(printed); err != nil {
			t.Fatalf("printed result %q of %q does not reparse: %v", printed, src, err)
		}
	}
}
