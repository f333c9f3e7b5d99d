// Released under an MIT license. See LICENSE.

package interp

import (
	"strings"
	"testing"
)

func TestParseAndEvaluate(t *testing.T) {
	i := New()

	if !i.ParseStream(strings.NewReader("(+ 1 2 3)")) {
		t.Fatal("parse failed")
	}

	v, err := i.Evaluate()
	if err != nil {
		t.Fatalf("evaluate failed: %v", err)
	}

	if v.String() != "6" {
		t.Fatalf("evaluate = %s; want 6", v.String())
	}
}

func TestParseFailure(t *testing.T) {
	i := New()

	if i.ParseStream(strings.NewReader("(+ 1")) {
		t.Fatal("parse of an incomplete form succeeded")
	}

	// A failed parse replaces the stored program.
	if _, err := i.Evaluate(); err == nil {
		t.Fatal("evaluating after a failed parse should fail")
	}
}

func TestParseReplacesProgram(t *testing.T) {
	i := New()

	i.ParseStream(strings.NewReader("(+ 1 2)"))
	i.ParseStream(strings.NewReader("(* 2 5)"))

	v, err := i.Evaluate()
	if err != nil {
		t.Fatalf("evaluate failed: %v", err)
	}

	if v.String() != "10" {
		t.Fatalf("evaluate = %s; want 10", v.String())
	}
}

func TestEnvironmentPersistsAcrossEvaluations(t *testing.T) {
	i := New()

	i.ParseStream(strings.NewReader("(define a 3)"))

	if _, err := i.Evaluate(); err != nil {
		t.Fatalf("define failed: %v", err)
	}

	i.ParseStream(strings.NewReader("(+ a 1)"))

	v, err := i.Evaluate()
	if err != nil {
		t.Fatalf("evaluate failed: %v", err)
	}

	if v.String() != "4" {
		t.Fatalf("evaluate = %s; want 4", v.String())
	}
}

func TestSemanticErrorPropagates(t *testing.T) {
	i := New()

	i.ParseStream(strings.NewReader("(first (list))"))

	if _, err := i.Evaluate(); err == nil {
		t.Fatal("semantic error did not propagate")
	}
}

func TestReset(t *testing.T) {
	i := New()

	i.ParseStream(strings.NewReader("(define a 3)"))

	if _, err := i.Evaluate(); err != nil {
		t.Fatalf("define failed: %v", err)
	}

	i.Reset()

	i.ParseStream(strings.NewReader("a"))

	if _, err := i.Evaluate(); err == nil {
		t.Fatal("binding survived reset")
	}
}
