// Released under an MIT license. See LICENSE.

package expression

import (
	"testing"

	"github.com/davecgh/go-spew/spew"

	"github.com/HaydenSingleton/VT-Plotscript/internal/common/type/atom"
)

func TestPrintedForms(t *testing.T) {
	empty := Empty()
	six := New(atom.NewNumber(6))
	cpx := New(atom.NewComplex(complex(1, 3)))
	list := NewList(New(atom.NewNumber(1)), New(atom.NewNumber(2)))

	for _, tc := range []struct {
		e    *T
		want string
	}{
		{&empty, "NONE"},
		{&six, "6"},
		{&cpx, "(1,3)"},
		{&list, "(1 2)"},
	} {
		if got := tc.e.String(); got != tc.want {
			t.Fatalf("String() = %q; want %q\n%s", got, tc.want, spew.Sdump(tc.e))
		}
	}
}

func TestNestedPrint(t *testing.T) {
	inner := NewList(New(atom.NewNumber(1)), New(atom.NewNumber(2)))
	outer := NewList(inner, New(atom.NewNumber(3)))

	if got := outer.String(); got != "((1 2) 3)" {
		t.Fatalf("String() = %q; want %q", got, "((1 2) 3)")
	}
}

func TestProperties(t *testing.T) {
	e := NewList(New(atom.NewNumber(1)))

	if _, ok := e.Property(`"size"`); ok {
		t.Fatal("unset property reported present")
	}

	e.SetProperty(`"size"`, New(atom.NewNumber(2)))

	v, ok := e.Property(`"size"`)
	if !ok || !v.Head().Equal(atom.NewNumber(2)) {
		t.Fatal("property not stored")
	}

	e.SetProperty(`"size"`, New(atom.NewNumber(3)))

	v, _ = e.Property(`"size"`)
	if !v.Head().Equal(atom.NewNumber(3)) {
		t.Fatal("property not overwritten")
	}
}

func TestCopyIsDeep(t *testing.T) {
	e := NewList(New(atom.NewNumber(1)))
	e.SetProperty(`"size"`, New(atom.NewNumber(0)))

	c := e.Copy()
	c.SetProperty(`"size"`, New(atom.NewNumber(9)))

	v, _ := e.Property(`"size"`)
	if !v.Head().Equal(atom.NewNumber(0)) {
		t.Fatalf("copy shares properties with the original\n%s", spew.Sdump(e))
	}
}

func TestEqualIgnoresProperties(t *testing.T) {
	l := NewList(New(atom.NewNumber(1)))
	r := NewList(New(atom.NewNumber(1)))

	r.SetProperty(`"size"`, New(atom.NewNumber(9)))

	if !l.Equal(r) {
		t.Fatal("properties should not participate in equality")
	}

	if l.Equal(NewList(New(atom.NewNumber(2)))) {
		t.Fatal("lists with distinct members compare equal")
	}
}

func TestKinds(t *testing.T) {
	lambda := NewLambda(NewNode(atom.NewSymbol("x")), New(atom.NewSymbol("x")))

	if !lambda.IsLambda() {
		t.Fatal("lambda kind not set")
	}

	plot := NewPlot("DP")

	if !plot.IsPlot() {
		t.Fatal("plot kind not set")
	}

	v, ok := plot.Property("type")
	if !ok || v.Head().AsSymbol() != "DP" {
		t.Fatal("plot type property not set")
	}

	if !Empty().IsEmpty() {
		t.Fatal("empty expression not empty")
	}
}
