package reader

import (
	"io"

	"github.com/pkg/errors"

	"github.com/HaydenSingleton/VT-Plotscript/internal/common/type/expression"
	"github.com/HaydenSingleton/VT-Plotscript/internal/reader/lexer"
	"github.com/HaydenSingleton/VT-Plotscript/internal/reader/parser"
)

// T (reader) encapsulates the plotscript lexer and parser.
type T struct {
	name string
}

type reader = T

// New creates a new reader for name.
func New(name string) *T {
	return &reader{name: name}
}

// Parse reads all of rd and parses it as a single program.
func (r *reader) Parse(rd io.Reader) (expression.T, error) {
	b, err := io.ReadAll(rd)
	if err != nil {
		return expression.Empty(), errors.Wrap(err, "cannot read program")
	}

	return r.ParseString(string(b))
}

// ParseString parses text as a single program.
func (r *reader) ParseString(text string) (expression.T, error) {
	l := lexer.New(r.name)

	l.Scan(text + "\n")

	return parser.New(l.Token).Parse()
}
