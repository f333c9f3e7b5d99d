// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for the plotscript language.
//
// The lexer adapts the state function approach used by Go's
// text/template lexer and described in detail in Rob Pike's talk
// "Lexical Scanning in Go".
// See https://talks.golang.org/2011/lex.slide for more information.
package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/HaydenSingleton/VT-Plotscript/internal/common/struct/loc"
	"github.com/HaydenSingleton/VT-Plotscript/internal/common/struct/token"
)

// T holds the state of the scanner.
type T struct {
	bytes string   // Buffer being scanned.
	first int      // Index of the current token's first byte.
	index int      // Index of the current byte.
	queue []string // Buffers waiting to be scanned.
	runes int      // Runes scanned on the current line.
	state action   // Current action.

	source loc.T

	tokens chan *token.T
}

// New creates a new T. Label can be a file name or other identifier.
func New(label string) *T {
	l := &T{
		source: loc.T{
			Char: 1,
			Line: 1,
			Name: label,
		},
	}

	l.state = skipWhitespace

	return l
}

// Scan passes a text buffer to the lexer for scanning.
// If a buffer is currently being scanned, the new buffer will
// be appended to the list of buffers waiting to be scanned.
func (l *T) Scan(text string) {
	l.queue = append(l.queue, text)
}

// Text is used to return the text corresponding to the current token.
func (l *T) Text() string {
	return l.bytes[l.first:l.index]
}

// Token returns the next scanned token, or nil if no token is available.
func (l *T) Token() *token.T {
	for {
		l.gather()
		if len(l.bytes) == 0 {
			return nil
		}

		select {
		case t := <-l.tokens:
			return t
		default:
			state := l.state(l)
			if state != nil {
				l.state = state
			} else {
				close(l.tokens)
			}
		}
	}
}

type action func(*T) action

const eof = -1

func (l *T) accept(r rune, w int) {
	if r == '\n' {
		l.source.Line++
		l.runes = 1
	} else {
		l.runes++
	}

	l.index += w
}

func (l *T) emit(c token.Class) {
	l.tokens <- token.New(c, l.Text(), l.source)
	l.skip()
}

func (l *T) gather() {
	if len(l.queue) == 0 {
		return
	}

	length := len(l.bytes)
	bytes := strings.Join(l.queue, "")

	if length > 0 && l.first < length {
		// Prepend leftover to new bytes.
		bytes = l.bytes[l.first:] + bytes
	} else {
		l.source.Char = 1
		l.runes = 1
	}

	l.queue = nil
	l.bytes = bytes
	l.index -= l.first
	l.first = 0
	l.tokens = make(chan *token.T, 16)
}

func (l *T) next() rune {
	r, w := l.peek()
	l.accept(r, w)

	return r
}

func (l *T) peek() (rune, int) {
	r, w := rune(eof), 0
	if l.index < len(l.bytes) {
		r, w = utf8.DecodeRuneInString(l.bytes[l.index:])
	}

	return r, w
}

func (l *T) skip() {
	l.source.Char = l.runes
	l.first = l.index
}

// T states.

func scanBare(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case eof:
			if len(l.Text()) > 0 {
				l.emit(token.Bare)
			}

			return nil
		case ' ', '\t', '\n', '\r', '(', ')', '"', ';':
			l.emit(token.Bare)

			return skipWhitespace
		default:
			l.accept(r, w)
		}
	}
}

func scanString(l *T) action {
	for {
		r := l.next()

		switch r {
		case eof:
			// Unterminated string.
			l.emit(token.Error)

			return nil
		case '"':
			l.emit(token.String)

			return skipWhitespace
		}
	}
}

func skipComment(l *T) action {
	for {
		r := l.next()

		switch r {
		case eof:
			return nil
		case '\n':
			l.skip()

			return skipWhitespace
		}
	}
}

func skipWhitespace(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case eof:
			return nil
		case ' ', '\t', '\n', '\r':
			l.accept(r, w)
			l.skip()
		case '(', ')':
			l.accept(r, w)
			l.emit(token.Class(r))

			// Return so the token is drained before the next emit.
			return skipWhitespace
		case '"':
			l.accept(r, w)

			return scanString
		case ';':
			l.accept(r, w)

			return skipComment
		default:
			return scanBare
		}
	}
}
