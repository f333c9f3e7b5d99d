// Released under an MIT license. See LICENSE.

// Package errsem provides plotscript's semantic error type.
package errsem

import (
	"errors"
	"fmt"
)

// T (errsem) is the error produced when evaluation fails.
type T struct {
	msg string
}

type errsem = T

// New creates a new errsem with the message msg.
func New(msg string) error {
	return &errsem{msg: msg}
}

// Newf creates a new errsem with a formatted message.
func Newf(format string, args ...interface{}) error {
	return &errsem{msg: fmt.Sprintf(format, args...)}
}

// Error returns the message for the errsem e, with the standard prefix.
func (e *errsem) Error() string {
	return "Error: " + e.msg
}

// Is returns true if err is (or wraps) a semantic error.
func Is(err error) bool {
	var t *errsem

	return errors.As(err, &t)
}
