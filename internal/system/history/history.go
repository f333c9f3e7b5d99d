// Released under an MIT license. See LICENSE.

// Package history loads and saves the REPL history file.
package history

import (
	"io"
	"os"
	"path"

	"github.com/pkg/errors"
)

// Load passes the history file to read.
func Load(read func(r io.Reader) (int, error)) error {
	f, err := file(os.Open)
	if err != nil {
		return errors.Wrap(err, "cannot open history")
	}

	if _, err = read(f); err != nil {
		return errors.Wrap(err, "cannot read history")
	}

	return f.Close()
}

// Save passes the history file to write.
func Save(write func(w io.Writer) (int, error)) error {
	f, err := file(os.Create)
	if err != nil {
		return errors.Wrap(err, "cannot create history")
	}

	if _, err = write(f); err != nil {
		return errors.Wrap(err, "cannot write history")
	}

	return f.Close()
}

func file(op func(string) (*os.File, error)) (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	return op(path.Join(home, ".plotscript_history"))
}
