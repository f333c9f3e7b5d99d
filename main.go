/*
Plotscript is an interpreter for a small Lisp-like expression language
whose values include numbers, complex numbers, symbols, strings, lists,
lambdas, and plots. It can evaluate a program from a file:

	plotscript program.pls

evaluate a single expression:

	plotscript -e "(+ 1 2 3)"

or, with no operands, start a read-eval-print loop:

	plotscript

Plotscript is released under an MIT-style license.
*/
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/HaydenSingleton/VT-Plotscript/internal/engine/boot"
	"github.com/HaydenSingleton/VT-Plotscript/internal/interp"
	"github.com/HaydenSingleton/VT-Plotscript/internal/repl"
	"github.com/HaydenSingleton/VT-Plotscript/internal/system/options"
)

func main() {
	options.Parse()

	i := interp.New()

	if !startup(i) {
		os.Exit(1)
	}

	switch {
	case options.Command() != "":
		os.Exit(evalString(options.Command(), i))
	case options.Script() != "":
		os.Exit(evalFile(options.Script(), i))
	default:
		repl.Run(i)
	}
}

// startup evaluates the embedded startup script.
func startup(i *interp.T) bool {
	if !i.ParseStream(strings.NewReader(boot.Script())) {
		fmt.Fprintln(os.Stderr, "Error: Invalid Startup Program. Could not parse.")

		return false
	}

	if _, err := i.Evaluate(); err != nil {
		fmt.Fprintln(os.Stderr, "Start-up failed")
		fmt.Fprintln(os.Stderr, err)

		return false
	}

	return true
}

func evalStream(r io.Reader, i *interp.T) int {
	if !i.ParseStream(r) {
		fmt.Fprintln(os.Stderr, "Error: Invalid Program. Could not parse.")

		return 1
	}

	v, err := i.Evaluate()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)

		return 1
	}

	fmt.Println(v)

	return 0
}

func evalFile(name string, i *interp.T) int {
	f, err := os.Open(name)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error: Could not open file for reading.")

		return 1
	}

	defer f.Close()

	return evalStream(f, i)
}

func evalString(s string, i *interp.T) int {
	return evalStream(strings.NewReader(s), i)
}
