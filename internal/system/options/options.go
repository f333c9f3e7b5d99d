package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

const version = "plotscript 1.0.0"

//nolint:gochecknoglobals
var (
	command     string
	interactive bool
	script      string
	usage       = `plotscript

Usage:
  plotscript [SCRIPT]
  plotscript -e EXPR
  plotscript -h | --help
  plotscript -v | --version

Arguments:
  SCRIPT  Path to a plotscript program, evaluated after the startup script.

Options:
  -e EXPR, --evaluate=EXPR  Evaluate EXPR and exit.
  -h, --help                Display this help.
  -v, --version             Print plotscript version.

With no operands, plotscript starts a read-eval-print loop. If stdin is
a TTY the loop offers line editing, history, and name completion.
`
)

// Command returns the expression passed with -e, if any.
func Command() string {
	return command
}

// Interactive returns true when the REPL should offer line editing.
func Interactive() bool {
	return interactive
}

// Parse processes the command line.
func Parse() {
	opts, err := docopt.ParseArgs(usage, nil, version)
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	command, _ = opts.String("--evaluate")
	script, _ = opts.String("SCRIPT")

	if command == "" && script == "" && isatty.IsTerminal(os.Stdin.Fd()) {
		interactive = true
	}
}

// Script returns the program path operand, if any.
func Script() string {
	return script
}
