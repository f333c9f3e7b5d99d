// Released under an MIT license. See LICENSE.

// Package repl provides plotscript's read-eval-print loop.
//
// The reader runs on the calling goroutine and the evaluator on a
// worker. They share nothing but two blocking queues and the interrupt
// flag: lines of input flow one way, (expression, error) pairs flow
// back. An empty line is the sentinel that stops the worker.
package repl

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"sync"

	"github.com/peterh/liner"

	"github.com/HaydenSingleton/VT-Plotscript/internal/common/type/expression"
	"github.com/HaydenSingleton/VT-Plotscript/internal/engine/commands"
	"github.com/HaydenSingleton/VT-Plotscript/internal/engine/interrupt"
	"github.com/HaydenSingleton/VT-Plotscript/internal/interp"
	"github.com/HaydenSingleton/VT-Plotscript/internal/repl/queue"
	"github.com/HaydenSingleton/VT-Plotscript/internal/system/history"
	"github.com/HaydenSingleton/VT-Plotscript/internal/system/options"
)

// Result pairs an evaluated expression with an error message. Exactly
// one of the two is meaningful; an empty message means success.
type Result struct {
	Expression expression.T
	Error      string
}

const prompt = "plotscript> "

// Run drives the REPL until end of input.
func Run(i *interp.T) {
	in := queue.New[string]()
	out := queue.New[Result]()

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()
		evaluate(i, in, out)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, interruptSignals...)

	go func() {
		for range sig {
			interrupt.Set()
		}
	}()

	if options.Interactive() {
		interactive(in, out)
	} else {
		batch(in, out)
	}

	signal.Stop(sig)
	close(sig)

	in.Push("")
	wg.Wait()
}

// evaluate services the input queue until it pops the empty sentinel.
func evaluate(i *interp.T, in *queue.T[string], out *queue.T[Result]) {
	for {
		line := in.WaitAndPop()
		if line == "" {
			return
		}

		if line == "%reset" {
			i.Reset()
			out.Push(Result{Expression: expression.Empty()})

			continue
		}

		if !i.ParseStream(strings.NewReader(line)) {
			out.Push(Result{Error: "Error: Invalid Expression. Could not parse."})

			continue
		}

		v, err := i.Evaluate()
		if err != nil {
			out.Push(Result{Error: err.Error()})

			continue
		}

		out.Push(Result{Expression: v})
	}
}

func interactive(in *queue.T[string], out *queue.T[Result]) {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)
	cli.SetWordCompleter(complete)

	// A missing history file is expected on first run.
	_ = history.Load(cli.ReadHistory)

	for {
		line, err := cli.Prompt(prompt)

		switch err {
		case nil:
		case liner.ErrPromptAborted:
			fmt.Println()

			continue
		default:
			fmt.Println()

			if err := history.Save(cli.WriteHistory); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}

			return
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		cli.AppendHistory(line)
		exchange(line, in, out)
	}
}

func batch(in *queue.T[string], out *queue.T[Result]) {
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print(prompt)

		if !scanner.Scan() {
			fmt.Println()

			return
		}

		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		exchange(line, in, out)
	}
}

// exchange sends one line to the evaluator and prints its reply.
func exchange(line string, in *queue.T[string], out *queue.T[Result]) {
	interrupt.Clear()

	in.Push(line)

	r := out.WaitAndPop()

	if r.Error == "" {
		fmt.Println(r.Expression)
	} else {
		fmt.Fprintln(os.Stderr, r.Error)
	}
}

// complete offers the names the default environment knows about.
func complete(line string, pos int) (head string, completions []string, tail string) {
	head = line[:pos]
	tail = line[pos:]

	start := strings.LastIndexAny(head, "( \t") + 1
	word := head[start:]
	head = head[:start]

	for _, name := range names() {
		if strings.HasPrefix(name, word) {
			completions = append(completions, name)
		}
	}

	return head, completions, tail
}

func names() []string {
	table := commands.Table()

	all := make([]string, 0, len(table)+13)

	for k := range table {
		all = append(all, k)
	}

	for _, k := range []string{
		"begin", "define", "lambda", "apply", "map",
		"set-property", "get-property",
		"discrete-plot", "continuous-plot",
		"pi", "e", "I", "%reset",
	} {
		all = append(all, k)
	}

	sort.Strings(all)

	return all
}
