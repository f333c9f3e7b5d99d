// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/HaydenSingleton/VT-Plotscript/internal/common/type/errsem"
	"github.com/HaydenSingleton/VT-Plotscript/internal/common/type/expression"
	"github.com/HaydenSingleton/VT-Plotscript/internal/common/validate"
)

// list wraps its arguments as a list. The evaluator dispatches the
// list form directly; this procedure exists so that list can also be
// passed to apply and map.
func list(args []expression.T) (expression.T, error) {
	members := make([]expression.T, len(args))

	for i := range args {
		members[i] = args[i].Copy()
	}

	return expression.NewList(members...), nil
}

func first(args []expression.T) (expression.T, error) {
	if err := validate.Exact("first", args, 1); err != nil {
		return expression.Empty(), err
	}

	if !args[0].IsList() {
		return expression.Empty(), errsem.New("argument to first is not a list")
	}

	if args[0].TailLength() == 0 {
		return expression.Empty(), errsem.New("argument to first is an empty list")
	}

	return args[0].Tail()[0].Copy(), nil
}

func rest(args []expression.T) (expression.T, error) {
	if err := validate.Exact("rest", args, 1); err != nil {
		return expression.Empty(), err
	}

	if !args[0].IsList() {
		return expression.Empty(), errsem.New("argument to rest is not a list")
	}

	if args[0].TailLength() == 0 {
		return expression.Empty(), errsem.New("argument to rest is an empty list")
	}

	members := args[0].Tail()[1:]
	rest := make([]expression.T, len(members))

	for i := range members {
		rest[i] = members[i].Copy()
	}

	return expression.NewList(rest...), nil
}

func length(args []expression.T) (expression.T, error) {
	if err := validate.Exact("length", args, 1); err != nil {
		return expression.Empty(), err
	}

	if !args[0].IsList() {
		return expression.Empty(), errsem.New("argument to length is not a list")
	}

	return number(float64(args[0].TailLength())), nil
}

// appendProc returns a new list with the second argument appended.
func appendProc(args []expression.T) (expression.T, error) {
	if err := validate.Exact("append", args, 2); err != nil {
		return expression.Empty(), err
	}

	if !args[0].IsList() {
		return expression.Empty(), errsem.New("first argument to append not a list")
	}

	members := args[0].Tail()
	appended := make([]expression.T, 0, len(members)+1)

	for i := range members {
		appended = append(appended, members[i].Copy())
	}

	return expression.NewList(append(appended, args[1].Copy())...), nil
}

// join concatenates two lists.
func join(args []expression.T) (expression.T, error) {
	if err := validate.Exact("join", args, 2); err != nil {
		return expression.Empty(), err
	}

	if !args[0].IsList() || !args[1].IsList() {
		return expression.Empty(), errsem.New("argument to join not a list")
	}

	joined := make([]expression.T, 0, args[0].TailLength()+args[1].TailLength())

	for _, members := range [][]expression.T{args[0].Tail(), args[1].Tail()} {
		for i := range members {
			joined = append(joined, members[i].Copy())
		}
	}

	return expression.NewList(joined...), nil
}

// rangeProc builds the list of numbers from start to end in steps of
// step: inclusive of start, exclusive once past end.
func rangeProc(args []expression.T) (expression.T, error) {
	if err := validate.Exact("range", args, 3); err != nil {
		return expression.Empty(), err
	}

	start, err := argument("range", args[0])
	if err != nil {
		return expression.Empty(), err
	}

	end, err := argument("range", args[1])
	if err != nil {
		return expression.Empty(), err
	}

	step, err := argument("range", args[2])
	if err != nil {
		return expression.Empty(), err
	}

	if step <= 0 {
		return expression.Empty(), errsem.New("negative or zero increment in range")
	}

	if end < start {
		return expression.Empty(), errsem.New("begin greater than end in range")
	}

	var members []expression.T

	for v := start; v <= end; v += step {
		members = append(members, number(v))
	}

	return expression.NewList(members...), nil
}
