package builtins

import (
	"fmt"

	"github.com/mrosila/gosch/pkg/value"
)

// registerPairs mirrors the go-lisp list plugin's cons/list/length/append
// family, rebuilt over cons-cell Pairs rather than a flat ListValue.
func registerPairs(global value.Env) {
	define(global, "cons", false, evalCons)
	define(global, "car", false, evalCar)
	define(global, "cdr", false, evalCdr)
	define(global, "list", false, evalList)
	define(global, "length", false, evalLength)
	define(global, "append", false, evalAppend)
}

func evalCons(args []value.Value, _ value.Env) (value.Value, error) {
	if err := arity(args, 2, 2); err != nil {
		return nil, err
	}
	return value.NewPair(args[0], args[1]), nil
}

func evalCar(args []value.Value, _ value.Env) (value.Value, error) {
	if err := arity(args, 1, 1); err != nil {
		return nil, err
	}
	p, ok := args[0].(*value.Pair)
	if !ok {
		return nil, fmt.Errorf("car: not a pair: %s", value.Repr(args[0]))
	}
	return p.First, nil
}

func evalCdr(args []value.Value, _ value.Env) (value.Value, error) {
	if err := arity(args, 1, 1); err != nil {
		return nil, err
	}
	p, ok := args[0].(*value.Pair)
	if !ok {
		return nil, fmt.Errorf("cdr: not a pair: %s", value.Repr(args[0]))
	}
	return p.Rest, nil
}

func evalList(args []value.Value, _ value.Env) (value.Value, error) {
	return value.FromSlice(args), nil
}

func evalLength(args []value.Value, _ value.Env) (value.Value, error) {
	if err := arity(args, 1, 1); err != nil {
		return nil, err
	}
	n := value.Length(args[0])
	if n < 0 {
		return nil, fmt.Errorf("length: not a proper list: %s", value.Repr(args[0]))
	}
	return value.NewNumberFromInt64(int64(n)), nil
}

func evalAppend(args []value.Value, _ value.Env) (value.Value, error) {
	var all []value.Value
	for i, a := range args {
		elems, ok := value.ToSlice(a)
		if !ok {
			return nil, fmt.Errorf("append: argument %d not a proper list: %s", i+1, value.Repr(a))
		}
		all = append(all, elems...)
	}
	return value.FromSlice(all), nil
}
