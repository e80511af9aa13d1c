package builtins

import (
	"fmt"

	"github.com/mrosila/gosch/pkg/value"
)

// registerMisc installs the handful of procedures with no natural home in
// the arithmetic/comparison/pairs/predicates groupings.
func registerMisc(global value.Env) {
	define(global, "error", false, func(args []value.Value, _ value.Env) (value.Value, error) {
		if err := arity(args, 1, -1); err != nil {
			return nil, err
		}
		msg := ""
		for i, a := range args {
			if i > 0 {
				msg += " "
			}
			msg += displayString(a)
		}
		return nil, fmt.Errorf("%s", msg)
	})

	define(global, "symbol->string", false, func(args []value.Value, _ value.Env) (value.Value, error) {
		if err := arity(args, 1, 1); err != nil {
			return nil, err
		}
		sym, ok := args[0].(value.Symbol)
		if !ok {
			return nil, fmt.Errorf("symbol->string: not a symbol: %s", value.Repr(args[0]))
		}
		return value.Str(sym), nil
	})

	define(global, "string->symbol", false, func(args []value.Value, _ value.Env) (value.Value, error) {
		if err := arity(args, 1, 1); err != nil {
			return nil, err
		}
		s, ok := args[0].(value.Str)
		if !ok {
			return nil, fmt.Errorf("string->symbol: not a string: %s", value.Repr(args[0]))
		}
		return value.Symbol(s), nil
	})
}

// displayString mirrors interp's unexported helper of the same name:
// strings render unquoted, everything else uses Repr.
func displayString(v value.Value) string {
	if s, ok := v.(value.Str); ok {
		return string(s)
	}
	return value.Repr(v)
}
