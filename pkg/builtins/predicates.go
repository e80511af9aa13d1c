package builtins

import "github.com/mrosila/gosch/pkg/value"

// registerPredicates installs the type- and equality-testing predicates
// used throughout the dialect's idiomatic style (null?, pair?, and eq?
// guard recursion over Pairs the way cond/if guard control flow).
func registerPredicates(global value.Env) {
	define(global, "null?", false, predicate(func(v value.Value) bool {
		_, ok := v.(value.NilT)
		return ok
	}))
	define(global, "pair?", false, predicate(value.IsPair))
	define(global, "symbol?", false, predicate(value.IsSymbol))
	define(global, "list?", false, predicate(value.IsList))
	define(global, "procedure?", false, predicate(func(v value.Value) bool {
		_, ok := v.(value.Procedure)
		return ok
	}))
	define(global, "number?", false, predicate(func(v value.Value) bool {
		_, ok := v.(value.Number)
		return ok
	}))
	define(global, "string?", false, predicate(func(v value.Value) bool {
		_, ok := v.(value.Str)
		return ok
	}))
	define(global, "boolean?", false, predicate(func(v value.Value) bool {
		_, ok := v.(value.Boolean)
		return ok
	}))
	define(global, "not", false, predicate(func(v value.Value) bool {
		return !value.True(v)
	}))

	define(global, "eq?", false, func(args []value.Value, _ value.Env) (value.Value, error) {
		if err := arity(args, 2, 2); err != nil {
			return nil, err
		}
		return value.Boolean(value.SchemeEqual(args[0], args[1])), nil
	})
	define(global, "equal?", false, func(args []value.Value, _ value.Env) (value.Value, error) {
		if err := arity(args, 2, 2); err != nil {
			return nil, err
		}
		return value.Boolean(value.SchemeEqual(args[0], args[1])), nil
	})
}

func predicate(test func(value.Value) bool) value.HostFunc {
	return func(args []value.Value, _ value.Env) (value.Value, error) {
		if err := arity(args, 1, 1); err != nil {
			return nil, err
		}
		return value.Boolean(test(args[0])), nil
	}
}
