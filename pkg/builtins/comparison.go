package builtins

import "github.com/mrosila/gosch/pkg/value"

// registerComparison mirrors the go-lisp comparison plugin's variadic
// chained =, <, >, <=, >= family, compared via apd.Decimal.Cmp.
func registerComparison(global value.Env) {
	define(global, "=", false, chain(func(c int) bool { return c == 0 }))
	define(global, "<", false, chain(func(c int) bool { return c < 0 }))
	define(global, ">", false, chain(func(c int) bool { return c > 0 }))
	define(global, "<=", false, chain(func(c int) bool { return c <= 0 }))
	define(global, ">=", false, chain(func(c int) bool { return c >= 0 }))
}

// chain builds a variadic chained comparison: (op a b c) holds when op holds
// between every adjacent pair.
func chain(holds func(cmp int) bool) value.HostFunc {
	return func(args []value.Value, _ value.Env) (value.Value, error) {
		if err := arity(args, 1, -1); err != nil {
			return nil, err
		}
		prev, err := asNumber(args[0])
		if err != nil {
			return nil, err
		}
		for _, a := range args[1:] {
			n, err := asNumber(a)
			if err != nil {
				return nil, err
			}
			if !holds(prev.Cmp(&n)) {
				return value.Boolean(false), nil
			}
			prev = n
		}
		return value.Boolean(true), nil
	}
}
