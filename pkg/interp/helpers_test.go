package interp_test

import "github.com/mrosila/gosch/pkg/value"

// list builds a proper list expression from its arguments, the test-file
// equivalent of a reader: tests construct Pair trees directly rather than
// going through pkg/reader, which is out of the evaluator core's scope.
func list(elems ...value.Value) value.Value {
	return value.FromSlice(elems)
}

func sym(name string) value.Value { return value.Symbol(name) }

func num(n int64) value.Value { return value.NewNumberFromInt64(n) }

func str(s string) value.Value { return value.Str(s) }
