// Package builtins supplies the minimal host-provided procedure library
// (cmd/gosch's global frame) needed to make the evaluator usable from a
// REPL or script. It is deliberately kept outside pkg/interp's own import
// graph (spec §1): the core evaluator never imports it, and any host could
// supply a different primitive library instead.
package builtins

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"

	"github.com/mrosila/gosch/pkg/interp"
	"github.com/mrosila/gosch/pkg/value"
)

// Register installs every builtin procedure into global.
func Register(global value.Env, in *interp.Interp) {
	registerArithmetic(global)
	registerComparison(global)
	registerPairs(global)
	registerPredicates(global)
	registerPromises(global, in)
	registerMisc(global)
}

func define(global value.Env, name string, wantsEnv bool, fn value.HostFunc) {
	global.Define(value.Symbol(name), &value.Builtin{Name: name, Fn: fn, WantsEnv: wantsEnv})
}

func arity(args []value.Value, min, max int) error {
	if len(args) < min || (max >= 0 && len(args) > max) {
		return value.ErrArity
	}
	return nil
}

func asNumber(v value.Value) (apd.Decimal, error) {
	n, ok := v.(value.Number)
	if !ok {
		return apd.Decimal{}, fmt.Errorf("expected number, got: %s", value.Repr(v))
	}
	return n.Dec, nil
}
