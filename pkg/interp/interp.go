// Package interp implements the mutually recursive eval/apply dispatch
// loop, its tail-call trampoline, and the special-form table (spec §4.3,
// §4.4, §4.5).
package interp

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mrosila/gosch/pkg/schemeerr"
	"github.com/mrosila/gosch/pkg/value"
)

// Config is the evaluator's read-only configuration (spec §9's design
// note: "pass as an immutable configuration record into the evaluator
// constructor rather than a process global").
type Config struct {
	// DotsAreCons relaxes the stream-tail force consistency check in
	// ForceStreamTail (used by stream-cdr): when false, a stream tail that
	// forces to a non-pair, non-nil value fails; when true, any value is
	// accepted. Force itself accepts any value either way.
	DotsAreCons bool

	// Out is the I/O sink display/displayln/assert-equal write to (spec
	// §1's "(c) I/O sinks for printing"). Defaults to os.Stdout.
	Out io.Writer
}

// Interp holds the configuration shared by every eval/apply call it makes.
// It carries no mutable state of its own — all mutable state (bindings,
// the trace stack) lives in the Frame chain — so one Interp can safely
// drive many independent Evaluate calls.
type Interp struct {
	cfg Config
}

// New constructs an Interp with the given configuration.
func New(cfg Config) *Interp {
	return &Interp{cfg: cfg}
}

// thunk is the trampoline's internal deferred-evaluation record (spec
// §4.4's Thunk / glossary). It must never escape to user code.
type thunk struct {
	Expr value.Value
	Env  value.Env
}

// SpecialForm handles one syntactic construct's operands (everything after
// the head symbol) in env. It may return a non-nil thunk instead of a final
// value when its own tail position shortcuts into the trampoline (spec
// §4.4); the returned value is meaningless when the thunk is non-nil.
type SpecialForm func(in *Interp, operands value.Value, env value.Env) (value.Value, *thunk, error)

// Evaluate is the core's entry point (spec §6): evaluate expr against
// globalFrame, which the host has pre-populated with builtin bindings.
func (in *Interp) Evaluate(expr value.Value, globalFrame value.Env) (value.Value, error) {
	v, err := in.eval(expr, globalFrame)
	if err != nil {
		trace := globalFrame.SnapshotTrace()
		globalFrame.ClearTrace()
		return nil, schemeerr.WithTrace(err, trace)
	}
	return v, nil
}

// eval is the trampoline (spec §4.4): it drives step() until a final value
// emerges, feeding any bubbled thunk's (expr, env) back in.
func (in *Interp) eval(expr value.Value, env value.Env) (value.Value, error) {
	return in.run(&thunk{Expr: expr, Env: env})
}

// run drives step() to completion starting from t, unwinding any chain of
// bubbled thunks (self- and mutual-tail-recursion alike) without growing
// the host stack (spec §4.4).
func (in *Interp) run(t *thunk) (value.Value, error) {
	for {
		v, next, err := in.step(t.Expr, t.Env)
		if err != nil {
			return nil, err
		}
		if next == nil {
			return v, nil
		}
		t = next
	}
}

// evalTail evaluates expr in tail position (spec §4.4): atoms and
// self-evaluating expressions are resolved immediately; anything else is
// deferred as a thunk for the nearest active trampoline loop to unwind.
func (in *Interp) evalTail(expr value.Value, env value.Env) (value.Value, *thunk, error) {
	if value.IsSymbol(expr) || value.SelfEvaluating(expr) {
		v, err := in.eval(expr, env)
		return v, nil, err
	}
	return nil, &thunk{Expr: expr, Env: env}, nil
}

// step performs one non-looping evaluation (spec §4.3's unwrapped eval):
// it pushes the trace entry, classifies expr, and dispatches. Non-tail
// sub-expressions are resolved with the full trampoline (in.eval); tail
// sub-expressions go through evalTail and may bubble a thunk back out as
// step's own result.
func (in *Interp) step(expr value.Value, env value.Env) (value.Value, *thunk, error) {
	env.PushTrace(expr)

	if sym, ok := expr.(value.Symbol); ok {
		v, err := env.Lookup(sym)
		if err != nil {
			return nil, nil, err
		}
		env.PopTrace()
		return v, nil, nil
	}

	if value.SelfEvaluating(expr) {
		env.PopTrace()
		return expr, nil, nil
	}

	if !value.IsList(expr) {
		return nil, nil, fmt.Errorf("malformed list: %s", value.Repr(expr))
	}

	pair := expr.(*value.Pair)
	first, rest := pair.First, pair.Rest

	if sym, ok := first.(value.Symbol); ok {
		if handler, isForm := specialForms[sym]; isForm {
			v, th, err := handler(in, rest, env)
			if err != nil {
				return nil, nil, err
			}
			env.PopTrace()
			return v, th, nil
		}
	}

	proc, err := in.eval(first, env)
	if err != nil {
		return nil, nil, err
	}

	if macro, ok := proc.(*value.Macro); ok {
		expanded, err := in.completeApply(macro, rest, env)
		if err != nil {
			return nil, nil, err
		}
		env.PopTrace()
		return in.step(expanded, env)
	}

	argExprs, ok := value.ToSlice(rest)
	if !ok {
		return nil, nil, fmt.Errorf("malformed list: %s", value.Repr(expr))
	}
	args := make([]value.Value, len(argExprs))
	for i, a := range argExprs {
		v, err := in.eval(a, env)
		if err != nil {
			return nil, nil, err
		}
		args[i] = v
	}

	v, th, err := in.apply(proc, args, env)
	if err != nil {
		return nil, nil, err
	}
	env.PopTrace()
	return v, th, nil
}

// apply applies proc to the already-evaluated args (spec §4.3).
func (in *Interp) apply(proc value.Value, args []value.Value, env value.Env) (value.Value, *thunk, error) {
	switch p := proc.(type) {
	case *value.Builtin:
		var hostEnv value.Env
		if p.WantsEnv {
			hostEnv = env
		}
		v, err := p.Fn(args, hostEnv)
		if errors.Is(err, value.ErrArity) {
			return nil, nil, fmt.Errorf("incorrect number of arguments: %s", p.Name)
		}
		return v, nil, err
	case *value.Lambda:
		v, th, err := in.applyCallable(p.Formals, p.Body, p.CapturedEnv, value.FromSlice(args))
		return v, th, err
	case *value.Mu:
		v, th, err := in.applyCallable(p.Formals, p.Body, env, value.FromSlice(args))
		return v, th, err
	default:
		return nil, nil, fmt.Errorf("%s is not a procedure", value.Repr(proc))
	}
}

// applyCallable binds formals to argsList in a new child of closureEnv and
// tail-evaluates body's last expression (spec §4.3, §4.1).
func (in *Interp) applyCallable(formals value.Value, body []value.Value, closureEnv value.Env, argsList value.Value) (value.Value, *thunk, error) {
	newEnv, err := closureEnv.MakeChildFrame(formals, argsList)
	if err != nil {
		return nil, nil, err
	}
	return in.evalAllTail(body, newEnv)
}

// evalAllTail evaluates every expression in body except the last with the
// full trampoline, then evaluates the last in tail position (spec §4.3
// evalAll).
func (in *Interp) evalAllTail(body []value.Value, env value.Env) (value.Value, *thunk, error) {
	if len(body) == 0 {
		return nil, nil, fmt.Errorf("malformed special form: empty body")
	}
	for _, e := range body[:len(body)-1] {
		if _, err := in.eval(e, env); err != nil {
			return nil, nil, err
		}
	}
	return in.evalTail(body[len(body)-1], env)
}

// evalAll is evalAllTail's fully-forced counterpart, used where a sequence
// of expressions must produce a concrete value rather than bubble a thunk
// (spec §4.3).
func (in *Interp) evalAll(body []value.Value, env value.Env) (value.Value, error) {
	v, th, err := in.evalAllTail(body, env)
	if err != nil {
		return nil, err
	}
	return in.force(v, th)
}

// completeApply applies a Macro to its unevaluated operands and forces any
// bubbled thunk before returning, so macro expansion (and any other caller
// that needs a concrete value) never observes a thunk (spec §4.4).
func (in *Interp) completeApply(macro *value.Macro, rawOperands value.Value, env value.Env) (value.Value, error) {
	v, th, err := in.applyCallable(macro.Formals, macro.Body, macro.CapturedEnv, rawOperands)
	if err != nil {
		return nil, err
	}
	return in.force(v, th)
}

// force resolves a (value, thunk) pair such as evalAllTail or applyCallable
// returns into a concrete value, running the trampoline if a thunk was
// bubbled (spec §4.4: "complete_apply forces any Thunk returned by apply
// before returning to contexts... that require a fully-evaluated value").
func (in *Interp) force(v value.Value, th *thunk) (value.Value, error) {
	if th == nil {
		return v, nil
	}
	return in.run(th)
}

// out returns the configured display sink, defaulting to os.Stdout.
func (in *Interp) out() io.Writer {
	if in.cfg.Out != nil {
		return in.cfg.Out
	}
	return os.Stdout
}
