package interp

import (
	"fmt"

	"github.com/mrosila/gosch/pkg/value"
)

// specialForms dispatches a leading keyword symbol to its handler (spec
// §4.5). Anything not in this table falls through to ordinary application.
var specialForms = map[value.Symbol]SpecialForm{
	"define":        formDefine,
	"quote":         formQuote,
	"begin":         formBegin,
	"lambda":        formLambda,
	"if":            formIf,
	"and":           formAnd,
	"or":            formOr,
	"cond":          formCond,
	"let":           formLet,
	"define-macro":  formDefineMacro,
	"set!":          formSet,
	"mu":            formMu,
	"delay":         formDelay,
	"cons-stream":   formConsStream,
	"quasiquote":    formQuasiquote,
	"unquote":       formUnquoteOutsideQuasiquote,
	"unquote-splicing": formUnquoteOutsideQuasiquote,
	"assert-equal":  formAssertEqual,
	"display":       formDisplay,
	"displayln":     formDisplayln,
}

// formDefine implements (define name expr) and the procedure-definition
// sugar (define (name . formals) body...) (spec §4.5, do_define_form).
func formDefine(in *Interp, operands value.Value, env value.Env) (value.Value, *thunk, error) {
	if err := value.ValidateForm(operands, 2, -1); err != nil {
		return nil, nil, err
	}
	elems, _ := value.ToSlice(operands)
	switch sig := elems[0].(type) {
	case value.Symbol:
		if err := value.ValidateForm(operands, 2, 2); err != nil {
			return nil, nil, err
		}
		v, err := in.eval(elems[1], env)
		if err != nil {
			return nil, nil, err
		}
		env.Define(sig, v)
		return sig, nil, nil
	case *value.Pair:
		name, ok := sig.First.(value.Symbol)
		if !ok {
			return nil, nil, fmt.Errorf("non-symbol: %s", value.Repr(sig.First))
		}
		if err := value.ValidateFormals(sig.Rest); err != nil {
			return nil, nil, err
		}
		lambda := &value.Lambda{Name: string(name), Formals: sig.Rest, Body: elems[1:], CapturedEnv: env}
		env.Define(name, lambda)
		return name, nil, nil
	default:
		return nil, nil, fmt.Errorf("non-symbol: %s", value.Repr(elems[0]))
	}
}

// formQuote implements (quote expr) (spec §4.5, do_quote_form).
func formQuote(in *Interp, operands value.Value, env value.Env) (value.Value, *thunk, error) {
	if err := value.ValidateForm(operands, 1, 1); err != nil {
		return nil, nil, err
	}
	return operands.(*value.Pair).First, nil, nil
}

// formBegin implements (begin expr...): every expression but the last is
// fully evaluated for effect, the last is tail position (do_begin_form).
func formBegin(in *Interp, operands value.Value, env value.Env) (value.Value, *thunk, error) {
	if err := value.ValidateForm(operands, 1, -1); err != nil {
		return nil, nil, err
	}
	elems, _ := value.ToSlice(operands)
	return in.evalAllTail(elems, env)
}

// formLambda implements (lambda formals body...) (do_lambda_form).
func formLambda(in *Interp, operands value.Value, env value.Env) (value.Value, *thunk, error) {
	if err := value.ValidateForm(operands, 2, -1); err != nil {
		return nil, nil, err
	}
	elems, _ := value.ToSlice(operands)
	if err := value.ValidateFormals(elems[0]); err != nil {
		return nil, nil, err
	}
	return &value.Lambda{Formals: elems[0], Body: elems[1:], CapturedEnv: env}, nil, nil
}

// formIf implements (if test conseq [alt]); an absent alt yields Nil, the
// dialect's unspecified value (spec §4.5, Open Question resolution).
func formIf(in *Interp, operands value.Value, env value.Env) (value.Value, *thunk, error) {
	if err := value.ValidateForm(operands, 2, 3); err != nil {
		return nil, nil, err
	}
	elems, _ := value.ToSlice(operands)
	test, err := in.eval(elems[0], env)
	if err != nil {
		return nil, nil, err
	}
	if value.True(test) {
		return in.evalTail(elems[1], env)
	}
	if len(elems) == 3 {
		return in.evalTail(elems[2], env)
	}
	return value.Nil, nil, nil
}

// formAnd implements (and expr...): short-circuits on the first falsy value,
// the last expression is tail position (do_and_form).
func formAnd(in *Interp, operands value.Value, env value.Env) (value.Value, *thunk, error) {
	elems, ok := value.ToSlice(operands)
	if !ok {
		return nil, nil, fmt.Errorf("malformed special form: %s", value.Repr(operands))
	}
	if len(elems) == 0 {
		return value.Boolean(true), nil, nil
	}
	for _, e := range elems[:len(elems)-1] {
		v, err := in.eval(e, env)
		if err != nil {
			return nil, nil, err
		}
		if !value.True(v) {
			return v, nil, nil
		}
	}
	return in.evalTail(elems[len(elems)-1], env)
}

// formOr implements (or expr...): short-circuits on the first truthy value
// (do_or_form).
func formOr(in *Interp, operands value.Value, env value.Env) (value.Value, *thunk, error) {
	elems, ok := value.ToSlice(operands)
	if !ok {
		return nil, nil, fmt.Errorf("malformed special form: %s", value.Repr(operands))
	}
	if len(elems) == 0 {
		return value.Boolean(false), nil, nil
	}
	for _, e := range elems[:len(elems)-1] {
		v, err := in.eval(e, env)
		if err != nil {
			return nil, nil, err
		}
		if value.True(v) {
			return v, nil, nil
		}
	}
	return in.evalTail(elems[len(elems)-1], env)
}

// formCond implements (cond (test body...)... [(else body...)]) (do_cond_form).
func formCond(in *Interp, operands value.Value, env value.Env) (value.Value, *thunk, error) {
	clauses, ok := value.ToSlice(operands)
	if !ok {
		return nil, nil, fmt.Errorf("malformed special form: %s", value.Repr(operands))
	}
	for i, c := range clauses {
		if err := value.ValidateForm(c, 1, -1); err != nil {
			return nil, nil, err
		}
		parts, _ := value.ToSlice(c)
		var test value.Value
		if sym, ok := parts[0].(value.Symbol); ok && sym == "else" {
			if i != len(clauses)-1 {
				return nil, nil, fmt.Errorf("malformed special form: else must be the last cond clause")
			}
			test = value.Boolean(true)
		} else {
			v, err := in.eval(parts[0], env)
			if err != nil {
				return nil, nil, err
			}
			test = v
		}
		if value.True(test) {
			if len(parts) == 1 {
				return test, nil, nil
			}
			return in.evalAllTail(parts[1:], env)
		}
	}
	return value.Nil, nil, nil
}

// formLet implements (let ((name expr)...) body...): bindings are evaluated
// in the enclosing environment, all at once, before the new frame is built
// (do_let_form).
func formLet(in *Interp, operands value.Value, env value.Env) (value.Value, *thunk, error) {
	if err := value.ValidateForm(operands, 2, -1); err != nil {
		return nil, nil, err
	}
	elems, _ := value.ToSlice(operands)
	bindings, ok := value.ToSlice(elems[0])
	if !ok {
		return nil, nil, fmt.Errorf("malformed special form: bad bindings list in let form")
	}

	names := make([]value.Value, 0, len(bindings))
	syms := make([]value.Symbol, 0, len(bindings))
	vals := make([]value.Value, 0, len(bindings))
	for _, b := range bindings {
		if err := value.ValidateForm(b, 2, 2); err != nil {
			return nil, nil, fmt.Errorf("malformed special form: bad bindings list in let form")
		}
		parts, _ := value.ToSlice(b)
		sym, ok := parts[0].(value.Symbol)
		if !ok {
			return nil, nil, fmt.Errorf("non-symbol: %s", value.Repr(parts[0]))
		}
		v, err := in.eval(parts[1], env)
		if err != nil {
			return nil, nil, err
		}
		names = append(names, sym)
		syms = append(syms, sym)
		vals = append(vals, v)
	}
	if !value.DistinctSymbols(syms) {
		return nil, nil, fmt.Errorf("malformed special form: duplicate binding in let form")
	}

	letEnv, err := env.MakeChildFrame(value.FromSlice(names), value.FromSlice(vals))
	if err != nil {
		return nil, nil, err
	}
	return in.evalAllTail(elems[1:], letEnv)
}

// formDefineMacro implements (define-macro (name . formals) body...)
// (do_define_macro_form). A macro's formals are bound to the unevaluated
// operand list when it is applied.
func formDefineMacro(in *Interp, operands value.Value, env value.Env) (value.Value, *thunk, error) {
	if err := value.ValidateForm(operands, 2, -1); err != nil {
		return nil, nil, err
	}
	elems, _ := value.ToSlice(operands)
	sig, ok := elems[0].(*value.Pair)
	if !ok {
		return nil, nil, fmt.Errorf("malformed special form: bad define-macro signature %s", value.Repr(elems[0]))
	}
	name, ok := sig.First.(value.Symbol)
	if !ok {
		return nil, nil, fmt.Errorf("non-symbol: %s", value.Repr(sig.First))
	}
	if err := value.ValidateFormals(sig.Rest); err != nil {
		return nil, nil, err
	}
	macro := &value.Macro{Name: string(name), Formals: sig.Rest, Body: elems[1:], CapturedEnv: env}
	env.Define(name, macro)
	return name, nil, nil
}

// formSet implements (set! name expr): it mutates an existing binding and
// fails if none exists (do_set_form).
func formSet(in *Interp, operands value.Value, env value.Env) (value.Value, *thunk, error) {
	if err := value.ValidateForm(operands, 2, 2); err != nil {
		return nil, nil, err
	}
	elems, _ := value.ToSlice(operands)
	name, ok := elems[0].(value.Symbol)
	if !ok {
		return nil, nil, fmt.Errorf("non-symbol: %s", value.Repr(elems[0]))
	}
	v, err := in.eval(elems[1], env)
	if err != nil {
		return nil, nil, err
	}
	if err := env.Rebind(name, v); err != nil {
		return nil, nil, err
	}
	return value.Nil, nil, nil
}

// formMu implements (mu formals body...): like lambda but with no captured
// environment, so it runs in the caller's dynamic frame (spec §3, §4.5).
func formMu(in *Interp, operands value.Value, env value.Env) (value.Value, *thunk, error) {
	if err := value.ValidateForm(operands, 2, -1); err != nil {
		return nil, nil, err
	}
	elems, _ := value.ToSlice(operands)
	if err := value.ValidateFormals(elems[0]); err != nil {
		return nil, nil, err
	}
	return &value.Mu{Formals: elems[0], Body: elems[1:]}, nil, nil
}

// formDelay implements (delay expr): wraps expr as an unforced Promise
// (do_delay_form).
func formDelay(in *Interp, operands value.Value, env value.Env) (value.Value, *thunk, error) {
	if err := value.ValidateForm(operands, 1, 1); err != nil {
		return nil, nil, err
	}
	return value.NewPromise(operands.(*value.Pair).First, env), nil, nil
}

// formConsStream implements (cons-stream a b): a is evaluated eagerly, b is
// delayed, matching the stream's standard "eager head, lazy tail" shape
// (do_cons_stream_form).
func formConsStream(in *Interp, operands value.Value, env value.Env) (value.Value, *thunk, error) {
	if err := value.ValidateForm(operands, 2, 2); err != nil {
		return nil, nil, err
	}
	elems, _ := value.ToSlice(operands)
	head, err := in.eval(elems[0], env)
	if err != nil {
		return nil, nil, err
	}
	return value.NewPair(head, value.NewPromise(elems[1], env)), nil, nil
}

// formUnquoteOutsideQuasiquote rejects unquote/unquote-splicing encountered
// outside of a quasiquote template (do_quasiquote_form's companion check).
func formUnquoteOutsideQuasiquote(in *Interp, operands value.Value, env value.Env) (value.Value, *thunk, error) {
	return nil, nil, fmt.Errorf("unquote outside of quasiquote")
}

// formAssertEqual implements the supplemented (assert-equal expr expected)
// test form: it evaluates expr in a trace scope isolated from the caller's,
// so a failing assertion's trace never contaminates a later real failure's
// (do_expect's save/restore-stack discipline, spec §4.8).
func formAssertEqual(in *Interp, operands value.Value, env value.Env) (value.Value, *thunk, error) {
	if err := value.ValidateForm(operands, 2, 2); err != nil {
		return nil, nil, err
	}
	elems, _ := value.ToSlice(operands)
	depth := len(env.SnapshotTrace())
	restoreTrace := func() {
		for n := len(env.SnapshotTrace()) - depth; n > 0; n-- {
			env.PopTrace()
		}
	}

	result, err := in.eval(elems[0], env)
	if err != nil {
		restoreTrace()
		fmt.Fprintf(in.out(), "FAIL %s: %v\n", value.Repr(elems[0]), err)
		return value.Boolean(false), nil, nil
	}
	expected, err := in.eval(elems[1], env)
	if err != nil {
		restoreTrace()
		fmt.Fprintf(in.out(), "FAIL %s: %v\n", value.Repr(elems[1]), err)
		return value.Boolean(false), nil, nil
	}
	if value.SchemeEqual(result, expected) {
		fmt.Fprintf(in.out(), "PASS %s => %s\n", value.Repr(elems[0]), value.Repr(result))
		return value.Boolean(true), nil, nil
	}
	fmt.Fprintf(in.out(), "FAIL %s: expected %s, got %s\n", value.Repr(elems[0]), value.Repr(expected), value.Repr(result))
	return value.Boolean(false), nil, nil
}

// formDisplay implements (display expr): prints expr's value without a
// trailing newline and returns it (do_display_form).
func formDisplay(in *Interp, operands value.Value, env value.Env) (value.Value, *thunk, error) {
	if err := value.ValidateForm(operands, 1, 1); err != nil {
		return nil, nil, err
	}
	v, err := in.eval(operands.(*value.Pair).First, env)
	if err != nil {
		return nil, nil, err
	}
	fmt.Fprint(in.out(), displayString(v))
	return v, nil, nil
}

// formDisplayln is display with a trailing newline.
func formDisplayln(in *Interp, operands value.Value, env value.Env) (value.Value, *thunk, error) {
	if err := value.ValidateForm(operands, 1, 1); err != nil {
		return nil, nil, err
	}
	v, err := in.eval(operands.(*value.Pair).First, env)
	if err != nil {
		return nil, nil, err
	}
	fmt.Fprintln(in.out(), displayString(v))
	return v, nil, nil
}

// displayString renders v the way display/displayln show it: strings
// unquoted, everything else as Repr.
func displayString(v value.Value) string {
	if s, ok := v.(value.Str); ok {
		return string(s)
	}
	return value.Repr(v)
}
