package interp

import (
	"fmt"

	"github.com/mrosila/gosch/pkg/value"
)

// formQuasiquote implements (quasiquote template) with unquote-splicing,
// following the splicing variant of do_quasiquote_form: unquote substitutes
// a single evaluated value, unquote-splicing substitutes the elements of an
// evaluated list in place, and nested quasiquote/unquote pairs adjust a
// level counter rather than firing early.
func formQuasiquote(in *Interp, operands value.Value, env value.Env) (value.Value, *thunk, error) {
	if err := value.ValidateForm(operands, 1, 1); err != nil {
		return nil, nil, err
	}
	template := operands.(*value.Pair).First
	if isUnquoteSplicingHead(template) {
		return nil, nil, fmt.Errorf("unquote-splicing not in list template: %s", value.Repr(template))
	}
	results, err := quasiquoteExpand(in, template, env, 1)
	if err != nil {
		return nil, nil, err
	}
	return results[0], nil, nil
}

// quasiquoteExpand expands val at the given quasiquote nesting level,
// returning the (possibly multi-element, for a spliced list) sequence of
// values val contributes to its enclosing template.
func quasiquoteExpand(in *Interp, val value.Value, env value.Env, level int) ([]value.Value, error) {
	pair, isPair := val.(*value.Pair)
	if !isPair {
		return []value.Value{val}, nil
	}

	nextLevel := level
	if sym, ok := pair.First.(value.Symbol); ok {
		switch sym {
		case "unquote", "unquote-splicing":
			nextLevel = level - 1
			if nextLevel == 0 {
				args := pair.Rest
				if err := value.ValidateForm(args, 1, 1); err != nil {
					return nil, err
				}
				evaluated, err := in.eval(args.(*value.Pair).First, env)
				if err != nil {
					return nil, err
				}
				if sym == "unquote-splicing" {
					elems, ok := value.ToSlice(evaluated)
					if !ok {
						return nil, fmt.Errorf("unquote-splicing used on non-list: %s", value.Repr(evaluated))
					}
					return elems, nil
				}
				return []value.Value{evaluated}, nil
			}
		case "quasiquote":
			nextLevel = level + 1
		}
	}

	elems, ok := value.ToSlice(val)
	if !ok {
		return nil, fmt.Errorf("malformed list: %s", value.Repr(val))
	}
	var rebuilt []value.Value
	for _, e := range elems {
		sub, err := quasiquoteExpand(in, e, env, nextLevel)
		if err != nil {
			return nil, err
		}
		rebuilt = append(rebuilt, sub...)
	}
	return []value.Value{value.FromSlice(rebuilt)}, nil
}

func isUnquoteSplicingHead(v value.Value) bool {
	p, ok := v.(*value.Pair)
	if !ok {
		return false
	}
	sym, ok := p.First.(value.Symbol)
	return ok && sym == "unquote-splicing"
}
