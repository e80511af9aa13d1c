package builtins

import (
	"fmt"

	"github.com/mrosila/gosch/pkg/interp"
	"github.com/mrosila/gosch/pkg/value"
)

// registerPromises installs force and the stream accessors built on top of
// it (spec §4.6): a stream is a Pair whose Rest is a Promise, so stream-cdr
// is force composed with cdr.
func registerPromises(global value.Env, in *interp.Interp) {
	define(global, "force", false, func(args []value.Value, _ value.Env) (value.Value, error) {
		if err := arity(args, 1, 1); err != nil {
			return nil, err
		}
		p, ok := args[0].(*value.Promise)
		if !ok {
			return nil, fmt.Errorf("force: not a promise: %s", value.Repr(args[0]))
		}
		return in.Force(p)
	})

	define(global, "stream-car", false, func(args []value.Value, _ value.Env) (value.Value, error) {
		if err := arity(args, 1, 1); err != nil {
			return nil, err
		}
		p, ok := args[0].(*value.Pair)
		if !ok {
			return nil, fmt.Errorf("stream-car: not a pair: %s", value.Repr(args[0]))
		}
		return p.First, nil
	})

	define(global, "stream-cdr", false, func(args []value.Value, _ value.Env) (value.Value, error) {
		if err := arity(args, 1, 1); err != nil {
			return nil, err
		}
		pair, ok := args[0].(*value.Pair)
		if !ok {
			return nil, fmt.Errorf("stream-cdr: not a pair: %s", value.Repr(args[0]))
		}
		promise, ok := pair.Rest.(*value.Promise)
		if !ok {
			return nil, fmt.Errorf("stream-cdr: tail is not a promise: %s", value.Repr(pair.Rest))
		}
		return in.ForceStreamTail(promise)
	})

	global.Define("the-empty-stream", value.Nil)

	define(global, "stream-null?", false, func(args []value.Value, _ value.Env) (value.Value, error) {
		if err := arity(args, 1, 1); err != nil {
			return nil, err
		}
		_, ok := args[0].(value.NilT)
		return value.Boolean(ok), nil
	})
}
