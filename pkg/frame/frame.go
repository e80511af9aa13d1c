// Package frame implements the environment frame chain: binding, lookup,
// rebinding, parameter binding (including variadics), and the shared
// evaluation trace stack (spec §4.1).
package frame

import (
	"fmt"

	"github.com/mrosila/gosch/pkg/value"
)

// Stack is the evaluation trace shared by every frame descending from a
// given global frame (spec §4.8): each eval entry pushes the expression
// under evaluation and pops it on the way out, so an error unwinding the
// stack captures the call chain at the point of failure.
type Stack struct {
	entries []value.Value
}

// Push records expr as the current evaluation context.
func (s *Stack) Push(expr value.Value) { s.entries = append(s.entries, expr) }

// Pop discards the most recently pushed context. It is a no-op on an empty
// stack so that a defensive caller can always pair Push/Pop without first
// checking depth.
func (s *Stack) Pop() {
	if len(s.entries) > 0 {
		s.entries = s.entries[:len(s.entries)-1]
	}
}

// Snapshot copies the current trace, innermost frame last, for attaching to
// an error.
func (s *Stack) Snapshot() []value.Value {
	out := make([]value.Value, len(s.entries))
	copy(out, s.entries)
	return out
}

// Restore resets the stack to a previously captured snapshot; ClearTrace
// uses it with an empty snapshot.
func (s *Stack) Restore(snapshot []value.Value) {
	s.entries = append(s.entries[:0], snapshot...)
}

// Frame is a lexical environment: a binding table plus a parent link. The
// global frame owns the trace Stack; every descendant frame shares the same
// Stack pointer (spec §3, "Frame" invariants).
type Frame struct {
	bindings map[value.Symbol]value.Value
	parent   *Frame
	stack    *Stack
}

// NewGlobalFrame creates a parentless frame that owns a fresh trace stack.
func NewGlobalFrame() *Frame {
	return &Frame{
		bindings: make(map[value.Symbol]value.Value),
		stack:    &Stack{},
	}
}

// PushTrace records expr as the current evaluation context (spec §4.8).
func (f *Frame) PushTrace(expr value.Value) { f.stack.Push(expr) }

// PopTrace discards the most recently pushed context.
func (f *Frame) PopTrace() { f.stack.Pop() }

// SnapshotTrace copies the current trace, innermost frame last.
func (f *Frame) SnapshotTrace() []value.Value { return f.stack.Snapshot() }

// ClearTrace empties the trace stack; the top-level host calls this after
// inspecting an error's trace (spec §5, §4.8).
func (f *Frame) ClearTrace() { f.stack.Restore(nil) }

// Define installs or replaces sym in this frame only (spec §4.1).
func (f *Frame) Define(sym value.Symbol, v value.Value) {
	f.bindings[sym] = v
}

// Lookup walks this frame then its ancestors, returning the first binding
// found.
func (f *Frame) Lookup(sym value.Symbol) (value.Value, error) {
	for e := f; e != nil; e = e.parent {
		if v, ok := e.bindings[sym]; ok {
			return v, nil
		}
	}
	return nil, fmt.Errorf("unknown identifier: %s", sym)
}

// Rebind walks this frame then its ancestors and mutates the first frame
// that already binds sym. It never creates a new binding (spec §4.1).
func (f *Frame) Rebind(sym value.Symbol, v value.Value) error {
	for e := f; e != nil; e = e.parent {
		if _, ok := e.bindings[sym]; ok {
			e.bindings[sym] = v
			return nil
		}
	}
	return fmt.Errorf("unknown identifier: %s", sym)
}

// MakeChildFrame builds a new frame parented at f, binding formals to args
// pairwise, honoring a single trailing variadic marker (spec §4.1).
func (f *Frame) MakeChildFrame(formals, args value.Value) (value.Env, error) {
	child := &Frame{
		bindings: make(map[value.Symbol]value.Value),
		parent:   f,
		stack:    f.stack,
	}

	for {
		formalPair, formalsArePair := formals.(*value.Pair)
		if !formalsArePair {
			break
		}
		sym, ok := formalPair.First.(value.Symbol)
		if !ok {
			return nil, fmt.Errorf("non-symbol: %s", value.Repr(formalPair.First))
		}
		if value.IsVariadicMarker(sym) {
			child.bindings[value.VariadicName(sym)] = args
			return child, nil
		}

		argPair, argsArePair := args.(*value.Pair)
		if !argsArePair {
			return nil, fmt.Errorf("too few arguments to function call")
		}
		child.bindings[sym] = argPair.First
		formals, args = formalPair.Rest, argPair.Rest
	}

	if sym, ok := formals.(value.Symbol); ok {
		// A bare trailing symbol is the optional dotted-formals extension
		// (spec §9, DOTS_ARE_CONS); only its variadic-marker spelling is
		// supported, since that extension is not required for conformance.
		if value.IsVariadicMarker(sym) {
			child.bindings[value.VariadicName(sym)] = args
			return child, nil
		}
		return nil, fmt.Errorf("non-symbol: %s", value.Repr(formals))
	}

	if !isNil(formals) {
		return nil, fmt.Errorf("non-symbol: %s", value.Repr(formals))
	}
	if !isNil(args) {
		return nil, fmt.Errorf("too many arguments to function call")
	}
	return child, nil
}

func isNil(v value.Value) bool {
	_, ok := v.(value.NilT)
	return ok
}
