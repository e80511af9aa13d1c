// Package schemeerr defines the single evaluation failure kind the core
// raises; subkinds are conveyed by message prefix, not by type (spec §7).
package schemeerr

import (
	"strings"

	"github.com/mrosila/gosch/pkg/value"
)

// EvaluationError carries a human-readable message and the evaluation
// trace captured at the point of failure.
type EvaluationError struct {
	Message string
	Trace   []value.Value
}

// New builds an EvaluationError with no trace attached; interp attaches a
// trace snapshot as the error unwinds past the frame that owns the stack.
func New(message string) *EvaluationError {
	return &EvaluationError{Message: message}
}

func (e *EvaluationError) Error() string {
	if len(e.Trace) == 0 {
		return e.Message
	}
	var b strings.Builder
	b.WriteString(e.Message)
	b.WriteString("\nTrace (innermost last):")
	for _, expr := range e.Trace {
		b.WriteString("\n  ")
		b.WriteString(value.Repr(expr))
	}
	return b.String()
}

// WithTrace returns err as an *EvaluationError with trace attached, unless
// it already carries one — the innermost failure's trace is the most
// useful. An err that already is an *EvaluationError is updated in place
// and returned; any other err is wrapped in a new one.
func WithTrace(err error, trace []value.Value) error {
	ee, ok := err.(*EvaluationError)
	if !ok {
		ee = New(err.Error())
	}
	if len(ee.Trace) == 0 {
		ee.Trace = trace
	}
	return ee
}
