// Package value defines the tagged value taxonomy evaluated by pkg/interp:
// atoms, pairs, procedure variants and promises.
package value

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

// Value is any Scheme value the evaluator can produce or consume.
type Value interface {
	String() string
}

// Symbol is an interned identifier. Two symbols with the same name compare
// equal by value, so pointer identity is never required.
type Symbol string

func (s Symbol) String() string { return string(s) }

// Boolean is the only falsy value besides... nothing else; every value other
// than Boolean(false) is true (spec §3).
type Boolean bool

func (b Boolean) String() string {
	if b {
		return "#t"
	}
	return "#f"
}

// Str is a Scheme string atom.
type Str string

func (s Str) String() string { return fmt.Sprintf("%q", string(s)) }

// Number is an arbitrary-precision decimal atom, covering the dialect's
// integer and rational/float literals alike.
type Number struct {
	Dec apd.Decimal
}

// NewNumberFromInt64 builds a Number from a host integer.
func NewNumberFromInt64(n int64) Number {
	return Number{Dec: *apd.New(n, 0)}
}

// NewNumberFromString parses a decimal literal.
func NewNumberFromString(s string) (Number, error) {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return Number{}, err
	}
	return Number{Dec: *d}, nil
}

func (n Number) String() string { return n.Dec.String() }

// NilT is the distinguished empty-list sentinel's type. It has no fields,
// so every NilT value is equal to Nil; callers test for the empty list
// with a type assertion on NilT.
type NilT struct{}

func (NilT) String() string { return "()" }

// Nil is the empty list / "no value" sentinel.
var Nil Value = NilT{}

// Pair is an ordered two-cell cons record. A proper Scheme list is Nil or a
// Pair whose Rest is a proper list; the reader may build improper lists that
// special forms reject where a proper list is required (spec §3).
type Pair struct {
	First Value
	Rest  Value
}

// NewPair constructs a cons cell.
func NewPair(first, rest Value) *Pair {
	return &Pair{First: first, Rest: rest}
}

func (p *Pair) String() string { return Repr(p) }

// True reports whether v is a Scheme truthy value: everything except
// Boolean(false) (spec §3).
func True(v Value) bool {
	b, ok := v.(Boolean)
	return !ok || bool(b)
}
