package value

import "strings"

// IsSymbol reports whether v is a Symbol.
func IsSymbol(v Value) bool {
	_, ok := v.(Symbol)
	return ok
}

// IsPair reports whether v is a cons cell (not the Nil sentinel).
func IsPair(v Value) bool {
	_, ok := v.(*Pair)
	return ok
}

// IsList reports whether v is a proper Scheme list: Nil, or a Pair whose
// Rest is itself a proper list (spec §3).
func IsList(v Value) bool {
	for {
		switch t := v.(type) {
		case NilT:
			return true
		case *Pair:
			v = t.Rest
		default:
			return false
		}
	}
}

// SelfEvaluating reports whether v evaluates to itself without further
// dispatch: numbers, booleans, strings, procedures, nil and promises
// (spec §4.3 step 3).
func SelfEvaluating(v Value) bool {
	switch v.(type) {
	case Number, Boolean, Str, NilT, *Promise:
		return true
	}
	_, isProc := v.(Procedure)
	return isProc
}

// variadicPrefix is the host symbol-layer convention this core consumes
// via IsVariadicMarker/VariadicName (spec §3, §6): a formal parameter
// written with a leading "&" binds the remaining arguments as a list,
// e.g. (lambda (a &rest) ...).
const variadicPrefix = "&"

// IsVariadicMarker reports whether sym designates "bind the rest".
func IsVariadicMarker(sym Symbol) bool {
	return strings.HasPrefix(string(sym), variadicPrefix) && len(sym) > len(variadicPrefix)
}

// VariadicName extracts the binding name from a variadic marker symbol.
func VariadicName(sym Symbol) Symbol {
	return Symbol(strings.TrimPrefix(string(sym), variadicPrefix))
}

// Length returns the number of elements in a proper list, or -1 if v is not
// a proper list.
func Length(v Value) int {
	n := 0
	for {
		switch t := v.(type) {
		case NilT:
			return n
		case *Pair:
			n++
			v = t.Rest
		default:
			return -1
		}
	}
}

// ToSlice flattens a proper list into a Go slice, in order.
func ToSlice(v Value) ([]Value, bool) {
	var out []Value
	for {
		switch t := v.(type) {
		case NilT:
			return out, true
		case *Pair:
			out = append(out, t.First)
			v = t.Rest
		default:
			return out, false
		}
	}
}

// FromSlice builds a proper list from a Go slice, in order.
func FromSlice(vs []Value) Value {
	result := Nil
	for i := len(vs) - 1; i >= 0; i-- {
		result = NewPair(vs[i], result)
	}
	return result
}

// SchemeEqual implements the dialect's general equality: symbols and atoms
// compare by value, pairs compare structurally, everything else falls back
// to reference/representation equality.
func SchemeEqual(a, b Value) bool {
	switch av := a.(type) {
	case NilT:
		_, ok := b.(NilT)
		return ok
	case Symbol:
		bv, ok := b.(Symbol)
		return ok && av == bv
	case Boolean:
		bv, ok := b.(Boolean)
		return ok && av == bv
	case Str:
		bv, ok := b.(Str)
		return ok && av == bv
	case Number:
		bv, ok := b.(Number)
		return ok && av.Dec.Cmp(&bv.Dec) == 0
	case *Pair:
		bv, ok := b.(*Pair)
		return ok && SchemeEqual(av.First, bv.First) && SchemeEqual(av.Rest, bv.Rest)
	default:
		return a == b
	}
}
