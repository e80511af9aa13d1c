package value

import (
	"fmt"

	"t73f.de/r/zero/set"
)

// ValidateForm enforces that list is a proper list of length within
// [min, max] (max < 0 means unbounded), the shape check every special form
// handler runs before looking at its operands (spec §6, §7 "malformed
// special form" messages).
func ValidateForm(list Value, min, max int) error {
	elems, ok := ToSlice(list)
	if !ok {
		return fmt.Errorf("malformed special form: %s", Repr(list))
	}
	if len(elems) < min || (max >= 0 && len(elems) > max) {
		return fmt.Errorf("malformed special form: %s", Repr(list))
	}
	return nil
}

// ValidateFormals ensures a lambda/mu/macro parameter list is a proper list
// of distinct symbols, with at most one variadic marker which must be the
// last element (spec §4.5).
func ValidateFormals(formals Value) error {
	elems, ok := ToSlice(formals)
	if !ok {
		return fmt.Errorf("malformed special form: bad formals list %s", Repr(formals))
	}

	syms := make([]Symbol, 0, len(elems))
	for i, e := range elems {
		sym, ok := e.(Symbol)
		if !ok {
			return fmt.Errorf("non-symbol: %s", Repr(e))
		}
		if IsVariadicMarker(sym) && i != len(elems)-1 {
			return fmt.Errorf("malformed special form: variadic marker %s must be last", sym)
		}
		syms = append(syms, sym)
	}
	if set.New(syms...).Length() != len(syms) {
		return fmt.Errorf("malformed special form: duplicate parameter in %s", Repr(formals))
	}
	return nil
}

// DistinctSymbols reports whether names contains no duplicates, used by
// forms (e.g. let) that bind several symbols at once outside of a formals
// list.
func DistinctSymbols(names []Symbol) bool {
	return set.New(names...).Length() == len(names)
}
