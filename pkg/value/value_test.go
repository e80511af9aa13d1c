package value

import "testing"

func TestTrue(t *testing.T) {
	cases := []struct {
		v    Value
		want bool
	}{
		{Boolean(false), false},
		{Boolean(true), true},
		{Nil, true},
		{NewNumberFromInt64(0), true},
		{Str(""), true},
	}
	for _, c := range cases {
		if got := True(c.v); got != c.want {
			t.Errorf("True(%v) = %v, want %v", c.v, got, c.want)
		}
	}
}

func TestSchemeEqual(t *testing.T) {
	list1 := FromSlice([]Value{NewNumberFromInt64(1), NewNumberFromInt64(2)})
	list2 := FromSlice([]Value{NewNumberFromInt64(1), NewNumberFromInt64(2)})
	if !SchemeEqual(list1, list2) {
		t.Error("structurally identical lists should be SchemeEqual")
	}

	list3 := FromSlice([]Value{NewNumberFromInt64(1), NewNumberFromInt64(3)})
	if SchemeEqual(list1, list3) {
		t.Error("structurally different lists should not be SchemeEqual")
	}

	if !SchemeEqual(Nil, NilT{}) {
		t.Error("Nil should equal NilT{}")
	}
}

func TestIsListAndToSlice(t *testing.T) {
	proper := FromSlice([]Value{Symbol("a"), Symbol("b")})
	if !IsList(proper) {
		t.Error("FromSlice result should be a proper list")
	}
	elems, ok := ToSlice(proper)
	if !ok || len(elems) != 2 {
		t.Errorf("ToSlice = %v, %v, want 2 elements", elems, ok)
	}

	improper := NewPair(Symbol("a"), Symbol("b"))
	if IsList(improper) {
		t.Error("dotted pair should not be a proper list")
	}
	if _, ok := ToSlice(improper); ok {
		t.Error("ToSlice should fail on an improper list")
	}
}

func TestVariadicMarker(t *testing.T) {
	if !IsVariadicMarker(Symbol("&rest")) {
		t.Error("&rest should be a variadic marker")
	}
	if IsVariadicMarker(Symbol("&")) {
		t.Error("bare & should not be a variadic marker")
	}
	if IsVariadicMarker(Symbol("rest")) {
		t.Error("rest without the prefix should not be a variadic marker")
	}
	if got := VariadicName(Symbol("&rest")); got != Symbol("rest") {
		t.Errorf("VariadicName(&rest) = %s, want rest", got)
	}
}

func TestReprPairDotted(t *testing.T) {
	dotted := NewPair(Symbol("a"), Symbol("b"))
	if got, want := Repr(dotted), "(a . b)"; got != want {
		t.Errorf("Repr(dotted) = %q, want %q", got, want)
	}
	proper := FromSlice([]Value{Symbol("a"), Symbol("b"), Symbol("c")})
	if got, want := Repr(proper), "(a b c)"; got != want {
		t.Errorf("Repr(proper) = %q, want %q", got, want)
	}
}
