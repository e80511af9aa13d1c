package value

import "testing"

func TestValidateFormals(t *testing.T) {
	ok := FromSlice([]Value{Symbol("a"), Symbol("b"), Symbol("&rest")})
	if err := ValidateFormals(ok); err != nil {
		t.Errorf("ValidateFormals(%s) = %v, want nil", Repr(ok), err)
	}

	dup := FromSlice([]Value{Symbol("a"), Symbol("a")})
	if err := ValidateFormals(dup); err == nil {
		t.Error("ValidateFormals should reject duplicate parameter names")
	}

	misplaced := FromSlice([]Value{Symbol("&rest"), Symbol("a")})
	if err := ValidateFormals(misplaced); err == nil {
		t.Error("ValidateFormals should reject a non-trailing variadic marker")
	}

	notSymbol := FromSlice([]Value{NewNumberFromInt64(1)})
	if err := ValidateFormals(notSymbol); err == nil {
		t.Error("ValidateFormals should reject a non-symbol formal")
	}
}

func TestValidateForm(t *testing.T) {
	twoElems := FromSlice([]Value{Symbol("a"), Symbol("b")})
	if err := ValidateForm(twoElems, 2, 2); err != nil {
		t.Errorf("ValidateForm exact match = %v, want nil", err)
	}
	if err := ValidateForm(twoElems, 3, 3); err == nil {
		t.Error("ValidateForm should reject too few elements")
	}
	if err := ValidateForm(twoElems, 0, 1); err == nil {
		t.Error("ValidateForm should reject too many elements")
	}

	improper := NewPair(Symbol("a"), Symbol("b"))
	if err := ValidateForm(improper, 1, -1); err == nil {
		t.Error("ValidateForm should reject an improper list")
	}
}

func TestDistinctSymbols(t *testing.T) {
	if !DistinctSymbols([]Symbol{"a", "b", "c"}) {
		t.Error("distinct symbols should report true")
	}
	if DistinctSymbols([]Symbol{"a", "a"}) {
		t.Error("duplicate symbols should report false")
	}
}
