package reader_test

import (
	"testing"

	"github.com/mrosila/gosch/pkg/reader"
	"github.com/mrosila/gosch/pkg/value"
)

func TestReadAtoms(t *testing.T) {
	cases := []struct {
		src  string
		want value.Value
	}{
		{"42", value.NewNumberFromInt64(42)},
		{"-7", value.NewNumberFromInt64(-7)},
		{"#t", value.Boolean(true)},
		{"#f", value.Boolean(false)},
		{"foo", value.Symbol("foo")},
		{`"hi there"`, value.Str("hi there")},
	}
	for _, c := range cases {
		got, err := reader.Read(c.src)
		if err != nil {
			t.Fatalf("Read(%q) error: %v", c.src, err)
		}
		if !value.SchemeEqual(got, c.want) {
			t.Errorf("Read(%q) = %s, want %s", c.src, value.Repr(got), value.Repr(c.want))
		}
	}
}

func TestReadList(t *testing.T) {
	got, err := reader.Read("(1 2 3)")
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	want := value.FromSlice([]value.Value{
		value.NewNumberFromInt64(1), value.NewNumberFromInt64(2), value.NewNumberFromInt64(3),
	})
	if !value.SchemeEqual(got, want) {
		t.Errorf("Read(list) = %s, want %s", value.Repr(got), value.Repr(want))
	}
}

func TestReadDottedPair(t *testing.T) {
	got, err := reader.Read("(1 . 2)")
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	want := value.NewPair(value.NewNumberFromInt64(1), value.NewNumberFromInt64(2))
	if !value.SchemeEqual(got, want) {
		t.Errorf("Read(dotted) = %s, want %s", value.Repr(got), value.Repr(want))
	}
}

func TestReadQuoteShorthands(t *testing.T) {
	got, err := reader.Read("'(1 2)")
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	want := value.FromSlice([]value.Value{
		value.Symbol("quote"),
		value.FromSlice([]value.Value{value.NewNumberFromInt64(1), value.NewNumberFromInt64(2)}),
	})
	if !value.SchemeEqual(got, want) {
		t.Errorf("Read(quote) = %s, want %s", value.Repr(got), value.Repr(want))
	}

	gotQQ, err := reader.Read("`(1 ,x ,@y)")
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	if value.Length(gotQQ) != 2 {
		t.Fatalf("Read(quasiquote) outer should be (quasiquote template), got %s", value.Repr(gotQQ))
	}
}

func TestReadAllMultipleExpressions(t *testing.T) {
	exprs, err := reader.ReadAll("(define x 1) (+ x 2) ; trailing comment")
	if err != nil {
		t.Fatalf("ReadAll error: %v", err)
	}
	if len(exprs) != 2 {
		t.Fatalf("ReadAll returned %d expressions, want 2", len(exprs))
	}
}

func TestReadUnterminatedListErrors(t *testing.T) {
	if _, err := reader.Read("(1 2"); err == nil {
		t.Error("Read should fail on an unterminated list")
	}
}
