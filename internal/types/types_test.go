package types_test

import (
	"testing"

	"github.com/minic-lang/minic/internal/types"
)

func TestRegistryLookup(t *testing.T) {
	r := types.NewRegistry()

	cases := []struct {
		name string
		want types.Type
		ok   bool
	}{
		{"int", types.IntType, true},
		{"float", types.FloatType, true},
		{"char", types.CharType, true},
		{"bool", types.BoolType, true},
		{"void", types.VoidType, true},
		{"string", types.Type{}, false},
		{"Foo", types.Type{}, false},
	}

	for _, c := range cases {
		got, ok := r.Lookup(c.name)
		if ok != c.ok {
			t.Errorf("Lookup(%q) ok = %v, want %v", c.name, ok, c.ok)
			continue
		}
		if ok && !got.Equal(c.want) {
			t.Errorf("Lookup(%q) = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestIsTypeKeyword(t *testing.T) {
	r := types.NewRegistry()
	if !r.IsTypeKeyword("int") {
		t.Error("expected int to be a type keyword")
	}
	if r.IsTypeKeyword("main") {
		t.Error("did not expect main to be a type keyword")
	}
}

func TestArrayOfAndEqual(t *testing.T) {
	a := types.ArrayOf(types.IntType)
	b := types.ArrayOf(types.IntType)
	if !a.Equal(b) {
		t.Errorf("array-of-int types should be equal: %v vs %v", a, b)
	}
	if a.Equal(types.IntType) {
		t.Error("array type should not equal its element type")
	}
	if !a.IsArray() {
		t.Error("expected IsArray to be true")
	}
	if a.Name() != "int[]" {
		t.Errorf("Name() = %q, want %q", a.Name(), "int[]")
	}
}

func TestOperatorTableBinary(t *testing.T) {
	ops := types.NewOperatorTable()

	cases := []struct {
		left  types.Type
		op    string
		right types.Type
		want  types.Type
		ok    bool
	}{
		{types.IntType, "+", types.IntType, types.IntType, true},
		{types.IntType, "%", types.IntType, types.IntType, true},
		{types.FloatType, "%", types.FloatType, types.Type{}, false},
		{types.IntType, "<", types.IntType, types.BoolType, true},
		{types.IntType, "+", types.FloatType, types.Type{}, false},
		{types.CharType, "==", types.CharType, types.BoolType, true},
		{types.CharType, "+", types.CharType, types.Type{}, false},
		{types.BoolType, "&&", types.BoolType, types.BoolType, true},
		{types.VoidType, "==", types.VoidType, types.Type{}, false},
		{types.ArrayOf(types.IntType), "==", types.ArrayOf(types.IntType), types.Type{}, false},
	}

	for _, c := range cases {
		got, ok := ops.Binary(c.left, c.op, c.right)
		if ok != c.ok {
			t.Errorf("Binary(%v, %q, %v) ok = %v, want %v", c.left, c.op, c.right, ok, c.ok)
			continue
		}
		if ok && !got.Equal(c.want) {
			t.Errorf("Binary(%v, %q, %v) = %v, want %v", c.left, c.op, c.right, got, c.want)
		}
	}
}

func TestOperatorTableUnary(t *testing.T) {
	ops := types.NewOperatorTable()

	cases := []struct {
		op      string
		operand types.Type
		want    types.Type
		ok      bool
	}{
		{"-", types.IntType, types.IntType, true},
		{"-", types.FloatType, types.FloatType, true},
		{"!", types.BoolType, types.BoolType, true},
		{"!", types.IntType, types.Type{}, false},
		{"++", types.IntType, types.IntType, true},
		{"++", types.FloatType, types.Type{}, false},
	}

	for _, c := range cases {
		got, ok := ops.Unary(c.op, c.operand)
		if ok != c.ok {
			t.Errorf("Unary(%q, %v) ok = %v, want %v", c.op, c.operand, ok, c.ok)
			continue
		}
		if ok && !got.Equal(c.want) {
			t.Errorf("Unary(%q, %v) = %v, want %v", c.op, c.operand, got, c.want)
		}
	}
}
