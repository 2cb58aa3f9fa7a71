// Package types enumerates MiniC's closed set of primitive types and
// the binary/unary operator compatibility tables that drive the
// checker's type rules (spec.md §3).
package types

import "fmt"

// Kind is the closed set of primitive type kinds.
type Kind int

const (
	Int Kind = iota
	Float
	Char
	Bool
	Void
	// String tags a string-literal expression. It is deliberately outside
	// the closed set of declarable primitive types: MiniC has no string
	// variable type, so it is never registered in Registry and never
	// appears in OperatorTable, which means every operator use of a
	// string naturally reports "not supported". It exists solely so
	// ast.StringLit (valid only as print's argument) has a Type to carry.
	String
)

// Type is a resolved MiniC type. The front-end only has primitive types
// and one-dimensional arrays of a primitive element type, so Type is a
// small concrete struct rather than an interface hierarchy.
type Type struct {
	Kind Kind
	// Elem is non-nil when this Type is "array of Elem" (spec.md's
	// NewArray / StaticArrayDecl / LocalArrayDecl element type).
	Elem *Type
}

// Primitive type singletons, safe to compare by value (Type has no
// pointer identity requirement: two Type{Kind: Int} are equal).
var (
	IntType    = Type{Kind: Int}
	FloatType  = Type{Kind: Float}
	CharType   = Type{Kind: Char}
	BoolType   = Type{Kind: Bool}
	VoidType   = Type{Kind: Void}
	StringType = Type{Kind: String}
)

// ArrayOf builds the array-of-elem type.
func ArrayOf(elem Type) Type {
	e := elem
	return Type{Kind: elem.Kind, Elem: &e}
}

// IsArray reports whether t is an array type.
func (t Type) IsArray() bool { return t.Elem != nil }

// Name returns the canonical type name used in diagnostics, matching
// spec.md's "canonical name string" per primitive type.
func (t Type) Name() string {
	if t.IsArray() {
		return fmt.Sprintf("%s[]", t.Elem.Name())
	}
	switch t.Kind {
	case Int:
		return "int"
	case Float:
		return "float"
	case Char:
		return "char"
	case Bool:
		return "bool"
	case Void:
		return "void"
	case String:
		return "string"
	default:
		return "?"
	}
}

// Equal reports whether two types are identical (same kind, and for
// arrays, the same element type).
func (t Type) Equal(other Type) bool {
	if t.Kind != other.Kind {
		return false
	}
	if t.IsArray() != other.IsArray() {
		return false
	}
	if t.IsArray() {
		return t.Elem.Equal(*other.Elem)
	}
	return true
}

// Registry resolves type names written in source to a Type, per
// spec.md §3's "type registry".
type Registry struct {
	byName map[string]Type
}

// NewRegistry builds the registry of the five built-in primitive types.
func NewRegistry() *Registry {
	return &Registry{byName: map[string]Type{
		"int":   IntType,
		"float": FloatType,
		"char":  CharType,
		"bool":  BoolType,
		"void":  VoidType,
	}}
}

// Lookup resolves name to a Type, reporting ok=false for unknown names
// (spec.md: "unknown type -> Invalid type '...'").
func (r *Registry) Lookup(name string) (Type, bool) {
	t, ok := r.byName[name]
	return t, ok
}

// IsTypeKeyword reports whether name names a primitive type, used by the
// checker to reject declarations that shadow a type keyword (spec.md
// §4.4: "A declared name may not equal a primitive-type keyword.").
func (r *Registry) IsTypeKeyword(name string) bool {
	_, ok := r.byName[name]
	return ok
}

// binaryKey and unaryKey index the operator-compatibility tables.
type binaryKey struct {
	Left  Kind
	Op    string
	Right Kind
}

type unaryKey struct {
	Op      string
	Operand Kind
}

// OperatorTable implements the per-type binary/unary operator
// compatibility rules as a single flat lookup keyed by operand kinds
// and operator text, rather than a method per type pair.
type OperatorTable struct {
	binary map[binaryKey]Type
	unary  map[unaryKey]Type
}

// NewOperatorTable builds the compatibility table described in
// spec.md §3.
func NewOperatorTable() *OperatorTable {
	t := &OperatorTable{
		binary: map[binaryKey]Type{},
		unary:  map[unaryKey]Type{},
	}

	for _, k := range []Kind{Int, Float} {
		for _, op := range []string{"+", "-", "*", "/"} {
			t.binary[binaryKey{k, op, k}] = Type{Kind: k}
		}
		for _, op := range []string{"<", "<=", ">", ">=", "==", "!="} {
			t.binary[binaryKey{k, op, k}] = BoolType
		}
		for _, op := range []string{"-", "+"} {
			t.unary[unaryKey{op, k}] = Type{Kind: k}
		}
	}
	t.binary[binaryKey{Int, "%", Int}] = IntType

	for _, op := range []string{"==", "!=", "<", "<=", ">", ">="} {
		t.binary[binaryKey{Char, op, Char}] = BoolType
	}

	for _, op := range []string{"&&", "||", "==", "!="} {
		t.binary[binaryKey{Bool, op, Bool}] = BoolType
	}
	t.unary[unaryKey{"!", Bool}] = BoolType

	// ++/-- operate on int lvalues only; modeled as a unary entry keyed
	// by the increment/decrement operator text.
	t.unary[unaryKey{"++", Int}] = IntType
	t.unary[unaryKey{"--", Int}] = IntType

	return t
}

// Binary looks up (left op right); ok is false when unsupported.
func (t *OperatorTable) Binary(left Type, op string, right Type) (Type, bool) {
	if left.IsArray() || right.IsArray() {
		return Type{}, false
	}
	res, ok := t.binary[binaryKey{left.Kind, op, right.Kind}]
	return res, ok
}

// Unary looks up (op operand); ok is false when unsupported.
func (t *OperatorTable) Unary(op string, operand Type) (Type, bool) {
	if operand.IsArray() {
		return Type{}, false
	}
	res, ok := t.unary[unaryKey{op, operand.Kind}]
	return res, ok
}
