// Package semantic implements MiniC's checker: a post-order tree walk
// that resolves names, assigns a type to every expression, and enforces
// the naming/type/control-flow rules of spec.md §4.4.
package semantic

import (
	"github.com/minic-lang/minic/internal/errors"
	"github.com/minic-lang/minic/internal/types"
)

// VarSymbol is one entry in a SymbolTable: a declared variable or array.
type VarSymbol struct {
	Name    string
	Type    types.Type
	IsArray bool
	DeclPos errors.Position
}

// SymbolTable is one layer of MiniC's two-layer scope chain: a
// name-to-decl map, chained to an outer table. Nested blocks
// (if/while/for bodies) do not open a further layer; their local
// declarations are folded into the enclosing function scope.
type SymbolTable struct {
	vars  map[string]*VarSymbol
	outer *SymbolTable
}

// NewSymbolTable creates an empty scope chained to outer (nil for the
// global scope).
func NewSymbolTable(outer *SymbolTable) *SymbolTable {
	return &SymbolTable{vars: make(map[string]*VarSymbol), outer: outer}
}

// Define inserts sym into this scope only. It reports (existing, false)
// if the name is already defined in THIS scope (append-only within a
// scope, per spec.md's invariant); shadowing an outer scope's name is
// allowed and returns (nil, true).
func (s *SymbolTable) Define(sym *VarSymbol) (*VarSymbol, bool) {
	if existing, ok := s.vars[sym.Name]; ok {
		return existing, false
	}
	s.vars[sym.Name] = sym
	return nil, true
}

// Resolve looks up name in this scope, then each outer scope in turn.
func (s *SymbolTable) Resolve(name string) (*VarSymbol, bool) {
	for t := s; t != nil; t = t.outer {
		if sym, ok := t.vars[name]; ok {
			return sym, true
		}
	}
	return nil, false
}
