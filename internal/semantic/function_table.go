package semantic

import (
	"github.com/minic-lang/minic/internal/errors"
	"github.com/minic-lang/minic/internal/types"
)

// ParamInfo is one resolved function parameter.
type ParamInfo struct {
	Name    string
	Type    types.Type
	IsArray bool
}

// FuncSymbol is one entry of the function table: a resolved signature,
// independent of the symbol-table chain (spec.md §3: "separate mapping
// name → FuncDecl").
type FuncSymbol struct {
	Name       string
	ReturnType types.Type
	Params     []ParamInfo
	DeclPos    errors.Position
}

// FunctionTable is the flat, global namespace of function signatures.
// A function is inserted before its body is checked so that recursive
// self-calls resolve (spec.md §4.4, §9 "Function-self-reference"), and
// removed afterwards if its observed return type disagreed.
type FunctionTable struct {
	funcs map[string]*FuncSymbol
}

func NewFunctionTable() *FunctionTable {
	return &FunctionTable{funcs: make(map[string]*FuncSymbol)}
}

// Define inserts sym, reporting (existing, false) if a function by
// that name is already defined.
func (t *FunctionTable) Define(sym *FuncSymbol) (*FuncSymbol, bool) {
	if existing, ok := t.funcs[sym.Name]; ok {
		return existing, false
	}
	t.funcs[sym.Name] = sym
	return nil, true
}

func (t *FunctionTable) Lookup(name string) (*FuncSymbol, bool) {
	sym, ok := t.funcs[name]
	return sym, ok
}

// Remove drops name, used when a function's observed return behavior
// disagreed with its declared return type.
func (t *FunctionTable) Remove(name string) {
	delete(t.funcs, name)
}
