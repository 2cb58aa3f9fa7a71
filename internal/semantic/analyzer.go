package semantic

import (
	"github.com/minic-lang/minic/internal/ast"
	"github.com/minic-lang/minic/internal/errors"
	"github.com/minic-lang/minic/internal/types"
)

// Analyzer is the checker: one instance per compilation, holding the
// process-local state spec.md §5 calls out as needing a fresh instance
// per run (symbol table, function table, loop/function context).
type Analyzer struct {
	sink     *errors.Sink
	registry *types.Registry
	ops      *types.OperatorTable
	funcs    *FunctionTable
	global   *SymbolTable

	// Function-body context, valid only while checking inside a FuncDecl.
	currentFuncName   string
	expectedReturn    types.Type
	hasReturn         bool
	hasMatchingReturn bool
	loopDepth         int
}

// New creates an Analyzer reporting diagnostics to sink.
func New(sink *errors.Sink) *Analyzer {
	return &Analyzer{
		sink:     sink,
		registry: types.NewRegistry(),
		ops:      types.NewOperatorTable(),
		funcs:    NewFunctionTable(),
		global:   NewSymbolTable(nil),
	}
}

// Check walks prog, annotating every expression with its resolved type
// and reporting diagnostics. Per spec.md §4.4, function signatures are
// all registered before any function body is checked, so self- and
// mutual recursion resolve regardless of declaration order.
func (a *Analyzer) Check(prog *ast.Program) {
	for _, d := range prog.Decls {
		if fd, ok := d.(*ast.FuncDecl); ok {
			a.registerFuncSignature(fd)
		}
	}

	for _, d := range prog.Decls {
		switch n := d.(type) {
		case *ast.FuncDecl:
			a.checkFuncBody(n)
		case *ast.StaticVarDecl:
			a.checkStaticVarDecl(n)
		case *ast.StaticArrayDecl:
			a.checkStaticArrayDecl(n)
		}
	}
}

func (a *Analyzer) report(pos errors.Position, format string, args ...any) {
	a.sink.Report(pos, format, args...)
}

// resolveDataType resolves a written type name, reporting "Invalid
// type" for anything outside the five primitives.
func (a *Analyzer) resolveDataType(dt *ast.DataType) (types.Type, bool) {
	t, ok := a.registry.Lookup(dt.Name)
	if !ok {
		a.report(dt.P, "Invalid type '%s'", dt.Name)
		return types.Type{}, false
	}
	dt.Resolved = &t
	return t, true
}

// checkNameNotReserved reports use of a primitive-type keyword as a
// declared identifier (spec.md §4.4: "A declared name may not equal a
// primitive-type keyword").
func (a *Analyzer) checkNameNotReserved(pos errors.Position, name string) bool {
	if a.registry.IsTypeKeyword(name) {
		a.report(pos, "Name '%s' is a reserved type keyword", name)
		return false
	}
	return true
}
