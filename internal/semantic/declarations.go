package semantic

import (
	"github.com/minic-lang/minic/internal/ast"
	"github.com/minic-lang/minic/internal/types"
)

// registerFuncSignature resolves fd's parameter and return types and
// inserts it into the function table, ahead of any body being checked,
// so recursive calls anywhere in the program resolve (spec.md §9).
func (a *Analyzer) registerFuncSignature(fd *ast.FuncDecl) {
	a.checkNameNotReserved(fd.P, fd.Name)

	retType, _ := a.resolveDataType(fd.ReturnType)

	seen := map[string]bool{}
	params := make([]ParamInfo, 0, len(fd.Params))
	for _, p := range fd.Params {
		pt, ok := a.resolveDataType(p.DataType)
		if ok && pt.Equal(types.VoidType) {
			a.report(p.P, "Parameter '%s' cannot have type void", p.Name)
		}
		if p.Name != "" {
			if seen[p.Name] {
				a.report(p.P, "Name '%s' has already been defined", p.Name)
			}
			seen[p.Name] = true
		}
		params = append(params, ParamInfo{Name: p.Name, Type: pt, IsArray: p.IsArray})
	}

	sym := &FuncSymbol{Name: fd.Name, ReturnType: retType, Params: params, DeclPos: fd.P}
	if existing, ok := a.funcs.Define(sym); !ok {
		a.report(fd.P, "Function '%s' has already been defined at line %d", fd.Name, existing.DeclPos.Line)
	}
}

// checkFuncBody checks one function's body against its already-
// registered signature, chaining parameters onto a frozen global scope
// (spec.md §4.4: "no new globals inside a function").
func (a *Analyzer) checkFuncBody(fd *ast.FuncDecl) {
	sym, ok := a.funcs.Lookup(fd.Name)
	if !ok {
		// Signature registration rejected this function outright (name
		// collision); nothing further to check against.
		return
	}

	env := NewSymbolTable(a.global)
	for _, p := range sym.Params {
		if p.Name == "" {
			continue
		}
		env.Define(&VarSymbol{Name: p.Name, Type: p.Type, IsArray: p.IsArray, DeclPos: fd.P})
	}

	a.currentFuncName = fd.Name
	a.expectedReturn = sym.ReturnType
	a.hasReturn = false
	a.hasMatchingReturn = false

	if fd.Body != nil {
		a.checkCompound(fd.Body, env)
	}

	if !sym.ReturnType.Equal(types.VoidType) {
		if !a.hasReturn {
			a.report(fd.P, "Function '%s' has no return statement", fd.Name)
			a.funcs.Remove(fd.Name)
		} else if !a.hasMatchingReturn {
			a.funcs.Remove(fd.Name)
		}
	}

	a.currentFuncName = ""
}

func (a *Analyzer) checkStaticVarDecl(n *ast.StaticVarDecl) {
	a.checkNameNotReserved(n.P, n.Name)
	declType, ok := a.resolveDataType(n.DataType)
	if ok && declType.Equal(types.VoidType) {
		a.report(n.P, "Variable '%s' cannot have type void", n.Name)
	}

	if n.Init != nil {
		initType := a.checkExprWithEnv(n.Init, a.global)
		if ok && initType != nil && !initType.Equal(declType) {
			a.report(n.P, "Cannot assign value of type '%s' to variable '%s' of type '%s'",
				initType.Name(), n.Name, declType.Name())
		}
	}

	if existing, defined := a.global.Define(&VarSymbol{Name: n.Name, Type: declType, DeclPos: n.P}); !defined {
		a.report(n.P, "Name '%s' has already been defined at line %d", n.Name, existing.DeclPos.Line)
	}
}

func (a *Analyzer) checkStaticArrayDecl(n *ast.StaticArrayDecl) {
	a.checkNameNotReserved(n.P, n.Name)
	elemType, ok := a.resolveDataType(n.DataType)
	if ok && elemType.Equal(types.VoidType) {
		a.report(n.P, "Array '%s' cannot have element type void", n.Name)
	}

	a.checkArraySize(n.Size, n.Name, a.global)

	arrType := types.ArrayOf(elemType)
	if existing, defined := a.global.Define(&VarSymbol{Name: n.Name, Type: arrType, IsArray: true, DeclPos: n.P}); !defined {
		a.report(n.P, "Name '%s' has already been defined at line %d", n.Name, existing.DeclPos.Line)
	}
}

func (a *Analyzer) checkLocalVarDecl(n *ast.LocalVarDecl, env *SymbolTable) {
	a.checkNameNotReserved(n.P, n.Name)
	declType, ok := a.resolveDataType(n.DataType)
	if ok && declType.Equal(types.VoidType) {
		a.report(n.P, "Variable '%s' cannot have type void", n.Name)
	}

	if n.Init != nil {
		initType := a.checkExprWithEnv(n.Init, env)
		if ok && initType != nil && !initType.Equal(declType) {
			a.report(n.P, "Cannot assign value of type '%s' to variable '%s' of type '%s'",
				initType.Name(), n.Name, declType.Name())
		}
	}

	if existing, defined := env.Define(&VarSymbol{Name: n.Name, Type: declType, DeclPos: n.P}); !defined {
		a.report(n.P, "Name '%s' has already been defined at line %d", n.Name, existing.DeclPos.Line)
	}
}

func (a *Analyzer) checkLocalArrayDecl(n *ast.LocalArrayDecl, env *SymbolTable) {
	a.checkNameNotReserved(n.P, n.Name)
	elemType, ok := a.resolveDataType(n.DataType)
	if ok && elemType.Equal(types.VoidType) {
		a.report(n.P, "Array '%s' cannot have element type void", n.Name)
	}

	a.checkArraySize(n.Size, n.Name, env)

	arrType := types.ArrayOf(elemType)
	if existing, defined := env.Define(&VarSymbol{Name: n.Name, Type: arrType, IsArray: true, DeclPos: n.P}); !defined {
		a.report(n.P, "Name '%s' has already been defined at line %d", n.Name, existing.DeclPos.Line)
	}
}

// checkArraySize enforces spec.md §4.4's "size expression must be an
// integer literal (compile-time constant)" rule for static/local arrays.
func (a *Analyzer) checkArraySize(size ast.Expression, arrName string, env *SymbolTable) {
	a.checkExprWithEnv(size, env)
	lit, ok := size.(*ast.IntLit)
	if !ok || lit.Value <= 0 {
		a.report(size.Pos(), "Size of array '%s' must be a positive integer", arrName)
	}
}
