package semantic

import (
	"strings"

	"github.com/minic-lang/minic/internal/ast"
	"github.com/minic-lang/minic/internal/types"
)

// checkExprWithEnv checks e against env's scope chain, annotates it
// with its resolved type via SetType, and returns that type (nil on
// failure: the "null type" that suppresses cascading diagnostics once
// one has already been reported for e).
func (a *Analyzer) checkExprWithEnv(e ast.Expression, env *SymbolTable) *types.Type {
	if e == nil {
		return nil
	}

	t := a.inferExpr(e, env)
	e.SetType(t)
	return t
}

func (a *Analyzer) inferExpr(e ast.Expression, env *SymbolTable) *types.Type {
	switch n := e.(type) {
	case *ast.IntLit:
		t := types.IntType
		return &t
	case *ast.FloatLit:
		t := types.FloatType
		return &t
	case *ast.CharLit:
		t := types.CharType
		return &t
	case *ast.BoolLit:
		t := types.BoolType
		return &t
	case *ast.StringLit:
		t := types.StringType
		return &t

	case *ast.Var:
		sym, ok := env.Resolve(n.Name)
		if !ok {
			a.report(n.P, "Name '%s' was not defined", n.Name)
			return nil
		}
		return &sym.Type

	case *ast.ArrayLookup:
		sym, ok := env.Resolve(n.Name)
		if !ok {
			a.report(n.P, "Name '%s' was not defined", n.Name)
			a.checkExprWithEnv(n.Index, env)
			return nil
		}
		if !sym.IsArray {
			a.report(n.P, "Name '%s' is not an array", n.Name)
		}
		idxType := a.checkExprWithEnv(n.Index, env)
		if idxType != nil && !idxType.Equal(types.IntType) {
			a.report(n.Index.Pos(), "Array index must be of type int, got '%s'", idxType.Name())
		}
		if !sym.IsArray {
			return nil
		}
		elem := *sym.Type.Elem
		return &elem

	case *ast.ArraySize:
		sym, ok := env.Resolve(n.Name)
		if !ok {
			a.report(n.P, "Name '%s' was not defined", n.Name)
			return nil
		}
		if !sym.IsArray {
			a.report(n.P, "Name '%s' is not an array", n.Name)
			return nil
		}
		t := types.IntType
		return &t

	case *ast.NewArray:
		elemType, ok := a.resolveDataType(n.DataType)
		if ok && elemType.Equal(types.VoidType) {
			a.report(n.P, "Array element type may not be void")
		}
		sizeType := a.checkExprWithEnv(n.Size, env)
		if sizeType != nil && !sizeType.Equal(types.IntType) {
			a.report(n.Size.Pos(), "Size expression for 'new' must be of type int, got '%s'", sizeType.Name())
		}
		if !ok {
			return nil
		}
		arr := types.ArrayOf(elemType)
		return &arr

	case *ast.FuncCall:
		return a.checkFuncCall(n, env)

	case *ast.UnaryOp:
		operand := a.checkExprWithEnv(n.Expr, env)
		if operand == nil {
			return nil
		}
		res, ok := a.ops.Unary(n.Op, *operand)
		if !ok {
			a.report(n.P, "Unary operation '%s%s' not supported", n.Op, operand.Name())
			return nil
		}
		return &res

	case *ast.BinaryOp:
		left := a.checkExprWithEnv(n.Left, env)
		right := a.checkExprWithEnv(n.Right, env)
		if left == nil || right == nil {
			return nil
		}
		res, ok := a.ops.Binary(*left, n.Op, *right)
		if !ok {
			a.report(n.P, "Binary operation '%s %s %s' not supported", left.Name(), n.Op, right.Name())
			return nil
		}
		return &res

	case *ast.IncDec:
		sym, ok := env.Resolve(n.Name)
		if !ok {
			a.report(n.P, "Name '%s' was not defined", n.Name)
			return nil
		}
		res, opOK := a.ops.Unary(n.Op, sym.Type)
		if !opOK {
			a.report(n.P, "Unary operation '%s%s' not supported", n.Op, sym.Type.Name())
			return nil
		}
		return &res

	case *ast.VarAssign:
		return a.checkVarAssign(n, env)

	case *ast.ArrayAssign:
		return a.checkArrayAssign(n, env)

	case *ast.ReadLocation:
		return a.checkExprWithEnv(n.Loc, env)

	default:
		return nil
	}
}

// assignOpBase strips the trailing '=' from a compound-assignment
// operator ("+=" -> "+"); plain "=" has no arithmetic component.
func assignOpBase(op string) (string, bool) {
	if op == "=" {
		return "", false
	}
	return strings.TrimSuffix(op, "="), true
}

func (a *Analyzer) checkVarAssign(n *ast.VarAssign, env *SymbolTable) *types.Type {
	sym, ok := env.Resolve(n.Name)
	if !ok {
		a.report(n.P, "Name '%s' was not defined", n.Name)
		a.checkExprWithEnv(n.Value, env)
		return nil
	}

	valType := a.checkExprWithEnv(n.Value, env)

	if base, compound := assignOpBase(n.Op); compound {
		if valType == nil {
			return nil
		}
		if _, opOK := a.ops.Binary(sym.Type, base, *valType); !opOK {
			a.report(n.P, "Binary operation '%s %s %s' not supported", sym.Type.Name(), base, valType.Name())
			return nil
		}
		return &sym.Type
	}

	if valType != nil && !valType.Equal(sym.Type) {
		a.report(n.P, "Cannot assign value of type '%s' to variable '%s' of type '%s'",
			valType.Name(), n.Name, sym.Type.Name())
		return nil
	}
	return &sym.Type
}

func (a *Analyzer) checkArrayAssign(n *ast.ArrayAssign, env *SymbolTable) *types.Type {
	sym, ok := env.Resolve(n.Name)
	if !ok {
		a.report(n.P, "Name '%s' was not defined", n.Name)
		a.checkExprWithEnv(n.Index, env)
		a.checkExprWithEnv(n.Value, env)
		return nil
	}
	if !sym.IsArray {
		a.report(n.P, "Name '%s' is not an array", n.Name)
	}

	idxType := a.checkExprWithEnv(n.Index, env)
	if idxType != nil && !idxType.Equal(types.IntType) {
		a.report(n.Index.Pos(), "Array index must be of type int, got '%s'", idxType.Name())
	}

	valType := a.checkExprWithEnv(n.Value, env)
	if !sym.IsArray {
		return nil
	}
	elemType := *sym.Type.Elem

	if base, compound := assignOpBase(n.Op); compound {
		if valType == nil {
			return nil
		}
		if _, opOK := a.ops.Binary(elemType, base, *valType); !opOK {
			a.report(n.P, "Binary operation '%s %s %s' not supported", elemType.Name(), base, valType.Name())
			return nil
		}
		return &elemType
	}

	if valType != nil && !valType.Equal(elemType) {
		a.report(n.P, "Cannot assign value of type '%s' to element of '%s' of type '%s'",
			valType.Name(), n.Name, elemType.Name())
		return nil
	}
	return &elemType
}

// checkFuncCall resolves the callee and checks argument count/types
// against its signature (spec.md §4.4 "Function calls").
func (a *Analyzer) checkFuncCall(n *ast.FuncCall, env *SymbolTable) *types.Type {
	sym, ok := a.funcs.Lookup(n.Name)
	if !ok {
		a.report(n.P, "Name '%s' was not defined", n.Name)
		for _, arg := range n.Args {
			a.checkExprWithEnv(arg, env)
		}
		return nil
	}

	argTypes := make([]*types.Type, len(n.Args))
	for i, arg := range n.Args {
		argTypes[i] = a.checkExprWithEnv(arg, env)
	}

	mismatch := len(argTypes) != len(sym.Params)
	if !mismatch {
		for i, pt := range sym.Params {
			if argTypes[i] == nil || !argTypes[i].Equal(pt.Type) {
				mismatch = true
				break
			}
		}
	}

	if mismatch {
		a.report(n.P, "Function '%s' expects (%s), but was called with (%s)",
			n.Name, paramTypeList(sym.Params), argTypeList(argTypes))
		return nil
	}

	ret := sym.ReturnType
	return &ret
}

func paramTypeList(params []ParamInfo) string {
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Type.Name()
	}
	return strings.Join(names, ", ")
}

func argTypeList(argTypes []*types.Type) string {
	names := make([]string, len(argTypes))
	for i, t := range argTypes {
		if t == nil {
			names[i] = "?"
			continue
		}
		names[i] = t.Name()
	}
	return strings.Join(names, ", ")
}
