package semantic

import (
	"github.com/minic-lang/minic/internal/ast"
	"github.com/minic-lang/minic/internal/types"
)

// checkCompound checks a block's local declarations and statements.
// Nested compounds (if/while/for bodies) are checked through the same
// env, per the two-layer scope model described on SymbolTable.
func (a *Analyzer) checkCompound(c *ast.Compound, env *SymbolTable) {
	for _, d := range c.Decls {
		a.checkStmt(d, env)
	}
	for _, s := range c.Stmts {
		a.checkStmt(s, env)
	}
}

func (a *Analyzer) checkStmt(s ast.Statement, env *SymbolTable) {
	switch n := s.(type) {
	case *ast.NullStmt:

	case *ast.ExprStmt:
		a.checkExprWithEnv(n.Expr, env)

	case *ast.Print:
		a.checkExprWithEnv(n.Expr, env)

	case *ast.If:
		a.checkCondition(n.Cond, env)
		a.checkStmt(n.Then, env)
		if n.Else != nil {
			a.checkStmt(n.Else, env)
		}

	case *ast.While:
		a.checkCondition(n.Cond, env)
		a.loopDepth++
		a.checkStmt(n.Body, env)
		a.loopDepth--

	case *ast.For:
		if n.Init != nil {
			a.checkStmt(n.Init, env)
		}
		if n.Cond != nil {
			a.checkCondition(n.Cond, env)
		}
		if n.Step != nil {
			a.checkExprWithEnv(n.Step, env)
		}
		a.loopDepth++
		a.checkStmt(n.Body, env)
		a.loopDepth--

	case *ast.Return:
		a.checkReturn(n, env)

	case *ast.Break:
		if a.loopDepth == 0 {
			a.report(n.P, "Break statement must be within a loop")
		}

	case *ast.Compound:
		a.checkCompound(n, env)

	case *ast.LocalVarDecl:
		a.checkLocalVarDecl(n, env)

	case *ast.LocalArrayDecl:
		a.checkLocalArrayDecl(n, env)

	case *ast.FuncDecl:
		a.report(n.P, "Nested function declarations are not allowed")

	case *ast.WriteLocation:
		a.checkExprWithEnv(n.Value, env)
	}
}

// checkCondition checks cond and reports if it is not bool-typed. A
// null type (already-reported failure) is passed through silently.
func (a *Analyzer) checkCondition(cond ast.Expression, env *SymbolTable) {
	t := a.checkExprWithEnv(cond, env)
	if t != nil && !t.Equal(types.BoolType) {
		a.report(cond.Pos(), "Condition expression must be of type bool, got '%s'", t.Name())
	}
}

func (a *Analyzer) checkReturn(n *ast.Return, env *SymbolTable) {
	if a.currentFuncName == "" {
		a.report(n.P, "Return statement must be within a function")
		return
	}

	if n.Value == nil {
		a.hasReturn = true
		if a.expectedReturn.Equal(types.VoidType) {
			a.hasMatchingReturn = true
		} else {
			a.report(n.P, "Function '%s' must return a value of type '%s'", a.currentFuncName, a.expectedReturn.Name())
		}
		return
	}

	a.hasReturn = true
	vt := a.checkExprWithEnv(n.Value, env)
	if vt == nil {
		return
	}
	if a.expectedReturn.Equal(types.VoidType) {
		a.report(n.P, "Function '%s' declared void may not return a value", a.currentFuncName)
		return
	}
	if !vt.Equal(a.expectedReturn) {
		a.report(n.P, "Cannot return value of type '%s' from function '%s' declared to return '%s'",
			vt.Name(), a.currentFuncName, a.expectedReturn.Name())
		return
	}
	a.hasMatchingReturn = true
}
