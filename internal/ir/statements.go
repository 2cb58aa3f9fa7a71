package ir

import (
	"fmt"

	"github.com/minic-lang/minic/internal/ast"
)

func (g *Generator) genCompound(c *ast.Compound) {
	for _, d := range c.Decls {
		g.genStmt(d)
	}
	for _, s := range c.Stmts {
		g.genStmt(s)
	}
}

func (g *Generator) genStmt(s ast.Statement) {
	switch n := s.(type) {
	case *ast.NullStmt:

	case *ast.ExprStmt:
		g.genExpr(n.Expr)

	case *ast.Print:
		g.genPrint(n)

	case *ast.If:
		g.genIf(n)

	case *ast.While:
		g.genWhile(n)

	case *ast.For:
		g.genFor(n)

	case *ast.Return:
		if n.Value == nil {
			g.emit("RET")
			return
		}
		reg := g.genExpr(n.Value)
		g.emit("RET", reg)

	case *ast.Break:
		if len(g.breaks) > 0 {
			g.emit("BRANCH", g.breaks[len(g.breaks)-1])
		}

	case *ast.Compound:
		g.genCompound(n)

	case *ast.LocalVarDecl:
		g.genLocalVarDecl(n)

	case *ast.LocalArrayDecl:
		g.genLocalArrayDecl(n)

	case *ast.WriteLocation:
		reg := g.genExpr(n.Value)
		g.storeLocation(n.Loc, reg)
	}
}

// genPrint handles `print(expr);`. String literals carry no primitive
// type tag (spec.md §4.6's type tags cover int/float/char/bool/void
// only), so they are lowered as a distinct untyped PRINTS with the
// literal text inline rather than through a register.
func (g *Generator) genPrint(n *ast.Print) {
	if s, ok := n.Expr.(*ast.StringLit); ok {
		g.emit("PRINTS", fmt.Sprintf("%q", s.Value))
		return
	}
	reg := g.genExpr(n.Expr)
	g.emit("PRINT"+exprTag(n.Expr), reg)
}

// genIf lowers `if (c) t else f` into three labels per spec.md §4.6:
// CBRANCH c, Lt, Lf; Lt: then; BRANCH Lmerge; Lf: [else]; BRANCH Lmerge;
// Lmerge:
func (g *Generator) genIf(n *ast.If) {
	lt := g.newLabel()
	lf := g.newLabel()
	lmerge := g.newLabel()

	condReg := g.genExpr(n.Cond)
	g.emit("CBRANCH", condReg, lt, lf)

	g.emit("LABEL", lt)
	g.genStmt(n.Then)
	g.emit("BRANCH", lmerge)

	g.emit("LABEL", lf)
	if n.Else != nil {
		g.genStmt(n.Else)
	}
	g.emit("BRANCH", lmerge)

	g.emit("LABEL", lmerge)
}

// genWhile lowers `while (c) b` per spec.md §4.6: an initial
// unconditional BRANCH Ltop, then Ltop: evaluate c, CBRANCH to
// Lstart/Lmerge, Lstart: body, BRANCH Ltop, Lmerge:. break targets the
// current Lmerge via a label stack, popped after the body.
func (g *Generator) genWhile(n *ast.While) {
	ltop := g.newLabel()
	lstart := g.newLabel()
	lmerge := g.newLabel()

	g.emit("BRANCH", ltop)
	g.emit("LABEL", ltop)
	condReg := g.genExpr(n.Cond)
	g.emit("CBRANCH", condReg, lstart, lmerge)

	g.emit("LABEL", lstart)
	g.breaks = append(g.breaks, lmerge)
	g.genStmt(n.Body)
	g.breaks = g.breaks[:len(g.breaks)-1]
	g.emit("BRANCH", ltop)

	g.emit("LABEL", lmerge)
}

// genFor lowers the C-style for loop as a while loop with the step
// expression folded into the end of the body, reusing the same
// label/branch shape as genWhile.
func (g *Generator) genFor(n *ast.For) {
	if n.Init != nil {
		g.genStmt(n.Init)
	}

	ltop := g.newLabel()
	lstart := g.newLabel()
	lmerge := g.newLabel()

	g.emit("BRANCH", ltop)
	g.emit("LABEL", ltop)
	if n.Cond != nil {
		condReg := g.genExpr(n.Cond)
		g.emit("CBRANCH", condReg, lstart, lmerge)
	} else {
		g.emit("BRANCH", lstart)
	}

	g.emit("LABEL", lstart)
	g.breaks = append(g.breaks, lmerge)
	g.genStmt(n.Body)
	g.breaks = g.breaks[:len(g.breaks)-1]
	if n.Step != nil {
		g.genExpr(n.Step)
	}
	g.emit("BRANCH", ltop)

	g.emit("LABEL", lmerge)
}

func (g *Generator) genLocalVarDecl(n *ast.LocalVarDecl) {
	if n.DataType.Resolved == nil {
		return
	}
	tag := typeTag(*n.DataType.Resolved)
	g.emit("ALLOC"+tag, n.Name)
	if n.Init != nil {
		reg := g.genExpr(n.Init)
		g.emit("STORE"+tag, reg, n.Name)
	}
}

func (g *Generator) genLocalArrayDecl(n *ast.LocalArrayDecl) {
	if n.DataType.Resolved == nil {
		return
	}
	tag := typeTag(*n.DataType.Resolved)
	sizeReg := g.genExpr(n.Size)
	g.emit("ALLOC"+tag, fmt.Sprintf("%s[%s]", n.Name, sizeReg))
}

// storeLocation stores reg into the uniform lvalue view loc resolves
// to. loc is always a *ast.Var or *ast.ArrayLookup in practice; the
// parser never constructs WriteLocation/ReadLocation directly. This
// exists only so the interface is exercised if a future pass builds one.
func (g *Generator) storeLocation(loc ast.Location, reg string) {
	switch n := loc.(type) {
	case *ast.Var:
		g.emit("STORE"+exprTag(n), reg, n.Name)
	case *ast.ArrayLookup:
		idxReg := g.genExpr(n.Index)
		g.emit("STORE"+exprTag(n), reg, fmt.Sprintf("%s[%s]", n.Name, idxReg))
	}
}
