package ir

import (
	"fmt"

	"github.com/minic-lang/minic/internal/ast"
	"github.com/minic-lang/minic/internal/types"
)

// Generator walks a checked ast.Program and emits one Function per
// declared function plus the distinguished __minic_init function that
// collects global initializers (spec.md §4.6, §3).
type Generator struct {
	regCounter   int
	labelCounter int

	funcs  []*Function
	initFn *Function
	cur    *Function
	global bool
	breaks []string
}

// New creates a Generator with its __minic_init function already
// seeded as the first entry of the function list.
func New() *Generator {
	init := &Function{Name: "__minic_init", ReturnTag: "V"}
	g := &Generator{funcs: []*Function{init}, initFn: init, cur: init, global: true}
	return g
}

// Generate lowers prog and returns every emitted Function, __minic_init
// first, in source declaration order thereafter.
func Generate(prog *ast.Program) []*Function {
	g := New()
	for _, d := range prog.Decls {
		g.genTopLevel(d)
	}
	return g.funcs
}

func (g *Generator) newReg() string {
	g.regCounter++
	return fmt.Sprintf("R%d", g.regCounter)
}

func (g *Generator) newLabel() string {
	g.labelCounter++
	return fmt.Sprintf("L%d", g.labelCounter)
}

func (g *Generator) emit(op string, args ...string) {
	g.cur.Code = append(g.cur.Code, Instr{Op: op, Args: args})
}

// typeTag maps a resolved primitive type to spec.md §4.6's opcode
// suffix: int→I, float→F, char→B, bool→I, void→V. String has no
// suffix of its own (it only ever reaches Print, handled specially)
// but falls back to I rather than panicking on a stray reference.
func typeTag(t types.Type) string {
	switch t.Kind {
	case types.Int, types.Bool:
		return "I"
	case types.Float:
		return "F"
	case types.Char:
		return "B"
	case types.Void:
		return "V"
	default:
		return "I"
	}
}

func exprTag(e ast.Expression) string {
	t := e.GetType()
	if t == nil {
		return "I"
	}
	return typeTag(*t)
}

func (g *Generator) genTopLevel(d ast.Statement) {
	switch n := d.(type) {
	case *ast.FuncDecl:
		g.genFuncDecl(n)
	case *ast.StaticVarDecl:
		g.genGlobalVarDecl(n)
	case *ast.StaticArrayDecl:
		g.genGlobalArrayDecl(n)
	}
}

func (g *Generator) genFuncDecl(fd *ast.FuncDecl) {
	name := fd.Name
	if name == "main" {
		name = "__minic_main"
	}

	fn := &Function{Name: name}
	if fd.ReturnType.Resolved != nil {
		fn.ReturnTag = typeTag(*fd.ReturnType.Resolved)
	}
	for _, p := range fd.Params {
		if p.Name == "" || p.DataType.Resolved == nil {
			continue
		}
		fn.Params = append(fn.Params, Param{Name: p.Name, Tag: typeTag(*p.DataType.Resolved)})
	}
	g.funcs = append(g.funcs, fn)

	prevCur, prevGlobal := g.cur, g.global
	g.cur, g.global = fn, false
	if fd.Body != nil {
		g.genCompound(fd.Body)
	}
	g.cur, g.global = prevCur, prevGlobal
}

func (g *Generator) genGlobalVarDecl(n *ast.StaticVarDecl) {
	if n.DataType.Resolved == nil {
		return
	}
	tag := typeTag(*n.DataType.Resolved)
	g.emit("VAR"+tag, n.Name)
	if n.Init != nil {
		reg := g.genExpr(n.Init)
		g.emit("STORE"+tag, reg, n.Name)
	}
}

func (g *Generator) genGlobalArrayDecl(n *ast.StaticArrayDecl) {
	if n.DataType.Resolved == nil {
		return
	}
	tag := typeTag(*n.DataType.Resolved)
	sizeReg := g.genExpr(n.Size)
	g.emit("VAR"+tag, fmt.Sprintf("%s[%s]", n.Name, sizeReg))
}
