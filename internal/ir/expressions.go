package ir

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/minic-lang/minic/internal/ast"
)

// genExpr emits e's instructions and returns the register holding its
// value. Callers may ignore the register for expression statements.
func (g *Generator) genExpr(e ast.Expression) string {
	switch n := e.(type) {
	case *ast.IntLit:
		dst := g.newReg()
		g.emit("MOV"+exprTag(n), strconv.FormatInt(n.Value, 10), dst)
		return dst

	case *ast.FloatLit:
		dst := g.newReg()
		g.emit("MOV"+exprTag(n), strconv.FormatFloat(n.Value, 'g', -1, 64), dst)
		return dst

	case *ast.CharLit:
		dst := g.newReg()
		g.emit("MOV"+exprTag(n), strconv.Itoa(int(n.Value)), dst)
		return dst

	case *ast.BoolLit:
		dst := g.newReg()
		v := "0"
		if n.Value {
			v = "1"
		}
		g.emit("MOV"+exprTag(n), v, dst)
		return dst

	case *ast.StringLit:
		dst := g.newReg()
		g.emit("MOVS", fmt.Sprintf("%q", n.Value), dst)
		return dst

	case *ast.Var:
		dst := g.newReg()
		t := n.GetType()
		if t != nil && t.IsArray() {
			// Arrays have no scalar value to load; pass the storage
			// name itself as the array's handle (e.g. when forwarding
			// it as a function argument).
			g.emit("MOV"+exprTag(n), n.Name, dst)
			return dst
		}
		g.emit("LOAD"+exprTag(n), n.Name, dst)
		return dst

	case *ast.ArrayLookup:
		idxReg := g.genExpr(n.Index)
		dst := g.newReg()
		g.emit("LOAD"+exprTag(n), fmt.Sprintf("%s[%s]", n.Name, idxReg), dst)
		return dst

	case *ast.ArraySize:
		dst := g.newReg()
		g.emit("LOADI", n.Name+".size", dst)
		return dst

	case *ast.NewArray:
		sizeReg := g.genExpr(n.Size)
		dst := g.newReg()
		tag := "I"
		if n.DataType.Resolved != nil {
			tag = typeTag(*n.DataType.Resolved)
		}
		g.emit("ALLOC"+tag, fmt.Sprintf("<new>[%s]", sizeReg), dst)
		return dst

	case *ast.FuncCall:
		return g.genCall(n)

	case *ast.UnaryOp:
		return g.genUnary(n)

	case *ast.BinaryOp:
		return g.genBinary(n)

	case *ast.IncDec:
		return g.genIncDec(n)

	case *ast.VarAssign:
		return g.genVarAssign(n)

	case *ast.ArrayAssign:
		return g.genArrayAssign(n)

	case *ast.ReadLocation:
		return g.genExpr(n.Loc)

	default:
		return g.newReg()
	}
}

// genUnary lowers -x/+x/!x via the helper-constant pattern of
// spec.md §4.6: "-x -> (MOV_T, 0, r0); (SUB_T, r0, x, dst)" and
// "!x -> (MOV_I, 1, r1); (XOR, r1, x, dst)". Unary + is a no-op pass
// through its operand's register; spec.md gives no lowering for it
// since it never changes the value.
func (g *Generator) genUnary(n *ast.UnaryOp) string {
	switch n.Op {
	case "-":
		tag := exprTag(n)
		zero := g.newReg()
		g.emit("MOV"+tag, "0", zero)
		operand := g.genExpr(n.Expr)
		dst := g.newReg()
		g.emit("SUB"+tag, zero, operand, dst)
		return dst
	case "!":
		one := g.newReg()
		g.emit("MOVI", "1", one)
		operand := g.genExpr(n.Expr)
		dst := g.newReg()
		g.emit("XOR", one, operand, dst)
		return dst
	default: // "+"
		return g.genExpr(n.Expr)
	}
}

// genIncDec lowers ++x/--x/x++/x-- as x +/- 1 followed by a STORE back
// to x. Postfix forms yield the pre-increment register as the
// expression's value; prefix forms yield the post-increment register
// (spec.md §4.6).
func (g *Generator) genIncDec(n *ast.IncDec) string {
	tag := exprTag(n)
	one := g.newReg()
	g.emit("MOV"+tag, "1", one)

	cur := g.newReg()
	g.emit("LOAD"+tag, n.Name, cur)

	opcode := "ADD"
	if n.Op == "--" {
		opcode = "SUB"
	}
	dst := g.newReg()
	g.emit(opcode+tag, cur, one, dst)
	g.emit("STORE"+tag, dst, n.Name)

	if n.Kind == ast.Postfix {
		return cur
	}
	return dst
}

var arithOpcodes = map[string]string{
	"+": "ADD", "-": "SUB", "*": "MUL", "/": "DIV", "%": "REM",
	"&&": "AND", "||": "OR",
}

var comparisonOps = map[string]bool{
	"<": true, "<=": true, ">": true, ">=": true, "==": true, "!=": true,
}

func (g *Generator) genBinary(n *ast.BinaryOp) string {
	leftReg := g.genExpr(n.Left)
	rightReg := g.genExpr(n.Right)
	dst := g.newReg()

	operandTag := exprTag(n.Left)

	if comparisonOps[n.Op] {
		g.emit("CMP"+operandTag, n.Op, leftReg, rightReg, dst)
		return dst
	}

	opcode := arithOpcodes[n.Op]
	g.emit(opcode+operandTag, leftReg, rightReg, dst)
	return dst
}

// compoundBase strips the trailing '=' from a compound-assignment
// operator; "=" itself has no arithmetic component.
func compoundBase(op string) (string, bool) {
	if op == "=" {
		return "", false
	}
	return strings.TrimSuffix(op, "="), true
}

func (g *Generator) genVarAssign(n *ast.VarAssign) string {
	tag := exprTag(n)

	if base, compound := compoundBase(n.Op); compound {
		cur := g.newReg()
		g.emit("LOAD"+tag, n.Name, cur)
		valReg := g.genExpr(n.Value)
		dst := g.newReg()
		g.emit(arithOpcodes[base]+tag, cur, valReg, dst)
		g.emit("STORE"+tag, dst, n.Name)
		return dst
	}

	valReg := g.genExpr(n.Value)
	g.emit("STORE"+tag, valReg, n.Name)
	return valReg
}

func (g *Generator) genArrayAssign(n *ast.ArrayAssign) string {
	tag := exprTag(n)
	idxReg := g.genExpr(n.Index)
	addr := fmt.Sprintf("%s[%s]", n.Name, idxReg)

	if base, compound := compoundBase(n.Op); compound {
		cur := g.newReg()
		g.emit("LOAD"+tag, addr, cur)
		valReg := g.genExpr(n.Value)
		dst := g.newReg()
		g.emit(arithOpcodes[base]+tag, cur, valReg, dst)
		g.emit("STORE"+tag, dst, addr)
		return dst
	}

	valReg := g.genExpr(n.Value)
	g.emit("STORE"+tag, valReg, addr)
	return valReg
}

func (g *Generator) genCall(n *ast.FuncCall) string {
	args := make([]string, 0, len(n.Args)+1)
	args = append(args, n.Name)
	for _, arg := range n.Args {
		args = append(args, g.genExpr(arg))
	}
	dst := g.newReg()
	args = append(args, dst)
	g.emit("CALL", args...)
	return dst
}
