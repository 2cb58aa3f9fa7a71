package ast_test

import (
	"testing"

	"github.com/minic-lang/minic/internal/ast"
)

func TestLiteralStrings(t *testing.T) {
	cases := []struct {
		node ast.Expression
		want string
	}{
		{&ast.IntLit{Value: 42}, "42"},
		{&ast.FloatLit{Value: 3.5}, "3.5"},
		{&ast.CharLit{Value: 'x'}, "'x'"},
		{&ast.StringLit{Value: "hi"}, `"hi"`},
		{&ast.BoolLit{Value: true}, "true"},
		{&ast.Var{Name: "x"}, "x"},
	}
	for _, c := range cases {
		if got := c.node.String(); got != c.want {
			t.Errorf("%T.String() = %q, want %q", c.node, got, c.want)
		}
	}
}

func TestArrayLookupString(t *testing.T) {
	n := &ast.ArrayLookup{Name: "a", Index: &ast.IntLit{Value: 3}}
	if got, want := n.String(), "a[3]"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBinaryAndUnaryOpString(t *testing.T) {
	bin := &ast.BinaryOp{Op: "+", Left: &ast.IntLit{Value: 1}, Right: &ast.IntLit{Value: 2}}
	if got, want := bin.String(), "(1 + 2)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	un := &ast.UnaryOp{Op: "-", Expr: &ast.IntLit{Value: 1}}
	if got, want := un.String(), "(-1)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestIncDecString(t *testing.T) {
	post := &ast.IncDec{Op: "++", Name: "i", Kind: ast.Postfix}
	if got := post.String(); got == "" {
		t.Error("expected non-empty postfix IncDec string")
	}
	pre := &ast.IncDec{Op: "--", Name: "i", Kind: ast.Prefix}
	if got := pre.String(); got == "" {
		t.Error("expected non-empty prefix IncDec string")
	}
	if post.String() == pre.String() {
		t.Error("prefix and postfix forms should render differently")
	}
}

func TestFuncCallString(t *testing.T) {
	n := &ast.FuncCall{Name: "f", Args: []ast.Expression{&ast.IntLit{Value: 1}, &ast.IntLit{Value: 2}}}
	if got, want := n.String(), "f(1, 2)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestArraySizeString(t *testing.T) {
	n := &ast.ArraySize{Name: "a"}
	if got, want := n.String(), "a.size"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestStatementStrings(t *testing.T) {
	null := &ast.NullStmt{}
	if got, want := null.String(), ";"; got != want {
		t.Errorf("NullStmt: got %q, want %q", got, want)
	}

	br := &ast.Break{}
	if got, want := br.String(), "break;"; got != want {
		t.Errorf("Break: got %q, want %q", got, want)
	}

	p := &ast.Print{Expr: &ast.IntLit{Value: 7}}
	if got, want := p.String(), "print(7);"; got != want {
		t.Errorf("Print: got %q, want %q", got, want)
	}

	es := &ast.ExprStmt{Expr: &ast.IntLit{Value: 1}}
	if got, want := es.String(), "1;"; got != want {
		t.Errorf("ExprStmt: got %q, want %q", got, want)
	}
}

func TestProgramStringJoinsDeclsWithNewlines(t *testing.T) {
	prog := &ast.Program{
		Decls: []ast.Statement{
			&ast.ExprStmt{Expr: &ast.IntLit{Value: 1}},
			&ast.ExprStmt{Expr: &ast.IntLit{Value: 2}},
		},
	}
	want := "1;\n2;\n"
	if got := prog.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestProgramPosFallsBackWhenEmpty(t *testing.T) {
	prog := &ast.Program{}
	pos := prog.Pos()
	if pos.Line != 1 || pos.Column != 1 {
		t.Errorf("empty Program.Pos() = %v, want {1 1}", pos)
	}
}

func TestLocationInterfaceImplementations(t *testing.T) {
	var _ ast.Location = (*ast.Var)(nil)
	var _ ast.Location = (*ast.ArrayLookup)(nil)
}

func TestVarAssignAndArrayAssignString(t *testing.T) {
	va := &ast.VarAssign{Op: "=", Name: "x", Value: &ast.IntLit{Value: 5}}
	if got := va.String(); got == "" {
		t.Error("expected non-empty VarAssign string")
	}

	aa := &ast.ArrayAssign{Op: "+=", Name: "a", Index: &ast.IntLit{Value: 0}, Value: &ast.IntLit{Value: 1}}
	if got := aa.String(); got == "" {
		t.Error("expected non-empty ArrayAssign string")
	}
}
