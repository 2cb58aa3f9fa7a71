package parser_test

import (
	"os"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/minic-lang/minic/internal/ast"
	"github.com/minic-lang/minic/internal/errors"
	"github.com/minic-lang/minic/internal/lexer"
	"github.com/minic-lang/minic/internal/parser"
)

func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}

func parse(t *testing.T, src string) (*ast.Program, *errors.Sink) {
	t.Helper()
	sink := errors.New()
	p := parser.New(lexer.New(src, sink), sink)
	return p.ParseProgram(), sink
}

func TestParseProgramSnapshot(t *testing.T) {
	prog, sink := parse(t, `int fact(int n) {
  if (n <= 1) return 1;
  return n * fact(n - 1);
}

int main(void) {
  print(fact(5));
  return 0;
}
`)
	if sink.HasErrors() {
		t.Fatalf("unexpected parse errors: %v", sink.Diagnostics())
	}
	snaps.MatchSnapshot(t, prog.String())
}

func TestDanglingElseBindsToInnerIf(t *testing.T) {
	prog, sink := parse(t, `int main(void) {
  if (1) if (2) return 1; else return 2;
  return 0;
}
`)
	if sink.HasErrors() {
		t.Fatalf("unexpected parse errors: %v", sink.Diagnostics())
	}

	fn := prog.Decls[0].(*ast.FuncDecl)
	outer := fn.Body.Stmts[0].(*ast.If)
	if outer.Else != nil {
		t.Fatal("outer if should have no else clause")
	}
	inner := outer.Then.(*ast.If)
	if inner.Else == nil {
		t.Fatal("else should bind to the inner if")
	}
}

func TestChainedAssignment(t *testing.T) {
	prog, sink := parse(t, `int main(void) {
  int x;
  int y;
  x = y = 5;
  return 0;
}
`)
	if sink.HasErrors() {
		t.Fatalf("unexpected parse errors: %v", sink.Diagnostics())
	}

	fn := prog.Decls[0].(*ast.FuncDecl)
	stmt := fn.Body.Stmts[0].(*ast.ExprStmt)
	outer := stmt.Expr.(*ast.VarAssign)
	if outer.Name != "x" {
		t.Fatalf("got outer assign to %q, want x", outer.Name)
	}
	inner, ok := outer.Value.(*ast.VarAssign)
	if !ok || inner.Name != "y" {
		t.Fatalf("expected nested assignment to y, got %#v", outer.Value)
	}
}

func TestArrayDeclAndLookup(t *testing.T) {
	prog, sink := parse(t, `int a[10];

int main(void) {
  a[0] = 1;
  return a[0];
}
`)
	if sink.HasErrors() {
		t.Fatalf("unexpected parse errors: %v", sink.Diagnostics())
	}

	arr, ok := prog.Decls[0].(*ast.StaticArrayDecl)
	if !ok || arr.Name != "a" {
		t.Fatalf("expected StaticArrayDecl a, got %#v", prog.Decls[0])
	}
}

func TestNewArrayAndSize(t *testing.T) {
	prog, sink := parse(t, `int main(void) {
  int p[1];
  p = new int[10];
  return p.size;
}
`)
	if sink.HasErrors() {
		t.Fatalf("unexpected parse errors: %v", sink.Diagnostics())
	}
	_ = prog
}

func TestForLoopOptionalClauses(t *testing.T) {
	prog, sink := parse(t, `int main(void) {
  for (int i = 0; i < 10; i++) {
    print(i);
  }
  for (;;) {
    break;
  }
  return 0;
}
`)
	if sink.HasErrors() {
		t.Fatalf("unexpected parse errors: %v", sink.Diagnostics())
	}

	fn := prog.Decls[0].(*ast.FuncDecl)
	for1 := fn.Body.Stmts[0].(*ast.For)
	if for1.Init == nil || for1.Cond == nil || for1.Step == nil {
		t.Fatal("expected init/cond/step all present on the first loop")
	}
	for2 := fn.Body.Stmts[1].(*ast.For)
	if for2.Init != nil || for2.Cond != nil || for2.Step != nil {
		t.Fatal("expected an empty-clause infinite loop")
	}
}

func TestVoidParamMarker(t *testing.T) {
	prog, sink := parse(t, `void noop(void) {
  return;
}
`)
	if sink.HasErrors() {
		t.Fatalf("unexpected parse errors: %v", sink.Diagnostics())
	}
	fn := prog.Decls[0].(*ast.FuncDecl)
	if len(fn.Params) != 0 {
		t.Fatalf("expected zero parameters for (void), got %d", len(fn.Params))
	}
}

func TestSyntaxErrorReportedAndRecovered(t *testing.T) {
	_, sink := parse(t, `int main(void) {
  int x = ;
  return 0;
}
`)
	if !sink.HasErrors() {
		t.Fatal("expected a syntax error for the missing expression")
	}
}
