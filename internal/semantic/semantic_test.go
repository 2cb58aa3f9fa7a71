package semantic_test

import (
	"testing"

	"github.com/minic-lang/minic/internal/ast"
	"github.com/minic-lang/minic/internal/errors"
	"github.com/minic-lang/minic/internal/lexer"
	"github.com/minic-lang/minic/internal/parser"
	"github.com/minic-lang/minic/internal/semantic"
)

func check(t *testing.T, src string) (*ast.Program, *errors.Sink) {
	t.Helper()
	sink := errors.New()
	p := parser.New(lexer.New(src, sink), sink)
	prog := p.ParseProgram()
	if sink.HasErrors() {
		t.Fatalf("unexpected parse errors: %v", sink.Diagnostics())
	}
	semantic.New(sink).Check(prog)
	return prog, sink
}

func TestWellTypedProgramHasNoDiagnostics(t *testing.T) {
	_, sink := check(t, `int fact(int n) {
  if (n <= 1) return 1;
  return n * fact(n - 1);
}

int main(void) {
  print(fact(5));
  return 0;
}
`)
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Diagnostics())
	}
}

func TestTypeMismatchBinaryOp(t *testing.T) {
	_, sink := check(t, `int main(void) {
  int a;
  float b;
  a = a + b;
  return 0;
}
`)
	diags := sink.Diagnostics()
	if len(diags) != 1 {
		t.Fatalf("expected exactly one diagnostic, got %d: %v", len(diags), diags)
	}
	want := "Binary operation 'int + float' not supported"
	if diags[0].Message != want {
		t.Errorf("got %q, want %q", diags[0].Message, want)
	}
}

func TestUndefinedNameSuppressesCascadingErrors(t *testing.T) {
	_, sink := check(t, `int main(void) {
  return undefinedVar + 1;
}
`)
	diags := sink.Diagnostics()
	if len(diags) != 1 {
		t.Fatalf("expected exactly one diagnostic (null-type suppression), got %d: %v", len(diags), diags)
	}
}

func TestRecursionResolvesRegardlessOfOrder(t *testing.T) {
	_, sink := check(t, `int isEven(int n) {
  if (n == 0) return 1;
  return isOdd(n - 1);
}

int isOdd(int n) {
  if (n == 0) return 0;
  return isEven(n - 1);
}

int main(void) {
  return isEven(10);
}
`)
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Diagnostics())
	}
}

func TestMissingReturnReported(t *testing.T) {
	_, sink := check(t, `int broken(void) {
  int x;
}
`)
	if !sink.HasErrors() {
		t.Fatal("expected a diagnostic for the missing return")
	}
}

func TestVoidFunctionMayNotReturnValue(t *testing.T) {
	_, sink := check(t, `void broken(void) {
  return 1;
}
`)
	if !sink.HasErrors() {
		t.Fatal("expected a diagnostic for returning a value from void")
	}
}

func TestBreakOutsideLoopReported(t *testing.T) {
	_, sink := check(t, `int main(void) {
  break;
  return 0;
}
`)
	if !sink.HasErrors() {
		t.Fatal("expected a diagnostic for break outside a loop")
	}
}

func TestBreakInsideLoopOK(t *testing.T) {
	_, sink := check(t, `int main(void) {
  while (true) {
    break;
  }
  return 0;
}
`)
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Diagnostics())
	}
}

func TestConditionMustBeBool(t *testing.T) {
	_, sink := check(t, `int main(void) {
  if (1 + 1) return 0;
  return 0;
}
`)
	if !sink.HasErrors() {
		t.Fatal("expected a diagnostic for a non-bool condition")
	}
}

func TestArraySizeMustBePositiveLiteral(t *testing.T) {
	_, sink := check(t, `int n;
int a[n];

int main(void) {
  return 0;
}
`)
	if !sink.HasErrors() {
		t.Fatal("expected a diagnostic for a non-literal array size")
	}
}

func TestRedefinitionInSameScopeReported(t *testing.T) {
	_, sink := check(t, `int main(void) {
  int x;
  int x;
  return 0;
}
`)
	if !sink.HasErrors() {
		t.Fatal("expected a diagnostic for redefining x in the same scope")
	}
}

func TestParametersShadowGlobals(t *testing.T) {
	_, sink := check(t, `int x;

int f(int x) {
  return x;
}

int main(void) {
  return f(1);
}
`)
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Diagnostics())
	}
}

func TestFuncCallArgumentMismatch(t *testing.T) {
	_, sink := check(t, `int add(int a, int b) {
  return a + b;
}

int main(void) {
  return add(1);
}
`)
	if !sink.HasErrors() {
		t.Fatal("expected a diagnostic for the wrong argument count")
	}
}

func TestTypeKeywordPrefixIsLegalName(t *testing.T) {
	_, sink := check(t, `int int_;

int main(void) {
  return 0;
}
`)
	if sink.HasErrors() {
		t.Fatalf("int_ should be a legal identifier: %v", sink.Diagnostics())
	}
}
