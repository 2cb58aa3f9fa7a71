package ir_test

import (
	"os"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/minic-lang/minic/internal/errors"
	"github.com/minic-lang/minic/internal/ir"
	"github.com/minic-lang/minic/internal/lexer"
	"github.com/minic-lang/minic/internal/parser"
	"github.com/minic-lang/minic/internal/semantic"
)

func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}

func lower(t *testing.T, src string) []*ir.Function {
	t.Helper()
	sink := errors.New()
	p := parser.New(lexer.New(src, sink), sink)
	prog := p.ParseProgram()
	if sink.HasErrors() {
		t.Fatalf("unexpected parse errors: %v", sink.Diagnostics())
	}
	semantic.New(sink).Check(prog)
	if sink.HasErrors() {
		t.Fatalf("unexpected checker errors: %v", sink.Diagnostics())
	}
	return ir.Generate(prog)
}

func dump(funcs []*ir.Function) string {
	var sb strings.Builder
	for _, fn := range funcs {
		sb.WriteString(fn.Header())
		sb.WriteString("\n")
		for _, instr := range fn.Code {
			sb.WriteString(instr.String())
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func TestGlobalInitGoesIntoMinicInit(t *testing.T) {
	funcs := lower(t, `int a = 0x2A;

int main(void) {
  return 0;
}
`)
	if funcs[0].Name != "__minic_init" {
		t.Fatalf("expected __minic_init first, got %s", funcs[0].Name)
	}
	found := false
	for _, instr := range funcs[0].Code {
		if strings.HasPrefix(instr.Op, "STORE") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a STORE instruction for the global initializer, got %v", funcs[0].Code)
	}
}

func TestMainRenamedToMinicMain(t *testing.T) {
	funcs := lower(t, `int main(void) {
  return 0;
}
`)
	names := make([]string, len(funcs))
	for i, fn := range funcs {
		names[i] = fn.Name
	}
	found := false
	for _, n := range names {
		if n == "__minic_main" {
			found = true
		}
		if n == "main" {
			t.Errorf("main should have been renamed, found bare 'main' in %v", names)
		}
	}
	if !found {
		t.Errorf("expected __minic_main in %v", names)
	}
}

func TestIfLowersToThreeLabelPattern(t *testing.T) {
	funcs := lower(t, `int f(int x) {
  if (x > 0) return 1;
  return 0;
}
`)
	var fn *ir.Function
	for _, f := range funcs {
		if f.Name == "f" {
			fn = f
		}
	}
	if fn == nil {
		t.Fatal("function f not found")
	}

	labelCount, cbranchCount := 0, 0
	for _, instr := range fn.Code {
		if instr.Op == "LABEL" {
			labelCount++
		}
		if instr.Op == "CBRANCH" {
			cbranchCount++
		}
	}
	if labelCount != 3 {
		t.Errorf("expected 3 labels (then/else/merge), got %d: %s", labelCount, dump(funcs))
	}
	if cbranchCount != 1 {
		t.Errorf("expected 1 CBRANCH, got %d", cbranchCount)
	}
}

func TestWhileLoweringSnapshot(t *testing.T) {
	funcs := lower(t, `int main(void) {
  int i;
  i = 0;
  while (i < 10) {
    print(i);
    i = i + 1;
  }
  return 0;
}
`)
	snaps.MatchSnapshot(t, dump(funcs))
}

func TestBreakBranchesToLoopMerge(t *testing.T) {
	funcs := lower(t, `int main(void) {
  while (true) {
    break;
  }
  return 0;
}
`)
	var fn *ir.Function
	for _, f := range funcs {
		if f.Name == "__minic_main" {
			fn = f
		}
	}
	if fn == nil {
		t.Fatal("__minic_main not found")
	}
	branchCount := 0
	for _, instr := range fn.Code {
		if instr.Op == "BRANCH" {
			branchCount++
		}
	}
	if branchCount < 3 {
		t.Errorf("expected at least 3 BRANCH instructions (entry, break, loop-back), got %d: %s", branchCount, dump(funcs))
	}
}

func TestPrintStringLiteralUsesPrints(t *testing.T) {
	funcs := lower(t, `int main(void) {
  print("hi");
  return 0;
}
`)
	var fn *ir.Function
	for _, f := range funcs {
		if f.Name == "__minic_main" {
			fn = f
		}
	}
	found := false
	for _, instr := range fn.Code {
		if instr.Op == "PRINTS" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a PRINTS instruction, got %s", dump(funcs))
	}
}

func TestFuncCallLoweredWithDestReg(t *testing.T) {
	funcs := lower(t, `int addOne(int x) {
  return x + 1;
}

int main(void) {
  print(addOne(41));
  return 0;
}
`)
	var fn *ir.Function
	for _, f := range funcs {
		if f.Name == "__minic_main" {
			fn = f
		}
	}
	found := false
	for _, instr := range fn.Code {
		if instr.Op == "CALL" && instr.Args[0] == "addOne" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a CALL addOne instruction, got %s", dump(funcs))
	}
}

func TestIncDecLowering(t *testing.T) {
	funcs := lower(t, `int main(void) {
  int i;
  i = 0;
  i++;
  ++i;
  return i;
}
`)
	var fn *ir.Function
	for _, f := range funcs {
		if f.Name == "__minic_main" {
			fn = f
		}
	}
	addCount := 0
	for _, instr := range fn.Code {
		if instr.Op == "ADDI" {
			addCount++
		}
	}
	if addCount != 2 {
		t.Errorf("expected 2 ADDI instructions for i++ and ++i, got %d: %s", addCount, dump(funcs))
	}
}
