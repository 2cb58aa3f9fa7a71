// Package pipeline runs the parser/checker/IR-gen passes in the
// halt-on-error order spec.md §2 requires and hands the CLI layer one
// Result per source file, so every cobra subcommand past `lex` shares
// the exact same gating logic instead of each reimplementing it.
package pipeline

import (
	"github.com/minic-lang/minic/internal/ast"
	"github.com/minic-lang/minic/internal/errors"
	"github.com/minic-lang/minic/internal/ir"
	"github.com/minic-lang/minic/internal/lexer"
	"github.com/minic-lang/minic/internal/parser"
	"github.com/minic-lang/minic/internal/semantic"
)

// Result carries every artifact a stage produced, even when a later
// stage never ran because an earlier one reported diagnostics.
type Result struct {
	Sink    *errors.Sink
	Program *ast.Program
	Funcs   []*ir.Function

	Checked bool
	Lowered bool
}

// Run parses, checks, and lowers src in one pass, stopping at the first
// stage whose sink gained a diagnostic (spec.md §2: "each stage halts
// the next only if the shared error sink has recorded a fatal
// diagnostic").
func Run(src string) *Result {
	sink := errors.New()
	res := &Result{Sink: sink}

	p := parser.New(lexer.New(src, sink), sink)
	res.Program = p.ParseProgram()

	if sink.HasErrors() {
		return res
	}

	semantic.New(sink).Check(res.Program)
	res.Checked = true

	if sink.HasErrors() {
		return res
	}

	res.Funcs = ir.Generate(res.Program)
	res.Lowered = true

	return res
}
