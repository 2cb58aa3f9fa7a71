// Package errors implements MiniC's diagnostic sink: an append-only log
// of (position, message) entries shared across the lexer, parser,
// checker, and IR generator for one compilation.
package errors

import (
	"fmt"
	"strings"
)

// Position locates a diagnostic in the source text. Column and Offset
// are best-effort: callers that only track line numbers (as spec.md's
// CLI contract requires) may leave them zero.
type Position struct {
	Line   int
	Column int
	Offset int
}

// String renders the position the way spec.md's CLI output wants it:
// "<line>:<column>" when a column is known, "<line>" otherwise.
func (p Position) String() string {
	if p.Column > 0 {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%d", p.Line)
}

// EOF is the sentinel position used for "unexpected end of input"
// diagnostics, which spec.md's parser reports against "EOF" rather than
// a line number.
var EOF = Position{Line: -1}

// Diagnostic is a single reported error.
type Diagnostic struct {
	Pos     Position
	Message string
}

// Line formats the diagnostic the way spec.md §6 mandates:
// "<line>: <message>" or "EOF: <message>".
func (d Diagnostic) Line() string {
	if d.Pos.Line < 0 {
		return fmt.Sprintf("EOF: %s", d.Message)
	}
	return fmt.Sprintf("%d: %s", d.Pos.Line, d.Message)
}

// Sink is a per-compilation diagnostic log. It is never reset implicitly;
// callers construct a fresh Sink per compilation or call Reset.
type Sink struct {
	diagnostics []Diagnostic
}

// New creates an empty Sink.
func New() *Sink {
	return &Sink{}
}

// Report appends a diagnostic at pos with a printf-style message.
func (s *Sink) Report(pos Position, format string, args ...any) {
	s.diagnostics = append(s.diagnostics, Diagnostic{
		Pos:     pos,
		Message: fmt.Sprintf(format, args...),
	})
}

// HasErrors reports whether any diagnostic has been recorded.
func (s *Sink) HasErrors() bool {
	return len(s.diagnostics) > 0
}

// Diagnostics returns the accumulated diagnostics in report order.
func (s *Sink) Diagnostics() []Diagnostic {
	return s.diagnostics
}

// Reset clears the sink for reuse in a new compilation.
func (s *Sink) Reset() {
	s.diagnostics = s.diagnostics[:0]
}

// FormatPlain renders every diagnostic in the bare "<line>: <message>"
// form required by spec.md §6, one per line.
func FormatPlain(diags []Diagnostic) string {
	var sb strings.Builder
	for _, d := range diags {
		sb.WriteString(d.Line())
		sb.WriteString("\n")
	}
	return sb.String()
}

// FormatWithContext renders each diagnostic with the offending source
// line and a caret pointing at the column, for interactive/terminal use.
// Falls back to the bare form when src is empty or the position has no
// column.
func FormatWithContext(src string, diags []Diagnostic, color bool) string {
	lines := strings.Split(src, "\n")
	var sb strings.Builder

	for _, d := range diags {
		if src == "" || d.Pos.Line < 1 || d.Pos.Line > len(lines) || d.Pos.Column < 1 {
			sb.WriteString(d.Line())
			sb.WriteString("\n")
			continue
		}

		lineNumStr := fmt.Sprintf("%4d | ", d.Pos.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(lines[d.Pos.Line-1])
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+d.Pos.Column-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^\n")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString(d.Message)
		sb.WriteString("\n")
	}

	return sb.String()
}
