// Package ir lowers a checked MiniC AST into a linear three-address
// instruction stream under SSA discipline (spec.md §4.6): a monotone
// register counter yields fresh names R1, R2, …; a monotone label
// counter yields L1, L2, ….
package ir

import (
	"fmt"
	"strings"
)

// Instr is one three-address instruction: an opcode and its ordered
// operands, a tuple whose first element is an opcode string; Args
// holds everything after it.
type Instr struct {
	Op   string
	Args []string
}

// String renders a Python-tuple-like form, the debug surface spec.md
// §6 describes for the `ircode` command.
func (i Instr) String() string {
	if len(i.Args) == 0 {
		return fmt.Sprintf("(%s)", i.Op)
	}
	return fmt.Sprintf("(%s, %s)", i.Op, strings.Join(i.Args, ", "))
}

// Param is one resolved function parameter in the IR's own signature
// shape (name, type tag), distinct from ast.Parameter.
type Param struct {
	Name string
	Tag  string
}

// Function is one compiled function: its name, resolved parameter and
// return type tags, and its linear instruction stream.
type Function struct {
	Name      string
	Params    []Param
	ReturnTag string
	Code      []Instr
}

// Header renders "name(params) -> ret", the debug header `ircode`
// prints before a function's instructions (spec.md §6).
func (f *Function) Header() string {
	parts := make([]string, len(f.Params))
	for i, p := range f.Params {
		parts[i] = p.Name + ":" + p.Tag
	}
	return fmt.Sprintf("%s(%s) -> %s", f.Name, strings.Join(parts, ", "), f.ReturnTag)
}
