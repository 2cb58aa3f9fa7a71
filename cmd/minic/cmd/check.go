package cmd

import (
	"fmt"

	"github.com/minic-lang/minic/internal/ast"
	"github.com/minic-lang/minic/internal/pipeline"
	"github.com/spf13/cobra"
)

var checkShowTypes bool

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Run a MiniC file through the semantic checker",
	Long: `Parse and semantically check a MiniC file: name resolution, type
inference, and control-flow validity (spec.md §4.4). With --show-types,
print declarations and nested statements depth-first, one per line, and
append the resolved type to each expression line (if/while conditions,
expression statements, print arguments and return values); operands
nested inside an expression are not listed separately.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "check inline code instead of reading from file")
	checkCmd.Flags().BoolVar(&checkShowTypes, "show-types", false, "print declarations and statements with each expression's resolved type")
}

func runCheck(cmd *cobra.Command, args []string) error {
	src, name, err := readSource(evalExpr, args)
	if err != nil {
		return err
	}

	res := pipeline.Run(src)
	if res.Sink.HasErrors() {
		return reportDiagnostics(res.Sink, src, name)
	}

	if checkShowTypes {
		for _, d := range res.Program.Decls {
			printTypedNode(d, 0)
		}
	} else {
		fmt.Printf("%s: ok\n", name)
	}

	return nil
}

func printTypedNode(n ast.Node, depth int) {
	pad := ""
	for i := 0; i < depth; i++ {
		pad += "  "
	}

	typ := ""
	if e, ok := n.(ast.Expression); ok {
		if t := e.GetType(); t != nil {
			typ = fmt.Sprintf(" : %s", t.Name())
		} else {
			typ = " : <untyped>"
		}
	}

	fmt.Printf("%s: %s%s%s\n", n.Pos().String(), pad, n.String(), typ)

	switch stmt := n.(type) {
	case *ast.Compound:
		for _, d := range stmt.Decls {
			printTypedNode(d, depth+1)
		}
		for _, s := range stmt.Stmts {
			printTypedNode(s, depth+1)
		}
	case *ast.FuncDecl:
		printTypedNode(stmt.Body, depth+1)
	case *ast.If:
		printTypedNode(stmt.Cond, depth+1)
		printTypedNode(stmt.Then, depth+1)
		if stmt.Else != nil {
			printTypedNode(stmt.Else, depth+1)
		}
	case *ast.While:
		printTypedNode(stmt.Cond, depth+1)
		printTypedNode(stmt.Body, depth+1)
	case *ast.For:
		printTypedNode(stmt.Body, depth+1)
	case *ast.ExprStmt:
		printTypedNode(stmt.Expr, depth+1)
	case *ast.Print:
		printTypedNode(stmt.Expr, depth+1)
	case *ast.Return:
		if stmt.Value != nil {
			printTypedNode(stmt.Value, depth+1)
		}
	}
}
