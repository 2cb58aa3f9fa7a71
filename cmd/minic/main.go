// Command minic is the CLI front-end for the MiniC compiler: lex,
// parse, check, ircode, and build subcommands over the internal
// lexer/parser/semantic/ir packages.
package main

import (
	"fmt"
	"os"

	"github.com/minic-lang/minic/cmd/minic/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
