package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "minic",
	Short: "MiniC compiler front-end",
	Long: `minic is the front-end of a compiler for MiniC, a small
statically-typed C-like language: integers, floats, characters, booleans,
void, fixed-size one-dimensional arrays, and first-order functions.

It runs source text through four passes - lexer, parser, semantic
checker, and three-address IR generator - and exposes one subcommand
per pass plus a batch "build" command for running several files at
once from a manifest.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}

// readSource loads input either from an inline expression flag, a file
// argument, or stdin, in that priority order - shared by every
// subcommand's argument handling.
func readSource(eval string, args []string) (src string, name string, err error) {
	switch {
	case eval != "":
		return eval, "<eval>", nil
	case len(args) == 1:
		data, readErr := os.ReadFile(args[0])
		if readErr != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], readErr)
		}
		return string(data), args[0], nil
	case len(args) == 0:
		data, readErr := io.ReadAll(os.Stdin)
		if readErr != nil {
			return "", "", fmt.Errorf("failed to read stdin: %w", readErr)
		}
		return string(data), "<stdin>", nil
	default:
		return "", "", fmt.Errorf("provide a file path or use -e for inline code")
	}
}
