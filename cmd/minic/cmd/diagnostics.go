package cmd

import (
	"fmt"
	"os"

	"github.com/minic-lang/minic/internal/errors"
)

// noContext forces the bare "<line>: <message>" form spec.md §6 mandates,
// even on an interactive terminal, for scripting/CI use.
var noContext bool

func init() {
	rootCmd.PersistentFlags().BoolVar(&noContext, "no-context", false, "print bare diagnostics without source context")
}

// reportDiagnostics prints sink's diagnostics to stderr and returns an
// error (for a non-zero exit) if any were reported. Source-context
// output with a caret is the default for a terminal; --no-context (or a
// non-terminal stderr) falls back to the bare spec.md §6 form.
func reportDiagnostics(sink *errors.Sink, src, filename string) error {
	diags := sink.Diagnostics()
	if len(diags) == 0 {
		return nil
	}

	if noContext || !isTerminal(os.Stderr) {
		fmt.Fprint(os.Stderr, errors.FormatPlain(diags))
	} else {
		fmt.Fprintf(os.Stderr, "%s:\n", filename)
		fmt.Fprint(os.Stderr, errors.FormatWithContext(src, diags, true))
	}

	return fmt.Errorf("%s: %d diagnostic(s) reported", filename, len(diags))
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
