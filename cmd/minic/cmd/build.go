package cmd

import (
	"fmt"
	"os"

	"github.com/minic-lang/minic/internal/buildcfg"
	"github.com/minic-lang/minic/internal/pipeline"
	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build <manifest.yaml>",
	Short: "Compile every file listed in a YAML build manifest",
	Long: `Compile each source file listed in a YAML manifest through the
full pipeline, halting per-file at the first failed pass.
Exits non-zero if any file produced diagnostics.

Example manifest:

  files:
    - fact.mc
    - arrays.mc
  options:
    showTypes: true
    emitJSON: false`,
	Args: cobra.ExactArgs(1),
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	manifest, err := buildcfg.Load(args[0])
	if err != nil {
		return err
	}

	failed := 0
	for _, file := range manifest.Files {
		if err := buildOne(file, manifest.Options); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", file, err)
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d file(s) failed", failed, len(manifest.Files))
	}
	fmt.Printf("%d file(s) compiled cleanly\n", len(manifest.Files))
	return nil
}

func buildOne(file string, opts buildcfg.Options) error {
	src, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("reading: %w", err)
	}

	res := pipeline.Run(string(src))
	if res.Sink.HasErrors() {
		return reportDiagnostics(res.Sink, string(src), file)
	}

	if opts.ShowTypes {
		for _, d := range res.Program.Decls {
			printTypedNode(d, 0)
		}
	}
	if opts.EmitJSON {
		doc, err := ircodeJSONDoc(res.Funcs)
		if err != nil {
			return fmt.Errorf("building IR JSON: %w", err)
		}
		fmt.Println(doc)
	}

	return nil
}
