// Package buildcfg parses the YAML manifest the `minic build` batch
// entry point reads. This is ambient tooling, not a language feature:
// it never touches lexer/parser/checker/IR-gen semantics, only which
// files `minic build` runs them over and how it reports the results.
package buildcfg

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Options toggles per-run behavior shared across every file in Files.
type Options struct {
	ShowTypes bool `yaml:"showTypes"`
	EmitJSON  bool `yaml:"emitJSON"`
}

// Manifest lists the source files one `minic build` invocation compiles
// and the options that run applies to all of them.
type Manifest struct {
	Files   []string `yaml:"files"`
	Options Options  `yaml:"options"`
}

// Load reads and parses a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	if len(m.Files) == 0 {
		return nil, fmt.Errorf("manifest %s lists no files", path)
	}
	return &m, nil
}
