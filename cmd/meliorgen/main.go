package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"github.com/JPGoodale/melior/internal/generator"
)

// deriveVersion inspects build info for module version or vcs revision.
// preference order: module semantic version -> short commit hash -> "devel".
func deriveVersion() string {
	if bi, ok := debug.ReadBuildInfo(); ok {
		if bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			return bi.Main.Version
		}
		var revision string
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				revision = s.Value
				break
			}
		}
		if len(revision) >= 12 { // short hash for readability
			return revision[:12]
		}
		if revision != "" {
			return revision
		}
	}
	return "devel"
}

func newRootCommand() *cobra.Command {
	var output string
	var pkg string
	var header string

	cmd := &cobra.Command{
		Use:   "meliorgen [flags] <descriptor>...",
		Short: "Generate typestate operation builders from dialect descriptors",
		Long: `Meliorgen reads dialect descriptors (YAML or JSON) and generates, per
operation, a wrapper type, field accessors, a typestate builder whose
required-field protocol is checked at compile time, and a default
constructor.`,
		Example:       "  meliorgen --out arith_gen.go arith.yaml",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// build a simplified canonical command representation instead of
			// raw argv (which may include build cache paths)
			cmdParts := []string{"meliorgen", "--out=" + output}
			if pkg != "" {
				cmdParts = append(cmdParts, "--package="+pkg)
			}
			cmdParts = append(cmdParts, args...)

			cfg := generator.Config{
				Inputs:  args,
				Output:  output,
				Package: pkg,
				Header:  header,
				Command: strings.Join(cmdParts, " "),
				Version: deriveVersion(),
			}
			return generator.Run(cfg)
		},
	}

	cmd.Flags().StringVar(&output, "out", "-", "output file, or - for stdout")
	cmd.Flags().StringVar(&pkg, "package", "", "output package name (defaults to the first dialect name)")
	cmd.Flags().StringVar(&header, "header", "", "file prepended verbatim to the output (e.g. a license header)")

	return cmd
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "meliorgen: %v\n", err)
		os.Exit(1)
	}
}
