package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "lligne",
	Short: "Lligne front-end: scanner, documentation filter, and parser",
	Long: `lligne is the front end of the Lligne language toolchain.

It turns source text into a typed expression tree in three pure passes:
  - a scanner that produces a token sequence and newline offsets
  - a documentation filter that lifts line comments into leading/trailing
    documentation attached to the code they annotate
  - a Pratt parser that folds the filtered tokens into an expression tree

This is a front-end only: no evaluation, no type-checking, no code
generation.`,
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
