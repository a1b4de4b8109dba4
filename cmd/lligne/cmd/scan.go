package cmd

import (
	"fmt"
	"os"

	"github.com/lligne-lang/lligne-go/internal/scanner"
	"github.com/lligne-lang/lligne-go/internal/token"
	"github.com/spf13/cobra"
)

var (
	scanEvalExpr   string
	scanShowType   bool
	scanShowSpan   bool
	scanOnlyErrors bool
)

var scanCmd = &cobra.Command{
	Use:   "scan [file]",
	Short: "Tokenize Lligne source and print the resulting tokens",
	Long: `Tokenize (scan) a Lligne source file and print the resulting tokens.

This command is useful for debugging the scanner and understanding how
Lligne source text is tokenized. It does not run the documentation
filter, so raw Documentation tokens are shown as scanned.

Examples:
  # Tokenize a source file
  lligne scan source.lligne

  # Tokenize an inline expression
  lligne scan -e "1 + 2 * 3"

  # Show token types and source spans
  lligne scan --show-type --show-span source.lligne

  # Show only lexical-error tokens
  lligne scan --only-errors source.lligne`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().StringVarP(&scanEvalExpr, "eval", "e", "", "scan inline source instead of reading from a file")
	scanCmd.Flags().BoolVar(&scanShowType, "show-type", false, "show token type names")
	scanCmd.Flags().BoolVar(&scanShowSpan, "show-span", false, "show each token's byte span")
	scanCmd.Flags().BoolVar(&scanOnlyErrors, "only-errors", false, "show only lexical-error tokens")
}

func runScan(cmd *cobra.Command, args []string) error {
	var input, filename string

	switch {
	case scanEvalExpr != "":
		input = scanEvalExpr
		filename = "<eval>"
	case len(args) == 1:
		filename = args[0]
		content, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", filename, err)
		}
		input = string(content)
	default:
		return fmt.Errorf("either provide a file path or use -e flag for inline source")
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		fmt.Printf("Scanning: %s\n", filename)
		fmt.Printf("Input length: %d bytes\n", len(input))
		fmt.Println("---")
	}

	outcome := scanner.Scan(input)

	tokenCount := 0
	errorCount := 0
	for _, tok := range outcome.Tokens {
		if tok.Type.IsLexicalError() {
			errorCount++
		} else if scanOnlyErrors {
			continue
		}
		tokenCount++
		printToken(tok, outcome.Source)
	}

	if verbose {
		fmt.Println("---")
		fmt.Printf("Total tokens shown: %d\n", tokenCount)
		if errorCount > 0 {
			fmt.Printf("Lexical errors: %d\n", errorCount)
		}
	}

	if scanOnlyErrors && errorCount > 0 {
		return fmt.Errorf("found %d lexical error(s)", errorCount)
	}
	return nil
}

func printToken(tok token.Token, source string) {
	var output string

	if scanShowType {
		output = fmt.Sprintf("[%-24s]", tok.Type)
	}

	if tok.Length == 0 {
		output += fmt.Sprintf(" %s", tok.Type)
	} else {
		output += fmt.Sprintf(" %q", tok.Text(source))
	}

	if scanShowSpan {
		output += fmt.Sprintf(" @%s", tok.Pos())
	}

	fmt.Println(output)
}
