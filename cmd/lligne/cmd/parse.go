package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/lligne-lang/lligne-go/internal/ast"
	"github.com/lligne-lang/lligne-go/internal/diagnostics"
	"github.com/lligne-lang/lligne-go/pkg/lligne"
	"github.com/spf13/cobra"
)

var (
	parseExpression bool
	parseDumpTree   bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse Lligne source and display the expression tree",
	Long: `Parse Lligne source code and display the resulting expression tree.

If no file is provided, reads from stdin.
Use -e to parse a single expression from the command line.
Use --dump-tree to show the full tree structure.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolVarP(&parseExpression, "expression", "e", false, "parse an expression from the command line")
	parseCmd.Flags().BoolVar(&parseDumpTree, "dump-tree", false, "dump the full expression tree structure")
}

func runParse(cmd *cobra.Command, args []string) error {
	var input, filename string

	switch {
	case parseExpression:
		if len(args) == 0 {
			return fmt.Errorf("no expression provided")
		}
		input = args[0]
		filename = "<eval>"
	case len(args) > 0:
		filename = args[0]
		data, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("error reading file: %w", err)
		}
		input = string(data)
	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("error reading stdin: %w", err)
		}
		input = string(data)
		filename = "<stdin>"
	}

	result, err := lligne.Parse(input)
	if err != nil {
		if pe, ok := err.(*lligne.ParseError); ok && pe.SyntaxError != nil {
			se := diagnostics.NewSourceError(pe.Message, pe.Pos, filename)
			fmt.Fprintln(os.Stderr, se.Format(pe.Source, pe.NewlineOffsets, false))
		}
		return fmt.Errorf("parsing failed: %w", err)
	}

	if parseDumpTree {
		fmt.Println("Expression tree:")
		fmt.Println("================")
		dumpExprNode(result.Root, 0)
	} else {
		fmt.Printf("%T %s\n", result.Root, result.Root.Pos())
	}

	return nil
}

func dumpExprNode(node ast.Expr, indent int) {
	pad := ""
	for i := 0; i < indent; i++ {
		pad += "  "
	}

	switch n := node.(type) {
	case *ast.Identifier:
		fmt.Printf("%sIdentifier: %s\n", pad, n.Name)
	case *ast.BuiltInType:
		fmt.Printf("%sBuiltInType: %s\n", pad, n.Name)
	case *ast.BooleanLiteral:
		fmt.Printf("%sBooleanLiteral: %v\n", pad, n.Value)
	case *ast.Int64Literal:
		fmt.Printf("%sInt64Literal: %d\n", pad, n.Value)
	case *ast.Float64Literal:
		fmt.Printf("%sFloat64Literal: %g\n", pad, n.Value)
	case *ast.StringLiteral:
		fmt.Printf("%sStringLiteral(%s)\n", pad, n.Delimiter)
	case *ast.LeadingDocumentation:
		fmt.Printf("%sLeadingDocumentation\n", pad)
	case *ast.TrailingDocumentation:
		fmt.Printf("%sTrailingDocumentation\n", pad)
	case *ast.Unit:
		fmt.Printf("%sUnit\n", pad)
	case *ast.NegationOperation:
		fmt.Printf("%sNegationOperation\n", pad)
		dumpExprNode(n.Operand, indent+1)
	case *ast.LogicalNotOperation:
		fmt.Printf("%sLogicalNotOperation\n", pad)
		dumpExprNode(n.Operand, indent+1)
	case *ast.Optional:
		fmt.Printf("%sOptional\n", pad)
		dumpExprNode(n.Operand, indent+1)
	case *ast.Parenthesized:
		fmt.Printf("%sParenthesized\n", pad)
		dumpExprNode(n.Inner, indent+1)
	case *ast.FieldReference:
		fmt.Printf("%sFieldReference\n", pad)
		dumpExprNode(n.Parent, indent+1)
		dumpExprNode(n.Child, indent+1)
	case *ast.Range:
		fmt.Printf("%sRange\n", pad)
		dumpExprNode(n.First, indent+1)
		dumpExprNode(n.Last, indent+1)
	case *ast.FunctionArrow:
		fmt.Printf("%sFunctionArrow\n", pad)
		dumpExprNode(n.Argument, indent+1)
		dumpExprNode(n.Result, indent+1)
	case *ast.ArrayLiteral:
		fmt.Printf("%sArrayLiteral (%d elements)\n", pad, len(n.Elements))
		for _, el := range n.Elements {
			dumpExprNode(el, indent+1)
		}
	case *ast.Record:
		fmt.Printf("%sRecord (%d items)\n", pad, len(n.Items))
		for _, item := range n.Items {
			dumpExprNode(item, indent+1)
		}
	case *ast.FunctionArguments:
		fmt.Printf("%sFunctionArguments (%d items)\n", pad, len(n.Items))
		for _, item := range n.Items {
			dumpExprNode(item, indent+1)
		}
	case *ast.FunctionCall:
		fmt.Printf("%sFunctionCall\n", pad)
		dumpExprNode(n.FunctionReference, indent+1)
		dumpExprNode(n.Argument, indent+1)
	default:
		dumpBinaryNode(n, pad, indent)
	}
}

// dumpBinaryNode handles every remaining {SourcePos, Left, Right} variant
// (Addition, Subtraction, ..., Document) via a type switch, avoiding forty
// near-identical cases above.
func dumpBinaryNode(node ast.Expr, pad string, indent int) {
	switch n := node.(type) {
	case *ast.Addition:
		printBinary(pad, "Addition", n.Left, n.Right, indent)
	case *ast.Subtraction:
		printBinary(pad, "Subtraction", n.Left, n.Right, indent)
	case *ast.Multiplication:
		printBinary(pad, "Multiplication", n.Left, n.Right, indent)
	case *ast.Division:
		printBinary(pad, "Division", n.Left, n.Right, indent)
	case *ast.Equals:
		printBinary(pad, "Equals", n.Left, n.Right, indent)
	case *ast.NotEquals:
		printBinary(pad, "NotEquals", n.Left, n.Right, indent)
	case *ast.LessThan:
		printBinary(pad, "LessThan", n.Left, n.Right, indent)
	case *ast.LessThanOrEquals:
		printBinary(pad, "LessThanOrEquals", n.Left, n.Right, indent)
	case *ast.GreaterThan:
		printBinary(pad, "GreaterThan", n.Left, n.Right, indent)
	case *ast.GreaterThanOrEquals:
		printBinary(pad, "GreaterThanOrEquals", n.Left, n.Right, indent)
	case *ast.Match:
		printBinary(pad, "Match", n.Left, n.Right, indent)
	case *ast.NotMatch:
		printBinary(pad, "NotMatch", n.Left, n.Right, indent)
	case *ast.LogicalAnd:
		printBinary(pad, "LogicalAnd", n.Left, n.Right, indent)
	case *ast.LogicalOr:
		printBinary(pad, "LogicalOr", n.Left, n.Right, indent)
	case *ast.In:
		printBinary(pad, "In", n.Left, n.Right, indent)
	case *ast.Is:
		printBinary(pad, "Is", n.Left, n.Right, indent)
	case *ast.Intersect:
		printBinary(pad, "Intersect", n.Left, n.Right, indent)
	case *ast.IntersectLowPrecedence:
		printBinary(pad, "IntersectLowPrecedence", n.Left, n.Right, indent)
	case *ast.IntersectAssignValue:
		printBinary(pad, "IntersectAssignValue", n.Left, n.Right, indent)
	case *ast.IntersectDefaultValue:
		printBinary(pad, "IntersectDefaultValue", n.Left, n.Right, indent)
	case *ast.Union:
		printBinary(pad, "Union", n.Left, n.Right, indent)
	case *ast.Qualify:
		printBinary(pad, "Qualify", n.Left, n.Right, indent)
	case *ast.When:
		printBinary(pad, "When", n.Left, n.Right, indent)
	case *ast.Where:
		printBinary(pad, "Where", n.Left, n.Right, indent)
	case *ast.Document:
		printBinary(pad, "Document", n.Left, n.Right, indent)
	default:
		fmt.Printf("%s%T\n", pad, node)
	}
}

func printBinary(pad, name string, left, right ast.Expr, indent int) {
	fmt.Printf("%s%s\n", pad, name)
	dumpExprNode(left, indent+1)
	dumpExprNode(right, indent+1)
}
