package parser

import (
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/lligne-lang/lligne-go/internal/ast"
	"github.com/lligne-lang/lligne-go/internal/docfilter"
	"github.com/lligne-lang/lligne-go/internal/scanner"
)

// TestParseExpressionSnapshots parses a curated set of Lligne programs and
// snapshots their tree shape, grounded on internal/interp/fixture_test.go's
// use of go-snaps over program output — applied here to parsed-tree dumps,
// since evaluation is out of scope (spec §8).
func TestParseExpressionSnapshots(t *testing.T) {
	programs := map[string]string{
		"arithmetic_precedence": "1 + 2 * 3 - 4 / 2",
		"field_chain":           "a.b.c.d",
		"function_call":        `f(x: 1, y: "two", z)`,
		"record_literal":       "{a: 1, b: {c: 2}}",
		"array_literal":        "[1, 2, 3]",
		"range_membership":     "x in 1..9",
		"leading_doc":          "// explains x\nx",
		"optional_and_negate":  "-a? + b",
		"when_where":           "a when b where c",
		"tuple_parens":         "(1, 2, 3)",
		"unit_and_grouping":    "() + (1)",
	}

	names := make([]string, 0, len(programs))
	for name := range programs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		source := programs[name]
		t.Run(name, func(t *testing.T) {
			o := docfilter.Filter(scanner.Scan(source))
			result, err := ParseExpression(o)
			if err != nil {
				t.Fatalf("ParseExpression(%q): unexpected error: %v", source, err)
			}
			snaps.MatchSnapshot(t, name, dumpExpr(result.Root, 0))
		})
	}
}

// dumpExpr renders an expression tree deterministically for snapshotting.
// It is intentionally independent from cmd/lligne/cmd's CLI dumper: the
// two serve different audiences (a stable test fixture vs. a human-facing
// --dump-tree flag) and are allowed to drift.
func dumpExpr(e ast.Expr, indent int) string {
	pad := strings.Repeat("  ", indent)
	var sb strings.Builder

	switch n := e.(type) {
	case *ast.Identifier:
		fmt.Fprintf(&sb, "%sIdentifier(%s)\n", pad, n.Name)
	case *ast.BuiltInType:
		fmt.Fprintf(&sb, "%sBuiltInType(%s)\n", pad, n.Name)
	case *ast.BooleanLiteral:
		fmt.Fprintf(&sb, "%sBooleanLiteral(%v)\n", pad, n.Value)
	case *ast.Int64Literal:
		fmt.Fprintf(&sb, "%sInt64Literal(%d)\n", pad, n.Value)
	case *ast.Float64Literal:
		fmt.Fprintf(&sb, "%sFloat64Literal(%g)\n", pad, n.Value)
	case *ast.StringLiteral:
		fmt.Fprintf(&sb, "%sStringLiteral(%s)\n", pad, n.Delimiter)
	case *ast.LeadingDocumentation:
		fmt.Fprintf(&sb, "%sLeadingDocumentation\n", pad)
	case *ast.TrailingDocumentation:
		fmt.Fprintf(&sb, "%sTrailingDocumentation\n", pad)
	case *ast.Unit:
		fmt.Fprintf(&sb, "%sUnit\n", pad)
	case *ast.NegationOperation:
		fmt.Fprintf(&sb, "%sNegationOperation\n", pad)
		sb.WriteString(dumpExpr(n.Operand, indent+1))
	case *ast.LogicalNotOperation:
		fmt.Fprintf(&sb, "%sLogicalNotOperation\n", pad)
		sb.WriteString(dumpExpr(n.Operand, indent+1))
	case *ast.Optional:
		fmt.Fprintf(&sb, "%sOptional\n", pad)
		sb.WriteString(dumpExpr(n.Operand, indent+1))
	case *ast.Parenthesized:
		fmt.Fprintf(&sb, "%sParenthesized\n", pad)
		sb.WriteString(dumpExpr(n.Inner, indent+1))
	case *ast.FieldReference:
		fmt.Fprintf(&sb, "%sFieldReference\n", pad)
		sb.WriteString(dumpExpr(n.Parent, indent+1))
		sb.WriteString(dumpExpr(n.Child, indent+1))
	case *ast.Range:
		fmt.Fprintf(&sb, "%sRange\n", pad)
		sb.WriteString(dumpExpr(n.First, indent+1))
		sb.WriteString(dumpExpr(n.Last, indent+1))
	case *ast.FunctionArrow:
		fmt.Fprintf(&sb, "%sFunctionArrow\n", pad)
		sb.WriteString(dumpExpr(n.Argument, indent+1))
		sb.WriteString(dumpExpr(n.Result, indent+1))
	case *ast.ArrayLiteral:
		fmt.Fprintf(&sb, "%sArrayLiteral\n", pad)
		for _, el := range n.Elements {
			sb.WriteString(dumpExpr(el, indent+1))
		}
	case *ast.Record:
		fmt.Fprintf(&sb, "%sRecord\n", pad)
		for _, item := range n.Items {
			sb.WriteString(dumpExpr(item, indent+1))
		}
	case *ast.FunctionArguments:
		fmt.Fprintf(&sb, "%sFunctionArguments\n", pad)
		for _, item := range n.Items {
			sb.WriteString(dumpExpr(item, indent+1))
		}
	case *ast.FunctionCall:
		fmt.Fprintf(&sb, "%sFunctionCall\n", pad)
		sb.WriteString(dumpExpr(n.FunctionReference, indent+1))
		sb.WriteString(dumpExpr(n.Argument, indent+1))
	case *ast.Addition:
		dumpBinary(&sb, pad, "Addition", n.Left, n.Right, indent)
	case *ast.Subtraction:
		dumpBinary(&sb, pad, "Subtraction", n.Left, n.Right, indent)
	case *ast.Multiplication:
		dumpBinary(&sb, pad, "Multiplication", n.Left, n.Right, indent)
	case *ast.Division:
		dumpBinary(&sb, pad, "Division", n.Left, n.Right, indent)
	case *ast.Equals:
		dumpBinary(&sb, pad, "Equals", n.Left, n.Right, indent)
	case *ast.NotEquals:
		dumpBinary(&sb, pad, "NotEquals", n.Left, n.Right, indent)
	case *ast.LessThan:
		dumpBinary(&sb, pad, "LessThan", n.Left, n.Right, indent)
	case *ast.LessThanOrEquals:
		dumpBinary(&sb, pad, "LessThanOrEquals", n.Left, n.Right, indent)
	case *ast.GreaterThan:
		dumpBinary(&sb, pad, "GreaterThan", n.Left, n.Right, indent)
	case *ast.GreaterThanOrEquals:
		dumpBinary(&sb, pad, "GreaterThanOrEquals", n.Left, n.Right, indent)
	case *ast.Match:
		dumpBinary(&sb, pad, "Match", n.Left, n.Right, indent)
	case *ast.NotMatch:
		dumpBinary(&sb, pad, "NotMatch", n.Left, n.Right, indent)
	case *ast.LogicalAnd:
		dumpBinary(&sb, pad, "LogicalAnd", n.Left, n.Right, indent)
	case *ast.LogicalOr:
		dumpBinary(&sb, pad, "LogicalOr", n.Left, n.Right, indent)
	case *ast.In:
		dumpBinary(&sb, pad, "In", n.Left, n.Right, indent)
	case *ast.Is:
		dumpBinary(&sb, pad, "Is", n.Left, n.Right, indent)
	case *ast.Intersect:
		dumpBinary(&sb, pad, "Intersect", n.Left, n.Right, indent)
	case *ast.IntersectLowPrecedence:
		dumpBinary(&sb, pad, "IntersectLowPrecedence", n.Left, n.Right, indent)
	case *ast.IntersectAssignValue:
		dumpBinary(&sb, pad, "IntersectAssignValue", n.Left, n.Right, indent)
	case *ast.IntersectDefaultValue:
		dumpBinary(&sb, pad, "IntersectDefaultValue", n.Left, n.Right, indent)
	case *ast.Union:
		dumpBinary(&sb, pad, "Union", n.Left, n.Right, indent)
	case *ast.Qualify:
		dumpBinary(&sb, pad, "Qualify", n.Left, n.Right, indent)
	case *ast.When:
		dumpBinary(&sb, pad, "When", n.Left, n.Right, indent)
	case *ast.Where:
		dumpBinary(&sb, pad, "Where", n.Left, n.Right, indent)
	case *ast.Document:
		dumpBinary(&sb, pad, "Document", n.Left, n.Right, indent)
	default:
		fmt.Fprintf(&sb, "%s%T\n", pad, e)
	}

	return sb.String()
}

func dumpBinary(sb *strings.Builder, pad, name string, left, right ast.Expr, indent int) {
	fmt.Fprintf(sb, "%s%s\n", pad, name)
	sb.WriteString(dumpExpr(left, indent+1))
	sb.WriteString(dumpExpr(right, indent+1))
}
