package parser

import (
	"testing"

	"github.com/lligne-lang/lligne-go/internal/ast"
	"github.com/lligne-lang/lligne-go/internal/docfilter"
	"github.com/lligne-lang/lligne-go/internal/scanner"
)

func parseSource(t *testing.T, source string) ast.Expr {
	t.Helper()
	o := docfilter.Filter(scanner.Scan(source))
	result, err := ParseExpression(o)
	if err != nil {
		t.Fatalf("ParseExpression(%q): unexpected error: %v", source, err)
	}
	return result.Root
}

func parseSourceErr(t *testing.T, source string) error {
	t.Helper()
	o := docfilter.Filter(scanner.Scan(source))
	_, err := ParseExpression(o)
	return err
}

// scenario 2: "(1+2)" -> Parenthesized(Addition(Int64(1), Int64(2))), pos 0..5.
func TestParenthesizedAddition(t *testing.T) {
	root := parseSource(t, "(1+2)")
	paren, ok := root.(*ast.Parenthesized)
	if !ok {
		t.Fatalf("root = %T, want *ast.Parenthesized", root)
	}
	add, ok := paren.Inner.(*ast.Addition)
	if !ok {
		t.Fatalf("Inner = %T, want *ast.Addition", paren.Inner)
	}
	if v, ok := add.Left.(*ast.Int64Literal); !ok || v.Value != 1 {
		t.Fatalf("Left = %#v, want Int64Literal(1)", add.Left)
	}
	if v, ok := add.Right.(*ast.Int64Literal); !ok || v.Value != 2 {
		t.Fatalf("Right = %#v, want Int64Literal(2)", add.Right)
	}
	if paren.SourcePos.Start != 0 || paren.SourcePos.End != 5 {
		t.Fatalf("pos = %v, want 0..5", paren.SourcePos)
	}
}

// scenario 3: "()" -> Unit, pos 0..2.
func TestEmptyParensYieldUnit(t *testing.T) {
	root := parseSource(t, "()")
	unit, ok := root.(*ast.Unit)
	if !ok {
		t.Fatalf("root = %T, want *ast.Unit", root)
	}
	if unit.SourcePos.Start != 0 || unit.SourcePos.End != 2 {
		t.Fatalf("pos = %v, want 0..2", unit.SourcePos)
	}
}

// scenario 4: "[1, 2, 3]" -> ArrayLiteral with three Int64Literal children.
func TestArrayLiteralThreeElements(t *testing.T) {
	root := parseSource(t, "[1, 2, 3]")
	arr, ok := root.(*ast.ArrayLiteral)
	if !ok {
		t.Fatalf("root = %T, want *ast.ArrayLiteral", root)
	}
	if len(arr.Elements) != 3 {
		t.Fatalf("len(Elements) = %d, want 3", len(arr.Elements))
	}
	for i, want := range []int64{1, 2, 3} {
		v, ok := arr.Elements[i].(*ast.Int64Literal)
		if !ok || v.Value != want {
			t.Fatalf("Elements[%d] = %#v, want Int64Literal(%d)", i, arr.Elements[i], want)
		}
	}
}

func TestEmptyArrayLiteral(t *testing.T) {
	root := parseSource(t, "[]")
	arr, ok := root.(*ast.ArrayLiteral)
	if !ok {
		t.Fatalf("root = %T, want *ast.ArrayLiteral", root)
	}
	if len(arr.Elements) != 0 {
		t.Fatalf("len(Elements) = %d, want 0", len(arr.Elements))
	}
}

// scenario 5: "f(x: 0)" -> FunctionCall(Identifier("f"), FunctionArguments([Qualify(Identifier("x"), Int64(0))])).
func TestFunctionCallWithQualifiedArgument(t *testing.T) {
	root := parseSource(t, "f(x: 0)")
	call, ok := root.(*ast.FunctionCall)
	if !ok {
		t.Fatalf("root = %T, want *ast.FunctionCall", root)
	}
	fn, ok := call.FunctionReference.(*ast.Identifier)
	if !ok || fn.Name != "f" {
		t.Fatalf("FunctionReference = %#v, want Identifier(f)", call.FunctionReference)
	}
	args, ok := call.Argument.(*ast.FunctionArguments)
	if !ok {
		t.Fatalf("Argument = %T, want *ast.FunctionArguments", call.Argument)
	}
	if len(args.Items) != 1 {
		t.Fatalf("len(Items) = %d, want 1", len(args.Items))
	}
	qual, ok := args.Items[0].(*ast.Qualify)
	if !ok {
		t.Fatalf("Items[0] = %T, want *ast.Qualify", args.Items[0])
	}
	if id, ok := qual.Left.(*ast.Identifier); !ok || id.Name != "x" {
		t.Fatalf("Qualify.Left = %#v, want Identifier(x)", qual.Left)
	}
	if v, ok := qual.Right.(*ast.Int64Literal); !ok || v.Value != 0 {
		t.Fatalf("Qualify.Right = %#v, want Int64Literal(0)", qual.Right)
	}
}

// scenario 6: "1 + 2 * 3" -> Addition(Int64(1), Multiplication(Int64(2), Int64(3))).
func TestMultiplicationBindsTighterThanAddition(t *testing.T) {
	root := parseSource(t, "1 + 2 * 3")
	add, ok := root.(*ast.Addition)
	if !ok {
		t.Fatalf("root = %T, want *ast.Addition", root)
	}
	if v, ok := add.Left.(*ast.Int64Literal); !ok || v.Value != 1 {
		t.Fatalf("Left = %#v, want Int64Literal(1)", add.Left)
	}
	mul, ok := add.Right.(*ast.Multiplication)
	if !ok {
		t.Fatalf("Right = %T, want *ast.Multiplication", add.Right)
	}
	if v, ok := mul.Left.(*ast.Int64Literal); !ok || v.Value != 2 {
		t.Fatalf("mul.Left = %#v, want Int64Literal(2)", mul.Left)
	}
	if v, ok := mul.Right.(*ast.Int64Literal); !ok || v.Value != 3 {
		t.Fatalf("mul.Right = %#v, want Int64Literal(3)", mul.Right)
	}
}

// scenario 7: "-a + b" -> Addition(NegationOperation(Identifier(a)), Identifier(b)).
func TestPrefixNegationBindsTighterThanInfixAddition(t *testing.T) {
	root := parseSource(t, "-a + b")
	add, ok := root.(*ast.Addition)
	if !ok {
		t.Fatalf("root = %T, want *ast.Addition", root)
	}
	neg, ok := add.Left.(*ast.NegationOperation)
	if !ok {
		t.Fatalf("Left = %T, want *ast.NegationOperation", add.Left)
	}
	if id, ok := neg.Operand.(*ast.Identifier); !ok || id.Name != "a" {
		t.Fatalf("neg.Operand = %#v, want Identifier(a)", neg.Operand)
	}
	if id, ok := add.Right.(*ast.Identifier); !ok || id.Name != "b" {
		t.Fatalf("Right = %#v, want Identifier(b)", add.Right)
	}
}

// scenario 8: "a.b.c" -> FieldReference(FieldReference(a, b), c) — left associative.
func TestFieldReferenceIsLeftAssociative(t *testing.T) {
	root := parseSource(t, "a.b.c")
	outer, ok := root.(*ast.FieldReference)
	if !ok {
		t.Fatalf("root = %T, want *ast.FieldReference", root)
	}
	if id, ok := outer.Child.(*ast.Identifier); !ok || id.Name != "c" {
		t.Fatalf("outer.Child = %#v, want Identifier(c)", outer.Child)
	}
	inner, ok := outer.Parent.(*ast.FieldReference)
	if !ok {
		t.Fatalf("outer.Parent = %T, want *ast.FieldReference", outer.Parent)
	}
	if id, ok := inner.Parent.(*ast.Identifier); !ok || id.Name != "a" {
		t.Fatalf("inner.Parent = %#v, want Identifier(a)", inner.Parent)
	}
	if id, ok := inner.Child.(*ast.Identifier); !ok || id.Name != "b" {
		t.Fatalf("inner.Child = %#v, want Identifier(b)", inner.Child)
	}
}

// scenario 9: "x in 1..9" -> In(Id(x), Range(Int64(1), Int64(9))) — `..` tighter than `in`.
func TestRangeBindsTighterThanIn(t *testing.T) {
	root := parseSource(t, "x in 1..9")
	in, ok := root.(*ast.In)
	if !ok {
		t.Fatalf("root = %T, want *ast.In", root)
	}
	if id, ok := in.Left.(*ast.Identifier); !ok || id.Name != "x" {
		t.Fatalf("Left = %#v, want Identifier(x)", in.Left)
	}
	rng, ok := in.Right.(*ast.Range)
	if !ok {
		t.Fatalf("Right = %T, want *ast.Range", in.Right)
	}
	if v, ok := rng.First.(*ast.Int64Literal); !ok || v.Value != 1 {
		t.Fatalf("rng.First = %#v, want Int64Literal(1)", rng.First)
	}
	if v, ok := rng.Last.(*ast.Int64Literal); !ok || v.Value != 9 {
		t.Fatalf("rng.Last = %#v, want Int64Literal(9)", rng.Last)
	}
}

// scenario 10: "// doc\nx" -> after filter, parse yields Document(LeadingDocumentation, Identifier(x)).
func TestLeadingDocumentationBindsToFollowingIdentifier(t *testing.T) {
	root := parseSource(t, "// doc\nx")
	doc, ok := root.(*ast.Document)
	if !ok {
		t.Fatalf("root = %T, want *ast.Document", root)
	}
	if _, ok := doc.Left.(*ast.LeadingDocumentation); !ok {
		t.Fatalf("Left = %T, want *ast.LeadingDocumentation", doc.Left)
	}
	if id, ok := doc.Right.(*ast.Identifier); !ok || id.Name != "x" {
		t.Fatalf("Right = %#v, want Identifier(x)", doc.Right)
	}
}

func TestLogicalNotDoesNotSpanThroughOperand(t *testing.T) {
	root := parseSource(t, "not a")
	not, ok := root.(*ast.LogicalNotOperation)
	if !ok {
		t.Fatalf("root = %T, want *ast.LogicalNotOperation", root)
	}
	if not.SourcePos.Start != 0 || not.SourcePos.End != 3 {
		t.Fatalf("pos = %v, want 0..3 (the `not` token alone)", not.SourcePos)
	}
}

func TestOptionalPositionExcludesQuestionMark(t *testing.T) {
	root := parseSource(t, "a?")
	opt, ok := root.(*ast.Optional)
	if !ok {
		t.Fatalf("root = %T, want *ast.Optional", root)
	}
	if opt.SourcePos.Start != 0 || opt.SourcePos.End != 1 {
		t.Fatalf("pos = %v, want 0..1 (excludes the `?`)", opt.SourcePos)
	}
}

func TestNegationSpansOperatorThroughOperand(t *testing.T) {
	root := parseSource(t, "-a")
	neg, ok := root.(*ast.NegationOperation)
	if !ok {
		t.Fatalf("root = %T, want *ast.NegationOperation", root)
	}
	if neg.SourcePos.Start != 0 || neg.SourcePos.End != 2 {
		t.Fatalf("pos = %v, want 0..2", neg.SourcePos)
	}
}

func TestParenthesizedTupleModeYieldsFunctionArguments(t *testing.T) {
	root := parseSource(t, "(1, 2)")
	args, ok := root.(*ast.FunctionArguments)
	if !ok {
		t.Fatalf("root = %T, want *ast.FunctionArguments", root)
	}
	if len(args.Items) != 2 {
		t.Fatalf("len(Items) = %d, want 2", len(args.Items))
	}
}

func TestRecordLiteralWithTrailingComma(t *testing.T) {
	root := parseSource(t, "{a: 1, b: 2,}")
	rec, ok := root.(*ast.Record)
	if !ok {
		t.Fatalf("root = %T, want *ast.Record", root)
	}
	if len(rec.Items) != 2 {
		t.Fatalf("len(Items) = %d, want 2", len(rec.Items))
	}
}

func TestMissingClosingParenIsFatal(t *testing.T) {
	if err := parseSourceErr(t, "(1+2"); err == nil {
		t.Fatal("expected an error for an unclosed parenthesis")
	}
}

func TestUnexpectedTokenAtStartOfExpressionIsFatal(t *testing.T) {
	if err := parseSourceErr(t, "+"); err == nil {
		t.Fatal("expected an error for a leading `+`")
	}
}

func TestPostfixBracketIsFatal(t *testing.T) {
	if err := parseSourceErr(t, "a[0]"); err == nil {
		t.Fatal("expected an error: `[` is registered but has no postfix handler")
	}
}

// All binary operators are left-associative per spec §4.3 (`left = level,
// right = level+1` uniformly; `->` is not called out as an exception).
func TestFunctionArrowIsLeftAssociative(t *testing.T) {
	root := parseSource(t, "a -> b -> c")
	outer, ok := root.(*ast.FunctionArrow)
	if !ok {
		t.Fatalf("root = %T, want *ast.FunctionArrow", root)
	}
	if id, ok := outer.Result.(*ast.Identifier); !ok || id.Name != "c" {
		t.Fatalf("Result = %#v, want Identifier(c)", outer.Result)
	}
	inner, ok := outer.Argument.(*ast.FunctionArrow)
	if !ok {
		t.Fatalf("Argument = %T, want *ast.FunctionArrow", outer.Argument)
	}
	if id, ok := inner.Argument.(*ast.Identifier); !ok || id.Name != "a" {
		t.Fatalf("inner.Argument = %#v, want Identifier(a)", inner.Argument)
	}
	if id, ok := inner.Result.(*ast.Identifier); !ok || id.Name != "b" {
		t.Fatalf("inner.Result = %#v, want Identifier(b)", inner.Result)
	}
}

func TestStringLiteralDelimiterKinds(t *testing.T) {
	tests := []struct {
		source string
		want   ast.StringDelimiter
	}{
		{`"hi"`, ast.DoubleQuotes},
		{`'hi'`, ast.SingleQuotes},
		{"`hi`", ast.BackTicksMultiline},
	}
	for _, tt := range tests {
		root := parseSource(t, tt.source)
		lit, ok := root.(*ast.StringLiteral)
		if !ok {
			t.Fatalf("%s: root = %T, want *ast.StringLiteral", tt.source, root)
		}
		if lit.Delimiter != tt.want {
			t.Fatalf("%s: Delimiter = %v, want %v", tt.source, lit.Delimiter, tt.want)
		}
	}
}

func TestBuiltInTypeLeaf(t *testing.T) {
	root := parseSource(t, "Int64")
	bt, ok := root.(*ast.BuiltInType)
	if !ok {
		t.Fatalf("root = %T, want *ast.BuiltInType", root)
	}
	if bt.Name != "Int64" {
		t.Fatalf("Name = %q, want Int64", bt.Name)
	}
}

func TestFloatLiteral(t *testing.T) {
	root := parseSource(t, "3.5")
	f, ok := root.(*ast.Float64Literal)
	if !ok {
		t.Fatalf("root = %T, want *ast.Float64Literal", root)
	}
	if f.Value != 3.5 {
		t.Fatalf("Value = %v, want 3.5", f.Value)
	}
}

func TestBooleanLiterals(t *testing.T) {
	if _, ok := parseSource(t, "true").(*ast.BooleanLiteral); !ok {
		t.Fatal("expected BooleanLiteral for `true`")
	}
	if v, ok := parseSource(t, "false").(*ast.BooleanLiteral); !ok || v.Value {
		t.Fatal("expected BooleanLiteral(false) for `false`")
	}
}
