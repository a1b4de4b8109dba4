// Package parser implements Lligne's Pratt (operator-precedence) parser:
// the filtered token outcome folds into a typed ast.Expr tree (spec §4.3).
// The driver, the registration-table idiom, and the immutable-cursor
// navigation style are grounded on the teacher's parser.go/expressions.go/
// cursor.go, adapted from a statement-and-declaration grammar to a single
// Pratt expression grammar with no recovery: every parse* function returns
// (Expr, *Cursor, error) and the first error short-circuits the whole
// call chain (spec §7), rather than accumulating into the teacher's
// []*ParserError with synchronize()-based panic-mode recovery.
package parser

import (
	"strconv"

	"github.com/lligne-lang/lligne-go/internal/ast"
	"github.com/lligne-lang/lligne-go/internal/scanner"
	"github.com/lligne-lang/lligne-go/internal/token"
)

// bindingPower is the (left, right) pair an infix operator is registered
// with; left gates whether the Pratt loop consumes the operator at the
// current minimum, right is the minimum passed down when parsing its RHS.
type bindingPower struct {
	left, right int
}

// infixPower is the binding-power table for infix operators, assigned in
// successive += 2 steps per spec §4.3 (lowest precedence first).
var infixPower = map[token.TokenType]bindingPower{
	token.Colon:               {1, 2},
	token.Equals:              {1, 2},
	token.QuestionColon:       {1, 2},
	token.AmpersandAmpersand:  {3, 4},
	token.Pipe:                {5, 6},
	token.Ampersand:           {7, 8},
	token.When:                {9, 10},
	token.Where:               {9, 10},
	token.SynthDocument:       {11, 12},
	token.Or:                  {13, 14},
	token.And:                 {15, 16},
	// level 17 is the `not` prefix operator; no infix entry.
	token.EqualsEquals:        {19, 20},
	token.ExclamationEquals:   {19, 20},
	token.LessThan:            {19, 20},
	token.LessThanOrEquals:    {19, 20},
	token.GreaterThan:         {19, 20},
	token.GreaterThanOrEquals: {19, 20},
	token.In:                  {21, 22},
	token.Is:                  {21, 22},
	token.EqualsTilde:         {21, 22},
	token.ExclamationTilde:    {21, 22},
	token.DotDot:              {23, 24},
	token.Dash:                {25, 26},
	token.Plus:                {25, 26},
	token.Asterisk:            {27, 28},
	token.Slash:               {27, 28},
	// level 29 is the `-` prefix operator; no infix entry.
	token.RightArrow: {31, 32},
	token.Dot:         {33, 34},
}

// prefixPower is the binding power used as the minimum when parsing a
// prefix operator's operand.
var prefixPower = map[token.TokenType]int{
	token.Not:  17,
	token.Dash: 29,
}

// postfixPower is the binding power gating postfix application. `[` is
// registered per spec §4.3 but has no case in applyPostfix — encountering
// it is a fatal unknown-postfix error (spec §9).
var postfixPower = map[token.TokenType]int{
	token.LeftParenthesis: 35,
	token.LeftBracket:     35,
	token.Question:        35,
}

// Result is the parser's output: the source, the newline offsets carried
// through from the scanner, and the root of the parsed expression tree.
type Result struct {
	Source         string
	NewlineOffsets []uint32
	Root           ast.Expr
}

// ParseExpression parses the whole of a filtered scanner outcome as a
// single expression. Failures are fatal: the first structural error halts
// parsing and is returned (spec §7).
func ParseExpression(o scanner.Outcome) (*Result, error) {
	c := NewCursor(o.Tokens)
	root, _, err := parse(o.Source, c, 0)
	if err != nil {
		return nil, err
	}
	return &Result{Source: o.Source, NewlineOffsets: o.NewlineOffsets, Root: root}, nil
}

// parse is the classic Pratt loop, parameterized by a minimum binding
// power. Postfix operators are tested before infix ones (material once
// both tables share a token, per spec §4.3).
func parse(source string, c *Cursor, min int) (ast.Expr, *Cursor, error) {
	lhs, c, err := parseLeftHandSide(source, c)
	if err != nil {
		return nil, c, err
	}

	for {
		op := c.Current()

		if p, ok := postfixPower[op.Type]; ok && p >= min {
			rest := c.Advance()
			var next ast.Expr
			next, c, err = applyPostfix(source, op, lhs, rest)
			if err != nil {
				return nil, c, err
			}
			lhs = next
			continue
		}

		if bp, ok := infixPower[op.Type]; ok && bp.left >= min {
			rest := c.Advance()
			var rhs ast.Expr
			rhs, rest, err = parse(source, rest, bp.right)
			if err != nil {
				return nil, rest, err
			}
			lhs, err = applyInfix(op, lhs, rhs)
			if err != nil {
				return nil, rest, err
			}
			c = rest
			continue
		}

		break
	}

	return lhs, c, nil
}

// parseLeftHandSide dispatches on the consumed token to build an atom:
// a literal, an identifier, a prefix operation, or a bracketed form.
func parseLeftHandSide(source string, c *Cursor) (ast.Expr, *Cursor, error) {
	tok := c.Current()

	switch tok.Type {
	case token.BackTickedString:
		return &ast.StringLiteral{SourcePos: tok.Pos(), Delimiter: ast.BackTicksMultiline}, c.Advance(), nil
	case token.DoubleQuotedString:
		return &ast.StringLiteral{SourcePos: tok.Pos(), Delimiter: ast.DoubleQuotes}, c.Advance(), nil
	case token.SingleQuotedString:
		return &ast.StringLiteral{SourcePos: tok.Pos(), Delimiter: ast.SingleQuotes}, c.Advance(), nil

	case token.BuiltInType:
		return &ast.BuiltInType{SourcePos: tok.Pos(), Name: tok.Text(source)}, c.Advance(), nil

	case token.True:
		return &ast.BooleanLiteral{SourcePos: tok.Pos(), Value: true}, c.Advance(), nil
	case token.False:
		return &ast.BooleanLiteral{SourcePos: tok.Pos(), Value: false}, c.Advance(), nil

	case token.IntegerLiteral:
		v, parseErr := strconv.ParseInt(tok.Text(source), 10, 64)
		if parseErr != nil {
			return nil, c, newSyntaxError(tok, "invalid integer literal %q", tok.Text(source))
		}
		return &ast.Int64Literal{SourcePos: tok.Pos(), Value: v}, c.Advance(), nil

	case token.FloatingPointLiteral:
		v, parseErr := strconv.ParseFloat(tok.Text(source), 64)
		if parseErr != nil {
			return nil, c, newSyntaxError(tok, "invalid floating point literal %q", tok.Text(source))
		}
		return &ast.Float64Literal{SourcePos: tok.Pos(), Value: v}, c.Advance(), nil

	case token.Identifier:
		return &ast.Identifier{SourcePos: tok.Pos(), Name: tok.Text(source)}, c.Advance(), nil

	case token.LeadingDocumentation:
		return &ast.LeadingDocumentation{SourcePos: tok.Pos()}, c.Advance(), nil
	case token.TrailingDocumentation:
		return &ast.TrailingDocumentation{SourcePos: tok.Pos()}, c.Advance(), nil

	case token.Dash:
		return parseNegation(source, tok, c.Advance())
	case token.Not:
		return parseLogicalNot(source, tok, c.Advance())

	case token.LeftBrace:
		return parseRecord(source, tok, c.Advance())
	case token.LeftBracket:
		return parseArrayLiteral(source, tok, c.Advance())
	case token.LeftParenthesis:
		return parseParenthesized(source, tok, c.Advance())

	default:
		return nil, c, newSyntaxError(tok, "unexpected %s at start of expression", tok.Type)
	}
}

// parseNegation consumes its operand at prefix power 29; the result spans
// the `-` token through the operand (unlike parseLogicalNot, which does
// not span — spec §9).
func parseNegation(source string, dash token.Token, c *Cursor) (ast.Expr, *Cursor, error) {
	operand, c, err := parse(source, c, prefixPower[token.Dash])
	if err != nil {
		return nil, c, err
	}
	pos, err := token.Span(dash.Pos(), operand.Pos())
	if err != nil {
		return nil, c, newSyntaxError(dash, "%v", err)
	}
	return &ast.NegationOperation{SourcePos: pos, Operand: operand}, c, nil
}

// parseLogicalNot consumes its operand at prefix power 17. Its result
// position is the `not` token alone, deliberately not spanning through the
// operand (spec §9, preserved pending clarification).
func parseLogicalNot(source string, not token.Token, c *Cursor) (ast.Expr, *Cursor, error) {
	operand, c, err := parse(source, c, prefixPower[token.Not])
	if err != nil {
		return nil, c, err
	}
	return &ast.LogicalNotOperation{SourcePos: not.Pos(), Operand: operand}, c, nil
}

// parseRecord parses a comma-separated `{` ... `}` form. A trailing comma
// is permitted but not required; any non-comma after an item terminates
// the list.
func parseRecord(source string, open token.Token, c *Cursor) (ast.Expr, *Cursor, error) {
	items, c, err := parseCommaSeparated(source, c, token.RightBrace)
	if err != nil {
		return nil, c, err
	}
	pos, err := token.Span(open.Pos(), c.Current().Pos())
	if err != nil {
		return nil, c, newSyntaxError(open, "%v", err)
	}
	return &ast.Record{SourcePos: pos, Items: items}, c.Advance(), nil
}

// parseArrayLiteral parses a comma-separated `[` ... `]` form; empty
// brackets yield an ArrayLiteral with no elements.
func parseArrayLiteral(source string, open token.Token, c *Cursor) (ast.Expr, *Cursor, error) {
	items, c, err := parseCommaSeparated(source, c, token.RightBracket)
	if err != nil {
		return nil, c, err
	}
	pos, err := token.Span(open.Pos(), c.Current().Pos())
	if err != nil {
		return nil, c, newSyntaxError(open, "%v", err)
	}
	return &ast.ArrayLiteral{SourcePos: pos, Elements: items}, c.Advance(), nil
}

// parseCommaSeparated collects parse(0) items until closing, leaving the
// cursor positioned at the closing token. It is an error for closing to be
// missing.
func parseCommaSeparated(source string, c *Cursor, closing token.TokenType) ([]ast.Expr, *Cursor, error) {
	if c.Is(closing) {
		return nil, c, nil
	}

	var items []ast.Expr
	for {
		item, next, err := parse(source, c, 0)
		if err != nil {
			return nil, next, err
		}
		items = append(items, item)
		c = next

		if !c.Is(token.Comma) {
			break
		}
		c = c.Advance()
		if c.Is(closing) {
			break // trailing comma
		}
	}

	if !c.Is(closing) {
		return nil, c, newSyntaxError(c.Current(), "expected %s, found %s", closing, c.Current().Type)
	}
	return items, c, nil
}

// parseParenthesized implements `(`'s triple role: empty pair → Unit,
// single expression → Parenthesized, comma-separated expressions →
// FunctionArguments (tuple mode).
func parseParenthesized(source string, open token.Token, c *Cursor) (ast.Expr, *Cursor, error) {
	if c.Is(token.RightParenthesis) {
		pos, err := token.Span(open.Pos(), c.Current().Pos())
		if err != nil {
			return nil, c, newSyntaxError(open, "%v", err)
		}
		return &ast.Unit{SourcePos: pos}, c.Advance(), nil
	}

	first, c, err := parse(source, c, 0)
	if err != nil {
		return nil, c, err
	}

	if c.Is(token.Comma) {
		items := []ast.Expr{first}
		for c.Is(token.Comma) {
			c = c.Advance()
			var item ast.Expr
			item, c, err = parse(source, c, 0)
			if err != nil {
				return nil, c, err
			}
			items = append(items, item)
		}
		if !c.Is(token.RightParenthesis) {
			return nil, c, newSyntaxError(c.Current(), "expected ')', found %s", c.Current().Type)
		}
		pos, err := token.Span(open.Pos(), c.Current().Pos())
		if err != nil {
			return nil, c, newSyntaxError(open, "%v", err)
		}
		return &ast.FunctionArguments{SourcePos: pos, Items: items}, c.Advance(), nil
	}

	if !c.Is(token.RightParenthesis) {
		return nil, c, newSyntaxError(c.Current(), "expected ')', found %s", c.Current().Type)
	}
	pos, err := token.Span(open.Pos(), c.Current().Pos())
	if err != nil {
		return nil, c, newSyntaxError(open, "%v", err)
	}
	return &ast.Parenthesized{SourcePos: pos, Inner: first}, c.Advance(), nil
}

// applyPostfix handles `(` (call), `?` (optional), and the registered but
// unimplemented `[`.
func applyPostfix(source string, op token.Token, lhs ast.Expr, c *Cursor) (ast.Expr, *Cursor, error) {
	switch op.Type {
	case token.LeftParenthesis:
		args, c, err := parseFunctionArguments(source, op, c)
		if err != nil {
			return nil, c, err
		}
		pos, err := token.Span(lhs.Pos(), args.Pos())
		if err != nil {
			return nil, c, newSyntaxError(op, "%v", err)
		}
		return &ast.FunctionCall{SourcePos: pos, FunctionReference: lhs, Argument: args}, c, nil

	case token.Question:
		// Optional's position equals the operand's, excluding the `?`
		// (spec §9, preserved deliberately).
		return &ast.Optional{SourcePos: lhs.Pos(), Operand: lhs}, c, nil

	default:
		return nil, c, newSyntaxError(op, "no postfix handler for %s", op.Type)
	}
}

// parseFunctionArguments parses a `(`-introduced call argument list.
func parseFunctionArguments(source string, open token.Token, c *Cursor) (*ast.FunctionArguments, *Cursor, error) {
	items, c, err := parseCommaSeparated(source, c, token.RightParenthesis)
	if err != nil {
		return nil, c, err
	}
	pos, err := token.Span(open.Pos(), c.Current().Pos())
	if err != nil {
		return nil, c, newSyntaxError(open, "%v", err)
	}
	return &ast.FunctionArguments{SourcePos: pos, Items: items}, c.Advance(), nil
}

// applyInfix dispatches on the operator's token type and constructs the
// corresponding binary variant, per the complete mapping in spec §4.3.
func applyInfix(op token.Token, lhs, rhs ast.Expr) (ast.Expr, error) {
	pos, err := token.Span(lhs.Pos(), rhs.Pos())
	if err != nil {
		return nil, newSyntaxError(op, "%v", err)
	}

	switch op.Type {
	case token.Ampersand:
		return &ast.Intersect{SourcePos: pos, Left: lhs, Right: rhs}, nil
	case token.AmpersandAmpersand:
		return &ast.IntersectLowPrecedence{SourcePos: pos, Left: lhs, Right: rhs}, nil
	case token.And:
		return &ast.LogicalAnd{SourcePos: pos, Left: lhs, Right: rhs}, nil
	case token.Asterisk:
		return &ast.Multiplication{SourcePos: pos, Left: lhs, Right: rhs}, nil
	case token.Colon:
		return &ast.Qualify{SourcePos: pos, Left: lhs, Right: rhs}, nil
	case token.Dash:
		return &ast.Subtraction{SourcePos: pos, Left: lhs, Right: rhs}, nil
	case token.Dot:
		return &ast.FieldReference{SourcePos: pos, Parent: lhs, Child: rhs}, nil
	case token.DotDot:
		return &ast.Range{SourcePos: pos, First: lhs, Last: rhs}, nil
	case token.Equals:
		return &ast.IntersectAssignValue{SourcePos: pos, Left: lhs, Right: rhs}, nil
	case token.EqualsEquals:
		return &ast.Equals{SourcePos: pos, Left: lhs, Right: rhs}, nil
	case token.EqualsTilde:
		return &ast.Match{SourcePos: pos, Left: lhs, Right: rhs}, nil
	case token.ExclamationEquals:
		return &ast.NotEquals{SourcePos: pos, Left: lhs, Right: rhs}, nil
	case token.ExclamationTilde:
		return &ast.NotMatch{SourcePos: pos, Left: lhs, Right: rhs}, nil
	case token.GreaterThan:
		return &ast.GreaterThan{SourcePos: pos, Left: lhs, Right: rhs}, nil
	case token.GreaterThanOrEquals:
		return &ast.GreaterThanOrEquals{SourcePos: pos, Left: lhs, Right: rhs}, nil
	case token.In:
		return &ast.In{SourcePos: pos, Left: lhs, Right: rhs}, nil
	case token.Is:
		return &ast.Is{SourcePos: pos, Left: lhs, Right: rhs}, nil
	case token.LessThan:
		return &ast.LessThan{SourcePos: pos, Left: lhs, Right: rhs}, nil
	case token.LessThanOrEquals:
		return &ast.LessThanOrEquals{SourcePos: pos, Left: lhs, Right: rhs}, nil
	case token.Or:
		return &ast.LogicalOr{SourcePos: pos, Left: lhs, Right: rhs}, nil
	case token.Plus:
		return &ast.Addition{SourcePos: pos, Left: lhs, Right: rhs}, nil
	case token.QuestionColon:
		return &ast.IntersectDefaultValue{SourcePos: pos, Left: lhs, Right: rhs}, nil
	case token.RightArrow:
		return &ast.FunctionArrow{SourcePos: pos, Argument: lhs, Result: rhs}, nil
	case token.Slash:
		return &ast.Division{SourcePos: pos, Left: lhs, Right: rhs}, nil
	case token.SynthDocument:
		return &ast.Document{SourcePos: pos, Left: lhs, Right: rhs}, nil
	case token.Pipe:
		return &ast.Union{SourcePos: pos, Left: lhs, Right: rhs}, nil
	case token.When:
		return &ast.When{SourcePos: pos, Left: lhs, Right: rhs}, nil
	case token.Where:
		return &ast.Where{SourcePos: pos, Left: lhs, Right: rhs}, nil
	default:
		return nil, newSyntaxError(op, "unknown infix operator %s", op.Type)
	}
}
