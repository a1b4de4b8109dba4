// Package ast defines the Lligne expression-tree variant set: the
// parser's target vocabulary (spec §3.3). Expr is a tagged union — one
// struct per variant, each carrying its own token.SourcePos — rather than
// a Visitor hierarchy: polymorphic behavior (Pos) is exhaustive dispatch,
// and any future traversal should pattern-match at the use site (spec §9),
// mirroring the teacher's Node/Expression interface split in
// internal/ast/ast.go without its visitor machinery.
package ast

import "github.com/lligne-lang/lligne-go/internal/token"

// Expr is implemented by every expression-tree node. Every variant carries
// a source_position per spec §3.3; Pos returns it.
type Expr interface {
	Pos() token.SourcePos
	exprNode()
}

// StringDelimiter enumerates the quoting styles a StringLiteral can carry.
// BackTicks, SingleQuotesMultiline, and DoubleQuotesMultiline are declared
// for completeness per spec §9 but never constructed by this scanner/parser
// pair.
type StringDelimiter int

const (
	DoubleQuotes StringDelimiter = iota
	SingleQuotes
	BackTicks
	SingleQuotesMultiline
	DoubleQuotesMultiline
	BackTicksMultiline
)

func (d StringDelimiter) String() string {
	switch d {
	case DoubleQuotes:
		return "double-quotes"
	case SingleQuotes:
		return "single-quotes"
	case BackTicks:
		return "back-ticks"
	case SingleQuotesMultiline:
		return "single-quotes-multiline"
	case DoubleQuotesMultiline:
		return "double-quotes-multiline"
	case BackTicksMultiline:
		return "back-ticks-multiline"
	default:
		return "unknown-delimiter"
	}
}

// ---- Leaves ----

type Identifier struct {
	SourcePos token.SourcePos
	Name      string
}

type BuiltInType struct {
	SourcePos token.SourcePos
	Name      string
}

type BooleanLiteral struct {
	SourcePos token.SourcePos
	Value     bool
}

type Int64Literal struct {
	SourcePos token.SourcePos
	Value     int64
}

type Float64Literal struct {
	SourcePos token.SourcePos
	Value     float64
}

type StringLiteral struct {
	SourcePos token.SourcePos
	Delimiter StringDelimiter
}

type LeadingDocumentation struct {
	SourcePos token.SourcePos
}

type TrailingDocumentation struct {
	SourcePos token.SourcePos
}

type Unit struct {
	SourcePos token.SourcePos
}

// ---- Unary ----

type NegationOperation struct {
	SourcePos token.SourcePos
	Operand   Expr
}

type LogicalNotOperation struct {
	SourcePos token.SourcePos
	Operand   Expr
}

// Optional's SourcePos equals its operand's, excluding the trailing `?`
// (spec §9, preserved deliberately alongside LogicalNotOperation's own
// asymmetry).
type Optional struct {
	SourcePos token.SourcePos
	Operand   Expr
}

type Parenthesized struct {
	SourcePos token.SourcePos
	Inner     Expr
}

// ---- Binary arithmetic ----

type Addition struct {
	SourcePos   token.SourcePos
	Left, Right Expr
}

type Subtraction struct {
	SourcePos   token.SourcePos
	Left, Right Expr
}

type Multiplication struct {
	SourcePos   token.SourcePos
	Left, Right Expr
}

type Division struct {
	SourcePos   token.SourcePos
	Left, Right Expr
}

// ---- Binary comparison ----

type Equals struct {
	SourcePos   token.SourcePos
	Left, Right Expr
}

type NotEquals struct {
	SourcePos   token.SourcePos
	Left, Right Expr
}

type LessThan struct {
	SourcePos   token.SourcePos
	Left, Right Expr
}

type LessThanOrEquals struct {
	SourcePos   token.SourcePos
	Left, Right Expr
}

type GreaterThan struct {
	SourcePos   token.SourcePos
	Left, Right Expr
}

type GreaterThanOrEquals struct {
	SourcePos   token.SourcePos
	Left, Right Expr
}

// Match is the `=~` operator.
type Match struct {
	SourcePos   token.SourcePos
	Left, Right Expr
}

// NotMatch is the `!~` operator.
type NotMatch struct {
	SourcePos   token.SourcePos
	Left, Right Expr
}

// ---- Binary logical ----

type LogicalAnd struct {
	SourcePos   token.SourcePos
	Left, Right Expr
}

type LogicalOr struct {
	SourcePos   token.SourcePos
	Left, Right Expr
}

// ---- Binary structural ----

type FieldReference struct {
	SourcePos     token.SourcePos
	Parent, Child Expr
}

type Range struct {
	SourcePos   token.SourcePos
	First, Last Expr
}

type In struct {
	SourcePos   token.SourcePos
	Left, Right Expr
}

type Is struct {
	SourcePos   token.SourcePos
	Left, Right Expr
}

type FunctionArrow struct {
	SourcePos        token.SourcePos
	Argument, Result Expr
}

// ---- Intersection / union family ----

// Intersect is `&`.
type Intersect struct {
	SourcePos   token.SourcePos
	Left, Right Expr
}

// IntersectLowPrecedence is `&&`.
type IntersectLowPrecedence struct {
	SourcePos   token.SourcePos
	Left, Right Expr
}

// IntersectAssignValue is `=`.
type IntersectAssignValue struct {
	SourcePos   token.SourcePos
	Left, Right Expr
}

// IntersectDefaultValue is `?:`.
type IntersectDefaultValue struct {
	SourcePos   token.SourcePos
	Left, Right Expr
}

// Union is `|`.
type Union struct {
	SourcePos   token.SourcePos
	Left, Right Expr
}

// Qualify is `:`, used for typed bindings (`x: Int64`).
type Qualify struct {
	SourcePos   token.SourcePos
	Left, Right Expr
}

// ---- Conditional / binding ----

type When struct {
	SourcePos   token.SourcePos
	Left, Right Expr
}

type Where struct {
	SourcePos   token.SourcePos
	Left, Right Expr
}

// Document pairs a documentation leaf with the code element it documents;
// produced by the synthetic SynthDocument operator (level 11).
type Document struct {
	SourcePos   token.SourcePos
	Left, Right Expr
}

// ---- Sequences ----

type ArrayLiteral struct {
	SourcePos token.SourcePos
	Elements  []Expr
}

type Record struct {
	SourcePos token.SourcePos
	Items     []Expr
}

type FunctionArguments struct {
	SourcePos token.SourcePos
	Items     []Expr
}

// FunctionCall's Argument field holds a FunctionArguments node, not a bare
// slice — preserved verbatim per spec §9.
type FunctionCall struct {
	SourcePos         token.SourcePos
	FunctionReference Expr
	Argument          Expr
}

func (e *Identifier) Pos() token.SourcePos             { return e.SourcePos }
func (e *BuiltInType) Pos() token.SourcePos            { return e.SourcePos }
func (e *BooleanLiteral) Pos() token.SourcePos         { return e.SourcePos }
func (e *Int64Literal) Pos() token.SourcePos           { return e.SourcePos }
func (e *Float64Literal) Pos() token.SourcePos         { return e.SourcePos }
func (e *StringLiteral) Pos() token.SourcePos          { return e.SourcePos }
func (e *LeadingDocumentation) Pos() token.SourcePos   { return e.SourcePos }
func (e *TrailingDocumentation) Pos() token.SourcePos  { return e.SourcePos }
func (e *Unit) Pos() token.SourcePos                   { return e.SourcePos }
func (e *NegationOperation) Pos() token.SourcePos      { return e.SourcePos }
func (e *LogicalNotOperation) Pos() token.SourcePos    { return e.SourcePos }
func (e *Optional) Pos() token.SourcePos               { return e.SourcePos }
func (e *Parenthesized) Pos() token.SourcePos          { return e.SourcePos }
func (e *Addition) Pos() token.SourcePos               { return e.SourcePos }
func (e *Subtraction) Pos() token.SourcePos            { return e.SourcePos }
func (e *Multiplication) Pos() token.SourcePos         { return e.SourcePos }
func (e *Division) Pos() token.SourcePos               { return e.SourcePos }
func (e *Equals) Pos() token.SourcePos                 { return e.SourcePos }
func (e *NotEquals) Pos() token.SourcePos              { return e.SourcePos }
func (e *LessThan) Pos() token.SourcePos               { return e.SourcePos }
func (e *LessThanOrEquals) Pos() token.SourcePos       { return e.SourcePos }
func (e *GreaterThan) Pos() token.SourcePos            { return e.SourcePos }
func (e *GreaterThanOrEquals) Pos() token.SourcePos    { return e.SourcePos }
func (e *Match) Pos() token.SourcePos                  { return e.SourcePos }
func (e *NotMatch) Pos() token.SourcePos               { return e.SourcePos }
func (e *LogicalAnd) Pos() token.SourcePos             { return e.SourcePos }
func (e *LogicalOr) Pos() token.SourcePos              { return e.SourcePos }
func (e *FieldReference) Pos() token.SourcePos         { return e.SourcePos }
func (e *Range) Pos() token.SourcePos                  { return e.SourcePos }
func (e *In) Pos() token.SourcePos                     { return e.SourcePos }
func (e *Is) Pos() token.SourcePos                     { return e.SourcePos }
func (e *FunctionArrow) Pos() token.SourcePos          { return e.SourcePos }
func (e *Intersect) Pos() token.SourcePos              { return e.SourcePos }
func (e *IntersectLowPrecedence) Pos() token.SourcePos { return e.SourcePos }
func (e *IntersectAssignValue) Pos() token.SourcePos   { return e.SourcePos }
func (e *IntersectDefaultValue) Pos() token.SourcePos  { return e.SourcePos }
func (e *Union) Pos() token.SourcePos                  { return e.SourcePos }
func (e *Qualify) Pos() token.SourcePos                { return e.SourcePos }
func (e *When) Pos() token.SourcePos                   { return e.SourcePos }
func (e *Where) Pos() token.SourcePos                  { return e.SourcePos }
func (e *Document) Pos() token.SourcePos               { return e.SourcePos }
func (e *ArrayLiteral) Pos() token.SourcePos           { return e.SourcePos }
func (e *Record) Pos() token.SourcePos                 { return e.SourcePos }
func (e *FunctionArguments) Pos() token.SourcePos      { return e.SourcePos }
func (e *FunctionCall) Pos() token.SourcePos           { return e.SourcePos }

func (e *Identifier) exprNode()             {}
func (e *BuiltInType) exprNode()            {}
func (e *BooleanLiteral) exprNode()         {}
func (e *Int64Literal) exprNode()           {}
func (e *Float64Literal) exprNode()         {}
func (e *StringLiteral) exprNode()          {}
func (e *LeadingDocumentation) exprNode()   {}
func (e *TrailingDocumentation) exprNode()  {}
func (e *Unit) exprNode()                   {}
func (e *NegationOperation) exprNode()      {}
func (e *LogicalNotOperation) exprNode()    {}
func (e *Optional) exprNode()               {}
func (e *Parenthesized) exprNode()          {}
func (e *Addition) exprNode()               {}
func (e *Subtraction) exprNode()            {}
func (e *Multiplication) exprNode()         {}
func (e *Division) exprNode()               {}
func (e *Equals) exprNode()                 {}
func (e *NotEquals) exprNode()              {}
func (e *LessThan) exprNode()               {}
func (e *LessThanOrEquals) exprNode()       {}
func (e *GreaterThan) exprNode()            {}
func (e *GreaterThanOrEquals) exprNode()    {}
func (e *Match) exprNode()                  {}
func (e *NotMatch) exprNode()               {}
func (e *LogicalAnd) exprNode()             {}
func (e *LogicalOr) exprNode()              {}
func (e *FieldReference) exprNode()         {}
func (e *Range) exprNode()                  {}
func (e *In) exprNode()                     {}
func (e *Is) exprNode()                     {}
func (e *FunctionArrow) exprNode()          {}
func (e *Intersect) exprNode()              {}
func (e *IntersectLowPrecedence) exprNode() {}
func (e *IntersectAssignValue) exprNode()   {}
func (e *IntersectDefaultValue) exprNode()  {}
func (e *Union) exprNode()                  {}
func (e *Qualify) exprNode()                {}
func (e *When) exprNode()                   {}
func (e *Where) exprNode()                  {}
func (e *Document) exprNode()               {}
func (e *ArrayLiteral) exprNode()           {}
func (e *Record) exprNode()                 {}
func (e *FunctionArguments) exprNode()      {}
func (e *FunctionCall) exprNode()           {}
