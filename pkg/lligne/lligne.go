// Package lligne is the host-facing facade over the scan → filter → parse
// pipeline: a single call turns source text into a parsed expression tree.
// Its New()-engine-plus-Parse()-method shape is grounded on pkg/dwscript's
// engine, inferred from pkg/dwscript/parse_test.go's use of `engine, err
// := New()` followed by `engine.Parse(source)` (pkg/dwscript's own source
// was filtered out of the retrieval pack).
package lligne

import (
	"github.com/lligne-lang/lligne-go/internal/ast"
	"github.com/lligne-lang/lligne-go/internal/docfilter"
	"github.com/lligne-lang/lligne-go/internal/parser"
	"github.com/lligne-lang/lligne-go/internal/scanner"
)

// Result is the outcome of parsing a complete source string: the root of
// the expression tree plus the pipeline's byproducts (the source text
// itself and the newline offsets, useful for diagnostics rendering).
type Result struct {
	Source         string
	NewlineOffsets []uint32
	Root           ast.Expr
}

// ParseError wraps a fatal *parser.SyntaxError with the source text and
// newline offsets the scanner recorded before parsing failed, so a caller
// can render source context (internal/diagnostics) without having to
// re-scan the input. The scanner and documentation filter are total —
// only the parser can fail — so these byproducts always exist by the time
// an error reaches the caller.
type ParseError struct {
	*parser.SyntaxError
	Source         string
	NewlineOffsets []uint32
}

// Unwrap exposes the underlying *parser.SyntaxError to errors.As/errors.Is.
func (e *ParseError) Unwrap() error {
	return e.SyntaxError
}

// Engine runs the front-end pipeline. It carries no state across calls —
// every field-free value works the same — but is kept as a type (rather
// than a bare package function) to mirror the teacher's New()/method
// facade shape and leave room for configuration (e.g. scanner options)
// without breaking callers.
type Engine struct {
	scannerOpts []scanner.Option
}

// New returns a ready-to-use Engine. It never fails today, but returns an
// error to match the teacher's New() (*Engine, error) signature, leaving
// room for future validation (e.g. of options) without an API break.
func New(opts ...scanner.Option) (*Engine, error) {
	return &Engine{scannerOpts: opts}, nil
}

// Parse runs source through the scanner, the documentation filter, and
// the parser, returning the resulting expression tree. A lexical error
// (an unclosed string, an unrecognized character) is not fatal by itself
// — it survives as a distinguished token type in the stream (spec.md §7)
// — but the parser treats an unexpected token type as a fatal structural
// error, so lexical errors typically surface here as a *ParseError
// wrapping a *parser.SyntaxError.
func (e *Engine) Parse(source string) (*Result, error) {
	outcome := docfilter.Filter(scanner.Scan(source, e.scannerOpts...))
	result, err := parser.ParseExpression(outcome)
	if err != nil {
		syn, _ := err.(*parser.SyntaxError)
		return nil, &ParseError{
			SyntaxError:    syn,
			Source:         outcome.Source,
			NewlineOffsets: outcome.NewlineOffsets,
		}
	}
	return &Result{
		Source:         result.Source,
		NewlineOffsets: result.NewlineOffsets,
		Root:           result.Root,
	}, nil
}

// Parse is a package-level convenience wrapping New().Parse(source) for
// one-shot callers that don't need scanner options.
func Parse(source string) (*Result, error) {
	engine, err := New()
	if err != nil {
		return nil, err
	}
	return engine.Parse(source)
}
