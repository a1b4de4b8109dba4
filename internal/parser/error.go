package parser

import (
	"fmt"

	"github.com/lligne-lang/lligne-go/internal/token"
)

// SyntaxError is a structural parse failure: a missing closing bracket, an
// unknown operator during infix application, an unexpected token at the
// start of an expression, or a numeric-literal parse failure (spec §7).
// Structural errors are fatal — there is no recovery, no resynchronization,
// and no error node in the tree. SyntaxError keeps the field shape and
// rendering convention of the teacher's ParserError for stylistic
// continuity, even though it is never accumulated into a list: the first
// one returned halts parsing.
type SyntaxError struct {
	Message string
	Pos     token.SourcePos
	Length  int
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at %s", e.Message, e.Pos)
}

// newSyntaxError builds a SyntaxError anchored at tok's position.
func newSyntaxError(tok token.Token, format string, args ...any) *SyntaxError {
	return &SyntaxError{
		Message: fmt.Sprintf(format, args...),
		Pos:     tok.Pos(),
		Length:  int(tok.Length),
	}
}
