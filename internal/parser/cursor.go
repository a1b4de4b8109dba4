package parser

import "github.com/lligne-lang/lligne-go/internal/token"

// Cursor is an immutable navigation handle over a fully materialized
// token slice. It is the non-lazy counterpart of the teacher's
// TokenCursor: since the scanner and documentation filter both run to
// completion before the parser ever sees a token, there is no lexer to
// buffer from — Cursor simply indexes the filtered slice, with the
// mandatory three-EOF tail (spec §9) guaranteeing Peek(0) and Peek(1)
// are always in range.
type Cursor struct {
	tokens []token.Token
	index  int
}

// NewCursor returns a Cursor positioned at the first token of tokens.
// tokens must end in at least two EOF tokens (the scanner always emits
// three).
func NewCursor(tokens []token.Token) *Cursor {
	return &Cursor{tokens: tokens, index: 0}
}

// Current returns the token at the cursor's position.
func (c *Cursor) Current() token.Token {
	return c.tokens[c.index]
}

// Peek returns the token n positions ahead of the cursor, clamped to the
// last token in the slice (an EOF, by construction).
func (c *Cursor) Peek(n int) token.Token {
	i := c.index + n
	if i >= len(c.tokens) {
		i = len(c.tokens) - 1
	}
	if i < 0 {
		i = 0
	}
	return c.tokens[i]
}

// Advance returns a new Cursor one token further along. The receiver is
// left unmodified.
func (c *Cursor) Advance() *Cursor {
	next := c.index + 1
	if next >= len(c.tokens) {
		next = len(c.tokens) - 1
	}
	return &Cursor{tokens: c.tokens, index: next}
}

// Is reports whether the current token has type t.
func (c *Cursor) Is(t token.TokenType) bool {
	return c.Current().Type == t
}
