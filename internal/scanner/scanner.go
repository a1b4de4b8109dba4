// Package scanner turns Lligne source text into a dense token stream.
//
// The scanner is a pure function of its input: Scan borrows the source
// string, never fails, and encodes lexical errors as distinguished token
// types left in the stream rather than returning an error (spec §7).
// Three EOF tokens terminate every scan, giving downstream consumers an
// unconditional two-token lookahead margin past the real end of input.
package scanner

import (
	"fmt"
	"os"
	"unicode"
	"unicode/utf8"

	"github.com/lligne-lang/lligne-go/internal/token"
)

// Outcome is the scanner's output: the borrowed source, the token
// sequence (ending in three EOF tokens), and the newline-offset sequence.
type Outcome struct {
	Source         string
	Tokens         []token.Token
	NewlineOffsets []uint32
}

// Option configures a scan. Options are applied by Scan.
type Option func(*scanner)

// WithTracing enables per-token debug output to stderr as tokens are
// produced. Intended for development use only; off by default.
func WithTracing(trace bool) Option {
	return func(s *scanner) { s.tracing = trace }
}

// Scan tokenizes source and returns the resulting Outcome.
func Scan(source string, opts ...Option) Outcome {
	s := newScanner(source, opts...)

	var tokens []token.Token
	for {
		tok := s.nextToken()
		tokens = append(tokens, tok)
		if s.tracing {
			fmt.Fprintf(os.Stderr, "scan: %s %q\n", tok, tok.Text(source))
		}
		if tok.Type == token.EOF {
			break
		}
	}

	eofOffset := tokens[len(tokens)-1].Offset
	tokens = append(tokens,
		token.New(token.EOF, eofOffset, 0),
		token.New(token.EOF, eofOffset, 0),
	)

	return Outcome{
		Source:         source,
		Tokens:         tokens,
		NewlineOffsets: s.newlineOffsets,
	}
}

// scanner holds the mutable scan state: the source buffer, a byte-offset
// cursor, and two-character lookahead (ch1, ch2), with '\0' (rune zero)
// as the synthetic out-of-input sentinel.
type scanner struct {
	source string

	offset1 int // byte offset where ch1 begins
	ch1     rune
	width1  int
	ch2     rune
	width2  int

	newlineOffsets []uint32
	tracing        bool
}

func newScanner(source string, opts ...Option) *scanner {
	s := &scanner{source: source}
	for _, opt := range opts {
		opt(s)
	}
	s.ch1, s.width1 = s.runeAt(0)
	s.ch2, s.width2 = s.runeAt(s.width1)
	return s
}

// runeAt decodes the rune starting at byte offset off, returning (0, 0)
// past the end of input.
func (s *scanner) runeAt(off int) (rune, int) {
	if off >= len(s.source) {
		return 0, 0
	}
	r, w := utf8.DecodeRuneInString(s.source[off:])
	return r, w
}

// advance slides the two-character lookahead window forward by one rune.
func (s *scanner) advance() {
	s.offset1 += s.width1
	s.ch1, s.width1 = s.ch2, s.width2
	s.ch2, s.width2 = s.runeAt(s.offset1 + s.width1)
}

func isIdentifierStart(r rune) bool {
	switch {
	case r == '_':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= 'a' && r <= 'z':
		return true
	case r >= 0x80:
		return unicode.IsLetter(r)
	default:
		return false
	}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// skipWhitespace consumes Unicode whitespace between tokens, recording the
// byte offset of every newline encountered along the way.
func (s *scanner) skipWhitespace() {
	for unicode.IsSpace(s.ch1) {
		if s.ch1 == '\n' {
			s.newlineOffsets = append(s.newlineOffsets, uint32(s.offset1))
		}
		s.advance()
	}
}

// single emits a one-character punctuation token of the given type.
func (s *scanner) single(tt token.TokenType, start int) token.Token {
	s.advance()
	return token.New(tt, uint32(start), uint16(s.offset1-start))
}

func (s *scanner) nextToken() token.Token {
	s.skipWhitespace()
	start := s.offset1

	switch {
	case s.ch1 == 0:
		return token.New(token.EOF, uint32(start), 0)
	case isIdentifierStart(s.ch1):
		return s.scanIdentifier(start)
	case isDigit(s.ch1):
		return s.scanNumber(start)
	}

	switch s.ch1 {
	case '*':
		return s.single(token.Asterisk, start)
	case ':':
		return s.single(token.Colon, start)
	case ',':
		return s.single(token.Comma, start)
	case '+':
		return s.single(token.Plus, start)
	case '{':
		return s.single(token.LeftBrace, start)
	case '[':
		return s.single(token.LeftBracket, start)
	case '(':
		return s.single(token.LeftParenthesis, start)
	case '}':
		return s.single(token.RightBrace, start)
	case ']':
		return s.single(token.RightBracket, start)
	case ')':
		return s.single(token.RightParenthesis, start)
	case ';':
		return s.single(token.Semicolon, start)
	case '|':
		return s.single(token.Pipe, start)

	case '&':
		s.advance()
		if s.ch1 == '&' {
			s.advance()
			return token.New(token.AmpersandAmpersand, uint32(start), uint16(s.offset1-start))
		}
		return token.New(token.Ampersand, uint32(start), uint16(s.offset1-start))

	case '-':
		s.advance()
		if s.ch1 == '>' {
			s.advance()
			return token.New(token.RightArrow, uint32(start), uint16(s.offset1-start))
		}
		return token.New(token.Dash, uint32(start), uint16(s.offset1-start))

	case '.':
		s.advance()
		if s.ch1 == '.' {
			s.advance()
			if s.ch1 == '.' {
				s.advance()
				return token.New(token.DotDotDot, uint32(start), uint16(s.offset1-start))
			}
			return token.New(token.DotDot, uint32(start), uint16(s.offset1-start))
		}
		return token.New(token.Dot, uint32(start), uint16(s.offset1-start))

	case '=':
		s.advance()
		switch s.ch1 {
		case '=':
			s.advance()
			if s.ch1 == '=' {
				s.advance()
				return token.New(token.EqualsEqualsEquals, uint32(start), uint16(s.offset1-start))
			}
			return token.New(token.EqualsEquals, uint32(start), uint16(s.offset1-start))
		case '~':
			s.advance()
			return token.New(token.EqualsTilde, uint32(start), uint16(s.offset1-start))
		default:
			return token.New(token.Equals, uint32(start), uint16(s.offset1-start))
		}

	case '!':
		s.advance()
		switch s.ch1 {
		case '=':
			s.advance()
			return token.New(token.ExclamationEquals, uint32(start), uint16(s.offset1-start))
		case '~':
			s.advance()
			return token.New(token.ExclamationTilde, uint32(start), uint16(s.offset1-start))
		default:
			return token.New(token.Exclamation, uint32(start), uint16(s.offset1-start))
		}

	case '<':
		s.advance()
		if s.ch1 == '=' {
			s.advance()
			return token.New(token.LessThanOrEquals, uint32(start), uint16(s.offset1-start))
		}
		return token.New(token.LessThan, uint32(start), uint16(s.offset1-start))

	case '>':
		s.advance()
		if s.ch1 == '=' {
			s.advance()
			return token.New(token.GreaterThanOrEquals, uint32(start), uint16(s.offset1-start))
		}
		return token.New(token.GreaterThan, uint32(start), uint16(s.offset1-start))

	case '?':
		s.advance()
		if s.ch1 == ':' {
			s.advance()
			return token.New(token.QuestionColon, uint32(start), uint16(s.offset1-start))
		}
		return token.New(token.Question, uint32(start), uint16(s.offset1-start))

	case '/':
		s.advance()
		if s.ch1 == '/' {
			return s.scanDocumentation(start)
		}
		return token.New(token.Slash, uint32(start), uint16(s.offset1-start))

	case '"':
		return s.scanQuoted(start, '"', token.DoubleQuotedString, token.UnclosedDoubleQuotedString)
	case '\'':
		return s.scanQuoted(start, '\'', token.SingleQuotedString, token.UnclosedSingleQuotedString)
	case '`':
		return s.scanBackTicked(start)

	default:
		return s.scanUnrecognized(start)
	}
}

// scanIdentifier reads an identifier/keyword/built-in-type lexeme. The
// continuation predicate admits identifier-start or digit, and admits an
// interior hyphen only when the character following it is itself
// identifier-start or digit — so "x-y" is one identifier but "x-" is not.
func (s *scanner) scanIdentifier(start int) token.Token {
	s.advance() // consume the identifier-start character
	for {
		switch {
		case isIdentifierStart(s.ch1) || isDigit(s.ch1):
			s.advance()
		case s.ch1 == '-' && (isIdentifierStart(s.ch2) || isDigit(s.ch2)):
			s.advance()
		default:
			lexeme := s.source[start:s.offset1]
			return token.New(token.LookupIdentifier(lexeme), uint32(start), uint16(s.offset1-start))
		}
	}
}

// scanNumber reads an integer or floating-point literal. Exponents are not
// recognized (spec §9).
func (s *scanner) scanNumber(start int) token.Token {
	for isDigit(s.ch1) {
		s.advance()
	}

	isFloat := false
	if s.ch1 == '.' && isDigit(s.ch2) {
		isFloat = true
		s.advance()
		for isDigit(s.ch1) {
			s.advance()
		}
	}

	tt := token.IntegerLiteral
	if isFloat {
		tt = token.FloatingPointLiteral
	}
	return token.New(tt, uint32(start), uint16(s.offset1-start))
}

// scanQuoted reads a single-quoted or double-quoted string literal.
// Backslash escapes exactly one following character (the escape sequence
// itself is left uninterpreted for a later stage). A newline inside the
// string closes the token as unclosed without consuming the newline.
func (s *scanner) scanQuoted(start int, quote rune, closed, unclosed token.TokenType) token.Token {
	s.advance() // consume opening quote
	for {
		switch s.ch1 {
		case quote:
			s.advance()
			return token.New(closed, uint32(start), uint16(s.offset1-start))
		case '\n', 0:
			return token.New(unclosed, uint32(start), uint16(s.offset1-start))
		case '\\':
			s.advance()
			if s.ch1 == '\n' {
				s.newlineOffsets = append(s.newlineOffsets, uint32(s.offset1))
			}
			if s.ch1 != 0 {
				s.advance()
			}
		default:
			s.advance()
		}
	}
}

// scanBackTicked reads a back-ticked string: the current line from its
// first back-tick to end of line, extended onto each subsequent line whose
// first non-whitespace character is also a back-tick. The emitted token
// spans from the first back-tick through the end of the last such line.
func (s *scanner) scanBackTicked(start int) token.Token {
	lastLineEnd := start
	for {
		s.advance() // consume '`'
		for s.ch1 != '\n' && s.ch1 != 0 {
			s.advance()
		}
		lastLineEnd = s.offset1

		next, ok := s.peekContinuationLine('`')
		if !ok {
			break
		}
		s.advanceTo(next)
	}
	return token.New(token.BackTickedString, uint32(start), uint16(lastLineEnd-start))
}

// scanDocumentation reads a line-documentation comment ("//" to end of
// line), extended onto each subsequent line whose first non-whitespace
// text is also "//".
func (s *scanner) scanDocumentation(start int) token.Token {
	lastLineEnd := start
	for {
		s.advance() // consume second '/' of this line's opener
		for s.ch1 != '\n' && s.ch1 != 0 {
			s.advance()
		}
		lastLineEnd = s.offset1

		next, ok := s.peekDocContinuationLine()
		if !ok {
			break
		}
		s.advanceTo(next)
		s.advance() // consume first '/' of the continuation line
	}
	return token.New(token.Documentation, uint32(start), uint16(lastLineEnd-start))
}

// peekContinuationLine inspects, without mutating scanner state, whether
// the line following the current cursor position begins (after a single
// newline and leading horizontal whitespace) with marker. It returns the
// byte offset of marker on that line and true if so.
func (s *scanner) peekContinuationLine(marker byte) (int, bool) {
	p := s.offset1
	if p < len(s.source) && s.source[p] == '\n' {
		p++
	}
	for p < len(s.source) && isHorizontalSpace(s.source[p]) {
		p++
	}
	if p >= len(s.source) || s.source[p] != marker {
		return 0, false
	}
	return p, true
}

// peekDocContinuationLine is peekContinuationLine specialized for the
// two-byte "//" marker.
func (s *scanner) peekDocContinuationLine() (int, bool) {
	p := s.offset1
	if p < len(s.source) && s.source[p] == '\n' {
		p++
	}
	for p < len(s.source) && isHorizontalSpace(s.source[p]) {
		p++
	}
	if p+1 >= len(s.source) || s.source[p] != '/' || s.source[p+1] != '/' {
		return 0, false
	}
	return p, true
}

func isHorizontalSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r'
}

// advanceTo advances the real scanner cursor (recording any newline it
// passes over) up to the given byte offset, previously located via a
// peek*ContinuationLine call.
func (s *scanner) advanceTo(target int) {
	for s.offset1 < target {
		if s.ch1 == '\n' {
			s.newlineOffsets = append(s.newlineOffsets, uint32(s.offset1))
		}
		s.advance()
	}
}

// scanUnrecognized emits UnrecognizedChar spanning exactly the byte width
// of the offending codepoint.
func (s *scanner) scanUnrecognized(start int) token.Token {
	width := s.width1
	s.advance()
	return token.New(token.UnrecognizedChar, uint32(start), uint16(width))
}
