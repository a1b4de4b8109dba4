// Package docfilter lifts raw line-documentation tokens into the synthetic
// leading/trailing documentation tokens the parser understands, per spec
// §4.2. It has no direct counterpart in the teacher: DWScript doesn't
// distinguish leading/trailing documentation at the token level. The stage
// is built in the teacher's own manner nonetheless — a pure second pass
// over a token slice with one-token lookahead, emitting into a freshly
// allocated slice, mirroring the immutable-sequence discipline the
// teacher's parser cursor uses for its own token buffer.
package docfilter

import (
	"strings"

	"github.com/lligne-lang/lligne-go/internal/scanner"
	"github.com/lligne-lang/lligne-go/internal/token"
)

// Filter transforms a scanner Outcome into one with leading/trailing
// documentation synthesized, per the four rules of spec §4.2. It is total:
// every input produces an output, with no error case. Filter never
// mutates o; it returns a new Outcome sharing o's Source and
// NewlineOffsets.
func Filter(o scanner.Outcome) scanner.Outcome {
	tokens := o.Tokens
	out := make([]token.Token, 0, len(tokens)+4)

	i := 0
	for i < len(tokens)-1 {
		cur := tokens[i]

		// Rule 1: a Documentation token reached directly by the cursor (not
		// as another token's lookahead) is bare — nothing non-doc precedes
		// it on its line, since any such predecessor would already have
		// been consumed together with it by rule 2 or 3.
		if cur.Type == token.Documentation {
			out = append(out, leadingDoc(cur), synthDoc(cur))
			i++
			continue
		}

		next := tokens[i+1]
		if next.Type == token.Documentation {
			if sameLine(o.Source, cur, next) {
				if cur.Type == token.Comma || cur.Type == token.Semicolon {
					// Attach the trailing doc to the preceding element
					// before the separator.
					out = append(out, synthDoc(next), trailingDoc(next), cur)
				} else {
					out = append(out, cur, synthDoc(next), trailingDoc(next))
				}
			} else {
				// Documentation on its own, later line becomes leading
				// documentation for whatever follows it.
				out = append(out, cur, leadingDoc(next), synthDoc(next))
			}
			i += 2
			continue
		}

		out = append(out, cur)
		i++
	}
	out = append(out, tokens[i:]...)

	return scanner.Outcome{
		Source:         o.Source,
		Tokens:         out,
		NewlineOffsets: o.NewlineOffsets,
	}
}

// sameLine reports whether a and b's start offsets fall on the same source
// line, decided by scanning the substring between them for a newline.
func sameLine(source string, a, b token.Token) bool {
	return !strings.ContainsRune(source[a.Offset:b.Offset], '\n')
}

func leadingDoc(doc token.Token) token.Token {
	return token.New(token.LeadingDocumentation, doc.Offset, doc.Length)
}

func trailingDoc(doc token.Token) token.Token {
	return token.New(token.TrailingDocumentation, doc.Offset, doc.Length)
}

func synthDoc(doc token.Token) token.Token {
	return token.New(token.SynthDocument, doc.Offset, 0)
}
