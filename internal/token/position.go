package token

import "fmt"

// SourcePos is a half-open byte range [Start, End) into a source buffer.
// Tokens and expression-tree nodes carry SourcePos values rather than
// copies of the source text they denote.
type SourcePos struct {
	Start uint32
	End   uint32
}

// Text returns the substring of source denoted by p.
func (p SourcePos) Text(source string) string {
	return source[p.Start:p.End]
}

// Span returns the SourcePos that begins where a begins and ends where b
// ends. It is an error for b to end before a begins.
func Span(a, b SourcePos) (SourcePos, error) {
	if b.End < a.Start {
		return SourcePos{}, fmt.Errorf("token: invalid span %d..%d", a.Start, b.End)
	}
	return SourcePos{Start: a.Start, End: b.End}, nil
}

// String renders p as "start..end", useful in test failure messages.
func (p SourcePos) String() string {
	return fmt.Sprintf("%d..%d", p.Start, p.End)
}
