package token

// keywords maps reserved-word spellings to their token type. Built once at
// package initialization (Go guarantees package-level var initialization
// happens-before any other goroutine runs), so it is safe to share across
// concurrent scans without further synchronization — the same guarantee
// the teacher's own package-level dispatch tables rely on informally.
var keywords = map[string]TokenType{
	"and":   And,
	"false": False,
	"in":    In,
	"is":    Is,
	"not":   Not,
	"or":    Or,
	"true":  True,
	"when":  When,
	"where": Where,
}

// builtInTypes names the built-in type identifiers recognized after an
// identifier fails keyword lookup.
var builtInTypes = map[string]bool{
	"Bool":    true,
	"Float64": true,
	"Int64":   true,
	"String":  true,
}

// LookupIdentifier classifies a scanned identifier lexeme: a keyword type
// if it matches the keyword table, BuiltInType if it matches the built-in
// type set, or Identifier otherwise.
func LookupIdentifier(lexeme string) TokenType {
	if tt, ok := keywords[lexeme]; ok {
		return tt
	}
	if builtInTypes[lexeme] {
		return BuiltInType
	}
	return Identifier
}
