package combinator

import "github.com/voliva/go-tsxfront/internal/token"

// Predicate decides whether a token satisfies a Terminal.
type Predicate func(t token.Token) bool

// Terminal matches exactly one token against a predicate. It is the only
// matcher that ever consumes a token directly; every other matcher
// delegates down to terminals.
type Terminal struct {
	pred Predicate
	done bool
}

// NewTerminal builds a Terminal around the given predicate.
func NewTerminal(pred Predicate) *Terminal {
	return &Terminal{pred: pred}
}

// Feed implements Matcher.
func (m *Terminal) Feed(t token.Token) Result {
	if m.done {
		return rejected()
	}
	m.done = true
	if m.pred(t) {
		return end(TokenValue(t))
	}
	return rejected()
}

// Reset implements Matcher.
func (m *Terminal) Reset() { m.done = false }

// IsKeyword builds a Predicate matching a keyword token with the given text.
func IsKeyword(text string) Predicate {
	return func(t token.Token) bool { return t.Is(token.KindKeyword, text) }
}

// IsSymbol builds a Predicate matching a symbol token with the given text.
func IsSymbol(text string) Predicate {
	return func(t token.Token) bool { return t.Is(token.KindSymbol, text) }
}

// IsIdentifier builds a Predicate matching any identifier token.
func IsIdentifier() Predicate {
	return func(t token.Token) bool { return t.Kind == token.KindIdentifier }
}

// IsStringLiteral builds a Predicate matching any string-literal token.
func IsStringLiteral() Predicate {
	return func(t token.Token) bool {
		return t.Kind == token.KindLiteral && t.Literal.Kind == token.LiteralString
	}
}
