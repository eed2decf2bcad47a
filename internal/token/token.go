// Package token defines the lexical token model shared by the lexer and
// the combinator grammars: a tagged sum of token kinds plus the literal
// variants they may carry, and the fixed symbol/keyword tables the lexer
// matches against.
package token

import "fmt"

// Kind identifies which variant of Token a value holds.
type Kind int

const (
	// KindIdentifier holds a bare identifier lexeme.
	KindIdentifier Kind = iota
	// KindKeyword holds a lexeme that matched an entry in KnownKeywords.
	KindKeyword
	// KindSymbol holds a punctuator matched against ValidSymbols.
	KindSymbol
	// KindLiteral holds a Literal value.
	KindLiteral
)

// Token is a tagged sum: Identifier(name) | Keyword(name) | Symbol(text) |
// Literal(Literal). Tokens are value-compared structurally, so Token and
// Literal are kept comparable with ==.
type Token struct {
	Kind    Kind
	Text    string // set for KindIdentifier, KindKeyword, KindSymbol
	Literal Literal
}

// Identifier constructs an identifier token.
func Identifier(name string) Token { return Token{Kind: KindIdentifier, Text: name} }

// Keyword constructs a keyword token.
func Keyword(name string) Token { return Token{Kind: KindKeyword, Text: name} }

// Symbol constructs a symbol token.
func Symbol(text string) Token { return Token{Kind: KindSymbol, Text: text} }

// Lit constructs a literal token.
func Lit(l Literal) Token { return Token{Kind: KindLiteral, Literal: l} }

// Is reports whether t is a symbol/keyword/identifier token with the given text.
func (t Token) Is(kind Kind, text string) bool {
	return t.Kind == kind && t.Text == text
}

// String renders the token the way diagnostics expect to see it.
func (t Token) String() string {
	switch t.Kind {
	case KindIdentifier:
		return fmt.Sprintf("identifier %q", t.Text)
	case KindKeyword:
		return fmt.Sprintf("keyword %q", t.Text)
	case KindSymbol:
		return fmt.Sprintf("symbol %q", t.Text)
	case KindLiteral:
		return t.Literal.String()
	default:
		return "<invalid token>"
	}
}

// LiteralKind identifies which variant of Literal a value holds. Only
// LiteralInteger and LiteralString are produced by the current lexer; the
// remaining variants exist so a future lexer extension (template strings,
// regex literals, decimals, bigints) has a place to land without changing
// the Token shape.
type LiteralKind int

const (
	LiteralInteger LiteralKind = iota
	LiteralString
	LiteralBigInt
	LiteralBoolean
	LiteralDecimal
	LiteralRegex
	LiteralUndefined
	LiteralNull
)

// Literal is the payload of a KindLiteral token.
type Literal struct {
	Kind       LiteralKind
	Integer    int32
	Str        string
	BigIntText string
	Boolean    bool
	Decimal    float64
	RegexBody  string
	RegexFlags string
}

// Int constructs an integer literal.
func Int(v int32) Literal { return Literal{Kind: LiteralInteger, Integer: v} }

// Str constructs a string literal.
func Str(s string) Literal { return Literal{Kind: LiteralString, Str: s} }

// String renders the literal for diagnostics.
func (l Literal) String() string {
	switch l.Kind {
	case LiteralInteger:
		return fmt.Sprintf("integer %d", l.Integer)
	case LiteralString:
		return fmt.Sprintf("string %q", l.Str)
	case LiteralBigInt:
		return fmt.Sprintf("bigint %s", l.BigIntText)
	case LiteralBoolean:
		return fmt.Sprintf("boolean %t", l.Boolean)
	case LiteralDecimal:
		return fmt.Sprintf("decimal %v", l.Decimal)
	case LiteralRegex:
		return fmt.Sprintf("regex /%s/%s", l.RegexBody, l.RegexFlags)
	case LiteralUndefined:
		return "undefined"
	case LiteralNull:
		return "null"
	default:
		return "<invalid literal>"
	}
}

// ValidSymbols enumerates every recognised punctuator, longest first within
// a shared prefix so maximal-munch lookups can test membership directly.
// Order matters only for readability here; the lexer does its own
// longest-prefix search rather than relying on slice order.
var ValidSymbols = []string{
	// three-character
	"===", "!==",
	// two-character
	"==", "=>", "<=", ">=", "?.", "??", "&&", "||", "</", "/>", "${", "//", "/*", "*/", "<>", "++", "--", "+=", "-=", "*=", "/=",
	// one-character
	"=", "<", ">", "+", "-", "*", "/", "%", "!", "?", ":", ";", ",", ".",
	"{", "}", "(", ")", "[", "]", "&", "|", "^", "~", "`",
}

// validSymbolSet is derived once for O(1) membership tests.
var validSymbolSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(ValidSymbols))
	for _, s := range ValidSymbols {
		m[s] = struct{}{}
	}
	return m
}()

// IsValidSymbol reports whether text is a member of ValidSymbols.
func IsValidSymbol(text string) bool {
	_, ok := validSymbolSet[text]
	return ok
}

// HasSymbolPrefix reports whether some valid symbol starts with text, used
// by the lexer's maximal-munch loop to decide whether extending the current
// candidate by one more character could still succeed.
func HasSymbolPrefix(text string) bool {
	for s := range validSymbolSet {
		if len(s) >= len(text) && s[:len(text)] == text {
			return true
		}
	}
	return false
}

// KnownKeywords enumerates reserved words. An identifier-shaped lexeme that
// appears here is promoted from Identifier to Keyword by the lexer.
var KnownKeywords = []string{
	"import", "from", "as", "function", "return", "while", "if", "do",
	"typeof", "delete", "switch", "break", "continue", "export", "const",
	"let", "var", "interface", "extends",
}

var knownKeywordSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(KnownKeywords))
	for _, k := range KnownKeywords {
		m[k] = struct{}{}
	}
	return m
}()

// IsKeyword reports whether text is a member of KnownKeywords.
func IsKeyword(text string) bool {
	_, ok := knownKeywordSet[text]
	return ok
}
