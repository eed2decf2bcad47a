package lexer

import (
	"testing"

	"github.com/voliva/go-tsxfront/internal/token"
)

func collect(t *testing.T, input string) []token.Token {
	t.Helper()
	l := New(input)
	var toks []token.Token
	for {
		lt, ok := l.Next()
		if !ok {
			break
		}
		if lt.IsError() {
			t.Fatalf("unexpected lex error at %d:%d: %s", lt.Line, lt.Col, lt.Err)
		}
		toks = append(toks, lt.Token)
	}
	return toks
}

func TestIdentifierVsKeyword(t *testing.T) {
	toks := collect(t, "afunction function functiona")
	want := []token.Token{
		token.Identifier("afunction"),
		token.Keyword("function"),
		token.Identifier("functiona"),
	}
	assertTokens(t, toks, want)
}

func TestFakeJSXGeneric(t *testing.T) {
	toks := collect(t, "var fn = <T extends any>() => void 0")
	// "void 0" lexes as two tokens: identifier "void" (not a keyword here,
	// since KnownKeywords doesn't list "void") and an integer literal 0.
	want := []token.Token{
		token.Keyword("var"), token.Identifier("fn"), token.Symbol("="),
		token.Symbol("<"), token.Identifier("T"), token.Keyword("extends"), token.Identifier("any"),
		token.Symbol(">"), token.Symbol("("), token.Symbol(")"), token.Symbol("=>"),
		token.Identifier("void"), token.Lit(token.Int(0)),
	}
	assertTokens(t, toks, want)
}

func TestRealJSX(t *testing.T) {
	toks := collect(t, `let fn = <T>() => void 0</T>`)
	want := []token.Token{
		token.Keyword("let"), token.Identifier("fn"), token.Symbol("="),
		token.Symbol("<"), token.Identifier("T"), token.Symbol(">"),
		token.Lit(token.Str("() => void 0")),
		token.Symbol("</"), token.Identifier("T"), token.Symbol(">"),
	}
	assertTokens(t, toks, want)
}

func TestFragment(t *testing.T) {
	toks := collect(t, "<>body {child}</> === element")
	want := []token.Token{
		token.Symbol("<>"), token.Lit(token.Str("body ")), token.Symbol("{"),
		token.Identifier("child"), token.Symbol("}"), token.Symbol("</>"),
		token.Symbol("==="), token.Identifier("element"),
	}
	assertTokens(t, toks, want)
}

func TestBareComparisonNeverPushesJSX(t *testing.T) {
	toks := collect(t, "a < b")
	want := []token.Token{
		token.Identifier("a"), token.Symbol("<"), token.Identifier("b"),
	}
	assertTokens(t, toks, want)
}

func TestGenericArgumentListNotJSX(t *testing.T) {
	// A generic type argument list must not be mistaken for JSX: '<' then
	// the identifier "string" reach TransitionSeenLtIdent, and the ',' that
	// follows resets the transition to None without pushing a JSX frame.
	toks := collect(t, "let m: Map<string, number>")
	want := []token.Token{
		token.Keyword("let"), token.Identifier("m"), token.Symbol(":"),
		token.Identifier("Map"), token.Symbol("<"), token.Identifier("string"),
		token.Symbol(","), token.Identifier("number"), token.Symbol(">"),
	}
	assertTokens(t, toks, want)
}

func TestMultiLineJSXChildren(t *testing.T) {
	toks := collect(t, "<>line one\nline two\n{name}</>")
	want := []token.Token{
		token.Symbol("<>"), token.Lit(token.Str("line one\nline two\n")),
		token.Symbol("{"), token.Identifier("name"), token.Symbol("}"),
		token.Symbol("</>"),
	}
	assertTokens(t, toks, want)
}

func TestMaxStackDepthProducesLexError(t *testing.T) {
	l := New("<Elm>{<Elm>text</Elm>}</Elm>", WithMaxStackDepth(2))
	var gotErr bool
	for {
		lt, ok := l.Next()
		if !ok {
			break
		}
		if lt.IsError() {
			gotErr = true
			break
		}
	}
	if !gotErr {
		t.Fatalf("expected a lex error once nesting exceeds the configured depth")
	}
}

func assertTokens(t *testing.T, got, want []token.Token) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("token count mismatch: got %d, want %d\ngot:  %+v\nwant: %+v", len(got), len(want), got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}
