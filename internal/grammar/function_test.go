package grammar

import (
	"testing"

	"github.com/voliva/go-tsxfront/internal/combinator"
	"github.com/voliva/go-tsxfront/internal/token"
)

func TestFunctionNoParamsNoGenerics(t *testing.T) {
	ext := StubExternal{}
	toks := []token.Token{
		token.Keyword("function"), token.Identifier("run"),
		token.Symbol("("), token.Symbol(")"),
		token.Symbol("{"), token.Symbol("}"),
	}
	r := feedAll(t, NewFunctionDeclaration(ext), toks)
	decl := ReduceFunction(r.Value, 1, 1)

	if decl.Identifier != "run" {
		t.Fatalf("Identifier = %q, want run", decl.Identifier)
	}
	if len(decl.Parameters) != 0 {
		t.Fatalf("Parameters = %+v, want empty", decl.Parameters)
	}
	if len(decl.Generics) != 0 {
		t.Fatalf("Generics = %+v, want empty", decl.Generics)
	}
}

func TestFunctionWithGenericsAndParams(t *testing.T) {
	ext := StubExternal{}
	toks := []token.Token{
		token.Keyword("function"), token.Identifier("map"),
		token.Symbol("<"), token.Identifier("T"), token.Keyword("extends"), token.Identifier("U"), token.Symbol(","),
		token.Identifier("V"), token.Symbol(">"),
		token.Symbol("("), token.Identifier("input"), token.Symbol(":"), token.Identifier("T"), token.Symbol(","),
		token.Identifier("fallback"), token.Symbol("?"), token.Symbol(":"), token.Identifier("T"),
		token.Symbol("="), token.Identifier("defaultValue"), token.Symbol(")"),
		token.Symbol("{"), token.Symbol("}"),
	}
	r := feedAll(t, NewFunctionDeclaration(ext), toks)
	decl := ReduceFunction(r.Value, 1, 1)

	if decl.Identifier != "map" {
		t.Fatalf("Identifier = %q, want map", decl.Identifier)
	}
	if len(decl.Generics) != 2 || decl.Generics[0].Identifier != "T" || decl.Generics[0].Extends != "U" || decl.Generics[1].Identifier != "V" {
		t.Fatalf("Generics = %+v", decl.Generics)
	}
	if len(decl.Parameters) != 2 {
		t.Fatalf("Parameters = %+v, want 2", decl.Parameters)
	}
	p0, p1 := decl.Parameters[0], decl.Parameters[1]
	if p0.Identifier != "input" || p0.Definition != "T" || p0.Optional {
		t.Fatalf("Parameters[0] = %+v", p0)
	}
	if p1.Identifier != "fallback" || !p1.Optional || p1.Definition != "T" || p1.Initializer != "defaultValue" {
		t.Fatalf("Parameters[1] = %+v", p1)
	}
}

func TestFunctionRejectsWrongBraceAfterParams(t *testing.T) {
	ext := StubExternal{}
	m := NewFunctionDeclaration(ext)
	toks := []token.Token{
		token.Keyword("function"), token.Identifier("run"), token.Symbol("("), token.Symbol(")"),
	}
	for _, tok := range toks {
		r := m.Feed(tok)
		if r.Outcome == combinator.Rejected {
			t.Fatalf("unexpected rejection feeding %+v", tok)
		}
	}
	r := m.Feed(token.Identifier("oops"))
	if r.Outcome != combinator.Rejected {
		t.Fatalf("outcome = %v, want Rejected", r.Outcome)
	}
}
