package grammar

import (
	"testing"

	"github.com/voliva/go-tsxfront/internal/ast"
	"github.com/voliva/go-tsxfront/internal/combinator"
	"github.com/voliva/go-tsxfront/internal/token"
)

func feedAll(t *testing.T, m combinator.Matcher, toks []token.Token) combinator.Result {
	t.Helper()
	var last combinator.Result
	for _, tok := range toks {
		last = m.Feed(tok)
		if last.Outcome == combinator.Rejected {
			t.Fatalf("unexpected rejection feeding %+v", tok)
		}
	}
	if last.Outcome != combinator.End {
		t.Fatalf("matcher did not reach End, last outcome = %v", last.Outcome)
	}
	return last
}

func TestImportDefaultOnly(t *testing.T) {
	toks := []token.Token{
		token.Keyword("import"), token.Identifier("React"),
		token.Keyword("from"), token.Lit(token.Str("react")),
	}
	r := feedAll(t, NewImportStatement(), toks)
	decl := ReduceImport(r.Value, 1, 1)

	if decl.Default != "React" {
		t.Errorf("Default = %q, want React", decl.Default)
	}
	if decl.Target != "react" {
		t.Errorf("Target = %q, want react", decl.Target)
	}
	if decl.Clause != nil {
		t.Errorf("Clause = %+v, want nil", decl.Clause)
	}
}

func TestImportDefaultAndNamed(t *testing.T) {
	toks := []token.Token{
		token.Keyword("import"), token.Identifier("React"), token.Symbol(","),
		token.Symbol("{"), token.Identifier("useState"), token.Symbol(","),
		token.Identifier("useEffect"), token.Symbol(":"), token.Identifier("fx"),
		token.Symbol("}"), token.Keyword("from"), token.Lit(token.Str("react")),
	}
	r := feedAll(t, NewImportStatement(), toks)
	decl := ReduceImport(r.Value, 1, 1)

	if decl.Default != "React" {
		t.Fatalf("Default = %q, want React", decl.Default)
	}
	if decl.Clause == nil || decl.Clause.Kind != ast.ClauseNamed {
		t.Fatalf("Clause = %+v, want ClauseNamed", decl.Clause)
	}
	want := []ast.ImportSpecifier{{Original: "useState"}, {Original: "useEffect", Alias: "fx"}}
	if len(decl.Clause.Named) != len(want) {
		t.Fatalf("Named = %+v, want %+v", decl.Clause.Named, want)
	}
	for i := range want {
		if decl.Clause.Named[i] != want[i] {
			t.Errorf("Named[%d] = %+v, want %+v", i, decl.Clause.Named[i], want[i])
		}
	}
}

func TestImportEmptyNamed(t *testing.T) {
	toks := []token.Token{
		token.Keyword("import"), token.Symbol("{"), token.Symbol("}"),
		token.Keyword("from"), token.Lit(token.Str("react")),
	}
	r := feedAll(t, NewImportStatement(), toks)
	decl := ReduceImport(r.Value, 1, 1)

	if decl.Default != "" {
		t.Errorf("Default = %q, want empty", decl.Default)
	}
	if decl.Clause == nil || decl.Clause.Kind != ast.ClauseNamed || decl.Clause.Named != nil {
		t.Fatalf("Clause = %+v, want ClauseNamed with no specifiers", decl.Clause)
	}
}

func TestImportNamespace(t *testing.T) {
	toks := []token.Token{
		token.Keyword("import"), token.Symbol("*"), token.Keyword("as"), token.Identifier("React"),
		token.Keyword("from"), token.Lit(token.Str("react")),
	}
	r := feedAll(t, NewImportStatement(), toks)
	decl := ReduceImport(r.Value, 1, 1)

	if decl.Clause == nil || decl.Clause.Kind != ast.ClauseNamespace || decl.Clause.NamespaceName != "React" {
		t.Fatalf("Clause = %+v, want ClauseNamespace(React)", decl.Clause)
	}
}

func TestImportRejectsBadToken(t *testing.T) {
	m := NewImportStatement()
	r := m.Feed(token.Identifier("notimport"))
	if r.Outcome != combinator.Rejected {
		t.Fatalf("outcome = %v, want Rejected", r.Outcome)
	}
}
