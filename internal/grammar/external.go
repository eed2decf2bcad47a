package grammar

import (
	"github.com/voliva/go-tsxfront/internal/combinator"
)

// External supplies the matchers for two collaborators deliberately left
// out of this grammar's scope: type annotations (`type_def`) and
// expressions (`expr`). The grammars below depend only on this interface
// so a real type/expr parser can be substituted without touching
// import_statement or function_declaration.
type External interface {
	TypeDef() combinator.Matcher
	Expr() combinator.Matcher
}

// StubExternal stands in for a real type/expression parser: both
// collaborators are treated as a single identifier.
type StubExternal struct{}

// TypeDef implements External.
func (StubExternal) TypeDef() combinator.Matcher {
	return combinator.NewTerminal(combinator.IsIdentifier())
}

// Expr implements External.
func (StubExternal) Expr() combinator.Matcher {
	return combinator.NewTerminal(combinator.IsIdentifier())
}
