package grammar

import (
	"github.com/voliva/go-tsxfront/internal/ast"
	"github.com/voliva/go-tsxfront/internal/combinator"
)

// NewImportUnit builds the `import_unit` grammar: Identifier, optionally
// followed by `: Identifier` for a renamed specifier.
func NewImportUnit() *combinator.Sequence {
	return combinator.NewSequence(
		combinator.NewTerminal(combinator.IsIdentifier()),
		combinator.NewOptional(combinator.NewSequence(
			combinator.NewTerminal(combinator.IsSymbol(":")),
			combinator.NewTerminal(combinator.IsIdentifier()),
		)),
	)
}

// NewNamedImports builds the `named_imports` grammar:
// `{ unit (, unit)* }`, the list itself optional (an empty `{}` is valid).
func NewNamedImports() *combinator.Sequence {
	return combinator.NewSequence(
		combinator.NewTerminal(combinator.IsSymbol("{")),
		combinator.NewOptional(combinator.NewSequence(
			NewImportUnit(),
			combinator.NewOptional(combinator.NewLoop(func() combinator.Matcher {
				return combinator.NewSequence(
					combinator.NewTerminal(combinator.IsSymbol(",")),
					NewImportUnit(),
				)
			})),
		)),
		combinator.NewTerminal(combinator.IsSymbol("}")),
	)
}

// NewImportStatement builds the top-level `import_statement` grammar.
func NewImportStatement() *combinator.Sequence {
	return combinator.NewSequence(
		combinator.NewTerminal(combinator.IsKeyword("import")),
		combinator.NewOneOf(
			combinator.NewSequence(
				combinator.NewTerminal(combinator.IsIdentifier()),
				combinator.NewOptional(combinator.NewSequence(
					combinator.NewTerminal(combinator.IsSymbol(",")),
					NewNamedImports(),
				)),
			),
			NewNamedImports(),
			combinator.NewSequence(
				combinator.NewTerminal(combinator.IsSymbol("*")),
				combinator.NewTerminal(combinator.IsKeyword("as")),
				combinator.NewTerminal(combinator.IsIdentifier()),
			),
		),
		combinator.NewTerminal(combinator.IsKeyword("from")),
		combinator.NewTerminal(combinator.IsStringLiteral()),
	)
}

func reduceImportUnit(v combinator.Value) ast.ImportSpecifier {
	vec := v.Vector
	spec := ast.ImportSpecifier{Original: vec[0].Token.Text}
	if vec[1].Option != nil {
		aliasVec := vec[1].Option.Vector
		spec.Alias = aliasVec[1].Token.Text
	}
	return spec
}

func reduceNamedImports(v combinator.Value) []ast.ImportSpecifier {
	vec := v.Vector // [ "{", optBody, "}" ]
	opt := vec[1]
	if opt.Option == nil {
		return nil
	}
	body := opt.Option.Vector // [ firstUnit, optLoop ]
	specs := []ast.ImportSpecifier{reduceImportUnit(body[0])}
	loopOpt := body[1]
	if loopOpt.Option != nil {
		for _, item := range loopOpt.Option.Vector {
			// item is [ ",", unit ]
			specs = append(specs, reduceImportUnit(item.Vector[1]))
		}
	}
	return specs
}

// ReduceImport lifts a completed import_statement result tree into an
// ast.ImportDeclaration. It is total over every tree NewImportStatement
// can produce.
func ReduceImport(v combinator.Value, line, col int) *ast.ImportDeclaration {
	vec := v.Vector // [ "import", branch, "from", target ]
	decl := &ast.ImportDeclaration{Line: line, Col: col}

	branch := vec[1]
	switch branch.Branch {
	case 0:
		alt := branch.BranchOf.Vector // [ ident, optNamed ]
		decl.Default = alt[0].Token.Text
		if opt := alt[1]; opt.Option != nil {
			namedSeq := opt.Option.Vector // [ ",", namedImports ]
			decl.Clause = &ast.ImportClause{
				Kind:  ast.ClauseNamed,
				Named: reduceNamedImports(namedSeq[1]),
			}
		}
	case 1:
		decl.Clause = &ast.ImportClause{
			Kind:  ast.ClauseNamed,
			Named: reduceNamedImports(*branch.BranchOf),
		}
	case 2:
		alt := branch.BranchOf.Vector // [ "*", "as", ident ]
		decl.Clause = &ast.ImportClause{
			Kind:          ast.ClauseNamespace,
			NamespaceName: alt[2].Token.Text,
		}
	}

	decl.Target = vec[3].Token.Literal.Str
	return decl
}
