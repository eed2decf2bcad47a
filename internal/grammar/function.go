package grammar

import (
	"github.com/voliva/go-tsxfront/internal/ast"
	"github.com/voliva/go-tsxfront/internal/combinator"
)

// NewFunctionGenerics builds `function_generics`: `< Identifier
// (extends type_def)? ,? (...)* >`. Unlike function_parameters, the inner
// Loop is not wrapped in an extra Optional — writing `<` at all commits to
// at least one type parameter, matching real TSX (`f<>()` is not valid
// syntax).
func NewFunctionGenerics(ext External) *combinator.Sequence {
	return combinator.NewSequence(
		combinator.NewTerminal(combinator.IsSymbol("<")),
		combinator.NewLoop(func() combinator.Matcher {
			return combinator.NewSequence(
				combinator.NewTerminal(combinator.IsIdentifier()),
				combinator.NewOptional(combinator.NewSequence(
					combinator.NewTerminal(combinator.IsKeyword("extends")),
					ext.TypeDef(),
				)),
				combinator.NewOptional(combinator.NewTerminal(combinator.IsSymbol(","))),
			)
		}),
		combinator.NewTerminal(combinator.IsSymbol(">")),
	)
}

// NewFunctionParameters builds `function_parameters`: `( Identifier ?
// (: type_def)? (= expr)? ,? (...)* )`. A bare `()` is extremely common, so
// — per the Loop-output-at-zero-iterations design note — the Loop here is
// wrapped in an Optional to allow zero parameters, rather than left bare.
func NewFunctionParameters(ext External) *combinator.Sequence {
	return combinator.NewSequence(
		combinator.NewTerminal(combinator.IsSymbol("(")),
		combinator.NewOptional(combinator.NewLoop(func() combinator.Matcher {
			return combinator.NewSequence(
				combinator.NewTerminal(combinator.IsIdentifier()),
				combinator.NewOptional(combinator.NewTerminal(combinator.IsSymbol("?"))),
				combinator.NewOptional(combinator.NewSequence(
					combinator.NewTerminal(combinator.IsSymbol(":")),
					ext.TypeDef(),
				)),
				combinator.NewOptional(combinator.NewSequence(
					combinator.NewTerminal(combinator.IsSymbol("=")),
					ext.Expr(),
				)),
				combinator.NewOptional(combinator.NewTerminal(combinator.IsSymbol(","))),
			)
		})),
		combinator.NewTerminal(combinator.IsSymbol(")")),
	)
}

// NewFunctionDeclaration builds the top-level `function_declaration`
// grammar. The trailing `{ }` pair is a placeholder for the body, which
// this front-end does not parse.
func NewFunctionDeclaration(ext External) *combinator.Sequence {
	return combinator.NewSequence(
		combinator.NewTerminal(combinator.IsKeyword("function")),
		combinator.NewTerminal(combinator.IsIdentifier()),
		combinator.NewOptional(NewFunctionGenerics(ext)),
		NewFunctionParameters(ext),
		combinator.NewTerminal(combinator.IsSymbol("{")),
		combinator.NewTerminal(combinator.IsSymbol("}")),
	)
}

// ReduceFunction lifts a completed function_declaration result tree into
// an ast.FunctionDeclaration. It is total over every tree
// NewFunctionDeclaration can produce.
func ReduceFunction(v combinator.Value, line, col int) *ast.FunctionDeclaration {
	vec := v.Vector // [ "function", ident, optGenerics, params, "{", "}" ]
	decl := &ast.FunctionDeclaration{Line: line, Col: col}
	decl.Identifier = vec[1].Token.Text

	if genOpt := vec[2]; genOpt.Option != nil {
		genSeq := genOpt.Option.Vector // [ "<", loopVec, ">" ]
		for _, item := range genSeq[1].Vector {
			iv := item.Vector // [ ident, optExtends, optComma ]
			gp := ast.GenericParam{Identifier: iv[0].Token.Text}
			if extOpt := iv[1]; extOpt.Option != nil {
				extVec := extOpt.Option.Vector // [ "extends", typeDef ]
				gp.Extends = extVec[1].Token.Text
			}
			decl.Generics = append(decl.Generics, gp)
		}
	}

	paramsSeq := vec[3].Vector // [ "(", optLoopVec, ")" ]
	if loopOpt := paramsSeq[1]; loopOpt.Option != nil {
		for _, item := range loopOpt.Option.Vector {
			iv := item.Vector // [ ident, optQ, optColon, optEq, optComma ]
			p := ast.Parameter{Identifier: iv[0].Token.Text}
			if iv[1].Option != nil {
				p.Optional = true
			}
			if colOpt := iv[2]; colOpt.Option != nil {
				colVec := colOpt.Option.Vector // [ ":", typeDef ]
				p.Definition = colVec[1].Token.Text
			}
			if eqOpt := iv[3]; eqOpt.Option != nil {
				eqVec := eqOpt.Option.Vector // [ "=", expr ]
				p.Initializer = eqVec[1].Token.Text
			}
			decl.Parameters = append(decl.Parameters, p)
		}
	}

	return decl
}
