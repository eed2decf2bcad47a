// Package ast holds the partial AST this front-end builds: import
// declarations and function declaration headers, plus the SourceFile that
// collects them in source order.
package ast

// ImportClauseKind distinguishes the three forms `import X from "m"`,
// `import * as X from "m"`, and `import { a, b: c } from "m"` can take
// after the optional default binding.
type ImportClauseKind int

const (
	ClauseNone ImportClauseKind = iota
	ClauseNamespace
	ClauseNamed
)

// ImportSpecifier is one entry of a named-imports clause: `a` or `a: b`.
type ImportSpecifier struct {
	Original string
	Alias    string // empty when there is no alias
}

// ImportClause is the optional specifier clause following the default
// binding (if any).
type ImportClause struct {
	Kind          ImportClauseKind
	NamespaceName string            // ClauseNamespace
	Named         []ImportSpecifier // ClauseNamed
}

// ImportDeclaration is `import <default>, { <named> } from "<target>"` in
// any of its supported shapes.
type ImportDeclaration struct {
	Default string // empty when there is no default binding
	Clause  *ImportClause
	Target  string
	Line    int
	Col     int
}

// GenericParam is one entry of a function's `<T extends U, ...>` clause.
type GenericParam struct {
	Identifier string
	Extends    string // empty when there is no extends bound
}

// Parameter is one entry of a function's parameter list.
type Parameter struct {
	Identifier  string
	Optional    bool
	Definition  string // type annotation text, empty if absent
	Initializer string // default-value text, empty if absent
}

// FunctionDeclaration is a function declaration header: everything up to
// and including the body's opening/closing braces (the body itself is out
// of scope — the braces are a placeholder).
type FunctionDeclaration struct {
	Identifier string
	Generics   []GenericParam
	Parameters []Parameter
	Line       int
	Col        int
}

// Declaration is implemented by every node a SourceFile can hold.
type Declaration interface {
	declNode()
}

func (*ImportDeclaration) declNode()   {}
func (*FunctionDeclaration) declNode() {}

// SourceFile is the ordered sequence of declarations the driver builds.
type SourceFile struct {
	Declarations []Declaration
}

// Append adds a declaration to the end of the file.
func (f *SourceFile) Append(d Declaration) {
	f.Declarations = append(f.Declarations, d)
}
