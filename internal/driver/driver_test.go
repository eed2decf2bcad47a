package driver

import (
	"testing"

	"github.com/voliva/go-tsxfront/internal/ast"
	"github.com/voliva/go-tsxfront/internal/grammar"
	"github.com/voliva/go-tsxfront/internal/lexer"
)

func sourceFileFor(t *testing.T, src string) *ast.SourceFile {
	t.Helper()
	lex := lexer.New(src)
	d := New(lex, grammar.StubExternal{}, WithSource(src), WithFile("test.tsx"))
	file, err := d.Run()
	if err != nil {
		t.Fatalf("Run() error: %s", err.Error())
	}
	return file
}

func TestDriverParsesImportThenFunction(t *testing.T) {
	src := `import React from "react";
function identity(x) { }`

	file := sourceFileFor(t, src)
	if len(file.Declarations) != 2 {
		t.Fatalf("Declarations = %+v, want 2 entries", file.Declarations)
	}

	imp, ok := file.Declarations[0].(*ast.ImportDeclaration)
	if !ok {
		t.Fatalf("Declarations[0] = %T, want *ast.ImportDeclaration", file.Declarations[0])
	}
	if imp.Default != "React" || imp.Target != "react" {
		t.Fatalf("import decl = %+v", imp)
	}

	fn, ok := file.Declarations[1].(*ast.FunctionDeclaration)
	if !ok {
		t.Fatalf("Declarations[1] = %T, want *ast.FunctionDeclaration", file.Declarations[1])
	}
	if fn.Identifier != "identity" || len(fn.Parameters) != 1 || fn.Parameters[0].Identifier != "x" {
		t.Fatalf("function decl = %+v", fn)
	}
}

func TestDriverSkipsLeadingSemicolons(t *testing.T) {
	file := sourceFileFor(t, `;;;import X from "m";`)
	if len(file.Declarations) != 1 {
		t.Fatalf("Declarations = %+v, want 1 entry", file.Declarations)
	}
}

func TestDriverStopsAtUnrecognisedToken(t *testing.T) {
	file := sourceFileFor(t, `const x = 1;`)
	if len(file.Declarations) != 0 {
		t.Fatalf("Declarations = %+v, want none (const is not a recognised production)", file.Declarations)
	}
}

func TestDriverParseErrorAfterCommit(t *testing.T) {
	// "import" commits the import_statement production; the integer literal
	// that follows matches none of its three specifier alternatives, so the
	// driver must report a fatal parse error rather than silently bailing.
	lex := lexer.New(`import 123 from "react";`)
	d := New(lex, grammar.StubExternal{})
	_, err := d.Run()
	if err == nil {
		t.Fatalf("expected a fatal parse error")
	}
}

func TestDriverEOFErrorMidProduction(t *testing.T) {
	lex := lexer.New(`function run(`)
	d := New(lex, grammar.StubExternal{})
	_, err := d.Run()
	if err == nil {
		t.Fatalf("expected a fatal EOF error")
	}
}
