// Package driver implements the source-file driver: a committed-choice
// loop over the lexer's token stream that tries each top-level production
// in turn and assembles the declarations they produce into a SourceFile.
package driver

import (
	"fmt"
	"io"

	"github.com/voliva/go-tsxfront/internal/ast"
	"github.com/voliva/go-tsxfront/internal/cerr"
	"github.com/voliva/go-tsxfront/internal/combinator"
	"github.com/voliva/go-tsxfront/internal/config"
	"github.com/voliva/go-tsxfront/internal/grammar"
	"github.com/voliva/go-tsxfront/internal/lexer"
	"github.com/voliva/go-tsxfront/internal/token"
)

// tokenSource is the peekable stream the driver pulls from. *lexer.Lexer
// satisfies it; tests substitute a canned stream.
type tokenSource interface {
	Next() (lexer.LocatedToken, bool)
}

type production struct {
	name   config.Production
	build  func() combinator.Matcher
	reduce func(v combinator.Value, line, col int) ast.Declaration
}

// Driver owns a token source exclusively and tries productions against it
// in the configured order, building an ast.SourceFile one declaration at a
// time.
type Driver struct {
	src         tokenSource
	productions []production
	source      string
	file        string
	tracer      io.Writer
	peeked      *lexer.LocatedToken
}

// Option configures a Driver at construction time.
type Option func(*Driver)

// WithConfig overrides the production set/order; the zero value uses
// config.Default(). Must be passed to New after the driver's production
// set has been built from ext, which New guarantees by applying options
// after populating d.productions.
func WithConfig(cfg *config.Config) Option {
	return func(d *Driver) { d.applyConfig(cfg) }
}

// WithSource attaches the original source text so fatal errors can render a
// caret-annotated excerpt.
func WithSource(source string) Option {
	return func(d *Driver) { d.source = source }
}

// WithFile attaches a file name for error messages.
func WithFile(name string) Option {
	return func(d *Driver) { d.file = name }
}

// WithTracing makes the driver write one line to w each time it commits to a
// production; productions that reject the first token are not traced.
func WithTracing(w io.Writer) Option {
	return func(d *Driver) { d.tracer = w }
}

// New builds a Driver over src. ext supplies the type_def/expr
// collaborators the function_declaration grammar defers to. Productions
// default to config.Default()'s order; pass WithConfig to override.
func New(src tokenSource, ext grammar.External, opts ...Option) *Driver {
	d := &Driver{
		src:         src,
		productions: allProductions(ext),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func allProductions(ext grammar.External) []production {
	return []production{
		{
			name:   config.ProductionImport,
			build:  func() combinator.Matcher { return grammar.NewImportStatement() },
			reduce: func(v combinator.Value, line, col int) ast.Declaration { return grammar.ReduceImport(v, line, col) },
		},
		{
			name:   config.ProductionFunction,
			build:  func() combinator.Matcher { return grammar.NewFunctionDeclaration(ext) },
			reduce: func(v combinator.Value, line, col int) ast.Declaration { return grammar.ReduceFunction(v, line, col) },
		},
	}
}

// applyConfig reorders d.productions to match cfg.Productions, dropping any
// production cfg does not name and ignoring any name cfg lists that this
// driver does not know (forward-compatible with a future production). If cfg
// names no known production, the current set is kept unchanged.
func (d *Driver) applyConfig(cfg *config.Config) {
	known := make(map[config.Production]production, len(d.productions))
	for _, p := range d.productions {
		known[p.name] = p
	}
	ordered := make([]production, 0, len(cfg.Productions))
	for _, name := range cfg.Productions {
		if p, ok := known[name]; ok {
			ordered = append(ordered, p)
		}
	}
	if len(ordered) > 0 {
		d.productions = ordered
	}
}

func (d *Driver) peek() (lexer.LocatedToken, bool) {
	if d.peeked == nil {
		lt, ok := d.src.Next()
		if !ok {
			return lexer.LocatedToken{}, false
		}
		d.peeked = &lt
	}
	return *d.peeked, true
}

func (d *Driver) consume() (lexer.LocatedToken, bool) {
	if d.peeked != nil {
		lt := *d.peeked
		d.peeked = nil
		return lt, true
	}
	return d.src.Next()
}

func (d *Driver) trace(format string, args ...any) {
	if d.tracer == nil {
		return
	}
	fmt.Fprintf(d.tracer, format+"\n", args...)
}

func (d *Driver) lexError(lt lexer.LocatedToken) *cerr.CompilerError {
	return cerr.New(cerr.KindLex, lt.Line, lt.Col, lt.Err, d.source, d.file)
}

// Run drives the token source to completion, returning the assembled
// SourceFile or the first fatal error encountered.
func (d *Driver) Run() (*ast.SourceFile, *cerr.CompilerError) {
	file := &ast.SourceFile{}

	for {
		// 1. Skip leading ';' tokens.
		for {
			lt, ok := d.peek()
			if !ok {
				return file, nil
			}
			if lt.IsError() {
				return nil, d.lexError(lt)
			}
			if !lt.Token.Is(token.KindSymbol, ";") {
				break
			}
			d.consume()
		}

		lt, ok := d.peek()
		if !ok {
			return file, nil
		}
		if lt.IsError() {
			return nil, d.lexError(lt)
		}

		decl, matched, err := d.tryProductions(lt)
		if err != nil {
			return nil, err
		}
		if !matched {
			return file, nil
		}
		file.Append(decl)
	}
}

// tryProductions attempts each configured production against the peeked
// token lt in order. matched is false only when every production rejected
// the peeked token outright, in which case lt is left unconsumed.
func (d *Driver) tryProductions(lt lexer.LocatedToken) (ast.Declaration, bool, *cerr.CompilerError) {
	for _, p := range d.productions {
		m := p.build()
		r := m.Feed(lt.Token)
		if r.Outcome == combinator.Rejected {
			continue
		}

		d.trace("%d:%d committing to production %q", lt.Line, lt.Col, p.name)
		d.consume()

		for r.Outcome == combinator.Accepted || r.Outcome == combinator.Got {
			next, ok := d.consume()
			if !ok {
				return nil, true, cerr.New(cerr.KindEOF, lt.Line, lt.Col,
					fmt.Sprintf("unexpected end of file while parsing %s", p.name), d.source, d.file)
			}
			if next.IsError() {
				return nil, true, d.lexError(next)
			}
			r = m.Feed(next.Token)
			if r.Outcome == combinator.Rejected {
				return nil, true, cerr.New(cerr.KindParse, next.Line, next.Col,
					fmt.Sprintf("unexpected %s while parsing %s", next.Token.String(), p.name), d.source, d.file)
			}
		}

		return p.reduce(r.Value, lt.Line, lt.Col), true, nil
	}
	return nil, false, nil
}
