// Package tsxfront is the public façade over the lexer, combinator engine,
// grammars, and driver: parse a TSX source file or string and get back a
// SourceFile plus phase timings, or a single fatal diagnostic.
package tsxfront

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/voliva/go-tsxfront/internal/ast"
	"github.com/voliva/go-tsxfront/internal/cerr"
	"github.com/voliva/go-tsxfront/internal/config"
	"github.com/voliva/go-tsxfront/internal/driver"
	"github.com/voliva/go-tsxfront/internal/grammar"
	"github.com/voliva/go-tsxfront/internal/lexer"
)

// Result is the outcome of a successful parse: the assembled SourceFile
// plus how long lexing and parsing each took, mirroring the timing output
// the reference rust-ts-checker implementation prints.
type Result struct {
	SourceFile    *ast.SourceFile
	LexDuration   time.Duration
	ParseDuration time.Duration
}

// Options controls a parse run. The zero value uses config.Default(), the
// stub type_def/expr grammar, and no tracing.
type Options struct {
	Config *config.Config
	Trace  io.Writer
	File   string
}

func (o Options) external() grammar.External {
	return grammar.StubExternal{}
}

func (o Options) cfg() *config.Config {
	if o.Config != nil {
		return o.Config
	}
	return config.Default()
}

// timedSource wraps a *lexer.Lexer and accumulates the wall-clock time
// spent inside Next, so the driver's own parse-side work can be timed
// separately without the driver needing to know about timing at all.
type timedSource struct {
	lex   *lexer.Lexer
	spent time.Duration
}

func (t *timedSource) Next() (lexer.LocatedToken, bool) {
	start := time.Now()
	lt, ok := t.lex.Next()
	t.spent += time.Since(start)
	return lt, ok
}

// ParseString parses in-memory TSX source text.
func ParseString(source string, opts Options) (*Result, *cerr.CompilerError) {
	var lexOpts []lexer.Option
	if opts.Trace != nil {
		lexOpts = append(lexOpts, lexer.WithTracing(opts.Trace))
	}
	if depth := opts.cfg().MaxNestingDepth; depth > 0 {
		lexOpts = append(lexOpts, lexer.WithMaxStackDepth(depth))
	}
	src := &timedSource{lex: lexer.New(source, lexOpts...)}

	var drvOpts []driver.Option
	drvOpts = append(drvOpts, driver.WithConfig(opts.cfg()), driver.WithSource(source), driver.WithFile(opts.File))
	if opts.Trace != nil {
		drvOpts = append(drvOpts, driver.WithTracing(opts.Trace))
	}

	start := time.Now()
	d := driver.New(src, opts.external(), drvOpts...)
	file, fatal := d.Run()
	parseTotal := time.Since(start)
	if fatal != nil {
		return nil, fatal
	}

	return &Result{
		SourceFile:    file,
		LexDuration:   src.spent,
		ParseDuration: parseTotal - src.spent,
	}, nil
}

// ParseFile reads path and parses its contents.
func ParseFile(path string, opts Options) (*Result, *cerr.CompilerError) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, cerr.New(cerr.KindEOF, 0, 0, fmt.Sprintf("reading %s: %v", path, err), "", path)
	}
	if opts.File == "" {
		opts.File = path
	}
	return ParseString(string(data), opts)
}
