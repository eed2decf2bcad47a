package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/maruel/natural"
	"github.com/spf13/cobra"
	"github.com/tidwall/sjson"

	"github.com/voliva/go-tsxfront/internal/ast"
	"github.com/voliva/go-tsxfront/internal/config"
	"github.com/voliva/go-tsxfront/pkg/tsxfront"
)

var (
	parseJSON       bool
	parseConfigPath string
	parseTrace      bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [files...]",
	Short: "Parse one or more TSX files and print timings (and the AST with --json)",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "also print the AST as JSON after each file's summary line")
	parseCmd.Flags().StringVar(&parseConfigPath, "config", "", "path to a YAML driver config file")
	parseCmd.Flags().BoolVar(&parseTrace, "trace", false, "write lexer/driver tracing to stderr")
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if parseConfigPath != "" {
		loaded, err := config.Load(parseConfigPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	files := append([]string(nil), args...)
	sort.Slice(files, func(i, j int) bool { return natural.Less(files[i], files[j]) })

	for _, path := range files {
		opts := tsxfront.Options{Config: cfg, File: path}
		if parseTrace {
			opts.Trace = os.Stderr
		}

		result, fatal := tsxfront.ParseFile(path, opts)
		if fatal != nil {
			return fmt.Errorf("%s", fatal.Format(true))
		}

		fmt.Printf("%s: lexed in %s, parsed in %s, %d declaration(s)\n",
			path, result.LexDuration, result.ParseDuration, len(result.SourceFile.Declarations))

		if parseJSON {
			out, err := sourceFileJSON(result.SourceFile)
			if err != nil {
				return fmt.Errorf("building JSON for %s: %w", path, err)
			}
			fmt.Println(out)
		}
	}

	return nil
}

// sourceFileJSON builds the AST's JSON representation one declaration (and
// one field) at a time with sjson.Set, rather than a single encoding/json
// marshal of the whole tree — the same incremental-append shape the driver
// itself uses when it builds a SourceFile one declaration at a time.
func sourceFileJSON(file *ast.SourceFile) (string, error) {
	doc := "{}"
	importIdx, funcIdx := 0, 0
	var err error

	set := func(path string, value any) {
		if err != nil {
			return
		}
		doc, err = sjson.Set(doc, path, value)
	}

	for _, decl := range file.Declarations {
		switch d := decl.(type) {
		case *ast.ImportDeclaration:
			base := fmt.Sprintf("imports.%d", importIdx)
			set(base+".line", d.Line)
			set(base+".col", d.Col)
			set(base+".target", d.Target)
			if d.Default != "" {
				set(base+".default", d.Default)
			}
			if d.Clause != nil {
				switch d.Clause.Kind {
				case ast.ClauseNamespace:
					set(base+".namespace", d.Clause.NamespaceName)
				case ast.ClauseNamed:
					for i, spec := range d.Clause.Named {
						specBase := fmt.Sprintf("%s.named.%d", base, i)
						set(specBase+".original", spec.Original)
						if spec.Alias != "" {
							set(specBase+".alias", spec.Alias)
						}
					}
				}
			}
			importIdx++
		case *ast.FunctionDeclaration:
			base := fmt.Sprintf("functions.%d", funcIdx)
			set(base+".line", d.Line)
			set(base+".col", d.Col)
			set(base+".identifier", d.Identifier)
			for i, g := range d.Generics {
				gBase := fmt.Sprintf("%s.generics.%d", base, i)
				set(gBase+".identifier", g.Identifier)
				if g.Extends != "" {
					set(gBase+".extends", g.Extends)
				}
			}
			for i, p := range d.Parameters {
				pBase := fmt.Sprintf("%s.parameters.%d", base, i)
				set(pBase+".identifier", p.Identifier)
				set(pBase+".optional", p.Optional)
				if p.Definition != "" {
					set(pBase+".type", p.Definition)
				}
				if p.Initializer != "" {
					set(pBase+".default", p.Initializer)
				}
			}
			funcIdx++
		}
	}

	return doc, err
}
