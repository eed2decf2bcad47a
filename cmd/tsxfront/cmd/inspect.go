package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"github.com/voliva/go-tsxfront/internal/config"
	"github.com/voliva/go-tsxfront/pkg/tsxfront"
)

var inspectConfigPath string

var inspectCmd = &cobra.Command{
	Use:   "inspect <file> <path>",
	Short: "Parse a file and query its AST JSON by gjson path",
	Long: `inspect parses a single file, builds its AST JSON representation, and
queries it with a gjson path (e.g. "imports.0.target" or "functions.#.identifier")
without ever decoding the JSON into Go structs.`,
	Args: cobra.ExactArgs(2),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().StringVar(&inspectConfigPath, "config", "", "path to a YAML driver config file")
}

func runInspect(cmd *cobra.Command, args []string) error {
	path, query := args[0], args[1]

	cfg := config.Default()
	if inspectConfigPath != "" {
		loaded, err := config.Load(inspectConfigPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	result, fatal := tsxfront.ParseFile(path, tsxfront.Options{Config: cfg, File: path})
	if fatal != nil {
		return fmt.Errorf("%s", fatal.Format(true))
	}

	doc, err := sourceFileJSON(result.SourceFile)
	if err != nil {
		return fmt.Errorf("building JSON for %s: %w", path, err)
	}

	res := gjson.Get(doc, query)
	if !res.Exists() {
		fmt.Fprintf(os.Stderr, "path %q not found\n", query)
		os.Exit(1)
	}
	fmt.Println(res.String())
	return nil
}
