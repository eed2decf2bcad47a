package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version is set by build flags.
	Version = "0.1.0-dev"
)

var rootCmd = &cobra.Command{
	Use:   "tsxfront",
	Short: "TSX front-end: context-sensitive lexer and incremental parser",
	Long: `tsxfront lexes and partially parses TSX source files.

It recognises import declarations and function declaration headers. Type
annotations and default values are accepted only as a single identifier,
recorded as its text in the AST, and a function body only as an empty { }.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
`))
}
