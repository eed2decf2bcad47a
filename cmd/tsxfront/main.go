// Command tsxfront is the reference executable for the TSX front-end: it
// parses one or more files and reports phase timings and the resulting
// AST, the concrete stand-in for the "reference executable" this front-end
// is built around.
package main

import (
	"fmt"
	"os"

	"github.com/voliva/go-tsxfront/cmd/tsxfront/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
