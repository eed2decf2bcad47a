package tsxfront

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestFixtures runs representative import/function declarations, a file
// that trails off into unrecognised syntax, and the two fatal-error shapes
// through the full driver, snapshotting each result.
func TestFixtures(t *testing.T) {
	fixtures := []struct {
		name string
		src  string
	}{
		{
			name: "default_and_named_import",
			src:  `import React, { useState, useEffect: fx } from "react";`,
		},
		{
			name: "namespace_import",
			src:  `import * as React from "react";`,
		},
		{
			name: "function_with_generics_and_optional_param",
			src:  `function identify<T extends object>(value: T, fallback?: T) { }`,
		},
		{
			name: "function_zero_params",
			src:  `function noop() { }`,
		},
		{
			name: "multiple_declarations",
			src: `import Fragment from "react";
function wrap() { }`,
		},
		{
			// Stops cleanly: a const declaration matches neither production,
			// so the driver returns whatever it already collected.
			name: "stops_at_unrecognised_top_level_statement",
			src:  "import Elm from \"elm\";\nconst x = 1;",
		},
		{
			// Fatal parse error: committing to import_statement but the
			// specifier clause matches none of the three alternatives.
			name: "parse_error_bad_specifier",
			src:  `import 123 from "react";`,
		},
		{
			// Fatal EOF error: committed to function_declaration with the
			// parameter list left open.
			name: "eof_error_unterminated_parameters",
			src:  `function run(`,
		},
	}

	for _, f := range fixtures {
		t.Run(f.name, func(t *testing.T) {
			result, err := ParseString(f.src, Options{File: f.name + ".tsx"})
			if err != nil {
				snaps.MatchSnapshot(t, err.Format(false))
				return
			}
			snaps.MatchSnapshot(t, result.SourceFile)
		})
	}
}
