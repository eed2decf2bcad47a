// Package config loads driver-level tuning knobs from YAML: plain structs
// decoded with github.com/goccy/go-yaml, a documented zero-value default,
// and no environment-variable overlay (that concern belongs to the CLI
// flags layer in cmd/tsxfront instead).
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Production names a top-level grammar the driver may try.
type Production string

const (
	ProductionImport   Production = "import"
	ProductionFunction Production = "function"
)

// Config controls the driver without changing parsing semantics: which
// productions it tries and in what order, and how deeply the lexer's
// sublanguage stack may nest before it is treated as a lex error.
type Config struct {
	Productions     []Production `yaml:"productions"`
	MaxNestingDepth int          `yaml:"max_nesting_depth"`
}

// Default returns the configuration the driver uses when none is supplied:
// import before function, and an unbounded lexer stack (no hard nesting
// limit unless the caller opts in).
func Default() *Config {
	return &Config{
		Productions:     []Production{ProductionImport, ProductionFunction},
		MaxNestingDepth: 0,
	}
}

// Load reads and decodes a YAML config file at path. Fields absent from the
// file keep Default's values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if len(cfg.Productions) == 0 {
		cfg.Productions = Default().Productions
	}
	return cfg, nil
}
