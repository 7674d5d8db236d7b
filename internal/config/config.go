// Package config holds the settings of the gjack driver. Settings are read
// from an optional TOML file and can be overridden from the command line.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/ltungv/jack/gjack/internal/jack"
)

// DefaultFile is looked up in the working directory when no file is given.
const DefaultFile = "gjack.toml"

// Config holds the complete driver configuration
type Config struct {
	Parser ParserConfig `toml:"parser"`
	Output OutputConfig `toml:"output"`
}

// ParserConfig holds the parser settings
type ParserConfig struct {
	MaxDepth int `toml:"max_depth"`
}

// OutputConfig controls how parse trees are printed
type OutputConfig struct {
	Format string `toml:"format"`
	Indent int    `toml:"indent"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Parser: ParserConfig{MaxDepth: jack.DefaultMaxDepth},
		Output: OutputConfig{Format: jack.FormatXML, Indent: 2},
	}
}

// Load reads the file at path on top of the defaults. An empty path loads
// DefaultFile if it exists and the defaults otherwise.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		if _, err := os.Stat(DefaultFile); err != nil {
			return cfg, nil
		}
		path = DefaultFile
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that every setting has a usable value.
func (c *Config) Validate() error {
	if c.Parser.MaxDepth < 0 {
		return fmt.Errorf("parser.max_depth must not be negative, got %d", c.Parser.MaxDepth)
	}
	switch c.Output.Format {
	case jack.FormatXML, jack.FormatSExpr, jack.FormatYAML:
	default:
		return fmt.Errorf("output.format must be one of %s, %s or %s, got %q",
			jack.FormatXML, jack.FormatSExpr, jack.FormatYAML, c.Output.Format)
	}
	if c.Output.Indent < 0 {
		return fmt.Errorf("output.indent must not be negative, got %d", c.Output.Indent)
	}
	return nil
}

// ParserOptions returns the parser options matching the configuration.
func (c *Config) ParserOptions() []jack.Option {
	return []jack.Option{jack.WithMaxDepth(c.Parser.MaxDepth)}
}
