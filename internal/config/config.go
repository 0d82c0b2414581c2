package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the settings shared by the monkey tools
type Config struct {
	Output OutputConfig `toml:"output"`
	REPL   REPLConfig   `toml:"repl"`
	Log    LogConfig    `toml:"log"`
}

// OutputConfig controls how results are printed
type OutputConfig struct {
	Color  bool   `toml:"color"`
	Format string `toml:"format"`
}

// REPLConfig holds interactive session settings
type REPLConfig struct {
	Prompt string `toml:"prompt"`
	Mode   string `toml:"mode"`
}

// LogConfig holds commonlog settings. An empty File logs to stderr.
type LogConfig struct {
	Verbosity int    `toml:"verbosity"`
	File      string `toml:"file"`
}

const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatJSON = "json"

	ModeTokens = "tokens"
	ModeAST    = "ast"
)

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Color:  true,
			Format: FormatText,
		},
		REPL: REPLConfig{
			Prompt: ">> ",
			Mode:   ModeTokens,
		},
	}
}

// Load reads a TOML configuration file on top of the defaults.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err := Decode(string(data))
	if err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Decode parses TOML text on top of the defaults
func Decode(text string) (*Config, error) {
	cfg := Default()
	if _, err := toml.Decode(text, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that enumerated settings hold known values
func (c *Config) Validate() error {
	if !ValidFormat(c.Output.Format) {
		return fmt.Errorf("output.format must be one of text, yaml, json; got %q", c.Output.Format)
	}
	if !ValidMode(c.REPL.Mode) {
		return fmt.Errorf("repl.mode must be tokens or ast; got %q", c.REPL.Mode)
	}
	if c.Log.Verbosity < 0 {
		return fmt.Errorf("log.verbosity must not be negative; got %d", c.Log.Verbosity)
	}
	return nil
}

func ValidFormat(format string) bool {
	switch format {
	case FormatText, FormatYAML, FormatJSON:
		return true
	}
	return false
}

func ValidMode(mode string) bool {
	return mode == ModeTokens || mode == ModeAST
}
