// Package config loads the optional parsec.toml settings file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// EnvVar names the environment variable holding an explicit config path.
const EnvVar = "PARSEC_CONFIG"

// Config holds the complete settings
type Config struct {
	Trace   TraceConfig   `toml:"trace"`
	Grammar GrammarConfig `toml:"grammar"`
	Output  OutputConfig  `toml:"output"`
}

// TraceConfig controls logging and parser tracing
type TraceConfig struct {
	Enabled   bool   `toml:"enabled"`
	Verbosity int    `toml:"verbosity"`
	LogFile   string `toml:"log_file"`
}

// GrammarConfig selects the EBNF grammar used by parse and lsp
type GrammarConfig struct {
	File       string `toml:"file"`
	Start      string `toml:"start"`
	Whitespace bool   `toml:"whitespace"`
}

// OutputConfig holds output settings
type OutputConfig struct {
	Format string `toml:"format"`
}

// Default returns the settings used when no file is found.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

// Load loads configuration from a TOML file
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown config key %s in %s", undecoded[0], path)
	}

	cfg.applyDefaults()
	cfg.expandEnvVars()

	return &cfg, nil
}

// LoadDefault loads the file named by $PARSEC_CONFIG, or the first of
// ./parsec.toml and ~/.config/parsec/config.toml that exists. Without
// any of them it returns Default().
func LoadDefault() (*Config, error) {
	if path := os.Getenv(EnvVar); path != "" {
		return Load(path)
	}

	candidates := []string{"./parsec.toml"}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".config", "parsec", "config.toml"))
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}

	return Default(), nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.Output.Format == "" {
		c.Output.Format = "text"
	}
	if c.Trace.Verbosity < 0 {
		c.Trace.Verbosity = 0
	}
}

func (c *Config) expandEnvVars() {
	c.Grammar.File = os.ExpandEnv(c.Grammar.File)
	c.Trace.LogFile = os.ExpandEnv(c.Trace.LogFile)
}
