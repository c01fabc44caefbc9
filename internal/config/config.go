package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/iancoleman/strcase"
	"gopkg.in/yaml.v3"

	"github.com/mcncl/gopointer/internal/formatter"
)

// EnvPrefix prefixes every environment override, e.g. GOPOINTER_FORMATTING_INDENT
const EnvPrefix = "GOPOINTER"

// Config represents the complete configuration for gopointer
type Config struct {
	Formatting FormattingConfig `yaml:"formatting"`
	Set        SetConfig        `yaml:"set"`
	Dev        DevConfig        `yaml:"dev"`
}

// FormattingConfig controls how JSON output is rendered
type FormattingConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Indent   string `yaml:"indent"`
	Prefix   string `yaml:"prefix"`
	Width    int    `yaml:"width"`
	SortKeys bool   `yaml:"sort_keys"`
}

// SetConfig controls the set command
type SetConfig struct {
	// RawStrings stores a value that is not valid JSON as a plain string.
	RawStrings bool `yaml:"raw_strings"`
}

// DevConfig contains development/debug options
type DevConfig struct {
	Debug   bool `yaml:"debug"`
	Verbose bool `yaml:"verbose"`
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Formatting: FormattingConfig{
			Enabled:  true,
			Indent:   "  ",
			Width:    80,
			SortKeys: false,
		},
		Set: SetConfig{
			RawStrings: false,
		},
		Dev: DevConfig{
			Debug:   false,
			Verbose: false,
		},
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults
	cfg := NewConfig()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// FindConfigFile searches for a config file in current directory and parents
func FindConfigFile() string {
	configNames := []string{".gopointer.yml", ".gopointer.yaml", "gopointer.yml", "gopointer.yaml"}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	// Search up the directory tree
	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root directory
			break
		}
		currentDir = parentDir
	}

	return ""
}

// Validate checks values that YAML typing cannot
func (c *Config) Validate() error {
	if c.Formatting.Width < 0 {
		return fmt.Errorf("formatting.width must not be negative, got %d", c.Formatting.Width)
	}
	for _, r := range c.Formatting.Indent {
		if r != ' ' && r != '\t' {
			return fmt.Errorf("formatting.indent may only contain spaces and tabs, got %q", c.Formatting.Indent)
		}
	}
	return nil
}

// EnvName returns the environment variable that overrides a dotted
// config key, e.g. "formatting.sort_keys" -> "GOPOINTER_FORMATTING_SORT_KEYS".
func EnvName(key string) string {
	return EnvPrefix + "_" + strcase.ToScreamingSnake(strings.ReplaceAll(key, ".", "_"))
}

// ApplyEnv overrides values from environment variables looked up with lookup
// (os.LookupEnv outside of tests).
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	stringVars := map[string]*string{
		"formatting.indent": &c.Formatting.Indent,
		"formatting.prefix": &c.Formatting.Prefix,
	}
	bools := map[string]*bool{
		"formatting.enabled":   &c.Formatting.Enabled,
		"formatting.sort_keys": &c.Formatting.SortKeys,
		"set.raw_strings":      &c.Set.RawStrings,
		"dev.debug":            &c.Dev.Debug,
		"dev.verbose":          &c.Dev.Verbose,
	}

	for key, dst := range stringVars {
		if v, ok := lookup(EnvName(key)); ok {
			*dst = v
		}
	}
	for key, dst := range bools {
		v, ok := lookup(EnvName(key))
		if !ok {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid boolean in %s: %w", EnvName(key), err)
		}
		*dst = b
	}
	if v, ok := lookup(EnvName("formatting.width")); ok {
		width, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid integer in %s: %w", EnvName("formatting.width"), err)
		}
		c.Formatting.Width = width
	}

	return c.Validate()
}

// FormatterOptions converts the formatting section for the formatter package
func (c *Config) FormatterOptions() formatter.Options {
	return formatter.Options{
		Pretty:   c.Formatting.Enabled,
		Indent:   c.Formatting.Indent,
		Prefix:   c.Formatting.Prefix,
		Width:    c.Formatting.Width,
		SortKeys: c.Formatting.SortKeys,
	}
}

// CLIOverrides holds flags that take precedence over the config file.
// Nil fields were not given on the command line.
type CLIOverrides struct {
	Compact  *bool
	SortKeys *bool
	Raw      *bool
	Debug    *bool
}

// LoadConfigWithCLI loads config with CLI argument precedence:
// defaults, then the config file, then the environment, then flags.
func LoadConfigWithCLI(configPath string, lookup func(string) (string, bool), cli CLIOverrides) (*Config, error) {
	cfg := NewConfig()

	if configPath != "" {
		fileConfig, err := LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = fileConfig
	}

	if lookup != nil {
		if err := cfg.ApplyEnv(lookup); err != nil {
			return nil, err
		}
	}

	if cli.Compact != nil {
		cfg.Formatting.Enabled = !*cli.Compact
	}
	if cli.SortKeys != nil {
		cfg.Formatting.SortKeys = *cli.SortKeys
	}
	if cli.Raw != nil {
		cfg.Set.RawStrings = *cli.Raw
	}
	if cli.Debug != nil {
		cfg.Dev.Debug = *cli.Debug
	}

	return cfg, nil
}
