// Package config loads calculator settings from TOML or YAML files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/calculator"
)

// EnvVar names the environment variable holding a config file path.
const EnvVar = "CALCULATOR_CONFIG"

// Format represents the configuration file format.
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota
	// FormatYAML represents YAML format
	FormatYAML
	// FormatAuto detects the format from the file extension
	FormatAuto
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Config holds the complete calculator configuration.
type Config struct {
	// Policy is "strict" or "lenient".
	Policy string `toml:"policy" yaml:"policy"`
	// ResultFormat is a printf verb for results, e.g. "%g". Empty means the
	// shortest decimal form.
	ResultFormat string        `toml:"result_format" yaml:"result_format"`
	Log          LogConfig     `toml:"log" yaml:"log"`
	History      HistoryConfig `toml:"history" yaml:"history"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// HistoryConfig holds calculation history settings.
type HistoryConfig struct {
	Enabled bool   `toml:"enabled" yaml:"enabled"`
	Path    string `toml:"path" yaml:"path"`
	// Limit is the number of entries shown by default.
	Limit int `toml:"limit" yaml:"limit"`
}

// Default returns the configuration used when there is no file.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

// Load loads configuration from a file, detecting the format from its
// extension.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	cfg, err := LoadFromString(string(content), detectFormat(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromString loads configuration from a string in the given format.
// FormatAuto is treated as TOML.
func LoadFromString(content string, format Format) (*Config, error) {
	var cfg Config
	switch format {
	case FormatTOML, FormatAuto:
		if _, err := toml.Decode(content, &cfg); err != nil {
			return nil, fmt.Errorf("TOML parse error: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal([]byte(content), &cfg); err != nil {
			return nil, fmt.Errorf("YAML parse error: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Find returns the config file to use. An explicit path wins, then the
// CALCULATOR_CONFIG environment variable, then the first default location
// that exists. The result is empty if there is no config file.
func Find(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if p := os.Getenv(EnvVar); p != "" {
		return p
	}
	for _, p := range defaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// LoadDefault loads the file that Find selects, or returns the default
// configuration if there is none.
func LoadDefault(explicit string) (*Config, error) {
	path := Find(explicit)
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

func defaultPaths() []string {
	paths := []string{"./calculator.toml", "./calculator.yaml", "./calculator.yml"}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths,
			filepath.Join(dir, "calculator", "config.toml"),
			filepath.Join(dir, "calculator", "config.yaml"),
		)
	}
	return paths
}

// detectFormat determines the configuration format from file extension.
func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// applyDefaults sets default values for missing configuration.
func (c *Config) applyDefaults() {
	if c.Policy == "" {
		c.Policy = "strict"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.History.Path == "" {
		c.History.Path = defaultHistoryPath()
	}
	c.History.Path = expandHome(os.ExpandEnv(c.History.Path))
	if c.History.Limit <= 0 {
		c.History.Limit = 20
	}
}

// Validate checks that enumerated settings have known values.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Policy) {
	case "strict", "lenient":
	default:
		return fmt.Errorf("invalid policy %q: must be strict or lenient", c.Policy)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q: must be text or json", c.Log.Format)
	}
	return nil
}

// Lenient reports whether the configured policy is lenient.
func (c *Config) Lenient() bool {
	return strings.EqualFold(c.Policy, "lenient")
}

// CalcOptions returns the calculator options for the configured policy.
func (c *Config) CalcOptions() []calculator.Option {
	if c.Lenient() {
		return []calculator.Option{calculator.Lenient()}
	}
	return []calculator.Option{calculator.Strict()}
}

func defaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".calculator", "history.db")
	}
	return filepath.Join(home, ".calculator", "history.db")
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
