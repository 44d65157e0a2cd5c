// Package config provides configuration management for Quill.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	quillerr "github.com/mrz1836/quill/pkg/errors"
)

// Config represents the application configuration.
type Config struct {
	Version  int            `yaml:"version"`
	Home     string         `yaml:"home"`
	Signing  SigningConfig  `yaml:"signing"`
	Security SecurityConfig `yaml:"security"`
	Output   OutputConfig   `yaml:"output"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// SigningConfig defines how transaction records are accepted and emitted.
type SigningConfig struct {
	// StrictFields rejects record keys that are not transaction fields or aliases.
	StrictFields bool `yaml:"strict_fields"`
	// Output is "hex" for the encoded transaction or "fields" for the raw item list.
	Output string `yaml:"output"`
}

// SecurityConfig defines security settings.
type SecurityConfig struct {
	MemoryLock bool `yaml:"memory_lock"`
}

// OutputConfig defines output formatting settings.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
	Color         string `yaml:"color"`
	Verbose       bool   `yaml:"verbose"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
	JSON  bool   `yaml:"json"`
}

// Signing output modes.
const (
	SigningOutputHex    = "hex"
	SigningOutputFields = "fields"
)

// Load reads configuration from the specified file.
func Load(path string) (*Config, error) {
	// #nosec G304 -- config file path is from validated user input
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, quillerr.WithDetails(quillerr.WithCause(quillerr.ErrConfigNotFound, err), map[string]string{"path": path})
		}
		return nil, err
	}

	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, quillerr.WithDetails(quillerr.WithCause(quillerr.ErrConfigInvalid, err), map[string]string{"path": path})
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes configuration to the specified file.
func Save(cfg *Config, path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return writeFileAtomic(path, data, 0o600)
}

// Path returns the default config file path.
func Path(home string) string {
	return filepath.Join(home, "config.yaml")
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	switch c.Signing.Output {
	case SigningOutputHex, SigningOutputFields:
	default:
		return quillerr.WithDetails(quillerr.ErrConfigInvalid, map[string]string{
			"key":   "signing.output",
			"value": c.Signing.Output,
		})
	}

	switch c.Output.DefaultFormat {
	case "auto", "text", "json":
	default:
		return quillerr.WithDetails(quillerr.ErrConfigInvalid, map[string]string{
			"key":   "output.default_format",
			"value": c.Output.DefaultFormat,
		})
	}
	return nil
}

// GetHome returns the quill home directory path.
func (c *Config) GetHome() string {
	return c.Home
}

// GetLoggingLevel returns the configured logging level.
func (c *Config) GetLoggingLevel() string {
	return c.Logging.Level
}

// GetLoggingFile returns the configured log file path.
func (c *Config) GetLoggingFile() string {
	return c.Logging.File
}

// GetOutputFormat returns the default output format.
func (c *Config) GetOutputFormat() string {
	return c.Output.DefaultFormat
}

// IsVerbose returns true if verbose output is enabled.
func (c *Config) IsVerbose() bool {
	return c.Output.Verbose
}

// IsStrictFields reports whether unknown record keys are rejected.
func (c *Config) IsStrictFields() bool {
	return c.Signing.StrictFields
}

// GetSigningOutput returns the signing output mode.
func (c *Config) GetSigningOutput() string {
	return c.Signing.Output
}

// GetSecurity returns the security configuration.
func (c *Config) GetSecurity() SecurityConfig {
	return c.Security
}

// DefaultHome returns the default quill home directory.
func DefaultHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".quill"
	}
	return filepath.Join(home, ".quill")
}
