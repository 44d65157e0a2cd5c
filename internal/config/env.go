package config

import (
	"os"
	"strconv"
	"strings"
)

// Environment variable names.
const (
	EnvHome         = "QUILL_HOME"
	EnvOutputFormat = "QUILL_OUTPUT_FORMAT"
	EnvVerbose      = "QUILL_VERBOSE"
	EnvLogLevel     = "QUILL_LOG_LEVEL"
	EnvStrictFields = "QUILL_STRICT_FIELDS"
	EnvMemoryLock   = "QUILL_MEMORY_LOCK"
	EnvNoColor      = "NO_COLOR"

	// EnvPrivateKey is read by the CLI only and never stored in Config.
	EnvPrivateKey = "QUILL_PRIVATE_KEY" // #nosec G101 -- false positive, this is a const name not a credential
)

// ApplyEnvironment applies environment variable overrides to the configuration.
func ApplyEnvironment(cfg *Config) {
	if v := os.Getenv(EnvHome); v != "" {
		cfg.Home = strings.TrimSpace(v)
	}

	if v := os.Getenv(EnvOutputFormat); v != "" {
		cfg.Output.DefaultFormat = strings.ToLower(strings.TrimSpace(v))
	}

	if v := os.Getenv(EnvVerbose); v != "" {
		cfg.Output.Verbose = parseBool(v)
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = strings.ToLower(strings.TrimSpace(v))
	}

	if v := os.Getenv(EnvStrictFields); v != "" {
		cfg.Signing.StrictFields = parseBool(v)
	}

	if v := os.Getenv(EnvMemoryLock); v != "" {
		cfg.Security.MemoryLock = parseBool(v)
	}

	// NO_COLOR disables colored output
	if _, ok := os.LookupEnv(EnvNoColor); ok {
		cfg.Output.Color = "never"
	}
}

// parseBool parses a boolean string value.
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "1" || s == "true" || s == "yes" || s == "on" {
		return true
	}
	b, _ := strconv.ParseBool(s)
	return b
}
