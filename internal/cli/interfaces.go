package cli

import (
	"github.com/mrz1836/quill/internal/config"
	"github.com/mrz1836/quill/internal/output"
	"github.com/mrz1836/quill/internal/service/signer"
)

// Compile-time interface checks.
var (
	_ ConfigProvider        = (*config.Config)(nil)
	_ signer.ConfigProvider = (*config.Config)(nil)
	_ LogWriter             = (*config.Logger)(nil)
	_ signer.LogWriter      = (*config.Logger)(nil)
	_ FormatProvider        = (*output.Formatter)(nil)
)

// ConfigProvider is the read-only view of the effective configuration
// that commands depend on.
type ConfigProvider interface {
	GetHome() string
	GetLoggingLevel() string
	GetLoggingFile() string
	GetOutputFormat() string
	IsVerbose() bool

	// IsStrictFields reports whether unknown record keys are rejected.
	IsStrictFields() bool

	// GetSigningOutput returns "hex" or "fields".
	GetSigningOutput() string

	GetSecurity() config.SecurityConfig
}

// LogWriter is the file logger as seen by commands.
type LogWriter interface {
	Debug(format string, args ...any)
	Error(format string, args ...any)
	Close() error
}

// FormatProvider exposes the resolved output format.
type FormatProvider interface {
	Format() output.Format
}
