package signer

import (
	"log/slog"

	"github.com/mrz1836/quill/internal/config"
)

// ConfigProvider provides the settings the signer reads on each call.
type ConfigProvider interface {
	IsStrictFields() bool
	GetSecurity() config.SecurityConfig
}

// LogWriter provides logging operations.
type LogWriter interface {
	Debug(format string, args ...any)
	Error(format string, args ...any)
}

// attrLogger is implemented by loggers that also take structured attributes.
// When the service's logger has it, successful operations are logged through it.
type attrLogger interface {
	DebugAttrs(msg string, attrs ...slog.Attr)
}
