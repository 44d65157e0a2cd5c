package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// LogLevel is the logging verbosity.
type LogLevel int

// Log levels, from quietest to loudest.
const (
	LogLevelOff LogLevel = iota
	LogLevelError
	LogLevelDebug
)

// ParseLogLevel maps a config value onto a LogLevel. Unknown values mean error.
func ParseLogLevel(s string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "off", "none":
		return LogLevelOff
	case "debug":
		return LogLevelDebug
	default:
		return LogLevelError
	}
}

// String returns the config spelling of the level.
func (l LogLevel) String() string {
	switch l {
	case LogLevelOff:
		return "off"
	case LogLevelDebug:
		return "debug"
	default:
		return "error"
	}
}

func (l LogLevel) slogLevel() slog.Level {
	if l == LogLevelDebug {
		return slog.LevelDebug
	}
	return slog.LevelError
}

// Logger appends diagnostics to a file. It never writes to stdout or stderr,
// so command output stays machine readable.
// Key material must never be passed to any of its methods.
type Logger struct {
	mu      sync.Mutex
	level   LogLevel
	file    *os.File
	records *slog.Logger
}

// NewLogger opens filePath for appending and writes plain text lines.
// A level of off or an empty path yields a logger that drops everything.
func NewLogger(level LogLevel, filePath string) (*Logger, error) {
	return openLogger(level, filePath, false)
}

// NewStructuredLogger is NewLogger with attribute records written as JSON.
func NewStructuredLogger(level LogLevel, filePath string) (*Logger, error) {
	return openLogger(level, filePath, true)
}

func openLogger(level LogLevel, filePath string, jsonRecords bool) (*Logger, error) {
	l := &Logger{level: level}
	if level == LogLevelOff || filePath == "" {
		return l, nil
	}

	if rest, ok := strings.CutPrefix(filePath, "~/"); ok {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		filePath = filepath.Join(home, rest)
	}

	if err := os.MkdirAll(filepath.Dir(filePath), 0o750); err != nil {
		return nil, err
	}

	// #nosec G304 -- path comes from the loaded config
	f, err := os.OpenFile(filePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level.slogLevel()}
	var h slog.Handler = slog.NewTextHandler(f, opts)
	if jsonRecords {
		h = slog.NewJSONHandler(f, opts)
	}

	l.file = f
	l.records = slog.New(h)
	return l, nil
}

// NullLogger returns a logger that drops everything.
func NullLogger() *Logger {
	return &Logger{level: LogLevelOff}
}

// Close closes the underlying file, if any.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file, l.records = nil, nil
	return err
}

// Debug writes a printf-style debug line.
func (l *Logger) Debug(format string, args ...any) {
	l.printf(LogLevelDebug, format, args...)
}

// Error writes a printf-style error line.
func (l *Logger) Error(format string, args ...any) {
	l.printf(LogLevelError, format, args...)
}

// DebugAttrs writes a debug record with structured attributes.
func (l *Logger) DebugAttrs(msg string, attrs ...slog.Attr) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.enabled(LogLevelDebug) {
		return
	}
	l.records.LogAttrs(context.Background(), slog.LevelDebug, msg, attrs...)
}

func (l *Logger) printf(level LogLevel, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.enabled(level) {
		return
	}
	_, _ = fmt.Fprintf(l.file, "%s [%s] %s\n",
		time.Now().Format("2006-01-02 15:04:05.000"),
		strings.ToUpper(level.String()),
		fmt.Sprintf(format, args...))
}

// enabled must be called with mu held.
func (l *Logger) enabled(level LogLevel) bool {
	return l.file != nil && l.level != LogLevelOff && level <= l.level
}
