// Package output renders command results and errors as text or JSON.
package output

import (
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Format is an output format.
type Format string

// Output formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatAuto Format = "auto"
)

// Formatter carries the resolved output format for a command run.
type Formatter struct {
	format Format
}

// NewFormatter returns a formatter for an already resolved format.
func NewFormatter(format Format) *Formatter {
	return &Formatter{format: format}
}

// Format returns the resolved format.
func (f *Formatter) Format() Format {
	return f.format
}

// IsJSON reports whether results are rendered as JSON.
func (f *Formatter) IsJSON() bool {
	return f.format == FormatJSON
}

// DetectFormat resolves auto to text on a terminal and JSON otherwise.
// An explicit format is returned unchanged.
func DetectFormat(w io.Writer, explicit Format) Format {
	if explicit != FormatAuto {
		return explicit
	}

	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) { //nolint:gosec // G115: Fd() fits in int on supported platforms
		return FormatText
	}

	return FormatJSON
}

// ParseFormat maps a flag or config value onto a Format. Unknown values
// fall back to auto.
func ParseFormat(s string) Format {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatJSON:
		return FormatJSON
	case FormatText:
		return FormatText
	default:
		return FormatAuto
	}
}
