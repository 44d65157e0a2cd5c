package output

import (
	"fmt"
	"io"
)

// Warn prints a warning line to w.
func Warn(w io.Writer, msg string) {
	_, _ = fmt.Fprintln(w, "warning: "+msg)
}

// Warnf prints a formatted warning line to w.
func Warnf(w io.Writer, format string, args ...any) {
	Warn(w, fmt.Sprintf(format, args...))
}
