package cli

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	quillerr "github.com/mrz1836/quill/pkg/errors"
)

// maxInputSize bounds transaction and raw input read from files or stdin.
const maxInputSize = 4 << 20

// out is a helper for CLI output.
//
//nolint:errcheck // CLI output writes to stdout are intentionally unchecked
func out(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format, args...)
}

// outln is a helper for CLI output with newline.
//
//nolint:errcheck // CLI output writes to stdout are intentionally unchecked
func outln(w io.Writer, args ...any) {
	fmt.Fprintln(w, args...)
}

// hex0x renders b as 0x-prefixed lowercase hex.
func hex0x(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}

// parseHexArg decodes a hex flag or argument, with or without 0x.
func parseHexArg(name, value string) ([]byte, error) {
	s := strings.TrimSpace(value)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(s)%2 == 1 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, quillerr.WithDetails(
			quillerr.WithCause(quillerr.ErrInvalidInput, err),
			map[string]string{"argument": name},
		)
	}
	return b, nil
}

// readInput reads path, or stdin when path is "-".
func readInput(stdin io.Reader, path string) ([]byte, error) {
	var r io.Reader
	if path == "-" {
		r = stdin
	} else {
		// #nosec G304 -- path is given explicitly by the user
		f, err := os.Open(path)
		if err != nil {
			return nil, quillerr.WithDetails(
				quillerr.WithCause(quillerr.ErrInvalidInput, err),
				map[string]string{"path": path},
			)
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	data, err := io.ReadAll(io.LimitReader(r, maxInputSize+1))
	if err != nil {
		return nil, quillerr.WithCause(quillerr.ErrInvalidInput, err)
	}
	if len(data) > maxInputSize {
		return nil, quillerr.WithDetails(quillerr.ErrInvalidInput, map[string]string{
			"path":  path,
			"limit": fmt.Sprintf("%d bytes", maxInputSize),
		})
	}
	return data, nil
}
