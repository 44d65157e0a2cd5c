package cli

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/mrz1836/quill/internal/config"
	"github.com/mrz1836/quill/internal/quillcrypto"
	quillerr "github.com/mrz1836/quill/pkg/errors"
)

// promptSecretFn reads hidden input. Replaced in tests.
//
//nolint:gochecknoglobals // swappable for tests
var promptSecretFn = promptSecret

// promptSecret prompts on stderr and reads a line from the terminal without echo.
// The caller is responsible for zeroing the returned bytes after use.
func promptSecret(prompt string) ([]byte, error) {
	out(os.Stderr, "%s", prompt)

	secret, err := term.ReadPassword(int(os.Stdin.Fd())) //nolint:gosec // G115: Fd() returns uintptr, safe conversion for term.ReadPassword
	outln(os.Stderr) // Add newline after hidden input

	if err != nil {
		return nil, fmt.Errorf("reading secret: %w", err)
	}
	return secret, nil
}

// readPrivateKey returns the signing key from QUILL_PRIVATE_KEY or, failing
// that, from a hidden terminal prompt. Surrounding whitespace is removed.
func readPrivateKey() (string, error) {
	if key, ok := os.LookupEnv(config.EnvPrivateKey); ok && strings.TrimSpace(key) != "" {
		return strings.TrimSpace(key), nil
	}

	raw, err := promptSecretFn("Private key (0x...): ")
	if err != nil {
		return "", quillerr.WithSuggestion(
			quillerr.WithCause(quillerr.ErrInvalidKeyFormat, err),
			fmt.Sprintf("set %s or run quill from an interactive terminal", config.EnvPrivateKey),
		)
	}
	defer quillcrypto.ZeroBytes(raw)

	return strings.TrimSpace(string(raw)), nil
}
