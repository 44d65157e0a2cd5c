package signer

import (
	"errors"
	"regexp"

	ethcrypto "github.com/mrz1836/quill/internal/eth/crypto"
	"github.com/mrz1836/quill/internal/quillcrypto"
	quillerr "github.com/mrz1836/quill/pkg/errors"
)

// keyPattern is the only accepted textual form of a private key.
var keyPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`) //nolint:gochecknoglobals // compiled once, read-only

var errKeyFormat = errors.New("private key must be 0x followed by 64 hex digits")

const keySuggestion = "Provide the key as 0x followed by 64 hex digits, e.g. 0x4c08...2318"

// loadKey parses a hex private key into locked memory and checks it is a
// valid secp256k1 scalar. The caller must Destroy the result.
func loadKey(keyHex string, memoryLock bool) (*quillcrypto.SecureBytes, error) {
	if !keyPattern.MatchString(keyHex) {
		return nil, quillerr.WithSuggestion(
			quillerr.WithCause(quillerr.ErrInvalidKeyFormat, errKeyFormat),
			keySuggestion,
		)
	}

	key, err := quillcrypto.SecureBytesFromHex(keyHex, quillcrypto.WithMemoryLock(memoryLock))
	if err != nil {
		return nil, quillerr.WithCause(quillerr.ErrInvalidKeyFormat, err)
	}
	if err := ethcrypto.ValidatePrivateKey(key.Bytes()); err != nil {
		key.Destroy()
		return nil, quillerr.WithCause(quillerr.ErrInvalidKeyFormat, err)
	}
	return key, nil
}
