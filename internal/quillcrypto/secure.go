// Package quillcrypto holds private key material for the duration of a single
// signing call. Buffers are mlocked where the platform allows it and zeroed on
// Destroy. This is best-effort hardening: the Go runtime may still have copied
// the bytes elsewhere (registers, stack spills, big.Int scratch space), so it is
// not a cryptographic guarantee.
package quillcrypto

import (
	"errors"
	"runtime"
	"strings"
	"sync"
)

var (
	// ErrOddHexLength indicates a hex string with an odd number of digits.
	ErrOddHexLength = errors.New("hex string has odd length")

	// ErrInvalidHex indicates a character outside [0-9a-fA-F].
	ErrInvalidHex = errors.New("invalid hex character")
)

// Option configures a SecureBytes allocation.
type Option func(*options)

type options struct {
	memoryLock bool
}

// WithMemoryLock enables or disables mlock for the buffer. Enabled by default.
func WithMemoryLock(enabled bool) Option {
	return func(o *options) {
		o.memoryLock = enabled
	}
}

// SecureBytes is a wrapper for sensitive byte slices that provides
// secure memory handling with mlock and explicit zeroing.
type SecureBytes struct {
	data   []byte
	locked bool
	mu     sync.Mutex
}

// NewSecureBytes creates a new SecureBytes with the given size.
// The memory is locked if the system supports it.
func NewSecureBytes(size int, opts ...Option) (*SecureBytes, error) {
	o := options{memoryLock: true}
	for _, opt := range opts {
		opt(&o)
	}

	sb := &SecureBytes{
		data: make([]byte, size),
	}

	// Try to lock memory - don't fail if not possible
	if o.memoryLock {
		sb.locked = mlock(sb.data)
	}

	// Set finalizer to ensure memory is cleared even if Destroy isn't called
	runtime.SetFinalizer(sb, func(s *SecureBytes) {
		s.Destroy()
	})

	return sb, nil
}

// SecureBytesFromHex decodes a hex string (optional 0x prefix) straight into
// secure memory, so the decoded bytes never exist in an ordinary slice.
// The buffer is destroyed before any error is returned.
func SecureBytesFromHex(s string, opts ...Option) (*SecureBytes, error) {
	s = strings.TrimPrefix(s, "0x")
	if len(s)%2 != 0 {
		return nil, ErrOddHexLength
	}

	sb, err := NewSecureBytes(len(s)/2, opts...)
	if err != nil {
		return nil, err
	}

	for i := range sb.data {
		hi, ok1 := fromHexChar(s[2*i])
		lo, ok2 := fromHexChar(s[2*i+1])
		if !ok1 || !ok2 {
			sb.Destroy()
			return nil, ErrInvalidHex
		}
		sb.data[i] = hi<<4 | lo
	}
	return sb, nil
}

// fromHexChar avoids hex.DecodeString, which would allocate an unprotected copy.
func fromHexChar(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// Bytes returns the underlying byte slice.
// Returns nil if the SecureBytes has been destroyed.
func (s *SecureBytes) Bytes() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data
}

// Destroy zeros the memory and unlocks it.
// Safe to call multiple times.
func (s *SecureBytes) Destroy() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data == nil {
		return
	}

	ZeroBytes(s.data)

	// Unlock if locked
	if s.locked {
		munlock(s.data)
		s.locked = false
	}

	// Clear the slice reference
	s.data = nil

	// Remove the finalizer since we've already cleaned up
	runtime.SetFinalizer(s, nil)
}

// Len returns the length of the data.
func (s *SecureBytes) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data)
}

// String never reveals the contents.
func (s *SecureBytes) String() string {
	return "[REDACTED]"
}

// ZeroBytes overwrites b with zeros.
func ZeroBytes(b []byte) {
	clear(b)
	runtime.KeepAlive(b)
}
