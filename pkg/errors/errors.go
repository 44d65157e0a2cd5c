// Package errors provides structured error handling for Quill.
// It defines sentinel errors, exit codes, and helpers for adding
// context, details, and suggestions to errors.
//
//nolint:revive // Package name intentionally shadows stdlib for domain-specific error handling
package errors

import (
	"errors"
	"fmt"
	"sort"
)

// Exit codes returned by the CLI.
const (
	ExitSuccess  = 0 // Successful execution
	ExitGeneral  = 1 // General/unknown error
	ExitInput    = 2 // Invalid input
	ExitKey      = 3 // Private key rejected
	ExitEncoding = 4 // Malformed encoding
	ExitCrypto   = 5 // Signature could not be recovered
)

// QuillError is the structured error type for Quill.
type QuillError struct {
	Code       string            // Machine-readable error code
	Message    string            // Human-readable message
	Details    map[string]string // Additional context
	Suggestion string            // Actionable suggestion for user
	Cause      error             // Underlying error
	ExitCode   int               // Exit code for CLI
}

func (e *QuillError) Error() string {
	msg := e.Message

	// Include details in error message (sorted for deterministic output)
	if len(e.Details) > 0 {
		keys := make([]string, 0, len(e.Details))
		for k := range e.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			msg = fmt.Sprintf("%s (%s: %s)", msg, k, e.Details[k])
		}
	}

	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *QuillError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is for QuillError.
func (e *QuillError) Is(target error) bool {
	var t *QuillError
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// Sentinel errors.
var (
	ErrGeneral = &QuillError{
		Code:     "GENERAL_ERROR",
		Message:  "an error occurred",
		ExitCode: ExitGeneral,
	}

	ErrInvalidInput = &QuillError{
		Code:     "INVALID_INPUT",
		Message:  "invalid input",
		ExitCode: ExitInput,
	}

	// Signing errors.
	ErrInvalidKeyFormat = &QuillError{
		Code:     "INVALID_KEY_FORMAT",
		Message:  "private key must be 0x followed by 64 hex characters",
		ExitCode: ExitKey,
	}

	ErrInvalidFieldLength = &QuillError{
		Code:     "INVALID_FIELD_LENGTH",
		Message:  "field has an invalid length",
		ExitCode: ExitInput,
	}

	ErrFieldTooLarge = &QuillError{
		Code:     "FIELD_TOO_LARGE",
		Message:  "field exceeds its maximum length",
		ExitCode: ExitInput,
	}

	ErrUnknownField = &QuillError{
		Code:     "UNKNOWN_FIELD",
		Message:  "unknown transaction field",
		ExitCode: ExitInput,
	}

	// Codec errors.
	ErrMalformedEncoding = &QuillError{
		Code:     "MALFORMED_ENCODING",
		Message:  "malformed RLP encoding",
		ExitCode: ExitEncoding,
	}

	// Recovery errors.
	ErrRecoveryFailed = &QuillError{
		Code:     "RECOVERY_FAILED",
		Message:  "public key recovery failed",
		ExitCode: ExitCrypto,
	}

	// Config-specific errors.
	ErrConfigNotFound = &QuillError{
		Code:     "CONFIG_NOT_FOUND",
		Message:  "configuration file not found",
		ExitCode: ExitInput,
	}

	ErrConfigInvalid = &QuillError{
		Code:     "CONFIG_INVALID",
		Message:  "configuration file is invalid",
		ExitCode: ExitInput,
	}

	ErrUnknownConfigKey = &QuillError{
		Code:     "UNKNOWN_CONFIG_KEY",
		Message:  "unknown config key",
		ExitCode: ExitInput,
	}
)

// New creates a new QuillError with the given code and message.
func New(code, message string) *QuillError {
	return &QuillError{
		Code:     code,
		Message:  message,
		ExitCode: ExitGeneral,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}

	msg := fmt.Sprintf(format, args...)

	var qe *QuillError
	if errors.As(err, &qe) {
		return &QuillError{
			Code:       qe.Code,
			Message:    fmt.Sprintf("%s: %s", msg, qe.Message),
			Details:    qe.Details,
			Suggestion: qe.Suggestion,
			Cause:      err,
			ExitCode:   qe.ExitCode,
		}
	}

	return &QuillError{
		Code:     "GENERAL_ERROR",
		Message:  msg,
		Cause:    err,
		ExitCode: ExitGeneral,
	}
}

// WithCause attaches an underlying reason to a sentinel error.
// The result matches both the sentinel and the cause under errors.Is.
func WithCause(err, cause error) error {
	if err == nil {
		return nil
	}

	var qe *QuillError
	if errors.As(err, &qe) {
		return &QuillError{
			Code:       qe.Code,
			Message:    qe.Message,
			Details:    qe.Details,
			Suggestion: qe.Suggestion,
			Cause:      cause,
			ExitCode:   qe.ExitCode,
		}
	}

	return &QuillError{
		Code:     "GENERAL_ERROR",
		Message:  err.Error(),
		Cause:    cause,
		ExitCode: ExitGeneral,
	}
}

// WithDetails adds details to an error.
func WithDetails(err error, details map[string]string) error {
	if err == nil {
		return nil
	}

	var qe *QuillError
	if errors.As(err, &qe) {
		return &QuillError{
			Code:       qe.Code,
			Message:    qe.Message,
			Details:    details,
			Suggestion: qe.Suggestion,
			Cause:      qe.Cause,
			ExitCode:   qe.ExitCode,
		}
	}

	return &QuillError{
		Code:     "GENERAL_ERROR",
		Message:  err.Error(),
		Details:  details,
		Cause:    err,
		ExitCode: ExitGeneral,
	}
}

// WithSuggestion adds a suggestion to an error.
func WithSuggestion(err error, suggestion string) error {
	if err == nil {
		return nil
	}

	var qe *QuillError
	if errors.As(err, &qe) {
		return &QuillError{
			Code:       qe.Code,
			Message:    qe.Message,
			Details:    qe.Details,
			Suggestion: suggestion,
			Cause:      qe.Cause,
			ExitCode:   qe.ExitCode,
		}
	}

	return &QuillError{
		Code:       "GENERAL_ERROR",
		Message:    err.Error(),
		Suggestion: suggestion,
		Cause:      err,
		ExitCode:   ExitGeneral,
	}
}

// ExitCode returns the appropriate exit code for an error.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var qe *QuillError
	if errors.As(err, &qe) {
		return qe.ExitCode
	}

	return ExitGeneral
}

// Code returns the error code for an error.
func Code(err error) string {
	var qe *QuillError
	if errors.As(err, &qe) {
		return qe.Code
	}
	return "GENERAL_ERROR"
}

// Is wraps errors.Is for convenience.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience.
func As(err error, target any) bool {
	return errors.As(err, target)
}
