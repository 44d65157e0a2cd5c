package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	quillerr "github.com/mrz1836/quill/pkg/errors"
)

// ErrorOutput represents a structured error for JSON output.
type ErrorOutput struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error details.
type ErrorDetail struct {
	Code       string            `json:"code"`
	Message    string            `json:"message"`
	Cause      string            `json:"cause,omitempty"`
	Details    map[string]string `json:"details,omitempty"`
	Suggestion string            `json:"suggestion,omitempty"`
	ExitCode   int               `json:"exit_code"`
}

// FormatError formats an error for display.
func FormatError(w io.Writer, err error, format Format) error {
	if err == nil {
		return nil
	}

	if format == FormatJSON {
		return formatErrorJSON(w, err)
	}
	return formatErrorText(w, err)
}

func detailOf(err error) ErrorDetail {
	var qe *quillerr.QuillError
	if !errors.As(err, &qe) {
		return ErrorDetail{
			Code:     "GENERAL_ERROR",
			Message:  err.Error(),
			ExitCode: quillerr.ExitGeneral,
		}
	}

	detail := ErrorDetail{
		Code:       qe.Code,
		Message:    qe.Message,
		Details:    qe.Details,
		Suggestion: qe.Suggestion,
		ExitCode:   qe.ExitCode,
	}
	if qe.Cause != nil {
		detail.Cause = qe.Cause.Error()
	}
	return detail
}

// formatErrorJSON outputs error in JSON format.
func formatErrorJSON(w io.Writer, err error) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(ErrorOutput{Error: detailOf(err)})
}

// formatErrorText outputs error in text format.
func formatErrorText(w io.Writer, err error) error {
	detail := detailOf(err)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Error: %s\n", detail.Message))
	if detail.Cause != "" {
		sb.WriteString(fmt.Sprintf("Cause: %s\n", detail.Cause))
	}

	if len(detail.Details) > 0 {
		keys := make([]string, 0, len(detail.Details))
		for k := range detail.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		sb.WriteString("\nDetails:\n")
		for _, k := range keys {
			sb.WriteString(fmt.Sprintf("  %s: %s\n", k, detail.Details[k]))
		}
	}

	if detail.Suggestion != "" {
		sb.WriteString(fmt.Sprintf("\nSuggestion: %s\n", detail.Suggestion))
	}

	_, writeErr := w.Write([]byte(sb.String()))
	return writeErr
}

// FormatSuccess formats a success message.
func FormatSuccess(w io.Writer, message string, format Format) error {
	if format == FormatJSON {
		output := map[string]string{"status": "success", "message": message}
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(output)
	}
	_, err := fmt.Fprintln(w, message)
	return err
}
