package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Exit codes for ctmembers. Every failure exits with the same code; the
// cause is only distinguished by the message on stderr.
const (
	ExitSuccess = 0 // Members reported
	ExitFailure = 1 // Any failure: usage, open, status read, member query
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil and ExitFailure if the error is not an ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter renders reports and errors as text, JSON or YAML.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // Errors and diagnostics (defaults to Writer)
	Verbose   bool
	TraceID   string // Invocation id stamped on JSON/YAML envelopes
}

// CLIResponse is the standard machine-readable response envelope.
type CLIResponse struct {
	Status  string      `json:"status" yaml:"status"`                         // "ok" or "error"
	Data    interface{} `json:"data,omitempty" yaml:"data,omitempty"`         // success payload
	Error   *CLIError   `json:"error,omitempty" yaml:"error,omitempty"`       // error details
	TraceID string      `json:"trace_id,omitempty" yaml:"trace_id,omitempty"` // invocation id
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string      `json:"code" yaml:"code"`                           // "USAGE", "IO", ...
	Message string      `json:"message" yaml:"message"`                     // human-readable message
	Details interface{} `json:"details,omitempty" yaml:"details,omitempty"` // additional context
}

// Success writes a result to Writer in the configured format.
func (f *OutputFormatter) Success(data interface{}) error {
	resp := CLIResponse{Status: "ok", Data: data, TraceID: f.TraceID}
	switch f.Format {
	case "json":
		return json.NewEncoder(f.Writer).Encode(resp)
	case "yaml":
		return encodeYAML(f.Writer, resp)
	}

	// Human-readable text output
	_, err := fmt.Fprintln(f.Writer, data)
	return err
}

// Error writes an error to ErrWriter in the configured format.
func (f *OutputFormatter) Error(code, message string, details interface{}) error {
	w := f.GetErrWriter()
	resp := CLIResponse{
		Status: "error",
		Error: &CLIError{
			Code:    code,
			Message: message,
			Details: details,
		},
		TraceID: f.TraceID,
	}
	switch f.Format {
	case "json":
		return json.NewEncoder(w).Encode(resp)
	case "yaml":
		return encodeYAML(w, resp)
	}

	// Human-readable error
	fmt.Fprintf(w, "Error [%s]: %s\n", code, message)
	if f.Verbose && details != nil {
		fmt.Fprintf(w, "Details: %v\n", details)
	}
	return nil
}

// VerboseLog outputs a message to ErrWriter only if verbose mode is enabled.
func (f *OutputFormatter) VerboseLog(format string, args ...interface{}) {
	if !f.Verbose {
		return
	}
	fmt.Fprintf(f.GetErrWriter(), format+"\n", args...)
}

// GetErrWriter returns the appropriate writer for diagnostic output.
// Returns ErrWriter if set, otherwise Writer.
func (f *OutputFormatter) GetErrWriter() io.Writer {
	if f.ErrWriter != nil {
		return f.ErrWriter
	}
	return f.Writer
}

func encodeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
