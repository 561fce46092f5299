package model

import "fmt"

// ExitCode defines the CLI failure exit codes; a successful invocation
// exits zero without going through this taxonomy. Scripts only need to
// rely on zero-vs-nonzero, but distinct codes make the failure kind
// visible to callers that want it.
type ExitCode int

const (
	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitInvalidArguments indicates flag validation failed before any
	// input was read (e.g. --delete and --value given together).
	ExitInvalidArguments ExitCode = 2

	// ExitInvalidJSONPath indicates the JSONPath literal did not parse as
	// JSON or did not decode to an array of strings and numbers.
	ExitInvalidJSONPath ExitCode = 3

	// ExitInvalidInput indicates stdin was not parseable as JSONC, or the
	// --value literal was not valid JSON.
	ExitInvalidInput ExitCode = 4

	// ExitPathNotFound indicates a valid JSONPath did not resolve to any
	// node in the document during read.
	ExitPathNotFound ExitCode = 5

	// ExitWriteFailed indicates the result could not be written to the
	// requested destination.
	ExitWriteFailed ExitCode = 6
)

// CLIError is a custom error type that carries an exit code, allowing the
// CLI layer to translate domain errors into process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
