package cli

import "errors"

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: I/O failures, cancelled submissions, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing arguments, unknown flags, invalid flag values.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Unknown project ID or team member ID.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Unreadable catalog files, malformed JSON, duplicate IDs.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Contact form fields or setup answers that fail validation.
	ExitValidation = 5
)

// ExitCodeError carries the process exit code for an error that has
// already been reported to the user
type ExitCodeError struct {
	Code int
	Err  error
}

func (e *ExitCodeError) Error() string {
	if e.Err == nil {
		return "exit status"
	}
	return e.Err.Error()
}

func (e *ExitCodeError) Unwrap() error {
	return e.Err
}

// WithExitCode marks err as reported and attaches the exit code
func WithExitCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &ExitCodeError{Code: code, Err: err}
}

// ExitCode extracts the exit code for err.
// Errors that were never reported (cobra argument and flag errors) map to ExitUsage.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var coded *ExitCodeError
	if errors.As(err, &coded) {
		return coded.Code
	}
	return ExitUsage
}

// Reported tells whether err has already been written to the user
func Reported(err error) bool {
	var coded *ExitCodeError
	return errors.As(err, &coded)
}
