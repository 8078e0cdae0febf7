package cli

import "errors"

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: log file errors, output failures, or any error that doesn't
	// fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: unknown flags, unexpected arguments, an unknown log level.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: a --config path that doesn't exist.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: a config file that cannot be parsed.
	ExitDataErr = 4
)

// CodedError pairs an error with the exit code the process should report
type CodedError struct {
	Code int
	Err  error
}

func (e *CodedError) Error() string {
	return e.Err.Error()
}

func (e *CodedError) Unwrap() error {
	return e.Err
}

// WithExitCode attaches an exit code to err. A nil err stays nil.
func WithExitCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &CodedError{Code: code, Err: err}
}

// ExitCode returns the exit code for err
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var coded *CodedError
	if errors.As(err, &coded) {
		return coded.Code
	}
	return ExitError
}

// ErrorCode returns the machine-readable code reported in the JSON error envelope
func ErrorCode(err error) string {
	switch ExitCode(err) {
	case ExitUsage:
		return "USAGE_ERROR"
	case ExitNotFound:
		return "NOT_FOUND"
	case ExitDataErr:
		return "DATA_ERROR"
	default:
		return "ERROR"
	}
}

// reportedError marks an error that has already been written to the user
type reportedError struct {
	err error
}

func (e *reportedError) Error() string {
	return e.err.Error()
}

func (e *reportedError) Unwrap() error {
	return e.err
}

// MarkReported records that err was already written out, so main does not print it again
func MarkReported(err error) error {
	if err == nil {
		return nil
	}
	return &reportedError{err: err}
}

// IsReported reports whether err passed through MarkReported
func IsReported(err error) bool {
	var reported *reportedError
	return errors.As(err, &reported)
}
