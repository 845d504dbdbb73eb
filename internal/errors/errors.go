package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/julianstephens/uvcast/internal/logger"
)

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// ExitError carries a process exit status. Reported errors were already
// shown to the user and are only logged by Fatal.
type ExitError struct {
	Code     int
	Reported bool
	Err      error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// Reported wraps err as already shown to the user, exiting with code
func Reported(code int, err error) error {
	return &ExitError{Code: code, Reported: true, Err: err}
}

// ExitCode returns the exit status for err: 0 for nil, the ExitError code
// when one is in the chain, 1 otherwise
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if stderrors.As(err, &exitErr) && exitErr.Code > 0 {
		return exitErr.Code
	}
	return 1
}

// Fatal logs an error and exits the program with its exit code
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		var exitErr *ExitError
		if !stderrors.As(err, &exitErr) || !exitErr.Reported {
			fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		}
		os.Exit(ExitCode(err))
	}
}

// Fatalf logs and formats an error message, then exits the program with exit code 1
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}
