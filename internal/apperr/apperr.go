package apperr

import (
	"errors"
	"fmt"
	"os"

	"github.com/goalpost/goalpost/internal/logger"
)

// Kind classifies an application error.
type Kind string

const (
	// KindNotFound indicates a referenced user, goal, or item does not exist
	KindNotFound Kind = "not_found"
	// KindValidationFailed indicates a loaded record failed schema validation
	KindValidationFailed Kind = "validation_failed"
	// KindOperationFailed wraps a lower-level failure during a read or write
	KindOperationFailed Kind = "operation_failed"
	// KindInvalidInput indicates the caller passed missing or malformed arguments
	KindInvalidInput Kind = "invalid_input"
)

// Error is a typed application error carrying a human-readable message and
// the original cause.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches errors by kind so callers can use errors.Is with the sentinel
// constructors below.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind
}

// NotFound creates a NotFound error.
func NotFound(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

// ValidationFailed creates a ValidationFailed error wrapping cause.
func ValidationFailed(cause error, format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidationFailed, Msg: fmt.Sprintf(format, args...), Err: cause}
}

// OperationFailed creates an OperationFailed error wrapping cause.
func OperationFailed(cause error, format string, args ...interface{}) *Error {
	return &Error{Kind: KindOperationFailed, Msg: fmt.Sprintf(format, args...), Err: cause}
}

// InvalidInput creates an InvalidInput error.
func InvalidInput(format string, args ...interface{}) *Error {
	return &Error{Kind: KindInvalidInput, Msg: fmt.Sprintf(format, args...)}
}

// IsNotFound reports whether err is a NotFound error.
func IsNotFound(err error) bool {
	return errors.Is(err, &Error{Kind: KindNotFound})
}

// IsValidationFailed reports whether err is a ValidationFailed error.
func IsValidationFailed(err error) bool {
	return errors.Is(err, &Error{Kind: KindValidationFailed})
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}
