// Package errors provides structured error handling for create-tap-react.
// It includes categorized errors with actionable remediation guidance.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCategory represents the type of error that occurred.
type ErrorCategory int

const (
	// Input errors are caused by invalid user input.
	Input ErrorCategory = iota
	// Selection errors occur when a prompt answer does not match any known choice.
	Selection
	// Fetch errors occur while downloading a template.
	Fetch
	// Install errors occur while installing project dependencies.
	Install
	// Configuration errors are caused by invalid or unreadable configuration.
	Configuration
	// Runtime errors cover everything else that goes wrong during a run.
	Runtime
)

// String returns a human-readable name for the error category.
func (c ErrorCategory) String() string {
	switch c {
	case Input:
		return "Input Error"
	case Selection:
		return "Selection Error"
	case Fetch:
		return "Fetch Error"
	case Install:
		return "Install Error"
	case Configuration:
		return "Configuration Error"
	case Runtime:
		return "Runtime Error"
	default:
		return "Error"
	}
}

// CLIError is a structured error with category and remediation guidance.
type CLIError struct {
	// Category is the type of error (Fetch, Configuration, etc.)
	Category ErrorCategory
	// Message is a human-readable description of what went wrong.
	Message string
	// Remediation is a list of actionable steps to resolve the error.
	Remediation []string
	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *CLIError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewInputError creates a new input error with the given message and remediation steps.
func NewInputError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Input,
		Message:     message,
		Remediation: remediation,
	}
}

// NewSelectionError creates a new selection error.
func NewSelectionError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Selection,
		Message:     message,
		Remediation: remediation,
	}
}

// NewConfigError creates a new configuration error.
func NewConfigError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Configuration,
		Message:     message,
		Remediation: remediation,
	}
}

// NewRuntimeError creates a new runtime error.
func NewRuntimeError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Runtime,
		Message:     message,
		Remediation: remediation,
	}
}

// Wrap wraps an existing error with a CLIError, preserving the original message.
func Wrap(err error, category ErrorCategory, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{
		Category:    category,
		Message:     err.Error(),
		Remediation: remediation,
		Err:         err,
	}
}

// WrapWithMessage wraps an error with a custom message and category.
func WrapWithMessage(err error, category ErrorCategory, message string, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{
		Category:    category,
		Message:     fmt.Sprintf("%s: %v", message, err),
		Remediation: remediation,
		Err:         err,
	}
}

// IsCLIError checks if an error is, or wraps, a CLIError.
func IsCLIError(err error) bool {
	return AsCLIError(err) != nil
}

// AsCLIError attempts to convert an error to a CLIError.
// Returns nil if no CLIError is found in the chain.
func AsCLIError(err error) *CLIError {
	var cliErr *CLIError
	if stderrors.As(err, &cliErr) {
		return cliErr
	}
	return nil
}

// IsCategory reports whether err carries a CLIError of the given category.
func IsCategory(err error, category ErrorCategory) bool {
	cliErr := AsCLIError(err)
	return cliErr != nil && cliErr.Category == category
}
