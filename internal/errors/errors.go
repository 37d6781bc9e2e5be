// Package errors provides a lightweight structured error type (ScratchError)
// for category-based classification of workspace, editor and session failures,
// and for exit-code selection in the CLI.
package errors

import (
	stdErrors "errors"
	"fmt"
)

// ErrorCategory represents the category of a scratch error for classification
type ErrorCategory string

const (
	// User-facing configuration and input errors
	CategoryConfig ErrorCategory = "config"

	// Workspace safety errors
	CategoryContainment ErrorCategory = "containment"
	CategoryNotFound    ErrorCategory = "not_found"

	// External process errors
	CategoryProcess ErrorCategory = "process"

	// Filesystem errors (template write, copy, delete)
	CategoryFileSystem ErrorCategory = "filesystem"

	CategoryInternal ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops execution
	SeverityError   ErrorSeverity = "error"   // Error, but not fatal
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded functionality
)

// ScratchError is a structured error with category, severity and context
type ScratchError struct {
	Category ErrorCategory `json:"category"`
	Severity ErrorSeverity `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for ScratchError
type ContextFields map[string]any

// Error implements the error interface
func (e *ScratchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap implements error unwrapping for Go 1.13+ error handling
func (e *ScratchError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *ScratchError) WithContext(key string, value any) *ScratchError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new ScratchError
func New(category ErrorCategory, severity ErrorSeverity, message string) *ScratchError {
	return &ScratchError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// Wrap creates a new ScratchError that wraps an existing error
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *ScratchError {
	return &ScratchError{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}

// As finds the first ScratchError in err's chain.
func As(err error) (*ScratchError, bool) {
	var se *ScratchError
	if stdErrors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// IsCategory checks if an error (or anything it wraps) belongs to a specific category
func IsCategory(err error, category ErrorCategory) bool {
	if se, ok := As(err); ok {
		return se.Category == category
	}
	return false
}

// GetCategory extracts the category from an error, or returns CategoryInternal if not a ScratchError
func GetCategory(err error) ErrorCategory {
	if se, ok := As(err); ok {
		return se.Category
	}
	return CategoryInternal
}
