package domain

import (
	"errors"
	"fmt"
)

// DomainError represents an application error with a structured error code.
type DomainError struct {
	Code    string // Error code (e.g., "EN-CONF-1101")
	Message string // Human-readable message
	Details string // Optional additional details
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if e.Details != "" {
		msg += ": " + e.Details
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is() support for error comparison.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new DomainError with the given code and message.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *DomainError) WithDetails(details string) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Cause:   e.Cause,
	}
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *DomainError) WithCause(cause error) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		Cause:   cause,
	}
}

// IsDomainError checks if an error is a DomainError with the given code.
// If code is empty, it only checks if the error is a DomainError.
func IsDomainError(err error, code string) bool {
	var de *DomainError
	if errors.As(err, &de) {
		if code == "" {
			return true
		}
		return de.Code == code
	}
	return false
}

// GetErrorCode extracts the error code from an error if it's a DomainError.
func GetErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// ============================================================================
// Argument Errors (ARG)
// ============================================================================

var (
	// ErrInsufficientParameters indicates too few configuration files were named.
	ErrInsufficientParameters = NewDomainError("EN-ARG-1001", "insufficient number of parameters")

	// ErrInvalidArgument indicates an invalid flag or option value.
	ErrInvalidArgument = NewDomainError("EN-ARG-1002", "invalid argument")
)

// ============================================================================
// Configuration Errors (CONF)
// ============================================================================

var (
	// ErrConfigFileOpen indicates a configuration file could not be read.
	ErrConfigFileOpen = NewDomainError("EN-CONF-1101", "error opening configuration file")

	// ErrConfigInvalid indicates the application settings failed verification.
	ErrConfigInvalid = NewDomainError("EN-CONF-1102", "invalid settings")
)

// ============================================================================
// Session Errors (SESS)
// ============================================================================

var (
	// ErrSessionWrite indicates the ciphertext could not be written.
	ErrSessionWrite = NewDomainError("EN-SESS-1201", "output write failed")

	// ErrSessionRead indicates the input could not be read.
	ErrSessionRead = NewDomainError("EN-SESS-1202", "input read failed")
)
