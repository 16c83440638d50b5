// Package errors provides standardized error handling for batch item processing.
package errors

import (
	"fmt"
	"strings"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeInvalidJSONParameter  ErrorCode = "INVALID_JSON_PARAMETER"
	ErrCodeInvalidParameter      ErrorCode = "INVALID_PARAMETER"
	ErrCodeUnsupportedResource   ErrorCode = "UNSUPPORTED_RESOURCE"
	ErrCodeUnsupportedOperation  ErrorCode = "UNSUPPORTED_OPERATION"
	ErrCodeInputValidationFailed ErrorCode = "INPUT_VALIDATION_FAILED"
	ErrCodeAPIRequestFailed      ErrorCode = "API_REQUEST_FAILED"
	ErrCodeNotConfigured         ErrorCode = "CONNECTOR_NOT_CONFIGURED"
)

// StandardError represents a structured application error. ItemIndex carries
// the zero-based position of the input item the error belongs to; -1 means the
// error is not tied to a specific item.
type StandardError struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	ItemIndex int       `json:"itemIndex"`
	Retryable bool      `json:"retryable"`
	Timestamp time.Time `json:"timestamp"`
	Cause     error     `json:"-"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

func (e *StandardError) Unwrap() error {
	return e.Cause
}

// NewInvalidJSONParameterError creates a non-retryable error for a JSON-text
// parameter that failed to parse, attributing the parameter name and item index.
func NewInvalidJSONParameterError(param string, itemIndex int, cause error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidJSONParameter,
		Message:   fmt.Sprintf("Parameter %q for item %d is not valid JSON", param, itemIndex),
		Details:   cause.Error(),
		ItemIndex: itemIndex,
		Retryable: false,
		Timestamp: time.Now().UTC(),
		Cause:     cause,
	}
}

// NewInvalidParameterError creates a non-retryable error for a parameter whose
// value could not be interpreted (for example a non-numeric entry in a
// comma-separated ID list).
func NewInvalidParameterError(param string, itemIndex int, cause error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidParameter,
		Message:   fmt.Sprintf("Parameter %q for item %d has an invalid value", param, itemIndex),
		Details:   cause.Error(),
		ItemIndex: itemIndex,
		Retryable: false,
		Timestamp: time.Now().UTC(),
		Cause:     cause,
	}
}

// NewUnsupportedResourceError creates a non-retryable error for a resource
// value outside the supported enumeration.
func NewUnsupportedResourceError(resource string, itemIndex int) *StandardError {
	return &StandardError{
		Code:      ErrCodeUnsupportedResource,
		Message:   fmt.Sprintf("Unsupported resource %q for item %d", resource, itemIndex),
		ItemIndex: itemIndex,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewUnsupportedOperationError creates a non-retryable error for an operation
// the given resource does not support.
func NewUnsupportedOperationError(resource, operation string, itemIndex int) *StandardError {
	return &StandardError{
		Code:      ErrCodeUnsupportedOperation,
		Message:   fmt.Sprintf("Resource %q does not support operation %q (item %d)", resource, operation, itemIndex),
		ItemIndex: itemIndex,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInputValidationError creates a non-retryable error carrying the schema
// validation messages for one input item.
func NewInputValidationError(itemIndex int, messages []string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInputValidationFailed,
		Message:   fmt.Sprintf("Input validation failed for item %d", itemIndex),
		Details:   strings.Join(messages, "; "),
		ItemIndex: itemIndex,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewAPIRequestError creates a retryable error for a non-2xx API response.
func NewAPIRequestError(status int, body string) *StandardError {
	return &StandardError{
		Code:      ErrCodeAPIRequestFailed,
		Message:   fmt.Sprintf("Crono API request failed with status %d", status),
		Details:   body,
		ItemIndex: -1,
		Retryable: status >= 500,
		Timestamp: time.Now().UTC(),
	}
}

// NewNotConfiguredError creates a non-retryable error for missing credentials.
func NewNotConfiguredError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeNotConfigured,
		Message:   "Crono API credentials are not configured",
		Details:   details,
		ItemIndex: -1,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// Code extracts the standardized code from an error, or UNKNOWN_ERROR.
func Code(err error) ErrorCode {
	if stdErr, ok := err.(*StandardError); ok {
		return stdErr.Code
	}
	return "UNKNOWN_ERROR"
}

// IsCode reports whether err is a StandardError with the given code.
func IsCode(err error, code ErrorCode) bool {
	stdErr, ok := err.(*StandardError)
	return ok && stdErr.Code == code
}
