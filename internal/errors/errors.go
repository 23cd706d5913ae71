package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents stable error codes for all transfer failure modes
type ErrorCode string

const (
	// DocumentNotFound indicates a wire record references a document the
	// snapshot no longer contains (stale reference)
	DocumentNotFound ErrorCode = "DOCUMENT_NOT_FOUND"
	// MalformedRecord indicates a wire record violates the contract
	// (required field or array absent)
	MalformedRecord ErrorCode = "MALFORMED_RECORD"
	// InvalidResult indicates a live object handed to dehydration is
	// missing required structure
	InvalidResult ErrorCode = "INVALID_RESULT"
	// ManifestInvalid indicates a document declaration file cannot be parsed
	ManifestInvalid ErrorCode = "MANIFEST_INVALID"
	// StoreUnavailable indicates the document store cannot be opened
	StoreUnavailable ErrorCode = "STORE_UNAVAILABLE"
	// InternalError indicates unexpected error
	InternalError ErrorCode = "INTERNAL_ERROR"
)

// WireError represents a transfer error with a stable code and optional details
type WireError struct {
	Code    ErrorCode   `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
	cause   error       // Underlying error (not exported to JSON)
}

// New creates a new WireError
func New(code ErrorCode, message string) *WireError {
	return &WireError{Code: code, Message: message}
}

// Wrap creates a new WireError around an underlying cause
func Wrap(code ErrorCode, message string, cause error) *WireError {
	return &WireError{Code: code, Message: message, cause: cause}
}

// Newf creates a new WireError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *WireError {
	return &WireError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Error implements the error interface
func (e *WireError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *WireError) Unwrap() error {
	return e.cause
}

// WithDetails adds details to the error
func (e *WireError) WithDetails(details interface{}) *WireError {
	e.Details = details
	return e
}

// CodeOf extracts the error code from an error chain, or InternalError if
// no WireError is present
func CodeOf(err error) ErrorCode {
	var we *WireError
	if stderrors.As(err, &we) {
		return we.Code
	}
	return InternalError
}

// HasCode reports whether the error chain contains a WireError with the
// given code
func HasCode(err error, code ErrorCode) bool {
	var we *WireError
	if stderrors.As(err, &we) {
		return we.Code == code
	}
	return false
}
