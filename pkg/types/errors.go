package types

import (
	"errors"
	"fmt"
)

// ErrorType represents different categories of errors
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeNotFound   ErrorType = "not_found"
	ErrorTypeConflict   ErrorType = "conflict"
	ErrorTypeInternal   ErrorType = "internal"
)

// HMSError represents a structured error in the hospital management system
type HMSError struct {
	Type    ErrorType              `json:"type"`
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

// Error implements the error interface
func (e *HMSError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause error
func (e *HMSError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a new validation error
func NewValidationError(code, message string, details map[string]interface{}) *HMSError {
	return &HMSError{
		Type:    ErrorTypeValidation,
		Code:    code,
		Message: message,
		Details: details,
	}
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(code, message string) *HMSError {
	return &HMSError{
		Type:    ErrorTypeNotFound,
		Code:    code,
		Message: message,
	}
}

// NewConflictError creates a new conflict error
func NewConflictError(code, message string, cause error) *HMSError {
	return &HMSError{
		Type:    ErrorTypeConflict,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewInternalError creates a new internal error
func NewInternalError(code, message string, cause error) *HMSError {
	return &HMSError{
		Type:    ErrorTypeInternal,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// ErrorCode extracts the structured code from an error chain, or "" if none
func ErrorCode(err error) string {
	var hmsErr *HMSError
	if errors.As(err, &hmsErr) {
		return hmsErr.Code
	}
	return ""
}

// IsErrorType reports whether the error chain carries an HMSError of the given type
func IsErrorType(err error, t ErrorType) bool {
	var hmsErr *HMSError
	if errors.As(err, &hmsErr) {
		return hmsErr.Type == t
	}
	return false
}

// Common error codes
const (
	ErrCodeInvalidInput  = "INVALID_INPUT"
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeConflict      = "CONFLICT"
	ErrCodeInternalError = "INTERNAL_ERROR"
	ErrCodeRequiredField = "REQUIRED_FIELD_MISSING"

	// Billing error codes
	ErrCodeInvalidNumberFormat = "INVALID_NUMBER_FORMAT"
	ErrCodePatientNotSelected  = "PATIENT_NOT_SELECTED"
	ErrCodeEmptyBill           = "EMPTY_BILL"
	ErrCodePersistenceError    = "PERSISTENCE_ERROR"
	ErrCodeDuplicateID         = "DUPLICATE_ID"
)
