package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorCode identifies a class of application error.
type ErrorCode string

const (
	ErrCodeInternal   ErrorCode = "INTERNAL_ERROR"
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"
	ErrCodeNotFound   ErrorCode = "NOT_FOUND"
	ErrCodeBadRequest ErrorCode = "BAD_REQUEST"

	ErrCodeIdentityNotFound    ErrorCode = "IDENTITY_NOT_FOUND"
	ErrCodeInvalidDocumentType ErrorCode = "INVALID_DOCUMENT_TYPE"
	ErrCodeInvalidPayload      ErrorCode = "INVALID_PAYLOAD"

	ErrCodeStorageUnavailable ErrorCode = "STORAGE_UNAVAILABLE"
)

// AppError is the typed error carried across service boundaries.
type AppError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   map[string]interface{} `json:"details,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
	RequestID string                 `json:"request_id,omitempty"`
	Cause     error                  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// IsNotFound reports whether the error is a "not found" class error.
func (e *AppError) IsNotFound() bool {
	return e.Code == ErrCodeNotFound || e.Code == ErrCodeIdentityNotFound
}

// IsValidation reports whether the error is a validation class error.
func (e *AppError) IsValidation() bool {
	return e.Code == ErrCodeValidation || e.Code == ErrCodeInvalidDocumentType || e.Code == ErrCodeInvalidPayload
}

// IsStorage reports whether the error is a backend storage failure.
func (e *AppError) IsStorage() bool {
	return e.Code == ErrCodeStorageUnavailable
}

// WithDetail attaches structured detail to the error.
func (e *AppError) WithDetail(key string, value interface{}) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithRequestID attaches the originating request id.
func (e *AppError) WithRequestID(requestID string) *AppError {
	e.RequestID = requestID
	return e
}

// New creates an AppError with the given code and message.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:      code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// Wrap creates an AppError wrapping an underlying cause.
func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{
		Code:      code,
		Message:   message,
		Timestamp: time.Now(),
		Cause:     err,
	}
}

// NewValidationError creates a validation error for a single field.
func NewValidationError(field, reason string) *AppError {
	return New(ErrCodeValidation, fmt.Sprintf("Validation failed for field '%s': %s", field, reason)).
		WithDetail("field", field)
}

// NewIdentityNotFoundError creates a not-found error for an identity id.
func NewIdentityNotFoundError(id string) *AppError {
	return New(ErrCodeIdentityNotFound, "Identity not found").
		WithDetail("identity_id", id)
}

// NewInvalidDocumentTypeError creates a configuration error for an
// unrecognized document type.
func NewInvalidDocumentTypeError(docType string) *AppError {
	return New(ErrCodeInvalidDocumentType, fmt.Sprintf("Unknown document type: %s", docType)).
		WithDetail("document_type", docType)
}

// NewStorageError creates a storage-unavailable error for a failed backend
// operation.
func NewStorageError(operation string, err error) *AppError {
	return Wrap(err, ErrCodeStorageUnavailable, fmt.Sprintf("Storage operation '%s' failed", operation)).
		WithDetail("operation", operation)
}

// AsAppError extracts an AppError from an error chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
