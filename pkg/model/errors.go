package model

import "fmt"

// ErrorCode classifies a structured scheduling error.
type ErrorCode string

const (
	ErrInvalidSubject  ErrorCode = "INVALID_SUBJECT"
	ErrInvalidSettings ErrorCode = "INVALID_SETTINGS"
	ErrValidation      ErrorCode = "VALIDATION_ERROR"
	ErrInternal        ErrorCode = "INTERNAL_ERROR"
)

// Error is the structured error returned by the scheduling engine and the
// Schedulyze API.
type Error struct {
	Code    ErrorCode    `json:"code"`
	Message string       `json:"message"`
	Details []FieldError `json:"details,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// FieldError describes a validation error on a specific field.
type FieldError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// NewInvalidSubjectError creates an INVALID_SUBJECT Error with field details.
func NewInvalidSubjectError(details ...FieldError) *Error {
	return &Error{Code: ErrInvalidSubject, Message: "one or more subjects are invalid", Details: details}
}

// NewInvalidSettingsError creates an INVALID_SETTINGS Error with field details.
func NewInvalidSettingsError(details ...FieldError) *Error {
	return &Error{Code: ErrInvalidSettings, Message: "schedule settings are invalid", Details: details}
}

// NewValidationError creates a VALIDATION_ERROR Error with validation details.
func NewValidationError(msg string, details ...FieldError) *Error {
	return &Error{Code: ErrValidation, Message: msg, Details: details}
}

// NewInternalError creates an INTERNAL_ERROR Error.
func NewInternalError(msg string) *Error {
	return &Error{Code: ErrInternal, Message: msg}
}
