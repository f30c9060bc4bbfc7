package models

import "errors"

// ErrorCode classifies service failures so transport layers can map
// them to user-facing responses without string matching.
type ErrorCode string

const (
	ErrCodeValidation  ErrorCode = "validation"
	ErrCodeNotFound    ErrorCode = "not_found"
	ErrCodeForbidden   ErrorCode = "forbidden"
	ErrCodeConflict    ErrorCode = "conflict"
	ErrCodeUnavailable ErrorCode = "unavailable"
)

// ServiceError is a coded, user-readable failure.
type ServiceError struct {
	Code    ErrorCode
	Message string
}

func (e *ServiceError) Error() string {
	return string(e.Code) + ": " + e.Message
}

func NewValidationError(msg string) error {
	return &ServiceError{Code: ErrCodeValidation, Message: msg}
}

func NewNotFoundError(msg string) error {
	return &ServiceError{Code: ErrCodeNotFound, Message: msg}
}

func NewForbiddenError(msg string) error {
	return &ServiceError{Code: ErrCodeForbidden, Message: msg}
}

func NewConflictError(msg string) error {
	return &ServiceError{Code: ErrCodeConflict, Message: msg}
}

func NewUnavailableError(msg string) error {
	return &ServiceError{Code: ErrCodeUnavailable, Message: msg}
}

// CodeOf extracts the error code, or "" for uncoded errors.
func CodeOf(err error) ErrorCode {
	var se *ServiceError
	if errors.As(err, &se) {
		return se.Code
	}
	return ""
}

// MessageOf extracts the user-readable message, falling back to Error().
func MessageOf(err error) string {
	var se *ServiceError
	if errors.As(err, &se) {
		return se.Message
	}
	return err.Error()
}
