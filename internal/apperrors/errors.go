package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates a missing, unknown or expired API key.
var ErrUnauthorized = errors.New("unauthorized")

// ErrInvalidDescriptor indicates a blank currency descriptor. It is a validation error.
var ErrInvalidDescriptor = fmt.Errorf("%w: currency descriptor is required", ErrValidation)

// ErrExchangeRateNotFound is the single failure kind returned by the rate resolver.
var ErrExchangeRateNotFound = errors.New("exchange rate not found")

// AppError carries an HTTP-ish status code alongside a wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates an AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *AppError) Unwrap() error {
	return e.Err
}
