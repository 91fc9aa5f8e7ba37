// Package domain contains domain entities, value objects, and domain-specific errors.
// This package should have no external dependencies except the standard library
// and the uuid package used by the id value objects.
package domain

import (
	"errors"
	"fmt"
)

// Domain error kinds for consistent error handling across the application.
// Every error returned by a workflow wraps one of these sentinels.

var (
	// ErrNotFound is returned when a requested resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput is returned when a value object constraint is violated.
	ErrInvalidInput = errors.New("invalid input")

	// ErrSystem wraps unexpected I/O and adapter failures (database drivers,
	// external APIs, object storage). Retry policy, if any, belongs to the
	// adapter that produced the error.
	ErrSystem = errors.New("system error")
)

// DomainError wraps a base error with additional context.
// It provides a standard way to add details to domain errors.
type DomainError struct {
	// Base is the underlying error kind (e.g., ErrNotFound)
	Base error

	// Message provides human-readable context
	Message string

	// Field indicates which value object rejected its input (for validation errors)
	Field string

	// Cause is the wrapped adapter error, if any
	Cause error
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s (field: %s)", e.Base.Error(), e.Message, e.Field)
	}
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Base.Error(), e.Message)
	}
	return e.Base.Error()
}

// Unwrap returns the base error for errors.Is/As support.
func (e *DomainError) Unwrap() error {
	return e.Base
}

// NewNotFoundError creates a not found error naming the missing resource.
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Base:    ErrNotFound,
		Message: resource,
	}
}

// NewValidationError creates a validation error for a specific field.
func NewValidationError(field, message string) *DomainError {
	return &DomainError{
		Base:    ErrInvalidInput,
		Message: message,
		Field:   field,
	}
}

// NewSystemError wraps an adapter failure.
func NewSystemError(message string, cause error) *DomainError {
	return &DomainError{
		Base:    ErrSystem,
		Message: message,
		Cause:   cause,
	}
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsSystemError checks if an error is a wrapped adapter failure.
func IsSystemError(err error) bool {
	return errors.Is(err, ErrSystem)
}
