// Package domain contains the quotebook entities and the errors raised by
// business rules. Domain errors are transport-agnostic; adapters map them to
// HTTP statuses or translate remote responses back into them.
package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every typed error below unwraps to one of them, so callers
// test with errors.Is or the Is helpers.
var (
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("conflict")
	ErrValidation  = errors.New("validation failed")
	ErrForbidden   = errors.New("forbidden")
	ErrUnavailable = errors.New("unavailable")
)

// Entity names used in error messages.
const (
	EntityQuote         = "quote"
	EntityTag           = "tag"
	EntityTagAssignment = "tag assignment"
)

func kindOf(target error) func(error) bool {
	return func(err error) bool { return errors.Is(err, target) }
}

var (
	IsNotFound    = kindOf(ErrNotFound)
	IsConflict    = kindOf(ErrConflict)
	IsValidation  = kindOf(ErrValidation)
	IsForbidden   = kindOf(ErrForbidden)
	IsUnavailable = kindOf(ErrUnavailable)
)

// NotFoundError names the missing entity. A non-empty Message is used
// verbatim, e.g. "Tag assignment not found.".
type NotFoundError struct {
	Entity  string
	ID      string
	Message string
}

func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.ID == "" {
		return e.Entity + " not found"
	}

	return fmt.Sprintf("%s with id %q not found", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

func NewNotFoundError(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

func NewNotFoundErrorWithMessage(entity, id, message string) error {
	return &NotFoundError{Entity: entity, ID: id, Message: message}
}

// QuoteNotFound reports an unknown quote id.
func QuoteNotFound(id int64) error {
	return NewNotFoundError(EntityQuote, FormatID(id))
}

// ConflictError is a write rejected by a uniqueness rule. Without an
// Entity the Reason is the whole message.
type ConflictError struct {
	Entity string
	Reason string
}

func (e *ConflictError) Error() string {
	if e.Entity != "" {
		return fmt.Sprintf("%s conflict: %s", e.Entity, e.Reason)
	}

	return e.Reason
}

func (e *ConflictError) Unwrap() error { return ErrConflict }

func NewConflictError(entity, reason string) error {
	return &ConflictError{Entity: entity, Reason: reason}
}

// ValidationError is input that breaks a business rule. Value carries the
// offending input when it helps the caller.
type ValidationError struct {
	Field   string
	Message string
	Value   any
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation failed: " + e.Message
	}

	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

func NewValidationErrorWithValue(field, message string, value any) error {
	return &ValidationError{Field: field, Message: message, Value: value}
}

// ForbiddenError comes from remote calls answered with 403.
type ForbiddenError struct {
	Operation string
	Reason    string
}

func (e *ForbiddenError) Error() string {
	msg := fmt.Sprintf("operation %q forbidden", e.Operation)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}

	return msg
}

func (e *ForbiddenError) Unwrap() error { return ErrForbidden }

func NewForbiddenError(operation, reason string) error {
	return &ForbiddenError{Operation: operation, Reason: reason}
}

// UnavailableError reports a store, cache, broker or remote API that could
// not serve the call.
type UnavailableError struct {
	Service string
	Reason  string
}

func (e *UnavailableError) Error() string {
	msg := fmt.Sprintf("service %q unavailable", e.Service)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}

	return msg
}

func (e *UnavailableError) Unwrap() error { return ErrUnavailable }

func NewUnavailableError(service, reason string) error {
	return &UnavailableError{Service: service, Reason: reason}
}
