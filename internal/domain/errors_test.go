package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
		kind    error
	}{
		{"quote by id", QuoteNotFound(42), `quote with id "42" not found`, ErrNotFound},
		{"tag without id", NewNotFoundError(EntityTag, ""), "tag not found", ErrNotFound},
		{"fixed not found message", NewNotFoundErrorWithMessage(EntityTagAssignment, "7/3", "Tag assignment not found."), "Tag assignment not found.", ErrNotFound},
		{"conflict with entity", NewConflictError(EntityTag, "name taken"), "tag conflict: name taken", ErrConflict},
		{"bare conflict", NewConflictError("", "Tag already assigned to quote."), "Tag already assigned to quote.", ErrConflict},
		{"field validation", NewValidationError("content", "must not be empty"), "validation failed for content: must not be empty", ErrValidation},
		{"general validation", NewValidationError("", "no fields to update"), "validation failed: no fields to update", ErrValidation},
		{"validation with value", NewValidationErrorWithValue("likes", "Invalid field: likes", 99), "validation failed for likes: Invalid field: likes", ErrValidation},
		{"forbidden with reason", NewForbiddenError("replace quote", "read only"), `operation "replace quote" forbidden: read only`, ErrForbidden},
		{"forbidden", NewForbiddenError("like quote", ""), `operation "like quote" forbidden`, ErrForbidden},
		{"unavailable with reason", NewUnavailableError("quotes-api", "circuit open"), `service "quotes-api" unavailable: circuit open`, ErrUnavailable},
		{"unavailable", NewUnavailableError("cache", ""), `service "cache" unavailable`, ErrUnavailable},
	}

	kinds := []error{ErrNotFound, ErrConflict, ErrValidation, ErrForbidden, ErrUnavailable}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.message, tt.err.Error())

			wrapped := fmt.Errorf("repository: %w", fmt.Errorf("query: %w", tt.err))
			for _, kind := range kinds {
				assert.Equal(t, kind == tt.kind, errors.Is(wrapped, kind), "kind %v", kind)
			}
		})
	}
}

func TestErrors_As(t *testing.T) {
	wrap := func(err error) error { return fmt.Errorf("service: %w", err) }

	var notFound *NotFoundError
	if assert.ErrorAs(t, wrap(QuoteNotFound(9)), &notFound) {
		assert.Equal(t, EntityQuote, notFound.Entity)
		assert.Equal(t, "9", notFound.ID)
	}

	var conflict *ConflictError
	if assert.ErrorAs(t, wrap(NewConflictError(EntityTagAssignment, "duplicate")), &conflict) {
		assert.Equal(t, "duplicate", conflict.Reason)
	}

	var validation *ValidationError
	if assert.ErrorAs(t, wrap(NewValidationErrorWithValue("pageSize", "must be positive", 0)), &validation) {
		assert.Equal(t, "pageSize", validation.Field)
		assert.Equal(t, 0, validation.Value)
	}

	var forbidden *ForbiddenError
	if assert.ErrorAs(t, wrap(NewForbiddenError("attach tag", "read only")), &forbidden) {
		assert.Equal(t, "attach tag", forbidden.Operation)
	}

	var unavailable *UnavailableError
	if assert.ErrorAs(t, wrap(NewUnavailableError("redis", "connection refused")), &unavailable) {
		assert.Equal(t, "redis", unavailable.Service)
	}
}

func TestIsHelpers(t *testing.T) {
	helpers := map[string]struct {
		is   func(error) bool
		kind error
	}{
		"IsNotFound":    {IsNotFound, ErrNotFound},
		"IsConflict":    {IsConflict, ErrConflict},
		"IsValidation":  {IsValidation, ErrValidation},
		"IsForbidden":   {IsForbidden, ErrForbidden},
		"IsUnavailable": {IsUnavailable, ErrUnavailable},
	}

	for name, h := range helpers {
		t.Run(name, func(t *testing.T) {
			assert.True(t, h.is(h.kind))
			assert.True(t, h.is(fmt.Errorf("wrapped: %w", h.kind)))
			assert.False(t, h.is(nil))
			assert.False(t, h.is(errors.New(h.kind.Error())))
		})
	}
}
