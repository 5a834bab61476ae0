package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/jsamuelsen/quotebook/internal/domain"
)

// Operation outcomes recorded by quoteOperations.
const (
	outcomeSuccess     = "success"
	outcomeNotFound    = "not_found"
	outcomeInvalid     = "invalid"
	outcomeConflict    = "conflict"
	outcomeUnavailable = "unavailable"
	outcomeError       = "error"
)

var quoteOperations = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "quotebook_quote_operations_total",
	Help: "Quote service operations by operation and outcome.",
}, []string{"operation", "outcome"})

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return outcomeSuccess
	case domain.IsNotFound(err):
		return outcomeNotFound
	case domain.IsValidation(err):
		return outcomeInvalid
	case domain.IsConflict(err):
		return outcomeConflict
	case domain.IsUnavailable(err):
		return outcomeUnavailable
	default:
		return outcomeError
	}
}

func observe(operation string, err error) {
	quoteOperations.WithLabelValues(operation, outcomeOf(err)).Inc()
}
