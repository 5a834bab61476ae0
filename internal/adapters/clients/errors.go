// Package clients is the HTTP transport the quotes API client is built on.
package clients

import "errors"

// Transport failures. acl.MapHTTPError turns them into domain errors.
var (
	// ErrCircuitOpen means the breaker rejected the request without sending it.
	ErrCircuitOpen = errors.New("quotes api circuit open")

	// ErrMaxRetriesExceeded wraps the last failure once every attempt is used.
	ErrMaxRetriesExceeded = errors.New("quotes api retries exhausted")
)
