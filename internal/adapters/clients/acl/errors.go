package acl

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	"github.com/jsamuelsen/quotebook/internal/adapters/clients"
	"github.com/jsamuelsen/quotebook/internal/domain"
)

// ErrorResponse is the error envelope of the quotes API.
type ErrorResponse struct {
	Error   ErrorDetail `json:"error"`
	TraceID string      `json:"traceId,omitempty"`
}

// ErrorDetail contains the error information.
type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// Envelope codes the client understands.
const (
	CodeNotFound    = "NOT_FOUND"
	CodeConflict    = "CONFLICT"
	CodeValidation  = "VALIDATION_ERROR"
	CodeBadRequest  = "BAD_REQUEST"
	CodeForbidden   = "FORBIDDEN"
	CodeUnavailable = "SERVICE_UNAVAILABLE"
	CodeTimeout     = "TIMEOUT"
)

// maxErrorBody caps how much of an error response is read.
const maxErrorBody = 64 << 10

// ParseErrorResponse decodes an error envelope. It returns nil when the body
// is empty or not an envelope.
func ParseErrorResponse(body io.Reader) *ErrorResponse {
	if body == nil {
		return nil
	}

	var errResp ErrorResponse
	if err := json.NewDecoder(io.LimitReader(body, maxErrorBody)).Decode(&errResp); err != nil {
		return nil
	}

	if errResp.Error.Code == "" && errResp.Error.Message == "" {
		return nil
	}

	return &errResp
}

// MapHTTPError converts a failed call into a domain error. clientErr is the
// transport error, if any; otherwise resp must be a non-2xx response whose
// body is consumed. entityID names the quote or tag in not-found errors.
//
// The envelope code decides the error kind. Bodies without an envelope, or
// with a code this client does not know, fall back to the status.
func MapHTTPError(resp *http.Response, clientErr error, serviceName, operation, entityID string) error {
	switch {
	case clientErr != nil:
		return fmt.Errorf("%s: %w", operation, domain.NewUnavailableError(serviceName, transportReason(clientErr)))
	case resp == nil:
		return domain.NewUnavailableError(serviceName, "no response received")
	case resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices:
		return nil
	}

	fault := remoteFault{
		code:    codeForStatus(resp.StatusCode),
		message: fmt.Sprintf("%s: %s", operation, strings.ToLower(http.StatusText(resp.StatusCode))),
	}

	if env := ParseErrorResponse(resp.Body); env != nil {
		if _, known := faultKinds[env.Error.Code]; known {
			fault.code = env.Error.Code
		}
		fault.message = env.Error.Message
		fault.details = env.Error.Details
	}

	return faultKinds[fault.code](fault, serviceName, operation, entityID)
}

type remoteFault struct {
	code    string
	message string
	details map[string]string
}

var faultKinds = map[string]func(f remoteFault, service, operation, entityID string) error{
	CodeNotFound: func(f remoteFault, _, _, entityID string) error {
		return domain.NewNotFoundErrorWithMessage(domain.EntityQuote, entityID, f.message)
	},
	CodeConflict: func(f remoteFault, _, _, _ string) error {
		return domain.NewConflictError("", f.message)
	},
	CodeValidation: validationFault,
	CodeBadRequest: validationFault,
	CodeForbidden: func(f remoteFault, _, operation, _ string) error {
		return domain.NewForbiddenError(operation, f.message)
	},
	CodeUnavailable: unavailableFault,
	CodeTimeout:     unavailableFault,
}

func unavailableFault(f remoteFault, service, _, _ string) error {
	return domain.NewUnavailableError(service, f.message)
}

// validationFault reports the first detail in field order so the message
// is stable.
func validationFault(f remoteFault, _, _, _ string) error {
	if len(f.details) == 0 {
		return domain.NewValidationError("", f.message)
	}

	fields := make([]string, 0, len(f.details))
	for field := range f.details {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	return domain.NewValidationError(fields[0], f.details[fields[0]])
}

func codeForStatus(status int) string {
	switch {
	case status == http.StatusNotFound:
		return CodeNotFound
	case status == http.StatusConflict:
		return CodeConflict
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return CodeForbidden
	case status == http.StatusTooManyRequests, status >= http.StatusInternalServerError:
		return CodeUnavailable
	case status == http.StatusBadRequest:
		return CodeBadRequest
	default:
		return CodeValidation
	}
}

func transportReason(err error) string {
	switch {
	case errors.Is(err, clients.ErrCircuitOpen):
		return "circuit breaker open"
	case errors.Is(err, clients.ErrMaxRetriesExceeded):
		return "max retries exceeded"
	default:
		return err.Error()
	}
}
