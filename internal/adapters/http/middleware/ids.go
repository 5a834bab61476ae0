// Package middleware holds the gin middleware of the quotes API.
package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jsamuelsen/quotebook/internal/platform/logging"
)

const (
	// HeaderRequestID identifies one HTTP request. It is also the fallback
	// trace ID of error envelopes.
	HeaderRequestID = "X-Request-ID"

	// HeaderCorrelationID spans one client action across requests, for
	// example a browse session of the CLI.
	HeaderCorrelationID = "X-Correlation-ID"
)

type idKey int

const (
	requestIDKey idKey = iota
	correlationIDKey
)

// tracking describes one propagated identifier.
type tracking struct {
	header string
	key    idKey
	tagLog func(context.Context, string) context.Context
}

var (
	requestIDs     = tracking{HeaderRequestID, requestIDKey, logging.WithRequestID}
	correlationIDs = tracking{HeaderCorrelationID, correlationIDKey, logging.WithCorrelationID}
)

// handler adopts the incoming header or mints a UUID, then exposes the ID
// on the response, the request context and the context logger. A minted
// ID is also set on the request headers for later readers.
func (t tracking) handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(t.header)
		if id == "" {
			id = uuid.NewString()
			c.Request.Header.Set(t.header, id)
		}
		c.Header(t.header, id)

		ctx := context.WithValue(c.Request.Context(), t.key, id)
		c.Request = c.Request.WithContext(t.tagLog(ctx, id))

		c.Next()
	}
}

func (t tracking) from(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(t.key).(string)

	return id
}

// RequestID propagates or mints X-Request-ID.
func RequestID() gin.HandlerFunc { return requestIDs.handler() }

// CorrelationID propagates or mints X-Correlation-ID.
func CorrelationID() gin.HandlerFunc { return correlationIDs.handler() }

// RequestIDFromContext returns the request ID, or "". The quotes client
// forwards it as X-Request-ID.
func RequestIDFromContext(ctx context.Context) string { return requestIDs.from(ctx) }

// CorrelationIDFromContext returns the correlation ID, or "".
func CorrelationIDFromContext(ctx context.Context) string { return correlationIDs.from(ctx) }

// ContextWithRequestID is used by callers outside a request, such as the
// CLI, to pick the ID the client sends.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// ContextWithCorrelationID sets the correlation ID the client sends.
func ContextWithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey, id)
}

// GetRequestID is RequestIDFromContext for a gin handler.
func GetRequestID(c *gin.Context) string { return RequestIDFromContext(c.Request.Context()) }

// GetCorrelationID is CorrelationIDFromContext for a gin handler.
func GetCorrelationID(c *gin.Context) string { return CorrelationIDFromContext(c.Request.Context()) }
