package telemetry

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/quotebook/internal/platform/logging"
)

const instrumentationName = "github.com/jsamuelsen/quotebook/telemetry"

// HeaderTraceID echoes the span's trace ID to callers.
const HeaderTraceID = "X-Trace-ID"

// Metrics holds HTTP server metrics.
type Metrics struct {
	requestDuration metric.Float64Histogram
	activeRequests  metric.Int64UpDownCounter
}

// NewMetrics registers the HTTP server instruments on the global meter.
func NewMetrics() (*Metrics, error) {
	meter := otel.Meter(instrumentationName)

	requestDuration, err := meter.Float64Histogram(
		"http.server.request.duration",
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	activeRequests, err := meter.Int64UpDownCounter(
		"http.server.active_requests",
		metric.WithDescription("Number of in-flight HTTP requests"),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		requestDuration: requestDuration,
		activeRequests:  activeRequests,
	}, nil
}

// Middleware returns otelgin followed by a handler that echoes the trace
// ID, adds it to the request logger and records duration and in-flight
// metrics per route template. With telemetry disabled the global providers
// are no-ops and no trace ID is set.
func Middleware(serviceName string) gin.HandlersChain {
	metrics, err := NewMetrics()
	if err != nil {
		otel.Handle(err)
	}

	return gin.HandlersChain{
		otelgin.Middleware(serviceName),
		func(c *gin.Context) {
			if sc := trace.SpanFromContext(c.Request.Context()).SpanContext(); sc.HasTraceID() {
				traceID := sc.TraceID().String()
				c.Header(HeaderTraceID, traceID)
				c.Request = c.Request.WithContext(logging.WithTraceID(c.Request.Context(), traceID))
			}

			if metrics == nil {
				c.Next()
				return
			}

			start := time.Now()
			attrs := []attribute.KeyValue{
				attribute.String("http.request.method", c.Request.Method),
				attribute.String("http.route", c.FullPath()),
			}

			metrics.activeRequests.Add(c.Request.Context(), 1, metric.WithAttributes(attrs...))
			defer metrics.activeRequests.Add(c.Request.Context(), -1, metric.WithAttributes(attrs...))

			c.Next()

			attrs = append(attrs, attribute.Int("http.response.status_code", c.Writer.Status()))
			metrics.requestDuration.Record(c.Request.Context(), time.Since(start).Seconds(), metric.WithAttributes(attrs...))
		},
	}
}
