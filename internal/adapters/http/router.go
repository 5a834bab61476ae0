package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotebook/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quotebook/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quotebook/internal/platform/telemetry"
)

// InternalPrefix is where the probes and metrics are mounted.
const InternalPrefix = "/-"

// DefaultRequestTimeout bounds API requests when RouterConfig.Timeout is unset.
const DefaultRequestTimeout = 30 * time.Second

// RouterConfig contains everything SetupRouter mounts.
type RouterConfig struct {
	// ServiceName names spans and metrics.
	ServiceName string

	// APIRoot is the quotes API path, e.g. /api/v1/quotes.
	APIRoot string

	CORS middleware.CORSConfig

	HealthHandler *handlers.HealthHandler
	QuoteHandler  *handlers.QuoteHandler

	// Timeout is the API request deadline. Probes have none.
	Timeout time.Duration
}

// SetupRouter installs the middleware chain and routes on engine.
// Order (first to last):
//  1. Recovery
//  2. Request ID
//  3. Correlation ID
//  4. OpenTelemetry
//  5. Logging (skips /-/)
//  6. CORS
//
// CORS sits on the engine so preflight OPTIONS requests, which match no
// route, are still answered. The API group adds the request timeout.
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.CorrelationID(),
	)
	engine.Use(telemetry.Middleware(cfg.ServiceName)...)
	engine.Use(middleware.Logging())
	engine.Use(middleware.CORS(cfg.CORS))

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutes(engine.Group(InternalPrefix))
	}

	if cfg.QuoteHandler == nil {
		return
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultRequestTimeout
	}

	api := engine.Group(cfg.APIRoot)
	api.Use(middleware.Timeout(timeout))
	cfg.QuoteHandler.RegisterQuoteRoutes(api)
}
