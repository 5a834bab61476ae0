package benchmark

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"

	httpadapter "github.com/jsamuelsen/quotebook/internal/adapters/http"
	"github.com/jsamuelsen/quotebook/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quotebook/internal/adapters/persistence"
	"github.com/jsamuelsen/quotebook/internal/app"
	"github.com/jsamuelsen/quotebook/internal/domain"
	"github.com/jsamuelsen/quotebook/internal/ports"
)

const apiRoot = "/api/v1/quotes"

var dbSeq atomic.Int64

func init() {
	// Set Gin to release mode for accurate benchmarks
	gin.SetMode(gin.ReleaseMode)
}

// createGinContext creates a Gin context for handler testing.
func createGinContext(w http.ResponseWriter, r *http.Request) *gin.Context {
	c, _ := gin.CreateTestContext(w)
	c.Request = r
	return c
}

// setupHealthHandler creates a HealthHandler with a minimal registry for benchmarking.
func setupHealthHandler() *handlers.HealthHandler {
	registry := ports.NewHealthRegistry()
	buildInfo := handlers.NewBuildInfo("1.0.0", "abc123", "2024-01-01T00:00:00Z")
	return handlers.NewHealthHandler(registry, buildInfo)
}

// setupQuoteRouter serves the quotes API over in-memory sqlite seeded
// with n tagged quotes.
func setupQuoteRouter(b *testing.B, n int) *gin.Engine {
	b.Helper()

	store, err := persistence.Open(persistence.Config{
		Driver:   persistence.DriverSQLite,
		DSN:      fmt.Sprintf("file:bench-%d?mode=memory&cache=shared", dbSeq.Add(1)),
		LogLevel: "silent",
	})
	if err != nil {
		b.Fatal(err)
	}
	b.Cleanup(func() { _ = store.Close() })

	service := app.NewQuoteService(app.QuoteServiceConfig{
		Quotes: persistence.NewQuoteRepository(store.DB()),
		Tags:   persistence.NewTagRepository(store.DB()),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	ctx := context.Background()
	for i := range n {
		q, err := service.Create(ctx, domain.NewQuote{Content: fmt.Sprintf("quote %d", i), Author: "bench"})
		if err != nil {
			b.Fatal(err)
		}
		if _, err := service.AttachTag(ctx, q.ID, fmt.Sprintf("tag-%d", i%5)); err != nil {
			b.Fatal(err)
		}
	}

	engine := gin.New()
	httpadapter.SetupRouter(engine, httpadapter.RouterConfig{
		ServiceName:  "quotebook-bench",
		APIRoot:      apiRoot,
		QuoteHandler: handlers.NewQuoteHandler(service),
	})

	return engine
}

func benchmarkRoute(b *testing.B, engine *gin.Engine, method, path, body string) {
	b.Helper()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		var reader io.Reader = http.NoBody
		if body != "" {
			reader = strings.NewReader(body)
		}

		req := httptest.NewRequest(method, path, reader)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		if w.Code >= http.StatusBadRequest {
			b.Fatalf("%s %s: status %d: %s", method, path, w.Code, w.Body.String())
		}
	}
}

// BenchmarkLivenessHandler measures the performance of the liveness endpoint.
func BenchmarkLivenessHandler(b *testing.B) {
	handler := setupHealthHandler()
	req := httptest.NewRequest(http.MethodGet, "/-/live", http.NoBody)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		c := createGinContext(w, req)
		handler.Liveness(c)
	}
}

// BenchmarkReadinessHandler_WithChecks measures readiness with registered health checks.
func BenchmarkReadinessHandler_WithChecks(b *testing.B) {
	registry := ports.NewHealthRegistry()
	_ = registry.Register(&simpleHealthChecker{name: "database"})
	_ = registry.Register(&simpleHealthChecker{name: "cache"})

	handler := handlers.NewHealthHandler(registry, handlers.NewBuildInfo("1.0.0", "abc123", "2024-01-01T00:00:00Z"))
	req := httptest.NewRequest(http.MethodGet, "/-/ready", http.NoBody)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		c := createGinContext(w, req)
		handler.Readiness(c)
	}
}

// BenchmarkListQuotes measures a page of quotes with their tags through
// the full middleware chain.
func BenchmarkListQuotes(b *testing.B) {
	engine := setupQuoteRouter(b, 100)
	benchmarkRoute(b, engine, http.MethodGet, apiRoot+"?page=3&pageSize=10", "")
}

func BenchmarkListQuotes_All(b *testing.B) {
	engine := setupQuoteRouter(b, 100)
	benchmarkRoute(b, engine, http.MethodGet, apiRoot+"?pageSize=-1", "")
}

func BenchmarkTopQuotes(b *testing.B) {
	engine := setupQuoteRouter(b, 100)
	benchmarkRoute(b, engine, http.MethodGet, apiRoot+"/top?count=10", "")
}

func BenchmarkQuotesByTag(b *testing.B) {
	engine := setupQuoteRouter(b, 100)
	benchmarkRoute(b, engine, http.MethodGet, apiRoot+"/quotes_by_tag/TAG-1", "")
}

// BenchmarkLikeQuote measures the increment and reload of one quote.
func BenchmarkLikeQuote(b *testing.B) {
	engine := setupQuoteRouter(b, 10)
	benchmarkRoute(b, engine, http.MethodPost, apiRoot+"/1/like", "")
}

func BenchmarkCreateQuote(b *testing.B) {
	engine := setupQuoteRouter(b, 0)
	benchmarkRoute(b, engine, http.MethodPost, apiRoot, `{"content":"Be yourself.","author":"Oscar Wilde"}`)
}

// simpleHealthChecker is a minimal health checker for benchmarking.
type simpleHealthChecker struct {
	name string
}

func (s *simpleHealthChecker) Name() string {
	return s.name
}

func (s *simpleHealthChecker) Check(_ context.Context) error {
	return nil
}
