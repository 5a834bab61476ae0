//go:build integration

package integration

import (
	"fmt"
	"io"
	"log/slog"
	"net/http/httptest"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"

	httpadapter "github.com/jsamuelsen/quotebook/internal/adapters/http"
	"github.com/jsamuelsen/quotebook/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quotebook/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quotebook/internal/adapters/persistence"
	"github.com/jsamuelsen/quotebook/internal/app"
	"github.com/jsamuelsen/quotebook/internal/ports"
)

const apiRoot = "/api/v1/quotes"

var dbSeq atomic.Int64

// quotesServer is the full API over a private in-memory sqlite database.
type quotesServer struct {
	*httptest.Server
	store *persistence.Store
}

func startQuotesServer() (*quotesServer, error) {
	gin.SetMode(gin.TestMode)

	store, err := persistence.Open(persistence.Config{
		Driver:   persistence.DriverSQLite,
		DSN:      fmt.Sprintf("file:integration-%d?mode=memory&cache=shared", dbSeq.Add(1)),
		LogLevel: "silent",
	})
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := app.NewQuoteService(app.QuoteServiceConfig{
		Quotes: persistence.NewQuoteRepository(store.DB()),
		Tags:   persistence.NewTagRepository(store.DB()),
		Logger: logger,
	})

	registry := ports.NewHealthRegistryWithTimeout(time.Second)
	if err := registry.Register(store); err != nil {
		_ = store.Close()
		return nil, err
	}

	engine := gin.New()
	httpadapter.SetupRouter(engine, httpadapter.RouterConfig{
		ServiceName:   "quotebook-integration",
		APIRoot:       apiRoot,
		CORS:          middleware.CORSConfig{AllowAll: true},
		HealthHandler: handlers.NewHealthHandler(registry, handlers.NewBuildInfo("test", "test", "test")),
		QuoteHandler:  handlers.NewQuoteHandler(service),
		Timeout:       5 * time.Second,
	})

	return &quotesServer{Server: httptest.NewServer(engine), store: store}, nil
}

func (s *quotesServer) stop() {
	s.Close()
	_ = s.store.Close()
}
