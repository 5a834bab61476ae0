package http

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotebook/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotebook/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quotebook/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quotebook/internal/adapters/persistence"
	"github.com/jsamuelsen/quotebook/internal/app"
	"github.com/jsamuelsen/quotebook/internal/ports"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const apiRoot = "/api/v1/quotes"

// newTestEngine mounts the full router over an in-memory sqlite store.
func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()

	store, err := persistence.Open(persistence.Config{
		Driver:   persistence.DriverSQLite,
		DSN:      fmt.Sprintf("file:router-%d?mode=memory&cache=shared", time.Now().UnixNano()),
		LogLevel: "silent",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := app.NewQuoteService(app.QuoteServiceConfig{
		Quotes: persistence.NewQuoteRepository(store.DB()),
		Tags:   persistence.NewTagRepository(store.DB()),
		Logger: logger,
	})

	registry := ports.NewHealthRegistryWithTimeout(time.Second)
	require.NoError(t, registry.Register(store))

	engine := gin.New()
	SetupRouter(engine, RouterConfig{
		ServiceName:   "quotebook-test",
		APIRoot:       apiRoot,
		CORS:          middleware.CORSConfig{AllowAll: true},
		HealthHandler: handlers.NewHealthHandler(registry, handlers.BuildInfo{Version: "test"}),
		QuoteHandler:  handlers.NewQuoteHandler(service),
		Timeout:       5 * time.Second,
	})

	return engine
}

func do(t *testing.T, engine *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	return w
}

func TestRouter_QuoteLifecycle(t *testing.T) {
	engine := newTestEngine(t)

	w := do(t, engine, http.MethodPost, apiRoot, `{"content":"Be yourself; everyone else is already taken.","author":"Oscar Wilde"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, apiRoot+"/1", w.Header().Get("Location"))
	assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID))

	w = do(t, engine, http.MethodPost, apiRoot+"/1/like", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, engine, http.MethodPost, apiRoot+"/1/tags", `{"name":"Wit"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, engine, http.MethodPost, apiRoot+"/1/tags", `{"name":"wit"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, engine, http.MethodGet, apiRoot+"/quotes_by_tag/WIT", "")
	require.Equal(t, http.StatusOK, w.Code)

	var byTag []dto.QuoteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &byTag))
	require.Len(t, byTag, 1)
	assert.Equal(t, 1, byTag[0].Likes)
	require.Len(t, byTag[0].TagAssignments, 1)
	assert.Equal(t, "Wit", byTag[0].TagAssignments[0].Tag.Name)

	w = do(t, engine, http.MethodPatch, apiRoot+"/1", `{"author":"O. Wilde"}`)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, engine, http.MethodDelete, apiRoot+"/1/tags/1", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, engine, http.MethodGet, apiRoot+"/1", "")
	require.Equal(t, http.StatusOK, w.Code)

	var got dto.QuoteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "O. Wilde", got.Author)
	assert.Empty(t, got.TagAssignments)

	w = do(t, engine, http.MethodGet, apiRoot+"/tags", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"tagId":1,"name":"Wit"}]`, w.Body.String())
}

func TestRouter_UnknownQuote(t *testing.T) {
	engine := newTestEngine(t)

	w := do(t, engine, http.MethodGet, apiRoot+"/42", "")

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrorCodeNotFound, resp.Error.Code)
	assert.Equal(t, w.Header().Get(middleware.HeaderRequestID), resp.TraceID)
}

func TestRouter_HealthAndCORS(t *testing.T) {
	engine := newTestEngine(t)

	w := do(t, engine, http.MethodGet, "/-/ready", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"store"`)

	req := httptest.NewRequest(http.MethodGet, apiRoot, nil)
	req.Header.Set("Origin", "http://browser.local")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestRouter_PagePastEnd(t *testing.T) {
	engine := newTestEngine(t)

	w := do(t, engine, http.MethodPost, apiRoot, `{"content":"Stay hungry."}`)
	require.Equal(t, http.StatusCreated, w.Code)

	for _, page := range []string{"2", "4611686018427387905", "9223372036854775807"} {
		t.Run("page "+page, func(t *testing.T) {
			w := do(t, engine, http.MethodGet, apiRoot+"?pageSize=10&page="+page, "")

			require.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, `[]`, w.Body.String())
		})
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	engine := newTestEngine(t)

	targets := []string{apiRoot, apiRoot + "/", apiRoot + "/1", apiRoot + "/1/tags", apiRoot + "/1/tags/2", apiRoot + "/1/like"}
	methods := []string{http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete}

	for _, target := range targets {
		for _, method := range methods {
			t.Run(method+" "+target, func(t *testing.T) {
				req := httptest.NewRequest(http.MethodOptions, target, nil)
				req.Header.Set("Origin", "http://browser.local")
				req.Header.Set("Access-Control-Request-Method", method)
				req.Header.Set("Access-Control-Request-Headers", "Content-Type")
				w := httptest.NewRecorder()
				engine.ServeHTTP(w, req)

				assert.Equal(t, http.StatusNoContent, w.Code)
				assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
				assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), method)
			})
		}
	}
}

func TestRouter_TrailingSlashRoot(t *testing.T) {
	engine := newTestEngine(t)

	w := do(t, engine, http.MethodPost, apiRoot+"/", `{"content":"Simplicity is the ultimate sophistication.","author":"Leonardo da Vinci"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, apiRoot+"/1", w.Header().Get("Location"))

	w = do(t, engine, http.MethodGet, apiRoot+"/?pageSize=-1", "")
	require.Equal(t, http.StatusOK, w.Code)

	var quotes []dto.QuoteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &quotes))
	require.Len(t, quotes, 1)
	assert.Equal(t, "Leonardo da Vinci", quotes[0].Author)
}

func TestSetupRouter_HealthOnly(t *testing.T) {
	engine := gin.New()

	require.NotPanics(t, func() {
		SetupRouter(engine, RouterConfig{
			ServiceName:   "quotebook-test",
			APIRoot:       apiRoot,
			HealthHandler: handlers.NewHealthHandler(nil, handlers.BuildInfo{}),
		})
	})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/-/live", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	for _, route := range engine.Routes() {
		assert.False(t, strings.HasPrefix(route.Path, apiRoot), "unexpected API route %s", route.Path)
	}
}
