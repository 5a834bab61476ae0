package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotebook/internal/mocks"
	"github.com/jsamuelsen/quotebook/internal/ports"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// opsRouter mounts the health routes under /- as the router does.
func opsRouter(registry ports.HealthRegistry, build BuildInfo) *gin.Engine {
	engine := gin.New()
	NewHealthHandler(registry, build).RegisterHealthRoutes(engine.Group("/-"))

	return engine
}

func get(engine *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

	return w
}

func TestNewBuildInfo(t *testing.T) {
	bi := NewBuildInfo("0.4.0", "9f1c2e7", "2026-03-02T08:30:00Z")

	assert.Equal(t, BuildInfo{
		Version:   "0.4.0",
		Commit:    "9f1c2e7",
		BuildTime: "2026-03-02T08:30:00Z",
		GoVersion: runtime.Version(),
	}, bi)
}

func TestHealth_Live(t *testing.T) {
	// No CheckAll expectation: liveness must not touch dependencies.
	engine := opsRouter(mocks.NewMockHealthRegistry(t), BuildInfo{})

	w := get(engine, "/-/live")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestHealth_Ready(t *testing.T) {
	tests := []struct {
		name     string
		result   *ports.HealthResult
		wantCode int
		wantBody []string
	}{
		{
			name: "store and broker up",
			result: &ports.HealthResult{
				Status: ports.HealthStatusHealthy,
				Checks: map[string]*ports.CheckResult{
					"store":  {Status: ports.HealthStatusHealthy},
					"events": {Status: ports.HealthStatusHealthy},
				},
			},
			wantCode: http.StatusOK,
			wantBody: []string{`"status":"healthy"`, `"store"`, `"events"`, `"checkedAt"`},
		},
		{
			name: "cache down",
			result: &ports.HealthResult{
				Status: ports.HealthStatusUnhealthy,
				Checks: map[string]*ports.CheckResult{
					"store": {Status: ports.HealthStatusHealthy},
					"cache": {Status: ports.HealthStatusUnhealthy, Message: "dial tcp 127.0.0.1:6379: connection refused"},
				},
			},
			wantCode: http.StatusServiceUnavailable,
			wantBody: []string{`"status":"unhealthy"`, "connection refused"},
		},
		{
			name:     "nothing registered",
			result:   &ports.HealthResult{Status: ports.HealthStatusHealthy, Checks: map[string]*ports.CheckResult{}},
			wantCode: http.StatusOK,
			wantBody: []string{`"status":"healthy"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := mocks.NewMockHealthRegistry(t)
			registry.EXPECT().CheckAll(mock.Anything).Return(tt.result).Once()

			w := get(opsRouter(registry, BuildInfo{}), "/-/ready")

			assert.Equal(t, tt.wantCode, w.Code)
			for _, want := range tt.wantBody {
				assert.Contains(t, w.Body.String(), want)
			}
		})
	}
}

func TestHealth_ReadyWithoutRegistry(t *testing.T) {
	w := get(opsRouter(nil, BuildInfo{}), "/-/ready")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, w.Body.String())
}

func TestHealth_Build(t *testing.T) {
	build := BuildInfo{Version: "0.4.0", Commit: "9f1c2e7", BuildTime: "2026-03-02T08:30:00Z", GoVersion: "go1.25.7"}

	w := get(opsRouter(nil, build), "/-/build")

	require.Equal(t, http.StatusOK, w.Code)

	var got BuildInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, build, got)
}

func TestHealth_Metrics(t *testing.T) {
	w := get(opsRouter(nil, BuildInfo{}), "/-/metrics")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	assert.Contains(t, w.Body.String(), "go_goroutines")
}
