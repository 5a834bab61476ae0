// Package handlers contains the gin handlers for the quotes API and the
// operational /-/ routes.
package handlers

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jsamuelsen/quotebook/internal/ports"
)

// BuildInfo is served on /-/build.
type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"buildTime"`
	GoVersion string `json:"goVersion"`
}

// NewBuildInfo stamps the running Go version onto the ldflags values.
func NewBuildInfo(version, commit, buildTime string) BuildInfo {
	return BuildInfo{Version: version, Commit: commit, BuildTime: buildTime, GoVersion: runtime.Version()}
}

// HealthHandler serves the operational routes. A nil registry reports
// ready with no checks.
type HealthHandler struct {
	registry ports.HealthRegistry
	build    BuildInfo
}

func NewHealthHandler(registry ports.HealthRegistry, build BuildInfo) *HealthHandler {
	return &HealthHandler{registry: registry, build: build}
}

type probeResponse struct {
	Status    string                        `json:"status"`
	Checks    map[string]*ports.CheckResult `json:"checks,omitempty"`
	CheckedAt *time.Time                    `json:"checkedAt,omitempty"`
}

// Liveness answers 200 while the process is up.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, probeResponse{Status: "ok"})
}

// Readiness answers 503 when the store, cache or broker check fails.
func (h *HealthHandler) Readiness(c *gin.Context) {
	if h.registry == nil {
		c.JSON(http.StatusOK, probeResponse{Status: string(ports.HealthStatusHealthy)})
		return
	}

	result := h.registry.CheckAll(c.Request.Context())

	code := http.StatusOK
	if result.Status != ports.HealthStatusHealthy {
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, probeResponse{
		Status:    string(result.Status),
		Checks:    result.Checks,
		CheckedAt: &result.Timestamp,
	})
}

// Build serves the version stamped into the binary.
func (h *HealthHandler) Build(c *gin.Context) {
	c.JSON(http.StatusOK, h.build)
}

// RegisterHealthRoutes mounts live, ready, build and the Prometheus
// registry (quotebook_quote_operations_total among others) on rg.
func (h *HealthHandler) RegisterHealthRoutes(rg *gin.RouterGroup) {
	rg.GET("/live", h.Liveness)
	rg.GET("/ready", h.Readiness)
	rg.GET("/build", h.Build)
	rg.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
