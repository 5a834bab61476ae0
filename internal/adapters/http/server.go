// Package http serves the quotes API over gin.
package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotebook/internal/platform/config"
)

// Server owns the gin engine and the listener it is served on.
type Server struct {
	engine   *gin.Engine
	srv      *http.Server
	cfg      config.ServerConfig
	logger   *slog.Logger
	listener net.Listener
}

// New builds a server from cfg. Register routes on Engine, then call
// Listen and Serve.
func New(cfg *config.ServerConfig, logger *slog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.HandleMethodNotAllowed = true
	engine.Use(limitBody(cfg.MaxRequestSize))

	return &Server{
		engine: engine,
		cfg:    *cfg,
		logger: logger,
		srv: &http.Server{
			Handler:      engine,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
	}
}

// Engine is where routes are registered.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Listen binds the configured host and port. Port 0 picks a free port;
// Addr reports it.
func (s *Server) Listen() error {
	addr := net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", addr, err)
	}
	s.listener = ln

	return nil
}

// Addr is the bound address, or empty before Listen.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}

	return s.listener.Addr().String()
}

// Serve handles requests until ctx is cancelled, then drains in-flight
// requests for at most ShutdownTimeout. It calls Listen if needed.
func (s *Server) Serve(ctx context.Context) error {
	if s.listener == nil {
		if err := s.Listen(); err != nil {
			return err
		}
	}

	s.logger.Info("quotes API listening",
		slog.String("addr", s.Addr()),
		slog.String("api_root", s.cfg.APIRoot),
	)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.srv.Serve(s.listener)
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving http: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("draining http server", slog.Duration("timeout", s.cfg.ShutdownTimeout))

	//nolint:contextcheck // the parent is already cancelled
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}

	s.logger.Info("http server stopped")

	return nil
}

// limitBody caps request bodies at maxBytes. Binding an oversized body
// fails with a validation error.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil && maxBytes > 0 {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}
