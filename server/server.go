// Package server exposes a planner over HTTP with gin.
//
//	GET  /v1/locations    important location names
//	GET  /v1/algorithms   canonical strategy tokens
//	POST /v1/route        one route query
//	POST /v1/routes       a batch of route queries
//	GET  /healthz         liveness and graph size
//	GET  /metrics         Prometheus exposition
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"golang.org/x/time/rate"

	"github.com/katalvlaran/lvroute/config"
	"github.com/katalvlaran/lvroute/planner"
)

const (
	shutdownGrace = 5 * time.Second
	serviceName   = "lvroute"
)

// NewRouter assembles the gin engine: recovery, a server span per request,
// request ids, access log, CORS, rate limiting, then the routes. Planner spans
// started from the request context become children of the server span.
func NewRouter(p *planner.Planner, cfg config.ServerConfig, logger *slog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), otelgin.Middleware(serviceName), requestID(), accessLog(logger))

	if len(cfg.CORSOrigins) > 0 {
		cc := cors.DefaultConfig()
		cc.AllowOrigins = cfg.CORSOrigins
		cc.AllowMethods = []string{"GET", "POST", "OPTIONS"}
		cc.AllowHeaders = []string{"Origin", "Content-Type", requestIDHeader}
		cc.ExposeHeaders = []string{requestIDHeader}
		r.Use(cors.New(cc))
	}
	if cfg.RateLimit > 0 {
		burst := cfg.Burst
		if burst < 1 {
			burst = 1
		}
		r.Use(rateLimit(rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)))
	}

	h := NewHandlers(p, logger)
	r.GET("/healthz", h.HandleHealth)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	RegisterRoutes(r.Group("/v1"), h)

	return r
}

// Server owns the HTTP listener.
type Server struct {
	http   *http.Server
	logger *slog.Logger
}

// New returns a server listening on cfg.Addr once Run is called.
func New(p *planner.Planner, cfg config.ServerConfig, logger *slog.Logger) *Server {
	return &Server{
		http: &http.Server{
			Addr:              cfg.Addr,
			Handler:           NewRouter(p, cfg, logger),
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// Run serves until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Server listening", "addr", s.http.Addr)
		errCh <- s.http.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("Server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}

	return nil
}
