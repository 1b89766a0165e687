package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/cloudcompass/internal/core/domain"
	"github.com/custodia-labs/cloudcompass/internal/logger"
	"github.com/custodia-labs/cloudcompass/internal/metrics"
)

// Config holds HTTP server options.
type Config struct {
	// RequestsPerSecond limits requests per client IP. Zero disables limiting.
	RequestsPerSecond float64
	// Burst is the number of requests allowed at once. At least 1.
	Burst int
}

// DefaultConfig returns the options used by the api serve command.
func DefaultConfig() Config {
	return Config{RequestsPerSecond: 20, Burst: 40}
}

// Server is the HTTP API server.
type Server struct {
	ports *Ports
	echo  *echo.Echo
}

// NewServer creates the echo instance and registers every route.
func NewServer(ports *Ports, cfg Config) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover())
	e.Use(observe)
	if cfg.RequestsPerSecond > 0 {
		e.Use(middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
			Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
				Rate:  rate.Limit(cfg.RequestsPerSecond),
				Burst: max(cfg.Burst, 1),
			}),
			DenyHandler: func(c echo.Context, _ string, _ error) error {
				metrics.RateLimited.WithLabelValues("api").Inc()
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			},
		}))
	}

	s := &Server{ports: ports, echo: e}
	s.Register(e)
	return s, nil
}

// Handler exposes the router for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Run serves on addr until ctx is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.echo.Shutdown(shutdownCtx) //nolint:errcheck
	}()

	logger.Debug("API server listening on %s", addr)
	err := s.echo.Start(addr)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Register mounts the API routes on e.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/healthz", s.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	v1 := e.Group("/api/v1")
	v1.GET("/services", s.ListServices)
	v1.GET("/services/:id", s.GetService)
	v1.GET("/categories", s.ListCategories)
	v1.GET("/categories/:category/comparison", s.CompareCategory)
	v1.GET("/regions", s.ListRegions)
	v1.GET("/stats", s.Stats)
	v1.POST("/plans", s.CreatePlan)
}

// observe records request metrics and logs each request as a structured event.
func observe(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		status := c.Response().Status
		if err != nil {
			status = statusFor(err)
		}
		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		elapsed := time.Since(start)
		metrics.ObserveRequest(c.Request().Method, route, status, elapsed)
		log := logger.With("api")
		log.Debug().
			Str("method", c.Request().Method).
			Str("path", c.Request().URL.Path).
			Int("status", status).
			Dur("elapsed", elapsed).
			Msg("request")
		return err
	}
}

// errorResponse is the body of every error reply.
type errorResponse struct {
	Error string `json:"error"`
}

// errorHandler maps domain errors onto HTTP status codes.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := statusFor(err)
	msg := err.Error()
	var he *echo.HTTPError
	if errors.As(err, &he) {
		msg = fmt.Sprint(he.Message)
	}
	if status == http.StatusInternalServerError {
		logger.Error("api: %v", err)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, errorResponse{Error: msg})
	}
	if err != nil {
		logger.Warn("api: write error response: %v", err)
	}
}

func statusFor(err error) int {
	var he *echo.HTTPError
	switch {
	case errors.As(err, &he):
		return he.Code
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotImplemented):
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}
