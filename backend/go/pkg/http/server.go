package http

import (
	"Trivio/backend/go/internal/config"
	"Trivio/backend/go/pkg/circuitbreaker"
	"Trivio/backend/go/pkg/httpmiddleware"
	"Trivio/backend/go/pkg/ratelimiter"
	"context"
	"fmt"
	"log"
	"net/http"
	"time"
)

// Middleware defines a function to wrap an http.Handler.
type Middleware func(http.Handler) http.Handler

// Server is a custom HTTP server that wraps the standard http.Server
// and provides built-in support for middleware.
type Server struct {
	httpServer *http.Server
	base       http.Handler
}

// ServerOption defines a function for configuring a Server.
type ServerOption func(*Server)

// WithAddress sets the address for the server to listen on.
func WithAddress(addr string) ServerOption {
	return func(s *Server) {
		s.httpServer.Addr = addr
	}
}

// WithHandler sets the base handler the middleware chain wraps.
// This is how a gin engine is mounted into the server.
func WithHandler(h http.Handler) ServerOption {
	return func(s *Server) {
		s.base = h
	}
}

// NewServer creates and configures a new Server instance based on the provided AppConfig and options.
// It automatically applies rate limiting and circuit breaking middleware if enabled in the config.
func NewServer(cfg *config.AppConfig, opts ...ServerOption) (*Server, error) {
	srv := &Server{
		httpServer: &http.Server{},
		base:       http.NewServeMux(),
	}

	// Apply all the options first so the base handler is known.
	for _, opt := range opts {
		opt(srv)
	}

	// Chain middleware
	var middlewares []Middleware

	// Add Rate Limiter middleware if enabled
	if cfg.Middleware.RateLimiter.Enabled {
		limiter, err := createRateLimiter(cfg.Middleware.RateLimiter)
		if err != nil {
			return nil, fmt.Errorf("failed to create rate limiter: %w", err)
		}
		log.Printf("Enabling Rate Limiter middleware with algorithm: %s", cfg.Middleware.RateLimiter.Algorithm)
		middlewares = append(middlewares, httpmiddleware.RateLimit(limiter))
	}

	// Add Circuit Breaker middleware if enabled
	if cfg.Middleware.CircuitBreaker.Enabled {
		breaker, err := createCircuitBreaker(cfg.Middleware.CircuitBreaker)
		if err != nil {
			return nil, fmt.Errorf("failed to create circuit breaker: %w", err)
		}
		log.Println("Enabling Circuit Breaker middleware.")
		middlewares = append(middlewares, httpmiddleware.CircuitBreak(breaker))
	}

	// Apply all middlewares in reverse order
	handler := srv.base
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i](handler)
	}
	srv.httpServer.Handler = handler

	// Set a default address if none was provided
	if srv.httpServer.Addr == "" {
		srv.httpServer.Addr = ":8080"
	}

	return srv, nil
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	if s.httpServer.Addr == "" {
		return fmt.Errorf("server address is not set")
	}
	log.Printf("Starting server on %s", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// createRateLimiter initializes a rate limiter based on the configuration.
func createRateLimiter(cfg config.RateLimiterConfig) (ratelimiter.RateLimiter, error) {
	algorithm := cfg.Algorithm
	if algorithm == "" {
		algorithm = "tokenBucket" // Default as requested
	}

	switch algorithm {
	case "tokenBucket":
		conf := cfg.TokenBucket
		return ratelimiter.NewTokenBucket(conf.Rate, conf.Capacity), nil
	case "fixedWindow":
		conf := cfg.FixedWindow
		window, err := time.ParseDuration(conf.Window)
		if err != nil {
			return nil, fmt.Errorf("invalid fixedWindow duration: %w", err)
		}
		return ratelimiter.NewFixedWindowCounter(conf.Limit, window), nil
	default:
		return nil, fmt.Errorf("unknown rate limiter algorithm: %s", cfg.Algorithm)
	}
}

// createCircuitBreaker initializes a circuit breaker based on the configuration.
func createCircuitBreaker(cfg config.CircuitBreakerConfig) (circuitbreaker.CircuitBreaker, error) {
	timeout, err := time.ParseDuration(cfg.Timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid circuit breaker timeout duration: %w", err)
	}
	return circuitbreaker.New(cfg.FailureThreshold, cfg.SuccessThreshold, timeout), nil
}
