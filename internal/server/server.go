// Package server provides the HTTP API for the resume analyzer.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/server/ratelimit"
)

// Server hosts the analyze and health endpoints.
type Server struct {
	httpServer  *http.Server
	cfg         config.Config
	rateLimiter *ratelimit.Limiter
	now         func() time.Time
}

// New creates a server from the given configuration. The upload directory is
// created up front so request handling never races on it.
func New(cfg config.Config) (*Server, error) {
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir %s: %w", cfg.UploadDir, err)
	}

	s := &Server{
		cfg: cfg,
		now: time.Now,
	}

	s.rateLimiter = ratelimit.NewLimiter(&ratelimit.Config{
		Enabled:         cfg.RateLimitEnabled,
		RequestsPerMin:  cfg.RateLimitPerMin,
		Burst:           cfg.RateLimitPerMin,
		CleanupInterval: 5 * time.Minute,
		IdleEviction:    15 * time.Minute,
	})

	mux := http.NewServeMux()
	mux.HandleFunc("POST /analyze", s.handleAnalyze)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start listens until SIGINT/SIGTERM, then shuts down gracefully.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}

	log.Println("Server stopped")
	return nil
}

// withCORS adds permissive CORS headers for browser clients.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit throttles requests per client IP.
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := clientIP(r)

		allowed, info := s.rateLimiter.Allow(clientID)
		setRateLimitHeaders(w, info)
		if !allowed {
			w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())+1))
			s.errorResponse(w, http.StatusTooManyRequests, "Rate limit exceeded. Try again later.")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging tags each request with an ID and logs timing.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.New().String()
		start := time.Now()
		log.Printf("[%s] %s %s %s", requestID, r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s %s completed in %v", requestID, r.Method, r.URL.Path, time.Since(start))
	})
}

func setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit == 0 {
		return
	}
	w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
	w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
	w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
}

// clientIP strips the port from RemoteAddr, falling back to the whole
// address when it does not parse.
func clientIP(r *http.Request) string {
	host := r.RemoteAddr
	for i := len(host) - 1; i >= 0; i-- {
		if host[i] == ':' {
			return host[:i]
		}
	}
	return host
}

// jsonResponse writes a JSON body with the given status.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// errorResponse writes the {"error": message} contract used for all request
// failures.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
