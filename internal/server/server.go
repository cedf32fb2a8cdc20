// Package server provides the HTTP gateway for the jobpost studio.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/jobpost-studio/internal/generator"
	"github.com/jonathan/jobpost-studio/internal/server/ratelimit"
	"github.com/jonathan/jobpost-studio/internal/session"
	"github.com/jonathan/jobpost-studio/internal/types"
)

// Generator is the slice of the generation service client the gateway uses.
type Generator interface {
	CreateJobPost(ctx context.Context, form *types.CreateJobForm) (*types.CreateJobResponse, error)
	TranslateToEnglish(ctx context.Context, record map[string]any) (map[string]any, error)
	RefineChat(ctx context.Context, prompt string, job *types.Job) (any, error)
	GenerateImage(ctx context.Context, template io.Reader, filename, imageKeyword string) ([]string, error)
}

// Server represents the HTTP gateway
type Server struct {
	httpServer  *http.Server
	store       *session.Store
	generator   Generator
	rateLimiter *ratelimit.Limiter
}

// Config holds server configuration
type Config struct {
	Port       int
	ServiceURL string
	Timeout    time.Duration
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	if cfg.ServiceURL == "" {
		return nil, fmt.Errorf("generation service URL is required")
	}

	client := generator.NewClient(cfg.ServiceURL, &generator.Options{Timeout: cfg.Timeout})

	s := &Server{
		store:       session.NewStore(),
		generator:   client,
		rateLimiter: ratelimit.NewLimiter(ratelimit.DefaultConfig()),
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.routes(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // Long timeout for generation calls
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the router with all middleware applied.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	// Job endpoints
	mux.HandleFunc("POST /jobs", s.handleCreateJob)
	mux.HandleFunc("GET /jobs/current", s.handleCurrentJob)
	mux.HandleFunc("GET /jobs/translated", s.handleTranslatedJob)
	mux.HandleFunc("POST /jobs/refine", s.handleRefine)
	mux.HandleFunc("POST /jobs/translate", s.handleTranslate)

	// Image endpoints
	mux.HandleFunc("POST /jobs/images", s.handleGenerateImage)
	mux.HandleFunc("GET /jobs/images", s.handleListImages)

	// Session endpoints
	mux.HandleFunc("GET /flows", s.handleFlows)
	mux.HandleFunc("POST /reset", s.handleReset)
	mux.HandleFunc("GET /health", s.handleHealth)

	return s.withRateLimit(s.withLogging(s.withCORS(mux)))
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
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

	// Stop rate limiter cleanup goroutine
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}

	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)
		s.setRateLimitHeaders(w, info)

		if !allowed {
			s.rateLimitResponse(w, info)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging. Each request gets a UUID that is echoed
// in the X-Request-ID header so gateway log lines can be correlated.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)
		log.Printf("[%s] %s %s id=%s", r.Method, r.URL.Path, r.RemoteAddr, requestID)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s id=%s completed in %v", r.Method, r.URL.Path, requestID, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// extractClientID extracts the client identifier from the request.
// For MVP, this uses the IP address from RemoteAddr.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]interface{}{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	log.Printf("[rate-limit] Rate limit exceeded: Limit=%d Remaining=%d Reset=%s",
		info.Limit, info.Remaining, info.ResetTime.Format(time.RFC3339))

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
