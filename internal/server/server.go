package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/jonathan/job-board/internal/config"
	"github.com/jonathan/job-board/internal/server/middleware"
	"github.com/jonathan/job-board/internal/server/ratelimit"
	"github.com/jonathan/job-board/internal/types"
)

// Store is everything the server persists. *db.DB satisfies it.
type Store interface {
	JobStore
	AdminStore
}

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	logger      *slog.Logger
	rateLimiter *ratelimit.Limiter
	jwtService  *JWTService
	jobService  *JobService
	authHandler *AuthHandler
	generator   DraftGenerator
	validator   *validator.Validate
}

// Config holds server configuration
type Config struct {
	Port           int
	RateLimitRPS   float64
	RateLimitBurst int

	// JWT and Password are read from the environment when nil.
	JWT      *config.JWTConfig
	Password *config.PasswordConfig

	Logger *slog.Logger
}

// New creates a new server instance. generator may be nil, in which case
// draft requests are answered with 503.
func New(cfg Config, store Store, generator DraftGenerator) (*Server, error) {
	if store == nil {
		return nil, fmt.Errorf("store is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		logger:    logger,
		generator: generator,
		validator: newValidator(),
	}

	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig(cfg.RateLimitRPS, cfg.RateLimitBurst))

	passwordConfig := cfg.Password
	if passwordConfig == nil {
		var err error
		if passwordConfig, err = config.NewPasswordConfig(); err != nil {
			return nil, fmt.Errorf("failed to create password config: %w", err)
		}
	}

	jwtConfig := cfg.JWT
	if jwtConfig == nil {
		var err error
		if jwtConfig, err = config.NewJWTConfig(); err != nil {
			return nil, fmt.Errorf("failed to create JWT config: %w", err)
		}
	}

	s.jwtService = NewJWTService(jwtConfig)
	s.authHandler = NewAuthHandler(NewAdminService(store, passwordConfig), s.jwtService)
	s.jobService = NewJobService(store, logger)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.routes(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // Draft generation waits on the model
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

func (s *Server) routes() http.Handler {
	admin := middleware.AuthMiddleware(s.jwtService.AsTokenValidator(), types.AdminUserType)
	protected := func(h http.HandlerFunc) http.Handler { return admin(h) }

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	// Admin accounts
	mux.HandleFunc("POST /admin-signup", s.authHandler.Signup)
	mux.HandleFunc("POST /auth/login", s.authHandler.Login)

	// Private jobs
	mux.HandleFunc("GET /jobs/private", s.handleListPrivateJobs)
	mux.Handle("POST /jobs/private", protected(s.handleCreatePrivateJob))
	mux.Handle("DELETE /jobs/private", protected(s.handleDeleteAllPrivateJobs))
	mux.HandleFunc("GET /jobs/private/{id}", s.handleGetPrivateJob)
	mux.Handle("PUT /jobs/private/{id}", protected(s.handleUpdatePrivateJob))
	mux.Handle("DELETE /jobs/private/{id}", protected(s.handleDeletePrivateJob))

	// Government jobs
	mux.HandleFunc("GET /jobs/government", s.handleListGovernmentJobs)
	mux.Handle("POST /jobs/government", protected(s.handleCreateGovernmentJob))
	mux.Handle("DELETE /jobs/government", protected(s.handleDeleteAllGovernmentJobs))
	mux.HandleFunc("GET /jobs/government/{id}", s.handleGetGovernmentJob)
	mux.Handle("PUT /jobs/government/{id}", protected(s.handleUpdateGovernmentJob))
	mux.Handle("DELETE /jobs/government/{id}", protected(s.handleDeleteGovernmentJob))

	// Both categories. Literal segments take precedence over {id}.
	mux.HandleFunc("GET /jobs/search", s.handleSearchJobs)
	mux.HandleFunc("GET /jobs/it", s.handleITJobs)
	mux.HandleFunc("GET /jobs/{id}", s.handleGetJob)

	// Drafting
	mux.Handle("POST /drafts", protected(s.handleCreateDraft))

	return chi.Chain(chimw.RequestID, chimw.RealIP, chimw.Recoverer).
		Handler(s.withRateLimit(s.withLogging(s.withCORS(mux))))
}

// Handler returns the fully wrapped request handler.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins listening for requests and blocks until ctx is cancelled or
// the process receives SIGINT or SIGTERM.
func (s *Server) Start(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			s.rateLimiter.Stop()
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
	}
	s.logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.rateLimiter.Stop()
	s.logger.Info("server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
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
			s.rateLimitResponse(w, r, info)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging logs one line per request with its status and duration.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"request_id", chimw.GetReqID(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"remote", r.RemoteAddr,
			"duration", time.Since(start),
		)
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	if err := encodeJSON(w, status, data); err != nil {
		s.logger.Error("failed to encode JSON response", "error", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// serviceError maps a service error onto its status. Internal failures are
// logged and reported without detail.
func (s *Server) serviceError(w http.ResponseWriter, r *http.Request, err error) {
	status := HTTPStatus(err)
	if status >= http.StatusInternalServerError && status != http.StatusBadGateway {
		s.logger.Error("request failed",
			"request_id", chimw.GetReqID(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		s.errorResponse(w, status, "Internal server error")
		return
	}
	s.errorResponse(w, status, err.Error())
}

// extractClientID extracts the client identifier from the request.
// RealIP has already replaced RemoteAddr when a proxy header is present.
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
func (s *Server) rateLimitResponse(w http.ResponseWriter, r *http.Request, info ratelimit.Info) {
	response := map[string]interface{}{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		seconds := int(info.RetryAfter.Seconds())
		if seconds < 1 {
			seconds = 1
		}
		response["retry_after"] = seconds
		w.Header().Set("Retry-After", fmt.Sprintf("%d", seconds))
	}

	s.logger.Warn("rate limit exceeded",
		"client", s.extractClientID(r),
		"method", r.Method,
		"path", r.URL.Path,
		"limit", info.Limit,
		"reset_at", info.ResetTime.Format(time.RFC3339),
	)

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}

func encodeJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// writeJSON and writeError serve handlers that are not methods on Server.
func writeJSON(w http.ResponseWriter, status int, data any) {
	if err := encodeJSON(w, status, data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
