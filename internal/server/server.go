// Package server provides the HTTP REST API for the skill alignment engine.
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

	"github.com/go-playground/validator/v10"

	"github.com/novonex/skill-align/internal/cache"
	"github.com/novonex/skill-align/internal/db"
	"github.com/novonex/skill-align/internal/llm"
	"github.com/novonex/skill-align/internal/profile"
	"github.com/novonex/skill-align/internal/server/ratelimit"
)

// Config holds server configuration
type Config struct {
	Port          int
	DatabaseURL   string
	RedisAddr     string
	RedisPassword string
	APIKey        string
	// MatchPolicy controls requirement matching; callers normally pass
	// the result of config.ResolveMatchPolicy. The zero value is the
	// strict exact-match policy.
	MatchPolicy profile.MatchPolicy
}

// Server represents the HTTP server. The scoring endpoints are pure and
// always available; profile storage and analysis require the database,
// cache, and model client respectively.
type Server struct {
	httpServer  *http.Server
	db          *db.DB
	cache       *cache.AnalysisCache
	llm         llm.Client
	validator   *validator.Validate
	rateLimiter *ratelimit.Limiter
	policy      profile.MatchPolicy
}

// New creates a new server instance. DatabaseURL, RedisAddr, and APIKey are
// each optional; endpoints depending on an absent service return 503.
func New(cfg Config) (*Server, error) {
	s := &Server{
		validator: validator.New(),
		policy:    cfg.MatchPolicy,
	}

	if cfg.DatabaseURL != "" {
		database, err := db.Connect(context.Background(), cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := database.EnsureSchema(context.Background()); err != nil {
			database.Close()
			return nil, err
		}
		s.db = database
	}

	if cfg.RedisAddr != "" {
		analysisCache, err := cache.New(cfg.RedisAddr, cfg.RedisPassword, cache.DefaultTTL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to analysis cache: %w", err)
		}
		s.cache = analysisCache
	}

	if cfg.APIKey != "" {
		client, err := llm.NewGeminiClient(context.Background(), llm.DefaultConfig(), cfg.APIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create model client: %w", err)
		}
		s.llm = client
	}

	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(s.routes()))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // analysis calls wait on the model
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the request mux.
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)

	// Scoring endpoints (pure, no services required)
	mux.HandleFunc("POST /alignment", s.handleAlignment)
	mux.HandleFunc("POST /simulate", s.handleSimulate)
	mux.HandleFunc("POST /radar", s.handleRadar)
	mux.HandleFunc("POST /quiz/grade", s.handleQuizGrade)
	mux.HandleFunc("GET /quiz/{skill_id}", s.handleQuizQuestions)

	// Catalog endpoints
	mux.HandleFunc("GET /catalog/domains", s.handleCatalogDomains)
	mux.HandleFunc("GET /catalog/roles", s.handleCatalogRoles)
	mux.HandleFunc("GET /catalog/companies", s.handleCatalogCompanies)
	mux.HandleFunc("GET /catalog/actions", s.handleCatalogActions)

	// Profile storage endpoints (require database)
	mux.HandleFunc("GET /profiles/{id}", s.handleGetProfile)
	mux.HandleFunc("PUT /profiles/{id}", s.handlePutProfile)
	mux.HandleFunc("DELETE /profiles/{id}", s.handleDeleteProfile)

	// Analysis endpoints (require model client)
	mux.HandleFunc("POST /analyze", s.handleAnalyze)
	mux.HandleFunc("GET /analyses", s.handleListAnalyses)

	return mux
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

	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	if s.llm != nil {
		_ = s.llm.Close()
	}
	if s.cache != nil {
		_ = s.cache.Close()
	}
	if s.db != nil {
		s.db.Close()
	}

	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)
		if !allowed {
			s.setRateLimitHeaders(w, info)
			s.jsonResponse(w, http.StatusTooManyRequests, map[string]any{
				"error":       "rate limit exceeded",
				"retry_after": int(info.RetryAfter.Seconds()),
			})
			return
		}

		s.setRateLimitHeaders(w, info)
		next.ServeHTTP(w, r)
	})
}

// extractClientID derives a rate-limit bucket key from the request.
func (s *Server) extractClientID(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return fwd
	}
	return r.RemoteAddr
}

// setRateLimitHeaders advertises the remaining quota.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
	w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
	w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := map[string]string{"status": "ok"}
	if s.db != nil {
		if err := s.db.Ping(r.Context()); err != nil {
			status["database"] = "unreachable"
		} else {
			status["database"] = "ok"
		}
	}
	if s.cache != nil {
		if err := s.cache.HealthCheck(r.Context()); err != nil {
			status["cache"] = "unreachable"
		} else {
			status["cache"] = "ok"
		}
	}
	s.jsonResponse(w, http.StatusOK, status)
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
