// Package server provides the HTTP REST API for the matching engine.
package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/jonathan/match-engine/internal/config"
	"github.com/jonathan/match-engine/internal/db"
	"github.com/jonathan/match-engine/internal/ensemble"
	"github.com/jonathan/match-engine/internal/llm"
	"github.com/jonathan/match-engine/internal/logging"
	"github.com/jonathan/match-engine/internal/matching"
	"github.com/jonathan/match-engine/internal/schemas"
	"github.com/jonathan/match-engine/internal/scoring"
	"github.com/jonathan/match-engine/internal/server/middleware"
	"github.com/jonathan/match-engine/internal/server/ratelimit"
	"github.com/jonathan/match-engine/internal/travel"
)

// Server represents the HTTP server.
type Server struct {
	httpServer  *http.Server
	logger      *zap.Logger
	db          *db.DB
	service     *matching.Service
	manager     *ensemble.Manager
	llmClient   *llm.GeminiClient
	rateLimiter *ratelimit.Limiter
	jwtService  *JWTService
	authHandler *AuthHandler
	validator   *validator.Validate

	candidateSchema string
	positionSchema  string
}

// Config holds server configuration.
type Config struct {
	Port        int
	DatabaseURL string
	TravelTable string
	Logger      *zap.Logger
}

// New creates a new server instance. The profile store is optional: without
// DATABASE_URL the scoring endpoints still work and the /v1/candidates and
// /v1/positions routes answer 503. JWT auth is enabled when MATCH_JWT_SECRET
// is set; otherwise all routes are open and a warning is logged.
func New(cfg Config) (*Server, error) {
	logger := logging.OrNop(cfg.Logger)

	s := &Server{
		logger:          logger,
		validator:       validator.New(),
		candidateSchema: schemas.ResolveSchemaPath(filepath.Join("schemas", schemas.CandidateSchema)),
		positionSchema:  schemas.ResolveSchemaPath(filepath.Join("schemas", schemas.PositionSchema)),
	}

	provider, err := buildTravelProvider(cfg.TravelTable)
	if err != nil {
		return nil, fmt.Errorf("failed to load travel table: %w", err)
	}
	s.service = matching.NewService(provider, logger)

	s.manager = ensemble.NewManager(logger)
	s.manager.Register(ensemble.NewWeightedStrategy(s.service), 1.0)
	s.manager.Register(ensemble.NewSkillsFirstStrategy(s.service), 1.0)
	s.manager.Register(ensemble.NewBaselineStrategy(s.service), 1.0)

	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		client, err := llm.NewGeminiClient(context.Background(), llm.DefaultConfig(), apiKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
		s.llmClient = client
		s.manager.Register(ensemble.NewSemanticStrategy(client), 1.0)
	}

	if cfg.DatabaseURL != "" {
		database, err := db.Connect(context.Background(), cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		s.db = database
	}

	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())

	if os.Getenv("MATCH_JWT_SECRET") != "" {
		jwtConfig, err := config.NewJWTConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to create JWT config: %w", err)
		}
		s.jwtService = NewJWTService(jwtConfig)

		secretConfig, err := config.NewSecretConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to create secret config: %w", err)
		}
		s.authHandler, err = NewAuthHandler(s.jwtService, secretConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to create auth handler: %w", err)
		}
	} else {
		logger.Warn("MATCH_JWT_SECRET not set, API authentication disabled")
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRequestID(s.withLogging(s.withRateLimit(s.withCORS(s.routes())))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // Batch scoring can take a while
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// buildTravelProvider loads the commute table when a path is configured. The
// provider is wrapped in a memoizing cache; with no table every location
// comparison degrades to the coarse city/country heuristics.
func buildTravelProvider(path string) (scoring.TravelTimeProvider, error) {
	if path == "" {
		return travel.NewStaticProvider(), nil
	}
	static, err := travel.LoadStaticProvider(path)
	if err != nil {
		return nil, err
	}
	return travel.NewCachedProvider(static), nil
}

// routes builds the request mux. Scoring and profile routes require a bearer
// token when auth is configured.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	// Open routes
	mux.HandleFunc("GET /v1/health", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())
	if s.authHandler != nil {
		mux.HandleFunc("POST /auth/token", s.authHandler.Token)
	}

	// Scoring endpoints
	mux.Handle("POST /v1/match", s.protect(s.handleMatch))
	mux.Handle("POST /v1/match/batch", s.protect(s.handleMatchBatch))
	mux.Handle("POST /v1/match/best-positions", s.protect(s.handleBestPositions))
	mux.Handle("POST /v1/match/best-candidates", s.protect(s.handleBestCandidates))
	mux.Handle("POST /v1/match/hybrid", s.protect(s.handleHybrid))
	mux.Handle("GET /v1/strategies", s.protect(s.handleListStrategies))
	mux.Handle("GET /v1/strategies/stats", s.protect(s.handleStrategyStats))

	// Profile store endpoints
	mux.Handle("POST /v1/candidates", s.protect(s.handleUpsertCandidate))
	mux.Handle("GET /v1/candidates", s.protect(s.handleListCandidates))
	mux.Handle("GET /v1/candidates/{id}", s.protect(s.handleGetCandidate))
	mux.Handle("DELETE /v1/candidates/{id}", s.protect(s.handleDeleteCandidate))
	mux.Handle("POST /v1/positions", s.protect(s.handleUpsertPosition))
	mux.Handle("GET /v1/positions", s.protect(s.handleListPositions))
	mux.Handle("GET /v1/positions/{id}", s.protect(s.handleGetPosition))
	mux.Handle("DELETE /v1/positions/{id}", s.protect(s.handleDeletePosition))
	mux.Handle("POST /v1/positions/{id}/matches", s.protect(s.handlePositionMatches))

	return mux
}

// protect wraps a handler with JWT auth when a JWT service is configured.
func (s *Server) protect(h http.HandlerFunc) http.Handler {
	if s.jwtService == nil {
		return h
	}
	return middleware.AuthMiddleware(s.jwtService.AsTokenValidator())(h)
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-stop
	s.logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	if s.llmClient != nil {
		_ = s.llmClient.Close()
	}
	if s.db != nil {
		s.db.Close()
	}
	s.logger.Info("server stopped")
	return nil
}

// withRequestID assigns each request an ID, echoed in the X-Request-ID header.
func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)
		next.ServeHTTP(w, r)
	})
}

// withCORS adds CORS headers.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware.
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

// withLogging adds request logging.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("remote", r.RemoteAddr),
			zap.String("request_id", w.Header().Get("X-Request-ID")),
			zap.Duration("elapsed", time.Since(start)),
		)
	})
}

// extractClientID extracts the client identifier from the request.
// For MVP, this uses the IP address from RemoteAddr.
// In the future, this could use X-Forwarded-For header (only from trusted proxies).
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

	s.logger.Warn("rate limit exceeded",
		zap.Int("limit", info.Limit),
		zap.Int("remaining", info.Remaining),
		zap.Time("reset", info.ResetTime),
	)

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
