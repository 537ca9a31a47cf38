package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/anamtn/portfolio-api/internal/api/handlers"
	"github.com/anamtn/portfolio-api/internal/api/middleware"
	"github.com/anamtn/portfolio-api/internal/api/validation"
	"github.com/anamtn/portfolio-api/internal/config"
	"github.com/anamtn/portfolio-api/internal/logging"
	"github.com/anamtn/portfolio-api/internal/ratelimit"
	"github.com/anamtn/portfolio-api/internal/server/routes"
	"github.com/anamtn/portfolio-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Server represents the HTTP server
type Server struct {
	router  *gin.Engine
	cfg     *config.Config
	limiter *ratelimit.Limiter
	mailer  service.Mailer
	httpSrv *http.Server
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config, limiter *ratelimit.Limiter, mailer service.Mailer) *Server {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Disable Gin's default logger entirely; the request logger middleware
	// handles it
	gin.DisableConsoleColor()
	gin.DefaultWriter = io.Discard

	// Replace the stock email rule with the permissive pattern on the
	// binding engine so ShouldBindJSON applies it
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}

	router := gin.New()

	return &Server{
		router:  router,
		cfg:     cfg,
		limiter: limiter,
		mailer:  mailer,
	}
}

// Init wires middleware and routes
func (s *Server) Init() {
	contactHandler := handlers.NewContactHandler(s.limiter, s.mailer)
	healthHandler := handlers.NewHealthHandler(s.limiter)

	// Global middleware
	s.router.Use(middleware.Recovery())
	s.router.Use(middleware.RequestID())
	s.router.Use(middleware.CORS())
	s.router.Use(middleware.SecurityHeaders())
	s.router.Use(middleware.RequestLogger())

	// Health check endpoint
	s.router.GET("/health", healthHandler.Check)

	// Public API routes. The coarse burst limiter protects the process;
	// the per-identifier quota inside the handler is the published limit.
	api := s.router.Group("/api")
	api.Use(middleware.RateLimitMiddleware(middleware.RateLimitConfig{
		RPS:   50,
		Burst: 100,
	}))
	routes.SetupContactRoutes(api, contactHandler)
}

// Router exposes the gin engine (used by tests)
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start runs the server until ctx is canceled, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	logger := logging.GetGlobalLogger()

	s.httpSrv = &http.Server{
		Addr:    ":" + s.cfg.Port,
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	logger.Info("Server listening on port %s", s.cfg.Port)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	return nil
}
