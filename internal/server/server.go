package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"medisync/internal/api/handlers"
	"medisync/internal/api/middleware"
	"medisync/internal/api/validation"
	"medisync/internal/config"
	"medisync/internal/lead"
	"medisync/internal/logging"
	"medisync/internal/server/routes"
	"medisync/internal/service"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	cfg    *config.Config
	logger *logging.Logger
}

// NewServer creates a new server instance. store may be nil, in which case
// /health reports the process only.
func NewServer(cfg *config.Config, logger *logging.Logger, gateway lead.Gateway, store handlers.Pinger) (*Server, error) {
	if logger == nil {
		logger = logging.GetGlobalLogger()
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Disable Gin's default logger entirely because we're using our custom logger
	gin.DisableConsoleColor()
	gin.DefaultWriter = io.Discard

	if err := validation.RegisterWithGin(); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	// Create a new engine without default middleware
	router := gin.New()

	routes.SetupGlobalMiddleware(router, logger, routes.GlobalOptions{
		CORS: middleware.CORSConfig{
			AllowedOrigins: cfg.AllowedOrigins,
			Permissive:     !cfg.IsProduction(),
		},
		RateLimit: middleware.RateLimitConfig{
			RPS:   10, // 10 requests per second
			Burst: 20, // Allow bursts of up to 20 requests
		},
		ServiceName: cfg.ServiceName,
		Tracing:     cfg.OTLPEndpoint != "",
	})

	h := &routes.Handlers{
		DemoRequest: handlers.NewDemoRequestHandler(
			gateway,
			service.NewRecaptchaService(cfg.RecaptchaSecretKey, cfg.RecaptchaMinScore),
			logger,
			cfg.SurfaceGatewayErrors,
		),
		Chat:   handlers.NewChatHandler(cfg.ChatReplyDelay),
		Health: handlers.NewHealthHandler(store),
	}
	m := &routes.Middleware{
		Validation: middleware.NewValidationMiddleware(),
	}
	routes.Setup(router, h, m)

	return &Server{router: router, cfg: cfg, logger: logger}, nil
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until ctx is cancelled, then drains in-flight requests
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              ":" + s.cfg.Port,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		// Chat replies are held for the reply delay
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	s.logger.Info("HTTP server stopped")
	return nil
}
