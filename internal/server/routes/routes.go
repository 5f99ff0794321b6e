package routes

import (
	"net/http"

	"medisync/internal/api/dto/common"
	"medisync/internal/api/middleware"
	"medisync/internal/logging"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// Setup configures all route groups
func Setup(router *gin.Engine, h *Handlers, m *Middleware) {
	logger := logging.GetGlobalLogger()

	SetupHealthRoutes(router, h.Health)

	v1 := router.Group("/api/v1")
	SetupDemoRoutes(v1, h.DemoRequest, m)
	SetupChatRoutes(v1, h.Chat, m)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, common.NewErrorResponse(common.ErrCodeNotFound, "Route not found", nil))
	})

	logger.Info("All routes have been set up successfully")
}

// SetupGlobalMiddleware configures middleware that applies to all routes
func SetupGlobalMiddleware(router *gin.Engine, logger *logging.Logger, opts GlobalOptions) {
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.RequestID())
	if opts.Tracing {
		router.Use(otelgin.Middleware(opts.ServiceName, otelgin.WithFilter(func(r *http.Request) bool {
			return r.URL.Path != "/health"
		})))
	}
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORS(opts.CORS))
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.RateLimitMiddleware(opts.RateLimit))
}
