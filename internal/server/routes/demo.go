package routes

import (
	"medisync/internal/api/handlers"
	"medisync/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// SetupDemoRoutes configures the public "Book A Demo" form routes
func SetupDemoRoutes(router *gin.RouterGroup, demo *handlers.DemoRequestHandler, m *Middleware) {
	router.GET("/plans", demo.ListPlans)

	public := router.Group("/demo-requests")
	{
		// Submissions are stored, so each client gets a tight budget: burst of 5, one per 12 minutes after that
		public.POST("",
			middleware.RateLimitMiddleware(middleware.RateLimitConfig{
				RPS:   1.0 / 720,
				Burst: 5,
			}),
			m.Validation.ValidateDemoRequest(),
			demo.Submit,
		)

		// Called on every keystroke, covered by the global limiter only
		public.POST("/validate", m.Validation.ValidateFieldRequest(), demo.ValidateField)
	}
}
