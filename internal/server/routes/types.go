package routes

import (
	"medisync/internal/api/handlers"
	"medisync/internal/api/middleware"
)

// Handlers contains all the route handlers
type Handlers struct {
	DemoRequest *handlers.DemoRequestHandler
	Chat        *handlers.ChatHandler
	Health      *handlers.HealthHandler
}

// Middleware contains all the middleware
type Middleware struct {
	Validation *middleware.ValidationMiddleware
}

// GlobalOptions configures the middleware applied to every route
type GlobalOptions struct {
	CORS        middleware.CORSConfig
	RateLimit   middleware.RateLimitConfig
	ServiceName string
	// Tracing enables the OpenTelemetry gin middleware
	Tracing bool
}
