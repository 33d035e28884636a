// Package router sets up all HTTP routes for the API.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/solarstack/datasheet-api/internal/handlers"
	"github.com/solarstack/datasheet-api/internal/middleware"
)

// Setup creates and configures the Gin router with all routes.
func Setup(h *handlers.Handler, rateLimit int, allowedOrigins []string) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.CORS(allowedOrigins))

	rateLimiter := middleware.NewRateLimiter(rateLimit)

	// --- Public Routes ---
	r.GET("/api/v1/health", h.HealthCheck)

	// --- Extraction Routes (rate limited — each request costs a model call) ---
	limited := r.Group("/api/v1")
	limited.Use(rateLimiter.RateLimit())
	{
		limited.POST("/datasheets/extract", h.ExtractDatasheet)
	}

	return r
}
