// Package handlers contains HTTP handler functions for the API.
//
// Go Pattern: Handlers in Gin receive a *gin.Context which provides request
// data, response methods, and middleware values. We group related handlers
// into a struct (Handler) that holds shared dependencies — dependency
// injection via struct fields, no globals. This makes testing easy: just
// create a Handler with fake dependencies.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/solarstack/datasheet-api/internal/models"
	"github.com/solarstack/datasheet-api/internal/pipeline"
)

// ModelInfo is what the health endpoint needs to know about the model client.
type ModelInfo interface {
	IsConfigured() bool
	Model() string
}

// Handler holds shared dependencies for all HTTP handlers.
type Handler struct {
	Processor      *pipeline.Processor
	LLM            ModelInfo
	MaxUploadBytes int64
	Version        string
}

// NewHandler creates a new handler with all dependencies.
func NewHandler(p *pipeline.Processor, llm ModelInfo, maxUploadBytes int64, version string) *Handler {
	return &Handler{
		Processor:      p,
		LLM:            llm,
		MaxUploadBytes: maxUploadBytes,
		Version:        version,
	}
}

// HealthCheck returns the API health status.
// GET /api/v1/health
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:  "ok",
		Version: h.Version,
		Model:   h.LLM.Model(),
		AIKey:   h.LLM.IsConfigured(),
	})
}
