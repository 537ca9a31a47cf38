package handlers

import (
	"net/http"

	"github.com/anamtn/portfolio-api/internal/ratelimit"
	"github.com/anamtn/portfolio-api/internal/version"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports service liveness and which rate-limit backend is
// configured
type HealthHandler struct {
	limiter *ratelimit.Limiter
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(limiter *ratelimit.Limiter) *HealthHandler {
	return &HealthHandler{limiter: limiter}
}

// HealthResponse is the health check payload
type HealthResponse struct {
	Status        string `json:"status"`
	Version       string `json:"version"`
	RateLimitMode string `json:"rate_limit_mode"`
}

// Check handles GET /health
func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:        "ok",
		Version:       version.Version,
		RateLimitMode: string(h.limiter.Mode()),
	})
}
