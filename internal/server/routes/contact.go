package routes

import (
	"github.com/anamtn/portfolio-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// SetupContactRoutes configures the contact form routes. The endpoint is
// public; the per-identifier quota inside the handler is the real guard.
func SetupContactRoutes(router *gin.RouterGroup, contact *handlers.ContactHandler) {
	router.POST("/contact", contact.Submit)
}
