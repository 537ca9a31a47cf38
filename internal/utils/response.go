package utils

import (
	"net/http"

	"github.com/anamtn/portfolio-api/internal/api/dto/common"
	"github.com/anamtn/portfolio-api/internal/logging"

	"github.com/gin-gonic/gin"
)

// HandleSuccess sends a success response with data
func HandleSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// HandleError is the single place API errors are converted into wire
// responses. The underlying error is logged; only the message is exposed.
func HandleError(c *gin.Context, err error, status int, message string) {
	logger := logging.GetGlobalLogger()
	logger.LogHTTPError(
		c.Request.Method,
		c.Request.URL.Path,
		GetRealIP(c),
		status,
		message,
		err,
	)

	c.JSON(status, common.NewErrorResponse(message))
}
