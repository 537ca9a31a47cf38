package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/anamtn/portfolio-api/internal/api/dto/common"
	"github.com/anamtn/portfolio-api/internal/logging"

	"github.com/gin-gonic/gin"
)

// Recovery converts any panic below it into a 500 with the standard error
// body. Nothing internal leaks to the client; the stack goes to the log.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger := logging.GetGlobalLogger()
				logger.Error("Panic recovered: %s %s | %s | %v\n%s",
					c.Request.Method,
					c.Request.URL.Path,
					c.GetString(ContextKeyRequestID),
					r,
					debug.Stack(),
				)

				c.AbortWithStatusJSON(http.StatusInternalServerError,
					common.NewErrorResponse(common.MsgInternalServer))
			}
		}()

		c.Next()
	}
}
