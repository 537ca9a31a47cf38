package utils

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// DefaultClientIP is used when no forwarding header identifies the client
const DefaultClientIP = "127.0.0.1"

// GetRealIP extracts the client IP used to key rate-limit state.
// X-Forwarded-For can be a comma-separated list (client, proxy1, proxy2, ...);
// the leftmost entry is the client. Falls back to a loopback default.
func GetRealIP(c *gin.Context) string {
	forwardedFor := c.GetHeader("X-Forwarded-For")
	if forwardedFor != "" {
		ips := strings.Split(forwardedFor, ",")
		if clientIP := strings.TrimSpace(ips[0]); clientIP != "" {
			return clientIP
		}
	}

	return DefaultClientIP
}
