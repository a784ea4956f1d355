package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// userIDKey is the gin context key the middleware stores the caller id under.
const userIDKey = "userId"

func (h *Handler) userIDMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "missing Authorization header",
		})
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid Authorization header format",
		})
		return
	}

	userID, err := h.services.ParseToken(parts[1])
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid or expired token",
		})
		return
	}

	c.Set(userIDKey, userID)
	c.Next()
}

// callerID returns the authenticated user id stored by the middleware.
func callerID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
