package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Health reports database reachability and component configuration.
func (s *Server) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	components := gin.H{
		"chatLLMConfigured": s.chatConfigured,
		"geminiConfigured":  s.geminiConfigured,
	}

	if s.pingDB != nil {
		if err := s.pingDB(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":     "unhealthy",
				"database":   "unreachable",
				"components": components,
				"error":      err.Error(),
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "healthy",
		"database":   "connected",
		"components": components,
	})
}
