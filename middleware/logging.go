package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Logging - HTTP request logging middleware
func Logging(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		log.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}
