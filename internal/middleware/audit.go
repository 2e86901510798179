package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Audit logs every mutating admin request after it completes, with the
// acting principal when one was resolved. Reads are not audited.
func Audit(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		switch c.Request.Method {
		case "GET", "HEAD", "OPTIONS":
			return
		}

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Int64("latency_ms", time.Since(start).Milliseconds()),
			zap.String("ip", c.ClientIP()),
			zap.String("user_agent", c.GetHeader("User-Agent")),
		}
		if principal, ok := AdminFromContext(c); ok {
			fields = append(fields,
				zap.String("actor", principal.UserID),
				zap.String("role", string(principal.Role)),
			)
		}
		logger.Info("admin action", fields...)
	}
}
