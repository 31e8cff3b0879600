package middleware

import (
	"time"

	"github.com/4GeeksAcademy/endpoints-starwars-layla-v2/metrics"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records HTTP metrics for each request, labelled with the
// route template. Register it ahead of RecoveryMiddleware so recovered panics
// are counted with their 500 status.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}
		start := time.Now()
		metrics.RequestStarted()
		// Deferred so the in-flight gauge is released even when a panic
		// unwinds through here.
		defer func() {
			path := c.FullPath()
			if path == "" {
				path = "unmatched"
			}
			metrics.RequestFinished(c.Request.Method, path, c.Writer.Status(), time.Since(start))
		}()

		c.Next()
	}
}
