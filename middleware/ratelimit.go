package middleware

import (
	"net/http"

	"github.com/4GeeksAcademy/endpoints-starwars-layla-v2/models"
	"github.com/4GeeksAcademy/endpoints-starwars-layla-v2/utils"

	"github.com/gin-gonic/gin"
)

// RateLimitMiddleware rejects clients over their quota with 429. Limiter
// failures let the request through.
func RateLimitMiddleware(limiter utils.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			utils.LogError(err, "rate limiter")
			c.Next()
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, models.ErrorResponse{Error: "Too many requests."})
			return
		}
		c.Next()
	}
}
