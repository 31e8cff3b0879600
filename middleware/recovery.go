package middleware

import (
	"net/http"

	"github.com/4GeeksAcademy/endpoints-starwars-layla-v2/models"
	"github.com/4GeeksAcademy/endpoints-starwars-layla-v2/utils"

	"github.com/gin-gonic/gin"
)

// RecoveryMiddleware turns a handler panic into a 500 and records it in the
// panic log with the route and request id.
func RecoveryMiddleware() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		utils.LogPanic(recovered, c.Request.Method+" "+c.Request.URL.Path+" request_id="+RequestID(c))

		c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Internal server error",
		})
	})
}
