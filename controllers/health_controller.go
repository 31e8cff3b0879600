package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/4GeeksAcademy/endpoints-starwars-layla-v2/repository"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	store *repository.Store
}

func NewHealthController(store *repository.Store) *HealthController {
	return &HealthController{store: store}
}

// GET /health
func (hc *HealthController) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := hc.store.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "unhealthy",
			"message": "database ping failed",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": "connected",
	})
}
