package controllers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/4GeeksAcademy/endpoints-starwars-layla-v2/middleware"
	"github.com/4GeeksAcademy/endpoints-starwars-layla-v2/models"
	"github.com/4GeeksAcademy/endpoints-starwars-layla-v2/services"
	"github.com/4GeeksAcademy/endpoints-starwars-layla-v2/utils"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidBody      = "Invalid request body."
	msgResourceMissing  = "Resource not found."
	msgInternal         = "Internal server error"
	msgUserIDRequired   = "User ID is required."
	msgUserNotFound     = "User not found."
	msgFavoriteNotFound = "Favorite not found."
)

// respondError maps service errors to status codes. Anything that is not an
// AppError is logged and hidden behind a 500.
func respondError(c *gin.Context, err error) {
	var appErr *services.AppError
	if errors.As(err, &appErr) {
		c.JSON(statusFor(appErr.Kind), models.ErrorResponse{Error: appErr.Message})
		return
	}

	_ = c.Error(err)
	utils.LogError(err, c.Request.Method+" "+c.FullPath()+" request_id="+middleware.RequestID(c))
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: msgInternal})
}

func statusFor(kind services.Kind) int {
	switch kind {
	case services.KindNotFound:
		return http.StatusNotFound
	case services.KindValidation, services.KindConflict:
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// bindJSON binds an optional JSON body; an empty body leaves req untouched.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: msgInvalidBody})
		return false
	}
	return true
}

// pathID parses a numeric path parameter. Non-numeric ids are treated like
// an unknown route.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: msgResourceMissing})
		return 0, false
	}
	return uint(id), true
}
