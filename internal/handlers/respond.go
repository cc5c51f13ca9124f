package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/showpro/showpro-server/internal/models"
)

// respondError maps domain errors onto the response envelope. Anything
// outside the taxonomy is treated as an infrastructure failure and handed to
// the error middleware.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrValidation):
		c.JSON(http.StatusBadRequest, models.ErrorResponse(models.CodeValidationError, err.Error()))
	case errors.Is(err, models.ErrSlugTaken):
		c.JSON(http.StatusConflict, models.ErrorResponse(models.CodeConflict, err.Error()))
	case errors.Is(err, models.ErrEventNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse(models.CodeNotFound, err.Error()))
	case errors.Is(err, models.ErrTenantNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse(models.CodeTenantNotFound, err.Error()))
	default:
		_ = c.Error(err)
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(models.CodeStorageError, "storage temporarily unavailable"))
	}
}
