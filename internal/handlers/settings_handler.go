package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/showpro/showpro-server/internal/middleware"
	"github.com/showpro/showpro-server/internal/models"
	"github.com/showpro/showpro-server/internal/services"
)

// GetTheme returns the tenant's theme settings, falling back to branding
// defaults when nothing has been saved.
func GetTheme(ss *services.SettingsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tenant, ok := middleware.TenantFromContext(c)
		if !ok {
			c.JSON(http.StatusNotFound, models.ErrorResponse(models.CodeTenantNotFound, "workspace not resolved"))
			return
		}

		theme, err := ss.LoadTheme(c.Request.Context(), tenant)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(theme, ""))
	}
}

func UpdateTheme(ss *services.SettingsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tenant, ok := middleware.TenantFromContext(c)
		if !ok {
			c.JSON(http.StatusNotFound, models.ErrorResponse(models.CodeTenantNotFound, "workspace not resolved"))
			return
		}

		var theme services.ThemeSettings
		if err := c.ShouldBindJSON(&theme); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(models.CodeValidationError, err.Error()))
			return
		}

		if err := ss.SaveTheme(c.Request.Context(), tenant.ID, theme); err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(theme, "Theme saved successfully"))
	}
}

func ResetTheme(ss *services.SettingsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tenant, ok := middleware.TenantFromContext(c)
		if !ok {
			c.JSON(http.StatusNotFound, models.ErrorResponse(models.CodeTenantNotFound, "workspace not resolved"))
			return
		}

		if err := ss.ResetTheme(c.Request.Context(), tenant.ID); err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Theme reset to branding defaults"))
	}
}
