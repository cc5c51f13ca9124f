package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/showpro/showpro-server/internal/middleware"
	"github.com/showpro/showpro-server/internal/models"
	"github.com/showpro/showpro-server/internal/services"
)

// landingTenant is the slice of the tenant record exposed on public pages.
type landingTenant struct {
	Name     string          `json:"name"`
	Slug     string          `json:"slug"`
	Branding models.Branding `json:"branding"`
}

type landingPayload struct {
	Tenant landingTenant          `json:"tenant"`
	Theme  services.ThemeSettings `json:"theme"`
	Event  *models.Event          `json:"event"`
	Embed  *services.EmbedView    `json:"embed,omitempty"`
}

// GetEventLanding serves the public landing page payload: the published
// event, the tenant's branding and theme, and the embed decision for its
// stream. Draft and archived events read as not found.
func GetEventLanding(es *services.EventService, ss *services.SettingsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tenant, ok := middleware.TenantFromContext(c)
		if !ok {
			c.JSON(http.StatusNotFound, models.ErrorResponse(models.CodeTenantNotFound, "workspace not resolved"))
			return
		}

		event, err := es.GetPublicEventBySlug(c.Request.Context(), tenant.ID, c.Param("eventSlug"))
		if err != nil {
			respondError(c, err)
			return
		}

		theme, err := ss.LoadTheme(c.Request.Context(), tenant)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(landingPayload{
			Tenant: landingTenant{Name: tenant.Name, Slug: tenant.Slug, Branding: tenant.Branding},
			Theme:  theme,
			Event:  event,
			Embed:  services.BuildEmbedView(event),
		}, ""))
	}
}
