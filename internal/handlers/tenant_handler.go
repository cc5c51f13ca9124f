package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/showpro/showpro-server/internal/config"
	"github.com/showpro/showpro-server/internal/helpers"
	"github.com/showpro/showpro-server/internal/models"
	"github.com/showpro/showpro-server/internal/tenancy"
)

// anonSessionCookie keys resolver state for visitors without a login session.
const anonSessionCookie = "workspace_session"

// GetWorkspace resolves and returns the current workspace for this session.
// Resolution goes through the session's resolver so that when a user
// navigates between workspaces quickly, a slow lookup for a workspace they
// already left can never clobber the fresher result.
func GetWorkspace(cfg *config.Config, sessions *tenancy.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		sr := sessions.Session(sessionID(c, cfg))

		res, err := sr.Resolve(c.Request.Context(), c.Param("tenantSlug"), c.Request.Host)
		if err != nil {
			_ = c.Error(err)
			c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(models.CodeStorageError, "workspace lookup is temporarily unavailable"))
			return
		}

		if res.State != tenancy.StateResolved {
			c.JSON(http.StatusNotFound, models.ErrorResponse(models.CodeTenantNotFound, "workspace not found: "+res.Slug))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(res.Tenant, ""))
	}
}

// sessionID picks a stable key for the caller's resolver state: the login
// session when present, otherwise an anonymous cookie minted on first visit.
func sessionID(c *gin.Context, cfg *config.Config) string {
	if token, err := c.Cookie(helpers.SessionCookieName); err == nil {
		if claims, vErr := helpers.ValidateSessionToken([]byte(cfg.SessionSecret), token); vErr == nil {
			return claims.SessionID
		}
	}

	if id, err := c.Cookie(anonSessionCookie); err == nil && id != "" {
		return id
	}

	id := uuid.New().String()
	c.SetCookie(anonSessionCookie, id, 0, "/", "", cfg.IsProduction(), true)
	return id
}
