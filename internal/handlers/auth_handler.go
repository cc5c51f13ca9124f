package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/showpro/showpro-server/internal/config"
	"github.com/showpro/showpro-server/internal/helpers"
	"github.com/showpro/showpro-server/internal/models"
	"github.com/showpro/showpro-server/internal/tenancy"
)

const sessionTTL = 24 * time.Hour

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	// Next is the management path the user originally requested; it is
	// echoed back so the client can restore it after login.
	Next string `json:"next"`
}

// Login is the placeholder credential check: a single configured username and
// password pair, no server-side account store. It exists to gate navigation,
// not to protect data.
func Login(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(models.CodeValidationError, err.Error()))
			return
		}

		if req.Username != cfg.AdminUsername || req.Password != cfg.AdminPassword {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(models.CodeUnauthorized, "invalid credentials"))
			return
		}

		token, claims, err := helpers.MintSessionToken([]byte(cfg.SessionSecret), req.Username, sessionTTL)
		if err != nil {
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(models.CodeStorageError, "failed to create session"))
			return
		}

		c.SetCookie(
			helpers.SessionCookieName,
			token,
			int(sessionTTL.Seconds()),
			"/",
			"",
			cfg.IsProduction(),
			true,
		)

		c.JSON(http.StatusOK, models.SuccessResponse(gin.H{
			"username": claims.Username,
			"next":     sanitizeNext(req.Next),
		}, "Logged in successfully"))
	}
}

// Logout clears the session cookie and forgets the session's resolver state.
func Logout(cfg *config.Config, sessions *tenancy.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, err := c.Cookie(helpers.SessionCookieName); err == nil {
			if claims, vErr := helpers.ValidateSessionToken([]byte(cfg.SessionSecret), token); vErr == nil {
				sessions.Drop(claims.SessionID)
			}
		}

		c.SetCookie(helpers.SessionCookieName, "", -1, "/", "", cfg.IsProduction(), true)
		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Logged out successfully"))
	}
}

// sanitizeNext keeps the post-login redirect on this origin: only relative
// paths survive, anything scheme-like or protocol-relative falls back to the
// workspace root.
func sanitizeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return "/"
	}
	return next
}
