package middleware

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/showpro/showpro-server/internal/helpers"
	"github.com/showpro/showpro-server/internal/models"
	"github.com/showpro/showpro-server/internal/tenancy"
)

// Context keys shared with the handlers.
const (
	CtxTenant     = "tenant"
	CtxTenantSlug = "tenant_slug"
	CtxClaims     = "claims"
)

// LoginPath is where unauthenticated management requests are sent.
const LoginPath = "/login"

// RequestID middleware adds a unique request ID to each request
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// StructuredLogger provides structured logging middleware
func StructuredLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		if raw != "" {
			path = path + "?" + raw
		}
		requestID, _ := c.Get("request_id")

		logger.Info("HTTP Request",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"latency", latency,
			"client_ip", c.ClientIP(),
			"tenant", c.GetString(CtxTenantSlug),
		)
	}
}

// ErrorHandler provides centralized error handling
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last()
			requestID, _ := c.Get("request_id")

			logger.Error("Request error",
				"request_id", requestID,
				"error", err.Error(),
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
			)

			if !c.Writer.Written() {
				c.JSON(http.StatusInternalServerError, models.ErrorResponse(models.CodeStorageError, "Internal server error"))
			}
		}
	}
}

// TenantResolver resolves the workspace for every tenant-scoped request. A
// lookup miss aborts with a distinct workspace-not-found response; another
// tenant is never substituted.
func TenantResolver(resolver *tenancy.Resolver, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		pathSlug := c.Param("tenantSlug")

		res, err := resolver.Resolve(c.Request.Context(), pathSlug, c.Request.Host)
		if err != nil {
			logger.Error("Tenant resolution failed", "slug", res.Slug, "error", err)
			c.AbortWithStatusJSON(http.StatusServiceUnavailable,
				models.ErrorResponse(models.CodeStorageError, "workspace lookup is temporarily unavailable"))
			return
		}
		if res.State != tenancy.StateResolved {
			c.AbortWithStatusJSON(http.StatusNotFound,
				models.ErrorResponse(models.CodeTenantNotFound, "workspace not found: "+res.Slug))
			return
		}

		c.Set(CtxTenant, res.Tenant)
		c.Set(CtxTenantSlug, res.Slug)
		c.Next()
	}
}

// TenantFromContext returns the tenant resolved for this request.
func TenantFromContext(c *gin.Context) (*models.Tenant, bool) {
	val, ok := c.Get(CtxTenant)
	if !ok {
		return nil, false
	}
	tenant, ok := val.(*models.Tenant)
	return tenant, ok
}

// AuthRequired gates the management routes. Browser navigation without a
// valid session is redirected to the login entry point with the originally
// requested path and query preserved; API clients get a 401 carrying the same
// login URL.
func AuthRequired(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(helpers.SessionCookieName)
		if err == nil {
			if claims, vErr := helpers.ValidateSessionToken(secret, token); vErr == nil {
				c.Set(CtxClaims, claims)
				c.Next()
				return
			}
		}

		loginURL := LoginPath + "?next=" + url.QueryEscape(c.Request.URL.RequestURI())

		if acceptsHTML(c) {
			c.Redirect(http.StatusFound, loginURL)
			c.Abort()
			return
		}

		resp := models.ErrorResponse(models.CodeUnauthorized, "authentication required")
		resp.Data = gin.H{"login_url": loginURL}
		c.AbortWithStatusJSON(http.StatusUnauthorized, resp)
	}
}

// ClaimsFromContext returns the session claims for an authenticated request.
func ClaimsFromContext(c *gin.Context) (*helpers.SessionClaims, bool) {
	val, ok := c.Get(CtxClaims)
	if !ok {
		return nil, false
	}
	claims, ok := val.(*helpers.SessionClaims)
	return claims, ok
}

func acceptsHTML(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), "text/html")
}
