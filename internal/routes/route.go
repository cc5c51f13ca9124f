package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/showpro/showpro-server/internal/container"
	"github.com/showpro/showpro-server/internal/handlers"
	"github.com/showpro/showpro-server/internal/middleware"
)

// SetupRoutes configures all routes with the dependency container. The
// tenant-scoped surface is registered twice: once under /t/:tenantSlug for
// explicit path-based resolution and once at the root where the workspace is
// derived from the request hostname.
func SetupRoutes(app *container.Container) *gin.Engine {
	if app.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{app.Config.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(app.Logger))
	r.Use(middleware.ErrorHandler(app.Logger))
	r.Use(gin.Recovery())

	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "OK",
				"service": "showpro-api",
			})
		})

		v1.POST("/auth/login", handlers.Login(app.Config))
		v1.POST("/auth/logout", handlers.Logout(app.Config, app.Sessions))
	}

	registerTenantRoutes(r.Group("/t/:tenantSlug"), app)
	registerTenantRoutes(r.Group(""), app)

	return r
}

func registerTenantRoutes(g *gin.RouterGroup, app *container.Container) {
	// Workspace resolution runs through the per-session resolver so stale
	// lookups can't clobber newer ones; it handles its own not-found state.
	g.GET("/api/workspace", handlers.GetWorkspace(app.Config, app.Sessions))

	scoped := g.Group("", middleware.TenantResolver(app.Resolver, app.Logger))

	// Public surface: landing pages and theme need a resolved workspace but
	// no login.
	scoped.GET("/e/:eventSlug", handlers.GetEventLanding(app.EventService, app.SettingsService))
	scoped.GET("/api/theme", handlers.GetTheme(app.SettingsService))

	// Management surface: resolved workspace plus an authenticated session.
	mgmt := scoped.Group("/api", middleware.AuthRequired([]byte(app.Config.SessionSecret)))
	{
		mgmt.POST("/events", handlers.CreateEvent(app.EventService))
		mgmt.GET("/events", handlers.ListEvents(app.EventService))
		mgmt.GET("/events/:id", handlers.GetEvent(app.EventService))
		mgmt.PATCH("/events/:id", handlers.UpdateEvent(app.EventService))
		mgmt.DELETE("/events/:id", handlers.DeleteEvent(app.EventService))

		mgmt.PUT("/theme", handlers.UpdateTheme(app.SettingsService))
		mgmt.DELETE("/theme", handlers.ResetTheme(app.SettingsService))
	}
}
