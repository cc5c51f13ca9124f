package container

import (
	"log/slog"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/showpro/showpro-server/internal/config"
	"github.com/showpro/showpro-server/internal/models"
	"github.com/showpro/showpro-server/internal/services"
	"github.com/showpro/showpro-server/internal/tenancy"
)

// Container holds all application dependencies.
type Container struct {
	Logger *slog.Logger
	Config *config.Config

	TenantRepo models.TenantRepo
	EventsRepo models.EventsRepo
	KVStore    models.KVStore

	EventService    *services.EventService
	SettingsService *services.SettingsService

	Resolver *tenancy.Resolver
	Sessions *tenancy.Registry
}

// NewContainer wires repositories and services. A nil mongoClient selects the
// in-memory demo dataset; a nil redisClient selects the in-memory key-value
// store.
func NewContainer(
	logger *slog.Logger,
	cfg *config.Config,
	mongoClient *mongo.Client,
	redisClient *redis.Client,
) *Container {
	var tenantRepo models.TenantRepo
	var eventsRepo models.EventsRepo
	if mongoClient != nil {
		repo := models.MongodbNewRepo(mongoClient)
		tenantRepo = repo
		eventsRepo = repo
	} else {
		repo := models.NewMemoryRepo(models.SeedTenants(), models.SeedEvents())
		tenantRepo = repo
		eventsRepo = repo
	}

	var kv models.KVStore
	if redisClient != nil {
		kv = models.NewRedisStore(redisClient)
	} else {
		kv = models.NewMemoryStore()
	}

	resolver := tenancy.NewResolver(tenantRepo, tenancy.Options{
		DefaultSlug:    cfg.DefaultTenantSlug,
		PlatformSuffix: cfg.PlatformSuffix,
	})

	return &Container{
		Logger:          logger,
		Config:          cfg,
		TenantRepo:      tenantRepo,
		EventsRepo:      eventsRepo,
		KVStore:         kv,
		EventService:    services.NewEventService(eventsRepo),
		SettingsService: services.NewSettingsService(kv),
		Resolver:        resolver,
		Sessions:        tenancy.NewRegistry(resolver),
	}
}
