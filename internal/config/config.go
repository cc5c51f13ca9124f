package config

import (
	"fmt"
	"os"
)

type Config struct {
	Port        string
	Environment string
	LogLevel    string

	// MongoDBURI is optional: when empty the server runs against the
	// in-memory demo dataset instead of a datastore.
	MongoDBURI    string
	RedisAddr     string
	RedisPassword string

	// DefaultTenantSlug is the workspace used when neither the path nor the
	// hostname identifies a tenant.
	DefaultTenantSlug string
	// PlatformSuffix marks reserved static-hosting hostnames that never map
	// to a tenant (e.g. ".pages.dev").
	PlatformSuffix string

	SessionSecret string
	// Placeholder credential pair for the demo login. Not a security
	// boundary.
	AdminUsername string
	AdminPassword string

	CORSOrigin string
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:              getEnvWithDefault("PORT", "8080"),
		Environment:       getEnvWithDefault("ENVIRONMENT", "development"),
		LogLevel:          getEnvWithDefault("LOG_LEVEL", "info"),
		MongoDBURI:        os.Getenv("MONGODB_URI"),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		DefaultTenantSlug: getEnvWithDefault("DEFAULT_TENANT_SLUG", "showpro"),
		PlatformSuffix:    getEnvWithDefault("PLATFORM_SUFFIX", ".pages.dev"),
		SessionSecret:     os.Getenv("SESSION_SECRET"),
		AdminUsername:     getEnvWithDefault("ADMIN_USERNAME", "admin"),
		AdminPassword:     getEnvWithDefault("ADMIN_PASSWORD", "admin"),
		CORSOrigin:        getEnvWithDefault("CORS_ORIGIN", "http://localhost:5173"),
	}

	if cfg.IsProduction() {
		if cfg.SessionSecret == "" {
			return nil, fmt.Errorf("SESSION_SECRET is required in production")
		}
		if cfg.MongoDBURI == "" {
			return nil, fmt.Errorf("MONGODB_URI is required in production")
		}
	}
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = "dev-only-session-secret"
	}

	return cfg, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
