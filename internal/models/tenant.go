package models

import (
	"context"
	"regexp"

	"github.com/google/uuid"
)

// Branding is the per-tenant look applied to both the management UI and the
// public event landing pages.
type Branding struct {
	LogoURL      string `bson:"logo_url,omitempty" json:"logo_url,omitempty"`
	PrimaryColor string `bson:"primary_color" json:"primary_color"`
	FontFamily   string `bson:"font_family,omitempty" json:"font_family,omitempty"`
}

// Tenant is an isolated customer workspace. Tenants are provisioned by an
// administrative process; this service only reads them. The slug is immutable
// once assigned and doubles as the subdomain label for hostname-based
// resolution.
type Tenant struct {
	ID       uuid.UUID `bson:"_id" json:"id"`
	Slug     string    `bson:"slug" json:"slug"`
	Name     string    `bson:"name" json:"name"`
	Domain   string    `bson:"domain,omitempty" json:"domain,omitempty"`
	Branding Branding  `bson:"branding" json:"branding"`
}

// slugPattern constrains tenant and event slugs to URL/host-safe identifiers.
var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// IsValidSlug reports whether s is a well-formed slug.
func IsValidSlug(s string) bool {
	return slugPattern.MatchString(s)
}

// TenantRepo is the tenant lookup collaborator. Matching is exact and
// case-sensitive; a miss returns ErrTenantNotFound.
type TenantRepo interface {
	GetTenantBySlug(ctx context.Context, slug string) (*Tenant, error)
}
