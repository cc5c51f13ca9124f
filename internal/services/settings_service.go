package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/showpro/showpro-server/internal/models"
)

// ThemeSettings is the tenant-adjustable part of the theme. Branding from the
// tenant record stays read-only; only the accent override and the dark-mode
// flag are persisted here.
type ThemeSettings struct {
	AccentColor string `json:"accent_color" validate:"omitempty,hexcolor"`
	DarkMode    bool   `json:"dark_mode"`
}

// SettingsService persists per-tenant theme settings in the key-value store.
type SettingsService struct {
	store models.KVStore
}

func NewSettingsService(store models.KVStore) *SettingsService {
	return &SettingsService{store: store}
}

func themeKey(tenantID uuid.UUID) string {
	return fmt.Sprintf("tenant:%s:theme", tenantID)
}

// LoadTheme reads the stored settings for a tenant. When nothing has been
// saved yet, the accent falls back to the tenant's branding color.
func (ss *SettingsService) LoadTheme(ctx context.Context, tenant *models.Tenant) (ThemeSettings, error) {
	raw, ok, err := ss.store.Get(ctx, themeKey(tenant.ID))
	if err != nil {
		return ThemeSettings{}, fmt.Errorf("error loading theme for tenant %s: %w", tenant.Slug, err)
	}
	if !ok {
		return ThemeSettings{AccentColor: tenant.Branding.PrimaryColor}, nil
	}

	var theme ThemeSettings
	if err := json.Unmarshal([]byte(raw), &theme); err != nil {
		// A corrupt entry degrades to the branding default instead of failing
		// the whole page.
		return ThemeSettings{AccentColor: tenant.Branding.PrimaryColor}, nil
	}
	if theme.AccentColor == "" {
		theme.AccentColor = tenant.Branding.PrimaryColor
	}
	return theme, nil
}

// SaveTheme validates and persists the settings for a tenant.
func (ss *SettingsService) SaveTheme(ctx context.Context, tenantID uuid.UUID, theme ThemeSettings) error {
	if tenantID == uuid.Nil {
		return fmt.Errorf("%w: invalid tenant ID", models.ErrValidation)
	}
	if err := models.Validate.Struct(theme); err != nil {
		return fmt.Errorf("%w: %v", models.ErrValidation, err)
	}

	raw, err := json.Marshal(theme)
	if err != nil {
		return fmt.Errorf("error encoding theme: %w", err)
	}
	if err := ss.store.Set(ctx, themeKey(tenantID), string(raw)); err != nil {
		return fmt.Errorf("error saving theme for tenant %s: %w", tenantID, err)
	}
	return nil
}

// ResetTheme removes a tenant's saved settings, reverting to branding
// defaults.
func (ss *SettingsService) ResetTheme(ctx context.Context, tenantID uuid.UUID) error {
	return ss.store.Delete(ctx, themeKey(tenantID))
}
