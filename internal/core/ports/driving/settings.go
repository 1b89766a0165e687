package driving

import "github.com/custodia-labs/cloudcompass/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// Set updates a single setting by its config key.
	Set(key, value string) error

	// SetCatalogSource selects the catalog source loaded at startup.
	SetCatalogSource(kind domain.CatalogSourceKind, path string) error

	// Validate checks if current settings are consistent.
	Validate() error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings

	// Keys returns the supported setting keys.
	Keys() []string
}
