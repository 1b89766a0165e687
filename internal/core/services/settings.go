package services

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/cloudcompass/internal/core/domain"
	"github.com/custodia-labs/cloudcompass/internal/core/ports/driven"
	"github.com/custodia-labs/cloudcompass/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyCatalogSource     = "catalog.source"
	KeyCatalogPath       = "catalog.path"
	KeyOutputFormat      = "output.format"
	KeyExplorerCategory  = "explorer.default_category"
	KeyExplorerProvider  = "explorer.default_provider"
	KeyPlannerComplexity = "planner.default_complexity"
	KeyPlannerSource     = "planner.default_source"
	KeyPlannerTarget     = "planner.default_target"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
// Stored values that are no longer valid fall back to the defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Catalog: domain.CatalogSettings{
			Source: s.getSourceKind(defaults.Catalog.Source),
			Path:   s.configStore.GetString(KeyCatalogPath),
		},
		Output: domain.OutputSettings{
			Format: s.getOutputFormat(defaults.Output.Format),
		},
		Explorer: domain.ExplorerSettings{
			Category: s.getString(KeyExplorerCategory, defaults.Explorer.Category),
			Provider: s.getString(KeyExplorerProvider, defaults.Explorer.Provider),
		},
		Planner: domain.PlannerSettings{
			Source:     s.getPlannerSource(defaults.Planner.Source),
			Target:     s.getPlannerTarget(defaults.Planner.Target),
			Complexity: s.getComplexity(defaults.Planner.Complexity),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	values := []struct {
		key   string
		value string
	}{
		{KeyCatalogSource, settings.Catalog.Source.String()},
		{KeyCatalogPath, settings.Catalog.Path},
		{KeyOutputFormat, settings.Output.Format.String()},
		{KeyExplorerCategory, settings.Explorer.Category},
		{KeyExplorerProvider, settings.Explorer.Provider},
		{KeyPlannerSource, settings.Planner.Source},
		{KeyPlannerTarget, settings.Planner.Target.Key()},
		{KeyPlannerComplexity, settings.Planner.Complexity.String()},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}
	return nil
}

// Set updates a single setting by its config key after validating the value.
func (s *SettingsService) Set(key, value string) error {
	value = strings.TrimSpace(value)

	switch key {
	case KeyCatalogSource:
		kind := domain.CatalogSourceKind(strings.ToLower(value))
		if !kind.IsValid() {
			return fmt.Errorf("%w: invalid catalog source: %s", domain.ErrInvalidInput, value)
		}
		value = kind.String()
	case KeyCatalogPath:
	case KeyOutputFormat:
		format := domain.OutputFormat(strings.ToLower(value))
		if !format.IsValid() {
			return fmt.Errorf("%w: invalid output format: %s", domain.ErrInvalidInput, value)
		}
		value = format.String()
	case KeyExplorerCategory:
		if !strings.EqualFold(value, domain.Wildcard) {
			category := domain.ParseCategory(value)
			if !category.IsValid() {
				return fmt.Errorf("%w: invalid category: %s", domain.ErrInvalidInput, value)
			}
			value = category.String()
		} else {
			value = domain.Wildcard
		}
	case KeyExplorerProvider:
		if !strings.EqualFold(value, domain.Wildcard) {
			provider := domain.ParseProvider(value)
			if !provider.IsValid() {
				return fmt.Errorf("%w: invalid provider: %s", domain.ErrInvalidInput, value)
			}
			value = provider.String()
		} else {
			value = domain.Wildcard
		}
	case KeyPlannerSource:
		value = strings.ToLower(value)
		if !domain.IsValidMigrationSource(value) {
			return fmt.Errorf("%w: invalid migration source: %s", domain.ErrInvalidInput, value)
		}
	case KeyPlannerTarget:
		provider := domain.ParseProvider(value)
		if !provider.IsValid() {
			return fmt.Errorf("%w: invalid migration target: %s", domain.ErrInvalidInput, value)
		}
		value = provider.Key()
	case KeyPlannerComplexity:
		complexity := domain.Complexity(strings.ToLower(value))
		if !complexity.IsValid() {
			return fmt.Errorf("%w: invalid complexity: %s", domain.ErrInvalidInput, value)
		}
		value = complexity.String()
	default:
		return fmt.Errorf("%w: unknown setting: %s", domain.ErrInvalidInput, key)
	}

	if err := s.configStore.Set(key, value); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// SetCatalogSource selects the catalog source loaded at startup.
func (s *SettingsService) SetCatalogSource(kind domain.CatalogSourceKind, path string) error {
	if !kind.IsValid() {
		return fmt.Errorf("%w: invalid catalog source: %s", domain.ErrInvalidInput, kind)
	}
	if kind.RequiresPath() && path == "" {
		return fmt.Errorf("%w: catalog source %s requires a path", domain.ErrInvalidInput, kind)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Catalog.Source = kind
	settings.Catalog.Path = path
	return s.Save(settings)
}

// Validate checks if current settings are consistent.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	if settings.Catalog.Source.RequiresPath() && settings.Catalog.Path == "" {
		return fmt.Errorf("catalog source %q requires %s to be set",
			settings.Catalog.Source.Description(), KeyCatalogPath)
	}
	if settings.Planner.Target.Key() == settings.Planner.Source {
		return fmt.Errorf("planner target %s equals planner source", settings.Planner.Target)
	}
	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Keys returns the supported setting keys.
func (s *SettingsService) Keys() []string {
	return []string{
		KeyCatalogSource,
		KeyCatalogPath,
		KeyOutputFormat,
		KeyExplorerCategory,
		KeyExplorerProvider,
		KeyPlannerSource,
		KeyPlannerTarget,
		KeyPlannerComplexity,
	}
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getSourceKind(defaultVal domain.CatalogSourceKind) domain.CatalogSourceKind {
	kind := domain.CatalogSourceKind(s.configStore.GetString(KeyCatalogSource))
	if !kind.IsValid() {
		return defaultVal
	}
	return kind
}

func (s *SettingsService) getOutputFormat(defaultVal domain.OutputFormat) domain.OutputFormat {
	format := domain.OutputFormat(s.configStore.GetString(KeyOutputFormat))
	if !format.IsValid() {
		return defaultVal
	}
	return format
}

func (s *SettingsService) getPlannerSource(defaultVal string) string {
	val := s.configStore.GetString(KeyPlannerSource)
	if !domain.IsValidMigrationSource(val) {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getPlannerTarget(defaultVal domain.Provider) domain.Provider {
	provider := domain.ParseProvider(s.configStore.GetString(KeyPlannerTarget))
	if !provider.IsValid() {
		return defaultVal
	}
	return provider
}

func (s *SettingsService) getComplexity(defaultVal domain.Complexity) domain.Complexity {
	complexity := domain.Complexity(s.configStore.GetString(KeyPlannerComplexity))
	if !complexity.IsValid() {
		return defaultVal
	}
	return complexity
}
