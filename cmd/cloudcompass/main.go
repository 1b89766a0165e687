// Command cloudcompass browses and compares cloud provider services.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/custodia-labs/cloudcompass/internal/adapters/driven/catalog/builtin"
	"github.com/custodia-labs/cloudcompass/internal/adapters/driven/catalog/file"
	configfile "github.com/custodia-labs/cloudcompass/internal/adapters/driven/config/file"
	"github.com/custodia-labs/cloudcompass/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/cloudcompass/internal/adapters/driving/cli"
	"github.com/custodia-labs/cloudcompass/internal/core/domain"
	"github.com/custodia-labs/cloudcompass/internal/core/ports/driven"
	"github.com/custodia-labs/cloudcompass/internal/core/services"
	"github.com/custodia-labs/cloudcompass/internal/logger"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetBootstrap(bootstrap)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// bootstrap builds every service from the config directory, the selected
// catalog source and the local catalog database.
func bootstrap(ctx context.Context, opts cli.Options) (*cli.Services, func() error, error) {
	configDir := opts.ConfigDir
	if configDir == "" {
		dir, err := configfile.DefaultDir()
		if err != nil {
			return nil, nil, fmt.Errorf("resolving config directory: %w", err)
		}
		configDir = dir
	}

	configStore, err := configfile.NewConfigStore(configDir)
	if err != nil {
		return nil, nil, fmt.Errorf("opening config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)

	store, err := sqlite.NewStore(filepath.Join(configDir, "data"))
	if err != nil {
		return nil, nil, fmt.Errorf("opening catalog database: %w", err)
	}

	logger.Debug("Config: %s", configStore.Path())
	logger.Debug("Catalog database: %s", store.Path())

	watch := func(ctx context.Context) (<-chan struct{}, error) {
		return configStore.Watch(ctx)
	}

	if opts.SkipCatalog {
		return &cli.Services{
			Settings:      settingsService,
			Admin:         services.NewCatalogImporter(nil, store, file.Files{}),
			WatchSettings: watch,
		}, store.Close, nil
	}

	source, err := catalogSource(opts.CatalogPath, settingsService, store)
	if err != nil {
		_ = store.Close()
		return nil, nil, withRecoveryHint(err)
	}

	catalog, err := services.LoadCatalog(ctx, source)
	if err != nil {
		_ = store.Close()
		return nil, nil, withRecoveryHint(err)
	}

	guidance, err := builtin.NewGuidanceSource()
	if err != nil {
		_ = store.Close()
		return nil, nil, fmt.Errorf("loading migration guidance: %w", err)
	}

	return &cli.Services{
		Catalog:       catalog,
		Comparison:    services.NewComparisonService(catalog),
		Regions:       services.NewRegionService(builtin.NewRegionSource()),
		Planner:       services.NewMigrationPlanner(catalog, guidance),
		Settings:      settingsService,
		Admin:         services.NewCatalogImporter(catalog, store, file.Files{}),
		WatchSettings: watch,
	}, store.Close, nil
}

// withRecoveryHint tells the user how to get past a catalog that cannot load.
func withRecoveryHint(err error) error {
	return fmt.Errorf("%w\nPass --catalog <file>, run 'cloudcompass catalog import <file>', "+
		"or run 'cloudcompass settings set catalog.source builtin'", err)
}

// catalogSource picks the --catalog file when given, otherwise the source
// named by the catalog.source setting.
func catalogSource(path string, settingsService *services.SettingsService, store *sqlite.Store) (driven.CatalogSource, error) {
	if path != "" {
		return file.NewSource(path), nil
	}

	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("reading settings: %w", err)
	}

	switch settings.Catalog.Source {
	case domain.CatalogSourceFile:
		if settings.Catalog.Path == "" {
			return nil, fmt.Errorf("%w: catalog.source is file but catalog.path is not set", domain.ErrInvalidInput)
		}
		return file.NewSource(settings.Catalog.Path), nil
	case domain.CatalogSourceSQLite:
		return store, nil
	default:
		return builtin.NewCatalogSource(), nil
	}
}
