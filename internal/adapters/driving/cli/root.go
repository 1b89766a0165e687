// Package cli implements the cloudcompass command line on cobra.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/cloudcompass/internal/core/ports/driving"
	"github.com/custodia-labs/cloudcompass/internal/logger"
)

// version is set at build time via SetVersion.
var version = "dev"

// Command annotations read by setup.
const (
	// skipServices marks commands that run without any service.
	skipServices = "cloudcompass/skip-services"
	// skipCatalog marks commands that only need settings and the catalog
	// database, so they keep working when the configured catalog cannot load.
	skipCatalog = "cloudcompass/skip-catalog"
)

// withoutCatalog is the annotation set of skipCatalog commands.
var withoutCatalog = map[string]string{skipCatalog: "true"}

// Global flags.
var (
	verbose     bool
	configDir   string
	catalogPath string
)

// Services injected by main through the bootstrap hook or by tests.
var (
	catalogService    driving.CatalogService
	comparisonService driving.ComparisonService
	regionService     driving.RegionService
	plannerService    driving.MigrationPlanner
	settingsService   driving.SettingsService
	catalogAdmin      driving.CatalogAdmin
	watchSettings     func(ctx context.Context) (<-chan struct{}, error)
)

// Services groups the driving ports the commands use.
type Services struct {
	Catalog    driving.CatalogService
	Comparison driving.ComparisonService
	Regions    driving.RegionService
	Planner    driving.MigrationPlanner
	Settings   driving.SettingsService
	Admin      driving.CatalogAdmin

	// WatchSettings, when set, reports edits to the config file made by
	// other processes. The TUI uses it to refresh its defaults.
	WatchSettings func(ctx context.Context) (<-chan struct{}, error)
}

// Options carries the global flag values to the bootstrap function.
type Options struct {
	Verbose     bool
	ConfigDir   string
	CatalogPath string

	// SkipCatalog asks for settings and the catalog database only.
	SkipCatalog bool
}

// Bootstrap builds the services once flags are parsed. The returned
// function releases resources after the command finishes.
type Bootstrap func(ctx context.Context, opts Options) (*Services, func() error, error)

var (
	bootstrap Bootstrap
	closer    func() error
)

var rootCmd = &cobra.Command{
	Use:   "cloudcompass",
	Short: "Browse and compare cloud provider services",
	Long: `cloudcompass is a catalog of AWS, Azure and GCP services.

Search and filter services, line providers up side by side, look up region
latency and draft migration plans from the command line, the terminal UI,
an MCP server or a JSON HTTP API.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "config directory (default ~/.cloudcompass)")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "load the catalog from a TOML, YAML or JSON file")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetBootstrap registers the function that builds the services.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// SetServices injects ready-made services.
func SetServices(s *Services) {
	if s == nil {
		s = &Services{}
	}
	catalogService = s.Catalog
	comparisonService = s.Comparison
	regionService = s.Regions
	plannerService = s.Planner
	settingsService = s.Settings
	catalogAdmin = s.Admin
	watchSettings = s.WatchSettings
}

// Execute runs the root command.
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext runs the root command with ctx and releases the
// bootstrapped services afterwards.
func ExecuteContext(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if closeErr := shutdown(); err == nil {
		err = closeErr
	}
	return err
}

func setup(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if bootstrap == nil || catalogService != nil || cmd.Annotations[skipServices] == "true" {
		return nil
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	services, closeFn, err := bootstrap(ctx, Options{
		Verbose:     verbose,
		ConfigDir:   configDir,
		CatalogPath: catalogPath,
		SkipCatalog: cmd.Annotations[skipCatalog] == "true",
	})
	if err != nil {
		return fmt.Errorf("failed to start: %w", err)
	}
	SetServices(services)
	closer = closeFn
	return nil
}

func shutdown() error {
	if closer == nil {
		return nil
	}
	err := closer()
	closer = nil
	return err
}

// requireCatalog returns an error when no catalog is configured.
func requireCatalog() error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}
	return nil
}
