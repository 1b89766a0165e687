package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/cloudcompass/internal/adapters/driven/catalog/builtin"
	"github.com/custodia-labs/cloudcompass/internal/adapters/driven/catalog/file"
	"github.com/custodia-labs/cloudcompass/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/cloudcompass/internal/core/services"
)

// setupTestServices injects the real services over the builtin catalog,
// an in-memory config store and an in-memory catalog store.
func setupTestServices(t *testing.T) *Services {
	t.Helper()

	catalog, err := services.NewCatalog(builtin.Records())
	require.NoError(t, err)

	s := &Services{
		Catalog:    catalog,
		Comparison: services.NewComparisonService(catalog),
		Regions:    services.NewRegionService(builtin.NewRegionSource()),
		Planner:    services.NewMigrationPlanner(catalog, builtin.MustGuidanceSource()),
		Settings:   services.NewSettingsService(memory.NewConfigStore()),
		Admin:      services.NewCatalogImporter(catalog, memory.NewCatalogStore(), file.Files{}),
	}
	SetServices(s)
	t.Cleanup(func() { SetServices(nil) })
	return s
}

// execute runs the root command with args and returns everything it printed.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	resetFlags(rootCmd)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

// resetFlags restores every flag of cmd and its subcommands to its default,
// since cobra keeps flag values between executions.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}
