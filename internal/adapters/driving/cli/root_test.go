package cli

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/cloudcompass/internal/adapters/driven/catalog/builtin"
	"github.com/custodia-labs/cloudcompass/internal/adapters/driven/catalog/file"
	"github.com/custodia-labs/cloudcompass/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/cloudcompass/internal/core/domain"
	"github.com/custodia-labs/cloudcompass/internal/core/ports/driving"
	"github.com/custodia-labs/cloudcompass/internal/core/services"
)

func TestRootCmd_Subcommands(t *testing.T) {
	want := []string{"services", "service", "compare", "regions", "plan", "stats",
		"catalog", "settings", "tui", "mcp", "api", "version"}

	for _, name := range want {
		cmd, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}
}

func TestRootCmd_GlobalFlags(t *testing.T) {
	for _, name := range []string{"verbose", "config-dir", "catalog"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), name)
	}
}

func TestSetServices_Nil(t *testing.T) {
	setupTestServices(t)

	SetServices(nil)

	assert.Nil(t, catalogService)
	assert.Nil(t, settingsService)
	assert.Nil(t, catalogAdmin)
	assert.Nil(t, watchSettings)
}

func TestExecuteContext_Bootstrap(t *testing.T) {
	SetServices(nil)
	t.Cleanup(func() {
		SetBootstrap(nil)
		SetServices(nil)
	})

	var (
		got    Options
		closed bool
	)
	SetBootstrap(func(_ context.Context, opts Options) (*Services, func() error, error) {
		got = opts
		s := setupTestServices(t)
		return s, func() error {
			closed = true
			return nil
		}, nil
	})

	resetFlags(rootCmd)
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"stats", "--config-dir", "/tmp/cc", "-v"})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		resetFlags(rootCmd)
	})

	err := ExecuteContext(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "/tmp/cc", got.ConfigDir)
	assert.True(t, got.Verbose)
	assert.True(t, closed, "closer runs after the command")
	assert.Nil(t, closer)
	assert.Contains(t, buf.String(), "33")
}

func TestExecuteContext_BootstrapError(t *testing.T) {
	SetServices(nil)
	t.Cleanup(func() { SetBootstrap(nil) })
	SetBootstrap(func(context.Context, Options) (*Services, func() error, error) {
		return nil, nil, errors.New("no catalog")
	})

	_, err := execute(t, "stats")

	assert.EqualError(t, err, "failed to start: no catalog")
}

func TestExecuteContext_VersionSkipsBootstrap(t *testing.T) {
	SetServices(nil)
	t.Cleanup(func() { SetBootstrap(nil) })
	called := false
	SetBootstrap(func(context.Context, Options) (*Services, func() error, error) {
		called = true
		return &Services{}, nil, nil
	})

	_, err := execute(t, "version")

	require.NoError(t, err)
	assert.False(t, called)
}

// brokenCatalogBootstrap fails like a configured catalog that cannot load,
// unless the command asked to skip the catalog.
func brokenCatalogBootstrap(t *testing.T, settings driving.SettingsService) {
	t.Helper()

	SetServices(nil)
	t.Cleanup(func() {
		SetBootstrap(nil)
		SetServices(nil)
	})
	SetBootstrap(func(_ context.Context, opts Options) (*Services, func() error, error) {
		if !opts.SkipCatalog {
			return nil, nil, domain.ErrCatalogEmpty
		}
		return &Services{
			Settings: settings,
			Admin:    services.NewCatalogImporter(nil, memory.NewCatalogStore(), file.Files{}),
		}, nil, nil
	})
}

func TestExecute_BrokenCatalog_SettingsStillWork(t *testing.T) {
	settings := services.NewSettingsService(memory.NewConfigStore())
	require.NoError(t, settings.Set(services.KeyCatalogSource, "sqlite"))
	brokenCatalogBootstrap(t, settings)

	_, err := execute(t, "stats")
	require.ErrorIs(t, err, domain.ErrCatalogEmpty)

	output, err := execute(t, "settings", "set", "catalog.source", "builtin")
	require.NoError(t, err)
	assert.Contains(t, output, "catalog.source set to builtin")

	got, err := settings.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.CatalogSourceBuiltin, got.Catalog.Source)

	output, err = execute(t, "settings", "show")
	require.NoError(t, err)
	assert.Contains(t, output, "Current Settings")
}

func TestExecute_BrokenCatalog_ImportStillWorks(t *testing.T) {
	brokenCatalogBootstrap(t, services.NewSettingsService(memory.NewConfigStore()))
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, file.Write(path, builtin.Records()))

	output, err := execute(t, "catalog", "import", path)
	require.NoError(t, err)
	assert.Contains(t, output, "Imported 33 services")

	output, err = execute(t, "catalog", "history")
	require.NoError(t, err)
	assert.Contains(t, output, "33")
}

func TestSkipCatalogAnnotations(t *testing.T) {
	for _, path := range [][]string{
		{"settings"},
		{"settings", "show"},
		{"settings", "set"},
		{"settings", "keys"},
		{"settings", "wizard"},
		{"catalog", "import"},
		{"catalog", "history"},
	} {
		cmd, _, err := rootCmd.Find(path)
		require.NoError(t, err)
		assert.Equal(t, "true", cmd.Annotations[skipCatalog], cmd.CommandPath())
	}

	for _, path := range [][]string{{"stats"}, {"catalog", "export"}, {"tui"}} {
		cmd, _, err := rootCmd.Find(path)
		require.NoError(t, err)
		assert.Empty(t, cmd.Annotations[skipCatalog], cmd.CommandPath())
	}
}
