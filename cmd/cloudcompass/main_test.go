package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/cloudcompass/internal/adapters/driven/catalog/builtin"
	"github.com/custodia-labs/cloudcompass/internal/adapters/driven/catalog/file"
	configfile "github.com/custodia-labs/cloudcompass/internal/adapters/driven/config/file"
	"github.com/custodia-labs/cloudcompass/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/cloudcompass/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/cloudcompass/internal/adapters/driving/cli"
	"github.com/custodia-labs/cloudcompass/internal/core/domain"
	"github.com/custodia-labs/cloudcompass/internal/core/services"
)

func TestBootstrap_Builtin(t *testing.T) {
	dir := t.TempDir()

	svc, closeFn, err := bootstrap(context.Background(), cli.Options{ConfigDir: dir})
	require.NoError(t, err)
	t.Cleanup(func() { _ = closeFn() })

	assert.Len(t, svc.Catalog.All(), 33)
	assert.FileExists(t, filepath.Join(dir, "data", "catalog.db"))

	settings, err := svc.Settings.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.CatalogSourceBuiltin, settings.Catalog.Source)
}

func TestBootstrap_CatalogFlag(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")
	require.NoError(t, file.Write(path, builtin.Records()[:3]))

	svc, closeFn, err := bootstrap(context.Background(), cli.Options{ConfigDir: dir, CatalogPath: path})
	require.NoError(t, err)
	t.Cleanup(func() { _ = closeFn() })

	assert.Len(t, svc.Catalog.All(), 3)
}

func TestBootstrap_MissingCatalogFile(t *testing.T) {
	dir := t.TempDir()

	_, _, err := bootstrap(context.Background(), cli.Options{
		ConfigDir:   dir,
		CatalogPath: filepath.Join(dir, "missing.yaml"),
	})

	assert.Error(t, err)
}

func TestBootstrap_EmptySQLiteCatalog(t *testing.T) {
	dir := t.TempDir()
	configStore, err := configfile.NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, configStore.Set(services.KeyCatalogSource, "sqlite"))

	_, _, err = bootstrap(context.Background(), cli.Options{ConfigDir: dir})
	require.ErrorIs(t, err, domain.ErrCatalogEmpty)
	assert.Contains(t, err.Error(), "--catalog")
	assert.Contains(t, err.Error(), "settings set catalog.source builtin")

	svc, closeFn, err := bootstrap(context.Background(), cli.Options{ConfigDir: dir, SkipCatalog: true})
	require.NoError(t, err)
	assert.Nil(t, svc.Catalog)
	require.NoError(t, svc.Settings.Set(services.KeyCatalogSource, "builtin"))
	require.NoError(t, closeFn())

	svc, closeFn, err = bootstrap(context.Background(), cli.Options{ConfigDir: dir})
	require.NoError(t, err)
	t.Cleanup(func() { _ = closeFn() })
	assert.Len(t, svc.Catalog.All(), 33)
}

func TestBootstrap_SkipCatalogImports(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.toml")
	require.NoError(t, file.Write(path, builtin.Records()[:4]))

	svc, closeFn, err := bootstrap(context.Background(), cli.Options{ConfigDir: dir, SkipCatalog: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = closeFn() })

	imp, err := svc.Admin.Import(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 4, imp.Count)

	_, err = svc.Admin.Export(context.Background(), filepath.Join(dir, "out.toml"))
	assert.ErrorIs(t, err, domain.ErrNotImplemented)
}

func TestCatalogSource(t *testing.T) {
	store, err := sqlite.NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	t.Run("builtin by default", func(t *testing.T) {
		settingsService := services.NewSettingsService(memory.NewConfigStore())

		source, err := catalogSource("", settingsService, store)

		require.NoError(t, err)
		assert.IsType(t, &builtin.CatalogSource{}, source)
	})

	t.Run("file from settings", func(t *testing.T) {
		settingsService := services.NewSettingsService(memory.NewConfigStore())
		require.NoError(t, settingsService.SetCatalogSource(domain.CatalogSourceFile, "/tmp/catalog.toml"))

		source, err := catalogSource("", settingsService, store)

		require.NoError(t, err)
		assert.IsType(t, &file.Source{}, source)
	})

	t.Run("file without path", func(t *testing.T) {
		settingsService := services.NewSettingsService(memory.NewConfigStore())
		require.NoError(t, settingsService.Set(services.KeyCatalogSource, "file"))

		_, err := catalogSource("", settingsService, store)

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("sqlite", func(t *testing.T) {
		settingsService := services.NewSettingsService(memory.NewConfigStore())
		require.NoError(t, settingsService.Set(services.KeyCatalogSource, "sqlite"))

		source, err := catalogSource("", settingsService, store)

		require.NoError(t, err)
		assert.Same(t, store, source)
	})

	t.Run("flag wins over settings", func(t *testing.T) {
		settingsService := services.NewSettingsService(memory.NewConfigStore())
		require.NoError(t, settingsService.Set(services.KeyCatalogSource, "sqlite"))

		source, err := catalogSource("/tmp/catalog.yaml", settingsService, store)

		require.NoError(t, err)
		assert.IsType(t, &file.Source{}, source)
	})
}
