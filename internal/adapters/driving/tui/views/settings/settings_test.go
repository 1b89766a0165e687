package settings

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/cloudcompass/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/cloudcompass/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/cloudcompass/internal/core/domain"
	"github.com/custodia-labs/cloudcompass/internal/core/services"
)

// MockSettingsService is a mock implementation of driving.SettingsService.
type MockSettingsService struct {
	mock.Mock
}

func (m *MockSettingsService) Get() (*domain.AppSettings, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AppSettings), args.Error(1)
}

func (m *MockSettingsService) Save(settings *domain.AppSettings) error {
	args := m.Called(settings)
	return args.Error(0)
}

func (m *MockSettingsService) Set(key, value string) error {
	args := m.Called(key, value)
	return args.Error(0)
}

func (m *MockSettingsService) SetCatalogSource(kind domain.CatalogSourceKind, path string) error {
	args := m.Called(kind, path)
	return args.Error(0)
}

func (m *MockSettingsService) Validate() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockSettingsService) GetDefaults() domain.AppSettings {
	args := m.Called()
	return args.Get(0).(domain.AppSettings)
}

func (m *MockSettingsService) Keys() []string {
	args := m.Called()
	return args.Get(0).([]string)
}

var allKeys = []string{
	services.KeyCatalogSource,
	services.KeyCatalogPath,
	services.KeyOutputFormat,
	services.KeyExplorerCategory,
	services.KeyExplorerProvider,
	services.KeyPlannerSource,
	services.KeyPlannerTarget,
	services.KeyPlannerComplexity,
}

func newMockService() *MockSettingsService {
	m := new(MockSettingsService)
	m.On("Keys").Return(allKeys)
	return m
}

func defaultSettings() *domain.AppSettings {
	s := domain.DefaultAppSettings()
	return &s
}

// loadedView returns a view that has received the given settings.
func loadedView(m *MockSettingsService, settings *domain.AppSettings) *View {
	m.On("Validate").Return(nil).Maybe()
	view := NewView(nil, nil, m)
	view.SetDimensions(100, 40)
	view.Update(messages.SettingsLoaded{Settings: settings})
	return view
}

func press(view *View, keyType tea.KeyType) tea.Cmd {
	_, cmd := view.Update(tea.KeyMsg{Type: keyType})
	return cmd
}

func TestNewView(t *testing.T) {
	m := newMockService()

	view := NewView(nil, nil, m)

	require.NotNil(t, view)
	assert.Len(t, view.keys, 8)
	assert.Equal(t, services.KeyCatalogSource, view.SelectedKey())
	assert.Nil(t, view.Settings())
	m.AssertExpectations(t)
}

func TestNewView_NoService(t *testing.T) {
	view := NewView(nil, nil, nil)

	assert.Empty(t, view.keys)
	assert.Empty(t, view.SelectedKey())
}

func TestView_Init_LoadSettings_Success(t *testing.T) {
	m := newMockService()
	settings := defaultSettings()
	m.On("Get").Return(settings, nil)
	view := NewView(nil, nil, m)

	cmd := view.Init()
	require.NotNil(t, cmd)

	msg, ok := cmd().(messages.SettingsLoaded)
	require.True(t, ok)
	assert.NoError(t, msg.Err)
	assert.Equal(t, settings, msg.Settings)
}

func TestView_Init_LoadSettings_Error(t *testing.T) {
	m := newMockService()
	m.On("Get").Return(nil, errors.New("config unreadable"))
	view := NewView(nil, nil, m)

	msg, ok := view.Init()().(messages.SettingsLoaded)

	require.True(t, ok)
	assert.EqualError(t, msg.Err, "config unreadable")
}

func TestView_Init_NoService(t *testing.T) {
	view := NewView(nil, nil, nil)

	msg, ok := view.Init()().(messages.SettingsLoaded)

	require.True(t, ok)
	assert.ErrorIs(t, msg.Err, errNoService)
}

func TestView_Update_SettingsLoaded(t *testing.T) {
	m := newMockService()
	view := loadedView(m, defaultSettings())

	assert.NotNil(t, view.Settings())
	assert.NoError(t, view.Err())
	m.AssertCalled(t, "Validate")
}

func TestView_Update_SettingsLoaded_Error(t *testing.T) {
	view := NewView(nil, nil, newMockService())

	view.Update(messages.SettingsLoaded{Err: errors.New("boom")})

	assert.Nil(t, view.Settings())
	assert.Contains(t, view.View(), "Error: boom")
}

func TestView_Update_SettingsSaved_ReloadsSettings(t *testing.T) {
	m := newMockService()
	view := loadedView(m, defaultSettings())
	m.On("Get").Return(defaultSettings(), nil)

	_, cmd := view.Update(messages.SettingsSaved{Key: services.KeyOutputFormat})

	require.NotNil(t, cmd)
	_, ok := cmd().(messages.SettingsLoaded)
	assert.True(t, ok)
	assert.Contains(t, view.View(), "Saved output.format")
}

func TestView_Update_SettingsSaved_Error(t *testing.T) {
	m := newMockService()
	view := loadedView(m, defaultSettings())

	_, cmd := view.Update(messages.SettingsSaved{Key: services.KeyOutputFormat, Err: errors.New("read-only")})

	assert.Nil(t, cmd)
	assert.EqualError(t, view.Err(), "read-only")
}

func TestView_Escape_GoesToMenu(t *testing.T) {
	view := loadedView(newMockService(), defaultSettings())

	cmd := press(view, tea.KeyEsc)

	require.NotNil(t, cmd)
	assert.Equal(t, messages.ViewChanged{View: messages.ViewMenu}, cmd())
}

func TestView_Navigate(t *testing.T) {
	view := loadedView(newMockService(), defaultSettings())

	press(view, tea.KeyUp)
	assert.Equal(t, services.KeyCatalogSource, view.SelectedKey())

	for i := 0; i < 20; i++ {
		press(view, tea.KeyDown)
	}
	assert.Equal(t, services.KeyPlannerComplexity, view.SelectedKey())
}

func TestView_Right_CyclesEnumeratedValue(t *testing.T) {
	m := newMockService()
	view := loadedView(m, defaultSettings())
	m.On("Set", services.KeyCatalogSource, "file").Return(nil)

	cmd := press(view, tea.KeyRight)
	require.NotNil(t, cmd)

	assert.Equal(t, messages.SettingsSaved{Key: services.KeyCatalogSource}, cmd())
	m.AssertExpectations(t)
}

func TestView_Left_WrapsAround(t *testing.T) {
	m := newMockService()
	view := loadedView(m, defaultSettings())
	press(view, tea.KeyDown)
	press(view, tea.KeyDown) // output.format
	m.On("Set", services.KeyOutputFormat, "json").Return(nil)

	cmd := press(view, tea.KeyLeft)
	require.NotNil(t, cmd)
	cmd()

	m.AssertExpectations(t)
}

func TestView_Set_Error(t *testing.T) {
	m := newMockService()
	view := loadedView(m, defaultSettings())
	m.On("Set", services.KeyCatalogSource, "file").Return(domain.ErrInvalidInput)

	msg := press(view, tea.KeyRight)()
	view.Update(msg)

	assert.ErrorIs(t, view.Err(), domain.ErrInvalidInput)
}

func TestView_CatalogPath_Edit(t *testing.T) {
	m := newMockService()
	view := loadedView(m, defaultSettings())
	press(view, tea.KeyDown) // catalog.path
	m.On("Set", services.KeyCatalogPath, "/tmp/cat.yaml").Return(nil)

	press(view, tea.KeyEnter)
	require.True(t, view.Editing())
	assert.Contains(t, view.View(), "Catalog path:")

	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/tmp/cat.yaml")})
	cmd := press(view, tea.KeyEnter)

	assert.False(t, view.Editing())
	require.NotNil(t, cmd)
	assert.Equal(t, messages.SettingsSaved{Key: services.KeyCatalogPath}, cmd())
	m.AssertExpectations(t)
}

func TestView_CatalogPath_EscCancels(t *testing.T) {
	view := loadedView(newMockService(), defaultSettings())
	press(view, tea.KeyDown)
	press(view, tea.KeyEnter)
	require.True(t, view.Editing())

	cmd := press(view, tea.KeyEsc)

	assert.Nil(t, cmd, "esc cancels the edit and stays in settings")
	assert.False(t, view.Editing())
}

func TestView_CatalogPath_NotCycled(t *testing.T) {
	view := loadedView(newMockService(), defaultSettings())
	press(view, tea.KeyDown)

	assert.Nil(t, press(view, tea.KeyRight))
}

func TestView_RestoreDefaults(t *testing.T) {
	m := newMockService()
	view := loadedView(m, defaultSettings())
	m.On("GetDefaults").Return(domain.DefaultAppSettings())
	m.On("Save", mock.AnythingOfType("*domain.AppSettings")).Return(nil)

	cmd := press(view, tea.KeyCtrlR)
	require.NotNil(t, cmd)

	assert.Equal(t, messages.SettingsSaved{Key: "defaults"}, cmd())
	m.AssertExpectations(t)
}

func TestView_NoSettings_KeysDoNothing(t *testing.T) {
	view := NewView(nil, nil, newMockService())

	assert.Nil(t, press(view, tea.KeyRight))
	assert.Contains(t, view.View(), "Loading settings...")
}

func TestView_View(t *testing.T) {
	settings := defaultSettings()
	view := loadedView(newMockService(), settings)

	output := view.View()

	assert.Contains(t, output, "Settings")
	assert.Contains(t, output, "catalog.source")
	assert.Contains(t, output, "‹ builtin ›")
	assert.Contains(t, output, "Built-in catalog")
	assert.Contains(t, output, "(not set)")
	assert.Contains(t, output, "‹ gcp ›")
	assert.Contains(t, output, "‹ medium ›")
}

func TestView_View_ValidationWarning(t *testing.T) {
	m := newMockService()
	m.On("Validate").Return(errors.New("catalog source requires catalog.path"))
	view := loadedView(m, defaultSettings())

	assert.Contains(t, view.View(), "Warning: catalog source requires catalog.path")
}

func TestView_WithSettingsService(t *testing.T) {
	svc := services.NewSettingsService(memory.NewConfigStore())
	view := NewView(nil, nil, svc)
	view.SetDimensions(100, 40)

	view.Update(view.Init()())
	require.NotNil(t, view.Settings())

	// output.format: table -> json
	press(view, tea.KeyDown)
	press(view, tea.KeyDown)
	_, cmd := view.Update(press(view, tea.KeyRight)())
	require.NotNil(t, cmd)
	view.Update(cmd())

	assert.Equal(t, domain.OutputJSON, view.Settings().Output.Format)
	got, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.OutputJSON, got.Output.Format)
}

func TestView_Reset(t *testing.T) {
	view := loadedView(newMockService(), defaultSettings())
	press(view, tea.KeyDown)
	press(view, tea.KeyEnter)

	view.Reset()

	assert.False(t, view.Editing())
	assert.Equal(t, services.KeyCatalogSource, view.SelectedKey())
	assert.NoError(t, view.Err())
}

func TestOptions(t *testing.T) {
	assert.Equal(t, []string{"aws", "azure", "gcp", domain.OnPremise}, options(services.KeyPlannerSource))
	assert.Len(t, options(services.KeyExplorerCategory), len(domain.AllCategories())+1)
	assert.Nil(t, options(services.KeyCatalogPath))
	assert.Nil(t, options("unknown"))
}
