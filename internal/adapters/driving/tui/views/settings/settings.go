// Package settings provides the settings configuration view for the TUI.
package settings

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/cloudcompass/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/cloudcompass/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/cloudcompass/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/cloudcompass/internal/core/domain"
	"github.com/custodia-labs/cloudcompass/internal/core/ports/driving"
	"github.com/custodia-labs/cloudcompass/internal/core/services"
)

var errNoService = errors.New("settings service not available")

// View lists every setting with its current value. Enumerated settings are
// cycled in place; the catalog path is edited in a text input.
type View struct {
	styles          *styles.Styles
	keymap          *keymap.KeyMap
	settingsService driving.SettingsService

	settings *domain.AppSettings
	keys     []string
	err      error
	warning  error
	saved    string

	selected  int
	editing   bool
	pathInput textinput.Model

	width  int
	height int
	ready  bool
}

// NewView creates a new settings view.
func NewView(s *styles.Styles, km *keymap.KeyMap, settingsService driving.SettingsService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	pathInput := textinput.New()
	pathInput.Placeholder = "path/to/catalog.yaml"
	pathInput.CharLimit = 512
	pathInput.Width = 48

	v := &View{
		styles:          s,
		keymap:          km,
		settingsService: settingsService,
		pathInput:       pathInput,
	}
	if settingsService != nil {
		v.keys = settingsService.Keys()
	}
	return v
}

// Init initialises the view and loads settings.
func (v *View) Init() tea.Cmd {
	return Load(v.settingsService)
}

// Load returns a command that reads the current settings.
func Load(settingsService driving.SettingsService) tea.Cmd {
	return func() tea.Msg {
		if settingsService == nil {
			return messages.SettingsLoaded{Err: errNoService}
		}
		settings, err := settingsService.Get()
		return messages.SettingsLoaded{Settings: settings, Err: err}
	}
}

// Update handles messages for the settings view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.SettingsLoaded:
		v.err = msg.Err
		if msg.Err == nil {
			v.settings = msg.Settings
			if v.settingsService != nil {
				v.warning = v.settingsService.Validate()
			}
		}
		return v, nil

	case messages.SettingsSaved:
		if msg.Err != nil {
			v.err = msg.Err
			v.saved = ""
			return v, nil
		}
		v.err = nil
		v.saved = msg.Key
		return v, Load(v.settingsService)

	case tea.KeyMsg:
		if v.editing {
			return v.handleEditKeys(msg)
		}
		return v.handleListKeys(msg)
	}

	return v, nil
}

func (v *View) handleListKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()
	switch {
	case keymap.Matches(keyStr, v.keymap.Back):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	case keymap.Matches(keyStr, v.keymap.Up):
		if v.selected > 0 {
			v.selected--
		}
	case keymap.Matches(keyStr, v.keymap.Down):
		if v.selected < len(v.keys)-1 {
			v.selected++
		}
	case keymap.Matches(keyStr, v.keymap.Left):
		return v, v.cycle(-1)
	case keymap.Matches(keyStr, v.keymap.Right), keymap.Matches(keyStr, v.keymap.Toggle):
		return v, v.cycle(1)
	case keymap.Matches(keyStr, v.keymap.Select):
		if v.SelectedKey() == services.KeyCatalogPath && v.settings != nil {
			v.editing = true
			v.pathInput.SetValue(v.settings.Catalog.Path)
			v.pathInput.CursorEnd()
			return v, v.pathInput.Focus()
		}
		return v, v.cycle(1)
	case keymap.Matches(keyStr, v.keymap.Clear):
		return v, v.restoreDefaults()
	}
	return v, nil
}

func (v *View) handleEditKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		v.stopEditing()
		return v, nil
	case tea.KeyEnter:
		value := v.pathInput.Value()
		v.stopEditing()
		return v, v.set(services.KeyCatalogPath, value)
	default:
		var cmd tea.Cmd
		v.pathInput, cmd = v.pathInput.Update(msg)
		return v, cmd
	}
}

func (v *View) stopEditing() {
	v.editing = false
	v.pathInput.Blur()
}

// cycle saves the next or previous option of the selected setting.
func (v *View) cycle(delta int) tea.Cmd {
	if v.settings == nil || len(v.keys) == 0 {
		return nil
	}
	key := v.SelectedKey()
	opts := options(key)
	if len(opts) == 0 {
		return nil
	}

	current := 0
	value := valueOf(v.settings, key)
	for i, o := range opts {
		if strings.EqualFold(o, value) {
			current = i
		}
	}
	next := (current + delta + len(opts)) % len(opts)
	return v.set(key, opts[next])
}

func (v *View) set(key, value string) tea.Cmd {
	settingsService := v.settingsService
	return func() tea.Msg {
		if settingsService == nil {
			return messages.SettingsSaved{Key: key, Err: errNoService}
		}
		return messages.SettingsSaved{Key: key, Err: settingsService.Set(key, value)}
	}
}

func (v *View) restoreDefaults() tea.Cmd {
	settingsService := v.settingsService
	return func() tea.Msg {
		if settingsService == nil {
			return messages.SettingsSaved{Err: errNoService}
		}
		defaults := settingsService.GetDefaults()
		return messages.SettingsSaved{Key: "defaults", Err: settingsService.Save(&defaults)}
	}
}

// options returns the allowed values of an enumerated setting, nil for free text.
func options(key string) []string {
	switch key {
	case services.KeyCatalogSource:
		return []string{
			domain.CatalogSourceBuiltin.String(),
			domain.CatalogSourceFile.String(),
			domain.CatalogSourceSQLite.String(),
		}
	case services.KeyOutputFormat:
		return []string{domain.OutputTable.String(), domain.OutputJSON.String()}
	case services.KeyExplorerCategory:
		opts := []string{domain.Wildcard}
		for _, c := range domain.AllCategories() {
			opts = append(opts, c.String())
		}
		return opts
	case services.KeyExplorerProvider:
		opts := []string{domain.Wildcard}
		for _, p := range domain.AllProviders() {
			opts = append(opts, p.String())
		}
		return opts
	case services.KeyPlannerSource:
		var opts []string
		for _, p := range domain.AllProviders() {
			opts = append(opts, p.Key())
		}
		return append(opts, domain.OnPremise)
	case services.KeyPlannerTarget:
		var opts []string
		for _, p := range domain.AllProviders() {
			opts = append(opts, p.Key())
		}
		return opts
	case services.KeyPlannerComplexity:
		var opts []string
		for _, c := range domain.AllComplexities() {
			opts = append(opts, c.String())
		}
		return opts
	default:
		return nil
	}
}

// valueOf returns the stored form of a setting.
func valueOf(settings *domain.AppSettings, key string) string {
	switch key {
	case services.KeyCatalogSource:
		return settings.Catalog.Source.String()
	case services.KeyCatalogPath:
		return settings.Catalog.Path
	case services.KeyOutputFormat:
		return settings.Output.Format.String()
	case services.KeyExplorerCategory:
		return settings.Explorer.Category
	case services.KeyExplorerProvider:
		return settings.Explorer.Provider
	case services.KeyPlannerSource:
		return settings.Planner.Source
	case services.KeyPlannerTarget:
		return settings.Planner.Target.Key()
	case services.KeyPlannerComplexity:
		return settings.Planner.Complexity.String()
	default:
		return ""
	}
}

// View renders the settings view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Settings"))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
	}

	if v.settings == nil {
		b.WriteString(v.styles.Muted.Render("Loading settings..."))
		return b.String()
	}

	width := 0
	for _, key := range v.keys {
		width = max(width, len(key))
	}

	for i, key := range v.keys {
		indicator := "  "
		if i == v.selected {
			indicator = "> "
		}

		value := valueOf(v.settings, key)
		if value == "" {
			value = "(not set)"
		}
		if options(key) != nil {
			value = "‹ " + value + " ›"
		}

		line := fmt.Sprintf("%s%-*s  %s", indicator, width, key, value)
		if i == v.selected {
			b.WriteString(v.styles.Selected.Render(line))
		} else {
			b.WriteString(v.styles.Normal.Render(line))
		}
		b.WriteString("\n")

		if key == services.KeyCatalogSource {
			b.WriteString(v.styles.Muted.Render("    " + v.settings.Catalog.Source.Description()))
			b.WriteString("\n")
		}
	}

	if v.editing {
		b.WriteString("\n")
		b.WriteString(v.styles.Normal.Render("Catalog path:"))
		b.WriteString("\n")
		b.WriteString(v.pathInput.View())
		b.WriteString("\n")
	}

	if v.warning != nil {
		b.WriteString("\n")
		b.WriteString(v.styles.Warning.Render("Warning: " + v.warning.Error()))
		b.WriteString("\n")
	}
	if v.saved != "" {
		b.WriteString("\n")
		b.WriteString(v.styles.Success.Render("Saved " + v.saved))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.renderHelp())
	return b.String()
}

func (v *View) renderHelp() string {
	if v.editing {
		return v.styles.Help.Render("[enter] save  [esc] cancel")
	}
	return v.styles.Help.Render("[j/k] navigate  [←/→] change  [enter] edit  [ctrl+r] defaults  [esc] back")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// SelectedKey returns the config key under the cursor.
func (v *View) SelectedKey() string {
	if v.selected < 0 || v.selected >= len(v.keys) {
		return ""
	}
	return v.keys[v.selected]
}

// Settings returns the last loaded settings.
func (v *View) Settings() *domain.AppSettings {
	return v.settings
}

// Editing reports whether the catalog path input is active.
func (v *View) Editing() bool {
	return v.editing
}

// Err returns the last load or save error.
func (v *View) Err() error {
	return v.err
}

// Reset resets the view to initial state.
func (v *View) Reset() {
	v.selected = 0
	v.err = nil
	v.saved = ""
	v.stopEditing()
	v.pathInput.SetValue("")
}
