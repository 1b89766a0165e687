package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/cloudcompass/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/cloudcompass/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/cloudcompass/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/cloudcompass/internal/adapters/driving/tui/views/compare"
	"github.com/custodia-labs/cloudcompass/internal/adapters/driving/tui/views/dashboard"
	"github.com/custodia-labs/cloudcompass/internal/adapters/driving/tui/views/explorer"
	"github.com/custodia-labs/cloudcompass/internal/adapters/driving/tui/views/menu"
	"github.com/custodia-labs/cloudcompass/internal/adapters/driving/tui/views/planner"
	"github.com/custodia-labs/cloudcompass/internal/adapters/driving/tui/views/regions"
	"github.com/custodia-labs/cloudcompass/internal/adapters/driving/tui/views/settings"
	"github.com/custodia-labs/cloudcompass/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap

	menuView      *menu.View
	explorerView  *explorer.View
	compareView   *compare.View
	regionsView   *regions.View
	plannerView   *planner.View
	dashboardView *dashboard.View
	settingsView  *settings.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:         ports,
		ctx:           context.Background(),
		styles:        s,
		keymap:        km,
		menuView:      menu.NewView(s, km),
		explorerView:  explorer.NewView(s, km, ports.Catalog),
		compareView:   compare.NewView(s, km, ports.Comparison),
		regionsView:   regions.NewView(s, km, ports.Regions),
		plannerView:   planner.NewView(s, km, ports.Planner, ports.Catalog),
		dashboardView: dashboard.NewView(s, km, ports.Catalog, ports.Regions),
		settingsView:  settings.NewView(s, km, ports.Settings),
		currentView:   messages.ViewMenu,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tea.SetWindowTitle("cloudcompass - Cloud Service Comparison"),
	}
	if a.ports.Settings != nil {
		cmds = append(cmds, settings.Load(a.ports.Settings))
	}
	if a.ports.SettingsChanges != nil {
		cmds = append(cmds, a.waitForSettingsChange())
	}
	return tea.Batch(cmds...)
}

// waitForSettingsChange blocks until the config file is reloaded.
func (a *App) waitForSettingsChange() tea.Cmd {
	changes := a.ports.SettingsChanges
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return messages.SettingsChanged{}
	}
}

// Update implements tea.Model.
// It handles messages and updates the model state.
//
//nolint:gocyclo // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.currentView == messages.ViewHelp {
			if keymap.Matches(msg.String(), a.keymap.Back) {
				a.currentView = messages.ViewMenu
			}
			return a, nil
		}
		return a, a.updateCurrent(msg)

	case messages.ViewChanged:
		a.currentView = msg.View
		switch msg.View {
		case messages.ViewExplorer:
			a.explorerView.Reset()
			return a, a.explorerView.Init()
		case messages.ViewCompare:
			a.compareView.Reset()
		case messages.ViewRegions:
			a.regionsView.Reset()
		case messages.ViewPlanner:
			a.plannerView.Reset()
		case messages.ViewDashboard:
			a.dashboardView.Refresh()
		case messages.ViewSettings:
			a.settingsView.Reset()
			return a, a.settingsView.Init()
		case messages.ViewMenu, messages.ViewHelp:
		}
		return a, nil

	case messages.SettingsLoaded:
		if msg.Err == nil && msg.Settings != nil {
			a.applySettings(msg.Settings)
		} else if msg.Err != nil {
			a.err = msg.Err
		}
		if a.currentView == messages.ViewSettings {
			a.settingsView, cmd = a.settingsView.Update(msg)
		}
		return a, cmd

	case messages.SettingsChanged:
		if a.ports.Settings == nil {
			return a, a.waitForSettingsChange()
		}
		return a, tea.Batch(settings.Load(a.ports.Settings), a.waitForSettingsChange())

	case messages.SettingsSaved:
		if a.currentView == messages.ViewSettings {
			a.settingsView, cmd = a.settingsView.Update(msg)
			return a, cmd
		}
		return a, nil

	case messages.PlanCompleted:
		a.err = msg.Err
		a.plannerView, cmd = a.plannerView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		if a.currentView == messages.ViewExplorer {
			a.explorerView, cmd = a.explorerView.Update(msg)
		}
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	return a, a.updateCurrent(msg)
}

// updateCurrent forwards msg to the active view.
func (a *App) updateCurrent(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewExplorer:
		a.explorerView, cmd = a.explorerView.Update(msg)
	case messages.ViewCompare:
		a.compareView, cmd = a.compareView.Update(msg)
	case messages.ViewRegions:
		a.regionsView, cmd = a.regionsView.Update(msg)
	case messages.ViewPlanner:
		a.plannerView, cmd = a.plannerView.Update(msg)
	case messages.ViewDashboard:
		a.dashboardView, cmd = a.dashboardView.Update(msg)
	case messages.ViewSettings:
		a.settingsView, cmd = a.settingsView.Update(msg)
	case messages.ViewHelp:
	}
	return cmd
}

// applySettings pushes saved defaults into the explorer and planner.
func (a *App) applySettings(s *domain.AppSettings) {
	a.explorerView, _ = a.explorerView.Update(messages.FiltersChanged{
		Filters: domain.ExplorerFilters{
			Category: s.Explorer.Category,
			Provider: s.Explorer.Provider,
		},
		KeepTerm: true,
	})
	a.plannerView.SetDefaults(s.Planner)
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewMenu:
		return a.menuView.View()
	case messages.ViewExplorer:
		return a.explorerView.View()
	case messages.ViewCompare:
		return a.compareView.View()
	case messages.ViewRegions:
		return a.regionsView.View()
	case messages.ViewPlanner:
		return a.plannerView.View()
	case messages.ViewDashboard:
		return a.dashboardView.View()
	case messages.ViewSettings:
		return a.settingsView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.menuView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Navigation:
  esc         Back to Menu
  ctrl+c      Quit

Menu:
  j/k, ↑/↓    Navigate options
  enter       Select option
  q           Quit

Explorer:
  (type)      Filter by name or description
  tab         Next category
  shift+tab   Next provider
  ctrl+r      Restore default filters
  enter       Show service details

Compare:
  tab         Next category
  ←/→, ↑/↓    Move between services
  space       Add or remove from the comparison (max 3)

Regions:
  ←/→         Switch provider

Planner:
  ↑/↓         Choose field
  ←/→         Change value
  space       Toggle service area
  enter       Generate plan

Settings:
  ←/→         Change value
  enter       Edit catalog path
  ctrl+r      Restore defaults

[esc] back to menu`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions on the app and every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
	a.explorerView.SetDimensions(width, height)
	a.compareView.SetDimensions(width, height)
	a.regionsView.SetDimensions(width, height)
	a.plannerView.SetDimensions(width, height)
	a.dashboardView.SetDimensions(width, height)
	a.settingsView.SetDimensions(width, height)
}
