// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/cloudcompass/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewExplorer is the service search and filter view.
	ViewExplorer
	// ViewCompare aligns a category by provider.
	ViewCompare
	// ViewRegions shows the region latency table.
	ViewRegions
	// ViewPlanner is the migration planner.
	ViewPlanner
	// ViewDashboard shows catalog statistics.
	ViewDashboard
	// ViewSettings is the settings configuration view.
	ViewSettings
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewExplorer:
		return "explorer"
	case ViewCompare:
		return "compare"
	case ViewRegions:
		return "regions"
	case ViewPlanner:
		return "planner"
	case ViewDashboard:
		return "dashboard"
	case ViewSettings:
		return "settings"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

// FiltersChanged replaces the explorer filters, typically with the saved defaults.
// With KeepTerm the search text being typed survives the change.
type FiltersChanged struct {
	Filters  domain.ExplorerFilters
	KeepTerm bool
}

// PlanCompleted carries a generated migration plan back to the model.
type PlanCompleted struct {
	Plan *domain.MigrationPlan
	Err  error
}

// SettingsLoaded carries the application settings.
type SettingsLoaded struct {
	Settings *domain.AppSettings
	Err      error
}

// SettingsSaved signals settings were saved.
type SettingsSaved struct {
	Key string
	Err error
}

// SettingsChanged signals the config file was edited outside the TUI.
type SettingsChanged struct{}
