// Package explorer provides the service explorer view for the TUI.
package explorer

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/cloudcompass/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/cloudcompass/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/cloudcompass/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/cloudcompass/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/cloudcompass/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/cloudcompass/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/cloudcompass/internal/core/domain"
	"github.com/custodia-labs/cloudcompass/internal/core/ports/driving"
)

// View is the explorer: a live search term, category and provider
// filters, and the matching services grouped by category.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.FilterInput
	list      *list.ServiceList
	statusbar *status.Bar

	catalog    driving.CatalogService
	filters    domain.ExplorerFilters
	defaults   domain.ExplorerFilters
	projection domain.ExplorerProjection

	width      int
	height     int
	ready      bool
	focusInput bool // true = typing the term, false = navigating results
	detail     *domain.ServiceRecord
}

// NewView creates a new explorer view over the catalog.
func NewView(s *styles.Styles, km *keymap.KeyMap, catalog driving.CatalogService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	v := &View{
		styles:     s,
		keymap:     km,
		input:      input.NewFilterInput(s),
		list:       list.NewServiceList(s),
		statusbar:  status.NewBar(s, km),
		catalog:    catalog,
		filters:    domain.DefaultExplorerFilters(),
		defaults:   domain.DefaultExplorerFilters(),
		width:      80,
		height:     24,
		focusInput: true,
	}
	v.statusbar.SetHints(km.ExplorerHelp())
	v.refresh()
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the explorer view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.FiltersChanged:
		v.defaults = msg.Filters
		filters := msg.Filters
		if msg.KeepTerm {
			filters.Term = v.filters.Term
		}
		v.applyFilters(filters)
		return v, nil

	case messages.ErrorOccurred:
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.detail != nil {
		if msg.Type == tea.KeyEsc || msg.Type == tea.KeyEnter {
			v.detail = nil
		}
		return v, nil
	}

	keyStr := msg.String()
	switch {
	case msg.Type == tea.KeyEsc:
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	case keymap.Matches(keyStr, v.keymap.NextCategory):
		v.filters.Category = nextCategory(v.filters.Category)
		v.refresh()
		return v, nil
	case keymap.Matches(keyStr, v.keymap.NextProvider):
		v.filters.Provider = nextProvider(v.filters.Provider)
		v.refresh()
		return v, nil
	case keymap.Matches(keyStr, v.keymap.Clear):
		v.applyFilters(v.defaults)
		return v, nil
	}

	//nolint:exhaustive // handling only relevant key types
	switch msg.Type {
	case tea.KeyUp:
		v.list.MoveUp()
		return v, nil
	case tea.KeyDown:
		v.list.MoveDown()
		return v, nil
	}

	if v.focusInput {
		if msg.Type == tea.KeyEnter {
			v.focusInput = false
			v.input.Blur()
			return v, nil
		}
		before := v.input.Value()
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		if v.input.Value() != before {
			v.filters.Term = v.input.Value()
			v.refresh()
		}
		return v, cmd
	}

	switch keyStr {
	case "enter":
		if svc := v.list.SelectedService(); svc != nil {
			selected := *svc
			v.detail = &selected
		}
	case "k":
		v.list.MoveUp()
	case "j":
		v.list.MoveDown()
	case "/":
		v.focusInput = true
		return v, v.input.Focus()
	}
	return v, nil
}

// applyFilters replaces the whole filter state, including the term.
func (v *View) applyFilters(f domain.ExplorerFilters) {
	v.filters = f
	v.input.SetValue(f.Term)
	v.refresh()
}

// refresh recomputes the projection from the current filters.
func (v *View) refresh() {
	if v.catalog == nil {
		v.projection = domain.ExplorerProjection{Filters: v.filters}
		v.list.SetServices(nil)
		return
	}

	v.projection = v.catalog.Explore(v.filters)
	if v.filters.Category == domain.Wildcard {
		v.list.SetGroups(v.projection.Groups)
	} else {
		v.list.SetServices(v.projection.Results)
	}
	v.statusbar.SetResultCount(v.projection.Count)
}

// View renders the explorer view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	if v.detail != nil {
		return v.renderDetail(v.detail)
	}

	sections := make([]string, 0, 8)
	sections = append(sections,
		v.styles.Title.Render("Service Explorer"), "",
		v.input.View(),
		v.renderFilters(), "",
		v.list.View(), "",
		v.statusbar.View(),
	)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderFilters shows the active category and provider filters.
func (v *View) renderFilters() string {
	category := v.filters.Category
	if category == domain.Wildcard {
		category = "All Categories"
	}
	provider := v.filters.Provider
	if provider == domain.Wildcard {
		provider = "All Providers"
	}
	return v.styles.Muted.Render("Category: ") + v.styles.Normal.Render(category) +
		v.styles.Muted.Render("   Provider: ") + v.styles.Normal.Render(provider)
}

// renderDetail renders a single service's full record.
func (v *View) renderDetail(svc *domain.ServiceRecord) string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render(svc.Name))
	b.WriteString("  ")
	b.WriteString(v.styles.Provider(svc.Provider).Render(svc.Provider.String()))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render(fmt.Sprintf("%s · %s · %s",
		svc.ID, svc.Category, svc.Category.ServiceType())))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Normal.Render(svc.Description))
	b.WriteString("\n\n")

	writeField := func(label, value string) {
		b.WriteString(v.styles.Subtitle.Render(label + ": "))
		b.WriteString(v.styles.Normal.Render(value))
		b.WriteString("\n")
	}
	writeField("Pricing", svc.Pricing)
	writeField("Free tier", yesNo(svc.FreeTier))
	writeField("Popular", yesNo(svc.Popular))
	writeField("Regions", strings.Join(svc.Regions, ", "))
	writeField("Tags", strings.Join(svc.Tags, ", "))
	if svc.DocumentationURL != "" {
		writeField("Docs", svc.DocumentationURL)
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Subtitle.Render("Features"))
	b.WriteString("\n")
	for _, f := range svc.Features {
		b.WriteString("  • " + f + "\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[esc] back to results"))
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	v.list.SetDimensions(width, height-10) // header, input, filters, status
	v.statusbar.SetWidth(width)
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Filters returns the current filter state.
func (v *View) Filters() domain.ExplorerFilters {
	return v.filters
}

// Projection returns the current query result.
func (v *View) Projection() domain.ExplorerProjection {
	return v.projection
}

// SelectedService returns the highlighted service.
func (v *View) SelectedService() *domain.ServiceRecord {
	return v.list.SelectedService()
}

// Detail returns the service shown in the detail pane, if any.
func (v *View) Detail() *domain.ServiceRecord {
	return v.detail
}

// InputFocused returns whether the term input has focus.
func (v *View) InputFocused() bool {
	return v.focusInput
}

// Reset restores the default filters and focuses the input.
func (v *View) Reset() {
	v.detail = nil
	v.focusInput = true
	v.input.Focus()
	v.statusbar.Clear()
	v.applyFilters(v.defaults)
}

func nextCategory(current string) string {
	options := []string{domain.Wildcard}
	for _, c := range domain.AllCategories() {
		options = append(options, c.String())
	}
	return next(options, current)
}

func nextProvider(current string) string {
	options := []string{domain.Wildcard}
	for _, p := range domain.AllProviders() {
		options = append(options, p.String())
	}
	return next(options, current)
}

// next returns the option after current, wrapping around. An unknown
// current value restarts the cycle.
func next(options []string, current string) string {
	for i, o := range options {
		if o == current {
			return options[(i+1)%len(options)]
		}
	}
	return options[0]
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
