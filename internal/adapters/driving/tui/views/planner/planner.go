// Package planner provides the migration planner view for the TUI.
package planner

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/cloudcompass/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/cloudcompass/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/cloudcompass/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/cloudcompass/internal/core/domain"
	"github.com/custodia-labs/cloudcompass/internal/core/ports/driving"
)

// Field identifies a row of the planner form.
type Field int

const (
	FieldSource Field = iota
	FieldTarget
	FieldComplexity
	FieldAreas
	FieldService
	FieldGenerate
)

var fieldLabels = []string{"From", "To", "Complexity", "Areas", "Service", ""}

// View is a form of selectors that produces a migration plan, then shows
// the plan in a scrollable viewport.
type View struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	planner driving.MigrationPlanner
	catalog driving.CatalogService

	sources      []string
	targets      []domain.Provider
	complexities []domain.Complexity
	areas        []domain.ServiceArea
	services     []string // "" means no mapping

	field      Field
	source     int
	target     int
	complexity int
	areaCursor int
	chosen     map[domain.ServiceArea]bool
	service    int

	plan     *domain.MigrationPlan
	err      error
	viewport viewport.Model

	width  int
	height int
	ready  bool
}

// NewView creates a new planner view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	planner driving.MigrationPlanner,
	catalog driving.CatalogService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	sources := make([]string, 0, len(domain.AllProviders())+1)
	for _, p := range domain.AllProviders() {
		sources = append(sources, p.Key())
	}
	sources = append(sources, domain.OnPremise)

	v := &View{
		styles:       s,
		keymap:       km,
		planner:      planner,
		catalog:      catalog,
		sources:      sources,
		targets:      domain.AllProviders(),
		complexities: domain.AllComplexities(),
		areas:        domain.AllServiceAreas(),
		chosen:       make(map[domain.ServiceArea]bool),
		viewport:     viewport.New(80, 18),
		width:        80,
		height:       24,
	}
	v.SetDefaults(domain.DefaultAppSettings().Planner)
	return v
}

// SetDefaults preselects the form from planner settings.
func (v *View) SetDefaults(defaults domain.PlannerSettings) {
	for i, s := range v.sources {
		if s == defaults.Source {
			v.source = i
		}
	}
	for i, t := range v.targets {
		if t == defaults.Target {
			v.target = i
		}
	}
	for i, c := range v.complexities {
		if c == defaults.Complexity {
			v.complexity = i
		}
	}
	v.loadServices()
}

// loadServices lists the services of the selected source for mapping.
func (v *View) loadServices() {
	v.services = []string{""}
	v.service = 0
	if v.catalog == nil {
		return
	}

	var records []domain.ServiceRecord
	if src := v.sources[v.source]; src == domain.OnPremise {
		records = v.catalog.All()
	} else {
		records = v.catalog.FilterByProvider(domain.ParseProvider(src))
	}
	for _, r := range records {
		v.services = append(v.services, r.ID)
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the planner view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.PlanCompleted:
		v.plan, v.err = msg.Plan, msg.Err
		if v.plan != nil {
			v.viewport.SetContent(v.renderPlan(v.plan))
			v.viewport.GotoTop()
		}
		return v, nil

	case tea.KeyMsg:
		if v.plan != nil {
			if msg.Type == tea.KeyEsc {
				v.plan = nil
				return v, nil
			}
			var cmd tea.Cmd
			v.viewport, cmd = v.viewport.Update(msg)
			return v, cmd
		}
		return v.handleFormKey(msg)
	}
	return v, nil
}

func (v *View) handleFormKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()
	switch {
	case keymap.Matches(keyStr, v.keymap.Back):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	case keymap.Matches(keyStr, v.keymap.Up):
		if v.field > FieldSource {
			v.field--
		}
	case keymap.Matches(keyStr, v.keymap.Down):
		if v.field < FieldGenerate {
			v.field++
		}
	case keymap.Matches(keyStr, v.keymap.Left):
		v.step(-1)
	case keymap.Matches(keyStr, v.keymap.Right):
		v.step(1)
	case keymap.Matches(keyStr, v.keymap.Toggle):
		if v.field == FieldAreas {
			area := v.areas[v.areaCursor]
			v.chosen[area] = !v.chosen[area]
		}
	case keymap.Matches(keyStr, v.keymap.Select):
		return v, v.generate()
	}
	return v, nil
}

// step moves the value of the focused field.
func (v *View) step(delta int) {
	switch v.field {
	case FieldSource:
		v.source = wrap(v.source+delta, len(v.sources))
		v.loadServices()
	case FieldTarget:
		v.target = wrap(v.target+delta, len(v.targets))
	case FieldComplexity:
		v.complexity = wrap(v.complexity+delta, len(v.complexities))
	case FieldAreas:
		v.areaCursor = wrap(v.areaCursor+delta, len(v.areas))
	case FieldService:
		v.service = wrap(v.service+delta, len(v.services))
	case FieldGenerate:
	}
}

// Request returns the plan request described by the form.
func (v *View) Request() domain.PlanRequest {
	req := domain.PlanRequest{
		Source:     v.sources[v.source],
		Target:     v.targets[v.target],
		Complexity: v.complexities[v.complexity],
		ServiceID:  v.services[v.service],
	}
	for _, a := range v.areas {
		if v.chosen[a] {
			req.Areas = append(req.Areas, a)
		}
	}
	return req
}

// generate returns a command that plans the current request.
func (v *View) generate() tea.Cmd {
	req := v.Request()
	planner := v.planner
	return func() tea.Msg {
		if planner == nil {
			return messages.PlanCompleted{Err: fmt.Errorf("migration planner not available")}
		}
		plan, err := planner.Plan(req)
		return messages.PlanCompleted{Plan: plan, Err: err}
	}
}

// View renders the planner view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	if v.plan != nil {
		return lipgloss.JoinVertical(lipgloss.Left,
			v.styles.Title.Render(fmt.Sprintf("Migration plan: %s to %s",
				v.plan.Request.Source, v.plan.Request.Target)),
			"",
			v.viewport.View(),
			"",
			v.styles.Help.Render(fmt.Sprintf("[↑/↓] Scroll %3.f%%  [esc] Back to form",
				v.viewport.ScrollPercent()*100)),
		)
	}

	sections := []string{v.styles.Title.Render("Migration Planner"), ""}
	for f := FieldSource; f <= FieldGenerate; f++ {
		sections = append(sections, v.renderField(f))
	}
	if v.err != nil {
		sections = append(sections, "", v.styles.Error.Render("Error: "+v.err.Error()))
	}
	sections = append(sections, "",
		v.styles.Help.Render("[↑/↓] Field  [←/→] Change  [space] Toggle area  [enter] Generate  [esc] Back"))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (v *View) renderField(f Field) string {
	cursor := "  "
	if f == v.field {
		cursor = "> "
	}

	if f == FieldGenerate {
		label := "[ Generate plan ]"
		if f == v.field {
			return cursor + v.styles.Selected.Render(label)
		}
		return cursor + v.styles.Normal.Render(label)
	}

	var value string
	switch f {
	case FieldSource:
		value = "‹ " + v.sources[v.source] + " ›"
	case FieldTarget:
		value = "‹ " + v.targets[v.target].Description() + " ›"
	case FieldComplexity:
		value = "‹ " + v.complexities[v.complexity].Description() + " ›"
	case FieldAreas:
		parts := make([]string, 0, len(v.areas))
		for i, a := range v.areas {
			mark := "[ ]"
			if v.chosen[a] {
				mark = "[x]"
			}
			item := mark + " " + a.Label()
			if f == v.field && i == v.areaCursor {
				item = v.styles.Selected.Render(item)
			}
			parts = append(parts, item)
		}
		value = strings.Join(parts, "  ")
	case FieldService:
		id := v.services[v.service]
		if id == "" {
			id = "none"
		}
		value = "‹ " + id + " ›"
	case FieldGenerate:
	}

	label := v.styles.Subtitle.Render(fmt.Sprintf("%-11s", fieldLabels[f]))
	return cursor + label + " " + v.styles.Normal.Render(value)
}

// renderPlan formats a plan for the viewport.
func (v *View) renderPlan(plan *domain.MigrationPlan) string {
	var b strings.Builder

	section := func(title string) {
		b.WriteString("\n")
		b.WriteString(v.styles.Subtitle.Render(title))
		b.WriteString("\n")
	}
	bullets := func(items []string) {
		for _, item := range items {
			b.WriteString("  • " + item + "\n")
		}
	}

	s := plan.Strategy
	b.WriteString(v.styles.Title.Render(s.Approach))
	b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  %s · effort %s · risk %s", s.Duration, s.Effort, s.RiskLevel)))
	b.WriteString("\n")
	b.WriteString(s.Description)
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render("Tools: " + strings.Join(s.Tools, ", ")))
	b.WriteString("\n")

	if len(plan.Request.Areas) > 0 {
		labels := make([]string, 0, len(plan.Request.Areas))
		for _, a := range plan.Request.Areas {
			labels = append(labels, a.Label())
		}
		b.WriteString(v.styles.Muted.Render("Areas: " + strings.Join(labels, ", ")))
		b.WriteString("\n")
	}

	if m := plan.Mapping; m != nil {
		section("Service mapping")
		name := m.SourceName
		if name == "" {
			name = m.SourceID
		}
		b.WriteString(fmt.Sprintf("  %s → %s\n", name, m.Target))
	}

	section(plan.Advice.Provider.Description() + " strengths")
	bullets(plan.Advice.Strengths)
	section("Considerations")
	bullets(plan.Advice.Considerations)

	section("Timeline")
	for i, phase := range plan.Timeline {
		b.WriteString(fmt.Sprintf("  %d. %-14s %s\n", i+1, phase.Name, phase.Duration))
	}

	section("Pre-migration checklist")
	bullets(plan.Checklists.PreMigration)
	section("Do")
	bullets(plan.Checklists.Dos)
	section("Don't")
	bullets(plan.Checklists.Donts)
	for _, group := range plan.Checklists.CostTips {
		section(group.Title)
		bullets(group.Tips)
	}

	section("Services in scope")
	b.WriteString(fmt.Sprintf("  %d services\n", len(plan.Candidates)))

	if plan.Recommendation != "" {
		b.WriteString("\n")
		b.WriteString(v.styles.Warning.Render("Note: " + plan.Recommendation))
		b.WriteString("\n")
	}
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.viewport.Width = width
	v.viewport.Height = max(height-6, 5)
}

// Plan returns the last generated plan while it is shown.
func (v *View) Plan() *domain.MigrationPlan {
	return v.plan
}

// Err returns the last planning error.
func (v *View) Err() error {
	return v.err
}

// Focused returns the focused form field.
func (v *View) Focused() Field {
	return v.field
}

// Reset returns to the form and clears the area selection.
func (v *View) Reset() {
	v.plan = nil
	v.err = nil
	v.field = FieldSource
	v.areaCursor = 0
	v.chosen = make(map[domain.ServiceArea]bool)
}

func wrap(i, n int) int {
	return (i%n + n) % n
}
