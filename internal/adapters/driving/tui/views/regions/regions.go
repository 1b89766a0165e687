// Package regions provides the region latency view for the TUI.
package regions

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/custodia-labs/cloudcompass/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/cloudcompass/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/cloudcompass/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/cloudcompass/internal/core/domain"
	"github.com/custodia-labs/cloudcompass/internal/core/ports/driving"
)

// View shows the region table of one provider tab at a time.
type View struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	regions driving.RegionService

	tabs []string
	tab  int

	width  int
	height int
	ready  bool
}

// NewView creates a new regions view.
func NewView(s *styles.Styles, km *keymap.KeyMap, regions driving.RegionService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	tabs := []string{domain.Wildcard}
	for _, p := range domain.AllProviders() {
		tabs = append(tabs, p.String())
	}

	return &View{
		styles:  s,
		keymap:  km,
		regions: regions,
		tabs:    tabs,
		width:   80,
		height:  24,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the regions view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
	case tea.KeyMsg:
		keyStr := msg.String()
		switch {
		case keymap.Matches(keyStr, v.keymap.Back):
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		case keymap.Matches(keyStr, v.keymap.Left), keymap.Matches(keyStr, v.keymap.NextProvider):
			v.tab = (v.tab - 1 + len(v.tabs)) % len(v.tabs)
		case keymap.Matches(keyStr, v.keymap.Right), keymap.Matches(keyStr, v.keymap.NextCategory):
			v.tab = (v.tab + 1) % len(v.tabs)
		}
	}
	return v, nil
}

// View renders the regions view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := []string{
		v.styles.Title.Render("Global Regions"),
		"",
		v.renderTabs(),
		"",
	}

	if v.regions == nil {
		sections = append(sections, v.styles.Error.Render("Region data not available"))
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	for _, pr := range v.regions.Regions(v.Provider()) {
		sections = append(sections, v.renderProvider(pr), "")
	}

	overview := v.regions.Overview()
	sections = append(sections,
		v.styles.Subtitle.Render(fmt.Sprintf("%d regions · best latency %dms · %d major areas",
			overview.TotalRegions, overview.BestLatencyMS, overview.MajorAreas)),
		v.renderLegend(),
		"",
		v.styles.Help.Render("[←/→] Switch provider  [esc] Back"),
	)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (v *View) renderTabs() string {
	parts := make([]string, 0, len(v.tabs))
	for i, t := range v.tabs {
		label := t
		if t == domain.Wildcard {
			label = "All"
		}
		if i == v.tab {
			parts = append(parts, v.styles.Selected.Render(" "+label+" "))
		} else {
			parts = append(parts, v.styles.Muted.Render(" "+label+" "))
		}
	}
	return strings.Join(parts, " ")
}

func (v *View) renderProvider(pr domain.ProviderRegions) string {
	rows := make([][]string, 0, len(pr.Regions))
	for _, r := range pr.Regions {
		tier := r.Tier()
		rows = append(rows, []string{
			r.Name,
			r.Code,
			r.Location,
			strconv.Itoa(r.LatencyMS) + "ms",
			v.styles.Tier(tier).Render(string(tier)),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(v.styles.Theme().Border)).
		Headers("Region", "Code", "Location", "Latency", "Tier").
		Rows(rows...)

	title := v.styles.Provider(pr.Provider).Render(pr.Provider.Description())
	return title + "\n" + t.String()
}

func (v *View) renderLegend() string {
	return v.styles.Tier(domain.TierExcellent).Render("Excellent <30ms") + "  " +
		v.styles.Tier(domain.TierGood).Render("Good 30-59ms") + "  " +
		v.styles.Tier(domain.TierFair).Render("Fair 60ms+")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Provider returns the active tab as a provider filter ("all" for every provider).
func (v *View) Provider() string {
	return v.tabs[v.tab]
}

// Reset returns to the first tab.
func (v *View) Reset() {
	v.tab = 0
}
