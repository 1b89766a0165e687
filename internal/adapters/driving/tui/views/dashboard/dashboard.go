// Package dashboard provides the catalog statistics view for the TUI.
package dashboard

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/cloudcompass/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/cloudcompass/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/cloudcompass/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/cloudcompass/internal/core/domain"
	"github.com/custodia-labs/cloudcompass/internal/core/ports/driving"
)

// barWidth is the width of a full category bar.
const barWidth = 24

// View shows catalog counts as cards and per-category bars.
type View struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	catalog driving.CatalogService
	regions driving.RegionService

	stats    domain.CatalogStats
	overview domain.RegionOverview

	width  int
	height int
	ready  bool
}

// NewView creates a new dashboard view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	catalog driving.CatalogService,
	regions driving.RegionService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	v := &View{
		styles:  s,
		keymap:  km,
		catalog: catalog,
		regions: regions,
		width:   80,
		height:  24,
	}
	v.Refresh()
	return v
}

// Refresh recomputes the statistics.
func (v *View) Refresh() {
	if v.catalog != nil {
		v.stats = v.catalog.Stats()
	}
	if v.regions != nil {
		v.overview = v.regions.Overview()
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the dashboard view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
	case tea.KeyMsg:
		if keymap.Matches(msg.String(), v.keymap.Back) {
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		}
	}
	return v, nil
}

// View renders the dashboard.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := []string{v.styles.Title.Render("Dashboard"), ""}

	if v.catalog == nil {
		sections = append(sections, v.styles.Error.Render("Catalog not available"))
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	sections = append(sections,
		lipgloss.JoinHorizontal(lipgloss.Top,
			v.card("Services", v.stats.Total),
			v.card("Popular", v.stats.Popular),
			v.card("Free tier", v.stats.FreeTier),
			v.card("Regions", v.stats.TotalRegions),
		),
		"",
		v.renderProviders(),
		"",
		v.renderCategories(),
	)

	if v.regions != nil {
		sections = append(sections, "",
			v.styles.Muted.Render(fmt.Sprintf("Latency: best %dms across %d data centre regions in %d major areas",
				v.overview.BestLatencyMS, v.overview.TotalRegions, v.overview.MajorAreas)))
	}

	sections = append(sections, "", v.styles.Help.Render("[esc] Back"))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (v *View) card(label string, value int) string {
	return v.styles.Card.Render(
		v.styles.Title.Render(strconv.Itoa(value)) + "\n" + v.styles.Muted.Render(label),
	)
}

func (v *View) renderProviders() string {
	parts := make([]string, 0, len(v.stats.ByProvider))
	for _, pc := range v.stats.ByProvider {
		parts = append(parts, fmt.Sprintf("%s %d", v.styles.Provider(pc.Provider).Render(pc.Provider.String()), pc.Count))
	}
	return v.styles.Subtitle.Render("By provider") + "\n" + strings.Join(parts, "   ")
}

func (v *View) renderCategories() string {
	most := 0
	for _, cc := range v.stats.ByCategory {
		most = max(most, cc.Count)
	}

	lines := []string{v.styles.Subtitle.Render("By category")}
	for _, cc := range v.stats.ByCategory {
		n := 0
		if most > 0 {
			n = cc.Count * barWidth / most
		}
		lines = append(lines, fmt.Sprintf("  %-12s %s %d",
			cc.Category.String(),
			v.styles.Success.Render(strings.Repeat("█", n)),
			cc.Count))
	}
	return strings.Join(lines, "\n")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Stats returns the statistics currently shown.
func (v *View) Stats() domain.CatalogStats {
	return v.stats
}
