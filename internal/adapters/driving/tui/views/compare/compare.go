// Package compare provides the side-by-side provider comparison view.
package compare

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/custodia-labs/cloudcompass/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/cloudcompass/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/cloudcompass/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/cloudcompass/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/cloudcompass/internal/core/domain"
	"github.com/custodia-labs/cloudcompass/internal/core/ports/driving"
)

// View aligns the services of one category by provider and keeps a
// transient selection of up to domain.MaxComparison services.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	statusbar *status.Bar

	comparison driving.ComparisonService
	category   domain.Category
	result     domain.Comparison
	selection  domain.Selection

	row    int
	column int // index into domain.AllProviders()

	width  int
	height int
	ready  bool
}

// NewView creates a new compare view starting at the Compute category.
func NewView(s *styles.Styles, km *keymap.KeyMap, comparison driving.ComparisonService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	v := &View{
		styles:     s,
		keymap:     km,
		statusbar:  status.NewBar(s, km),
		comparison: comparison,
		category:   domain.CategoryCompute,
		width:      80,
		height:     24,
	}
	v.statusbar.SetHints(km.CompareHelp())
	v.load()
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the compare view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil
	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}
	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()
	switch {
	case keymap.Matches(keyStr, v.keymap.Back):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	case keymap.Matches(keyStr, v.keymap.NextCategory):
		v.SetCategory(nextCategory(v.category, 1))
	case keymap.Matches(keyStr, v.keymap.NextProvider):
		v.SetCategory(nextCategory(v.category, -1))
	case keymap.Matches(keyStr, v.keymap.Up):
		if v.row > 0 {
			v.row--
		}
	case keymap.Matches(keyStr, v.keymap.Down):
		if v.row < len(v.result.Rows)-1 {
			v.row++
		}
	case keymap.Matches(keyStr, v.keymap.Left):
		if v.column > 0 {
			v.column--
		}
	case keymap.Matches(keyStr, v.keymap.Right):
		if v.column < len(domain.AllProviders())-1 {
			v.column++
		}
	case keymap.Matches(keyStr, v.keymap.Toggle), keymap.Matches(keyStr, v.keymap.Select):
		v.toggleCurrent()
	}
	return v, nil
}

// toggleCurrent toggles the service under the cursor in the selection.
func (v *View) toggleCurrent() {
	svc := v.Current()
	if svc == nil {
		return
	}
	if !v.selection.Contains(svc.ID) && v.selection.Full() {
		v.statusbar.SetMessage(fmt.Sprintf("Only %d services can be compared at once", domain.MaxComparison))
		return
	}
	v.selection = v.selection.Toggle(svc.ID)
	v.statusbar.SetMessage(fmt.Sprintf("%d/%d selected", v.selection.Len(), domain.MaxComparison))
}

// load recomputes the comparison for the current category.
func (v *View) load() {
	v.row = 0
	if v.comparison == nil {
		v.result = domain.Comparison{Category: v.category}
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage("comparison not available")
		return
	}
	v.result = v.comparison.CompareCategory(v.category)

	total := 0
	for _, c := range v.result.Counts {
		total += c.Count
	}
	v.statusbar.SetResultCount(total)
}

// SetCategory switches the compared category. The selection is kept so
// services from different categories can be compared.
func (v *View) SetCategory(c domain.Category) {
	v.category = c
	v.load()
}

// Current returns the service under the cursor, or nil for an empty slot.
func (v *View) Current() *domain.ServiceRecord {
	if v.row < 0 || v.row >= len(v.result.Rows) {
		return nil
	}
	return v.result.Rows[v.row].Slot(domain.AllProviders()[v.column])
}

// View renders the compare view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := []string{
		v.styles.Title.Render("Compare: " + v.category.String()),
		v.styles.Muted.Render(v.category.ServiceType()),
		"",
		v.renderTable(),
		"",
		v.renderSelection(),
		"",
		v.statusbar.View(),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderTable lays the rows out with one column per provider.
func (v *View) renderTable() string {
	if len(v.result.Rows) == 0 {
		return v.styles.Muted.Render("No services in this category")
	}

	providers := domain.AllProviders()
	headers := make([]string, 0, len(providers))
	for _, p := range providers {
		headers = append(headers, v.styles.Provider(p).Render(p.String()))
	}

	rows := make([][]string, 0, len(v.result.Rows))
	for r, row := range v.result.Rows {
		cells := make([]string, 0, len(providers))
		for c, p := range providers {
			cells = append(cells, v.renderCell(row.Slot(p), r == v.row && c == v.column))
		}
		rows = append(rows, cells)
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(v.styles.Theme().Border)).
		Headers(headers...).
		Rows(rows...).
		String()
}

func (v *View) renderCell(svc *domain.ServiceRecord, cursor bool) string {
	if svc == nil {
		text := "-"
		if cursor {
			return v.styles.Selected.Render("> " + text)
		}
		return v.styles.Muted.Render("  " + text)
	}

	mark := "[ ]"
	if v.selection.Contains(svc.ID) {
		mark = "[x]"
	}
	text := mark + " " + svc.Name
	if cursor {
		return v.styles.Selected.Render(text)
	}
	return v.styles.Normal.Render(text)
}

// renderSelection shows the selected services as side-by-side cards.
func (v *View) renderSelection() string {
	title := v.styles.Subtitle.Render(
		fmt.Sprintf("Selected (%d/%d)", v.selection.Len(), domain.MaxComparison))
	if v.comparison == nil || v.selection.Len() == 0 {
		return title + "\n" + v.styles.Muted.Render("Press space to add services to the comparison")
	}

	selected := v.comparison.SelectedRecords(v.selection)
	cards := make([]string, 0, len(selected))
	for i := range selected {
		cards = append(cards, v.renderCard(&selected[i]))
	}
	return title + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (v *View) renderCard(svc *domain.ServiceRecord) string {
	var b strings.Builder
	b.WriteString(v.styles.Provider(svc.Provider).Render(svc.Provider.String()))
	b.WriteString("\n")
	b.WriteString(v.styles.Title.Render(svc.Name))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render(svc.Pricing))
	b.WriteString("\n")
	for _, f := range svc.TopFeatures(3) {
		b.WriteString("• " + f + "\n")
	}
	if svc.FreeTier {
		b.WriteString(v.styles.Success.Render("Free tier"))
	}

	cardWidth := (v.width - 4) / domain.MaxComparison
	if cardWidth < 20 {
		cardWidth = 20
	}
	return v.styles.Card.Width(cardWidth).Render(b.String())
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.statusbar.SetWidth(width)
}

// Category returns the compared category.
func (v *View) Category() domain.Category {
	return v.category
}

// Comparison returns the current aligned rows.
func (v *View) Comparison() domain.Comparison {
	return v.result
}

// Selection returns the current selection.
func (v *View) Selection() domain.Selection {
	return v.selection
}

// Cursor returns the cursor row and provider column.
func (v *View) Cursor() (row, column int) {
	return v.row, v.column
}

// Reset clears the selection and cursor.
func (v *View) Reset() {
	v.selection = domain.Selection{}
	v.column = 0
	v.statusbar.Clear()
	v.load()
}

// nextCategory steps through the category enumeration, wrapping around.
func nextCategory(current domain.Category, step int) domain.Category {
	all := domain.AllCategories()
	for i, c := range all {
		if c == current {
			return all[(i+step+len(all))%len(all)]
		}
	}
	return all[0]
}
