// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/cloudcompass/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/cloudcompass/internal/core/domain"
)

// ServiceList displays service records in a navigable list, optionally
// under category headers.
type ServiceList struct {
	services []domain.ServiceRecord
	headers  map[int]domain.Category // index of first record in each group
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewServiceList creates a new service list component.
func NewServiceList(s *styles.Styles) *ServiceList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ServiceList{
		styles: s,
		width:  80,
		height: 10,
	}
}

// Init initialises the service list.
func (l *ServiceList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (l *ServiceList) Update(msg tea.Msg) (*ServiceList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			l.MoveUp()
		case "down", "j":
			l.MoveDown()
		}
	}
	return l, nil
}

// View renders the service list.
func (l *ServiceList) View() string {
	if len(l.services) == 0 {
		return l.styles.Muted.Render("No services found")
	}

	lines := make([]string, 0, len(l.services)*3+2)
	lines = append(lines, l.styles.Subtitle.Render(fmt.Sprintf("Services (%d)", len(l.services))), "")

	// Each entry takes two lines plus an occasional header.
	visibleCount := (l.height - 4) / 3
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if l.selected >= visibleCount {
		start = l.selected - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(l.services) {
		end = len(l.services)
	}

	for i := start; i < end; i++ {
		if category, ok := l.headers[i]; ok {
			lines = append(lines, l.styles.Title.Render(category.String()))
		}
		lines = append(lines, l.renderService(i, &l.services[i]))
	}

	return strings.Join(lines, "\n")
}

// renderService formats a single record with its description.
func (l *ServiceList) renderService(index int, svc *domain.ServiceRecord) string {
	indicator := "  "
	if index == l.selected {
		indicator = "> "
	}

	maxNameLen := l.width - 30
	if maxNameLen < 10 {
		maxNameLen = 10
	}
	name := truncate(svc.Name, maxNameLen)

	var nameLine string
	if index == l.selected {
		nameLine = l.styles.Selected.Render(fmt.Sprintf("%s%-*s", indicator, maxNameLen, name))
	} else {
		nameLine = l.styles.Normal.Render(fmt.Sprintf("%s%-*s", indicator, maxNameLen, name))
	}
	nameLine += "  " + l.styles.Provider(svc.Provider).Render(svc.Provider.String()) +
		"  " + l.styles.Muted.Render(svc.Category.String())
	if svc.Popular {
		nameLine += "  " + l.styles.Badge.Render("Popular")
	}

	maxDescLen := l.width - 6
	if maxDescLen < 20 {
		maxDescLen = 20
	}
	descLine := l.styles.Muted.Render("    " + truncate(svc.Description, maxDescLen))

	return nameLine + "\n" + descLine
}

// SetServices replaces the listed records without grouping.
func (l *ServiceList) SetServices(services []domain.ServiceRecord) {
	l.services = services
	l.headers = nil
	l.selected = 0
}

// SetGroups lists the records of each group under a category header.
func (l *ServiceList) SetGroups(groups []domain.CategoryGroup) {
	l.services = nil
	l.headers = make(map[int]domain.Category, len(groups))
	for _, g := range groups {
		l.headers[len(l.services)] = g.Category
		l.services = append(l.services, g.Services...)
	}
	l.selected = 0
}

// Services returns the listed records in display order.
func (l *ServiceList) Services() []domain.ServiceRecord {
	return l.services
}

// Grouped returns whether the list is showing category headers.
func (l *ServiceList) Grouped() bool {
	return l.headers != nil
}

// Selected returns the index of the selected record.
func (l *ServiceList) Selected() int {
	return l.selected
}

// SetSelected sets the selected index.
func (l *ServiceList) SetSelected(index int) {
	if index >= 0 && index < len(l.services) {
		l.selected = index
	}
}

// SelectedService returns the currently selected record, or nil if none.
func (l *ServiceList) SelectedService() *domain.ServiceRecord {
	if len(l.services) == 0 || l.selected < 0 || l.selected >= len(l.services) {
		return nil
	}
	return &l.services[l.selected]
}

// MoveUp moves selection up.
func (l *ServiceList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves selection down.
func (l *ServiceList) MoveDown() {
	if l.selected < len(l.services)-1 {
		l.selected++
	}
}

// SetDimensions sets the component dimensions.
func (l *ServiceList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}

// Width returns the current width.
func (l *ServiceList) Width() int {
	return l.width
}

// Height returns the current height.
func (l *ServiceList) Height() int {
	return l.height
}

// Count returns the number of records.
func (l *ServiceList) Count() int {
	return len(l.services)
}

// IsEmpty returns whether the list is empty.
func (l *ServiceList) IsEmpty() bool {
	return len(l.services) == 0
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
