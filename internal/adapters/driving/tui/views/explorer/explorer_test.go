package explorer

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/cloudcompass/internal/adapters/driven/catalog/builtin"
	"github.com/custodia-labs/cloudcompass/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/cloudcompass/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/cloudcompass/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/cloudcompass/internal/core/domain"
	"github.com/custodia-labs/cloudcompass/internal/core/services"
)

func newTestView(t *testing.T) *View {
	t.Helper()

	catalog, err := services.NewCatalog(builtin.Records())
	require.NoError(t, err)

	view := NewView(styles.DefaultStyles(), keymap.DefaultKeyMap(), catalog)
	view.SetDimensions(120, 40)
	return view
}

func typeText(v *View, text string) {
	for _, r := range text {
		v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestNewView(t *testing.T) {
	view := newTestView(t)

	assert.True(t, view.InputFocused())
	assert.Equal(t, domain.DefaultExplorerFilters(), view.Filters())
	assert.Equal(t, 33, view.Projection().Count)
	assert.True(t, view.list.Grouped())
}

func TestNewView_NilDependencies(t *testing.T) {
	view := NewView(nil, nil, nil)

	require.NotNil(t, view)
	assert.NotNil(t, view.styles)
	assert.NotNil(t, view.keymap)
	assert.Equal(t, 0, view.Projection().Count)
	assert.False(t, view.Ready())
}

func TestView_Init(t *testing.T) {
	assert.NotNil(t, newTestView(t).Init())
}

func TestView_Update_WindowSize(t *testing.T) {
	view := NewView(nil, nil, nil)

	view.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	assert.True(t, view.Ready())
	assert.Equal(t, 100, view.width)
	assert.Equal(t, 30, view.height)
}

func TestView_TypingFiltersLive(t *testing.T) {
	view := newTestView(t)

	typeText(view, "sql")

	assert.Equal(t, "sql", view.Filters().Term)
	assert.Less(t, view.Projection().Count, 33)
	for _, svc := range view.Projection().Results {
		assert.Contains(t, strings.ToLower(svc.Name+" "+svc.Description), "sql")
	}
}

func TestView_CycleProvider(t *testing.T) {
	view := newTestView(t)

	view.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, "AWS", view.Filters().Provider)
	assert.Equal(t, 11, view.Projection().Count)

	view.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	view.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, "GCP", view.Filters().Provider)

	typeText(view, "sql")
	require.Len(t, view.Projection().Results, 2)
	assert.Equal(t, "gcp-sql", view.Projection().Results[0].ID)
	assert.Equal(t, "gcp-firestore", view.Projection().Results[1].ID)

	view.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, domain.Wildcard, view.Filters().Provider, "wraps around")
}

func TestView_CycleCategory(t *testing.T) {
	view := newTestView(t)

	view.Update(tea.KeyMsg{Type: tea.KeyTab})

	assert.Equal(t, "Compute", view.Filters().Category)
	assert.False(t, view.list.Grouped())
	ids := make([]string, 0, 3)
	for _, svc := range view.Projection().Results {
		ids = append(ids, svc.ID)
	}
	assert.Equal(t, []string{"aws-ec2", "azure-vm", "gcp-compute"}, ids)
}

func TestView_ClearRestoresDefaults(t *testing.T) {
	view := newTestView(t)
	typeText(view, "storage")
	view.Update(tea.KeyMsg{Type: tea.KeyTab})

	view.Update(tea.KeyMsg{Type: tea.KeyCtrlR})

	assert.Equal(t, domain.DefaultExplorerFilters(), view.Filters())
	assert.Equal(t, "", view.input.Value())
	assert.Equal(t, 33, view.Projection().Count)
}

func TestView_FiltersChangedSetsDefaults(t *testing.T) {
	view := newTestView(t)
	defaults := domain.ExplorerFilters{Category: "Database", Provider: domain.Wildcard}

	view.Update(messages.FiltersChanged{Filters: defaults})
	assert.Equal(t, 6, view.Projection().Count)

	typeText(view, "zzz")
	assert.Equal(t, 0, view.Projection().Count)

	view.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.Equal(t, defaults, view.Filters())
}

func TestView_FiltersChangedKeepTerm(t *testing.T) {
	view := newTestView(t)
	typeText(view, "lambda")

	view.Update(messages.FiltersChanged{
		Filters:  domain.ExplorerFilters{Category: domain.Wildcard, Provider: "AWS"},
		KeepTerm: true,
	})

	assert.Equal(t, "lambda", view.Filters().Term)
	assert.Equal(t, "lambda", view.input.Value())
	assert.Equal(t, "AWS", view.Filters().Provider)
	assert.Equal(t, 1, view.Projection().Count)

	view.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.Empty(t, view.Filters().Term, "restoring defaults still clears the term")
}

func TestView_EnterMovesToResultsAndOpensDetail(t *testing.T) {
	view := newTestView(t)
	view.Update(tea.KeyMsg{Type: tea.KeyTab}) // Compute

	view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, view.InputFocused())

	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, view.Detail())
	assert.Equal(t, "azure-vm", view.Detail().ID)
	output := view.View()
	assert.Contains(t, output, "Features")
	assert.Contains(t, output, "Virtual Machines")

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, cmd, "esc closes the detail before leaving the view")
	assert.Nil(t, view.Detail())
}

func TestView_SlashRefocusesInput(t *testing.T) {
	view := newTestView(t)
	view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.False(t, view.InputFocused())

	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})

	assert.True(t, view.InputFocused())
	assert.Equal(t, "", view.Filters().Term)
}

func TestView_ArrowsNavigateWhileTyping(t *testing.T) {
	view := newTestView(t)

	view.Update(tea.KeyMsg{Type: tea.KeyDown})

	assert.True(t, view.InputFocused())
	assert.Equal(t, 1, view.list.Selected())
}

func TestView_EscGoesToMenu(t *testing.T) {
	view := newTestView(t)

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	changed, ok := cmd().(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewMenu, changed.View)
}

func TestView_ErrorOccurred(t *testing.T) {
	view := newTestView(t)

	view.Update(messages.ErrorOccurred{Err: errors.New("boom")})

	assert.Contains(t, view.View(), "Error: boom")
}

func TestView_View(t *testing.T) {
	view := newTestView(t)

	output := view.View()

	assert.Contains(t, output, "Service Explorer")
	assert.Contains(t, output, "All Categories")
	assert.Contains(t, output, "All Providers")
	assert.Contains(t, output, "Services (33)")
	assert.Contains(t, output, "33 services")
}

func TestView_View_NotReady(t *testing.T) {
	assert.Equal(t, "Initialising...", NewView(nil, nil, nil).View())
}

func TestView_Reset(t *testing.T) {
	view := newTestView(t)
	typeText(view, "lambda")
	view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	view.Reset()

	assert.True(t, view.InputFocused())
	assert.Equal(t, "", view.Filters().Term)
	assert.Nil(t, view.Detail())
}

func TestNext(t *testing.T) {
	options := []string{"a", "b", "c"}

	assert.Equal(t, "b", next(options, "a"))
	assert.Equal(t, "a", next(options, "c"))
	assert.Equal(t, "a", next(options, "unknown"))
}
