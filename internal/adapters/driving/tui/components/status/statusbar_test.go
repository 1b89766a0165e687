package status

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/cloudcompass/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/cloudcompass/internal/adapters/driving/tui/styles"
)

func TestNewBar(t *testing.T) {
	bar := NewBar(styles.DefaultStyles(), keymap.DefaultKeyMap())

	require.NotNil(t, bar)
	assert.Equal(t, StateReady, bar.State())
	assert.Equal(t, "", bar.Message())
	assert.Equal(t, 0, bar.ResultCount())
	assert.Equal(t, 80, bar.Width())
}

func TestNewBar_NilDependencies(t *testing.T) {
	bar := NewBar(nil, nil)

	require.NotNil(t, bar)
	assert.NotNil(t, bar.styles)
	assert.NotNil(t, bar.keymap)
	assert.Len(t, bar.hints, 2)
}

func TestBar_InitAndUpdate(t *testing.T) {
	bar := NewBar(nil, nil)

	assert.Nil(t, bar.Init())

	updated, cmd := bar.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, bar, updated)
	assert.Nil(t, cmd)
}

func TestBar_View_States(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*Bar)
		want  string
	}{
		{"ready", func(*Bar) {}, "Ready"},
		{"ready with message", func(b *Bar) { b.SetMessage("Saved") }, "Saved"},
		{"loading", func(b *Bar) { b.SetState(StateLoading) }, "Loading..."},
		{"error", func(b *Bar) { b.SetState(StateError) }, "Error"},
		{"error with message", func(b *Bar) {
			b.SetState(StateError)
			b.SetMessage(errors.New("boom").Error())
		}, "Error: boom"},
		{"results", func(b *Bar) { b.SetResultCount(11) }, "11 services"},
		{"single result", func(b *Bar) { b.SetResultCount(1) }, "1 service"},
		{"results with message", func(b *Bar) {
			b.SetResultCount(2)
			b.SetMessage("2/3 selected")
		}, "2 services · 2/3 selected"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := NewBar(nil, nil)
			bar.SetWidth(120)
			tt.setup(bar)

			assert.Contains(t, bar.View(), tt.want)
		})
	}
}

func TestBar_Hints(t *testing.T) {
	km := keymap.DefaultKeyMap()
	bar := NewBar(nil, km)
	bar.SetWidth(120)

	assert.Contains(t, bar.View(), "esc: back")

	bar.SetHints(km.CompareHelp())
	view := bar.View()
	assert.Contains(t, view, "space: toggle")
}

func TestBar_SetResultCount(t *testing.T) {
	bar := NewBar(nil, nil)

	bar.SetResultCount(5)

	assert.Equal(t, 5, bar.ResultCount())
	assert.Equal(t, StateResults, bar.State())
}

func TestBar_Clear(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateError)
	bar.SetMessage("oops")
	bar.SetResultCount(3)

	bar.Clear()

	assert.Equal(t, StateReady, bar.State())
	assert.Equal(t, "", bar.Message())
	assert.Equal(t, 0, bar.ResultCount())
}
