package menu

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hercnav-labs/hercnav-cli/internal/adapters/driving/tui/messages"
	"github.com/hercnav-labs/hercnav-cli/internal/adapters/driving/tui/styles"
)

func TestNewView(t *testing.T) {
	s := styles.DefaultStyles()

	view := NewView(s)

	require.NotNil(t, view)
	assert.NotNil(t, view.styles)
	assert.Len(t, view.items, 4)
	assert.Equal(t, 0, view.selected)
}

func TestNewView_NilStyles(t *testing.T) {
	view := NewView(nil)

	require.NotNil(t, view)
	assert.NotNil(t, view.styles)
}

func TestView_Update_Navigation(t *testing.T) {
	view := NewView(nil)

	down := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}
	view.Update(down)
	assert.Equal(t, 1, view.selected)
	view.Update(down)
	view.Update(down)
	assert.Equal(t, 3, view.selected)

	// Boundary - can't go past last item
	view.Update(down)
	assert.Equal(t, 3, view.selected)

	up := tea.KeyMsg{Type: tea.KeyUp}
	view.Update(up)
	assert.Equal(t, 2, view.selected)
}

func TestView_Update_Enter_ViewChange(t *testing.T) {
	view := NewView(nil)
	view.selected = 0 // Waypoints

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	result := cmd()
	changed, ok := result.(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewWaypoints, changed.View)
}

func TestView_Update_Enter_AddWaypoint(t *testing.T) {
	view := NewView(nil)
	view.selected = 1 // Add Waypoint

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	changed, ok := cmd().(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewAddWaypoint, changed.View)
}

func TestView_Update_Enter_Quit(t *testing.T) {
	view := NewView(nil)
	view.selected = 3 // Quit

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
}

func TestView_View_Ready(t *testing.T) {
	view := NewView(nil)
	view.ready = true

	output := view.View()

	assert.Contains(t, output, "hercnav")
	assert.Contains(t, output, "Waypoints")
	assert.Contains(t, output, "Add Waypoint")
	assert.Contains(t, output, "Help")
	assert.Contains(t, output, "Quit")
	assert.Contains(t, output, ">")
}

func TestView_View_NotReady(t *testing.T) {
	view := NewView(nil)

	assert.Contains(t, view.View(), "Initialising")
}

func TestView_SetDimensions(t *testing.T) {
	view := NewView(nil)

	view.SetDimensions(120, 60)

	assert.Equal(t, 120, view.width)
	assert.Equal(t, 60, view.height)
	assert.True(t, view.ready)
}
