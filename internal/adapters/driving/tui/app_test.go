package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hercnav-labs/hercnav-cli/internal/adapters/driving/tui/messages"
	"github.com/hercnav-labs/hercnav-cli/internal/core/domain"
)

func newTestApp(t *testing.T) *App {
	t.Helper()

	app, err := NewApp(newTestPorts(t))
	require.NoError(t, err)
	return app
}

func TestNewApp(t *testing.T) {
	app := newTestApp(t)

	assert.Equal(t, messages.ViewMenu, app.CurrentView())
	assert.False(t, app.Ready())
}

func TestNewApp_InvalidPorts(t *testing.T) {
	app, err := NewApp(&Ports{})

	assert.Nil(t, app)
	assert.ErrorIs(t, err, ErrMissingWaypointService)
}

func TestApp_WithContext(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	assert.Same(t, app, app.WithContext(ctx))
}

func TestApp_Init(t *testing.T) {
	app := newTestApp(t)

	assert.NotNil(t, app.Init())
}

func TestApp_WindowSizeMakesReady(t *testing.T) {
	app := newTestApp(t)

	model, _ := app.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	updated := model.(*App)
	assert.True(t, updated.Ready())
}

func TestApp_CtrlCQuits(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestApp_ViewChangedSwitchesView(t *testing.T) {
	app := newTestApp(t)

	model, cmd := app.Update(messages.ViewChanged{View: messages.ViewWaypoints})

	updated := model.(*App)
	assert.Equal(t, messages.ViewWaypoints, updated.CurrentView())
	assert.NotNil(t, cmd, "switching to waypoints should trigger a load")
}

func TestApp_ViewChangedResetsAddForm(t *testing.T) {
	app := newTestApp(t)
	app.addWaypointView.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("X")})

	model, _ := app.Update(messages.ViewChanged{View: messages.ViewAddWaypoint})

	updated := model.(*App)
	assert.Equal(t, messages.ViewAddWaypoint, updated.CurrentView())
	assert.Nil(t, updated.addWaypointView.Preview())
}

func TestApp_EscReturnsToMenu(t *testing.T) {
	app := newTestApp(t)
	app.Update(messages.ViewChanged{View: messages.ViewWaypoints})

	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, messages.ViewMenu, model.(*App).CurrentView())
}

func TestApp_QuitFromWaypoints(t *testing.T) {
	app := newTestApp(t)
	app.Update(messages.ViewChanged{View: messages.ViewWaypoints})

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestApp_WaypointsLoadedRoutedToListView(t *testing.T) {
	app := newTestApp(t)
	app.Update(messages.ViewChanged{View: messages.ViewWaypoints})

	model, _ := app.Update(messages.WaypointsLoaded{
		Waypoints: []domain.Waypoint{{Name: "ALPHA", EntryPos: "38TPM3046282643"}},
	})

	updated := model.(*App)
	assert.Len(t, updated.waypointsView.Waypoints(), 1)
}

func TestApp_DatabaseChangedReloadsList(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(messages.DatabaseChangedMsg{})

	assert.NotNil(t, cmd, "a database change should trigger a reload")
}

func TestApp_ErrorOccurred(t *testing.T) {
	app := newTestApp(t)

	model, _ := app.Update(messages.ErrorOccurred{Err: domain.ErrNotFound})

	assert.ErrorIs(t, model.(*App).Err(), domain.ErrNotFound)
}

func TestApp_View_NotReady(t *testing.T) {
	app := newTestApp(t)

	assert.Contains(t, app.View(), "Initialising")
}

func TestApp_View_Help(t *testing.T) {
	app := newTestApp(t)
	app.SetDimensions(100, 40)
	app.Update(messages.ViewChanged{View: messages.ViewHelp})

	view := app.View()

	assert.Contains(t, view, "Help")
	assert.Contains(t, view, "Add waypoint")
}
