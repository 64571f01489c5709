package status

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hercnav-labs/hercnav-cli/internal/adapters/driving/tui/keymap"
	"github.com/hercnav-labs/hercnav-cli/internal/adapters/driving/tui/styles"
)

func TestNewBar(t *testing.T) {
	bar := NewBar(styles.DefaultStyles(), keymap.DefaultKeyMap())

	assert.Equal(t, StateReady, bar.State())
	assert.Equal(t, 80, bar.Width())
	assert.Zero(t, bar.WaypointCount())
}

func TestNewBar_NilArgs(t *testing.T) {
	bar := NewBar(nil, nil)

	assert.NotNil(t, bar)
	assert.NotPanics(t, func() { _ = bar.View() })
}

func TestBar_View_Ready(t *testing.T) {
	bar := NewBar(styles.DefaultStyles(), keymap.DefaultKeyMap())

	assert.Contains(t, bar.View(), "Ready")
}

func TestBar_View_Loading(t *testing.T) {
	bar := NewBar(styles.DefaultStyles(), keymap.DefaultKeyMap())

	bar.SetState(StateLoading)

	assert.Contains(t, bar.View(), "Loading...")
}

func TestBar_View_Error(t *testing.T) {
	bar := NewBar(styles.DefaultStyles(), keymap.DefaultKeyMap())

	bar.SetState(StateError)
	bar.SetMessage("database missing")

	assert.Contains(t, bar.View(), "Error: database missing")
}

func TestBar_View_WaypointCount(t *testing.T) {
	bar := NewBar(styles.DefaultStyles(), keymap.DefaultKeyMap())

	bar.SetState(StateWaypoints)
	bar.SetWaypointCount(4)

	assert.Contains(t, bar.View(), "4 waypoints")
}

func TestBar_WaypointHints(t *testing.T) {
	bar := NewBar(styles.DefaultStyles(), keymap.DefaultKeyMap())

	bar.SetState(StateWaypoints)
	bar.SetWaypointCount(2)

	view := bar.View()
	assert.Contains(t, view, "a:")
	assert.Contains(t, view, "d:")
}

func TestBar_Clear(t *testing.T) {
	bar := NewBar(styles.DefaultStyles(), keymap.DefaultKeyMap())
	bar.SetState(StateError)
	bar.SetMessage("boom")
	bar.SetWaypointCount(7)

	bar.Clear()

	assert.Equal(t, StateReady, bar.State())
	assert.Empty(t, bar.Message())
	assert.Zero(t, bar.WaypointCount())
}
