package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hercnav-labs/hercnav-cli/internal/core/domain"
)

func TestAddCmd_Use(t *testing.T) {
	assert.Equal(t, "add [name] [coordinates]", addCmd.Use)
}

func TestAddCmd_RequiresTwoArgs(t *testing.T) {
	_, err := executeCommand(t, "add", "BGW01")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 2 arg(s)")
}

func TestAddCmd_AddsWaypoint(t *testing.T) {
	store := withMemoryServices(t)

	out, err := executeCommand(t, "add", "bgw01", "33.2625, 44.2325")

	require.NoError(t, err)
	assert.Contains(t, out, "Added BGW01")

	wp, err := store.GetByName(context.Background(), "BGW01")
	require.NoError(t, err)
	assert.Contains(t, wp.EntryPos, "38")
	assert.Nil(t, wp.AltMeters)
}

func TestAddCmd_AltitudeFlag(t *testing.T) {
	store := withMemoryServices(t)

	out, err := executeCommand(t, "add", "BGW01", "33.2625, 44.2325", "--alt-ft", "115")

	require.NoError(t, err)
	assert.Contains(t, out, "Elevation: 115 ft")

	wp, err := store.GetByName(context.Background(), "BGW01")
	require.NoError(t, err)
	require.NotNil(t, wp.AltMeters)
	assert.InDelta(t, 115*domain.MetersPerFoot, *wp.AltMeters, 1e-9)
}

func TestAddCmd_UnrecognizedInput(t *testing.T) {
	withMemoryServices(t)

	_, err := executeCommand(t, "add", "BGW01", "not coordinates")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnrecognizedFormat)
}

func TestListCmd_Empty(t *testing.T) {
	withMemoryServices(t)

	out, err := executeCommand(t, "list")

	require.NoError(t, err)
	assert.Contains(t, out, "No waypoints stored.")
}

func TestListCmd_ShowsWaypoints(t *testing.T) {
	store := withMemoryServices(t)
	alt := 35.052
	require.NoError(t, store.Add(context.Background(), domain.Waypoint{
		Name:      "ALPHA",
		EntryPos:  "38TPM3046282643",
		Lat:       33.2625,
		Lon:       44.2325,
		AltMeters: &alt,
	}))

	out, err := executeCommand(t, "list")

	require.NoError(t, err)
	assert.Contains(t, out, "ALPHA")
	assert.Contains(t, out, "38TPM3046282643")
	assert.Contains(t, out, "115")
}

func TestRemoveCmd_RequiresNameOrAll(t *testing.T) {
	withMemoryServices(t)

	_, err := executeCommand(t, "remove")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "--all")
}

func TestRemoveCmd_ByName(t *testing.T) {
	store := withMemoryServices(t)
	require.NoError(t, store.Add(context.Background(), domain.Waypoint{Name: "ALPHA"}))

	out, err := executeCommand(t, "remove", "alpha")

	require.NoError(t, err)
	assert.Contains(t, out, "Removed ALPHA")
}

func TestRemoveCmd_Missing(t *testing.T) {
	withMemoryServices(t)

	_, err := executeCommand(t, "remove", "GHOST")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRemoveCmd_All(t *testing.T) {
	store := withMemoryServices(t)
	ctx := context.Background()
	require.NoError(t, store.Add(ctx, domain.Waypoint{Name: "ALPHA"}))
	require.NoError(t, store.Add(ctx, domain.Waypoint{Name: "BRAVO"}))

	defer func() { removeAll = false }()
	out, err := executeCommand(t, "remove", "--all")

	require.NoError(t, err)
	assert.Contains(t, out, "Removed 2 waypoint(s)")
	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}
