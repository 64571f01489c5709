package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hercnav-labs/hercnav-cli/internal/adapters/driven/gridconv"
	"github.com/hercnav-labs/hercnav-cli/internal/adapters/driven/storage/memory"
	"github.com/hercnav-labs/hercnav-cli/internal/core/services"
)

func newTestPorts(t *testing.T) *Ports {
	t.Helper()

	store := memory.NewWaypointStore()
	converter := gridconv.NewConverter()
	configStore := memory.NewConfigStore()

	return NewPorts(
		services.NewWaypointService(store, converter),
		services.NewCalibrationService(store, converter),
		services.NewSettingsService(configStore),
	)
}

func TestNewPorts(t *testing.T) {
	ports := newTestPorts(t)

	require.NotNil(t, ports)
	assert.NotNil(t, ports.Waypoint)
	assert.NotNil(t, ports.Calibration)
	assert.NotNil(t, ports.Settings)
}

func TestPorts_Validate(t *testing.T) {
	ports := newTestPorts(t)

	assert.NoError(t, ports.Validate())
}

func TestPorts_Validate_MissingWaypointService(t *testing.T) {
	ports := &Ports{}

	assert.ErrorIs(t, ports.Validate(), ErrMissingWaypointService)
}

func TestPorts_Validate_Nil(t *testing.T) {
	var ports *Ports

	assert.ErrorIs(t, ports.Validate(), ErrInvalidPorts)
}

func TestPorts_Validate_OptionalServices(t *testing.T) {
	ports := newTestPorts(t)
	ports.Calibration = nil
	ports.Settings = nil

	assert.NoError(t, ports.Validate())
}
