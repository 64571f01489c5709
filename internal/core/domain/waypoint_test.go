package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWaypoint_Coordinate(t *testing.T) {
	wp := Waypoint{Name: "BGW01", Lat: 33.2625, Lon: 44.2325}

	assert.Equal(t, Coordinate{Lat: 33.2625, Lon: 44.2325}, wp.Coordinate())
}

func TestWaypoint_AltFeet(t *testing.T) {
	meters := 100 * MetersPerFoot
	wp := Waypoint{Name: "ALT01", AltMeters: &meters}

	feet, ok := wp.AltFeet()

	assert.True(t, ok)
	assert.InDelta(t, 100, feet, 1e-9)
}

func TestWaypoint_AltFeet_Unset(t *testing.T) {
	wp := Waypoint{Name: "BGW01"}

	feet, ok := wp.AltFeet()

	assert.False(t, ok)
	assert.Zero(t, feet)
}

func TestNormalizeWaypointName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"bgw01", "BGW01"},
		{"  alpha ", "ALPHA"},
		{"A", "A"},
		{"", ""},
		{"  ", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeWaypointName(tt.input))
	}
}

func TestValidateWaypointName(t *testing.T) {
	assert.NoError(t, ValidateWaypointName("BGW01"))
	assert.NoError(t, ValidateWaypointName("A"))
	assert.ErrorIs(t, ValidateWaypointName(""), ErrInvalidInput)
	assert.ErrorIs(t, ValidateWaypointName("TOOLONG"), ErrInvalidInput)
}
