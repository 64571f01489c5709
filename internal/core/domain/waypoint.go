package domain

import (
	"fmt"
	"strings"
)

// MaxWaypointNameLen is the longest name the CNI-MU accepts for a custom
// navigation point.
const MaxWaypointNameLen = 5

// MetersPerFoot converts altitudes between the feet shown in the cockpit
// and the meters the simulator database stores.
const MetersPerFoot = 0.3048

// Waypoint is a custom navigation point as the simulator stores it.
// EntryPos carries the exact string the aircraft reads back; the tool
// never re-derives it from Lat/Lon after insertion.
type Waypoint struct {
	// Name is the point's identifier, at most MaxWaypointNameLen
	// characters, stored uppercase. Names are unique per database.
	Name string

	// EntryPos is the encoded entry-position string (grid reference or
	// CNI-MU degrees/decimal-minutes form).
	EntryPos string

	// Lat is the canonical latitude in decimal degrees.
	Lat float64

	// Lon is the canonical longitude in decimal degrees.
	Lon float64

	// AltMeters is the point elevation in meters. Nil means unset; the
	// simulator substitutes its own default (displayed as 6562 ft).
	AltMeters *float64
}

// Coordinate returns the waypoint's canonical coordinate.
func (w Waypoint) Coordinate() Coordinate {
	return Coordinate{Lat: w.Lat, Lon: w.Lon}
}

// AltFeet returns the elevation in feet and whether one is set.
func (w Waypoint) AltFeet() (float64, bool) {
	if w.AltMeters == nil {
		return 0, false
	}
	return *w.AltMeters / MetersPerFoot, true
}

// NormalizeWaypointName uppercases and trims a user-supplied name the same
// way the cockpit keypad would.
func NormalizeWaypointName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// ValidateWaypointName checks a normalized name against the CNI-MU
// constraints.
func ValidateWaypointName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > MaxWaypointNameLen {
		return fmt.Errorf("%w: name cannot exceed %d characters", ErrInvalidInput, MaxWaypointNameLen)
	}
	return nil
}
