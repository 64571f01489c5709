package domain

import (
	"fmt"
	"math"
)

// Notation identifies which coordinate grammar matched an input string.
// The value is the label shown to the user, matching what the CNI-MU
// community calls each format.
type Notation string

// Known notations, in waterfall priority order.
const (
	// NotationDDM is degrees and decimal minutes with hemisphere
	// prefixes, e.g. "N 25 06.333 E 056 20.417".
	NotationDDM Notation = "DDM"

	// NotationSuffix is decimal degrees with hemisphere suffixes,
	// e.g. "10.25N, 67.6498W".
	NotationSuffix Notation = "FSE/Suffix"

	// NotationDMS is degrees, minutes and seconds with hemisphere
	// letters anywhere, e.g. "N 25 06 20 E 056 20 25".
	NotationDMS Notation = "DMS Standard"

	// NotationDecimal is a bare signed decimal pair,
	// e.g. "23.241, -83.424".
	NotationDecimal Notation = "Decimal Degrees"

	// NotationGrid is a military grid reference,
	// e.g. "38TPM3046282643".
	NotationGrid Notation = "MGRS Input"
)

// Coordinate is a canonical latitude/longitude pair in decimal degrees.
// North latitudes and east longitudes are positive. Coordinates are
// immutable values produced by the parser or the grid converter and
// consumed within a single request; they are never persisted directly.
type Coordinate struct {
	// Lat is the latitude in decimal degrees, -90 to 90.
	Lat float64

	// Lon is the longitude in decimal degrees, -180 to 180.
	Lon float64
}

// Validate reports whether the coordinate lies inside the valid envelope.
// Parsing is deliberately permissive, so range enforcement happens where a
// user can react: before previewing or persisting a waypoint.
func (c Coordinate) Validate() error {
	if math.IsNaN(c.Lat) || math.IsInf(c.Lat, 0) || c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("%w: latitude %v", ErrCoordinateRange, c.Lat)
	}
	if math.IsNaN(c.Lon) || math.IsInf(c.Lon, 0) || c.Lon < -180 || c.Lon > 180 {
		return fmt.Errorf("%w: longitude %v", ErrCoordinateRange, c.Lon)
	}
	return nil
}

// ParseResult is a recognized coordinate tagged with the notation that
// matched. The notation is informational only; callers use it for user
// feedback, never for control flow.
type ParseResult struct {
	// Coordinate is the canonical value the matched text normalizes to.
	Coordinate Coordinate

	// Notation names the grammar that matched.
	Notation Notation
}
