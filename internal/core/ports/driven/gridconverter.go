package driven

// GridConverter converts between latitude/longitude pairs and grid-reference
// strings (MGRS-style, zone-prefixed). The grid mathematics lives entirely
// behind this port; the core only sees opaque strings and failures.
//
// Both directions may fail (polar latitudes have no grid zone and user
// grid strings can be malformed) and every caller in the core recovers
// locally, so implementations should return descriptive errors rather than
// attempt retries.
type GridConverter interface {
	// FromLatLon produces a grid-reference string at the given precision
	// (digits per axis; 5 is 1-meter resolution).
	FromLatLon(lat, lon float64, precision int) (string, error)

	// ToLatLon converts a grid-reference string back to a coordinate.
	ToLatLon(grid string) (lat, lon float64, err error)
}
