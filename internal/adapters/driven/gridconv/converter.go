// Package gridconv adapts the coordconv MGRS converter to the
// driven.GridConverter port. It is the only place grid mathematics enters
// the tool; the core treats grid strings as opaque.
package gridconv

import (
	"fmt"

	"github.com/golang/geo/s2"
	"github.com/tzneal/coordconv"

	"github.com/hercnav-labs/hercnav-cli/internal/core/domain"
	"github.com/hercnav-labs/hercnav-cli/internal/core/ports/driven"
)

// Ensure Converter implements the interface.
var _ driven.GridConverter = (*Converter)(nil)

// Converter is a stateless MGRS-backed grid converter.
type Converter struct{}

// NewConverter creates a grid converter.
func NewConverter() *Converter {
	return &Converter{}
}

// FromLatLon produces an MGRS string at the given precision. Latitudes
// outside the MGRS bands (beyond roughly ±84°) fail; callers fall back to
// the degrees/decimal-minutes entry form.
func (c *Converter) FromLatLon(lat, lon float64, precision int) (string, error) {
	grid, err := coordconv.DefaultMGRSConverter.ConvertFromGeodetic(s2.LatLngFromDegrees(lat, lon), precision)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrGridConversion, err)
	}
	return fmt.Sprint(grid), nil
}

// ToLatLon converts an MGRS string back to a coordinate.
func (c *Converter) ToLatLon(grid string) (float64, float64, error) {
	latlng, err := coordconv.DefaultMGRSConverter.ConvertToGeodetic(grid)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", domain.ErrGridConversion, err)
	}
	return latlng.Lat.Degrees(), latlng.Lng.Degrees(), nil
}
