// Package flightplan reads and writes waypoint lists as CSV, the exchange
// format between hercnav and external planning tools.
//
// The column layout is name,coords,alt_ft with a header row. The coords
// column carries free-form coordinate text in any notation the parser
// recognises, so exported plans can be edited by hand and re-imported.
package flightplan

import (
	"fmt"
	"io"

	"github.com/jszwec/csvutil"

	"github.com/hercnav-labs/hercnav-cli/internal/core/domain"
)

// Record is one flight-plan row.
type Record struct {
	// Name is the waypoint identifier, up to five characters.
	Name string `csv:"name"`

	// Coords is coordinate text in any recognised notation.
	Coords string `csv:"coords"`

	// AltFeet is the elevation in feet; empty means unset.
	AltFeet *float64 `csv:"alt_ft"`
}

// Read decodes flight-plan records. The first row must be the header.
func Read(r io.Reader) ([]Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading flight plan: %w", err)
	}

	var records []Record
	if err := csvutil.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decoding flight plan: %w", err)
	}
	return records, nil
}

// Write encodes flight-plan records with a header row.
func Write(w io.Writer, records []Record) error {
	data, err := csvutil.Marshal(records)
	if err != nil {
		return fmt.Errorf("encoding flight plan: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing flight plan: %w", err)
	}
	return nil
}

// FromWaypoints converts stored waypoints to flight-plan records. Coords
// are rendered in the degrees/decimal-minutes display form via render so
// the file round-trips through the parser.
func FromWaypoints(waypoints []domain.Waypoint, render func(domain.Coordinate) string) []Record {
	records := make([]Record, 0, len(waypoints))
	for _, wp := range waypoints {
		rec := Record{
			Name:   wp.Name,
			Coords: render(wp.Coordinate()),
		}
		if feet, ok := wp.AltFeet(); ok {
			f := feet
			rec.AltFeet = &f
		}
		records = append(records, rec)
	}
	return records
}
