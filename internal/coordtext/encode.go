package coordtext

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/hercnav-labs/hercnav-cli/internal/core/domain"
)

// GridPrecision is the precision digit count requested from the grid
// converter: five digits per axis, 1-meter resolution.
const GridPrecision = 5

// GridEncoder produces a grid-reference string for a latitude/longitude
// pair at the given precision. Any adapter satisfying driven.GridConverter
// also satisfies this.
type GridEncoder interface {
	FromLatLon(lat, lon float64, precision int) (string, error)
}

// reZonePrefix extracts the leading grid-zone number: one or two digits
// immediately followed by an uppercase letter.
var reZonePrefix = regexp.MustCompile(`^(\d{1,2})[A-Z]`)

// Encoder produces the entry-position string the aircraft stores. It
// prefers the grid-reference form and falls back to the CNI-MU
// degrees/decimal-minutes form when the grid is unavailable or unsafe.
type Encoder struct {
	grid GridEncoder

	// OnFallback, when set, receives the reason a grid encoding was
	// rejected. The encoded output never carries the reason, so this is
	// the only place it survives.
	OnFallback func(reason string)
}

// NewEncoder creates an encoder. grid may be nil, in which case every
// coordinate encodes in the CNI-MU fallback form.
func NewEncoder(grid GridEncoder) *Encoder {
	return &Encoder{grid: grid}
}

// Encode never fails: every coordinate produces exactly one of the two
// encodings.
//
// Grid zones divisible by 10 fault the aircraft when entered as a grid
// reference, so those coordinates are forced into the CNI-MU form. The
// grid string is returned with embedded spaces stripped; the simulator
// requires a contiguous token.
func (e *Encoder) Encode(c domain.Coordinate) string {
	if e.grid == nil {
		return FormatCNIMU(c)
	}

	grid, err := e.grid.FromLatLon(c.Lat, c.Lon, GridPrecision)
	if err != nil {
		e.fallback("grid conversion failed: " + err.Error())
		return FormatCNIMU(c)
	}

	grid = strings.ReplaceAll(grid, " ", "")

	m := reZonePrefix.FindStringSubmatch(grid)
	if m == nil {
		e.fallback("grid string missing zone prefix: " + grid)
		return FormatCNIMU(c)
	}

	zone, _ := strconv.Atoi(m[1])
	if zone%10 == 0 {
		e.fallback("zone " + m[1] + " triggers the avionics zone fault")
		return FormatCNIMU(c)
	}

	return grid
}

func (e *Encoder) fallback(reason string) {
	if e.OnFallback != nil {
		e.OnFallback(reason)
	}
}
