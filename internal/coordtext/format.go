package coordtext

import (
	"fmt"
	"math"

	"github.com/hercnav-labs/hercnav-cli/internal/core/domain"
)

// FormatCNIMU renders a coordinate in the degrees/decimal-minutes layout the
// CNI-MU scratchpad accepts: "N52^00.00 E000^00.00". The separator is a
// caret because the aircraft rejects the degree glyph. Degrees are
// zero-padded to two digits for latitude and three for longitude; minutes
// are always five characters (two digits, point, two digits).
func FormatCNIMU(c domain.Coordinate) string {
	return formatAxis(c.Lat, true) + " " + formatAxis(c.Lon, false)
}

func formatAxis(value float64, isLat bool) string {
	var hemi byte
	if isLat {
		hemi = 'N'
		if value < 0 {
			hemi = 'S'
		}
	} else {
		hemi = 'E'
		if value < 0 {
			hemi = 'W'
		}
	}

	abs := math.Abs(value)
	deg := int(abs)
	min := (abs - float64(deg)) * 60.0

	smin := fmt.Sprintf("%05.2f", min)
	// Roundoff can render 59.9999 as "60.00"; carry into degrees.
	if smin[0] == '6' {
		smin = "00.00"
		deg++
	}

	degWidth := 2
	if !isLat {
		degWidth = 3
	}
	return fmt.Sprintf("%c%0*d^%s", hemi, degWidth, deg, smin)
}
