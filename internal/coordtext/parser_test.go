package coordtext

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hercnav-labs/hercnav-cli/internal/core/domain"
)

// stubConverter is a canned grid converter for parser and encoder tests.
type stubConverter struct {
	grid    string
	gridErr error
	lat     float64
	lon     float64
	toErr   error
}

func (s *stubConverter) FromLatLon(_, _ float64, _ int) (string, error) {
	return s.grid, s.gridErr
}

func (s *stubConverter) ToLatLon(_ string) (float64, float64, error) {
	return s.lat, s.lon, s.toErr
}

func TestParser_DDM(t *testing.T) {
	p := NewParser(nil)

	result, err := p.Parse("N 25 06.333 E 056 20.417")

	require.NoError(t, err)
	assert.Equal(t, domain.NotationDDM, result.Notation)
	assert.InDelta(t, 25.10555, result.Coordinate.Lat, 0.0001)
	assert.InDelta(t, 56.34028, result.Coordinate.Lon, 0.0001)
}

func TestParser_DDM_Variants(t *testing.T) {
	p := NewParser(nil)

	tests := []struct {
		name string
		text string
		lat  float64
		lon  float64
	}{
		{
			name: "caret separators",
			text: "N52^30.00 E013^15.00",
			lat:  52.5,
			lon:  13.25,
		},
		{
			name: "degree marks and minute ticks",
			text: "S 33°51.4' E 151°12.9'",
			lat:  -33.856666,
			lon:  151.215,
		},
		{
			name: "comma between axes",
			text: "N 10 30.0, W 020 15.0",
			lat:  10.5,
			lon:  -20.25,
		},
		{
			name: "lowercase and padding",
			text: "  n 25 06.333 e 056 20.417  ",
			lat:  25.10555,
			lon:  56.34028,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := p.Parse(tt.text)
			require.NoError(t, err)
			assert.Equal(t, domain.NotationDDM, result.Notation)
			assert.InDelta(t, tt.lat, result.Coordinate.Lat, 0.0001)
			assert.InDelta(t, tt.lon, result.Coordinate.Lon, 0.0001)
		})
	}
}

func TestParser_Suffix(t *testing.T) {
	p := NewParser(nil)

	result, err := p.Parse("10.25N, 67.6498W")

	require.NoError(t, err)
	assert.Equal(t, domain.NotationSuffix, result.Notation)
	assert.Equal(t, 10.25, result.Coordinate.Lat)
	assert.Equal(t, -67.6498, result.Coordinate.Lon)
}

func TestParser_Suffix_SouthEast(t *testing.T) {
	p := NewParser(nil)

	result, err := p.Parse("33.85 S 151.21 E")

	require.NoError(t, err)
	assert.Equal(t, domain.NotationSuffix, result.Notation)
	assert.Equal(t, -33.85, result.Coordinate.Lat)
	assert.Equal(t, 151.21, result.Coordinate.Lon)
}

func TestParser_DMS(t *testing.T) {
	p := NewParser(nil)

	result, err := p.Parse("N23 12 14 E 52 32 12")

	require.NoError(t, err)
	assert.Equal(t, domain.NotationDMS, result.Notation)
	assert.InDelta(t, 23.0+12.0/60+14.0/3600, result.Coordinate.Lat, 1e-9)
	assert.InDelta(t, 52.0+32.0/60+12.0/3600, result.Coordinate.Lon, 1e-9)
}

func TestParser_DMS_LettersClassifiedByIdentity(t *testing.T) {
	p := NewParser(nil)

	// Longitude letter first: W still signs longitude, S latitude.
	result, err := p.Parse("W 83 25 24 S 23 14 28")

	require.NoError(t, err)
	assert.Equal(t, domain.NotationDMS, result.Notation)
	assert.Negative(t, result.Coordinate.Lat)
	assert.Negative(t, result.Coordinate.Lon)
	assert.InDelta(t, -(83.0+25.0/60+24.0/3600), result.Coordinate.Lat, 1e-9)
	assert.InDelta(t, -(23.0+14.0/60+28.0/3600), result.Coordinate.Lon, 1e-9)
}

func TestParser_DMS_TwinLatitudeLettersRejected(t *testing.T) {
	p := NewParser(nil)

	// Two latitude letters cover only one axis; the DMS branch must not
	// claim the text.
	_, err := p.Parse("N 10 20 30 S 40 50 10")

	assert.ErrorIs(t, err, domain.ErrUnrecognizedFormat)
}

func TestParser_DecimalDegrees(t *testing.T) {
	p := NewParser(nil)

	result, err := p.Parse("23.241, -83.424")

	require.NoError(t, err)
	assert.Equal(t, domain.NotationDecimal, result.Notation)
	assert.Equal(t, 23.241, result.Coordinate.Lat)
	assert.Equal(t, -83.424, result.Coordinate.Lon)
}

func TestParser_DecimalDegrees_RequiresWholeText(t *testing.T) {
	p := NewParser(nil)

	// Trailing junk breaks the end anchor.
	_, err := p.Parse("23.241, -83.424 and more")

	assert.ErrorIs(t, err, domain.ErrUnrecognizedFormat)
}

func TestParser_Grid(t *testing.T) {
	conv := &stubConverter{lat: 33.2625, lon: 44.2325}
	p := NewParser(conv)

	result, err := p.Parse("38TPM 30462 82643")

	require.NoError(t, err)
	assert.Equal(t, domain.NotationGrid, result.Notation)
	assert.Equal(t, 33.2625, result.Coordinate.Lat)
	assert.Equal(t, 44.2325, result.Coordinate.Lon)
}

func TestParser_Grid_ConversionFailureIsNonMatch(t *testing.T) {
	conv := &stubConverter{toErr: errors.New("malformed grid")}
	p := NewParser(conv)

	_, err := p.Parse("38TPM3046282643")

	assert.ErrorIs(t, err, domain.ErrUnrecognizedFormat)
}

func TestParser_Grid_NoDecoderIsNonMatch(t *testing.T) {
	p := NewParser(nil)

	_, err := p.Parse("38TPM3046282643")

	assert.ErrorIs(t, err, domain.ErrUnrecognizedFormat)
}

func TestParser_Unrecognized(t *testing.T) {
	p := NewParser(nil)

	tests := []string{
		"",
		"   ",
		"somewhere over the rainbow",
		"N only",
		"12.5",
	}

	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			_, err := p.Parse(text)
			assert.ErrorIs(t, err, domain.ErrUnrecognizedFormat)
		})
	}
}

func TestParser_PriorityFirstMatchWins(t *testing.T) {
	p := NewParser(nil)

	// The text satisfies both the DDM grammar (as a prefix) and the DMS
	// token counts (six numbers, two hemisphere letters); the earlier
	// notation must win.
	result, err := p.Parse("N 25 06.333 E 056 20.417 1 2")

	require.NoError(t, err)
	assert.Equal(t, domain.NotationDDM, result.Notation)
	assert.InDelta(t, 25.10555, result.Coordinate.Lat, 1e-4)
	assert.InDelta(t, 56.34028, result.Coordinate.Lon, 1e-4)
}

func TestParser_NoRangeValidation(t *testing.T) {
	p := NewParser(nil)

	// Parsing stays permissive; the waypoint service rejects this later.
	result, err := p.Parse("95.0N, 190.0E")

	require.NoError(t, err)
	assert.Equal(t, domain.NotationSuffix, result.Notation)
	assert.Equal(t, 95.0, result.Coordinate.Lat)
	assert.Error(t, result.Coordinate.Validate())
}

func TestParser_Boundaries(t *testing.T) {
	p := NewParser(nil)

	tests := []struct {
		text string
		lat  float64
		lon  float64
	}{
		{"90.0N, 0.0E", 90, 0},
		{"90.0S, 0.0E", -90, 0},
		{"0.0N, 180.0E", 0, 180},
		{"0.0N, 180.0W", 0, -180},
		{"0, 0", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			result, err := p.Parse(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.lat, result.Coordinate.Lat)
			assert.Equal(t, tt.lon, result.Coordinate.Lon)
			require.NoError(t, result.Coordinate.Validate())
		})
	}
}
