package coordtext

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/hercnav-labs/hercnav-cli/internal/core/domain"
)

// GridDecoder converts a grid-reference string back to latitude/longitude.
// It is the only collaborator the parser leaves the process for; any
// adapter satisfying driven.GridConverter also satisfies this.
type GridDecoder interface {
	ToLatLon(grid string) (lat, lon float64, err error)
}

// Notation grammars, each anchored at the start of the normalized text.
var (
	// "N 25 06.333 E 056 20.417": hemisphere prefix, degrees, then
	// decimal minutes. Degree mark, caret or whitespace separates the
	// two numbers, so CNI-MU output parses back through this branch.
	reDDM = regexp.MustCompile(`^([NS])\s*(\d+)[°\s^]+(\d+(?:\.\d+)?)'?\s*,?\s*([EW])\s*(\d+)[°\s^]+(\d+(?:\.\d+)?)'?`)

	// "10.25N, 67.6498W": bare decimal followed by a hemisphere suffix.
	reSuffix = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*([NS]),?\s*(\d+(?:\.\d+)?)\s*([EW])`)

	// "23.241, -83.424": a signed pair occupying the whole text.
	reDecimal = regexp.MustCompile(`^(-?\d+(?:\.\d+)?)[,\s]+(-?\d+(?:\.\d+)?)$`)

	// Token scanners for the loosely laid out DMS notation.
	reNumber = regexp.MustCompile(`\d+(?:\.\d+)?`)
	reHemi   = regexp.MustCompile(`[NSEW]`)

	// Grid references start with a one or two digit zone and a letter.
	reGridStart = regexp.MustCompile(`^\d{1,2}[A-Z]`)
)

// Parser recognises coordinate text in one of five notations, tried in a
// fixed priority order with the first match winning. The zero value parses
// everything except grid references; supply a GridDecoder to enable those.
type Parser struct {
	grid GridDecoder
}

// NewParser creates a parser. grid may be nil, in which case grid-reference
// input is reported as unrecognized.
func NewParser(grid GridDecoder) *Parser {
	return &Parser{grid: grid}
}

// Parse normalises text (trim, uppercase) and runs the notation waterfall.
// Matched values are not range-validated here; callers decide what to do
// with an out-of-range coordinate. Unmatched text returns
// domain.ErrUnrecognizedFormat, never a panic.
func (p *Parser) Parse(text string) (domain.ParseResult, error) {
	text = strings.ToUpper(strings.TrimSpace(text))

	if m := reDDM.FindStringSubmatch(text); m != nil {
		lat := parseNum(m[2]) + parseNum(m[3])/60.0
		lon := parseNum(m[5]) + parseNum(m[6])/60.0
		return signed(lat, m[1], lon, m[4], domain.NotationDDM), nil
	}

	if m := reSuffix.FindStringSubmatch(text); m != nil {
		return signed(parseNum(m[1]), m[2], parseNum(m[3]), m[4], domain.NotationSuffix), nil
	}

	if result, ok := p.parseDMS(text); ok {
		return result, nil
	}

	if m := reDecimal.FindStringSubmatch(text); m != nil {
		return domain.ParseResult{
			Coordinate: domain.Coordinate{Lat: parseNum(m[1]), Lon: parseNum(m[2])},
			Notation:   domain.NotationDecimal,
		}, nil
	}

	if result, ok := p.parseGrid(text); ok {
		return result, nil
	}

	return domain.ParseResult{}, domain.ErrUnrecognizedFormat
}

// parseDMS matches degrees/minutes/seconds laid out loosely: at least six
// numbers and two hemisphere letters anywhere in the text. The first three
// numbers are latitude, the next three longitude. The two letters are
// classified by identity rather than position, and must cover both axes;
// two latitude letters make the notation non-matching.
func (p *Parser) parseDMS(text string) (domain.ParseResult, bool) {
	nums := reNumber.FindAllString(text, -1)
	dirs := reHemi.FindAllString(text, -1)
	if len(nums) < 6 || len(dirs) < 2 {
		return domain.ParseResult{}, false
	}

	var ns, ew string
	switch {
	case isLatLetter(dirs[0]) && isLonLetter(dirs[1]):
		ns, ew = dirs[0], dirs[1]
	case isLonLetter(dirs[0]) && isLatLetter(dirs[1]):
		ns, ew = dirs[1], dirs[0]
	default:
		return domain.ParseResult{}, false
	}

	lat := parseNum(nums[0]) + parseNum(nums[1])/60.0 + parseNum(nums[2])/3600.0
	lon := parseNum(nums[3]) + parseNum(nums[4])/60.0 + parseNum(nums[5])/3600.0
	return signed(lat, ns, lon, ew, domain.NotationDMS), true
}

// parseGrid treats text starting with a zone prefix as a grid reference.
// Conversion failures make the notation non-matching; they never propagate.
func (p *Parser) parseGrid(text string) (domain.ParseResult, bool) {
	if p.grid == nil || !reGridStart.MatchString(text) {
		return domain.ParseResult{}, false
	}

	lat, lon, err := p.grid.ToLatLon(strings.ReplaceAll(text, " ", ""))
	if err != nil {
		return domain.ParseResult{}, false
	}
	return domain.ParseResult{
		Coordinate: domain.Coordinate{Lat: lat, Lon: lon},
		Notation:   domain.NotationGrid,
	}, true
}

func isLatLetter(s string) bool { return s == "N" || s == "S" }

func isLonLetter(s string) bool { return s == "E" || s == "W" }

// signed applies hemisphere letters to unsigned magnitudes.
func signed(lat float64, ns string, lon float64, ew string, n domain.Notation) domain.ParseResult {
	if ns == "S" {
		lat = -lat
	}
	if ew == "W" {
		lon = -lon
	}
	return domain.ParseResult{
		Coordinate: domain.Coordinate{Lat: lat, Lon: lon},
		Notation:   n,
	}
}

// parseNum converts a regexp-matched numeric token. The grammars only ever
// capture valid float syntax, so the error is unreachable.
func parseNum(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}
