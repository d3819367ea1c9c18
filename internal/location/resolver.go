// =============================================================================
// Seatcard Sorter - Location Resolver
// =============================================================================
//
// The ticketing export describes a seat with two loosely structured texts:
//
//   section  : "Orchestra - Section 5", "1st Tier Boxes - Box 3", ...
//   location : "ORCH 5:A-12", "GLRY 3:B-7,8", "DRESS 1:C-4 DRESS 2:C-5", ...
//
// This module turns that pair into a normalized level/section/row/seat and a
// canonical location string "LEVEL SECTION:ROW-SEAT".
//
// OUTCOMES:
//   - Resolved   : the seat was understood
//   - Unresolved : the texts are unusable but the run continues; the row is
//                  flagged with the ERROR sentinel and sorts last
//   - error      : the texts are malformed enough that the run must stop
//                  (ErrSection, ErrLocation, ErrSeatNumber)
//
// A location may legitimately match twice when the printed seat spans an
// aisle boundary. Both matches must then agree on the level, the level must
// fit the section, and the aisle letters must be adjacent.
//
// =============================================================================

package location

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/pkg/errors"

	"github.com/ginjaninja78/seatcard-sorter/internal/types"
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrSection is returned when the section text does not name a level.
	ErrSection = errors.New("couldn't parse section")

	// ErrLocation is returned when the location text holds no seat at all.
	ErrLocation = errors.New("couldn't parse location")

	// ErrSeatNumber is returned when a matched seat number does not fit.
	ErrSeatNumber = errors.New("invalid seat number")
)

// =============================================================================
// PATTERNS AND LEVEL TABLE
// =============================================================================

var (
	sectionPattern = regexp.MustCompile(
		`(1st Tier|1st Tier Boxes|2nd Tier|2nd Tier Boxes|Dress|Gallery|Orchestra) - (Box|Section) (\w+)`)

	locationPattern = regexp.MustCompile(
		`((1ST BOX|1ST TIER|2ND BOX|2ND TIER|DRESS|GLRY|ORCH) (\w):(\w|\w\w)-(\d+)(,\d+)*( \w+-\d+)*)`)

	canonicalPattern = regexp.MustCompile(
		`^(1ST BOX|1ST TIER|2ND BOX|2ND TIER|DRESS|GLRY|ORCH) (\w{1,2}):(\w{1,2})-(\d{1,2})$`)
)

// Submatch indexes of locationPattern.
const (
	groupLevel = 2
	groupAisle = 3
	groupRow   = 4
	groupSeat  = 5
)

// Level pairs a level code used in location text with the label used in
// section text.
type Level struct {
	Code  string
	Label string
}

// Levels lists every venue level.
var Levels = []Level{
	{Code: "1ST BOX", Label: "1st Tier Boxes"},
	{Code: "1ST TIER", Label: "1st Tier"},
	{Code: "2ND BOX", Label: "2nd Tier Boxes"},
	{Code: "2ND TIER", Label: "2nd Tier"},
	{Code: "DRESS", Label: "Dress"},
	{Code: "GLRY", Label: "Gallery"},
	{Code: "ORCH", Label: "Orchestra"},
}

var codeByLabel = func() map[string]string {
	m := make(map[string]string, len(Levels))
	for _, l := range Levels {
		m[l.Label] = l.Code
	}
	return m
}()

// CodeForLabel returns the level code for a section label.
func CodeForLabel(label string) (string, bool) {
	code, ok := codeByLabel[label]
	return code, ok
}

// =============================================================================
// RESOLUTION
// =============================================================================

// Status tells a resolved seat from one flagged as unresolved.
type Status int

const (
	Resolved Status = iota
	Unresolved
)

func (s Status) String() string {
	if s == Resolved {
		return "resolved"
	}
	return "unresolved"
}

// Resolution is the outcome of resolving one section/location pair.
// For an Unresolved result Level is types.ErrorLevel and Location is the
// sentinel followed by the raw location text.
type Resolution struct {
	Status   Status
	Level    string
	Section  string
	Row      string
	Seat     uint32
	Location string
}

// Apply copies the resolution onto a result row.
func (r Resolution) Apply(row *types.ResultRow) {
	row.Level = r.Level
	row.Section = r.Section
	row.Row = r.Row
	row.SeatNumber = r.Seat
	row.Location = r.Location
}

// Canonical formats a location as "LEVEL SECTION:ROW-SEAT".
func Canonical(level, section, row string, seat uint32) string {
	return fmt.Sprintf("%s %s:%s-%d", level, section, row, seat)
}

func unresolved(section, raw string) Resolution {
	return Resolution{
		Status:   Unresolved,
		Level:    types.ErrorLevel,
		Section:  section,
		Location: types.ErrorLevel + raw,
	}
}

func resolved(level, section, row string, seat uint32) Resolution {
	return Resolution{
		Status:   Resolved,
		Level:    level,
		Section:  section,
		Row:      row,
		Seat:     seat,
		Location: Canonical(level, section, row, seat),
	}
}

// Resolve interprets a section text and a location text.
func Resolve(section, location string) (Resolution, error) {
	if section == "" || location == "" {
		return unresolved("", location), nil
	}

	sm := sectionPattern.FindStringSubmatch(section)
	if sm == nil {
		return Resolution{}, errors.Wrapf(ErrSection, "%q", section)
	}

	matches := locationPattern.FindAllStringSubmatch(location, -1)
	if len(matches) == 0 {
		return Resolution{}, errors.Wrapf(ErrLocation, "%q", location)
	}

	sectionLevel, _ := CodeForLabel(sm[1])
	sectionCode := sm[3]

	switch len(matches) {
	case 1:
		m := matches[0]
		seat, err := parseSeat(m[groupSeat])
		if err != nil {
			return Resolution{}, err
		}
		if m[groupLevel] != sectionLevel {
			return unresolved(sectionCode, location), nil
		}
		return resolved(m[groupLevel], sectionCode, m[groupRow], seat), nil

	case 2:
		first, second := matches[0], matches[1]
		if first[groupLevel] != second[groupLevel] ||
			first[groupLevel] != sectionLevel ||
			!adjacentAisles(first[groupAisle], second[groupAisle]) {
			return unresolved(sectionCode, location), nil
		}
		seat, err := parseSeat(first[groupSeat])
		if err != nil {
			return Resolution{}, err
		}
		return resolved(first[groupLevel], sectionCode, first[groupRow], seat), nil

	default:
		return unresolved(sectionCode, location), nil
	}
}

// adjacentAisles reports whether two aisle letters are at most one apart.
func adjacentAisles(a, b string) bool {
	d := int(a[0]) - int(b[0])
	return d >= -1 && d <= 1
}

func parseSeat(s string) (uint32, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, errors.Wrapf(ErrSeatNumber, "%q", s)
	}
	return uint32(n), nil
}

// ParseCanonical re-derives level, section, row and seat from a location
// already in "LEVEL SECTION:ROW-SEAT" form. Anything else is Unresolved.
func ParseCanonical(location string) Resolution {
	m := canonicalPattern.FindStringSubmatch(location)
	if m == nil {
		return Resolution{Status: Unresolved, Level: types.ErrorLevel, Location: location}
	}
	seat, _ := strconv.ParseUint(m[4], 10, 32)
	return Resolution{
		Status:   Resolved,
		Level:    m[1],
		Section:  m[2],
		Row:      m[3],
		Seat:     uint32(seat),
		Location: location,
	}
}
