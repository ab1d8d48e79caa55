package dates

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// OutputLayout is the RFC-822-style layout used for every timestamp in the
// feed: abbreviated weekday, day, abbreviated month, year, clock time and a
// signed four-digit UTC offset.
const OutputLayout = "Mon, 02 Jan 2006 15:04:05 -0700"

const zoneName = "America/Los_Angeles"

// Normalizer converts free-text date strings into formatted timestamps in
// Belvedere's civil timezone. Now supplies the clock for the "no date found"
// fallback; tests replace it to pin the output.
type Normalizer struct {
	loc *time.Location // nil when IANA zone data is unavailable
	Now func() time.Time
}

// NewNormalizer resolves the Pacific zone from the system's zone database.
// When the database is missing the normalizer degrades to fixed PST/PDT
// zones derived from SeasonalOffsetFor.
func NewNormalizer() *Normalizer {
	loc, err := time.LoadLocation(zoneName)
	if err != nil {
		loc = nil
	}
	return &Normalizer{loc: loc, Now: time.Now}
}

// Normalize parses dateText and formats it per OutputLayout. Date-only input
// is anchored to noon local time so the civil date cannot shift across the
// UTC boundary, and the offset is resolved for the date in question. Input
// that cannot be parsed at all degrades to the current Pacific time.
//
// Known limitation: the manual fallback parser only understands the
// "<MonthName> <Day>, <Year>" shape, so numeric dates that the free-form
// parser rejects fall through to the current-time default.
func (n *Normalizer) Normalize(dateText string) string {
	dateText = strings.TrimSpace(dateText)
	if dateText == "" {
		return n.CurrentTimestamp()
	}
	if t, err := n.parseFreeForm(dateText); err == nil {
		return t.Format(OutputLayout)
	}
	if t, ok := n.parseMonthName(dateText); ok {
		return t.Format(OutputLayout)
	}
	return n.CurrentTimestamp()
}

// CurrentTimestamp formats the current moment in the Pacific zone. The
// seasonal offset here follows today's date, not any article date.
func (n *Normalizer) CurrentTimestamp() string {
	now := n.Now()
	if n.loc != nil {
		return now.In(n.loc).Format(OutputLayout)
	}
	return now.In(FixedZoneFor(now)).Format(OutputLayout)
}

func (n *Normalizer) parseFreeForm(dateText string) (time.Time, error) {
	loc := n.loc
	if loc == nil {
		loc = time.UTC
	}
	t, err := dateparse.ParseIn(dateText, loc)
	if err != nil {
		return time.Time{}, err
	}

	// dateparse yields midnight for date-only strings; treat that as "no
	// time of day given" and re-anchor to noon. A genuine midnight
	// timestamp is indistinguishable and moves to noon as well.
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 {
		return n.atNoon(t.Year(), t.Month(), t.Day()), nil
	}
	if n.loc == nil {
		t = time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, FixedZoneFor(t))
	}
	return t, nil
}

var monthNameDate = regexp.MustCompile(`^([A-Za-z]+)\s+(\d{1,2}),?\s+(\d{4})$`)

var monthNames = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may":  time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sep": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

func (n *Normalizer) parseMonthName(dateText string) (time.Time, bool) {
	m := monthNameDate.FindStringSubmatch(dateText)
	if m == nil {
		return time.Time{}, false
	}
	month, ok := monthNames[strings.ToLower(m[1])]
	if !ok {
		return time.Time{}, false
	}
	day, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	if day < 1 || day > 31 {
		return time.Time{}, false
	}
	return n.atNoon(year, month, day), true
}

func (n *Normalizer) atNoon(year int, month time.Month, day int) time.Time {
	if n.loc != nil {
		return time.Date(year, month, day, 12, 0, 0, 0, n.loc)
	}
	probe := time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
	return time.Date(year, month, day, 12, 0, 0, 0, FixedZoneFor(probe))
}
