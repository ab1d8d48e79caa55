package dates

import "time"

// SeasonalOffsetFor approximates the Pacific UTC offset for a date when no
// IANA zone data is available: March through November map to daylight time
// (-0700), the remaining months to standard time (-0800). Real transitions
// fall mid-March and early November, so dates near a transition can be off
// by an hour; LoadLocation is preferred whenever zone data exists.
func SeasonalOffsetFor(t time.Time) time.Duration {
	if t.Month() >= time.March && t.Month() <= time.November {
		return -7 * time.Hour
	}
	return -8 * time.Hour
}

// FixedZoneFor builds a fixed PDT or PST zone from SeasonalOffsetFor.
func FixedZoneFor(t time.Time) *time.Location {
	offset := SeasonalOffsetFor(t)
	name := "PST"
	if offset == -7*time.Hour {
		name = "PDT"
	}
	return time.FixedZone(name, int(offset/time.Second))
}
