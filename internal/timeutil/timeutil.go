package timeutil

import (
	"fmt"
	"time"
)

// Layout names a wire date/time format. Layouts are plain values; nothing here holds formatter state.
type Layout string

const (
	// DateLayout is the canonical date format (YYYY-MM-DD) used by the CLI and gateway.
	DateLayout Layout = "2006-01-02"
	// ScheduleDateLayout is the MM/dd/yyyy format the stats host expects in query strings.
	ScheduleDateLayout Layout = "01/02/2006"
	// PathDateLayout is the YYYYMMDD format used in data.nba.net game paths.
	PathDateLayout Layout = "20060102"
	// ScheduleTimeLayout is the 12-hour clock the stats host uses for tip-off times.
	ScheduleTimeLayout Layout = "03:04 PM"
	// ScheduleDateTimeLayout joins ScheduleDateLayout and ScheduleTimeLayout with a space.
	ScheduleDateTimeLayout Layout = ScheduleDateLayout + " " + ScheduleTimeLayout
	// UTCTimestampLayout covers the millisecond ISO timestamps in data.nba.net payloads.
	UTCTimestampLayout Layout = "2006-01-02T15:04:05.000Z"
)

// EasternTimezone is the zone the NBA publishes schedules in.
const EasternTimezone = "America/New_York"

// Parse parses raw using the given layout in UTC.
func Parse(raw string, layout Layout) (time.Time, error) {
	return time.Parse(string(layout), raw)
}

// ParseIn parses raw using the given layout in loc. A nil loc means UTC.
func ParseIn(raw string, layout Layout, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	return time.ParseInLocation(string(layout), raw, loc)
}

// Format renders t with the given layout in its current location.
func Format(t time.Time, layout Layout) string {
	return t.Format(string(layout))
}

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return Parse(value, DateLayout)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return Format(t, DateLayout)
}

// Eastern returns the America/New_York location, falling back to a fixed UTC-5 zone
// when the tz database is unavailable.
func Eastern() *time.Location {
	if loc, err := time.LoadLocation(EasternTimezone); err == nil {
		return loc
	}
	return time.FixedZone("EST", -5*60*60)
}

// MonthDay is a calendar cutoff without a year, e.g. the day a new season starts counting.
type MonthDay struct {
	Month time.Month
	Day   int
}

// ParseMonthDay parses an MM-DD string.
func ParseMonthDay(raw string) (MonthDay, error) {
	parsed, err := time.Parse("01-02", raw)
	if err != nil {
		return MonthDay{}, fmt.Errorf("parse month-day %q: %w", raw, err)
	}
	return MonthDay{Month: parsed.Month(), Day: parsed.Day()}, nil
}

// String renders the cutoff as MM-DD.
func (m MonthDay) String() string {
	return fmt.Sprintf("%02d-%02d", int(m.Month), m.Day)
}
