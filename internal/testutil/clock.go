package testutil

import (
	"time"

	"github.com/JerelRocktaschel/jumpshot/internal/timeutil"
)

// NowAt returns a clock function fixed at the provided time.
func NowAt(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// GameDay is the UTC-midnight date the client uses for date-keyed NBA paths.
func GameDay(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// EasternTime builds a wall-clock time in the league's home time zone.
func EasternTime(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, timeutil.Eastern())
}
