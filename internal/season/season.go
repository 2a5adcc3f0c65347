// Package season computes NBA season years and guards season parameters.
//
// A season is named by the calendar year it starts in: the 2020-21 season is "2020".
package season

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/JerelRocktaschel/jumpshot/internal/timeutil"
)

// FirstSeason is the year the league began play. Season years must be strictly after it.
const FirstSeason = 1946

// ErrInvalidSeason is wrapped by every Validate failure.
var ErrInvalidSeason = errors.New("invalid season")

// DefaultCutoff is the month/day a new season starts being "current".
var DefaultCutoff = timeutil.MonthDay{Month: time.October, Day: 1}

// Resolver turns the wall clock into a season year.
type Resolver struct {
	cutoff timeutil.MonthDay
	now    func() time.Time
}

// NewResolver builds a resolver for the given cutoff. A zero cutoff uses DefaultCutoff.
func NewResolver(cutoff timeutil.MonthDay) *Resolver {
	if cutoff.Month == 0 || cutoff.Day == 0 {
		cutoff = DefaultCutoff
	}
	return &Resolver{cutoff: cutoff, now: time.Now}
}

// WithClock returns a copy of the resolver reading time from now.
func (r *Resolver) WithClock(now func() time.Time) *Resolver {
	return &Resolver{cutoff: r.cutoff, now: now}
}

// CurrentYear returns the starting year of the current season.
func (r *Resolver) CurrentYear() int {
	return CurrentYear(r.now(), r.cutoff)
}

// Current returns the current season as a year string.
func (r *Resolver) Current() string {
	return strconv.Itoa(r.CurrentYear())
}

// Validate checks a season year string against the league's history.
func (r *Resolver) Validate(season string) (int, error) {
	return Validate(season, r.CurrentYear())
}

// CurrentYear returns now's year, or the previous year when now falls before the cutoff.
func CurrentYear(now time.Time, cutoff timeutil.MonthDay) int {
	year := now.Year()
	start := time.Date(year, cutoff.Month, cutoff.Day, 0, 0, 0, 0, now.Location())
	if now.Before(start) {
		return year - 1
	}
	return year
}

// Validate parses season and enforces FirstSeason < year <= current.
func Validate(season string, current int) (int, error) {
	raw := strings.TrimSpace(season)
	year, err := strconv.Atoi(raw)
	if err != nil || len(raw) != 4 {
		return 0, fmt.Errorf("%w: %q is not a four digit year", ErrInvalidSeason, season)
	}
	if year <= FirstSeason {
		return 0, fmt.Errorf("%w: %d must be after %d", ErrInvalidSeason, year, FirstSeason)
	}
	if year > current {
		return 0, fmt.Errorf("%w: %d must not be after %d", ErrInvalidSeason, year, current)
	}
	return year, nil
}

// StatsLabel renders a season year in the stats host's YYYY-YY form (2020 -> "2020-21").
func StatsLabel(year int) string {
	return fmt.Sprintf("%d-%02d", year, (year+1)%100)
}
