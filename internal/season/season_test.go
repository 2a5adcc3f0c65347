package season

import (
	"errors"
	"testing"
	"time"

	"github.com/JerelRocktaschel/jumpshot/internal/testutil"
	"github.com/JerelRocktaschel/jumpshot/internal/timeutil"
)

func TestCurrentYearRespectsCutoff(t *testing.T) {
	cutoff := timeutil.MonthDay{Month: time.October, Day: 1}
	cases := []struct {
		now  time.Time
		want int
	}{
		{time.Date(2021, time.September, 30, 23, 59, 0, 0, time.UTC), 2020},
		{time.Date(2021, time.October, 1, 0, 0, 0, 0, time.UTC), 2021},
		{time.Date(2022, time.January, 15, 0, 0, 0, 0, time.UTC), 2021},
	}
	for _, c := range cases {
		if got := CurrentYear(c.now, cutoff); got != c.want {
			t.Fatalf("now %s expected %d, got %d", c.now, c.want, got)
		}
	}
}

func TestResolverUsesInjectedClock(t *testing.T) {
	r := NewResolver(timeutil.MonthDay{}).WithClock(testutil.NowAt(time.Date(2021, time.March, 1, 0, 0, 0, 0, time.UTC)))
	if got := r.Current(); got != "2020" {
		t.Fatalf("expected 2020, got %s", got)
	}
}

func TestValidateBounds(t *testing.T) {
	current := 2021
	invalid := []string{"1946", "1900", "2022", "abcd", "", "20201"}
	for _, s := range invalid {
		_, err := Validate(s, current)
		if !errors.Is(err, ErrInvalidSeason) {
			t.Fatalf("season %q expected invalid parameter, got %v", s, err)
		}
	}
	for _, s := range []string{"1947", "2000", "2021"} {
		year, err := Validate(s, current)
		if err != nil {
			t.Fatalf("season %q expected valid, got %v", s, err)
		}
		if year < 1947 || year > current {
			t.Fatalf("unexpected parsed year %d", year)
		}
	}
}

func TestResolverValidate(t *testing.T) {
	r := NewResolver(DefaultCutoff).WithClock(testutil.NowAt(time.Date(2020, time.November, 1, 0, 0, 0, 0, time.UTC)))
	if _, err := r.Validate("2021"); err == nil {
		t.Fatal("expected next season to be rejected")
	}
	if _, err := r.Validate("2020"); err != nil {
		t.Fatalf("expected current season to be accepted, got %v", err)
	}
}

func TestStatsLabel(t *testing.T) {
	cases := map[int]string{2020: "2020-21", 1999: "1999-00", 2009: "2009-10"}
	for year, want := range cases {
		if got := StatsLabel(year); got != want {
			t.Fatalf("year %d expected %s, got %s", year, want, got)
		}
	}
}
