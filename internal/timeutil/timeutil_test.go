package timeutil

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2024-01-02")
	if err != nil {
		t.Fatalf("expected parse to succeed, got %v", err)
	}
	if got := FormatDate(parsed); got != "2024-01-02" {
		t.Fatalf("expected formatted date to round-trip, got %s", got)
	}
}

func TestFormatDateUsesLocation(t *testing.T) {
	loc := time.FixedZone("test", -5*60*60)
	value := time.Date(2024, 1, 2, 23, 0, 0, 0, loc)
	if got := FormatDate(value); got != "2024-01-02" {
		t.Fatalf("expected formatted date, got %s", got)
	}
}

func TestFormatWireLayouts(t *testing.T) {
	value := time.Date(2020, time.December, 22, 19, 0, 0, 0, time.UTC)
	cases := map[Layout]string{
		ScheduleDateLayout:     "12/22/2020",
		PathDateLayout:         "20201222",
		ScheduleTimeLayout:     "07:00 PM",
		ScheduleDateTimeLayout: "12/22/2020 07:00 PM",
	}
	for layout, want := range cases {
		if got := Format(value, layout); got != want {
			t.Fatalf("layout %s expected %s, got %s", layout, want, got)
		}
	}
}

func TestParseInUsesLocation(t *testing.T) {
	loc := time.FixedZone("EST", -5*60*60)
	parsed, err := ParseIn("12/22/2020 07:00 PM", ScheduleDateTimeLayout, loc)
	if err != nil {
		t.Fatalf("expected parse to succeed, got %v", err)
	}
	if got := parsed.UTC().Hour(); got != 0 {
		t.Fatalf("expected midnight UTC, got hour %d", got)
	}
}

func TestParseInDefaultsToUTC(t *testing.T) {
	parsed, err := ParseIn("20201222", PathDateLayout, nil)
	if err != nil {
		t.Fatalf("expected parse to succeed, got %v", err)
	}
	if parsed.Location() != time.UTC {
		t.Fatalf("expected UTC location, got %s", parsed.Location())
	}
}

func TestParseMonthDay(t *testing.T) {
	md, err := ParseMonthDay("10-01")
	if err != nil {
		t.Fatalf("expected parse to succeed, got %v", err)
	}
	if md.Month != time.October || md.Day != 1 {
		t.Fatalf("unexpected month-day %+v", md)
	}
	if md.String() != "10-01" {
		t.Fatalf("expected 10-01, got %s", md.String())
	}
	if _, err := ParseMonthDay("13-40"); err == nil {
		t.Fatal("expected error for invalid month-day")
	}
}
