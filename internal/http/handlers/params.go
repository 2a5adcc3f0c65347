package handlers

import (
	nethttp "net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/JerelRocktaschel/jumpshot/internal/endpoints"
	"github.com/JerelRocktaschel/jumpshot/internal/providers"
	"github.com/JerelRocktaschel/jumpshot/internal/timeutil"
)

var (
	numericPattern      = regexp.MustCompile(`^[0-9]{1,12}$`)
	abbreviationPattern = regexp.MustCompile(`^[A-Za-z]{2,4}$`)
	categoryPattern     = regexp.MustCompile(`^[A-Z0-9_]{1,16}$`)
)

const defaultCategory = "PTS"

// season returns the season query value or the resolved current season. Range checks are
// left to the provider so the gateway and the library reject the same values.
func (h *Handler) season(r *nethttp.Request) string {
	if v := strings.TrimSpace(r.URL.Query().Get("season")); v != "" {
		return v
	}
	return h.seasons.Current()
}

// dateParam parses date=YYYY-MM-DD. When optional and absent it is today in Eastern time.
func (h *Handler) dateParam(r *nethttp.Request, required bool) (time.Time, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("date"))
	if raw == "" {
		if required {
			return time.Time{}, invalid("date", raw, "required (expected YYYY-MM-DD)")
		}
		now := h.now().In(timeutil.Eastern())
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	day, err := timeutil.ParseDate(raw)
	if err != nil {
		return time.Time{}, invalid("date", raw, "expected YYYY-MM-DD")
	}
	return day, nil
}

func numericPathValue(r *nethttp.Request, name string) (string, error) {
	v := r.PathValue(name)
	if !numericPattern.MatchString(v) {
		return "", invalid(name, v, "expected digits")
	}
	return v, nil
}

func abbreviationPathValue(r *nethttp.Request, name string) (string, error) {
	v := r.PathValue(name)
	if !abbreviationPattern.MatchString(v) {
		return "", invalid(name, v, "expected a team abbreviation")
	}
	return strings.ToUpper(v), nil
}

func sizeParam(r *nethttp.Request) (endpoints.ImageSize, error) {
	raw := r.URL.Query().Get("size")
	size, ok := endpoints.ParseImageSize(raw)
	if !ok {
		return 0, invalid("size", raw, "expected small or large")
	}
	return size, nil
}

// periodParam defaults to the first quarter.
func periodParam(r *nethttp.Request) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("period"))
	if raw == "" {
		return 1, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, invalid("period", raw, "expected a positive integer")
	}
	return n, nil
}

func modeParam(r *nethttp.Request) (endpoints.PerMode, error) {
	raw := r.URL.Query().Get("mode")
	mode, ok := endpoints.ParsePerMode(raw)
	if !ok {
		return "", invalid("mode", raw, "expected Totals, PerGame or Per48")
	}
	return mode, nil
}

func seasonTypeParam(r *nethttp.Request) (endpoints.SeasonType, error) {
	raw := r.URL.Query().Get("type")
	seasonType, ok := endpoints.ParseSeasonType(raw)
	if !ok {
		return "", invalid("type", raw, "expected regular or playoffs")
	}
	return seasonType, nil
}

func categoryParam(r *nethttp.Request) (string, error) {
	raw := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("category")))
	if raw == "" {
		return defaultCategory, nil
	}
	if !categoryPattern.MatchString(raw) {
		return "", invalid("category", raw, "expected a stat abbreviation such as PTS")
	}
	return raw, nil
}

func invalid(name, value, reason string) error {
	return &providers.InvalidParameterError{Name: name, Value: value, Reason: reason}
}
