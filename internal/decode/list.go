package decode

import (
	"fmt"
	"strings"
)

// List drops records rejected by keep, then decodes the rest in order. Any decode failure fails
// the whole list; a nil keep keeps everything.
func List[T any](records []map[string]any, keep func(map[string]any) bool, one func(map[string]any) (T, error)) ([]T, error) {
	out := make([]T, 0, len(records))
	for i, rec := range records {
		if keep != nil && !keep(rec) {
			continue
		}
		v, err := one(rec)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// Truthy reports whether a raw flag is set. It never fails; anything other than true, "true"
// or "1" counts as unset.
func Truthy(raw any) bool {
	switch v := raw.(type) {
	case bool:
		return v
	case string:
		s := strings.TrimSpace(v)
		return strings.EqualFold(s, "true") || s == "1"
	default:
		return false
	}
}
