// Package decode coerces flat wire records into typed values.
//
// A Decoder wraps one record and collects the first coercion failure, so entity mappers can
// read every field in one pass and check Err once:
//
//	d := decode.New("team", rec)
//	team := teams.Team{ID: d.String("teamId"), City: d.String("city")}
//	if err := d.Err(); err != nil {
//		return teams.Team{}, err
//	}
package decode

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/JerelRocktaschel/jumpshot/internal/timeutil"
)

// Value is the set of scalar types a field can be coerced into.
type Value interface {
	string | int | int64 | float64 | bool
}

// Decoder reads typed fields from one record. Nested decoders share the parent's error slot.
type Decoder struct {
	entity string
	fields map[string]any
	err    *error
}

// New wraps fields for the named entity.
func New(entity string, fields map[string]any) *Decoder {
	var err error
	return &Decoder{entity: entity, fields: fields, err: &err}
}

// Err returns the first failure recorded by this decoder or any nested decoder.
func (d *Decoder) Err() error {
	return *d.err
}

// Has reports whether field is present and not null.
func (d *Decoder) Has(field string) bool {
	v, ok := d.fields[field]
	return ok && v != nil
}

// String reads a required text field. Numbers are accepted and rendered as text.
func (d *Decoder) String(field string) string {
	return Field[string](d, field)
}

// Int reads a required integer, transmitted either as a JSON number or as text.
func (d *Decoder) Int(field string) int {
	return Field[int](d, field)
}

// Float reads a required float, transmitted either as a JSON number or as text.
func (d *Decoder) Float(field string) float64 {
	return Field[float64](d, field)
}

// Bool reads a required boolean, transmitted either as a JSON bool or as "true"/"false".
func (d *Decoder) Bool(field string) bool {
	return Field[bool](d, field)
}

// OptionalString returns "" without failing when field is absent, null or blank.
func (d *Decoder) OptionalString(field string) string {
	v, _ := Optional[string](d, field)
	return v
}

// OptionalInt returns 0, false without failing when field is absent, null or blank.
func (d *Decoder) OptionalInt(field string) (int, bool) {
	return Optional[int](d, field)
}

// OptionalFloat returns 0, false without failing when field is absent, null or blank.
func (d *Decoder) OptionalFloat(field string) (float64, bool) {
	return Optional[float64](d, field)
}

// Field coerces a required field to T, recording a FieldError on failure.
func Field[T Value](d *Decoder, field string) T {
	var zero T
	raw, ok := d.fields[field]
	if !ok {
		d.fail(field, nil, "missing")
		return zero
	}
	if raw == nil {
		d.fail(field, nil, "null")
		return zero
	}
	v, reason := coerce[T](raw)
	if reason != "" {
		d.fail(field, raw, reason)
		return zero
	}
	return v
}

// Optional coerces field to T when present. Absent, null and blank-text fields are not
// failures; present fields that do not coerce are.
func Optional[T Value](d *Decoder, field string) (T, bool) {
	var zero T
	raw, ok := d.fields[field]
	if !ok || raw == nil {
		return zero, false
	}
	if s, isText := raw.(string); isText && strings.TrimSpace(s) == "" {
		return zero, false
	}
	v, reason := coerce[T](raw)
	if reason != "" {
		d.fail(field, raw, reason)
		return zero, false
	}
	return v, true
}

// Clock splits a required "MM:SS" field into minutes and seconds.
func (d *Decoder) Clock(field string) (minutes, seconds int) {
	raw := d.String(field)
	if d.Err() != nil {
		return 0, 0
	}
	minutes, seconds, reason := splitClock(raw)
	if reason != "" {
		d.fail(field, raw, reason)
		return 0, 0
	}
	return minutes, seconds
}

// Time parses a required text field with an explicit layout. A nil loc means UTC.
func (d *Decoder) Time(field string, layout timeutil.Layout, loc *time.Location) time.Time {
	raw := d.String(field)
	if d.Err() != nil {
		return time.Time{}
	}
	parsed, err := timeutil.ParseIn(strings.TrimSpace(raw), layout, loc)
	if err != nil {
		d.fail(field, raw, "expected time in layout "+string(layout))
		return time.Time{}
	}
	return parsed
}

// Object returns a decoder over a required nested object.
func (d *Decoder) Object(field string) *Decoder {
	child := &Decoder{entity: d.entity + "." + field, fields: map[string]any{}, err: d.err}
	raw, ok := d.fields[field]
	if !ok || raw == nil {
		d.fail(field, nil, "missing")
		return child
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		d.fail(field, raw, "expected object")
		return child
	}
	child.fields = obj
	return child
}

// OptionalObject returns a decoder over a nested object, or false when it is absent or null.
func (d *Decoder) OptionalObject(field string) (*Decoder, bool) {
	raw, ok := d.fields[field]
	if !ok || raw == nil {
		return nil, false
	}
	if _, isObj := raw.(map[string]any); !isObj {
		d.fail(field, raw, "expected object")
		return nil, false
	}
	return d.Object(field), true
}

// Objects returns decoders for a required array of objects.
func (d *Decoder) Objects(field string) []*Decoder {
	raw, ok := d.fields[field]
	if !ok || raw == nil {
		d.fail(field, nil, "missing")
		return nil
	}
	items, ok := raw.([]any)
	if !ok {
		d.fail(field, raw, "expected array")
		return nil
	}
	out := make([]*Decoder, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			d.fail(field+"["+strconv.Itoa(i)+"]", item, "expected object")
			return nil
		}
		out = append(out, &Decoder{entity: d.entity + "." + field, fields: obj, err: d.err})
	}
	return out
}

// Fail records a failure detected by the caller, e.g. a cross-field invariant.
func (d *Decoder) Fail(field string, raw any, reason string) {
	d.fail(field, raw, reason)
}

func (d *Decoder) fail(field string, raw any, reason string) {
	if *d.err != nil {
		return
	}
	*d.err = &FieldError{Entity: d.entity, Field: field, Raw: render(raw), Reason: reason}
}

// Round rounds v to the given number of decimal places, halves away from zero.
func Round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

func coerce[T Value](raw any) (T, string) {
	var out T
	switch target := any(&out).(type) {
	case *string:
		s, reason := asString(raw)
		*target = s
		return out, reason
	case *int:
		n, reason := asInt(raw)
		if reason == "" && (n < math.MinInt || n > math.MaxInt) {
			return out, "integer out of range"
		}
		*target = int(n)
		return out, reason
	case *int64:
		n, reason := asInt(raw)
		*target = n
		return out, reason
	case *float64:
		f, reason := asFloat(raw)
		*target = f
		return out, reason
	case *bool:
		b, reason := asBool(raw)
		*target = b
		return out, reason
	}
	return out, "unsupported target type"
}

func asString(raw any) (string, string) {
	switch v := raw.(type) {
	case string:
		return v, ""
	case json.Number:
		return v.String(), ""
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), ""
	default:
		return "", "expected string"
	}
}

func asInt(raw any) (int64, string) {
	switch v := raw.(type) {
	case json.Number:
		n, err := strconv.ParseInt(v.String(), 10, 64)
		if err != nil {
			return 0, "expected integer"
		}
		return n, ""
	case float64:
		if v != math.Trunc(v) {
			return 0, "expected integer"
		}
		return int64(v), ""
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, "empty numeric text"
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, "expected integer text"
		}
		return n, ""
	default:
		return 0, "expected integer"
	}
}

func asFloat(raw any) (float64, string) {
	switch v := raw.(type) {
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, "expected number"
		}
		return f, ""
	case float64:
		return v, ""
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, "empty numeric text"
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, "expected numeric text"
		}
		return f, ""
	default:
		return 0, "expected number"
	}
}

func asBool(raw any) (bool, string) {
	switch v := raw.(type) {
	case bool:
		return v, ""
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return false, "expected boolean text"
		}
		return b, ""
	default:
		return false, "expected boolean"
	}
}

func splitClock(raw string) (int, int, string) {
	minPart, secPart, found := strings.Cut(strings.TrimSpace(raw), ":")
	if !found {
		return 0, 0, "expected MM:SS"
	}
	minutes, err := strconv.Atoi(minPart)
	if err != nil || minutes < 0 {
		return 0, 0, "expected numeric minutes"
	}
	seconds, err := strconv.ParseFloat(secPart, 64)
	if err != nil || seconds < 0 || seconds >= 60 {
		return 0, 0, "expected numeric seconds"
	}
	return minutes, int(seconds), ""
}

func render(raw any) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case bool:
		return strconv.FormatBool(v)
	case map[string]any:
		return "{...}"
	case []any:
		return "[...]"
	}
	s, _ := asString(raw)
	return s
}
