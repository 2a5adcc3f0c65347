package testutil

import (
	"reflect"
	"testing"
)

// AssertJSONTags checks struct json tags given as alternating field name and tag pairs.
func AssertJSONTags(t *testing.T, v any, pairs ...string) {
	t.Helper()
	if len(pairs)%2 != 0 {
		t.Fatalf("expected field/tag pairs, got %d values", len(pairs))
	}
	typ := reflect.TypeOf(v)
	for i := 0; i < len(pairs); i += 2 {
		field, ok := typ.FieldByName(pairs[i])
		if !ok {
			t.Fatalf("%s: missing field %s", typ.Name(), pairs[i])
		}
		if got := field.Tag.Get("json"); got != pairs[i+1] {
			t.Fatalf("%s.%s: expected json tag %q, got %q", typ.Name(), pairs[i], pairs[i+1], got)
		}
	}
}
