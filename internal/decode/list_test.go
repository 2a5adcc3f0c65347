package decode

import (
	"errors"
	"testing"

	"github.com/JerelRocktaschel/jumpshot/internal/providers"
)

type item struct {
	ID   int
	Name string
}

func decodeItem(rec map[string]any) (item, error) {
	d := New("item", rec)
	it := item{ID: d.Int("id"), Name: d.String("name")}
	if err := d.Err(); err != nil {
		return item{}, err
	}
	return it, nil
}

func TestListAllOrNothing(t *testing.T) {
	records := []map[string]any{
		{"id": "1", "name": "first"},
		{"id": "2"},
	}
	got, err := List(records, nil, decodeItem)
	if err == nil {
		t.Fatal("expected list failure")
	}
	if got != nil {
		t.Fatalf("expected no partial results, got %+v", got)
	}
	if !errors.Is(err, providers.ErrDecode) {
		t.Fatalf("expected decode sentinel, got %v", err)
	}
}

func TestListFiltersBeforeDecode(t *testing.T) {
	records := []map[string]any{
		{"id": "1", "name": "active", "isActive": true},
		{"id": "oops", "isActive": false},
	}
	got, err := List(records, func(rec map[string]any) bool { return Truthy(rec["isActive"]) }, decodeItem)
	if err != nil {
		t.Fatalf("expected filtered list to decode, got %v", err)
	}
	if len(got) != 1 || got[0].Name != "active" {
		t.Fatalf("unexpected results %+v", got)
	}
}

func TestTruthy(t *testing.T) {
	for _, v := range []any{true, "true", "TRUE", "1"} {
		if !Truthy(v) {
			t.Fatalf("expected %v to be truthy", v)
		}
	}
	for _, v := range []any{false, "false", "", nil, 1, "yes"} {
		if Truthy(v) {
			t.Fatalf("expected %v to be falsy", v)
		}
	}
}
