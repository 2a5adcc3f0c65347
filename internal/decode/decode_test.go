package decode

import (
	"encoding/json"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/JerelRocktaschel/jumpshot/internal/providers"
	"github.com/JerelRocktaschel/jumpshot/internal/timeutil"
)

func TestScalarCoercion(t *testing.T) {
	d := New("player", map[string]any{
		"name":     "Stephen Curry",
		"id":       json.Number("201939"),
		"points":   "2375",
		"pct":      "0.482",
		"rank":     json.Number("1"),
		"avg":      json.Number("32.0"),
		"active":   true,
		"starter":  "false",
		"plus":     "+7",
		"jerseyNo": json.Number("30"),
	})
	if got := d.String("name"); got != "Stephen Curry" {
		t.Fatalf("unexpected name %s", got)
	}
	if got := d.String("id"); got != "201939" {
		t.Fatalf("expected numeric id as text, got %s", got)
	}
	if got := d.Int("points"); got != 2375 {
		t.Fatalf("expected 2375, got %d", got)
	}
	if got := d.Float("pct"); got != 0.482 {
		t.Fatalf("expected 0.482, got %v", got)
	}
	if got := d.Int("rank"); got != 1 {
		t.Fatalf("expected rank 1, got %d", got)
	}
	if got := d.Float("avg"); got != 32 {
		t.Fatalf("expected 32, got %v", got)
	}
	if !d.Bool("active") || d.Bool("starter") {
		t.Fatal("unexpected boolean coercion")
	}
	if got := d.Int("plus"); got != 7 {
		t.Fatalf("expected +7 to parse, got %d", got)
	}
	if got := Field[int64](d, "jerseyNo"); got != 30 {
		t.Fatalf("expected 30, got %d", got)
	}
	if err := d.Err(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestFieldErrorCarriesNameAndRaw(t *testing.T) {
	d := New("team_stat_ranking", map[string]any{"ppg": "n/a", "rank": "1"})
	_ = d.Float("ppg")
	_ = d.Int("rank")
	err := d.Err()
	fieldErr, ok := AsFieldError(err)
	if !ok {
		t.Fatalf("expected field error, got %v", err)
	}
	if fieldErr.Field != "ppg" || fieldErr.Raw != "n/a" || fieldErr.Entity != "team_stat_ranking" {
		t.Fatalf("unexpected field error %+v", fieldErr)
	}
	if !errors.Is(err, providers.ErrDecode) {
		t.Fatalf("expected decode sentinel, got %v", err)
	}
}

func TestFirstFailureSticks(t *testing.T) {
	d := New("coach", map[string]any{"teamId": ""})
	_ = d.Int("teamId")
	_ = d.String("firstName")
	fieldErr, _ := AsFieldError(d.Err())
	if fieldErr == nil || fieldErr.Field != "teamId" || fieldErr.Reason != "empty numeric text" {
		t.Fatalf("expected first failure on teamId, got %+v", fieldErr)
	}
}

func TestMissingAndNullFields(t *testing.T) {
	d := New("x", map[string]any{"n": nil})
	_ = d.String("absent")
	if fe, _ := AsFieldError(d.Err()); fe == nil || fe.Reason != "missing" {
		t.Fatalf("expected missing failure, got %v", d.Err())
	}
	d = New("x", map[string]any{"n": nil})
	_ = d.Float("n")
	if fe, _ := AsFieldError(d.Err()); fe == nil || fe.Reason != "null" {
		t.Fatalf("expected null failure, got %v", d.Err())
	}
}

func TestTypeMismatches(t *testing.T) {
	cases := []func(d *Decoder){
		func(d *Decoder) { d.Int("obj") },
		func(d *Decoder) { d.Int("frac") },
		func(d *Decoder) { d.Float("flag") },
		func(d *Decoder) { d.Bool("num") },
		func(d *Decoder) { d.Bool("word") },
		func(d *Decoder) { d.String("flag") },
		func(d *Decoder) { d.Float("inf") },
	}
	for i, read := range cases {
		d := New("x", map[string]any{
			"obj":  map[string]any{},
			"frac": json.Number("1.5"),
			"flag": true,
			"num":  json.Number("1"),
			"word": "maybe",
			"inf":  "Inf",
		})
		read(d)
		if d.Err() == nil {
			t.Fatalf("case %d expected coercion failure", i)
		}
	}
}

func TestIntRejectsValuesBeyondPlatformWidth(t *testing.T) {
	d := New("player", map[string]any{"id": "4294967296", "wide": json.Number("4294967296")})
	got := d.Int("id")
	if wide := Field[int64](d, "wide"); wide != 1<<32 {
		t.Fatalf("expected int64 to hold 1<<32, got %d", wide)
	}

	if strconv.IntSize == 64 {
		if int64(got) != 1<<32 || d.Err() != nil {
			t.Fatalf("expected 1<<32 on 64-bit ints, got %d (%v)", got, d.Err())
		}
		return
	}
	fieldErr, ok := AsFieldError(d.Err())
	if !ok || fieldErr.Field != "id" || fieldErr.Reason != "integer out of range" {
		t.Fatalf("expected out of range error on id, got %v", d.Err())
	}
	if got != 0 {
		t.Fatalf("expected zero alongside error, got %d", got)
	}
}

func TestOptionalFields(t *testing.T) {
	d := New("summary", map[string]any{"topg": nil, "ppg": "27.1", "bad": "x"})
	if _, ok := d.OptionalFloat("topg"); ok {
		t.Fatal("expected null to be absent")
	}
	if _, ok := d.OptionalFloat("missing"); ok {
		t.Fatal("expected missing to be absent")
	}
	if v, ok := d.OptionalFloat("ppg"); !ok || v != 27.1 {
		t.Fatalf("expected 27.1, got %v %v", v, ok)
	}
	if d.OptionalString("missing") != "" {
		t.Fatal("expected empty optional string")
	}
	if d.Err() != nil {
		t.Fatalf("expected no error so far, got %v", d.Err())
	}
	if _, ok := d.OptionalInt("bad"); ok {
		t.Fatal("expected malformed optional to fail")
	}
	if d.Err() == nil {
		t.Fatal("expected malformed optional to record an error")
	}
}

func TestClock(t *testing.T) {
	d := New("active_player", map[string]any{"min": "34:12", "short": "5:07.0"})
	m, s := d.Clock("min")
	if m != 34 || s != 12 {
		t.Fatalf("expected 34:12, got %d:%d", m, s)
	}
	m, s = d.Clock("short")
	if m != 5 || s != 7 {
		t.Fatalf("expected 5:07, got %d:%d", m, s)
	}
	for _, raw := range []string{"3412", "ab:12", "34:xx", "34:75", ""} {
		d := New("active_player", map[string]any{"min": raw})
		d.Clock("min")
		if d.Err() == nil {
			t.Fatalf("expected clock %q to fail", raw)
		}
	}
}

func TestTime(t *testing.T) {
	d := New("game_schedule", map[string]any{"date": "12/22/2020", "bad": "2020-12-22"})
	got := d.Time("date", timeutil.ScheduleDateLayout, nil)
	if !got.Equal(time.Date(2020, time.December, 22, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected time %s", got)
	}
	d.Time("bad", timeutil.ScheduleDateLayout, nil)
	if d.Err() == nil {
		t.Fatal("expected layout mismatch to fail")
	}
}

func TestNestedObjectsShareErrors(t *testing.T) {
	d := New("player", map[string]any{
		"draft":  map[string]any{"pickNum": "x"},
		"teams":  []any{map[string]any{"teamId": "1"}, map[string]any{"teamId": "2"}},
		"scalar": "1",
	})
	teams := d.Objects("teams")
	if len(teams) != 2 || teams[1].String("teamId") != "2" {
		t.Fatalf("unexpected nested list")
	}
	if _, ok := d.OptionalObject("absent"); ok {
		t.Fatal("expected absent optional object")
	}
	draft := d.Object("draft")
	draft.Int("pickNum")
	fieldErr, ok := AsFieldError(d.Err())
	if !ok || fieldErr.Entity != "player.draft" || fieldErr.Field != "pickNum" {
		t.Fatalf("expected nested failure on parent, got %v", d.Err())
	}

	d = New("player", map[string]any{"scalar": "1"})
	d.Object("scalar")
	if d.Err() == nil {
		t.Fatal("expected non-object to fail")
	}
	d = New("player", map[string]any{"list": []any{"x"}})
	d.Objects("list")
	if d.Err() == nil {
		t.Fatal("expected non-object element to fail")
	}
}

func TestRound(t *testing.T) {
	if got := Round(70.0/60.0, 1); got != 1.2 {
		t.Fatalf("expected 1.2, got %v", got)
	}
	if got := Round(2.25, 1); got != 2.3 {
		t.Fatalf("expected 2.3, got %v", got)
	}
}
