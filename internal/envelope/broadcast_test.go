package envelope

import "testing"

func gameRecord(t *testing.T, raw string) Record {
	t.Helper()
	obj, err := mustParse(t, raw).Object()
	if err != nil {
		t.Fatalf("expected object, got %v", err)
	}
	return obj
}

func TestBroadcastsCollectsNonEmptyBranches(t *testing.T) {
	rec := gameRecord(t, `{"watch":{"broadcast":{
		"video":{"national":{"broadcasters":[{"shortName":"TNT","longName":"TNT"}]},
			"canadian":[{"shortName":"TSN","longName":"TSN"}],
			"vTeam":{"broadcasters":[]},
			"hTeam":{"broadcasters":[{"shortName":"NBCSBA"},{"shortName":""}]}},
		"audio":{"national":{"broadcasters":[]},
			"vTeam":{"broadcasters":[{"shortName":"95.7 The Game"}]}}}}}`)
	got, err := Broadcasts(rec)
	if err != nil {
		t.Fatalf("expected broadcasts, got %v", err)
	}
	want := []Broadcast{
		{Category: "video", Subcategory: "national", Names: []string{"TNT"}},
		{Category: "video", Subcategory: "canadian", Names: []string{"TSN"}},
		{Category: "video", Subcategory: "hTeam", Names: []string{"NBCSBA"}},
		{Category: "audio", Subcategory: "vTeam", Names: []string{"95.7 The Game"}},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d branches, got %d: %+v", len(want), len(got), got)
	}
	for i := range want {
		if got[i].Category != want[i].Category || got[i].Subcategory != want[i].Subcategory {
			t.Fatalf("branch %d expected %+v, got %+v", i, want[i], got[i])
		}
		if len(got[i].Names) != len(want[i].Names) || got[i].Names[0] != want[i].Names[0] {
			t.Fatalf("branch %d expected names %v, got %v", i, want[i].Names, got[i].Names)
		}
	}
}

func TestBroadcastsAbsentWatchIsEmpty(t *testing.T) {
	for _, raw := range []string{`{}`, `{"watch":null}`, `{"watch":{}}`, `{"watch":{"broadcast":{}}}`} {
		got, err := Broadcasts(gameRecord(t, raw))
		if err != nil || len(got) != 0 {
			t.Fatalf("input %s expected no broadcasts, got %v, %v", raw, got, err)
		}
	}
}

func TestBroadcastsWrongContainerType(t *testing.T) {
	cases := []string{
		`{"watch":"tv"}`,
		`{"watch":{"broadcast":[]}}`,
		`{"watch":{"broadcast":{"video":"x"}}}`,
		`{"watch":{"broadcast":{"audio":{"national":{"broadcasters":{}}}}}}`,
		`{"watch":{"broadcast":{"audio":{"national":{"broadcasters":[{"shortName":1}]}}}}}`,
		`{"watch":{"broadcast":{"audio":{"national":42}}}}`,
	}
	for _, raw := range cases {
		if _, err := Broadcasts(gameRecord(t, raw)); err == nil {
			t.Fatalf("input %s expected structural error", raw)
		}
	}
}
