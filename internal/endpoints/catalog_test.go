package endpoints

import (
	"testing"
	"time"
)

func TestResolveTeamListIsDeterministic(t *testing.T) {
	op := TeamList("2020")
	first := Resolve(op)
	second := Resolve(TeamList("2020"))
	if first != second {
		t.Fatalf("expected identical resolution, got %+v and %+v", first, second)
	}
	if got := first.URL(); got != "https://data.nba.net/data/5s/prod/v2/2020/teams.json" {
		t.Fatalf("unexpected team list url %s", got)
	}
}

func TestResolveCatalog(t *testing.T) {
	day := time.Date(2020, time.December, 22, 15, 30, 0, 0, time.UTC)
	cases := []struct {
		name string
		op   Operation
		want string
	}{
		{"players", PlayerList("2020"), "https://data.nba.net/data/5s/prod/v2/2020/players.json"},
		{"team image", TeamImage("BOS"), "https://a.espncdn.com/i/teamlogos/nba/500/BOS.png"},
		{"player image small", PlayerImage("201939", ImageSizeSmall), "https://ak-static.cms.nba.com/wp-content/uploads/headshots/nba/latest/260x190/201939.png"},
		{"player image large", PlayerImage("201939", ImageSizeLarge), "https://ak-static.cms.nba.com/wp-content/uploads/headshots/nba/latest/1040x760/201939.png"},
		{"daily schedule", DailySchedule("2020", day), "https://stats.nba.com/stats/internationalbroadcasterschedule?LeagueID=00&Season=2020&RegionID=1&Date=12/22/2020&EST=Y"},
		{"standings", Standings(), "https://data.nba.net/data/5s/prod/v2/current/standings_all.json"},
		{"team leaders", TeamLeaders("2020", "1610612744"), "https://data.nba.com/prod/v1/2020/teams/1610612744/leaders.json"},
		{"team schedule", TeamSchedule("2020", "1610612744"), "https://data.nba.com/prod/v1/2020/teams/1610612744/schedule.json"},
		{"coaches", Coaches("2020"), "https://data.nba.net/prod/v1/2020/coaches.json"},
		{"rankings", TeamStatRankings("2020"), "https://data.nba.com/prod/v1/2020/team_stats_rankings.json"},
		{"player summary", PlayerStatsSummary("2020", "201939"), "https://data.nba.com/prod/v1/2020/players/201939_profile.json"},
		{"lead tracker", LeadTracker(day, "0022000001", 2), "https://data.nba.net/prod/v1/20201222/0022000001_lead_tracker_2.json"},
		{"boxscore", Boxscore(day, "0022000001"), "https://data.nba.net/prod/v1/20201222/0022000001_boxscore.json"},
		{"league leaders", LeagueLeaders("2020", PerModeTotals, SeasonTypePlayoffs, "REB"), "https://stats.nba.com/stats/leagueleaders?LeagueID=00&PerMode=Totals&Scope=S&Season=2020-21&SeasonType=Playoffs&StatCategory=REB"},
		{"league leaders defaults", LeagueLeaders("2020", "", "", ""), "https://stats.nba.com/stats/leagueleaders?LeagueID=00&PerMode=PerGame&Scope=S&Season=2020-21&SeasonType=Regular+Season&StatCategory=PTS"},
	}
	for _, c := range cases {
		if got := Resolve(c.op).URL(); got != c.want {
			t.Fatalf("%s: expected %s, got %s", c.name, c.want, got)
		}
	}
}

func TestLogoAbbreviationRemap(t *testing.T) {
	cases := map[string]string{
		"NOP": "NO",
		"UTA": "UTAH",
		"BOS": "BOS",
		"LAL": "LAL",
	}
	for input, want := range cases {
		if got := LogoAbbreviation(input); got != want {
			t.Fatalf("abbreviation %s expected %s, got %s", input, want, got)
		}
		if got := Resolve(TeamImage(input)).Path; got != want+".png" {
			t.Fatalf("abbreviation %s expected path %s.png, got %s", input, want, got)
		}
	}
}

func TestCatalogWithDefaultsOverridesHost(t *testing.T) {
	c := Catalog{Stats: "http://localhost:9000/stats"}.WithDefaults()
	if c.Stats != "http://localhost:9000/stats/" {
		t.Fatalf("expected trailing slash added, got %s", c.Stats)
	}
	if c.DataV2 != DefaultDataV2BaseURL {
		t.Fatalf("expected default data host, got %s", c.DataV2)
	}
	got := c.Resolve(LeagueLeaders("2019", PerModePer48, SeasonTypeRegular, "AST")).URL()
	want := "http://localhost:9000/stats/leagueleaders?LeagueID=00&PerMode=Per48&Scope=S&Season=2019-20&SeasonType=Regular+Season&StatCategory=AST"
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestKindMetadata(t *testing.T) {
	if !KindTeamImage.IsImage() || !KindPlayerImage.IsImage() {
		t.Fatal("expected image kinds to report IsImage")
	}
	if KindTeamList.IsImage() {
		t.Fatal("did not expect team list to be an image")
	}
	if KindLeadTracker.String() != "lead_tracker" {
		t.Fatalf("unexpected kind label %s", KindLeadTracker.String())
	}
	if Kind(0).String() != "unknown" {
		t.Fatalf("expected unknown label for zero kind")
	}
	if !PerModeTotals.IsTotals() || PerModePerGame.IsTotals() {
		t.Fatal("unexpected totals classification")
	}
}

func TestParseFlagValues(t *testing.T) {
	modes := map[string]PerMode{"": PerModePerGame, "totals": PerModeTotals, "Per48": PerModePer48, "PERGAME": PerModePerGame}
	for raw, want := range modes {
		if got, ok := ParsePerMode(raw); !ok || got != want {
			t.Fatalf("ParsePerMode(%q) = %q, %v", raw, got, ok)
		}
	}
	if _, ok := ParsePerMode("weekly"); ok {
		t.Fatal("expected unknown per-mode to be rejected")
	}

	types := map[string]SeasonType{"": SeasonTypeRegular, "regular": SeasonTypeRegular, "Regular Season": SeasonTypeRegular, "playoffs": SeasonTypePlayoffs}
	for raw, want := range types {
		if got, ok := ParseSeasonType(raw); !ok || got != want {
			t.Fatalf("ParseSeasonType(%q) = %q, %v", raw, got, ok)
		}
	}
	if _, ok := ParseSeasonType("preseason"); ok {
		t.Fatal("expected unknown season type to be rejected")
	}

	if got, ok := ParseImageSize("LARGE"); !ok || got != ImageSizeLarge {
		t.Fatalf("expected large size, got %v %v", got, ok)
	}
	if got, ok := ParseImageSize(""); !ok || got != ImageSizeSmall {
		t.Fatalf("expected small default, got %v %v", got, ok)
	}
	if _, ok := ParseImageSize("huge"); ok {
		t.Fatal("expected unknown size to be rejected")
	}
}
