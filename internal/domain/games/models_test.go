package games

import (
	"testing"
	"time"

	"github.com/JerelRocktaschel/jumpshot/internal/testutil"
)

func TestGameClock(t *testing.T) {
	cases := []struct {
		clock GameClock
		text  string
		dur   time.Duration
	}{
		{GameClock{Minutes: 34, Seconds: 5}, "34:05", 34*time.Minute + 5*time.Second},
		{GameClock{}, "0:00", 0},
	}
	for _, tc := range cases {
		if got := tc.clock.String(); got != tc.text {
			t.Fatalf("expected %s, got %s", tc.text, got)
		}
		if got := tc.clock.Duration(); got != tc.dur {
			t.Fatalf("expected %s, got %s", tc.dur, got)
		}
	}
}

func TestBoxscoreJSONTags(t *testing.T) {
	testutil.AssertJSONTags(t, Boxscore{},
		"GameID", "gameId",
		"HomeTeam", "homeTeam",
		"VisitorTeam", "visitorTeam",
		"ActivePlayers", "activePlayers",
	)
}
