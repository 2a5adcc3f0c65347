package nba

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/JerelRocktaschel/jumpshot/internal/decode"
	"github.com/JerelRocktaschel/jumpshot/internal/providers"
	"github.com/JerelRocktaschel/jumpshot/internal/testutil"
)

func TestFetchPlayersKeepsActiveOnly(t *testing.T) {
	up := testutil.NewUpstream(map[string]string{"/2020/players.json": playersBody})
	client, _ := newTestClient(t, up)

	out, err := client.FetchPlayers(context.Background(), "2020")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 active players, got %d", len(out))
	}

	curry := out[0]
	if curry.ID != "201939" || curry.HeightFeet != 6 || curry.HeightMeters != 1.88 || curry.WeightPounds != 185 {
		t.Fatalf("unexpected player %+v", curry)
	}
	if !curry.DateOfBirth.Equal(time.Date(1988, 3, 14, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected birth date %s", curry.DateOfBirth)
	}
	if len(curry.Teams) != 1 || curry.Teams[0].SeasonEnd != 2020 {
		t.Fatalf("unexpected tenures %+v", curry.Teams)
	}
	if curry.Draft == nil || curry.Draft.PickNum != 7 || curry.Draft.SeasonYear != 2009 {
		t.Fatalf("unexpected draft %+v", curry.Draft)
	}

	vanVleet := out[1]
	if vanVleet.Draft != nil {
		t.Fatalf("expected undrafted player to have no draft, got %+v", vanVleet.Draft)
	}
	if vanVleet.WeightKilograms != 89.4 || len(vanVleet.Teams) != 0 {
		t.Fatalf("unexpected numeric player %+v", vanVleet)
	}
}

func TestFetchPlayerStatsSummaryDerivesCareerTurnovers(t *testing.T) {
	up := testutil.NewUpstream(map[string]string{"/2020/players/201939_profile.json": profileBody})
	client, _ := newTestClient(t, up)

	out, err := client.FetchPlayerStatsSummary(context.Background(), "2020", "201939")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out.PlayerID != "201939" || out.TeamID != "1610612744" {
		t.Fatalf("unexpected header %+v", out)
	}
	if out.Latest.SeasonYear != 2020 || out.Latest.Stats.TurnoversPerGame != 3.4 {
		t.Fatalf("expected upstream topg on latest, got %+v", out.Latest)
	}
	if out.Career.TurnoversPerGame != 1.2 {
		t.Fatalf("expected derived career topg 1.2, got %v", out.Career.TurnoversPerGame)
	}
	if out.Career.Points != 17323 || out.Career.TripleDoubles != 8 {
		t.Fatalf("unexpected career line %+v", out.Career)
	}
}

// Only the career summary may omit topg; a season block without it fails the whole call.
func TestFetchPlayerStatsSummaryRequiresLatestTurnovers(t *testing.T) {
	for name, replacement := range map[string]string{
		"missing": "",
		"blank":   `"topg": "", `,
	} {
		t.Run(name, func(t *testing.T) {
			body := strings.Replace(profileBody, `"topg": "3.4", `, replacement, 1)
			up := testutil.NewUpstream(map[string]string{"/2020/players/201939_profile.json": body})
			client, _ := newTestClient(t, up)

			out, err := client.FetchPlayerStatsSummary(context.Background(), "2020", "201939")
			if !errors.Is(err, providers.ErrDecode) {
				t.Fatalf("expected decode error, got %v", err)
			}
			fieldErr, ok := decode.AsFieldError(err)
			if !ok || fieldErr.Field != "topg" {
				t.Fatalf("expected topg field error, got %v", err)
			}
			if out.PlayerID != "" {
				t.Fatalf("expected zero value alongside error, got %+v", out)
			}
		})
	}
}

func TestTurnoversPerGame(t *testing.T) {
	cases := []struct {
		turnovers, games int
		want             float64
	}{
		{70, 60, 1.2},
		{0, 0, 0},
		{10, 0, 0},
		{213, 63, 3.4},
	}
	for _, tc := range cases {
		if got := turnoversPerGame(tc.turnovers, tc.games); got != tc.want {
			t.Fatalf("turnoversPerGame(%d, %d): expected %v, got %v", tc.turnovers, tc.games, tc.want, got)
		}
	}
}
