package nba

import (
	"fmt"
	"strings"
	"time"

	"github.com/JerelRocktaschel/jumpshot/internal/decode"
	"github.com/JerelRocktaschel/jumpshot/internal/domain/games"
	"github.com/JerelRocktaschel/jumpshot/internal/timeutil"
)

// scheduleRow is one CompleteGameList row; the host repeats a game once per broadcaster.
type scheduleRow struct {
	game        games.GameSchedule
	broadcaster string
}

func onScheduleDate(day time.Time) func(map[string]any) bool {
	want := timeutil.Format(day, timeutil.ScheduleDateLayout)
	return func(rec map[string]any) bool {
		return strings.TrimSpace(fmt.Sprint(rec["date"])) == want
	}
}

func mapScheduleRow(rec map[string]any) (scheduleRow, error) {
	d := decode.New("game_schedule", rec)
	game := games.GameSchedule{
		GameID: d.String("gameID"),
		HomeTeam: games.ScheduleTeam{
			Abbreviation: d.String("htAbbreviation"),
			City:         d.String("htCity"),
			Nickname:     d.String("htNickName"),
		},
		VisitorTeam: games.ScheduleTeam{
			Abbreviation: d.String("vtAbbreviation"),
			City:         d.String("vtCity"),
			Nickname:     d.String("vtNickName"),
		},
	}
	date := d.String("date")
	clock := strings.TrimSpace(d.OptionalString("time"))
	if err := d.Err(); err != nil {
		return scheduleRow{}, err
	}

	if clock == "" || strings.EqualFold(clock, "TBD") {
		start, err := timeutil.ParseIn(date, timeutil.ScheduleDateLayout, timeutil.Eastern())
		if err != nil {
			d.Fail("date", date, "expected "+string(timeutil.ScheduleDateLayout))
			return scheduleRow{}, d.Err()
		}
		game.StartTime, game.TimeTBD = start, true
	} else {
		start, err := timeutil.ParseIn(date+" "+clock, timeutil.ScheduleDateTimeLayout, timeutil.Eastern())
		if err != nil {
			d.Fail("time", date+" "+clock, "expected "+string(timeutil.ScheduleDateTimeLayout))
			return scheduleRow{}, d.Err()
		}
		game.StartTime = start
	}

	return scheduleRow{game: game, broadcaster: d.OptionalString("broadcasterName")}, nil
}

// collapseSchedule merges rows of the same game, keeping first-seen order of games and
// broadcasters.
func collapseSchedule(rows []scheduleRow) []games.GameSchedule {
	out := make([]games.GameSchedule, 0, len(rows))
	index := make(map[string]int, len(rows))
	for _, row := range rows {
		i, seen := index[row.game.GameID]
		if !seen {
			i = len(out)
			index[row.game.GameID] = i
			row.game.Broadcasters = []string{}
			out = append(out, row.game)
		}
		if row.broadcaster != "" && !contains(out[i].Broadcasters, row.broadcaster) {
			out[i].Broadcasters = append(out[i].Broadcasters, row.broadcaster)
		}
	}
	return out
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

// played drops players carrying a did-not-play reason.
func played(rec map[string]any) bool {
	raw, ok := rec["dnp"]
	if !ok || raw == nil {
		return true
	}
	s, isText := raw.(string)
	return isText && strings.TrimSpace(s) == ""
}

func mapBoxscore(root map[string]any) (games.Boxscore, error) {
	d := decode.New("boxscore", root)
	basic := d.Object("basicGameData")
	box := games.Boxscore{
		GameID:      basic.String("gameId"),
		HomeTeam:    boxscoreTeam(basic.Object("hTeam")),
		VisitorTeam: boxscoreTeam(basic.Object("vTeam")),
	}
	if err := d.Err(); err != nil {
		return games.Boxscore{}, err
	}
	return box, nil
}

func boxscoreTeam(d *decode.Decoder) games.BoxscoreTeam {
	team := games.BoxscoreTeam{
		TeamID:  d.String("teamId"),
		Tricode: d.String("triCode"),
	}
	if score, ok := d.OptionalInt("score"); ok {
		team.Score = &score
	}
	return team
}

func mapActivePlayer(rec map[string]any) (games.ActivePlayer, error) {
	d := decode.New("active_player", rec)
	minutes, seconds := d.Clock("min")
	player := games.ActivePlayer{
		PersonID:           d.String("personId"),
		FirstName:          d.String("firstName"),
		LastName:           d.String("lastName"),
		Jersey:             d.OptionalString("jersey"),
		TeamID:             d.String("teamId"),
		Position:           d.OptionalString("pos"),
		IsOnCourt:          decode.Truthy(rec["isOnCourt"]),
		Minutes:            games.GameClock{Minutes: minutes, Seconds: seconds},
		Points:             d.Int("points"),
		FieldGoalsMade:     d.Int("fgm"),
		FieldGoalsAttempts: d.Int("fga"),
		FieldGoalPct:       d.Float("fgp"),
		FreeThrowsMade:     d.Int("ftm"),
		FreeThrowsAttempts: d.Int("fta"),
		FreeThrowPct:       d.Float("ftp"),
		ThreesMade:         d.Int("tpm"),
		ThreesAttempted:    d.Int("tpa"),
		ThreePointPct:      d.Float("tpp"),
		OffensiveRebounds:  d.Int("offReb"),
		DefensiveRebounds:  d.Int("defReb"),
		TotalRebounds:      d.Int("totReb"),
		Assists:            d.Int("assists"),
		PersonalFouls:      d.Int("pFouls"),
		Steals:             d.Int("steals"),
		Turnovers:          d.Int("turnovers"),
		Blocks:             d.Int("blocks"),
		PlusMinus:          d.Int("plusMinus"),
	}
	if err := d.Err(); err != nil {
		return games.ActivePlayer{}, err
	}
	return player, nil
}

func mapLeadTracker(root map[string]any, gameID string, period int) (games.LeadTracker, error) {
	d := decode.New("lead_tracker", root)
	plays := d.Objects("plays")
	tracker := games.LeadTracker{
		GameID: gameID,
		Period: period,
		Plays:  make([]games.LeadTrackerPlay, 0, len(plays)),
	}
	for _, p := range plays {
		minutes, seconds := p.Clock("clock")
		tracker.Plays = append(tracker.Plays, games.LeadTrackerPlay{
			Clock:      games.GameClock{Minutes: minutes, Seconds: seconds},
			LeadTeamID: p.OptionalString("leadTeamId"),
			Points:     p.Int("points"),
		})
	}
	if err := d.Err(); err != nil {
		return games.LeadTracker{}, err
	}
	return tracker, nil
}
