package nba

import (
	"github.com/JerelRocktaschel/jumpshot/internal/decode"
	"github.com/JerelRocktaschel/jumpshot/internal/domain/players"
	"github.com/JerelRocktaschel/jumpshot/internal/timeutil"
)

func isActive(rec map[string]any) bool {
	return decode.Truthy(rec["isActive"])
}

func mapPlayer(rec map[string]any) (players.Player, error) {
	d := decode.New("player", rec)
	player := players.Player{
		ID:              d.String("personId"),
		FirstName:       d.String("firstName"),
		LastName:        d.String("lastName"),
		DisplayName:     d.OptionalString("temporaryDisplayName"),
		TeamID:          d.OptionalString("teamId"),
		Jersey:          d.OptionalString("jersey"),
		Position:        d.OptionalString("pos"),
		HeightFeet:      d.Int("heightFeet"),
		HeightInches:    d.Int("heightInches"),
		HeightMeters:    d.Float("heightMeters"),
		WeightPounds:    d.Int("weightPounds"),
		WeightKilograms: d.Float("weightKilograms"),
		DateOfBirth:     d.Time("dateOfBirthUTC", timeutil.DateLayout, nil),
		NBADebutYear:    d.Int("nbaDebutYear"),
		YearsPro:        d.Int("yearsPro"),
		College:         d.OptionalString("collegeName"),
		LastAffiliation: d.OptionalString("lastAffiliation"),
		Country:         d.OptionalString("country"),
	}

	if d.Has("teams") {
		tenures := d.Objects("teams")
		player.Teams = make([]players.TeamTenure, 0, len(tenures))
		for _, t := range tenures {
			player.Teams = append(player.Teams, players.TeamTenure{
				TeamID:      t.String("teamId"),
				SeasonStart: t.Int("seasonStart"),
				SeasonEnd:   t.Int("seasonEnd"),
			})
		}
	}

	if draft, ok := d.OptionalObject("draft"); ok {
		player.Draft = mapDraft(draft)
	}

	if err := d.Err(); err != nil {
		return players.Player{}, err
	}
	return player, nil
}

// mapDraft returns nil for undrafted players, whose draft block is all blanks.
func mapDraft(d *decode.Decoder) *players.Draft {
	pick, hasPick := d.OptionalInt("pickNum")
	round, hasRound := d.OptionalInt("roundNum")
	year, hasYear := d.OptionalInt("seasonYear")
	teamID := d.OptionalString("teamId")
	if !hasPick && !hasRound && !hasYear && teamID == "" {
		return nil
	}
	return &players.Draft{
		TeamID:     teamID,
		PickNum:    pick,
		RoundNum:   round,
		SeasonYear: year,
	}
}

func mapPlayerStatsSummary(rec map[string]any, playerID string) (players.PlayerStatsSummary, error) {
	d := decode.New("player_stats_summary", rec)
	stats := d.Object("stats")
	latest := stats.Object("latest")
	summary := players.PlayerStatsSummary{
		PlayerID: playerID,
		TeamID:   d.OptionalString("teamId"),
		Latest: players.SeasonStats{
			SeasonYear:    latest.Int("seasonYear"),
			SeasonStageID: latest.Int("seasonStageId"),
			Stats:         statLine(latest, false),
		},
		Career: statLine(stats.Object("careerSummary"), true),
	}
	if err := d.Err(); err != nil {
		return players.PlayerStatsSummary{}, err
	}
	return summary, nil
}

// statLine reads a stat block. Career summaries omit topg; with deriveTopg set it is
// computed from turnovers and games played when absent, otherwise it is required.
func statLine(d *decode.Decoder, deriveTopg bool) players.StatLine {
	line := players.StatLine{
		PointsPerGame:      d.Float("ppg"),
		ReboundsPerGame:    d.Float("rpg"),
		AssistsPerGame:     d.Float("apg"),
		MinutesPerGame:     d.Float("mpg"),
		StealsPerGame:      d.Float("spg"),
		BlocksPerGame:      d.Float("bpg"),
		ThreePointPct:      d.Float("tpp"),
		FreeThrowPct:       d.Float("ftp"),
		FieldGoalPct:       d.Float("fgp"),
		Assists:            d.Int("assists"),
		Blocks:             d.Int("blocks"),
		Steals:             d.Int("steals"),
		Turnovers:          d.Int("turnovers"),
		OffensiveRebounds:  d.Int("offReb"),
		DefensiveRebounds:  d.Int("defReb"),
		TotalRebounds:      d.Int("totReb"),
		FieldGoalsMade:     d.Int("fgm"),
		FieldGoalsAttempts: d.Int("fga"),
		ThreesMade:         d.Int("tpm"),
		ThreesAttempted:    d.Int("tpa"),
		FreeThrowsMade:     d.Int("ftm"),
		FreeThrowsAttempts: d.Int("fta"),
		PersonalFouls:      d.Int("pFouls"),
		Points:             d.Int("points"),
		GamesPlayed:        d.Int("gamesPlayed"),
		GamesStarted:       d.Int("gamesStarted"),
		PlusMinus:          d.Int("plusMinus"),
		Minutes:            d.Int("min"),
		DoubleDoubles:      d.Int("dd2"),
		TripleDoubles:      d.Int("td3"),
	}
	if !deriveTopg {
		line.TurnoversPerGame = d.Float("topg")
	} else if topg, ok := d.OptionalFloat("topg"); ok {
		line.TurnoversPerGame = topg
	} else {
		line.TurnoversPerGame = turnoversPerGame(line.Turnovers, line.GamesPlayed)
	}
	return line
}

func turnoversPerGame(turnovers, gamesPlayed int) float64 {
	if gamesPlayed == 0 {
		return 0
	}
	return decode.Round(float64(turnovers)/float64(gamesPlayed), 1)
}
