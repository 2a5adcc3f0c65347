package nba

import (
	"github.com/JerelRocktaschel/jumpshot/internal/decode"
	"github.com/JerelRocktaschel/jumpshot/internal/domain/coaches"
	"github.com/JerelRocktaschel/jumpshot/internal/domain/leaders"
	"github.com/JerelRocktaschel/jumpshot/internal/domain/standings"
)

func mapStanding(rec map[string]any) (standings.Standing, error) {
	d := decode.New("standing", rec)
	site := d.Object("teamSitesOnly")
	out := standings.Standing{
		TeamID:               d.String("teamId"),
		Tricode:              site.String("teamTricode"),
		TeamName:             site.String("teamName"),
		Nickname:             site.String("teamNickname"),
		Overall:              record(d, "win", "loss"),
		WinPct:               d.Float("winPct"),
		LossPct:              d.Float("lossPct"),
		GamesBehind:          d.Float("gamesBehind"),
		DivisionGamesBehind:  d.Float("divGamesBehind"),
		ConferenceRank:       d.Int("confRank"),
		DivisionRank:         d.Int("divRank"),
		Conference:           record(d, "confWin", "confLoss"),
		Division:             record(d, "divWin", "divLoss"),
		Home:                 record(d, "homeWin", "homeLoss"),
		Away:                 record(d, "awayWin", "awayLoss"),
		LastTen:              record(d, "lastTenWin", "lastTenLoss"),
		Streak:               d.Int("streak"),
		IsWinStreak:          d.Bool("isWinStreak"),
		ClinchedPlayoffsCode: d.OptionalString("clinchedPlayoffsCode"),
	}
	if err := d.Err(); err != nil {
		return standings.Standing{}, err
	}
	return out, nil
}

func record(d *decode.Decoder, wins, losses string) standings.Record {
	return standings.Record{Wins: d.Int(wins), Losses: d.Int(losses)}
}

func mapCoach(rec map[string]any) (coaches.Coach, error) {
	d := decode.New("coach", rec)
	coach := coaches.Coach{
		PersonID:     d.String("personId"),
		FirstName:    d.String("firstName"),
		LastName:     d.String("lastName"),
		TeamID:       d.String("teamId"),
		IsAssistant:  d.Bool("isAssistant"),
		SortSequence: d.Int("sortSequence"),
		College:      d.OptionalString("college"),
	}
	if err := d.Err(); err != nil {
		return coaches.Coach{}, err
	}
	return coach, nil
}

func leader(d *decode.Decoder) leaders.Leader {
	return leaders.Leader{
		PlayerID:      d.Int("PLAYER_ID"),
		Rank:          d.Int("RANK"),
		Player:        d.String("PLAYER"),
		Team:          d.String("TEAM"),
		GamesPlayed:   d.Int("GP"),
		FieldGoalPct:  d.Float("FG_PCT"),
		ThreePointPct: d.Float("FG3_PCT"),
		FreeThrowPct:  d.Float("FT_PCT"),
	}
}

func mapTotalsLeader(rec map[string]any) (leaders.TotalsLeader, error) {
	d := decode.New("league_leader", rec)
	row := leaders.TotalsLeader{
		Leader:             leader(d),
		Minutes:            d.Int("MIN"),
		FieldGoalsMade:     d.Int("FGM"),
		FieldGoalsAttempts: d.Int("FGA"),
		ThreesMade:         d.Int("FG3M"),
		ThreesAttempted:    d.Int("FG3A"),
		FreeThrowsMade:     d.Int("FTM"),
		FreeThrowsAttempts: d.Int("FTA"),
		OffensiveRebounds:  d.Int("OREB"),
		DefensiveRebounds:  d.Int("DREB"),
		Rebounds:           d.Int("REB"),
		Assists:            d.Int("AST"),
		Steals:             d.Int("STL"),
		Blocks:             d.Int("BLK"),
		Turnovers:          d.Int("TOV"),
		Points:             d.Int("PTS"),
		Efficiency:         d.Int("EFF"),
	}
	if err := d.Err(); err != nil {
		return leaders.TotalsLeader{}, err
	}
	return row, nil
}

func mapAverageLeader(rec map[string]any) (leaders.AverageLeader, error) {
	d := decode.New("league_leader", rec)
	row := leaders.AverageLeader{
		Leader:             leader(d),
		Minutes:            d.Float("MIN"),
		FieldGoalsMade:     d.Float("FGM"),
		FieldGoalsAttempts: d.Float("FGA"),
		ThreesMade:         d.Float("FG3M"),
		ThreesAttempted:    d.Float("FG3A"),
		FreeThrowsMade:     d.Float("FTM"),
		FreeThrowsAttempts: d.Float("FTA"),
		OffensiveRebounds:  d.Float("OREB"),
		DefensiveRebounds:  d.Float("DREB"),
		Rebounds:           d.Float("REB"),
		Assists:            d.Float("AST"),
		Steals:             d.Float("STL"),
		Blocks:             d.Float("BLK"),
		Turnovers:          d.Float("TOV"),
		Points:             d.Float("PTS"),
		Efficiency:         d.Float("EFF"),
	}
	if err := d.Err(); err != nil {
		return leaders.AverageLeader{}, err
	}
	return row, nil
}
