package nba

import (
	"fmt"
	"strings"

	"github.com/JerelRocktaschel/jumpshot/internal/decode"
	"github.com/JerelRocktaschel/jumpshot/internal/domain/teams"
	"github.com/JerelRocktaschel/jumpshot/internal/envelope"
	"github.com/JerelRocktaschel/jumpshot/internal/timeutil"
)

func isFranchise(rec map[string]any) bool {
	return decode.Truthy(rec["isNBAFranchise"])
}

func hasFranchiseID(rec map[string]any) bool {
	id := strings.TrimSpace(fmt.Sprint(rec["teamId"]))
	return strings.HasPrefix(id, franchiseIDPrefix)
}

func mapTeam(rec map[string]any) (teams.Team, error) {
	d := decode.New("team", rec)
	team := teams.Team{
		ID:           d.String("teamId"),
		Abbreviation: d.String("tricode"),
		City:         d.String("city"),
		AltCityName:  d.OptionalString("altCityName"),
		FullName:     d.String("fullName"),
		Nickname:     d.String("nickname"),
		ShortName:    d.OptionalString("teamShortName"),
		URLName:      d.OptionalString("urlName"),
		Conference:   d.String("confName"),
		Division:     d.String("divName"),
		IsAllStar:    d.Bool("isAllStar"),
	}
	if err := d.Err(); err != nil {
		return teams.Team{}, err
	}
	return team, nil
}

// leaderCategories maps the upstream category keys onto TeamLeaders fields.
var leaderCategories = []struct {
	key string
	set func(*teams.TeamLeaders, teams.StatLeader)
}{
	{"ppg", func(l *teams.TeamLeaders, s teams.StatLeader) { l.Points = s }},
	{"trpg", func(l *teams.TeamLeaders, s teams.StatLeader) { l.Rebounds = s }},
	{"apg", func(l *teams.TeamLeaders, s teams.StatLeader) { l.Assists = s }},
	{"fgp", func(l *teams.TeamLeaders, s teams.StatLeader) { l.FieldGoalPct = s }},
	{"tpp", func(l *teams.TeamLeaders, s teams.StatLeader) { l.ThreePointPct = s }},
	{"ftp", func(l *teams.TeamLeaders, s teams.StatLeader) { l.FreeThrowPct = s }},
	{"bpg", func(l *teams.TeamLeaders, s teams.StatLeader) { l.Blocks = s }},
	{"spg", func(l *teams.TeamLeaders, s teams.StatLeader) { l.Steals = s }},
	{"tpg", func(l *teams.TeamLeaders, s teams.StatLeader) { l.Turnovers = s }},
	{"pfpg", func(l *teams.TeamLeaders, s teams.StatLeader) { l.PersonalFouls = s }},
}

func mapTeamLeaders(rec map[string]any, season, teamID string) (teams.TeamLeaders, error) {
	d := decode.New("team_leaders", rec)
	out := teams.TeamLeaders{TeamID: teamID, Season: season}
	for _, cat := range leaderCategories {
		entries := d.Objects(cat.key)
		if d.Err() != nil {
			break
		}
		if len(entries) == 0 {
			d.Fail(cat.key, nil, "no leader listed")
			break
		}
		top := entries[0]
		cat.set(&out, teams.StatLeader{
			Category: cat.key,
			PersonID: top.String("personId"),
			Value:    top.Float("value"),
		})
	}
	if err := d.Err(); err != nil {
		return teams.TeamLeaders{}, err
	}
	return out, nil
}

func mapTeamSchedule(rec map[string]any) (teams.TeamSchedule, error) {
	d := decode.New("team_schedule", rec)
	game := teams.TeamSchedule{
		GameID:           d.String("gameId"),
		GameURLCode:      d.String("gameUrlCode"),
		SeasonStageID:    d.Int("seasonStageId"),
		StatusNum:        d.Int("statusNum"),
		StartTimeUTC:     d.Time("startTimeUTC", timeutil.UTCTimestampLayout, nil),
		StartDateEastern: d.Time("startDateEastern", timeutil.PathDateLayout, timeutil.Eastern()),
		IsHomeTeam:       d.Bool("isHomeTeam"),
		HomeTeam:         scheduleSide(d.Object("hTeam")),
		VisitorTeam:      scheduleSide(d.Object("vTeam")),
	}
	if err := d.Err(); err != nil {
		return teams.TeamSchedule{}, err
	}

	broadcasts, err := envelope.Broadcasts(rec)
	if err != nil {
		return teams.TeamSchedule{}, err
	}
	game.Broadcasts = make([]teams.Broadcast, 0, len(broadcasts))
	for _, b := range broadcasts {
		game.Broadcasts = append(game.Broadcasts, teams.Broadcast{
			Category:    b.Category,
			Subcategory: b.Subcategory,
			Names:       b.Names,
		})
	}
	return game, nil
}

func scheduleSide(d *decode.Decoder) teams.ScheduleSide {
	side := teams.ScheduleSide{TeamID: d.String("teamId")}
	if score, ok := d.OptionalInt("score"); ok {
		side.Score = &score
	}
	return side
}

func mapTeamStatRanking(rec map[string]any) (teams.TeamStatRanking, error) {
	d := decode.New("team_stat_ranking", rec)
	out := teams.TeamStatRanking{
		TeamID:            d.String("teamId"),
		Abbreviation:      d.String("abbreviation"),
		Name:              d.String("name"),
		Nickname:          d.String("nickname"),
		Minutes:           rankedStat(d.Object("min")),
		FieldGoalPct:      rankedStat(d.Object("fgp")),
		ThreePointPct:     rankedStat(d.Object("tpp")),
		FreeThrowPct:      rankedStat(d.Object("ftp")),
		OffensiveRebounds: rankedStat(d.Object("orpg")),
		DefensiveRebounds: rankedStat(d.Object("drpg")),
		TotalRebounds:     rankedStat(d.Object("trpg")),
		Assists:           rankedStat(d.Object("apg")),
		Turnovers:         rankedStat(d.Object("tpg")),
		Steals:            rankedStat(d.Object("spg")),
		Blocks:            rankedStat(d.Object("bpg")),
		PersonalFouls:     rankedStat(d.Object("pfpg")),
		Points:            rankedStat(d.Object("ppg")),
		OpponentPoints:    rankedStat(d.Object("oppg")),
		Efficiency:        rankedStat(d.Object("eff")),
	}
	if err := d.Err(); err != nil {
		return teams.TeamStatRanking{}, err
	}
	return out, nil
}

func rankedStat(d *decode.Decoder) teams.RankedStat {
	return teams.RankedStat{
		Average: d.Float("avg"),
		Rank:    d.Int("rank"),
	}
}
