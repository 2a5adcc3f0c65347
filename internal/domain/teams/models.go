package teams

import "time"

// Team is one NBA franchise for a season.
type Team struct {
	ID           string `json:"id"`
	Abbreviation string `json:"abbreviation"`
	City         string `json:"city"`
	AltCityName  string `json:"altCityName"`
	FullName     string `json:"fullName"`
	Nickname     string `json:"nickname"`
	ShortName    string `json:"shortName"`
	URLName      string `json:"urlName"`
	Conference   string `json:"conference"`
	Division     string `json:"division"`
	IsAllStar    bool   `json:"isAllStar"`
}

// StatLeader is the player leading a team in one category.
type StatLeader struct {
	Category string  `json:"category"`
	PersonID string  `json:"personId"`
	Value    float64 `json:"value"`
}

// TeamLeaders holds a team's leader in each tracked category.
type TeamLeaders struct {
	TeamID        string     `json:"teamId"`
	Season        string     `json:"season"`
	Points        StatLeader `json:"points"`
	Rebounds      StatLeader `json:"rebounds"`
	Assists       StatLeader `json:"assists"`
	FieldGoalPct  StatLeader `json:"fieldGoalPct"`
	ThreePointPct StatLeader `json:"threePointPct"`
	FreeThrowPct  StatLeader `json:"freeThrowPct"`
	Blocks        StatLeader `json:"blocks"`
	Steals        StatLeader `json:"steals"`
	Turnovers     StatLeader `json:"turnovers"`
	PersonalFouls StatLeader `json:"personalFouls"`
}

// Leaders returns the categories in display order.
func (l TeamLeaders) Leaders() []StatLeader {
	return []StatLeader{
		l.Points, l.Rebounds, l.Assists,
		l.FieldGoalPct, l.ThreePointPct, l.FreeThrowPct,
		l.Blocks, l.Steals, l.Turnovers, l.PersonalFouls,
	}
}

// Broadcast lists the outlets carrying a game in one category/subcategory, e.g. audio/hTeam.
type Broadcast struct {
	Category    string   `json:"category"`
	Subcategory string   `json:"subcategory"`
	Names       []string `json:"names"`
}

// ScheduleSide is one participant of a scheduled game. Score is nil until the game has one.
type ScheduleSide struct {
	TeamID string `json:"teamId"`
	Score  *int   `json:"score,omitempty"`
}

// TeamSchedule is one game on a team's season schedule.
type TeamSchedule struct {
	GameID           string       `json:"gameId"`
	GameURLCode      string       `json:"gameUrlCode"`
	SeasonStageID    int          `json:"seasonStageId"`
	StatusNum        int          `json:"statusNum"`
	StartTimeUTC     time.Time    `json:"startTimeUtc"`
	StartDateEastern time.Time    `json:"startDateEastern"`
	IsHomeTeam       bool         `json:"isHomeTeam"`
	HomeTeam         ScheduleSide `json:"homeTeam"`
	VisitorTeam      ScheduleSide `json:"visitorTeam"`
	Broadcasts       []Broadcast  `json:"broadcasts"`
}

// RankedStat is a per-game average and the team's league rank in it.
type RankedStat struct {
	Average float64 `json:"average"`
	Rank    int     `json:"rank"`
}

// TeamStatRanking is a team's regular season per-game averages with league ranks.
type TeamStatRanking struct {
	TeamID            string     `json:"teamId"`
	Abbreviation      string     `json:"abbreviation"`
	Name              string     `json:"name"`
	Nickname          string     `json:"nickname"`
	Minutes           RankedStat `json:"minutes"`
	FieldGoalPct      RankedStat `json:"fieldGoalPct"`
	ThreePointPct     RankedStat `json:"threePointPct"`
	FreeThrowPct      RankedStat `json:"freeThrowPct"`
	OffensiveRebounds RankedStat `json:"offensiveRebounds"`
	DefensiveRebounds RankedStat `json:"defensiveRebounds"`
	TotalRebounds     RankedStat `json:"totalRebounds"`
	Assists           RankedStat `json:"assists"`
	Turnovers         RankedStat `json:"turnovers"`
	Steals            RankedStat `json:"steals"`
	Blocks            RankedStat `json:"blocks"`
	PersonalFouls     RankedStat `json:"personalFouls"`
	Points            RankedStat `json:"points"`
	OpponentPoints    RankedStat `json:"opponentPoints"`
	Efficiency        RankedStat `json:"efficiency"`
}
