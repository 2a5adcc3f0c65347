// Package leaders holds league-wide stat leader rows from the stats host.
//
// The host returns the same columns for every per-mode, but Totals rows carry counting
// integers while PerGame and Per48 rows carry averages, so each gets its own type.
package leaders

// Leader is the identity and rank columns shared by every per-mode.
type Leader struct {
	PlayerID      int     `json:"playerId"`
	Rank          int     `json:"rank"`
	Player        string  `json:"player"`
	Team          string  `json:"team"`
	GamesPlayed   int     `json:"gamesPlayed"`
	FieldGoalPct  float64 `json:"fgPct"`
	ThreePointPct float64 `json:"fg3Pct"`
	FreeThrowPct  float64 `json:"ftPct"`
}

// TotalsLeader is a row ranked on season totals.
type TotalsLeader struct {
	Leader
	Minutes            int `json:"min"`
	FieldGoalsMade     int `json:"fgm"`
	FieldGoalsAttempts int `json:"fga"`
	ThreesMade         int `json:"fg3m"`
	ThreesAttempted    int `json:"fg3a"`
	FreeThrowsMade     int `json:"ftm"`
	FreeThrowsAttempts int `json:"fta"`
	OffensiveRebounds  int `json:"oreb"`
	DefensiveRebounds  int `json:"dreb"`
	Rebounds           int `json:"reb"`
	Assists            int `json:"ast"`
	Steals             int `json:"stl"`
	Blocks             int `json:"blk"`
	Turnovers          int `json:"tov"`
	Points             int `json:"pts"`
	Efficiency         int `json:"eff"`
}

// AverageLeader is a row ranked on per-game or per-48-minute averages.
type AverageLeader struct {
	Leader
	Minutes            float64 `json:"min"`
	FieldGoalsMade     float64 `json:"fgm"`
	FieldGoalsAttempts float64 `json:"fga"`
	ThreesMade         float64 `json:"fg3m"`
	ThreesAttempted    float64 `json:"fg3a"`
	FreeThrowsMade     float64 `json:"ftm"`
	FreeThrowsAttempts float64 `json:"fta"`
	OffensiveRebounds  float64 `json:"oreb"`
	DefensiveRebounds  float64 `json:"dreb"`
	Rebounds           float64 `json:"reb"`
	Assists            float64 `json:"ast"`
	Steals             float64 `json:"stl"`
	Blocks             float64 `json:"blk"`
	Turnovers          float64 `json:"tov"`
	Points             float64 `json:"pts"`
	Efficiency         float64 `json:"eff"`
}
