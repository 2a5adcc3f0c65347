package players

import "time"

// Player is an active player on a season roster.
type Player struct {
	ID              string       `json:"id"`
	FirstName       string       `json:"firstName"`
	LastName        string       `json:"lastName"`
	DisplayName     string       `json:"displayName"`
	TeamID          string       `json:"teamId"`
	Jersey          string       `json:"jersey"`
	Position        string       `json:"position"`
	HeightFeet      int          `json:"heightFeet"`
	HeightInches    int          `json:"heightInches"`
	HeightMeters    float64      `json:"heightMeters"`
	WeightPounds    int          `json:"weightPounds"`
	WeightKilograms float64      `json:"weightKilograms"`
	DateOfBirth     time.Time    `json:"dateOfBirth"`
	Teams           []TeamTenure `json:"teams"`
	Draft           *Draft       `json:"draft,omitempty"`
	NBADebutYear    int          `json:"nbaDebutYear"`
	YearsPro        int          `json:"yearsPro"`
	College         string       `json:"college"`
	LastAffiliation string       `json:"lastAffiliation"`
	Country         string       `json:"country"`
}

// TeamTenure is a stretch of seasons a player spent with one team.
type TeamTenure struct {
	TeamID      string `json:"teamId"`
	SeasonStart int    `json:"seasonStart"`
	SeasonEnd   int    `json:"seasonEnd"`
}

// Draft describes how a player entered the league. Undrafted players have no Draft.
type Draft struct {
	TeamID     string `json:"teamId"`
	PickNum    int    `json:"pickNum"`
	RoundNum   int    `json:"roundNum"`
	SeasonYear int    `json:"seasonYear"`
}

// StatLine is a block of per-game averages and counting totals.
type StatLine struct {
	PointsPerGame      float64 `json:"ppg"`
	ReboundsPerGame    float64 `json:"rpg"`
	AssistsPerGame     float64 `json:"apg"`
	MinutesPerGame     float64 `json:"mpg"`
	TurnoversPerGame   float64 `json:"topg"`
	StealsPerGame      float64 `json:"spg"`
	BlocksPerGame      float64 `json:"bpg"`
	ThreePointPct      float64 `json:"tpp"`
	FreeThrowPct       float64 `json:"ftp"`
	FieldGoalPct       float64 `json:"fgp"`
	Assists            int     `json:"assists"`
	Blocks             int     `json:"blocks"`
	Steals             int     `json:"steals"`
	Turnovers          int     `json:"turnovers"`
	OffensiveRebounds  int     `json:"offReb"`
	DefensiveRebounds  int     `json:"defReb"`
	TotalRebounds      int     `json:"totReb"`
	FieldGoalsMade     int     `json:"fgm"`
	FieldGoalsAttempts int     `json:"fga"`
	ThreesMade         int     `json:"tpm"`
	ThreesAttempted    int     `json:"tpa"`
	FreeThrowsMade     int     `json:"ftm"`
	FreeThrowsAttempts int     `json:"fta"`
	PersonalFouls      int     `json:"pFouls"`
	Points             int     `json:"points"`
	GamesPlayed        int     `json:"gamesPlayed"`
	GamesStarted       int     `json:"gamesStarted"`
	PlusMinus          int     `json:"plusMinus"`
	Minutes            int     `json:"min"`
	DoubleDoubles      int     `json:"dd2"`
	TripleDoubles      int     `json:"td3"`
}

// SeasonStats is the stat line for the most recent season stage.
type SeasonStats struct {
	SeasonYear    int      `json:"seasonYear"`
	SeasonStageID int      `json:"seasonStageId"`
	Stats         StatLine `json:"stats"`
}

// PlayerStatsSummary pairs a player's latest season with their career summary.
// Career.TurnoversPerGame may be derived from Turnovers / GamesPlayed when upstream omits it.
type PlayerStatsSummary struct {
	PlayerID string      `json:"playerId"`
	TeamID   string      `json:"teamId"`
	Latest   SeasonStats `json:"latest"`
	Career   StatLine    `json:"career"`
}
