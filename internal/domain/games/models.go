package games

import (
	"fmt"
	"time"
)

// GameClock is a minutes:seconds reading, used both for time played and time left in a period.
type GameClock struct {
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// Duration converts the clock reading to a time.Duration.
func (c GameClock) Duration() time.Duration {
	return time.Duration(c.Minutes)*time.Minute + time.Duration(c.Seconds)*time.Second
}

func (c GameClock) String() string {
	return fmt.Sprintf("%d:%02d", c.Minutes, c.Seconds)
}

// ScheduleTeam identifies a side of a scheduled game as the stats host reports it.
type ScheduleTeam struct {
	Abbreviation string `json:"abbreviation"`
	City         string `json:"city"`
	Nickname     string `json:"nickname"`
}

// GameSchedule is one game on a day's league-wide schedule. When TimeTBD is set StartTime
// carries only the date.
type GameSchedule struct {
	GameID       string       `json:"gameId"`
	HomeTeam     ScheduleTeam `json:"homeTeam"`
	VisitorTeam  ScheduleTeam `json:"visitorTeam"`
	StartTime    time.Time    `json:"startTime"`
	TimeTBD      bool         `json:"timeTbd,omitempty"`
	Broadcasters []string     `json:"broadcasters"`
}

// BoxscoreTeam is one side of a boxscore header. Score is nil before tip-off.
type BoxscoreTeam struct {
	TeamID  string `json:"teamId"`
	Tricode string `json:"tricode"`
	Score   *int   `json:"score,omitempty"`
}

// ActivePlayer is one player's line in a boxscore. Players who did not play are not listed.
type ActivePlayer struct {
	PersonID           string    `json:"personId"`
	FirstName          string    `json:"firstName"`
	LastName           string    `json:"lastName"`
	Jersey             string    `json:"jersey"`
	TeamID             string    `json:"teamId"`
	Position           string    `json:"position"`
	IsOnCourt          bool      `json:"isOnCourt"`
	Minutes            GameClock `json:"minutes"`
	Points             int       `json:"points"`
	FieldGoalsMade     int       `json:"fgm"`
	FieldGoalsAttempts int       `json:"fga"`
	FieldGoalPct       float64   `json:"fgp"`
	FreeThrowsMade     int       `json:"ftm"`
	FreeThrowsAttempts int       `json:"fta"`
	FreeThrowPct       float64   `json:"ftp"`
	ThreesMade         int       `json:"tpm"`
	ThreesAttempted    int       `json:"tpa"`
	ThreePointPct      float64   `json:"tpp"`
	OffensiveRebounds  int       `json:"offReb"`
	DefensiveRebounds  int       `json:"defReb"`
	TotalRebounds      int       `json:"totReb"`
	Assists            int       `json:"assists"`
	PersonalFouls      int       `json:"pFouls"`
	Steals             int       `json:"steals"`
	Turnovers          int       `json:"turnovers"`
	Blocks             int       `json:"blocks"`
	PlusMinus          int       `json:"plusMinus"`
}

// Boxscore is a game's header plus the lines of everyone who played.
type Boxscore struct {
	GameID        string         `json:"gameId"`
	HomeTeam      BoxscoreTeam   `json:"homeTeam"`
	VisitorTeam   BoxscoreTeam   `json:"visitorTeam"`
	ActivePlayers []ActivePlayer `json:"activePlayers"`
}

// LeadTrackerPlay is one lead change or lead extension in a period. LeadTeamID is empty
// while the game is tied.
type LeadTrackerPlay struct {
	Clock      GameClock `json:"clock"`
	LeadTeamID string    `json:"leadTeamId"`
	Points     int       `json:"points"`
}

// LeadTracker is the sequence of lead snapshots in one period of a game.
type LeadTracker struct {
	GameID string            `json:"gameId"`
	Period int               `json:"period"`
	Plays  []LeadTrackerPlay `json:"plays"`
}
