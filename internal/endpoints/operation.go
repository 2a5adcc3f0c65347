package endpoints

import (
	"strings"
	"time"
)

// Kind enumerates the operations the catalog can resolve.
type Kind int

const (
	KindTeamList Kind = iota + 1
	KindTeamImage
	KindPlayerList
	KindPlayerImage
	KindDailySchedule
	KindStandings
	KindTeamLeaders
	KindTeamSchedule
	KindCoaches
	KindTeamStatRankings
	KindPlayerStatsSummary
	KindLeadTracker
	KindBoxscore
	KindLeagueLeaders
)

var kindNames = map[Kind]string{
	KindTeamList:           "team_list",
	KindTeamImage:          "team_image",
	KindPlayerList:         "player_list",
	KindPlayerImage:        "player_image",
	KindDailySchedule:      "daily_schedule",
	KindStandings:          "standings",
	KindTeamLeaders:        "team_leaders",
	KindTeamSchedule:       "team_schedule",
	KindCoaches:            "coaches",
	KindTeamStatRankings:   "team_stat_rankings",
	KindPlayerStatsSummary: "player_stats_summary",
	KindLeadTracker:        "lead_tracker",
	KindBoxscore:           "boxscore",
	KindLeagueLeaders:      "league_leaders",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// IsImage reports whether the operation returns raw image bytes instead of JSON.
func (k Kind) IsImage() bool {
	return k == KindTeamImage || k == KindPlayerImage
}

// ImageSize selects a headshot resolution.
type ImageSize int

const (
	ImageSizeSmall ImageSize = iota
	ImageSizeLarge
)

func (s ImageSize) String() string {
	if s == ImageSizeLarge {
		return "1040x760"
	}
	return "260x190"
}

// ParseImageSize accepts "small" or "large" in any case; "" is small.
func ParseImageSize(raw string) (ImageSize, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "small":
		return ImageSizeSmall, true
	case "large":
		return ImageSizeLarge, true
	}
	return ImageSizeSmall, false
}

// PerMode selects how league leader stats are aggregated.
type PerMode string

const (
	PerModeTotals  PerMode = "Totals"
	PerModePerGame PerMode = "PerGame"
	PerModePer48   PerMode = "Per48"
)

// IsTotals reports whether rows carry counting totals rather than averages.
func (m PerMode) IsTotals() bool {
	return m == PerModeTotals
}

// ParsePerMode accepts Totals, PerGame or Per48 in any case; "" is PerGame.
func ParsePerMode(raw string) (PerMode, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "pergame":
		return PerModePerGame, true
	case "totals":
		return PerModeTotals, true
	case "per48":
		return PerModePer48, true
	}
	return "", false
}

// SeasonType selects which part of the season league leaders cover.
type SeasonType string

const (
	SeasonTypeRegular  SeasonType = "Regular Season"
	SeasonTypePlayoffs SeasonType = "Playoffs"
)

// ParseSeasonType accepts "regular", "Regular Season" or "playoffs" in any case; "" is the
// regular season.
func ParseSeasonType(raw string) (SeasonType, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "regular", "regular season":
		return SeasonTypeRegular, true
	case "playoffs":
		return SeasonTypePlayoffs, true
	}
	return "", false
}

// Operation is one logical request. Only the fields relevant to Kind are set; use the
// constructors below rather than filling the struct by hand.
type Operation struct {
	Kind             Kind
	Season           string
	TeamID           string
	TeamAbbreviation string
	PlayerID         string
	GameID           string
	Period           int
	Date             time.Time
	ImageSize        ImageSize
	PerMode          PerMode
	SeasonType       SeasonType
	StatCategory     string
}

func TeamList(season string) Operation {
	return Operation{Kind: KindTeamList, Season: season}
}

func TeamImage(abbreviation string) Operation {
	return Operation{Kind: KindTeamImage, TeamAbbreviation: abbreviation}
}

func PlayerList(season string) Operation {
	return Operation{Kind: KindPlayerList, Season: season}
}

func PlayerImage(playerID string, size ImageSize) Operation {
	return Operation{Kind: KindPlayerImage, PlayerID: playerID, ImageSize: size}
}

// DailySchedule covers the games of one calendar day. Only the date portion of day is used.
func DailySchedule(season string, day time.Time) Operation {
	return Operation{Kind: KindDailySchedule, Season: season, Date: day}
}

func Standings() Operation {
	return Operation{Kind: KindStandings}
}

func TeamLeaders(season, teamID string) Operation {
	return Operation{Kind: KindTeamLeaders, Season: season, TeamID: teamID}
}

func TeamSchedule(season, teamID string) Operation {
	return Operation{Kind: KindTeamSchedule, Season: season, TeamID: teamID}
}

func Coaches(season string) Operation {
	return Operation{Kind: KindCoaches, Season: season}
}

func TeamStatRankings(season string) Operation {
	return Operation{Kind: KindTeamStatRankings, Season: season}
}

func PlayerStatsSummary(season, playerID string) Operation {
	return Operation{Kind: KindPlayerStatsSummary, Season: season, PlayerID: playerID}
}

func LeadTracker(day time.Time, gameID string, period int) Operation {
	return Operation{Kind: KindLeadTracker, Date: day, GameID: gameID, Period: period}
}

func Boxscore(day time.Time, gameID string) Operation {
	return Operation{Kind: KindBoxscore, Date: day, GameID: gameID}
}

// LeagueLeaders ranks players in one stat category. Empty mode, season type or category fall
// back to PerGame, Regular Season and PTS.
func LeagueLeaders(season string, mode PerMode, seasonType SeasonType, category string) Operation {
	if mode == "" {
		mode = PerModePerGame
	}
	if seasonType == "" {
		seasonType = SeasonTypeRegular
	}
	if category == "" {
		category = "PTS"
	}
	return Operation{Kind: KindLeagueLeaders, Season: season, PerMode: mode, SeasonType: seasonType, StatCategory: category}
}
