package providers

import (
	"context"
	"time"

	"github.com/JerelRocktaschel/jumpshot/internal/domain/coaches"
	"github.com/JerelRocktaschel/jumpshot/internal/domain/games"
	"github.com/JerelRocktaschel/jumpshot/internal/domain/leaders"
	"github.com/JerelRocktaschel/jumpshot/internal/domain/players"
	"github.com/JerelRocktaschel/jumpshot/internal/domain/standings"
	"github.com/JerelRocktaschel/jumpshot/internal/domain/teams"
	"github.com/JerelRocktaschel/jumpshot/internal/endpoints"
)

// TeamProvider fetches team-scoped records. Season is a starting year such as "2020".
type TeamProvider interface {
	FetchTeams(ctx context.Context, season string) ([]teams.Team, error)
	FetchTeamLeaders(ctx context.Context, season, teamID string) (teams.TeamLeaders, error)
	FetchTeamSchedule(ctx context.Context, season, teamID string) ([]teams.TeamSchedule, error)
	FetchTeamStatRankings(ctx context.Context, season string) ([]teams.TeamStatRanking, error)
	FetchTeamImage(ctx context.Context, abbreviation string) ([]byte, error)
}

// PlayerProvider fetches player-scoped records.
type PlayerProvider interface {
	FetchPlayers(ctx context.Context, season string) ([]players.Player, error)
	FetchPlayerStatsSummary(ctx context.Context, season, playerID string) (players.PlayerStatsSummary, error)
	FetchPlayerImage(ctx context.Context, playerID string, size endpoints.ImageSize) ([]byte, error)
}

// GameProvider fetches schedule and in-game records.
type GameProvider interface {
	FetchDailySchedule(ctx context.Context, season string, day time.Time) ([]games.GameSchedule, error)
	FetchBoxscore(ctx context.Context, day time.Time, gameID string) (games.Boxscore, error)
	FetchLeadTracker(ctx context.Context, day time.Time, gameID string, period int) (games.LeadTracker, error)
}

// LeagueProvider fetches league-wide records.
type LeagueProvider interface {
	FetchStandings(ctx context.Context) ([]standings.Standing, error)
	FetchCoaches(ctx context.Context, season string) ([]coaches.Coach, error)
	FetchLeagueTotals(ctx context.Context, season string, seasonType endpoints.SeasonType, category string) ([]leaders.TotalsLeader, error)
	FetchLeagueAverages(ctx context.Context, season string, mode endpoints.PerMode, seasonType endpoints.SeasonType, category string) ([]leaders.AverageLeader, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	TeamProvider
	PlayerProvider
	GameProvider
	LeagueProvider
}
