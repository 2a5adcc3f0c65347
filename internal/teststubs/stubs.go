package teststubs

import (
	"context"
	"sync"
	"time"

	"github.com/JerelRocktaschel/jumpshot/internal/domain/coaches"
	"github.com/JerelRocktaschel/jumpshot/internal/domain/games"
	"github.com/JerelRocktaschel/jumpshot/internal/domain/leaders"
	"github.com/JerelRocktaschel/jumpshot/internal/domain/players"
	"github.com/JerelRocktaschel/jumpshot/internal/domain/standings"
	"github.com/JerelRocktaschel/jumpshot/internal/domain/teams"
	"github.com/JerelRocktaschel/jumpshot/internal/endpoints"
	"github.com/JerelRocktaschel/jumpshot/internal/providers"
)

// StubCall records one provider invocation.
type StubCall struct {
	Method string
	Args   []any
}

// StubProvider is a canned providers.DataProvider. Every method returns its field and Err.
type StubProvider struct {
	Teams        []teams.Team
	TeamLeaders  teams.TeamLeaders
	TeamSchedule []teams.TeamSchedule
	Rankings     []teams.TeamStatRanking
	Players      []players.Player
	Summary      players.PlayerStatsSummary
	Schedule     []games.GameSchedule
	Boxscore     games.Boxscore
	LeadTracker  games.LeadTracker
	Standings    []standings.Standing
	Coaches      []coaches.Coach
	Totals       []leaders.TotalsLeader
	Averages     []leaders.AverageLeader
	Image        []byte
	Err          error

	mu    sync.Mutex
	calls []StubCall
}

var _ providers.DataProvider = (*StubProvider)(nil)

// Calls returns the invocations seen so far.
func (s *StubProvider) Calls() []StubCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]StubCall, len(s.calls))
	copy(out, s.calls)
	return out
}

// LastCall returns the most recent invocation, or a zero StubCall.
func (s *StubProvider) LastCall() StubCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.calls) == 0 {
		return StubCall{}
	}
	return s.calls[len(s.calls)-1]
}

func (s *StubProvider) record(method string, args ...any) {
	s.mu.Lock()
	s.calls = append(s.calls, StubCall{Method: method, Args: args})
	s.mu.Unlock()
}

func (s *StubProvider) FetchTeams(_ context.Context, season string) ([]teams.Team, error) {
	s.record("FetchTeams", season)
	return s.Teams, s.Err
}

func (s *StubProvider) FetchTeamLeaders(_ context.Context, season, teamID string) (teams.TeamLeaders, error) {
	s.record("FetchTeamLeaders", season, teamID)
	return s.TeamLeaders, s.Err
}

func (s *StubProvider) FetchTeamSchedule(_ context.Context, season, teamID string) ([]teams.TeamSchedule, error) {
	s.record("FetchTeamSchedule", season, teamID)
	return s.TeamSchedule, s.Err
}

func (s *StubProvider) FetchTeamStatRankings(_ context.Context, season string) ([]teams.TeamStatRanking, error) {
	s.record("FetchTeamStatRankings", season)
	return s.Rankings, s.Err
}

func (s *StubProvider) FetchTeamImage(_ context.Context, abbreviation string) ([]byte, error) {
	s.record("FetchTeamImage", abbreviation)
	return s.Image, s.Err
}

func (s *StubProvider) FetchPlayers(_ context.Context, season string) ([]players.Player, error) {
	s.record("FetchPlayers", season)
	return s.Players, s.Err
}

func (s *StubProvider) FetchPlayerStatsSummary(_ context.Context, season, playerID string) (players.PlayerStatsSummary, error) {
	s.record("FetchPlayerStatsSummary", season, playerID)
	return s.Summary, s.Err
}

func (s *StubProvider) FetchPlayerImage(_ context.Context, playerID string, size endpoints.ImageSize) ([]byte, error) {
	s.record("FetchPlayerImage", playerID, size)
	return s.Image, s.Err
}

func (s *StubProvider) FetchDailySchedule(_ context.Context, season string, day time.Time) ([]games.GameSchedule, error) {
	s.record("FetchDailySchedule", season, day)
	return s.Schedule, s.Err
}

func (s *StubProvider) FetchBoxscore(_ context.Context, day time.Time, gameID string) (games.Boxscore, error) {
	s.record("FetchBoxscore", day, gameID)
	return s.Boxscore, s.Err
}

func (s *StubProvider) FetchLeadTracker(_ context.Context, day time.Time, gameID string, period int) (games.LeadTracker, error) {
	s.record("FetchLeadTracker", day, gameID, period)
	return s.LeadTracker, s.Err
}

func (s *StubProvider) FetchStandings(_ context.Context) ([]standings.Standing, error) {
	s.record("FetchStandings")
	return s.Standings, s.Err
}

func (s *StubProvider) FetchCoaches(_ context.Context, season string) ([]coaches.Coach, error) {
	s.record("FetchCoaches", season)
	return s.Coaches, s.Err
}

func (s *StubProvider) FetchLeagueTotals(_ context.Context, season string, seasonType endpoints.SeasonType, category string) ([]leaders.TotalsLeader, error) {
	s.record("FetchLeagueTotals", season, seasonType, category)
	return s.Totals, s.Err
}

func (s *StubProvider) FetchLeagueAverages(_ context.Context, season string, mode endpoints.PerMode, seasonType endpoints.SeasonType, category string) ([]leaders.AverageLeader, error) {
	s.record("FetchLeagueAverages", season, mode, seasonType, category)
	return s.Averages, s.Err
}
