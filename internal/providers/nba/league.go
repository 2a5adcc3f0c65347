package nba

import (
	"context"
	"fmt"

	"github.com/JerelRocktaschel/jumpshot/internal/decode"
	"github.com/JerelRocktaschel/jumpshot/internal/domain/coaches"
	"github.com/JerelRocktaschel/jumpshot/internal/domain/leaders"
	"github.com/JerelRocktaschel/jumpshot/internal/domain/standings"
	"github.com/JerelRocktaschel/jumpshot/internal/endpoints"
	"github.com/JerelRocktaschel/jumpshot/internal/providers"
)

// FetchStandings returns the current league standings.
func (c *Client) FetchStandings(ctx context.Context) ([]standings.Standing, error) {
	op := endpoints.Standings()
	doc, err := c.document(ctx, op)
	if err != nil {
		return nil, err
	}
	records, err := doc.KeyedList("league", "standard", "teams")
	if err != nil {
		return nil, c.decodeFailed(ctx, op, err)
	}
	out, err := decode.List(records, nil, mapStanding)
	if err != nil {
		return nil, c.decodeFailed(ctx, op, err)
	}
	return out, nil
}

// FetchCoaches returns every head and assistant coach for a season.
func (c *Client) FetchCoaches(ctx context.Context, season string) ([]coaches.Coach, error) {
	if err := c.checkSeason(endpoints.KindCoaches, season); err != nil {
		return nil, err
	}
	op := endpoints.Coaches(season)
	doc, err := c.document(ctx, op)
	if err != nil {
		return nil, err
	}
	records, err := doc.KeyedList("league", "standard")
	if err != nil {
		return nil, c.decodeFailed(ctx, op, err)
	}
	out, err := decode.List(records, nil, mapCoach)
	if err != nil {
		return nil, c.decodeFailed(ctx, op, err)
	}
	return out, nil
}

// FetchLeagueTotals returns league leaders ranked on season totals.
func (c *Client) FetchLeagueTotals(ctx context.Context, season string, seasonType endpoints.SeasonType, category string) ([]leaders.TotalsLeader, error) {
	records, err := c.leaderRows(ctx, season, endpoints.PerModeTotals, seasonType, category)
	if err != nil {
		return nil, err
	}
	out, err := decode.List(records, nil, mapTotalsLeader)
	if err != nil {
		return nil, c.decodeFailed(ctx, endpoints.LeagueLeaders(season, endpoints.PerModeTotals, seasonType, category), err)
	}
	return out, nil
}

// FetchLeagueAverages returns league leaders ranked on per-game or per-48 averages.
func (c *Client) FetchLeagueAverages(ctx context.Context, season string, mode endpoints.PerMode, seasonType endpoints.SeasonType, category string) ([]leaders.AverageLeader, error) {
	if mode == "" {
		mode = endpoints.PerModePerGame
	}
	if mode.IsTotals() {
		return nil, fmt.Errorf("%s: %w", endpoints.KindLeagueLeaders, &providers.InvalidParameterError{
			Name:   "mode",
			Value:  string(mode),
			Reason: "totals rows are integers; use FetchLeagueTotals",
		})
	}
	records, err := c.leaderRows(ctx, season, mode, seasonType, category)
	if err != nil {
		return nil, err
	}
	out, err := decode.List(records, nil, mapAverageLeader)
	if err != nil {
		return nil, c.decodeFailed(ctx, endpoints.LeagueLeaders(season, mode, seasonType, category), err)
	}
	return out, nil
}

func (c *Client) leaderRows(ctx context.Context, season string, mode endpoints.PerMode, seasonType endpoints.SeasonType, category string) ([]map[string]any, error) {
	if err := c.checkSeason(endpoints.KindLeagueLeaders, season); err != nil {
		return nil, err
	}
	op := endpoints.LeagueLeaders(season, mode, seasonType, category)
	doc, err := c.document(ctx, op)
	if err != nil {
		return nil, err
	}
	rows, err := doc.Tabular()
	if err != nil {
		return nil, c.decodeFailed(ctx, op, err)
	}
	return rows, nil
}
