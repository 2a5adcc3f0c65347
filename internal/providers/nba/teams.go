package nba

import (
	"context"

	"github.com/JerelRocktaschel/jumpshot/internal/decode"
	"github.com/JerelRocktaschel/jumpshot/internal/domain/teams"
	"github.com/JerelRocktaschel/jumpshot/internal/endpoints"
)

// FetchTeams returns the NBA franchises for a season. All-star and international entries are dropped.
func (c *Client) FetchTeams(ctx context.Context, season string) ([]teams.Team, error) {
	if err := c.checkSeason(endpoints.KindTeamList, season); err != nil {
		return nil, err
	}
	op := endpoints.TeamList(season)
	doc, err := c.document(ctx, op)
	if err != nil {
		return nil, err
	}
	records, err := doc.KeyedList("league", "standard")
	if err != nil {
		return nil, c.decodeFailed(ctx, op, err)
	}
	out, err := decode.List(records, isFranchise, mapTeam)
	if err != nil {
		return nil, c.decodeFailed(ctx, op, err)
	}
	return out, nil
}

// FetchTeamLeaders returns a team's leader in each tracked category.
func (c *Client) FetchTeamLeaders(ctx context.Context, season, teamID string) (teams.TeamLeaders, error) {
	if err := c.checkSeason(endpoints.KindTeamLeaders, season); err != nil {
		return teams.TeamLeaders{}, err
	}
	op := endpoints.TeamLeaders(season, teamID)
	doc, err := c.document(ctx, op)
	if err != nil {
		return teams.TeamLeaders{}, err
	}
	record, err := doc.KeyedObject("league", "standard")
	if err != nil {
		return teams.TeamLeaders{}, c.decodeFailed(ctx, op, err)
	}
	leaders, err := mapTeamLeaders(record, season, teamID)
	if err != nil {
		return teams.TeamLeaders{}, c.decodeFailed(ctx, op, err)
	}
	return leaders, nil
}

// FetchTeamSchedule returns every game on a team's season schedule with its broadcasts.
func (c *Client) FetchTeamSchedule(ctx context.Context, season, teamID string) ([]teams.TeamSchedule, error) {
	if err := c.checkSeason(endpoints.KindTeamSchedule, season); err != nil {
		return nil, err
	}
	op := endpoints.TeamSchedule(season, teamID)
	doc, err := c.document(ctx, op)
	if err != nil {
		return nil, err
	}
	records, err := doc.KeyedList("league", "standard")
	if err != nil {
		return nil, c.decodeFailed(ctx, op, err)
	}
	out, err := decode.List(records, nil, mapTeamSchedule)
	if err != nil {
		return nil, c.decodeFailed(ctx, op, err)
	}
	return out, nil
}

// FetchTeamStatRankings returns each team's regular season averages and league ranks.
func (c *Client) FetchTeamStatRankings(ctx context.Context, season string) ([]teams.TeamStatRanking, error) {
	if err := c.checkSeason(endpoints.KindTeamStatRankings, season); err != nil {
		return nil, err
	}
	op := endpoints.TeamStatRankings(season)
	doc, err := c.document(ctx, op)
	if err != nil {
		return nil, err
	}
	records, err := doc.KeyedList("league", "standard", "regularSeason", "teams")
	if err != nil {
		return nil, c.decodeFailed(ctx, op, err)
	}
	out, err := decode.List(records, hasFranchiseID, mapTeamStatRanking)
	if err != nil {
		return nil, c.decodeFailed(ctx, op, err)
	}
	return out, nil
}

// FetchTeamImage returns the PNG logo for a team abbreviation.
func (c *Client) FetchTeamImage(ctx context.Context, abbreviation string) ([]byte, error) {
	return c.fetch(ctx, endpoints.TeamImage(abbreviation))
}
