package nba

import (
	"context"

	"github.com/JerelRocktaschel/jumpshot/internal/decode"
	"github.com/JerelRocktaschel/jumpshot/internal/domain/players"
	"github.com/JerelRocktaschel/jumpshot/internal/endpoints"
)

// FetchPlayers returns the active players for a season.
func (c *Client) FetchPlayers(ctx context.Context, season string) ([]players.Player, error) {
	if err := c.checkSeason(endpoints.KindPlayerList, season); err != nil {
		return nil, err
	}
	op := endpoints.PlayerList(season)
	doc, err := c.document(ctx, op)
	if err != nil {
		return nil, err
	}
	records, err := doc.KeyedList("league", "standard")
	if err != nil {
		return nil, c.decodeFailed(ctx, op, err)
	}
	out, err := decode.List(records, isActive, mapPlayer)
	if err != nil {
		return nil, c.decodeFailed(ctx, op, err)
	}
	return out, nil
}

// FetchPlayerStatsSummary returns a player's latest season and career summary.
func (c *Client) FetchPlayerStatsSummary(ctx context.Context, season, playerID string) (players.PlayerStatsSummary, error) {
	if err := c.checkSeason(endpoints.KindPlayerStatsSummary, season); err != nil {
		return players.PlayerStatsSummary{}, err
	}
	op := endpoints.PlayerStatsSummary(season, playerID)
	doc, err := c.document(ctx, op)
	if err != nil {
		return players.PlayerStatsSummary{}, err
	}
	record, err := doc.KeyedObject("league", "standard")
	if err != nil {
		return players.PlayerStatsSummary{}, c.decodeFailed(ctx, op, err)
	}
	summary, err := mapPlayerStatsSummary(record, playerID)
	if err != nil {
		return players.PlayerStatsSummary{}, c.decodeFailed(ctx, op, err)
	}
	return summary, nil
}

// FetchPlayerImage returns a player's PNG headshot at the requested size.
func (c *Client) FetchPlayerImage(ctx context.Context, playerID string, size endpoints.ImageSize) ([]byte, error) {
	return c.fetch(ctx, endpoints.PlayerImage(playerID, size))
}
