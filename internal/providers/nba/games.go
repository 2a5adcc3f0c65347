package nba

import (
	"context"
	"time"

	"github.com/JerelRocktaschel/jumpshot/internal/decode"
	"github.com/JerelRocktaschel/jumpshot/internal/domain/games"
	"github.com/JerelRocktaschel/jumpshot/internal/endpoints"
)

// FetchDailySchedule returns the games scheduled league-wide on day, one entry per game with
// all of its broadcasters.
func (c *Client) FetchDailySchedule(ctx context.Context, season string, day time.Time) ([]games.GameSchedule, error) {
	if err := c.checkSeason(endpoints.KindDailySchedule, season); err != nil {
		return nil, err
	}
	op := endpoints.DailySchedule(season, day)
	doc, err := c.document(ctx, op)
	if err != nil {
		return nil, err
	}
	records, err := doc.ResultSetList("CompleteGameList")
	if err != nil {
		return nil, c.decodeFailed(ctx, op, err)
	}
	rows, err := decode.List(records, onScheduleDate(day), mapScheduleRow)
	if err != nil {
		return nil, c.decodeFailed(ctx, op, err)
	}
	return collapseSchedule(rows), nil
}

// FetchBoxscore returns a game's boxscore. Players who did not play are omitted.
func (c *Client) FetchBoxscore(ctx context.Context, day time.Time, gameID string) (games.Boxscore, error) {
	op := endpoints.Boxscore(day, gameID)
	doc, err := c.document(ctx, op)
	if err != nil {
		return games.Boxscore{}, err
	}
	root, err := doc.Object()
	if err != nil {
		return games.Boxscore{}, c.decodeFailed(ctx, op, err)
	}
	records, err := doc.KeyedList("stats", "activePlayers")
	if err != nil {
		return games.Boxscore{}, c.decodeFailed(ctx, op, err)
	}
	box, err := mapBoxscore(root)
	if err != nil {
		return games.Boxscore{}, c.decodeFailed(ctx, op, err)
	}
	box.ActivePlayers, err = decode.List(records, played, mapActivePlayer)
	if err != nil {
		return games.Boxscore{}, c.decodeFailed(ctx, op, err)
	}
	return box, nil
}

// FetchLeadTracker returns the lead snapshots for one period of a game.
func (c *Client) FetchLeadTracker(ctx context.Context, day time.Time, gameID string, period int) (games.LeadTracker, error) {
	op := endpoints.LeadTracker(day, gameID, period)
	doc, err := c.document(ctx, op)
	if err != nil {
		return games.LeadTracker{}, err
	}
	root, err := doc.Object()
	if err != nil {
		return games.LeadTracker{}, c.decodeFailed(ctx, op, err)
	}
	tracker, err := mapLeadTracker(root, gameID, period)
	if err != nil {
		return games.LeadTracker{}, c.decodeFailed(ctx, op, err)
	}
	return tracker, nil
}
