package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/JerelRocktaschel/jumpshot/internal/domain/games"
	"github.com/JerelRocktaschel/jumpshot/internal/domain/standings"
	"github.com/JerelRocktaschel/jumpshot/internal/providers"
	"github.com/JerelRocktaschel/jumpshot/internal/providers/nba"
	"github.com/JerelRocktaschel/jumpshot/internal/timeutil"
)

// gameDay parses --date, falling back to today in Eastern time when the flag is optional.
func (a *app) gameDay(raw string, required bool) (time.Time, error) {
	if raw == "" {
		if required {
			return time.Time{}, &providers.InvalidParameterError{Name: "date", Value: raw, Reason: "required (expected YYYY-MM-DD)"}
		}
		now := a.clock().In(timeutil.Eastern())
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	day, err := timeutil.ParseDate(raw)
	if err != nil {
		return time.Time{}, &providers.InvalidParameterError{Name: "date", Value: raw, Reason: "expected YYYY-MM-DD"}
	}
	return day, nil
}

func newScheduleCommand(a *app) *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "List games and broadcasters for one day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			day, err := a.gameDay(date, false)
			if err != nil {
				return err
			}
			out, err := a.client.FetchDailySchedule(cmd.Context(), a.currentSeason(), day)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "game day as YYYY-MM-DD (default today, US Eastern)")
	return cmd
}

func newBoxscoreCommand(a *app) *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "boxscore GAME_ID",
		Short: "Show the box score for a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := a.gameDay(date, true)
			if err != nil {
				return err
			}
			out, err := a.client.FetchBoxscore(cmd.Context(), day, args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "game day as YYYY-MM-DD")
	return cmd
}

func newLeadTrackerCommand(a *app) *cobra.Command {
	var (
		date   string
		period int
	)
	cmd := &cobra.Command{
		Use:   "leadtracker GAME_ID",
		Short: "Show lead changes for one period of a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := a.gameDay(date, true)
			if err != nil {
				return err
			}
			if period < 1 {
				return &providers.InvalidParameterError{Name: "period", Value: fmt.Sprint(period), Reason: "expected a positive integer"}
			}
			out, err := a.client.FetchLeadTracker(cmd.Context(), day, args[0], period)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "game day as YYYY-MM-DD")
	cmd.Flags().IntVar(&period, "period", 1, "period number, overtimes continue from 5")
	return cmd
}

type todayReport struct {
	Date      string               `json:"date"`
	Games     []games.GameSchedule `json:"games"`
	Standings []standings.Standing `json:"standings"`
}

// newTodayCommand fetches the day's schedule and the standings concurrently.
func newTodayCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show today's games alongside current standings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			day, err := a.gameDay("", false)
			if err != nil {
				return err
			}
			seasonYear := a.currentSeason()

			ctx := cmd.Context()
			scheduleCh := nba.Async(ctx, func(ctx context.Context) ([]games.GameSchedule, error) {
				return a.client.FetchDailySchedule(ctx, seasonYear, day)
			})
			standingsCh := nba.Async(ctx, a.client.FetchStandings)

			schedule, table := <-scheduleCh, <-standingsCh
			if schedule.Err != nil {
				return fmt.Errorf("schedule: %w", schedule.Err)
			}
			if table.Err != nil {
				return fmt.Errorf("standings: %w", table.Err)
			}
			return printJSON(cmd.OutOrStdout(), todayReport{
				Date:      timeutil.FormatDate(day),
				Games:     schedule.Value,
				Standings: table.Value,
			})
		},
	}
}
