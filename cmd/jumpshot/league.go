package main

import (
	"github.com/spf13/cobra"

	"github.com/JerelRocktaschel/jumpshot/internal/endpoints"
	"github.com/JerelRocktaschel/jumpshot/internal/providers"
)

func newStandingsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "standings",
		Short: "Show current league standings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := a.client.FetchStandings(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
}

func newCoachesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "coaches",
		Short: "List coaching staffs for a season",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := a.client.FetchCoaches(cmd.Context(), a.currentSeason())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
}

func newLeadersCommand(a *app) *cobra.Command {
	var (
		mode       string
		seasonType string
		category   string
	)
	cmd := &cobra.Command{
		Use:   "leaders",
		Short: "Show league leaders for a stat category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			perMode, ok := endpoints.ParsePerMode(mode)
			if !ok {
				return &providers.InvalidParameterError{Name: "mode", Value: mode, Reason: "expected Totals, PerGame or Per48"}
			}
			kind, ok := endpoints.ParseSeasonType(seasonType)
			if !ok {
				return &providers.InvalidParameterError{Name: "type", Value: seasonType, Reason: "expected regular or playoffs"}
			}

			if perMode.IsTotals() {
				out, err := a.client.FetchLeagueTotals(cmd.Context(), a.currentSeason(), kind, category)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), out)
			}
			out, err := a.client.FetchLeagueAverages(cmd.Context(), a.currentSeason(), perMode, kind, category)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "PerGame", "per mode: Totals, PerGame or Per48")
	cmd.Flags().StringVar(&seasonType, "type", "regular", "season type: regular or playoffs")
	cmd.Flags().StringVar(&category, "category", "PTS", "stat category such as PTS, REB or AST")
	return cmd
}
