package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JerelRocktaschel/jumpshot/internal/endpoints"
	"github.com/JerelRocktaschel/jumpshot/internal/providers"
)

func newPlayersCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "players",
		Short: "List players for a season",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := a.client.FetchPlayers(cmd.Context(), a.currentSeason())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
}

func newPlayerSummaryCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "player-summary PLAYER_ID",
		Short: "Show a player's career and season summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.client.FetchPlayerStatsSummary(cmd.Context(), a.currentSeason(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
}

func newHeadshotCommand(a *app) *cobra.Command {
	var (
		output string
		size   string
	)
	cmd := &cobra.Command{
		Use:   "headshot PLAYER_ID",
		Short: "Download a player headshot as PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			imageSize, ok := endpoints.ParseImageSize(size)
			if !ok {
				return &providers.InvalidParameterError{Name: "size", Value: size, Reason: "expected small or large"}
			}
			img, err := a.client.FetchPlayerImage(cmd.Context(), args[0], imageSize)
			if err != nil {
				return fmt.Errorf("headshot %s: %w", args[0], err)
			}
			return writeImage(cmd, output, img)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "file to write (default stdout)")
	cmd.Flags().StringVar(&size, "size", "small", "image size: small (260x190) or large (1040x760)")
	return cmd
}
