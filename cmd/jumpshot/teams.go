package main

import (
	"github.com/spf13/cobra"
)

func newTeamsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "teams",
		Short: "List teams for a season",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := a.client.FetchTeams(cmd.Context(), a.currentSeason())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
}

func newTeamLeadersCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "team-leaders TEAM_ID",
		Short: "Show a team's statistical leaders",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.client.FetchTeamLeaders(cmd.Context(), a.currentSeason(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
}

func newTeamScheduleCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "team-schedule TEAM_ID",
		Short: "Show a team's season schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.client.FetchTeamSchedule(cmd.Context(), a.currentSeason(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
}

func newTeamLogoCommand(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "team-logo ABBREVIATION",
		Short: "Download a team logo as PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := a.client.FetchTeamImage(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeImage(cmd, output, img)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "file to write (default stdout)")
	return cmd
}

func newRankingsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rankings",
		Short: "Show team stat rankings for a season",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := a.client.FetchTeamStatRankings(cmd.Context(), a.currentSeason())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
}
