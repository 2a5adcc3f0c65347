package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/JerelRocktaschel/jumpshot/internal/config"
	"github.com/JerelRocktaschel/jumpshot/internal/logging"
	"github.com/JerelRocktaschel/jumpshot/internal/providers/nba"
	"github.com/JerelRocktaschel/jumpshot/internal/season"
)

const defaultCLILogLevel = "warn"

// app is the state shared by every subcommand. httpClient and now are nil in production.
type app struct {
	httpClient *http.Client
	now        func() time.Time

	season    string
	logFormat string
	logLevel  string
	timeout   time.Duration

	logger *slog.Logger
	client *nba.Client
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "jumpshot",
		Short:         "Query NBA stats and media from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.season, "season", "", "season start year such as 2020 (default: current season)")
	flags.StringVar(&a.logFormat, "log-format", logging.FormatPretty, "log format: pretty, text or json")
	flags.StringVar(&a.logLevel, "log-level", defaultCLILogLevel, "log level: debug, info, warn or error")
	flags.DurationVar(&a.timeout, "timeout", 0, "upstream timeout (default from UPSTREAM_TIMEOUT)")

	root.AddCommand(
		newTeamsCommand(a),
		newTeamLeadersCommand(a),
		newTeamScheduleCommand(a),
		newTeamLogoCommand(a),
		newRankingsCommand(a),
		newPlayersCommand(a),
		newPlayerSummaryCommand(a),
		newHeadshotCommand(a),
		newScheduleCommand(a),
		newBoxscoreCommand(a),
		newLeadTrackerCommand(a),
		newTodayCommand(a),
		newStandingsCommand(a),
		newCoachesCommand(a),
		newLeadersCommand(a),
	)
	return root
}

// setup loads configuration and builds the client once flags are parsed.
func (a *app) setup(cmd *cobra.Command) error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if a.timeout > 0 {
		cfg.Upstream.Timeout = a.timeout
	}

	a.logger = logging.NewLogger(logging.Config{
		Level:  a.logLevel,
		Format: a.logFormat,
		Output: cmd.ErrOrStderr(),
	})

	seasons := season.NewResolver(cfg.Upstream.Cutoff())
	if a.now != nil {
		seasons = seasons.WithClock(a.now)
	}
	a.client = nba.NewClient(nba.Config{
		Catalog:    cfg.Upstream.Catalog(),
		HTTPClient: a.httpClient,
		Timeout:    cfg.Upstream.Timeout,
		UserAgent:  cfg.Upstream.UserAgent,
		Logger:     a.logger,
		Seasons:    seasons,
	})
	return nil
}

func (a *app) currentSeason() string {
	if a.season != "" {
		return a.season
	}
	return a.client.CurrentSeason()
}

func (a *app) clock() time.Time {
	if a.now != nil {
		return a.now()
	}
	return time.Now()
}
