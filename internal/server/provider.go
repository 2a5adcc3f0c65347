package server

import (
	"log/slog"

	"github.com/JerelRocktaschel/jumpshot/internal/config"
	"github.com/JerelRocktaschel/jumpshot/internal/metrics"
	"github.com/JerelRocktaschel/jumpshot/internal/providers/nba"
	"github.com/JerelRocktaschel/jumpshot/internal/season"
)

// newProvider builds the NBA client from upstream configuration.
func newProvider(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder, seasons *season.Resolver) *nba.Client {
	return nba.NewClient(nba.Config{
		Catalog:   cfg.Upstream.Catalog(),
		Timeout:   cfg.Upstream.Timeout,
		UserAgent: cfg.Upstream.UserAgent,
		Logger:    logger,
		Metrics:   recorder,
		Seasons:   seasons,
	})
}
