package config

import (
	"github.com/JerelRocktaschel/jumpshot/internal/endpoints"
	"github.com/JerelRocktaschel/jumpshot/internal/timeutil"
)

// UpstreamConfig controls how the client reaches the NBA hosts.
type UpstreamConfig struct {
	Timeout      Duration
	UserAgent    string
	SeasonCutoff string
	BaseURLs     BaseURLs
}

// BaseURLs overrides individual hosts; empty entries keep the catalog defaults.
type BaseURLs struct {
	DataV2    string
	DataV1    string
	DataNBA   string
	Stats     string
	TeamLogos string
	Headshots string
}

// Catalog returns the endpoint catalog with overrides applied.
func (u UpstreamConfig) Catalog() endpoints.Catalog {
	return endpoints.Catalog{
		DataV2:    u.BaseURLs.DataV2,
		DataV1:    u.BaseURLs.DataV1,
		DataNBA:   u.BaseURLs.DataNBA,
		Stats:     u.BaseURLs.Stats,
		TeamLogos: u.BaseURLs.TeamLogos,
		Headshots: u.BaseURLs.Headshots,
	}.WithDefaults()
}

// Cutoff parses SeasonCutoff, falling back to October 1.
func (u UpstreamConfig) Cutoff() timeutil.MonthDay {
	md, err := timeutil.ParseMonthDay(u.SeasonCutoff)
	if err != nil {
		md, _ = timeutil.ParseMonthDay(defaultSeasonCutoff)
	}
	return md
}

func loadUpstream(env *envReader, base UpstreamConfig) UpstreamConfig {
	return UpstreamConfig{
		Timeout:      env.duration(envUpstreamTO, base.Timeout),
		UserAgent:    env.str(envUserAgent, base.UserAgent),
		SeasonCutoff: env.str(envSeasonCutoff, base.SeasonCutoff),
		BaseURLs: BaseURLs{
			DataV2:    env.str(envDataV2BaseURL, base.BaseURLs.DataV2),
			DataV1:    env.str(envDataV1BaseURL, base.BaseURLs.DataV1),
			DataNBA:   env.str(envDataNBABaseURL, base.BaseURLs.DataNBA),
			Stats:     env.str(envStatsBaseURL, base.BaseURLs.Stats),
			TeamLogos: env.str(envLogosBaseURL, base.BaseURLs.TeamLogos),
			Headshots: env.str(envHeadshotsURL, base.BaseURLs.Headshots),
		},
	}
}
