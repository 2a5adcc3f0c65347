package config

import "time"

const (
	envPort           = "PORT"
	envConfigFile     = "JUMPSHOT_CONFIG"
	envLogLevel       = "LOG_LEVEL"
	envLogFormat      = "LOG_FORMAT"
	envUpstreamTO     = "UPSTREAM_TIMEOUT"
	envUserAgent      = "UPSTREAM_USER_AGENT"
	envSeasonCutoff   = "SEASON_CUTOFF"
	envDataV2BaseURL  = "NBA_DATA_V2_BASE_URL"
	envDataV1BaseURL  = "NBA_DATA_V1_BASE_URL"
	envDataNBABaseURL = "NBA_DATA_PROD_BASE_URL"
	envStatsBaseURL   = "NBA_STATS_BASE_URL"
	envLogosBaseURL   = "TEAM_LOGO_BASE_URL"
	envHeadshotsURL   = "HEADSHOT_BASE_URL"
	envMetricsPort    = "METRICS_PORT"
	envMetricsOn      = "METRICS_ENABLED"
	envOtelEndpoint   = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService    = "OTEL_SERVICE_NAME"
	envOtelInsecure   = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort            = "4000"
	defaultLogLevel        = "info"
	defaultLogFormat       = "text"
	defaultUpstreamTimeout = 10 * Duration(time.Second)
	defaultSeasonCutoff    = "10-01"
	// stats.nba.com drops requests without a browser-like agent.
	defaultUserAgent   = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"
	defaultMetricsPort = "9090"
	defaultServiceName = "jumpshot"
)
