package config

import (
	"fmt"

	"github.com/JerelRocktaschel/jumpshot/internal/timeutil"
)

// Config holds runtime configuration for the gateway and CLI.
type Config struct {
	Port     string
	Log      LogConfig
	Upstream UpstreamConfig
	Metrics  MetricsConfig
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string
	Format string
}

// Load builds configuration from defaults, the optional TOML file named by
// JUMPSHOT_CONFIG, and environment variables, in increasing precedence.
func Load() (Config, error) {
	cfg := Defaults()
	env := &envReader{}

	if path := env.str(envConfigFile, ""); path != "" {
		overlay, err := LoadFile(path)
		if err != nil {
			return Config{}, err
		}
		overlay.apply(&cfg)
	}

	cfg.Port = env.str(envPort, cfg.Port)
	cfg.Log.Level = env.str(envLogLevel, cfg.Log.Level)
	cfg.Log.Format = env.str(envLogFormat, cfg.Log.Format)
	cfg.Upstream = loadUpstream(env, cfg.Upstream)
	cfg.Metrics = loadMetrics(env, cfg.Metrics)
	if env.err != nil {
		return Config{}, env.err
	}

	if _, err := timeutil.ParseMonthDay(cfg.Upstream.SeasonCutoff); err != nil {
		return Config{}, fmt.Errorf("config: season cutoff: %w", err)
	}
	return cfg, nil
}

// Defaults returns the configuration used when nothing is overridden.
func Defaults() Config {
	return Config{
		Port: defaultPort,
		Log: LogConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Upstream: UpstreamConfig{
			Timeout:      defaultUpstreamTimeout,
			UserAgent:    defaultUserAgent,
			SeasonCutoff: defaultSeasonCutoff,
		},
		Metrics: MetricsConfig{
			Enabled:      true,
			Port:         defaultMetricsPort,
			ServiceName:  defaultServiceName,
			OtlpInsecure: true,
		},
	}
}
