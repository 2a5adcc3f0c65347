package config

// MetricsConfig controls telemetry export settings.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	OtlpEndpoint string
	ServiceName  string
	OtlpInsecure bool
}

func loadMetrics(env *envReader, base MetricsConfig) MetricsConfig {
	return MetricsConfig{
		Enabled:      env.boolean(envMetricsOn, base.Enabled),
		Port:         env.str(envMetricsPort, base.Port),
		OtlpEndpoint: env.str(envOtelEndpoint, base.OtlpEndpoint),
		ServiceName:  env.str(envOtelService, base.ServiceName),
		OtlpInsecure: env.boolean(envOtelInsecure, base.OtlpInsecure),
	}
}
