package config

// MetricsConfig controls telemetry export settings.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	OtlpEndpoint string
	ServiceName  string
	OtlpInsecure bool
}

func loadMetrics(defaults MetricsConfig) MetricsConfig {
	if defaults.Port == "" {
		defaults.Port = defaultMetricsPort
	}
	if defaults.ServiceName == "" {
		defaults.ServiceName = defaultServiceName
	}
	return MetricsConfig{
		Enabled:      boolEnvOrDefault(envMetricsOn, defaults.Enabled),
		Port:         envOrDefault(envMetricsPort, defaults.Port),
		OtlpEndpoint: envOrDefault(envOtelEndpoint, defaults.OtlpEndpoint),
		ServiceName:  envOrDefault(envOtelService, defaults.ServiceName),
		OtlpInsecure: boolEnvOrDefault(envOtelInsecure, defaults.OtlpInsecure),
	}
}
