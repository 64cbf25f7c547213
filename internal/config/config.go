package config

import "os"

// Config holds runtime configuration for the server.
type Config struct {
	Port      string
	MCPStdio  bool
	TeamsFile string
	LogLevel  string
	LogFormat string
	StatsAPI  StatsAPIConfig
	Metrics   MetricsConfig
}

// Load reads configuration with the following precedence: built-in defaults,
// then the optional YAML file named by CONFIG_FILE, then environment
// variables. File read/parse errors fall back to defaults (reported to the
// caller via LoadWithError when it matters).
func Load() Config {
	cfg, _ := LoadWithError()
	return cfg
}

// LoadWithError is Load but surfaces config-file problems.
func LoadWithError() (Config, error) {
	defaults := Config{
		Port: defaultPort,
		StatsAPI: StatsAPIConfig{
			BaseURL: defaultStatsAPIBaseURL,
			Timeout: defaultStatsAPITimeout,
		},
		Metrics: MetricsConfig{
			Enabled:      true,
			Port:         defaultMetricsPort,
			ServiceName:  defaultServiceName,
			OtlpInsecure: true,
		},
	}

	defaults, fileErr := loadFile(os.Getenv(envConfigFile), defaults)

	cfg := Config{
		Port:      envOrDefault(envPort, defaults.Port),
		MCPStdio:  boolEnvOrDefault(envMCPStdio, false),
		TeamsFile: envOrDefault(envTeamsFile, defaults.TeamsFile),
		LogLevel:  envOrDefault(envLogLevel, defaults.LogLevel),
		LogFormat: envOrDefault(envLogFormat, defaults.LogFormat),
		StatsAPI:  loadStatsAPI(defaults.StatsAPI),
		Metrics:   loadMetrics(defaults.Metrics),
	}
	return cfg, fileErr
}
