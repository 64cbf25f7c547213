package config

const (
	envStatsAPIBaseURL = "STATSAPI_BASE_URL"
	envStatsAPITimeout = "STATSAPI_TIMEOUT"

	defaultStatsAPIBaseURL = "https://statsapi.mlb.com/api/v1"
)

// StatsAPIConfig controls how we talk to the MLB Stats API.
type StatsAPIConfig struct {
	BaseURL string
	Timeout Duration
}

func loadStatsAPI(defaults StatsAPIConfig) StatsAPIConfig {
	if defaults.BaseURL == "" {
		defaults.BaseURL = defaultStatsAPIBaseURL
	}
	if defaults.Timeout <= 0 {
		defaults.Timeout = defaultStatsAPITimeout
	}
	return StatsAPIConfig{
		BaseURL: envOrDefault(envStatsAPIBaseURL, defaults.BaseURL),
		Timeout: durationEnvOrDefault(envStatsAPITimeout, defaults.Timeout),
	}
}
