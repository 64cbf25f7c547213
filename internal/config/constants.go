package config

import "time"

const (
	envConfigFile   = "CONFIG_FILE"
	envPort         = "PORT"
	envMCPStdio     = "MCP_STDIO"
	envTeamsFile    = "TEAMS_FILE"
	envLogLevel     = "LOG_LEVEL"
	envLogFormat    = "LOG_FORMAT"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort        = "8000"
	defaultMetricsPort = "9090"
	defaultServiceName = "mlb-stats-service"
	// Upstream calls are attempted exactly once, so the client timeout is the
	// only bound on a slow statsapi response.
	defaultStatsAPITimeout = 30 * time.Second
)
