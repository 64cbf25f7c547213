package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.StatsAPI.BaseURL != defaultStatsAPIBaseURL {
		t.Fatalf("expected default base url, got %s", cfg.StatsAPI.BaseURL)
	}
	if cfg.StatsAPI.Timeout != defaultStatsAPITimeout {
		t.Fatalf("expected default timeout, got %s", cfg.StatsAPI.Timeout)
	}
	if !cfg.Metrics.Enabled {
		t.Fatal("expected metrics enabled by default")
	}
	if cfg.Metrics.ServiceName != defaultServiceName {
		t.Fatalf("unexpected service name %s", cfg.Metrics.ServiceName)
	}
	if cfg.MCPStdio {
		t.Fatal("expected stdio transport disabled by default")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv(envPort, "9999")
	t.Setenv(envStatsAPIBaseURL, "http://localhost:1234/api/v1")
	t.Setenv(envStatsAPITimeout, "5s")
	t.Setenv(envMetricsOn, "false")
	t.Setenv(envMCPStdio, "1")
	t.Setenv(envTeamsFile, "/tmp/teams.csv")

	cfg := Load()

	if cfg.Port != "9999" {
		t.Fatalf("expected env port, got %s", cfg.Port)
	}
	if cfg.StatsAPI.BaseURL != "http://localhost:1234/api/v1" {
		t.Fatalf("expected env base url, got %s", cfg.StatsAPI.BaseURL)
	}
	if cfg.StatsAPI.Timeout != 5*time.Second {
		t.Fatalf("expected 5s timeout, got %s", cfg.StatsAPI.Timeout)
	}
	if cfg.Metrics.Enabled {
		t.Fatal("expected metrics disabled")
	}
	if !cfg.MCPStdio {
		t.Fatal("expected stdio transport enabled")
	}
	if cfg.TeamsFile != "/tmp/teams.csv" {
		t.Fatalf("expected teams file override, got %s", cfg.TeamsFile)
	}
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	t.Setenv(envStatsAPITimeout, "definitely-not-a-duration")

	cfg := Load()
	if cfg.StatsAPI.Timeout != defaultStatsAPITimeout {
		t.Fatalf("expected fallback timeout, got %s", cfg.StatsAPI.Timeout)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := []byte("port: \"7070\"\nteams_file: /data/teams.csv\nstatsapi:\n  base_url: http://statsapi.test/api/v1\n  timeout: 10s\nmetrics:\n  enabled: false\n")
	if err := os.WriteFile(path, body, 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	t.Setenv(envConfigFile, path)

	cfg, err := LoadWithError()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "7070" {
		t.Fatalf("expected file port, got %s", cfg.Port)
	}
	if cfg.TeamsFile != "/data/teams.csv" {
		t.Fatalf("expected file teams path, got %s", cfg.TeamsFile)
	}
	if cfg.StatsAPI.BaseURL != "http://statsapi.test/api/v1" {
		t.Fatalf("expected file base url, got %s", cfg.StatsAPI.BaseURL)
	}
	if cfg.StatsAPI.Timeout != 10*time.Second {
		t.Fatalf("expected 10s timeout, got %s", cfg.StatsAPI.Timeout)
	}
	if cfg.Metrics.Enabled {
		t.Fatal("expected metrics disabled via file")
	}
}

func TestEnvBeatsConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("port: \"7070\"\n"), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	t.Setenv(envConfigFile, path)
	t.Setenv(envPort, "8088")

	cfg := Load()
	if cfg.Port != "8088" {
		t.Fatalf("expected env to win, got %s", cfg.Port)
	}
}

func TestLoadWithErrorReportsMissingFile(t *testing.T) {
	t.Setenv(envConfigFile, filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, err := LoadWithError()
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
	if cfg.Port != defaultPort {
		t.Fatalf("expected defaults to survive file error, got %s", cfg.Port)
	}
}

func TestBoolEnvOrDefaultVariants(t *testing.T) {
	cases := map[string]bool{
		"1":     true,
		"true":  true,
		"YES":   true,
		"0":     false,
		"false": false,
		"no":    false,
		"maybe": true, // falls back to default
	}
	for raw, expected := range cases {
		t.Setenv("TEST_BOOL_ENV", raw)
		if got := boolEnvOrDefault("TEST_BOOL_ENV", true); got != expected {
			t.Fatalf("value %q expected %v, got %v", raw, expected, got)
		}
	}
}
