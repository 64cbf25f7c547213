package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors Config for the optional YAML config file. Every field is
// optional; unset fields fall through to built-in defaults. Environment
// variables override file values.
type fileConfig struct {
	Port      string `yaml:"port"`
	TeamsFile string `yaml:"teams_file"`
	Log       struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
	StatsAPI struct {
		BaseURL string `yaml:"base_url"`
		Timeout string `yaml:"timeout"`
	} `yaml:"statsapi"`
	Metrics struct {
		Enabled      *bool  `yaml:"enabled"`
		Port         string `yaml:"port"`
		OtlpEndpoint string `yaml:"otlp_endpoint"`
		ServiceName  string `yaml:"service_name"`
		OtlpInsecure *bool  `yaml:"otlp_insecure"`
	} `yaml:"metrics"`
}

// loadFile reads the YAML config file at path into the defaults that env
// lookups are then applied on top of. A missing path is not an error.
func loadFile(path string, defaults Config) (Config, error) {
	if path == "" {
		return defaults, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return defaults, fmt.Errorf("config: read %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return defaults, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if fc.Port != "" {
		defaults.Port = fc.Port
	}
	if fc.TeamsFile != "" {
		defaults.TeamsFile = fc.TeamsFile
	}
	if fc.Log.Level != "" {
		defaults.LogLevel = fc.Log.Level
	}
	if fc.Log.Format != "" {
		defaults.LogFormat = fc.Log.Format
	}
	if fc.StatsAPI.BaseURL != "" {
		defaults.StatsAPI.BaseURL = fc.StatsAPI.BaseURL
	}
	if fc.StatsAPI.Timeout != "" {
		if parsed, err := time.ParseDuration(fc.StatsAPI.Timeout); err == nil && parsed > 0 {
			defaults.StatsAPI.Timeout = parsed
		}
	}
	if fc.Metrics.Enabled != nil {
		defaults.Metrics.Enabled = *fc.Metrics.Enabled
	}
	if fc.Metrics.Port != "" {
		defaults.Metrics.Port = fc.Metrics.Port
	}
	if fc.Metrics.OtlpEndpoint != "" {
		defaults.Metrics.OtlpEndpoint = fc.Metrics.OtlpEndpoint
	}
	if fc.Metrics.ServiceName != "" {
		defaults.Metrics.ServiceName = fc.Metrics.ServiceName
	}
	if fc.Metrics.OtlpInsecure != nil {
		defaults.Metrics.OtlpInsecure = *fc.Metrics.OtlpInsecure
	}

	return defaults, nil
}
