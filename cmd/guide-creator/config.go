// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/pdiddy/guide-creator/internal/secrets"
	"github.com/pdiddy/guide-creator/internal/telemetry"
	"github.com/pdiddy/guide-creator/internal/tracking"
	"github.com/pdiddy/guide-creator/pkg/types"
)

// pipelineConfig resolves the full stage configuration from the config
// file, environment, and loaded secrets. The Phoenix variables keep their
// unprefixed names for parity with the hosted collector's documentation.
func pipelineConfig() types.PipelineConfig {
	cfg := types.PipelineConfig{
		LLM: types.LLMConfig{
			Model:      viper.GetString("llm.model"),
			BaseURL:    viper.GetString("llm.base_url"),
			MaxRetries: viper.GetInt("llm.max_retries"),
			CacheTTL:   viper.GetDuration("llm.cache_ttl"),
			RateLimit:  viper.GetDuration("llm.rate_limit"),
			APIKey:     secrets.Resolve(loadedSecrets, "OPENAI_API_KEY", "openai-api-key", viper.GetString("llm.api_key")),
		},
		Crew: types.CrewConfig{
			Dir: viper.GetString("crew.dir"),
		},
		Output: types.OutputConfig{
			Dir:     viper.GetString("output.dir"),
			LogsDir: viper.GetString("output.logs_dir"),
		},
		Telemetry: types.TelemetryConfig{
			Endpoint: secrets.Resolve(loadedSecrets, "PHOENIX_COLLECTOR_ENDPOINT", "", viper.GetString("telemetry.endpoint")),
			Project:  secrets.Resolve(loadedSecrets, "PHOENIX_PROJECT_NAME", "", viper.GetString("telemetry.project")),
			APIKey:   secrets.Resolve(loadedSecrets, "PHOENIX_API_KEY", "phoenix-api-key", viper.GetString("telemetry.api_key")),
		},
		Tracking: types.TrackingConfig{
			Enabled: viper.GetBool("tracking.enabled"),
			DBPath:  viper.GetString("tracking.db_path"),
		},
	}

	if cfg.Telemetry.Endpoint == "" {
		cfg.Telemetry.Endpoint = telemetry.DefaultEndpoint
	}
	if cfg.Telemetry.Project == "" {
		cfg.Telemetry.Project = telemetry.DefaultProject
	}
	if cfg.Tracking.DBPath == "" {
		cfg.Tracking.DBPath = filepath.Join(cfg.Output.LogsDir, tracking.DBFile)
	}
	return cfg
}
