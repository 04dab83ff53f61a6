package types

import "time"

// LLMConfig holds shared settings for stages that call the language model API.
type LLMConfig struct {
	// Model is the model identifier (e.g. "gpt-4o-mini").
	Model string `json:"model" yaml:"model"`

	// APIKey is the authentication key for the API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// BaseURL overrides the API endpoint (optional, for proxies).
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`

	// MaxRetries is the number of retry attempts for failed API calls (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`

	// CacheTTL enables response memoization when positive. Repeat calls
	// with an identical prompt within the TTL are served from memory.
	CacheTTL time.Duration `json:"cache_ttl" yaml:"cache_ttl"`

	// RateLimit is the minimum interval between API calls (default none).
	RateLimit time.Duration `json:"rate_limit" yaml:"rate_limit"`
}

// CrewConfig holds settings for the content crew stage.
type CrewConfig struct {
	// Dir is the directory holding agent and task definition YAML.
	// A missing directory falls back to the built-in defaults.
	Dir string `json:"dir" yaml:"dir"`
}

// OutputConfig holds settings for pipeline artifacts.
type OutputConfig struct {
	// Dir is the directory for the outline JSON and compiled guide (default "output").
	Dir string `json:"dir" yaml:"dir"`

	// LogsDir is the directory for run logs and the tracking database (default "logs").
	LogsDir string `json:"logs_dir" yaml:"logs_dir"`
}

// TelemetryConfig holds settings for trace export to a Phoenix collector.
type TelemetryConfig struct {
	// Endpoint is the OTLP traces endpoint (default Phoenix Cloud).
	Endpoint string `json:"endpoint" yaml:"endpoint"`

	// APIKey authenticates with the collector. Empty disables export.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// Project is the project name attached to exported traces
	// (default "ai-guide-creator").
	Project string `json:"project" yaml:"project"`
}

// TrackingConfig holds settings for the local run-tracking store.
type TrackingConfig struct {
	// Enabled controls whether runs are recorded (default true).
	Enabled bool `json:"enabled" yaml:"enabled"`

	// DBPath is the sqlite database path (default "<logs_dir>/tracking.db").
	DBPath string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	LLM       LLMConfig       `json:"llm" yaml:"llm"`
	Crew      CrewConfig      `json:"crew" yaml:"crew"`
	Output    OutputConfig    `json:"output" yaml:"output"`
	Telemetry TelemetryConfig `json:"telemetry" yaml:"telemetry"`
	Tracking  TrackingConfig  `json:"tracking" yaml:"tracking"`
}
