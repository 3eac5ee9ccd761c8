package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "skinscan/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SearchConfig holds settings for the evidence retrieval stage.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// APIKey is the Google Custom Search API key.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// EngineID is the Custom Search engine identifier (cx parameter).
	EngineID string `json:"engine_id,omitempty" yaml:"engine_id,omitempty"`

	// MaxResults caps the number of results requested per search call
	// (default 10; the Custom Search API allows at most 10 per page).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// TopIngredients is how many top-scoring ingredients receive deep
	// evidence-backed treatment in synthesis (default 5).
	TopIngredients int `json:"top_ingredients" yaml:"top_ingredients"`
}

// AIConfig holds shared settings for stages that call the generative AI API.
type AIConfig struct {
	// Model is the generative model identifier (e.g. "gemini-2.0-flash-exp").
	Model string `json:"model" yaml:"model"`

	// APIKey is the authentication key for the AI API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
}

// AnalysisConfig holds settings for the verdict synthesis stage.
type AnalysisConfig struct {
	AIConfig   `yaml:",inline"`
	HTTPConfig `yaml:",inline"`
}

// LabelConfig holds settings for the label extraction stage.
type LabelConfig struct {
	AIConfig   `yaml:",inline"`
	HTTPConfig `yaml:",inline"`

	// MaxRetries bounds retries on HTTP 429 from the vision API (default 5).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// StoreConfig holds settings for the profile and history store.
type StoreConfig struct {
	// Path is the SQLite database file path (default "skinscan.db").
	Path string `json:"path" yaml:"path"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Search   SearchConfig   `json:"search" yaml:"search"`
	Analysis AnalysisConfig `json:"analysis" yaml:"analysis"`
	Label    LabelConfig    `json:"label" yaml:"label"`
	Store    StoreConfig    `json:"store" yaml:"store"`
}
