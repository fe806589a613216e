package model

// BackendConfig holds LLM backend configuration
type BackendConfig struct {
	// Type is the registered backend name: "openai", "anthropic", "ollama"
	Type string `yaml:"type" json:"type"`

	// Model name (provider-specific)
	Model string `yaml:"model" json:"model"`

	// Temperature for sampling (>= 0.0)
	Temperature float64 `yaml:"temperature" json:"temperature"`

	// MaxTokens per completion (> 0)
	MaxTokens int `yaml:"max_tokens" json:"max_tokens"`

	// APIKey for hosted providers; falls back to the provider's env var
	APIKey string `yaml:"api_key,omitempty" json:"api_key,omitempty"`

	// BaseURL for custom endpoints (Azure, proxies, local Ollama)
	BaseURL string `yaml:"base_url,omitempty" json:"base_url,omitempty"`

	// Timeout for API requests, in seconds
	Timeout int `yaml:"timeout,omitempty" json:"timeout,omitempty"`
}

// MethodConfig overrides prompt/knowledge resolution for one methodology.
// Named registry entries take precedence over the reviewer's defaults.
type MethodConfig struct {
	Prompt        string `yaml:"prompt,omitempty" json:"prompt,omitempty"`
	KnowledgeBase string `yaml:"knowledge_base,omitempty" json:"knowledge_base,omitempty"`
}

// Config is the top-level configuration for the evaluate stage
type Config struct {
	Backend BackendConfig           `yaml:"backend" json:"backend"`
	Methods map[string]MethodConfig `yaml:"methods,omitempty" json:"methods,omitempty"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Backend: BackendConfig{
			Type:        "anthropic",
			Model:       "claude-sonnet-4-5-20250929",
			Temperature: 0.0,
			MaxTokens:   4096,
			Timeout:     60,
		},
	}
}
