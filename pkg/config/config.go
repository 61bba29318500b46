package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"

	"reelsmith/pkg/llm"
	"reelsmith/pkg/model"
)

// Config holds the application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	Request  RequestConfig  `yaml:"request"`
	LLM      LLMConfig      `yaml:"llm"`
	Strategy StrategyConfig `yaml:"strategy"`
	Prompts  PromptsConfig  `yaml:"prompts"`
	Pipeline PipelineConfig `yaml:"pipeline"`
	YouTube  YouTubeConfig  `yaml:"youtube"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Address string `yaml:"address"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Server   LogSettings `yaml:"server"`
	Requests LogSettings `yaml:"requests"`
	LLM      LogSettings `yaml:"llm"` // prompt/response history, level unused
}

// LogSettings holds settings for a specific logger.
type LogSettings struct {
	Path  string `yaml:"path"`
	Level string `yaml:"level"`
}

// RequestConfig holds HTTP request settings.
type RequestConfig struct {
	Retries int           `yaml:"retries"`
	Timeout Duration      `yaml:"timeout"`
	Backoff BackoffConfig `yaml:"backoff"`
}

// BackoffConfig holds exponential backoff settings.
type BackoffConfig struct {
	BaseDelay Duration `yaml:"base_delay"`
	MaxDelay  Duration `yaml:"max_delay"`
}

// LLMConfig holds the generation-service providers.
type LLMConfig struct {
	Providers   map[string]ProviderConfig `yaml:"providers"`
	Fallback    []string                  `yaml:"fallback"`     // provider order
	Timeout     Duration                  `yaml:"timeout"`      // per generation call
	LastRetries int                       `yaml:"last_retries"` // retries on the last provider in the chain
}

// ProviderConfig configures one LLM provider.
type ProviderConfig struct {
	Type     string            `yaml:"type"` // gemini, openai, groq, deepseek, nvidia
	Key      string            `yaml:"key"`
	Model    string            `yaml:"model"`
	BaseURL  string            `yaml:"base_url,omitempty"`
	Profiles map[string]string `yaml:"profiles"` // intent -> model
}

// StrategyConfig selects the execution branch per stage.
type StrategyConfig struct {
	Analyzer     string `yaml:"analyzer"`
	Scriptwriter string `yaml:"scriptwriter"`
	Planner      string `yaml:"planner"`
}

// PromptsConfig points at optional prompt template overrides.
type PromptsConfig struct {
	Dir string `yaml:"dir"`
}

// PipelineConfig holds full-pipeline defaults.
type PipelineConfig struct {
	Platform       string `yaml:"platform"`
	Tone           string `yaml:"tone"`
	TargetDuration int    `yaml:"target_duration"` // seconds
}

// YouTubeConfig configures the Data API client used to fetch trending
// shorts for analysis.
type YouTubeConfig struct {
	Key        string `yaml:"key"`
	Endpoint   string `yaml:"endpoint,omitempty"` // override for tests and proxies
	Region     string `yaml:"region"`
	MaxResults int64  `yaml:"max_results"`
}

var envKeys = map[string]string{
	"gemini":   "GEMINI_API_KEY",
	"openai":   "OPENAI_API_KEY",
	"groq":     "GROQ_API_KEY",
	"deepseek": "DEEPSEEK_API_KEY",
	"nvidia":   "NVIDIA_API_KEY",
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Address: "localhost:8000",
		},
		Log: LogConfig{
			Server: LogSettings{
				Path:  "./logs/server.log",
				Level: "INFO",
			},
			Requests: LogSettings{
				Path:  "./logs/requests.log",
				Level: "INFO",
			},
			LLM: LogSettings{
				Path: "./logs/llm.log",
			},
		},
		Request: RequestConfig{
			Retries: 3,
			Timeout: Duration(120 * time.Second),
			Backoff: BackoffConfig{
				BaseDelay: Duration(500 * time.Millisecond),
				MaxDelay:  Duration(30 * time.Second),
			},
		},
		LLM: LLMConfig{
			Providers: map[string]ProviderConfig{
				"gemini": {
					Type:     "gemini",
					Model:    "gemini-2.5-flash",
					Profiles: DefaultProfiles("gemini-2.5-flash"),
				},
				"openai": {
					Type:     "openai",
					Model:    "gpt-4o-mini",
					Profiles: DefaultProfiles("gpt-4o-mini"),
				},
				"groq": {
					Type:     "groq",
					Model:    "llama-3.3-70b-versatile",
					Profiles: DefaultProfiles("llama-3.3-70b-versatile"),
				},
			},
			Fallback:    []string{"gemini", "openai", "groq"},
			Timeout:     Duration(45 * time.Second),
			LastRetries: 1,
		},
		Strategy: StrategyConfig{
			Analyzer:     string(model.StrategyAuto),
			Scriptwriter: string(model.StrategyAuto),
			Planner:      string(model.StrategyAuto),
		},
		Pipeline: PipelineConfig{
			Platform:       "TikTok",
			Tone:           "engaging and informative",
			TargetDuration: 50,
		},
		YouTube: YouTubeConfig{
			Region:     "US",
			MaxResults: 10,
		},
	}
}

// DefaultProfiles maps every pipeline intent to modelName.
func DefaultProfiles(modelName string) map[string]string {
	p := make(map[string]string)
	for _, intent := range llm.Intents() {
		p[intent] = modelName
	}
	return p
}

// Load reads the config at path, creating it with defaults when missing.
// API keys left blank in the file are taken from the environment and never
// written back.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	} else if err := Save(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to save config file: %w", err)
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	for name, p := range cfg.LLM.Providers {
		if p.Key != "" {
			continue
		}
		env, ok := envKeys[p.Type]
		if !ok {
			continue
		}
		if key := os.Getenv(env); key != "" {
			p.Key = key
			cfg.LLM.Providers[name] = p
		}
	}
	if cfg.YouTube.Key == "" {
		cfg.YouTube.Key = os.Getenv("YOUTUBE_API_KEY")
	}
}

// Validate checks enum fields and cross references.
func (c *Config) Validate() error {
	for stage, s := range map[string]string{
		"analyzer":     c.Strategy.Analyzer,
		"scriptwriter": c.Strategy.Scriptwriter,
		"planner":      c.Strategy.Planner,
	} {
		if _, err := model.ParseStrategy(s); err != nil {
			return fmt.Errorf("strategy.%s: %w", stage, err)
		}
	}
	for _, name := range c.LLM.Fallback {
		if _, ok := c.LLM.Providers[name]; !ok {
			return fmt.Errorf("llm.fallback references unknown provider %q", name)
		}
	}
	if c.Pipeline.TargetDuration < 0 {
		return fmt.Errorf("pipeline.target_duration must be non-negative, got %d", c.Pipeline.TargetDuration)
	}
	if c.YouTube.MaxResults < 0 || c.YouTube.MaxResults > 50 {
		return fmt.Errorf("youtube.max_results must be between 0 and 50, got %d", c.YouTube.MaxResults)
	}
	return nil
}

// Strategies resolves the per-stage strategy values. Validate has already
// rejected unknown names.
func (c *Config) Strategies() (analyzer, scriptwriter, planner model.Strategy) {
	analyzer, _ = model.ParseStrategy(c.Strategy.Analyzer)
	scriptwriter, _ = model.ParseStrategy(c.Strategy.Scriptwriter)
	planner, _ = model.ParseStrategy(c.Strategy.Planner)
	return analyzer, scriptwriter, planner
}

// Save writes the configuration to the path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# Reelsmith Configuration
# -----------------------
# Supported Units:
#   Duration: ns, us (or µs), ms, s, m, h, d (day), w (week)
# API keys may be left blank and supplied via GEMINI_API_KEY, OPENAI_API_KEY,
# GROQ_API_KEY, DEEPSEEK_API_KEY, NVIDIA_API_KEY, YOUTUBE_API_KEY or a .env
# file.

`)
	data = append(header, data...)

	reStrategy := regexp.MustCompile(`(?m)^(\s+)(analyzer|scriptwriter|planner):`)
	data = reStrategy.ReplaceAll(data, []byte("${1}# Options: auto, heuristic\n${1}${2}:"))

	rePlatform := regexp.MustCompile(`(?m)^(\s+)platform:`)
	data = rePlatform.ReplaceAll(data, []byte("${1}# Options: TikTok, Instagram, YouTube\n${1}platform:"))

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// GenerateDefault creates a default config file at the given path.
// Returns nil if the file already exists.
func GenerateDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	return Save(path, DefaultConfig())
}
