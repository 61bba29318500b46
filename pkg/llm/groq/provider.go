package groq

import (
	"reelsmith/pkg/config"
	"reelsmith/pkg/llm/openai"
	"reelsmith/pkg/request"
)

const (
	groqBaseURL = "https://api.groq.com/openai/v1"
)

// NewClient creates a Groq client on the OpenAI-compatible endpoint.
func NewClient(cfg config.ProviderConfig, rc *request.Client) (*openai.Client, error) {
	if cfg.Type == "" {
		cfg.Type = "groq"
	}
	return openai.NewClient(cfg, groqBaseURL, rc)
}
