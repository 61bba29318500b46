// Package providers builds the configured LLM provider chain.
package providers

import (
	"fmt"
	"log/slog"

	"reelsmith/pkg/config"
	"reelsmith/pkg/llm"
	"reelsmith/pkg/llm/failover"
	"reelsmith/pkg/llm/gemini"
	"reelsmith/pkg/llm/groq"
	"reelsmith/pkg/llm/openai"
	"reelsmith/pkg/request"
	"reelsmith/pkg/tracker"
)

const (
	deepseekBaseURL = "https://api.deepseek.com/v1"
	nvidiaBaseURL   = "https://integrate.api.nvidia.com/v1"
)

// New creates a single provider from its config.
func New(pCfg config.ProviderConfig, rc *request.Client, t *tracker.Tracker) (llm.Provider, error) {
	switch pCfg.Type {
	case "gemini":
		c, err := gemini.NewClient(pCfg, t)
		if err != nil {
			return nil, err
		}
		return c, nil
	case "openai":
		return compatible(openai.NewClient(pCfg, openai.DefaultBaseURL, rc))
	case "groq":
		return compatible(groq.NewClient(pCfg, rc))
	case "deepseek":
		return compatible(openai.NewClient(pCfg, deepseekBaseURL, rc))
	case "nvidia":
		return compatible(openai.NewClient(pCfg, nvidiaBaseURL, rc))
	default:
		return nil, fmt.Errorf("unknown llm provider type: %s", pCfg.Type)
	}
}

// NewChain builds the providers named in cfg.Fallback and wraps them in a
// failover chain. Providers without a key are skipped. Returns nil and no
// error when no provider is usable; callers then run heuristic only.
func NewChain(cfg config.LLMConfig, historyPath string, rc *request.Client, t *tracker.Tracker) (llm.Provider, error) {
	var (
		chain []llm.Provider
		names []string
	)
	for _, name := range cfg.Fallback {
		pCfg, ok := cfg.Providers[name]
		if !ok {
			return nil, fmt.Errorf("provider %q not found in config", name)
		}
		if pCfg.Key == "" {
			slog.Debug("LLM provider has no key, skipping", "provider", name)
			continue
		}
		p, err := New(pCfg, rc, t)
		if err != nil {
			return nil, fmt.Errorf("provider %s: %w", name, err)
		}
		chain = append(chain, p)
		names = append(names, name)
	}

	if len(chain) == 0 {
		slog.Warn("No LLM provider configured, running heuristic engines only")
		return nil, nil
	}

	f, err := failover.New(chain, names, failover.Options{
		LogPath:     historyPath,
		LastRetries: cfg.LastRetries,
	})
	if err != nil {
		return nil, err
	}
	slog.Info("LLM provider chain ready", "providers", names)
	return f, nil
}

func compatible(c *openai.Client, err error) (llm.Provider, error) {
	if err != nil {
		return nil, err
	}
	return c, nil
}
