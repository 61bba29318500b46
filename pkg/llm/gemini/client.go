package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"google.golang.org/api/iterator"
	"google.golang.org/genai"

	"reelsmith/pkg/config"
	"reelsmith/pkg/llm"
	"reelsmith/pkg/tracker"
)

const defaultModel = "gemini-2.5-flash"

// Client implements llm.Provider for Google Gemini.
type Client struct {
	genaiClient *genai.Client
	apiKey      string
	modelName   string
	profiles    map[string]string // intent -> model
	tracker     *tracker.Tracker

	mu sync.RWMutex
}

// NewClient creates a new Gemini client. A blank key yields a client that
// reports itself unhealthy instead of an error.
func NewClient(cfg config.ProviderConfig, t *tracker.Tracker) (*Client, error) {
	c := &Client{tracker: t}
	if err := c.Configure(cfg); err != nil {
		return nil, err
	}
	return c, nil
}

// Configure updates the client with new settings.
func (c *Client) Configure(cfg config.ProviderConfig) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.apiKey = cfg.Key
	c.modelName = cfg.Model
	c.profiles = cfg.Profiles

	if c.modelName == "" {
		c.modelName = defaultModel
	}

	if c.apiKey == "" {
		c.genaiClient = nil
		return nil
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  c.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return fmt.Errorf("failed to create genai client: %w", err)
	}
	c.genaiClient = client
	return nil
}

// Close cleans up resources.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.genaiClient = nil
}

// HealthCheck reports whether the client is configured and the model exists.
func (c *Client) HealthCheck(ctx context.Context) error {
	c.mu.RLock()
	client := c.genaiClient
	c.mu.RUnlock()

	if client == nil {
		return errors.New("gemini api key is missing")
	}
	return c.validateModel(ctx, client)
}

func (c *Client) HasProfile(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.profiles[name] != ""
}

// GenerateText sends a prompt and returns the text response.
func (c *Client) GenerateText(ctx context.Context, name, prompt string) (string, error) {
	text, err := c.generate(ctx, name, prompt, "")
	if err != nil {
		return "", err
	}
	return llm.CleanText(text), nil
}

// GenerateJSON sends a prompt in JSON mode and unmarshals the response into target.
func (c *Client) GenerateJSON(ctx context.Context, name, prompt string, target any) error {
	text, err := c.generate(ctx, name, prompt, "application/json")
	if err != nil {
		return err
	}

	cleaned := llm.CleanJSONBlock(text)
	if err := json.Unmarshal([]byte(cleaned), target); err != nil {
		c.trackFailure()
		return fmt.Errorf("failed to unmarshal JSON response: %w. Response: %s", err, cleaned)
	}
	return nil
}

func (c *Client) generate(ctx context.Context, name, prompt, mime string) (string, error) {
	c.mu.RLock()
	client := c.genaiClient
	c.mu.RUnlock()

	if client == nil {
		return "", fmt.Errorf("gemini client not configured")
	}

	modelName, cfg := c.resolveModel(name)
	cfg.ResponseMIMEType = mime

	resp, err := client.Models.GenerateContent(ctx, modelName, genai.Text(prompt), cfg)
	if err != nil {
		c.trackFailure()
		return "", fmt.Errorf("generate error: %w", err)
	}

	text, err := responseText(resp)
	if err != nil {
		c.trackFailure()
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		if c.tracker != nil {
			c.tracker.TrackAPIZero("gemini")
		}
		return "", fmt.Errorf("empty response for %s", name)
	}

	if c.tracker != nil {
		c.tracker.TrackAPISuccess("gemini")
	}
	return text, nil
}

func (c *Client) trackFailure() {
	if c.tracker != nil {
		c.tracker.TrackAPIFailure("gemini")
	}
}

// resolveModel returns the model and generation config for an intent.
func (c *Client) resolveModel(intent string) (string, *genai.GenerateContentConfig) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	target := c.modelName
	if m, ok := c.profiles[intent]; ok && m != "" {
		target = m
	}

	cfg := &genai.GenerateContentConfig{}
	if sys := llm.SystemPrompt(intent); sys != "" {
		cfg.SystemInstruction = genai.NewContentFromText(sys, genai.RoleUser)
	}
	if n := llm.MaxTokens(intent); n > 0 {
		cfg.MaxOutputTokens = int32(n)
	}
	temp := float32(0.7)
	cfg.Temperature = &temp

	return target, cfg
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates returned")
	}
	cand := resp.Candidates[0]
	if cand.Content == nil {
		return "", fmt.Errorf("candidate has no content (finish reason %s)", cand.FinishReason)
	}

	var sb strings.Builder
	for _, part := range cand.Content.Parts {
		if part != nil && part.Text != "" {
			sb.WriteString(part.Text)
		}
	}
	return sb.String(), nil
}

// validateModel checks that the configured model is available for the key.
// On failure the available gemini models are logged to help fix the config.
func (c *Client) validateModel(ctx context.Context, client *genai.Client) error {
	c.mu.RLock()
	model := c.modelName
	c.mu.RUnlock()

	name := model
	if !strings.HasPrefix(name, "models/") {
		name = "models/" + name
	}

	_, err := client.Models.Get(ctx, name, nil)
	if err == nil {
		slog.Debug("Gemini model validation success", "model", model)
		return nil
	}

	page, listErr := client.Models.List(ctx, nil)
	if listErr != nil {
		return fmt.Errorf("model %s unavailable: %w", model, err)
	}

	var available []string
	for {
		for _, m := range page.Items {
			if m != nil && strings.Contains(strings.ToLower(m.Name), "gemini") {
				available = append(available, m.Name)
			}
		}
		next, nextErr := page.Next(ctx)
		if errors.Is(nextErr, genai.ErrPageDone) || errors.Is(nextErr, iterator.Done) {
			break
		}
		if nextErr != nil {
			break
		}
		page = next
	}

	slog.Error("Configured model not found", "configured", model, "available", available)
	return fmt.Errorf("model %s unavailable: %w", model, err)
}
