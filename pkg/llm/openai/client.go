package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"reelsmith/pkg/config"
	"reelsmith/pkg/llm"
	"reelsmith/pkg/request"
)

// DefaultBaseURL is the OpenAI API root.
const DefaultBaseURL = "https://api.openai.com/v1"

// Client implements llm.Provider for any OpenAI-compatible API.
type Client struct {
	rc       *request.Client
	apiKey   string
	baseURL  string
	profiles map[string]string
	label    string

	mu sync.RWMutex
}

// Request follows the Chat Completions format.
type Request struct {
	Model          string          `json:"model"`
	Messages       []Message       `json:"messages"`
	ResponseFormat *ResponseFormat `json:"response_format,omitempty"`
	Temperature    float32         `json:"temperature,omitempty"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ResponseFormat struct {
	Type string `json:"type"`
}

// Response follows the Chat Completions response format.
type Response struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// NewClient creates a client against cfg.BaseURL, or defaultBaseURL when the
// config leaves it blank.
func NewClient(cfg config.ProviderConfig, defaultBaseURL string, rc *request.Client) (*Client, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if baseURL == "" {
		return nil, fmt.Errorf("baseURL is required")
	}
	if rc == nil {
		return nil, fmt.Errorf("request client is required")
	}

	label := cfg.Type
	if label == "" {
		label = "openai"
	}

	return &Client{
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		apiKey:   cfg.Key,
		profiles: cfg.Profiles,
		rc:       rc,
		label:    label,
	}, nil
}

// SetLabel sets the provider label for request tracking.
func (c *Client) SetLabel(label string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.label = label
}

func (c *Client) GenerateText(ctx context.Context, name, prompt string) (string, error) {
	model, err := c.resolveModel(name)
	if err != nil {
		return "", err
	}

	req := Request{
		Model:       model,
		Messages:    messages(name, prompt),
		Temperature: 0.7,
		MaxTokens:   llm.MaxTokens(name),
	}

	text, err := c.Execute(ctx, req)
	if err != nil {
		return "", err
	}
	return llm.CleanText(text), nil
}

func (c *Client) GenerateJSON(ctx context.Context, name, prompt string, target any) error {
	model, err := c.resolveModel(name)
	if err != nil {
		return err
	}

	// json_object mode requires the word "json" in the prompt.
	if !strings.Contains(strings.ToLower(prompt), "json") {
		prompt += " Respond in JSON."
	}

	req := Request{
		Model:          model,
		Messages:       messages(name, prompt),
		ResponseFormat: &ResponseFormat{Type: "json_object"},
		Temperature:    0.4,
		MaxTokens:      llm.MaxTokens(name),
	}

	respText, err := c.Execute(ctx, req)
	if err != nil {
		return err
	}

	respText = llm.CleanJSONBlock(respText)
	if err := json.Unmarshal([]byte(respText), target); err != nil {
		return fmt.Errorf("failed to unmarshal %s json: %w (raw: %s)", c.label, err, respText)
	}
	return nil
}

func messages(intent, prompt string) []Message {
	var msgs []Message
	if sys := llm.SystemPrompt(intent); sys != "" {
		msgs = append(msgs, Message{Role: "system", Content: sys})
	}
	return append(msgs, Message{Role: "user", Content: prompt})
}

// HealthCheck verifies the key against the models endpoint.
func (c *Client) HealthCheck(ctx context.Context) error {
	if c.apiKey == "" {
		return errors.New("api key is missing")
	}
	_, err := c.rc.GetWithHeaders(ctx, c.baseURL+"/models", c.authHeaders())
	if err != nil {
		return fmt.Errorf("%s health check: %w", c.label, err)
	}
	return nil
}

// ValidateModels checks that every profile model is served by the endpoint.
func (c *Client) ValidateModels(ctx context.Context) error {
	if len(c.profiles) == 0 {
		return nil
	}

	u := c.baseURL + "/models"
	respBody, err := c.rc.GetWithHeaders(ctx, u, c.authHeaders())
	if err != nil {
		return fmt.Errorf("failed to fetch models from %s: %w", u, err)
	}

	var mresp struct {
		Data []struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(respBody, &mresp); err != nil {
		return fmt.Errorf("failed to parse models response: %w", err)
	}

	available := make(map[string]bool)
	for _, m := range mresp.Data {
		available[m.ID] = true
	}

	var missing []string
	seen := make(map[string]bool)
	for _, model := range c.profiles {
		if !available[model] && !seen[model] {
			missing = append(missing, model)
			seen[model] = true
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("configured models %v not found at %s", missing, u)
	}
	return nil
}

func (c *Client) authHeaders() map[string]string {
	return map[string]string{
		"Authorization": "Bearer " + c.apiKey,
	}
}

// Execute posts a chat completion and returns the first choice.
func (c *Client) Execute(ctx context.Context, oreq Request) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("api key is missing")
	}

	body, err := json.Marshal(oreq)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	headers := c.authHeaders()
	headers["Content-Type"] = "application/json"

	c.mu.RLock()
	label := c.label
	c.mu.RUnlock()
	ctx = context.WithValue(ctx, request.CtxProviderLabel, label)

	respBody, err := c.rc.PostWithHeaders(ctx, c.baseURL+"/chat/completions", body, headers)
	if err != nil {
		return "", err
	}

	var oresp Response
	if err := json.Unmarshal(respBody, &oresp); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if oresp.Error != nil {
		return "", fmt.Errorf("%s api error: %s (%s)", label, oresp.Error.Message, oresp.Error.Type)
	}
	if len(oresp.Choices) == 0 {
		return "", fmt.Errorf("api returned no choices")
	}

	return oresp.Choices[0].Message.Content, nil
}

func (c *Client) HasProfile(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.profiles[name] != ""
}

func (c *Client) resolveModel(intent string) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if model, ok := c.profiles[intent]; ok && model != "" {
		return model, nil
	}
	return "", fmt.Errorf("profile %q not configured", intent)
}
