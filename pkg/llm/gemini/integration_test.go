package gemini_test

import (
	"context"
	"os"
	"testing"

	"reelsmith/pkg/config"
	"reelsmith/pkg/llm"
	"reelsmith/pkg/llm/gemini"
)

func newLiveClient(t *testing.T) *gemini.Client {
	t.Helper()
	key := os.Getenv("GEMINI_API_KEY")
	if key == "" {
		t.Skip("Skipping integration test: GEMINI_API_KEY not set")
	}
	c, err := gemini.NewClient(config.ProviderConfig{
		Key:      key,
		Type:     "gemini",
		Profiles: config.DefaultProfiles("gemini-2.5-flash"),
	}, nil)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	t.Cleanup(c.Close)
	return c
}

func TestIntegration_GenerateText(t *testing.T) {
	c := newLiveClient(t)

	out, err := c.GenerateText(context.Background(), llm.IntentScriptHook, "Write a one-line hook about saving money.")
	if err != nil {
		t.Fatalf("GenerateText: %v", err)
	}
	if out == "" {
		t.Error("got empty response")
	}
	t.Logf("Response: %s", out)
}

func TestIntegration_GenerateJSON(t *testing.T) {
	c := newLiveClient(t)

	var resp struct {
		Message string `json:"message"`
		Count   int    `json:"count"`
	}
	prompt := "Return a JSON object with 'message'='hello' and 'count'=42."

	if err := c.GenerateJSON(context.Background(), llm.IntentAnalysisHooks, prompt, &resp); err != nil {
		t.Fatalf("GenerateJSON: %v", err)
	}
	if resp.Message != "hello" || resp.Count != 42 {
		t.Errorf("unexpected response %+v", resp)
	}
}
