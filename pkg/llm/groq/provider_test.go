package groq

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"reelsmith/pkg/config"
	"reelsmith/pkg/llm"
	"reelsmith/pkg/request"
	"reelsmith/pkg/tracker"
)

func TestGroq_NewClient(t *testing.T) {
	rc := request.New(tracker.New(), request.ClientConfig{})
	c, err := NewClient(config.ProviderConfig{Key: "test_key"}, rc)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	if c == nil {
		t.Fatal("expected client, got nil")
	}
}

func TestGroq_BaseURLOverride(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"pong"}}]}`))
	}))
	defer server.Close()

	tr := tracker.New()
	rc := request.New(tr, request.ClientConfig{Retries: 1})
	c, err := NewClient(config.ProviderConfig{
		Key:      "k",
		BaseURL:  server.URL,
		Profiles: map[string]string{llm.IntentScriptCTA: "llama"},
	}, rc)
	if err != nil {
		t.Fatal(err)
	}

	res, err := c.GenerateText(context.Background(), llm.IntentScriptCTA, "ping")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res != "pong" {
		t.Errorf("expected pong, got %s", res)
	}
	if tr.Snapshot().Providers["groq"].APISuccess != 1 {
		t.Errorf("expected request tracked under groq label")
	}
}
