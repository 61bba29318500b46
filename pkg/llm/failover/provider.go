package failover

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"reelsmith/pkg/llm"
)

// Options tunes the chain. Zero values disable the history log and retry the
// last provider once with a one second delay.
type Options struct {
	LogPath     string
	LastRetries int
	RetryDelay  time.Duration
}

// Provider wraps multiple LLM providers and handles fallbacks.
type Provider struct {
	providers []llm.Provider
	names     []string
	disabled  map[int]bool
	backoffs  map[string]*backoffState // key: providerName:profileName
	opts      Options
	logMu     sync.Mutex
	mu        sync.RWMutex
}

type backoffState struct {
	subsequentFailures int
	skippedRequests    int
}

// New creates a failover chain. providers and names are parallel slices in
// fallback order.
func New(providers []llm.Provider, names []string, opts Options) (*Provider, error) {
	if len(providers) == 0 {
		return nil, fmt.Errorf("at least one provider required for failover")
	}
	if len(providers) != len(names) {
		return nil, fmt.Errorf("provider count (%d) does not match name count (%d)", len(providers), len(names))
	}
	if opts.LastRetries <= 0 {
		opts.LastRetries = 1
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = time.Second
	}

	return &Provider{
		providers: providers,
		names:     names,
		disabled:  make(map[int]bool),
		backoffs:  make(map[string]*backoffState),
		opts:      opts,
	}, nil
}

// GenerateText implements llm.Provider.
func (f *Provider) GenerateText(ctx context.Context, name, prompt string) (string, error) {
	res, err := f.execute(ctx, name, prompt, func(p llm.Provider) (any, error) {
		return p.GenerateText(ctx, name, prompt)
	})
	if err != nil {
		return "", err
	}
	return res.(string), nil
}

// GenerateJSON implements llm.Provider.
func (f *Provider) GenerateJSON(ctx context.Context, name, prompt string, target any) error {
	_, err := f.execute(ctx, name, prompt, func(p llm.Provider) (any, error) {
		if err := p.GenerateJSON(ctx, name, prompt, target); err != nil {
			return nil, err
		}
		return target, nil
	})
	return err
}

// HasProfile implements llm.Provider.
func (f *Provider) HasProfile(name string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for i, p := range f.providers {
		if !f.disabled[i] && p.HasProfile(name) {
			return true
		}
	}
	return false
}

// HealthCheck verifies that at least one provider is healthy.
func (f *Provider) HealthCheck(ctx context.Context) error {
	f.mu.RLock()
	providers := f.providers
	names := f.names
	disabled := make(map[int]bool)
	for k, v := range f.disabled {
		disabled[k] = v
	}
	f.mu.RUnlock()

	var errs []string
	for i, p := range providers {
		if disabled[i] {
			continue
		}
		if err := p.HealthCheck(ctx); err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", names[i], err))
			continue
		}
		return nil
	}

	if len(errs) == 0 {
		return fmt.Errorf("no providers available in failover chain")
	}
	return fmt.Errorf("all LLM providers failed health check: %s", strings.Join(errs, "; "))
}

type candidate struct {
	index int
	p     llm.Provider
	name  string
}

func (f *Provider) candidates(callName string) []candidate {
	f.mu.RLock()
	defer f.mu.RUnlock()

	var out []candidate
	for i, p := range f.providers {
		if f.disabled[i] || !p.HasProfile(callName) {
			continue
		}
		out = append(out, candidate{i, p, f.names[i]})
	}
	return out
}

// execute runs fn against the provider chain.
func (f *Provider) execute(ctx context.Context, callName, prompt string, fn func(llm.Provider) (any, error)) (any, error) {
	candidates := f.candidates(callName)
	if len(candidates) == 0 {
		return nil, fmt.Errorf("no active provider supports profile %q", callName)
	}

	for idx, c := range candidates {
		backoffKey := c.name + ":" + callName
		isLast := idx == len(candidates)-1

		f.mu.Lock()
		bs, exists := f.backoffs[backoffKey]
		if exists && !isLast && bs.skippedRequests < bs.subsequentFailures {
			bs.skippedRequests++
			slog.Debug("LLM Provider in backoff, skipping", "provider", c.name, "profile", callName, "skipped", bs.skippedRequests, "target", bs.subsequentFailures)
			f.mu.Unlock()
			continue
		}
		f.mu.Unlock()

		res, err := fn(c.p)
		if err == nil {
			f.resetBackoff(backoffKey)
			f.logRequest(c.name, callName, prompt, fmt.Sprintf("%v", res), nil)
			return res, nil
		}

		f.logRequest(c.name, callName, prompt, "", err)

		if isUnrecoverable(err) {
			if isLast {
				return nil, err
			}
			slog.Warn("LLM Provider fatal error, disabling for the session", "provider", c.name, "error", err)
			f.mu.Lock()
			f.disabled[c.index] = true
			f.mu.Unlock()
			continue
		}

		failures := f.bumpBackoff(backoffKey)

		if !isLast {
			slog.Info("LLM Provider failed (retryable), falling back", "provider", c.name, "next", candidates[idx+1].name, "error", err, "backoff_failures", failures)
			continue
		}

		res, err = f.retryLast(ctx, c.name, func() (any, error) { return fn(c.p) })
		if err != nil {
			f.logRequest(c.name, callName, prompt, "", err)
			return nil, err
		}
		f.resetBackoff(backoffKey)
		f.logRequest(c.name, callName, prompt, fmt.Sprintf("%v", res), nil)
		return res, nil
	}

	return nil, fmt.Errorf("all LLM providers exhausted for profile %q", callName)
}

func (f *Provider) resetBackoff(key string) {
	f.mu.Lock()
	delete(f.backoffs, key)
	f.mu.Unlock()
}

func (f *Provider) bumpBackoff(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	bs, ok := f.backoffs[key]
	if !ok {
		bs = &backoffState{}
		f.backoffs[key] = bs
	}
	bs.subsequentFailures++
	bs.skippedRequests = 0
	return bs.subsequentFailures
}

func (f *Provider) retryLast(ctx context.Context, name string, call func() (any, error)) (any, error) {
	var lastErr error
	delay := f.opts.RetryDelay
	for attempt := 1; attempt <= f.opts.LastRetries; attempt++ {
		slog.Warn("Last LLM provider failed, retrying with backoff", "provider", name, "attempt", attempt, "delay", delay)

		t := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			t.Stop()
			return nil, ctx.Err()
		case <-t.C:
		}

		res, err := call()
		if err == nil {
			return res, nil
		}
		lastErr = err
		if isUnrecoverable(err) {
			return nil, fmt.Errorf("last provider failed with fatal error: %w", err)
		}
		delay *= 2
	}
	return nil, fmt.Errorf("last provider exhausted after %d retries: %w", f.opts.LastRetries, lastErr)
}

// logRequest appends to the history file. Failures record only the reason;
// successes record the prompt with the video block shortened and the
// wrapped response.
func (f *Provider) logRequest(providerName, callName, prompt, response string, err error) {
	if f.opts.LogPath == "" {
		return
	}

	f.logMu.Lock()
	defer f.logMu.Unlock()

	if err := os.MkdirAll(filepath.Dir(f.opts.LogPath), 0o755); err != nil {
		return
	}
	file, fErr := os.OpenFile(f.opts.LogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if fErr != nil {
		return
	}
	defer file.Close()

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	var entry string
	if err != nil {
		entry = fmt.Sprintf("[%s][%s] ERROR: %s - %v\n%s\n",
			timestamp, strings.ToUpper(providerName), callName, err, strings.Repeat("-", 80))
	} else {
		entry = fmt.Sprintf("[%s][%s] PROMPT: %s\nPROMPT_TEXT:\n%s\n\nRESPONSE:\n%s\n%s\n",
			timestamp, strings.ToUpper(providerName), callName,
			llm.TruncateVideoBlock(prompt, 80), llm.WordWrap(response, 80), strings.Repeat("-", 80))
	}

	_, _ = file.WriteString(entry)
}

// isUnrecoverable identifies errors that disable a provider for the session
// unless it is the last one. 429 and 400 are not fatal.
func isUnrecoverable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "401") || strings.Contains(msg, "403") ||
		strings.Contains(msg, "unauthorized") || strings.Contains(msg, "forbidden") ||
		strings.Contains(msg, "invalid_api_key") || strings.Contains(msg, "api key is missing") ||
		strings.Contains(msg, "not configured") ||
		strings.Contains(msg, "context canceled") || strings.Contains(msg, "context deadline exceeded")
}
