// Package llmtest provides a scripted llm.Provider for tests.
package llmtest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
)

// ErrUnavailable is returned for intents with no scripted response.
var ErrUnavailable = errors.New("llmtest: no response scripted")

// Mock answers by intent. Responses holds raw text (JSON for GenerateJSON),
// Errors overrides a response with a failure. Every intent with either entry
// counts as a configured profile unless Profiles is set.
type Mock struct {
	Responses map[string]string
	Errors    map[string]error
	Profiles  []string
	Panic     string // intent that panics when called
	HealthErr error

	mu      sync.Mutex
	calls   []string
	prompts map[string]string
}

// New returns a Mock scripted with intent -> response pairs.
func New(responses map[string]string) *Mock {
	return &Mock{Responses: responses}
}

func (m *Mock) record(name, prompt string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, name)
	if m.prompts == nil {
		m.prompts = make(map[string]string)
	}
	m.prompts[name] = prompt
}

func (m *Mock) answer(name string) (string, error) {
	if m.Panic != "" && m.Panic == name {
		panic("llmtest: scripted panic for " + name)
	}
	if err, ok := m.Errors[name]; ok {
		return "", err
	}
	resp, ok := m.Responses[name]
	if !ok {
		return "", fmt.Errorf("%w for %s", ErrUnavailable, name)
	}
	return resp, nil
}

func (m *Mock) GenerateText(ctx context.Context, name, prompt string) (string, error) {
	m.record(name, prompt)
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return m.answer(name)
}

func (m *Mock) GenerateJSON(ctx context.Context, name, prompt string, target any) error {
	m.record(name, prompt)
	if err := ctx.Err(); err != nil {
		return err
	}
	resp, err := m.answer(name)
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(resp), target)
}

func (m *Mock) HealthCheck(ctx context.Context) error { return m.HealthErr }

func (m *Mock) HasProfile(name string) bool {
	if m.Profiles != nil {
		for _, p := range m.Profiles {
			if p == name {
				return true
			}
		}
		return false
	}
	_, r := m.Responses[name]
	_, e := m.Errors[name]
	return r || e || (m.Panic != "" && m.Panic == name)
}

// Calls returns the intents requested so far, in order.
func (m *Mock) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

// Prompt returns the last prompt sent for an intent.
func (m *Mock) Prompt(name string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.prompts[name]
}
