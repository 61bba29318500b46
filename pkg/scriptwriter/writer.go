// Package scriptwriter turns analyzer insights into a short-form video script
// with a hook, a body with bracketed visual cues and a call to action.
package scriptwriter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"reelsmith/pkg/chance"
	"reelsmith/pkg/llm"
	"reelsmith/pkg/llm/prompts"
	"reelsmith/pkg/model"
	"reelsmith/pkg/rules"
	"reelsmith/pkg/tracker"
)

const stage = "scriptwriter"

// InferHookType ignores example words of up to shortWord runes.
const shortWord = 3

// Writer generates hook, body and CTA independently. A failed part falls
// back to its template without affecting the others.
type Writer struct {
	strategy model.Strategy
	llm      llm.Provider
	prompts  *prompts.Manager
	tracker  *tracker.Tracker
	rng      chance.Source
	timeout  time.Duration
}

// New creates a Writer. p and pm may be nil, which forces the heuristic
// branch.
func New(strategy model.Strategy, p llm.Provider, pm *prompts.Manager, t *tracker.Tracker) *Writer {
	return &Writer{strategy: strategy, llm: p, prompts: pm, tracker: t, rng: chance.Default}
}

// SetRandom replaces the template selection source.
func (w *Writer) SetRandom(src chance.Source) {
	w.rng = chance.Or(src)
}

// SetTimeout bounds each generation call. Zero means no extra bound.
func (w *Writer) SetTimeout(d time.Duration) {
	w.timeout = d
}

// Generate writes a script for the request.
func (w *Writer) Generate(ctx context.Context, req model.ScriptRequest) model.ScriptPlan {
	req.ApplyDefaults()
	if !w.generative() {
		return Heuristic(w.rng, req)
	}

	theme := SelectTheme(w.rng, req.ContentThemes)
	data := promptData{
		Theme:             theme,
		HookPatterns:      req.HookPatterns,
		FormatTrends:      req.FormatTrends,
		EngagementTactics: req.EngagementTactics,
		TargetLength:      req.TargetLength,
		Platform:          req.Platform,
		Audience:          req.NicheInsights["audiences"],
		PainPoints:        req.NicheInsights["pain_points"],
	}

	hook := w.hook(ctx, data, req.HookPatterns)
	data.Hook = hook.Text
	body := w.body(ctx, data)
	cta := w.cta(ctx, data)
	return Assemble(hook, body, cta, theme, req.Platform)
}

func (w *Writer) generative() bool {
	return w.strategy != model.StrategyHeuristic && w.llm != nil && w.prompts != nil
}

type promptData struct {
	Theme             string
	Hook              string
	HookPatterns      []model.HookPattern
	FormatTrends      []string
	EngagementTactics []string
	Audience          []string
	PainPoints        []string
	TargetLength      int
	Platform          string
}

var errEmpty = errors.New("empty result")

func (w *Writer) hook(ctx context.Context, data promptData, patterns []model.HookPattern) Hook {
	text, err := w.generate(ctx, llm.IntentScriptHook, prompts.ScriptHook, data)
	if err != nil {
		w.fallback(llm.IntentScriptHook, err)
		return SelectHook(w.rng, patterns, data.Theme)
	}
	w.tracker.TrackGenerated(stage)
	return Hook{Text: text, Type: InferHookType(text, patterns)}
}

func (w *Writer) body(ctx context.Context, data promptData) string {
	text, err := w.generate(ctx, llm.IntentScriptBody, prompts.ScriptBody, data)
	if err != nil {
		w.fallback(llm.IntentScriptBody, err)
		return ComposeBody(data.Hook, data.Theme)
	}
	w.tracker.TrackGenerated(stage)
	return data.Hook + "\n\n" + text
}

func (w *Writer) cta(ctx context.Context, data promptData) string {
	text, err := w.generate(ctx, llm.IntentScriptCTA, prompts.ScriptCTA, data)
	if err != nil {
		w.fallback(llm.IntentScriptCTA, err)
		return SelectCTA(w.rng, data.Platform, data.Theme)
	}
	w.tracker.TrackGenerated(stage)
	return text
}

func (w *Writer) generate(ctx context.Context, intent, tmpl string, data promptData) (string, error) {
	if !llm.Available(w.llm, intent) {
		return "", fmt.Errorf("no profile for %s", intent)
	}
	prompt, err := w.prompts.Render(tmpl, data)
	if err != nil {
		return "", fmt.Errorf("render %s: %w", tmpl, err)
	}
	if w.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.timeout)
		defer cancel()
	}
	text, err := w.llm.GenerateText(ctx, intent, prompt)
	if err != nil {
		return "", err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", errEmpty
	}
	return text, nil
}

func (w *Writer) fallback(intent string, err error) {
	slog.Warn("Scriptwriter: generation failed, using template", "intent", intent, "error", err)
	w.tracker.TrackFallback(stage)
}

// InferHookType returns the type of the first pattern whose example shares a
// word longer than three runes with the hook. Hooks that match nothing are
// reported as shock-based.
func InferHookType(hook string, patterns []model.HookPattern) string {
	lower := strings.ToLower(hook)
	for _, p := range patterns {
		for _, word := range rules.Tokens(strings.ToLower(p.Example)) {
			if utf8.RuneCountInString(word) <= shortWord {
				continue
			}
			if strings.Contains(lower, word) {
				return p.Type
			}
		}
	}
	return model.HookShock
}
