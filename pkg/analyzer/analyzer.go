// Package analyzer extracts hook, format, engagement and theme insights from
// a collection of short-form video records.
package analyzer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"reelsmith/pkg/llm"
	"reelsmith/pkg/llm/prompts"
	"reelsmith/pkg/model"
	"reelsmith/pkg/tracker"
)

const stage = "analyzer"

// Analyzer runs the generative branch when a provider is available and the
// strategy allows it; every category falls back to its heuristic on its own.
type Analyzer struct {
	strategy model.Strategy
	llm      llm.Provider
	prompts  *prompts.Manager
	tracker  *tracker.Tracker
	timeout  time.Duration
}

// New creates an Analyzer. p and pm may be nil, which forces the heuristic
// branch.
func New(strategy model.Strategy, p llm.Provider, pm *prompts.Manager, t *tracker.Tracker) *Analyzer {
	return &Analyzer{strategy: strategy, llm: p, prompts: pm, tracker: t}
}

// SetTimeout bounds each generation call. Zero means no extra bound.
func (a *Analyzer) SetTimeout(d time.Duration) {
	a.timeout = d
}

// Analyze returns the insights for the categories selected by t.
func (a *Analyzer) Analyze(ctx context.Context, videos []model.VideoRecord, t model.AnalysisType) model.InsightSet {
	if t == "" {
		t = model.AnalysisFull
	}
	if !a.generative() {
		return HeuristicType(videos, t)
	}

	data := promptData{Videos: videos}
	ins := model.NewInsightSet()

	if t.Includes(model.AnalysisHooks) {
		ins.HookPatterns = a.hooks(ctx, data)
	}
	if t.Includes(model.AnalysisFormat) {
		ins.FormatTrends = a.list(ctx, llm.IntentAnalysisFormats, prompts.AnalysisFormats, data,
			func(r *listResponse) []string { return r.FormatTrends },
			func() []string { return DetectFormats(videos) })
	}
	if t.Includes(model.AnalysisEngagement) {
		ins.EngagementTactics = a.list(ctx, llm.IntentAnalysisEngagement, prompts.AnalysisEngagement, data,
			func(r *listResponse) []string { return r.EngagementTactics },
			func() []string { return DetectEngagement(videos) })
	}
	if t.Includes(model.AnalysisThemes) {
		ins.ContentThemes = a.list(ctx, llm.IntentAnalysisThemes, prompts.AnalysisThemes, data,
			func(r *listResponse) []string { return r.ContentThemes },
			func() []string { return DetectThemes(videos) })
	}
	ins.Summary = a.summary(ctx, videos, &ins)
	return ins
}

func (a *Analyzer) generative() bool {
	return a.strategy != model.StrategyHeuristic && a.llm != nil && a.prompts != nil
}

type promptData struct {
	Videos []model.VideoRecord
}

type summaryData struct {
	AverageViews      float64
	HookTypes         []string
	FormatTrends      []string
	EngagementTactics []string
	ContentThemes     []string
}

var errEmpty = errors.New("empty result")

func (a *Analyzer) hooks(ctx context.Context, data promptData) []model.HookPattern {
	var resp struct {
		HookPatterns []model.HookPattern `json:"hook_patterns"`
	}
	err := a.generateJSON(ctx, llm.IntentAnalysisHooks, prompts.AnalysisHooks, data, &resp)
	if err == nil {
		resp.HookPatterns = cleanHooks(resp.HookPatterns)
		if len(resp.HookPatterns) == 0 {
			err = errEmpty
		}
	}
	if err != nil {
		a.fallback(llm.IntentAnalysisHooks, err)
		return DetectHooks(data.Videos)
	}
	a.tracker.TrackGenerated(stage)
	return resp.HookPatterns
}

// listResponse is the JSON object shape for the string categories. Each
// prompt asks for one of the fields.
type listResponse struct {
	FormatTrends      []string `json:"format_trends"`
	EngagementTactics []string `json:"engagement_tactics"`
	ContentThemes     []string `json:"content_themes"`
}

// list generates one string category.
func (a *Analyzer) list(ctx context.Context, intent, tmpl string, data promptData, pick func(*listResponse) []string, heuristic func() []string) []string {
	var resp listResponse
	err := a.generateJSON(ctx, intent, tmpl, data, &resp)
	var items []string
	if err == nil {
		items = cleanList(pick(&resp))
		if len(items) == 0 {
			err = fmt.Errorf("%w for %s", errEmpty, intent)
		}
	}
	if err != nil {
		a.fallback(intent, err)
		return heuristic()
	}
	a.tracker.TrackGenerated(stage)
	return items
}

func (a *Analyzer) summary(ctx context.Context, videos []model.VideoRecord, ins *model.InsightSet) string {
	data := summaryData{
		AverageViews:      AverageViews(videos),
		HookTypes:         ins.HookTypes(),
		FormatTrends:      ins.FormatTrends,
		EngagementTactics: ins.EngagementTactics,
		ContentThemes:     ins.ContentThemes,
	}

	text, err := a.generateText(ctx, llm.IntentAnalysisSummary, prompts.AnalysisSummary, data)
	if err == nil && strings.TrimSpace(text) == "" {
		err = errEmpty
	}
	if err != nil {
		a.fallback(llm.IntentAnalysisSummary, err)
		return Summarize(videos, ins)
	}
	a.tracker.TrackGenerated(stage)
	return strings.TrimSpace(text)
}

func (a *Analyzer) generateJSON(ctx context.Context, intent, tmpl string, data, target any) error {
	if !llm.Available(a.llm, intent) {
		return fmt.Errorf("no profile for %s", intent)
	}
	prompt, err := a.prompts.Render(tmpl, data)
	if err != nil {
		return fmt.Errorf("render %s: %w", tmpl, err)
	}
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()
	return a.llm.GenerateJSON(ctx, intent, prompt, target)
}

func (a *Analyzer) generateText(ctx context.Context, intent, tmpl string, data any) (string, error) {
	if !llm.Available(a.llm, intent) {
		return "", fmt.Errorf("no profile for %s", intent)
	}
	prompt, err := a.prompts.Render(tmpl, data)
	if err != nil {
		return "", fmt.Errorf("render %s: %w", tmpl, err)
	}
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()
	return a.llm.GenerateText(ctx, intent, prompt)
}

func (a *Analyzer) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.timeout)
}

func (a *Analyzer) fallback(intent string, err error) {
	slog.Warn("Analyzer: generation failed, using heuristic", "intent", intent, "error", err)
	a.tracker.TrackFallback(stage)
}

func cleanHooks(in []model.HookPattern) []model.HookPattern {
	out := make([]model.HookPattern, 0, len(in))
	for _, h := range in {
		h.Type = strings.TrimSpace(h.Type)
		h.Example = strings.TrimSpace(h.Example)
		if h.Type != "" {
			out = append(out, h)
		}
	}
	return out
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
