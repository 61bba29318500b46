// Package planner expands a script into a timed, shot-by-shot visual
// production plan.
package planner

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"slices"
	"strings"
	"time"

	"reelsmith/pkg/chance"
	"reelsmith/pkg/llm"
	"reelsmith/pkg/llm/prompts"
	"reelsmith/pkg/model"
	"reelsmith/pkg/tracker"
)

const stage = "planner"

// Planner tries one generated plan and falls back to the heuristic plan when
// generation fails or returns a broken timeline. A panic anywhere in either
// branch yields Minimal.
type Planner struct {
	strategy model.Strategy
	llm      llm.Provider
	prompts  *prompts.Manager
	tracker  *tracker.Tracker
	rng      chance.Source
	timeout  time.Duration
}

// New creates a Planner. p and pm may be nil, which forces the heuristic
// branch.
func New(strategy model.Strategy, p llm.Provider, pm *prompts.Manager, t *tracker.Tracker) *Planner {
	return &Planner{strategy: strategy, llm: p, prompts: pm, tracker: t, rng: chance.Default}
}

// SetRandom replaces the selection source.
func (p *Planner) SetRandom(src chance.Source) {
	p.rng = chance.Or(src)
}

// SetTimeout bounds the generation call. Zero means no extra bound.
func (p *Planner) SetTimeout(d time.Duration) {
	p.timeout = d
}

// Plan returns a visual plan for the request. It never fails.
func (p *Planner) Plan(ctx context.Context, req model.VisualPlanRequest) (plan model.VisualPlan) {
	req.ApplyDefaults()
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Planner: recovered from panic, returning minimal plan", "panic", r, "stack", string(debug.Stack()))
			p.tracker.TrackDegraded(stage)
			plan = Minimal(req)
		}
	}()

	if p.generative() {
		generated, err := p.generate(ctx, req)
		if err == nil {
			p.tracker.TrackGenerated(stage)
			return generated
		}
		slog.Warn("Planner: generation failed, using heuristic", "intent", llm.IntentVisualPlan, "error", err)
		p.tracker.TrackFallback(stage)
	}
	return Heuristic(p.rng, req)
}

func (p *Planner) generative() bool {
	return p.strategy != model.StrategyHeuristic && p.llm != nil && p.prompts != nil
}

var planSchema = llm.Schema[model.VisualPlan]()

type promptData struct {
	Script   string
	Hook     string
	CTA      string
	Niche    string
	Tone     string
	Platform string
	Schema   string
}

func (p *Planner) generate(ctx context.Context, req model.VisualPlanRequest) (model.VisualPlan, error) {
	if !llm.Available(p.llm, llm.IntentVisualPlan) {
		return model.VisualPlan{}, fmt.Errorf("no profile for %s", llm.IntentVisualPlan)
	}

	data := promptData{
		Script:   req.Script,
		Hook:     strings.TrimSpace(req.Hook),
		CTA:      strings.TrimSpace(req.CTA),
		Niche:    strings.TrimSpace(req.Niche),
		Tone:     req.Tone,
		Platform: req.Platform,
		Schema:   planSchema,
	}
	if data.Hook == "" {
		if segs := Segment(req.Script); len(segs) > 0 {
			data.Hook = segs[0]
		}
	}
	if data.CTA == "" {
		data.CTA = DefaultCTA
	}

	prompt, err := p.prompts.Render(prompts.VisualPlan, data)
	if err != nil {
		return model.VisualPlan{}, fmt.Errorf("render %s: %w", prompts.VisualPlan, err)
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}
	var plan model.VisualPlan
	if err := p.llm.GenerateJSON(ctx, llm.IntentVisualPlan, prompt, &plan); err != nil {
		return model.VisualPlan{}, err
	}
	if err := Normalize(&plan, data.Hook); err != nil {
		return model.VisualPlan{}, fmt.Errorf("unusable plan: %w", err)
	}
	return plan, nil
}

// Normalize validates a generated plan's timeline, rewrites its clocks in
// canonical form and fills the fields the generator left blank.
func Normalize(plan *model.VisualPlan, hook string) error {
	if err := plan.CheckTimeline(); err != nil {
		return err
	}

	end := 0
	for i := range plan.Scenes {
		sc := &plan.Scenes[i]
		start, stop, _ := model.ParseRange(sc.Timestamp)
		sc.Timestamp = model.FormatRange(start, stop)
		end = stop
		if sc.StockFootage == nil {
			sc.StockFootage = []string{}
		}
		if sc.VisualEffects == nil {
			sc.VisualEffects = []string{}
		}
		if strings.TrimSpace(sc.Transition) == "" {
			sc.Transition = "Cut"
		}
		if sc.TextOverlay != nil && strings.TrimSpace(*sc.TextOverlay) == "" {
			sc.TextOverlay = nil
		}
	}
	plan.TotalDuration = model.FormatClock(end)

	if strings.TrimSpace(plan.Title) == "" {
		plan.Title = hook
	}
	if plan.MusicRecommendation == "" {
		plan.MusicRecommendation = "Upbeat background music"
	}
	if plan.VoiceoverStyle == "" {
		plan.VoiceoverStyle = "Energetic and clear"
	}
	if plan.StockFootagePlatforms == nil {
		plan.StockFootagePlatforms = slices.Clone(FootagePlatforms[:3])
	}
	if plan.EditingTips == nil {
		plan.EditingTips = []string{}
	}
	return nil
}
