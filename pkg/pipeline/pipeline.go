// Package pipeline chains the analyzer, scriptwriter and visual planner.
package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"reelsmith/pkg/config"
	"reelsmith/pkg/model"
)

// Analyzer extracts insights from video records.
type Analyzer interface {
	Analyze(ctx context.Context, videos []model.VideoRecord, t model.AnalysisType) model.InsightSet
}

// Scriptwriter turns insights into a script.
type Scriptwriter interface {
	Generate(ctx context.Context, req model.ScriptRequest) model.ScriptPlan
}

// Planner turns a script into a visual plan.
type Planner interface {
	Plan(ctx context.Context, req model.VisualPlanRequest) model.VisualPlan
}

// Service exposes each stage on its own and the full run. Requests are
// validated here; the stages never see malformed input.
type Service struct {
	analyzer Analyzer
	writer   Scriptwriter
	planner  Planner
	defaults config.PipelineConfig
}

// New creates a Service. Blank defaults fall back to the built-in ones.
func New(a Analyzer, w Scriptwriter, p Planner, defaults config.PipelineConfig) *Service {
	base := config.DefaultConfig().Pipeline
	if defaults.Platform == "" {
		defaults.Platform = base.Platform
	}
	if defaults.Tone == "" {
		defaults.Tone = base.Tone
	}
	if defaults.TargetDuration <= 0 {
		defaults.TargetDuration = base.TargetDuration
	}
	return &Service{analyzer: a, writer: w, planner: p, defaults: defaults}
}

// Analyze runs the analyzer over plain video records.
func (s *Service) Analyze(ctx context.Context, req model.AnalysisRequest) (model.InsightSet, error) {
	if err := req.Validate(); err != nil {
		return model.InsightSet{}, err
	}
	t, _ := model.ParseAnalysisType(req.AnalysisType)
	return s.analyzer.Analyze(ctx, req.Videos, t), nil
}

// AnalyzeNiche filters enriched videos by the request targets, analyzes the
// remainder and attaches their niche insights.
func (s *Service) AnalyzeNiche(ctx context.Context, req model.NicheAnalysisRequest) (model.NicheAnalysisResult, error) {
	if err := req.Validate(); err != nil {
		return model.NicheAnalysisResult{}, err
	}
	t, _ := model.ParseAnalysisType(req.AnalysisType)
	return s.analyzeNiche(ctx, req.Videos, t, req.TargetNiche, req.TargetProblem, req.TargetAudience), nil
}

func (s *Service) analyzeNiche(ctx context.Context, videos []model.NicheVideoRecord, t model.AnalysisType, niche, problem, audience string) model.NicheAnalysisResult {
	filtered := Filter(videos, niche, problem, audience)
	slog.Debug("Pipeline: niche filter applied", "in", len(videos), "out", len(filtered))
	return model.NicheAnalysisResult{
		InsightSet:    s.analyzer.Analyze(ctx, model.Records(filtered), t),
		NicheInsights: CollectInsights(filtered),
	}
}

// Script runs the scriptwriter.
func (s *Service) Script(ctx context.Context, req model.ScriptRequest) (model.ScriptPlan, error) {
	if err := req.Validate(); err != nil {
		return model.ScriptPlan{}, err
	}
	req.ApplyDefaults()
	return s.writer.Generate(ctx, req), nil
}

// VisualPlan runs the planner.
func (s *Service) VisualPlan(ctx context.Context, req model.VisualPlanRequest) model.VisualPlan {
	req.ApplyDefaults()
	return s.planner.Plan(ctx, req)
}

// Run executes all three stages. Niche analysis is used when any video
// carries research fields; the script theme becomes the plan niche.
func (s *Service) Run(ctx context.Context, req model.PipelineRequest) (model.PipelineResult, error) {
	if err := req.Validate(); err != nil {
		return model.PipelineResult{}, err
	}
	if req.Platform == "" {
		req.Platform = s.defaults.Platform
	}
	if req.TargetDuration == 0 {
		req.TargetDuration = s.defaults.TargetDuration
	}

	runID := uuid.NewString()
	start := time.Now()
	log := slog.With("run_id", runID)
	log.Info("Pipeline: run started", "videos", len(req.Videos), "platform", req.Platform)

	var analysis model.NicheAnalysisResult
	if HasNicheData(req.Videos) {
		analysis = s.analyzeNiche(ctx, req.Videos, model.AnalysisFull, req.TargetNiche, req.TargetProblem, "")
	} else {
		analysis.InsightSet = s.analyzer.Analyze(ctx, model.Records(req.Videos), model.AnalysisFull)
	}

	scriptReq := model.NewScriptRequest(&analysis.InsightSet, req.Platform, req.TargetDuration)
	if analysis.NicheInsights != nil {
		scriptReq.NicheInsights = analysis.NicheInsights.Map()
	}
	script := s.writer.Generate(ctx, scriptReq)

	plan := s.planner.Plan(ctx, model.PlanRequestFromScript(&script, s.defaults.Tone, req.Platform))

	log.Info("Pipeline: run finished", "scenes", len(plan.Scenes), "duration", plan.TotalDuration, "elapsed", time.Since(start))
	return model.PipelineResult{
		RunID:      runID,
		Analysis:   analysis,
		Script:     script,
		VisualPlan: plan,
	}, nil
}
