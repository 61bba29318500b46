package pipeline

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reelsmith/pkg/analyzer"
	"reelsmith/pkg/chance"
	"reelsmith/pkg/config"
	"reelsmith/pkg/model"
	"reelsmith/pkg/planner"
	"reelsmith/pkg/scriptwriter"
)

type recordingWriter struct {
	req  model.ScriptRequest
	plan model.ScriptPlan
}

func (w *recordingWriter) Generate(ctx context.Context, req model.ScriptRequest) model.ScriptPlan {
	w.req = req
	return w.plan
}

type recordingPlanner struct {
	req model.VisualPlanRequest
}

func (p *recordingPlanner) Plan(ctx context.Context, req model.VisualPlanRequest) model.VisualPlan {
	p.req = req
	return planner.Minimal(req)
}

type recordingAnalyzer struct {
	videos []model.VideoRecord
	t      model.AnalysisType
}

func (a *recordingAnalyzer) Analyze(ctx context.Context, videos []model.VideoRecord, t model.AnalysisType) model.InsightSet {
	a.videos, a.t = videos, t
	return analyzer.HeuristicType(videos, t)
}

func heuristicService() *Service {
	w := scriptwriter.New(model.StrategyHeuristic, nil, nil, nil)
	w.SetRandom(chance.NewSequence(0))
	p := planner.New(model.StrategyHeuristic, nil, nil, nil)
	p.SetRandom(chance.NewSequence(0))
	return New(analyzer.New(model.StrategyHeuristic, nil, nil, nil), w, p, config.PipelineConfig{})
}

func TestRun_Heuristic(t *testing.T) {
	svc := heuristicService()
	res, err := svc.Run(context.Background(), model.PipelineRequest{Videos: nicheVideos(), TargetNiche: "productivity"})
	require.NoError(t, err)

	_, err = uuid.Parse(res.RunID)
	assert.NoError(t, err)

	require.NotNil(t, res.Analysis.NicheInsights)
	assert.Equal(t, []string{"Productivity", "productivity"}, res.Analysis.NicheInsights.Niches)
	assert.NotEmpty(t, res.Analysis.HookPatterns)

	assert.NotEmpty(t, res.Script.Script)
	assert.Contains(t, res.Script.Notes, "Target platform: TikTok")
	assert.GreaterOrEqual(t, res.Script.EstimatedDuration, 15)
	assert.LessOrEqual(t, res.Script.EstimatedDuration, 60)

	require.NotEmpty(t, res.VisualPlan.Scenes)
	assert.NoError(t, res.VisualPlan.CheckTimeline())
	assert.Equal(t, res.Script.Title, res.VisualPlan.Title)
}

func TestRun_WiresStages(t *testing.T) {
	a := &recordingAnalyzer{}
	w := &recordingWriter{plan: model.ScriptPlan{Title: "Hook", Script: "Hook\n\nBody\n\nCTA", CTA: "CTA", Theme: "Tech tips"}}
	p := &recordingPlanner{}
	svc := New(a, w, p, config.PipelineConfig{Tone: "calm"})

	res, err := svc.Run(context.Background(), model.PipelineRequest{
		Videos:        nicheVideos(),
		Platform:      "Instagram",
		TargetNiche:   "tech",
		TargetProblem: "battery",
	})
	require.NoError(t, err)

	assert.Equal(t, model.AnalysisFull, a.t)
	require.Len(t, a.videos, 1)
	assert.Equal(t, "Why Your Phone Battery Dies So Fast?", a.videos[0].Title)

	assert.Equal(t, 50, w.req.TargetLength)
	assert.Equal(t, "Instagram", w.req.Platform)
	assert.Equal(t, []string{"Smartphone users"}, w.req.NicheInsights["audiences"])

	assert.Equal(t, model.VisualPlanRequest{
		Script:   "Hook\n\nBody\n\nCTA",
		Hook:     "Hook",
		CTA:      "CTA",
		Niche:    "Tech tips",
		Tone:     "calm",
		Platform: "Instagram",
	}, p.req)
	assert.Equal(t, "Hook", res.VisualPlan.Title)
}

func TestRun_PlainVideosSkipNicheAnalysis(t *testing.T) {
	a := &recordingAnalyzer{}
	w := &recordingWriter{}
	svc := New(a, w, &recordingPlanner{}, config.PipelineConfig{})

	res, err := svc.Run(context.Background(), model.PipelineRequest{
		Videos:         nicheVideos()[3:],
		TargetNiche:    "ignored without research fields",
		TargetDuration: 30,
	})
	require.NoError(t, err)

	assert.Nil(t, res.Analysis.NicheInsights)
	assert.Len(t, a.videos, 1)
	assert.Nil(t, w.req.NicheInsights)
	assert.Equal(t, 30, w.req.TargetLength)
	assert.Equal(t, "TikTok", w.req.Platform)
}

func TestRun_RejectsInvalidInput(t *testing.T) {
	svc := heuristicService()

	_, err := svc.Run(context.Background(), model.PipelineRequest{
		Videos: []model.NicheVideoRecord{{VideoRecord: model.VideoRecord{Title: "x", Views: -1}}},
	})
	assert.ErrorIs(t, err, model.ErrInvalidVideo)

	_, err = svc.Run(context.Background(), model.PipelineRequest{TargetDuration: -5})
	assert.ErrorIs(t, err, model.ErrInvalidRequest)
}

func TestAnalyze(t *testing.T) {
	svc := heuristicService()

	ins, err := svc.Analyze(context.Background(), model.AnalysisRequest{
		Videos:       model.Records(nicheVideos()),
		AnalysisType: "hooks",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, ins.HookPatterns)
	assert.Empty(t, ins.FormatTrends)

	_, err = svc.Analyze(context.Background(), model.AnalysisRequest{AnalysisType: "colors"})
	assert.ErrorIs(t, err, model.ErrInvalidRequest)
}

func TestAnalyzeNiche(t *testing.T) {
	svc := heuristicService()

	res, err := svc.AnalyzeNiche(context.Background(), model.NicheAnalysisRequest{
		Videos:         nicheVideos(),
		TargetAudience: "students",
	})
	require.NoError(t, err)
	require.NotNil(t, res.NicheInsights)
	assert.Equal(t, []string{"Students"}, res.NicheInsights.Audiences)
	assert.Equal(t, []string{"productivity"}, res.NicheInsights.Niches)
}

func TestScriptAndVisualPlan(t *testing.T) {
	svc := heuristicService()

	_, err := svc.Script(context.Background(), model.ScriptRequest{TargetLength: -1})
	assert.ErrorIs(t, err, model.ErrInvalidRequest)

	plan, err := svc.Script(context.Background(), model.ScriptRequest{})
	require.NoError(t, err)
	assert.Equal(t, scriptwriter.DefaultTheme, plan.Theme)

	vp := svc.VisualPlan(context.Background(), model.VisualPlanRequest{Script: plan.Script})
	assert.NoError(t, vp.CheckTimeline())
}
