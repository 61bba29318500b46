package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reelsmith/pkg/analyzer"
	"reelsmith/pkg/config"
	"reelsmith/pkg/ingest"
	"reelsmith/pkg/model"
	"reelsmith/pkg/pipeline"
	"reelsmith/pkg/planner"
	"reelsmith/pkg/rules"
	"reelsmith/pkg/scriptwriter"
	"reelsmith/pkg/tracker"
)

func newTestServer(t *testing.T, svc Service, tr *tracker.Tracker) *httptest.Server {
	t.Helper()
	if svc == nil {
		svc = pipeline.New(
			analyzer.New(model.StrategyHeuristic, nil, nil, tr),
			scriptwriter.New(model.StrategyHeuristic, nil, nil, tr),
			planner.New(model.StrategyHeuristic, nil, nil, tr),
			config.PipelineConfig{},
		)
	}
	srv := NewServer("",
		NewPipelineHandler(svc),
		NewStatsHandler(tr, []string{"gemini", "groq"}),
		NewHealthHandler(false, map[string]string{"planner": "heuristic"}),
		nil,
	)
	ts := httptest.NewServer(srv.Handler)
	t.Cleanup(ts.Close)
	return ts
}

func post(t *testing.T, ts *httptest.Server, path string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}
	resp, err := http.Post(ts.URL+path, "application/json", &buf)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func get(t *testing.T, ts *httptest.Server, path string) *http.Response {
	t.Helper()
	resp, err := http.Get(ts.URL + path)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestIndex(t *testing.T) {
	ts := newTestServer(t, nil, nil)

	resp := get(t, ts, "/")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	idx := decodeBody[IndexResponse](t, resp)

	assert.NotEmpty(t, idx.Version)
	assert.Contains(t, idx.Endpoints, "POST /api/full-pipeline")
	assert.Contains(t, idx.Endpoints, "GET /api/sample")

	// Unregistered paths must not fall through to the index.
	assert.Equal(t, http.StatusNotFound, get(t, ts, "/nope").StatusCode)
}

func TestHealthAndVersion(t *testing.T) {
	ts := newTestServer(t, nil, nil)

	h := decodeBody[HealthResponse](t, get(t, ts, "/health"))
	assert.Equal(t, "healthy", h.Status)
	assert.False(t, h.Generative)
	assert.Equal(t, "heuristic", h.Strategies["planner"])
	assert.NotEmpty(t, h.Timestamp)

	v := decodeBody[map[string]string](t, get(t, ts, "/api/version"))
	assert.NotEmpty(t, v["version"])
}

func TestAnalyze(t *testing.T) {
	ts := newTestServer(t, nil, nil)

	resp := post(t, ts, "/api/analyze", ingest.Samples().Analyze)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	ins := decodeBody[model.InsightSet](t, resp)
	assert.NotEmpty(t, ins.HookPatterns)
	assert.NotEmpty(t, ins.FormatTrends)
	assert.NotEmpty(t, ins.Summary)
}

func TestAnalyze_TypeFilter(t *testing.T) {
	ts := newTestServer(t, nil, nil)

	req := model.AnalysisRequest{Videos: ingest.SampleVideos(), AnalysisType: "hooks"}
	ins := decodeBody[model.InsightSet](t, post(t, ts, "/api/analyze", req))

	assert.NotEmpty(t, ins.HookPatterns)
	assert.Empty(t, ins.FormatTrends)
	assert.Empty(t, ins.ContentThemes)
}

func TestBadRequests(t *testing.T) {
	ts := newTestServer(t, nil, nil)

	tests := []struct {
		name    string
		path    string
		body    string
		wantMsg string
	}{
		{"malformed json", "/api/analyze", `{"videos": [`, "malformed JSON"},
		{"blank title", "/api/analyze", `{"videos":[{"title":"  ","views":10,"publishedAt":"2024-01-01"}]}`, "title is required"},
		{"negative views", "/api/niche-analysis", `{"videos":[{"title":"x","views":-1,"publishedAt":"2024-01-01"}]}`, "views must be non-negative"},
		{"unknown analysis type", "/api/analyze", `{"videos":[],"analysis_type":"vibes"}`, "analysis_type"},
		{"negative target length", "/api/generate-script", `{"target_length":-5}`, "target_length"},
		{"negative duration", "/api/full-pipeline", `{"videos":[],"target_duration":-1}`, "target_duration"},
		{"wrong field type", "/api/create-visual-plan", `{"script": 42}`, "malformed JSON"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := post(t, ts, tt.path, tt.body)
			require.Equal(t, http.StatusBadRequest, resp.StatusCode)
			e := decodeBody[ErrorResponse](t, resp)
			assert.Contains(t, e.Error, tt.wantMsg)
		})
	}
}

func TestUnknownFieldsIgnored(t *testing.T) {
	ts := newTestServer(t, nil, nil)

	body := `{"videos":[{"title":"Why you need this","views":5,"publishedAt":"2024-01-01","likes":99}],"extra":true}`
	resp := post(t, ts, "/api/analyze", body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMethodNotAllowed(t *testing.T) {
	ts := newTestServer(t, nil, nil)
	assert.Equal(t, http.StatusMethodNotAllowed, get(t, ts, "/api/analyze").StatusCode)
}

func TestGenerateScript_Defaults(t *testing.T) {
	ts := newTestServer(t, nil, nil)

	resp := post(t, ts, "/api/generate-script", `{}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	plan := decodeBody[model.ScriptPlan](t, resp)

	assert.Equal(t, scriptwriter.DefaultTheme, plan.Theme)
	assert.Equal(t, model.HookShock, plan.HookType)
	assert.GreaterOrEqual(t, plan.EstimatedDuration, 15)
	assert.LessOrEqual(t, plan.EstimatedDuration, 60)
}

func TestCreateVisualPlan(t *testing.T) {
	ts := newTestServer(t, nil, nil)

	resp := post(t, ts, "/api/create-visual-plan", ingest.Samples().CreateVisualPlan)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	plan := decodeBody[model.VisualPlan](t, resp)

	require.NotEmpty(t, plan.Scenes)
	assert.Equal(t, "0:00-0:05", plan.Scenes[0].Timestamp)
	assert.NoError(t, plan.CheckTimeline())
	assert.Equal(t, rules.Truncate(ingest.Samples().CreateVisualPlan.Hook, 60, 57), plan.Title)
}

func TestCreateVisualPlan_EmptyScript(t *testing.T) {
	ts := newTestServer(t, nil, nil)

	plan := decodeBody[model.VisualPlan](t, post(t, ts, "/api/create-visual-plan", `{}`))
	require.Len(t, plan.Scenes, 1)
	assert.Equal(t, "0:05", plan.TotalDuration)
}

func TestFullPipeline(t *testing.T) {
	ts := newTestServer(t, nil, nil)

	resp := post(t, ts, "/api/full-pipeline", ingest.Samples().FullPipeline)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	res := decodeBody[model.PipelineResult](t, resp)

	_, err := uuid.Parse(res.RunID)
	assert.NoError(t, err)
	assert.NotNil(t, res.Analysis.NicheInsights)
	assert.NotEmpty(t, res.Script.Script)
	assert.Equal(t, res.Script.Title, res.VisualPlan.Title)
	assert.NoError(t, res.VisualPlan.CheckTimeline())
}

func TestSample(t *testing.T) {
	ts := newTestServer(t, nil, nil)

	resp := get(t, ts, "/api/sample")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	raw := decodeBody[map[string]json.RawMessage](t, resp)

	for _, key := range []string{"analyze_endpoint", "niche_analysis_endpoint", "generate_script_endpoint", "create_visual_plan_endpoint", "full_pipeline_endpoint"} {
		assert.Contains(t, raw, key)
	}
}

type failingService struct{ Service }

func (failingService) Run(ctx context.Context, req model.PipelineRequest) (model.PipelineResult, error) {
	return model.PipelineResult{}, errors.New("disk on fire")
}

func TestFullPipeline_InternalError(t *testing.T) {
	ts := newTestServer(t, failingService{}, nil)

	resp := post(t, ts, "/api/full-pipeline", `{"videos":[]}`)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	e := decodeBody[ErrorResponse](t, resp)
	assert.Equal(t, "internal server error", e.Error)
}

type recordingService struct {
	Service
	descriptions []string
}

func (s *recordingService) Analyze(ctx context.Context, req model.AnalysisRequest) (model.InsightSet, error) {
	for _, v := range req.Videos {
		s.descriptions = append(s.descriptions, v.Description)
	}
	return model.InsightSet{}, nil
}

func (s *recordingService) AnalyzeNiche(ctx context.Context, req model.NicheAnalysisRequest) (model.NicheAnalysisResult, error) {
	for _, v := range req.Videos {
		s.descriptions = append(s.descriptions, v.Description)
	}
	return model.NicheAnalysisResult{}, nil
}

func (s *recordingService) Run(ctx context.Context, req model.PipelineRequest) (model.PipelineResult, error) {
	for _, v := range req.Videos {
		s.descriptions = append(s.descriptions, v.Description)
	}
	return model.PipelineResult{}, nil
}

func TestVideoHandlers_CleanDescriptions(t *testing.T) {
	body := `{"videos":[{"title":"t","views":1,"publishedAt":"2023-05-15","description":"<p>Tips &amp; <b>tricks</b></p>"}]}`
	for _, path := range []string{"/api/analyze", "/api/niche-analysis", "/api/full-pipeline"} {
		t.Run(path, func(t *testing.T) {
			svc := &recordingService{}
			ts := newTestServer(t, svc, nil)

			resp := post(t, ts, path, body)
			require.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, []string{"Tips & tricks"}, svc.descriptions)
		})
	}
}

func TestAnalyze_MatchesFileInput(t *testing.T) {
	body := `[{"title":"My honest review","views":1200,"publishedAt":"2023-05-15","description":"<p>What do you think? Drop a &lt;comment&gt; below</p>"}]`
	videos, err := ingest.DecodeVideos(strings.NewReader(body))
	require.NoError(t, err)
	want, err := json.Marshal(analyzer.Heuristic(model.Records(videos)))
	require.NoError(t, err)

	ts := newTestServer(t, nil, nil)
	resp := post(t, ts, "/api/analyze", `{"videos":`+body+`}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, string(want), string(decodeBody[json.RawMessage](t, resp)))
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, StatusFor(fmt.Errorf("video 2: %w", model.ErrInvalidVideo)))
	assert.Equal(t, http.StatusBadRequest, StatusFor(model.ErrInvalidRequest))
	assert.Equal(t, http.StatusInternalServerError, StatusFor(errors.New("other")))
}

func TestRequestID(t *testing.T) {
	ts := newTestServer(t, nil, nil)

	resp := get(t, ts, "/health")
	_, err := uuid.Parse(resp.Header.Get(RequestIDHeader))
	assert.NoError(t, err)

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/health", http.NoBody)
	require.NoError(t, err)
	req.Header.Set(RequestIDHeader, "abc-123")
	resp2, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, "abc-123", resp2.Header.Get(RequestIDHeader))
}

func TestLoggingMiddleware_Status(t *testing.T) {
	var seen string
	h := LoggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestID(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", http.NoBody))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))
}

func TestShutdown(t *testing.T) {
	done := make(chan struct{})
	srv := NewServer("", NewPipelineHandler(nil), NewStatsHandler(nil, nil), NewHealthHandler(false, nil), func() { close(done) })

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/shutdown", http.NoBody))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Body.String(), "Shutting down"))
	<-done
}
