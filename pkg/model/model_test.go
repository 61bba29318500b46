package model

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVideoRecord_Validate(t *testing.T) {
	tests := []struct {
		name    string
		video   VideoRecord
		wantErr bool
	}{
		{"Valid", VideoRecord{Title: "5 Morning Habits", Views: 10}, false},
		{"ZeroViews", VideoRecord{Title: "x", Views: 0}, false},
		{"BlankTitle", VideoRecord{Title: "   ", Views: 10}, true},
		{"NegativeViews", VideoRecord{Title: "x", Views: -1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.video.Validate()
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidVideo))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewVideoRecord(t *testing.T) {
	_, err := NewVideoRecord("", "", 1, "2023-05-15", "")
	assert.ErrorIs(t, err, ErrInvalidVideo)

	v, err := NewVideoRecord("Title", "desc", 5, "2023-05-15", "chan")
	require.NoError(t, err)
	assert.Equal(t, int64(5), v.Views)
}

func TestValidateVideos_ReportsIndex(t *testing.T) {
	err := ValidateVideos([]VideoRecord{{Title: "ok"}, {Title: "bad", Views: -3}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "video 1")
}

func TestVideoRecord_IgnoresUnknownFields(t *testing.T) {
	var v VideoRecord
	err := json.Unmarshal([]byte(`{"title":"t","views":3,"publishedAt":"2023","likes":99}`), &v)
	require.NoError(t, err)
	assert.Equal(t, "t", v.Title)
	assert.Empty(t, v.Description)
}

func TestNicheVideoRecord_FlatJSON(t *testing.T) {
	var v NicheVideoRecord
	err := json.Unmarshal([]byte(`{"title":"t","views":3,"niche":"Productivity","problem":"tired"}`), &v)
	require.NoError(t, err)
	assert.Equal(t, "t", v.Title)
	assert.Equal(t, "Productivity", v.Niche)
	assert.True(t, v.HasNicheData())
	assert.Equal(t, []VideoRecord{{Title: "t", Views: 3}}, Records([]NicheVideoRecord{v}))
}

func TestParseAnalysisType(t *testing.T) {
	tests := []struct {
		in      string
		want    AnalysisType
		wantErr bool
	}{
		{"", AnalysisFull, false},
		{"all", AnalysisFull, false},
		{"FULL", AnalysisFull, false},
		{"hooks", AnalysisHooks, false},
		{"themes", AnalysisThemes, false},
		{"colors", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAnalysisType(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRequest)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.True(t, AnalysisFull.Includes(AnalysisHooks))
	assert.True(t, AnalysisHooks.Includes(AnalysisHooks))
	assert.False(t, AnalysisHooks.Includes(AnalysisThemes))
}

func TestInsightSet_EmptySequencesMarshalAsArrays(t *testing.T) {
	b, err := json.Marshal(NewInsightSet())
	require.NoError(t, err)
	assert.JSONEq(t, `{"hook_patterns":[],"format_trends":[],"engagement_tactics":[],"content_themes":[],"summary":""}`, string(b))
}

func TestParsePlatform(t *testing.T) {
	tests := []struct {
		in    string
		want  Platform
		label string
	}{
		{"TikTok", PlatformTikTok, "TikTok"},
		{"instagram_reels", PlatformInstagram, "Instagram"},
		{"Instagram", PlatformInstagram, "Instagram"},
		{"YouTube", PlatformYouTube, "YouTube"},
		{"youtube_shorts", PlatformYouTube, "YouTube"},
		{"", PlatformAll, "all"},
		{"Snapchat", Platform("snapchat"), "snapchat"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := ParsePlatform(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.label, got.Label())
		})
	}
}

func TestParseStrategy(t *testing.T) {
	s, err := ParseStrategy("")
	require.NoError(t, err)
	assert.Equal(t, StrategyAuto, s)

	s, err = ParseStrategy("Heuristic")
	require.NoError(t, err)
	assert.Equal(t, StrategyHeuristic, s)

	_, err = ParseStrategy("magic")
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestScriptRequest_Defaults(t *testing.T) {
	var r ScriptRequest
	require.NoError(t, json.Unmarshal([]byte(`{"content_themes":["a"]}`), &r))
	r.ApplyDefaults()
	assert.Equal(t, 60, r.TargetLength)
	assert.Equal(t, "all", r.Platform)

	r.TargetLength = -1
	assert.ErrorIs(t, r.Validate(), ErrInvalidRequest)
}

func TestVisualPlanRequest_Defaults(t *testing.T) {
	r := VisualPlanRequest{Script: "x"}
	r.ApplyDefaults()
	assert.Equal(t, "engaging", r.Tone)
	assert.Equal(t, "TikTok", r.Platform)
}

func TestClock(t *testing.T) {
	assert.Equal(t, "0:05", FormatClock(5))
	assert.Equal(t, "1:05", FormatClock(65))
	assert.Equal(t, "0:00-0:05", FormatRange(0, 5))

	n, err := ParseClock("00:45")
	require.NoError(t, err)
	assert.Equal(t, 45, n)

	s, e, err := ParseRange("0:55-1:05")
	require.NoError(t, err)
	assert.Equal(t, 55, s)
	assert.Equal(t, 65, e)

	_, _, err = ParseRange("0:10-0:05")
	assert.Error(t, err)
	_, err = ParseClock("0:5")
	assert.Error(t, err)
}

func TestVisualPlan_CheckTimeline(t *testing.T) {
	plan := VisualPlan{
		Scenes: []Scene{
			{Timestamp: "0:00-0:05"},
			{Timestamp: "0:05-0:15"},
		},
		TotalDuration: "0:15",
	}
	assert.NoError(t, plan.CheckTimeline())

	plan.Scenes[1].Timestamp = "0:06-0:15"
	assert.Error(t, plan.CheckTimeline())

	plan.Scenes[1].Timestamp = "0:05-0:15"
	plan.TotalDuration = "0:20"
	assert.Error(t, plan.CheckTimeline())

	assert.Error(t, (&VisualPlan{}).CheckTimeline())
}
