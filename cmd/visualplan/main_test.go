package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reelsmith/pkg/model"
)

func clearKeys(t *testing.T) {
	t.Helper()
	for _, env := range []string{"GEMINI_API_KEY", "OPENAI_API_KEY", "GROQ_API_KEY", "DEEPSEEK_API_KEY", "NVIDIA_API_KEY"} {
		t.Setenv(env, "")
	}
}

func TestRun_Demo(t *testing.T) {
	clearKeys(t)
	dir := t.TempDir()
	outPath := filepath.Join(dir, "plan.json")

	var out bytes.Buffer
	err := run(context.Background(), &options{
		configPath: filepath.Join(dir, "reelsmith.yaml"),
		platform:   "youtube",
		demo:       true,
		output:     outPath,
	}, &out)
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "===== VISUAL CONTENT PLAN =====")
	assert.Contains(t, text, "TITLE: You won't believe this transformation.")
	assert.Contains(t, text, "SCENE 1: 0:00-0:05")
	assert.Contains(t, text, "STOCK FOOTAGE SOURCES:")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	var plan model.VisualPlan
	require.NoError(t, json.Unmarshal(data, &plan))
	assert.NoError(t, plan.CheckTimeline())
}

func TestRun_ScriptFile(t *testing.T) {
	clearKeys(t)
	dir := t.TempDir()
	scriptPath := filepath.Join(dir, "script.json")
	script := `{"title":"Stop doing this","script":"Stop doing this.\n\nMost people waste hours.\n\nTry batching instead.\n\nFollow for more!","cta":"Follow for more!","theme":"productivity hacks"}`
	require.NoError(t, os.WriteFile(scriptPath, []byte(script), 0o644))

	var out bytes.Buffer
	err := run(context.Background(), &options{
		configPath: filepath.Join(dir, "reelsmith.yaml"),
		script:     scriptPath,
		platform:   "TikTok",
	}, &out)
	require.NoError(t, err)

	assert.Equal(t, 4, strings.Count(out.String(), "\nSCENE "))
	assert.Contains(t, out.String(), "SCENE 4: 0:25-0:30")
	assert.Contains(t, out.String(), "TRANSITION: Fade")
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		opts options
	}{
		{"no input", options{platform: "TikTok"}},
		{"bad platform", options{platform: "Vine", demo: true}},
		{"missing script", options{platform: "TikTok", script: filepath.Join(t.TempDir(), "nope.json")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, run(context.Background(), &tt.opts, &bytes.Buffer{}))
		})
	}
}

func TestLoadScript_PlatformOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"script":"a. b","title":"t","theme":"fitness","platform":"Instagram"}`), 0o644))

	req, err := loadScript(path, "TikTok")
	require.NoError(t, err)
	assert.Equal(t, "Instagram", req.Platform)
	assert.Equal(t, "t", req.Hook)
	assert.Equal(t, "fitness", req.Niche)
	assert.Empty(t, req.Tone)
}

func TestRender_SkipsEmptyOverlay(t *testing.T) {
	overlay := "Big reveal"
	plan := model.VisualPlan{
		Title:         "T",
		TotalDuration: "0:10",
		Scenes: []model.Scene{
			{Timestamp: "0:00-0:05", ScriptSegment: "a", TextOverlay: &overlay, Transition: "Cut"},
			{Timestamp: "0:05-0:10", ScriptSegment: "b", Transition: "Fade"},
		},
	}
	var out bytes.Buffer
	Render(&out, &plan)

	assert.Equal(t, 1, strings.Count(out.String(), "TEXT OVERLAY:"))
	assert.Contains(t, out.String(), "TEXT OVERLAY: Big reveal")
}
