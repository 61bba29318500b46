package scriptwriter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"reelsmith/pkg/chance"
	"reelsmith/pkg/model"
)

func TestSelectHook(t *testing.T) {
	tests := []struct {
		name     string
		src      chance.Source
		patterns []model.HookPattern
		theme    string
		want     Hook
	}{
		{
			name:  "NoPatterns",
			src:   chance.NewSequence(0),
			theme: "Morning routines",
			want:  Hook{Text: "You've been approaching morning all wrong.", Type: model.HookShock},
		},
		{
			name:     "QuestionClaim",
			src:      chance.NewSequence(0, 0),
			patterns: []model.HookPattern{{Type: model.HookQuestion}},
			theme:    "Productivity hacks",
			want:     Hook{Text: "What if I told you one simple productivity hack could save you hours?", Type: model.HookQuestion},
		},
		{
			name:     "ShockWithAction",
			src:      chance.NewSequence(0, 0, 2),
			patterns: []model.HookPattern{{Type: model.HookShock}},
			theme:    "Tech tips",
			want:     Hook{Text: "You've been backing up your data wrong this whole time.", Type: model.HookShock},
		},
		{
			name:     "GenericAction",
			src:      chance.NewSequence(0, 0, 0),
			patterns: []model.HookPattern{{Type: model.HookPersonal}},
			theme:    "Woodworking",
			want:     Hook{Text: "I tried doing this for 30 days and here's what happened.", Type: model.HookPersonal},
		},
		{
			name:     "UnknownTypeUsesShockTemplates",
			src:      chance.NewSequence(0, 2),
			patterns: []model.HookPattern{{Type: "curiosity-gap"}},
			theme:    "Cooking basics",
			want:     Hook{Text: "I can't believe I didn't know this cooking secret sooner.", Type: "curiosity-gap"},
		},
		{
			name:     "NumberTopic",
			src:      chance.NewSequence(1, 1),
			patterns: []model.HookPattern{{Type: model.HookQuestion}, {Type: model.HookNumber}},
			theme:    "Health and nutrition",
			want:     Hook{Text: "The #1 reason your health isn't working.", Type: model.HookNumber},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SelectHook(tt.src, tt.patterns, tt.theme))
		})
	}
}

func TestSelectHook_AllTemplatesFilled(t *testing.T) {
	src := chance.NewSeeded(3)
	for typ := range HookTemplates {
		for i := 0; i < 20; i++ {
			h := SelectHook(src, []model.HookPattern{{Type: typ}}, "Productivity hacks")
			assert.NotContains(t, h.Text, "[", "unfilled placeholder in %q", h.Text)
		}
	}
}

func TestSelectCTA(t *testing.T) {
	tests := []struct {
		name     string
		src      chance.Source
		platform string
		want     string
	}{
		{"TikTokFollow", chance.NewSequence(0), "TikTok", "Hit that follow button if you want more tech tips like this."},
		{"TikTokPhrase", chance.NewSequence(1), "tiktok", "Comment 'I'll try this' if you're going to try this."},
		{"YouTubeAlias", chance.NewSequence(0), "YouTube", "Subscribe for more tech hacks that actually work."},
		{"Reels", chance.NewSequence(3), "instagram_reels", "Share this with someone who's been struggling with tech."},
		{"UnknownPlatform", chance.NewSequence(0), "Snapchat", "Follow for more tech tips that nobody talks about."},
		{"All", chance.NewSequence(2), "all", "Like and save this for later!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SelectCTA(tt.src, tt.platform, "Tech tips"))
		})
	}
}

func TestComposeBody(t *testing.T) {
	tests := []struct {
		theme string
		want  Body
	}{
		{"Productivity hacks", BodyRules[0].Value},
		{"Tech tips", BodyRules[1].Value},
		{"Healthy diet", BodyRules[2].Value},
		{"Woodworking", GenericBody},
	}
	for _, tt := range tests {
		t.Run(tt.theme, func(t *testing.T) {
			got := ComposeBody("Hook line.", tt.theme)
			assert.Equal(t, "Hook line.\n\n"+tt.want.Problem+"\n\n"+tt.want.Solution, got)
		})
	}
}

func TestComposeBody_TechProblemText(t *testing.T) {
	got := ComposeBody("Hook line.", "tech gadgets")
	assert.Contains(t, got, "Your phone battery dying mid-day is not just annoying\u2014it's preventable. [show phone at 1%]")
}

func TestEstimateDuration(t *testing.T) {
	words := func(n int) string { return strings.Repeat("word ", n) }
	tests := []struct {
		name  string
		words int
		want  int
	}{
		{"Empty", 0, 15},
		{"ClampLow", 20, 15},
		{"Exact", 100, 40},
		{"Floor", 101, 40},
		{"ClampHigh", 400, 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EstimateDuration(words(tt.words)))
		})
	}
}

func TestAssemble(t *testing.T) {
	hook := Hook{Text: strings.Repeat("a", 70), Type: model.HookNumber}
	plan := Assemble(hook, "body", "cta", "Tech tips", "YouTube")

	assert.Equal(t, strings.Repeat("a", 57)+"...", plan.Title)
	assert.Equal(t, "body\n\ncta", plan.Script)
	assert.Equal(t, 15, plan.EstimatedDuration)
	assert.Equal(t, []string{
		"Estimated duration: 15 seconds",
		"Hook type: number-based",
		"Primary theme: Tech tips",
		"Target platform: YouTube",
		"Include subscribe reminder overlay in final seconds",
	}, plan.Notes)

	plan = Assemble(Hook{Text: "Short", Type: model.HookShock}, "b", "c", "x", "all")
	assert.Equal(t, "Short", plan.Title)
	assert.Len(t, plan.Notes, 4)
}

func TestHeuristic(t *testing.T) {
	req := model.ScriptRequest{
		HookPatterns:  []model.HookPattern{{Type: model.HookQuestion, Example: "Why?"}},
		ContentThemes: []string{"Productivity hacks", "Tech tips"},
		Platform:      "TikTok",
	}
	plan := Heuristic(chance.NewSequence(0), req)

	hook := "What if I told you one simple productivity hack could save you hours?"
	assert.Equal(t, hook[:57]+"...", plan.Title)
	assert.Equal(t, model.HookQuestion, plan.HookType)
	assert.Equal(t, "Productivity hacks", plan.Theme)
	assert.Equal(t, "Hit that follow button if you want more productivity tips like this.", plan.CTA)
	assert.True(t, strings.HasPrefix(plan.Script, hook+"\n\n"+BodyRules[0].Value.Problem))
	assert.True(t, strings.HasSuffix(plan.Script, "\n\n"+plan.CTA))
	assert.Equal(t, EstimateDuration(plan.Script), plan.EstimatedDuration)
	assert.Contains(t, plan.Notes, "Optimize for mobile vertical format (9:16)")
}

func TestHeuristic_EmptyInsights(t *testing.T) {
	plan := Heuristic(chance.NewSequence(0), model.ScriptRequest{})

	assert.Equal(t, DefaultTheme, plan.Theme)
	assert.Equal(t, model.HookShock, plan.HookType)
	assert.Equal(t, "You've been approaching productivity all wrong.", plan.Title)
	assert.Equal(t, "Follow for more productivity tips that nobody talks about.", plan.CTA)
	assert.Contains(t, plan.Notes, "Target platform: all")
	assert.GreaterOrEqual(t, plan.EstimatedDuration, 15)
	assert.LessOrEqual(t, plan.EstimatedDuration, 60)
}

func TestHeuristic_NoPatternsLongTheme(t *testing.T) {
	plan := Heuristic(chance.NewSequence(0), model.ScriptRequest{
		ContentThemes: []string{"Personal productivity and habit formation"},
	})

	assert.Equal(t, "Personal productivity and habit formation", plan.Theme)
	assert.Equal(t, "You've been approaching personal all wrong.", plan.Title)
	assert.Equal(t, model.HookShock, plan.HookType)
}
