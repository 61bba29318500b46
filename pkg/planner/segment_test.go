package planner

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegment(t *testing.T) {
	tests := []struct {
		name   string
		script string
		want   []string
	}{
		{"BlankLines", "Hook line.\n\nProblem. More.\n\n  CTA  ", []string{"Hook line.", "Problem. More.", "CTA"}},
		{"Sentences", "One. Two. Three", []string{"One", "Two", "Three"}},
		{"Single", "Just one line", []string{"Just one line"}},
		{"DropsEmpty", "a\n\n\n\nb", []string{"a", "b"}},
		{"Empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Segment(tt.script))
		})
	}
}

func TestContentSeconds(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{1, 10},
		{2, 10},
		{3, 10},
		{5, 10},
		{6, 7},
		{12, 3},
		{40, 3},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.n), func(t *testing.T) {
			assert.Equal(t, tt.want, ContentSeconds(tt.n))
		})
	}
}

func TestTimeline(t *testing.T) {
	tests := []struct {
		name     string
		segments []string
		want     []Slot
	}{
		{
			name: "Empty",
			want: []Slot{{Kind: SceneHook, Start: 0, End: 5}},
		},
		{
			name:     "OneSegment",
			segments: []string{"h"},
			want:     []Slot{{Kind: SceneHook, Text: "h", Start: 0, End: 5}},
		},
		{
			name:     "TwoSegmentsNoCTA",
			segments: []string{"h", "c"},
			want: []Slot{
				{Kind: SceneHook, Text: "h", Start: 0, End: 5},
				{Kind: SceneContent, Text: "c", Start: 5, End: 15},
			},
		},
		{
			name:     "HookContentCTA",
			segments: []string{"h", "a", "b", "cta"},
			want: []Slot{
				{Kind: SceneHook, Text: "h", Start: 0, End: 5},
				{Kind: SceneContent, Text: "a", Start: 5, End: 15},
				{Kind: SceneContent, Text: "b", Start: 15, End: 25},
				{Kind: SceneCTA, Text: "cta", Start: 25, End: 30},
			},
		},
		{
			name:     "SevenSeconds",
			segments: []string{"h", "a", "b", "c", "d", "cta"},
			want: []Slot{
				{Kind: SceneHook, Text: "h", Start: 0, End: 5},
				{Kind: SceneContent, Text: "a", Start: 5, End: 12},
				{Kind: SceneContent, Text: "b", Start: 12, End: 19},
				{Kind: SceneContent, Text: "c", Start: 19, End: 26},
				{Kind: SceneContent, Text: "d", Start: 26, End: 33},
				{Kind: SceneCTA, Text: "cta", Start: 33, End: 38},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Timeline(tt.segments))
		})
	}
}

func TestTimeline_CapsContentScenes(t *testing.T) {
	segments := make([]string, 30)
	for i := range segments {
		segments[i] = fmt.Sprintf("s%d", i)
	}
	slots := Timeline(segments)

	require.Len(t, slots, MaxContentScenes+2)
	assert.Equal(t, "s0", slots[0].Text)
	assert.Equal(t, SceneCTA, slots[len(slots)-1].Kind)
	assert.Equal(t, "s29", slots[len(slots)-1].Text)
	assert.Equal(t, "s20 s21 s22 s23 s24 s25 s26 s27 s28", slots[len(slots)-2].Text)
	assert.Equal(t, "s1", segments[1], "input must not be modified")
	assert.Equal(t, "s20", segments[20], "input must not be modified")

	prev := 0
	for _, s := range slots {
		assert.Equal(t, prev, s.Start)
		prev = s.End
	}
	assert.Equal(t, 5+MaxContentScenes*3+5, prev)
}
