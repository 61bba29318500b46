package planner

import (
	"strings"

	"reelsmith/pkg/model"
)

// SceneKind tags a scene's role in the timeline.
type SceneKind string

const (
	SceneHook    SceneKind = "hook"
	SceneContent SceneKind = "content"
	SceneCTA     SceneKind = "cta"
)

const (
	hookSeconds = 5
	ctaSeconds  = 5

	contentBudget  = 30
	minContentSecs = 3
	maxContentSecs = 10

	// MaxContentScenes caps the scenes between hook and CTA. Segments past
	// the cap are merged into the last content scene.
	MaxContentScenes = 20
)

// Slot is one timed segment before enrichment.
type Slot struct {
	Kind  SceneKind
	Text  string
	Start int // seconds
	End   int
}

// Timestamp renders the slot span as "M:SS-M:SS".
func (s Slot) Timestamp() string {
	return model.FormatRange(s.Start, s.End)
}

// Segment splits a script on blank lines when it has any, otherwise on ". ".
// Segments are trimmed and empty ones dropped.
func Segment(script string) []string {
	sep := ". "
	if strings.Contains(script, "\n\n") {
		sep = "\n\n"
	}
	var out []string
	for _, part := range strings.Split(script, sep) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// ContentSeconds is the uniform duration of each content scene for a script
// of n segments.
func ContentSeconds(n int) int {
	secs := contentBudget / max(1, n-2)
	return max(minContentSecs, min(secs, maxContentSecs))
}

// Timeline lays segments out back to back from 0:00. The first segment is
// the hook scene, the last is the CTA scene when there are at least three,
// and everything between is content. A script with no segments yields a
// single empty hook slot.
func Timeline(segments []string) []Slot {
	if len(segments) == 0 {
		return []Slot{{Kind: SceneHook, Start: 0, End: hookSeconds}}
	}

	slots := []Slot{{Kind: SceneHook, Text: segments[0], Start: 0, End: hookSeconds}}
	if len(segments) == 1 {
		return slots
	}

	per := ContentSeconds(len(segments))
	content := segments[1:]
	var cta string
	hasCTA := len(segments) >= 3
	if hasCTA {
		content = segments[1 : len(segments)-1]
		cta = segments[len(segments)-1]
	}
	if len(content) > MaxContentScenes {
		merged := strings.Join(content[MaxContentScenes-1:], " ")
		content = append(content[:MaxContentScenes-1:MaxContentScenes-1], merged)
	}

	at := hookSeconds
	for _, text := range content {
		slots = append(slots, Slot{Kind: SceneContent, Text: text, Start: at, End: at + per})
		at += per
	}
	if hasCTA {
		slots = append(slots, Slot{Kind: SceneCTA, Text: cta, Start: at, End: at + ctaSeconds})
	}
	return slots
}
