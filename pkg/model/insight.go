package model

import (
	"fmt"
	"strings"
)

// Hook pattern tags emitted by the heuristic analyzer.
const (
	HookQuestion = "question-based"
	HookShock    = "shock-based"
	HookNumber   = "number-based"
	HookPersonal = "personal-story"
)

// HookPattern is one detected hook style with an example title.
type HookPattern struct {
	Type    string `json:"type"`
	Example string `json:"example"`
}

// InsightSet is the analyzer output. All slices are non-nil.
type InsightSet struct {
	HookPatterns      []HookPattern `json:"hook_patterns"`
	FormatTrends      []string      `json:"format_trends"`
	EngagementTactics []string      `json:"engagement_tactics"`
	ContentThemes     []string      `json:"content_themes"`
	Summary           string        `json:"summary"`
}

// NewInsightSet returns an InsightSet with empty, non-nil sequences.
func NewInsightSet() InsightSet {
	return InsightSet{
		HookPatterns:      []HookPattern{},
		FormatTrends:      []string{},
		EngagementTactics: []string{},
		ContentThemes:     []string{},
	}
}

// HookTypes lists the pattern tags in order.
func (s *InsightSet) HookTypes() []string {
	out := make([]string, 0, len(s.HookPatterns))
	for _, h := range s.HookPatterns {
		out = append(out, h.Type)
	}
	return out
}

// AnalysisType selects which insight categories to compute.
type AnalysisType string

const (
	AnalysisFull       AnalysisType = "full"
	AnalysisHooks      AnalysisType = "hooks"
	AnalysisFormat     AnalysisType = "format"
	AnalysisEngagement AnalysisType = "engagement"
	AnalysisThemes     AnalysisType = "themes"
)

// ParseAnalysisType accepts "", "full" and "all" as a full analysis.
func ParseAnalysisType(s string) (AnalysisType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "full", "all":
		return AnalysisFull, nil
	case "hooks":
		return AnalysisHooks, nil
	case "format":
		return AnalysisFormat, nil
	case "engagement":
		return AnalysisEngagement, nil
	case "themes":
		return AnalysisThemes, nil
	}
	return "", fmt.Errorf("%w: unknown analysis_type %q", ErrInvalidRequest, s)
}

// Includes reports whether category c is computed under t.
func (t AnalysisType) Includes(c AnalysisType) bool {
	return t == AnalysisFull || t == "" || t == c
}

// AnalysisRequest is the analyzer ingress payload.
type AnalysisRequest struct {
	Videos       []VideoRecord `json:"videos"`
	AnalysisType string        `json:"analysis_type,omitempty"`
}

// Validate checks the videos and the analysis type.
func (r *AnalysisRequest) Validate() error {
	if _, err := ParseAnalysisType(r.AnalysisType); err != nil {
		return err
	}
	return ValidateVideos(r.Videos)
}

// NicheAnalysisRequest filters enriched videos before analysis.
type NicheAnalysisRequest struct {
	Videos         []NicheVideoRecord `json:"videos"`
	AnalysisType   string             `json:"analysis_type,omitempty"`
	TargetNiche    string             `json:"target_niche,omitempty"`
	TargetProblem  string             `json:"target_problem,omitempty"`
	TargetAudience string             `json:"target_audience,omitempty"`
}

// Validate checks the videos and the analysis type.
func (r *NicheAnalysisRequest) Validate() error {
	if _, err := ParseAnalysisType(r.AnalysisType); err != nil {
		return err
	}
	for i := range r.Videos {
		if err := r.Videos[i].Validate(); err != nil {
			return fmt.Errorf("video %d: %w", i, err)
		}
	}
	return nil
}

// NicheInsights collects the distinct research values of the analyzed videos.
type NicheInsights struct {
	Problems          []string `json:"problems"`
	Audiences         []string `json:"audiences"`
	Solutions         []string `json:"solutions"`
	EmotionalTriggers []string `json:"emotional_triggers"`
	Niches            []string `json:"niches"`
	SubNiches         []string `json:"sub_niches"`
	PainPoints        []string `json:"pain_points"`
	ValuePropositions []string `json:"value_propositions"`
}

// Map flattens the insights into the script request shape.
func (n *NicheInsights) Map() map[string][]string {
	return map[string][]string{
		"problems":           n.Problems,
		"audiences":          n.Audiences,
		"solutions":          n.Solutions,
		"emotional_triggers": n.EmotionalTriggers,
		"niches":             n.Niches,
		"sub_niches":         n.SubNiches,
		"pain_points":        n.PainPoints,
		"value_propositions": n.ValuePropositions,
	}
}

// NicheAnalysisResult is an InsightSet plus niche insights. NicheInsights is
// nil for a plain analysis.
type NicheAnalysisResult struct {
	InsightSet
	NicheInsights *NicheInsights `json:"niche_insights,omitempty"`
}
