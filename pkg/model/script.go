package model

import "fmt"

const (
	DefaultScriptPlatform = "all"
	DefaultTargetLength   = 60
)

// ScriptRequest carries analyzer insights into the scriptwriter.
type ScriptRequest struct {
	HookPatterns      []HookPattern       `json:"hook_patterns"`
	FormatTrends      []string            `json:"format_trends"`
	EngagementTactics []string            `json:"engagement_tactics"`
	ContentThemes     []string            `json:"content_themes"`
	Summary           string              `json:"summary"`
	TargetLength      int                 `json:"target_length"` // seconds
	Platform          string              `json:"platform"`
	NicheInsights     map[string][]string `json:"niche_insights,omitempty"`
}

// NewScriptRequest builds a request from an InsightSet.
func NewScriptRequest(ins *InsightSet, platform string, targetLength int) ScriptRequest {
	r := ScriptRequest{
		HookPatterns:      ins.HookPatterns,
		FormatTrends:      ins.FormatTrends,
		EngagementTactics: ins.EngagementTactics,
		ContentThemes:     ins.ContentThemes,
		Summary:           ins.Summary,
		TargetLength:      targetLength,
		Platform:          platform,
	}
	r.ApplyDefaults()
	return r
}

// ApplyDefaults fills the optional fields.
func (r *ScriptRequest) ApplyDefaults() {
	if r.TargetLength == 0 {
		r.TargetLength = DefaultTargetLength
	}
	if r.Platform == "" {
		r.Platform = DefaultScriptPlatform
	}
}

// Validate rejects a negative target length.
func (r *ScriptRequest) Validate() error {
	if r.TargetLength < 0 {
		return fmt.Errorf("%w: target_length must be non-negative, got %d", ErrInvalidRequest, r.TargetLength)
	}
	return nil
}

// ScriptPlan is the scriptwriter output.
type ScriptPlan struct {
	Title             string   `json:"title"`
	Script            string   `json:"script"`
	HookType          string   `json:"hook_type"`
	EstimatedDuration int      `json:"estimated_duration"` // seconds, 15..60
	Theme             string   `json:"theme"`
	CTA               string   `json:"cta"`
	Notes             []string `json:"notes"`
}
