package model

import "fmt"

const (
	DefaultTone           = "engaging"
	DefaultVisualPlatform = "TikTok"
)

// VisualPlanRequest asks the planner to break a script into scenes.
type VisualPlanRequest struct {
	Script   string `json:"script"`
	Hook     string `json:"hook,omitempty"`
	CTA      string `json:"cta,omitempty"`
	Niche    string `json:"niche,omitempty"`
	Tone     string `json:"tone"`
	Platform string `json:"platform"`
}

// ApplyDefaults fills tone and platform.
func (r *VisualPlanRequest) ApplyDefaults() {
	if r.Tone == "" {
		r.Tone = DefaultTone
	}
	if r.Platform == "" {
		r.Platform = DefaultVisualPlatform
	}
}

// Scene is one timestamped segment of a visual plan.
type Scene struct {
	Timestamp     string   `json:"timestamp" jsonschema_description:"M:SS-M:SS; scenes run back to back from 0:00"`
	ScriptSegment string   `json:"script_segment"`
	StockFootage  []string `json:"stock_footage" jsonschema_description:"2-3 stock footage search suggestions"`
	TextOverlay   *string  `json:"text_overlay" jsonschema_description:"On-screen text, or null"`
	VisualEffects []string `json:"visual_effects" jsonschema_description:"1-2 effects"`
	Transition    string   `json:"transition" jsonschema_description:"Transition into the next scene"`
}

// VisualPlan is the planner output.
type VisualPlan struct {
	Title                 string   `json:"title"`
	Scenes                []Scene  `json:"scenes"`
	TotalDuration         string   `json:"total_duration" jsonschema_description:"M:SS, end of the last scene"`
	MusicRecommendation   string   `json:"music_recommendation"`
	VoiceoverStyle        string   `json:"voiceover_style"`
	StockFootagePlatforms []string `json:"stock_footage_platforms"`
	EditingTips           []string `json:"editing_tips"`
}

// CheckTimeline verifies that scenes start at 0:00, each scene starts where
// the previous one ended, and the total duration matches the last end.
func (p *VisualPlan) CheckTimeline() error {
	if len(p.Scenes) == 0 {
		return fmt.Errorf("%w: plan has no scenes", ErrInvalidRequest)
	}
	prev := 0
	for i, sc := range p.Scenes {
		start, end, err := ParseRange(sc.Timestamp)
		if err != nil {
			return fmt.Errorf("scene %d: %w", i, err)
		}
		if start != prev {
			return fmt.Errorf("%w: scene %d starts at %s, expected %s", ErrInvalidRequest, i, FormatClock(start), FormatClock(prev))
		}
		prev = end
	}
	total, err := ParseClock(p.TotalDuration)
	if err != nil {
		return fmt.Errorf("total_duration: %w", err)
	}
	if total != prev {
		return fmt.Errorf("%w: total_duration %s does not match last scene end %s", ErrInvalidRequest, p.TotalDuration, FormatClock(prev))
	}
	return nil
}

// PlanRequestFromScript builds the planner request for a finished script:
// the title is the hook and the theme is the niche.
func PlanRequestFromScript(s *ScriptPlan, tone, platform string) VisualPlanRequest {
	return VisualPlanRequest{
		Script:   s.Script,
		Hook:     s.Title,
		CTA:      s.CTA,
		Niche:    s.Theme,
		Tone:     tone,
		Platform: platform,
	}
}
