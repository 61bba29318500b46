package model

import "fmt"

// PipelineRequest runs analysis, scripting and planning in one call.
type PipelineRequest struct {
	Videos         []NicheVideoRecord `json:"videos"`
	Platform       string             `json:"platform"`
	TargetNiche    string             `json:"target_niche,omitempty"`
	TargetProblem  string             `json:"target_problem,omitempty"`
	TargetDuration int                `json:"target_duration"` // seconds
}

// Validate checks the videos and the target duration.
func (r *PipelineRequest) Validate() error {
	if r.TargetDuration < 0 {
		return fmt.Errorf("%w: target_duration must be non-negative, got %d", ErrInvalidRequest, r.TargetDuration)
	}
	for i := range r.Videos {
		if err := r.Videos[i].Validate(); err != nil {
			return fmt.Errorf("video %d: %w", i, err)
		}
	}
	return nil
}

// PipelineResult holds every stage's output for one run.
type PipelineResult struct {
	RunID      string              `json:"run_id"`
	Analysis   NicheAnalysisResult `json:"analysis"`
	Script     ScriptPlan          `json:"script"`
	VisualPlan VisualPlan          `json:"visual_plan"`
}
