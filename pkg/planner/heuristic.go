package planner

import (
	"strings"

	"reelsmith/pkg/chance"
	"reelsmith/pkg/model"
	"reelsmith/pkg/rules"
)

const (
	// DefaultNiche is assumed when the request names none.
	DefaultNiche = "lifestyle"
	// DefaultTitle is used when neither hook nor script has text.
	DefaultTitle = "Attention-grabbing hook"
	// DefaultCTA is offered to the generator when the request has none.
	DefaultCTA = "Follow for more content like this!"
)

// Heuristic builds a plan from the script's segments and the lookup tables.
func Heuristic(src chance.Source, req model.VisualPlanRequest) model.VisualPlan {
	req.ApplyDefaults()
	src = chance.Or(src)
	platform := model.ParsePlatform(req.Platform)
	niche := strings.TrimSpace(req.Niche)
	if niche == "" {
		niche = DefaultNiche
	}

	segments := Segment(req.Script)
	slots := Timeline(segments)
	scenes := make([]model.Scene, 0, len(slots))
	for _, s := range slots {
		scenes = append(scenes, model.Scene{
			Timestamp:     s.Timestamp(),
			ScriptSegment: s.Text,
			StockFootage:  StockFootage(src, s.Text, niche),
			TextOverlay:   TextOverlay(s.Text),
			VisualEffects: VisualEffects(src, platform, s.Kind),
			Transition:    Transition(src, s.Kind),
		})
	}

	return model.VisualPlan{
		Title:                 planTitle(req.Hook, segments),
		Scenes:                scenes,
		TotalDuration:         model.FormatClock(slots[len(slots)-1].End),
		MusicRecommendation:   Music(niche, req.Tone),
		VoiceoverStyle:        Voiceover(niche, req.Tone),
		StockFootagePlatforms: Platforms(src),
		EditingTips:           Tips(src, platform),
	}
}

func planTitle(hook string, segments []string) string {
	title := strings.TrimSpace(hook)
	if title == "" && len(segments) > 0 {
		title = segments[0]
	}
	if title == "" {
		return DefaultTitle
	}
	return rules.Truncate(title, 60, 57)
}

// Minimal is the single-scene plan returned when planning itself fails.
func Minimal(req model.VisualPlanRequest) model.VisualPlan {
	title := strings.TrimSpace(req.Hook)
	if title == "" {
		title = DefaultTitle
	}
	overlay := "Key message"
	return model.VisualPlan{
		Title: title,
		Scenes: []model.Scene{{
			Timestamp:     "0:00-0:30",
			ScriptSegment: req.Script,
			StockFootage:  []string{"Person talking to camera", "Relevant B-roll"},
			TextOverlay:   &overlay,
			VisualEffects: []string{"Text Animation"},
			Transition:    "Cut",
		}},
		TotalDuration:         "0:30",
		MusicRecommendation:   "Upbeat background music",
		VoiceoverStyle:        "Clear and engaging",
		StockFootagePlatforms: []string{"Pexels", "Pixabay"},
		EditingTips:           []string{"Keep it simple", "Focus on clear audio"},
	}
}
