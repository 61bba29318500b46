package pipeline

import (
	"slices"
	"strings"

	"reelsmith/pkg/model"
)

// Filter keeps the videos whose niche, problem and audience contain the
// respective targets, ignoring case. A blank target does not filter; a set
// target drops videos with the field missing.
func Filter(videos []model.NicheVideoRecord, niche, problem, audience string) []model.NicheVideoRecord {
	out := videos
	out = filterBy(out, niche, func(v *model.NicheVideoRecord) string { return v.Niche })
	out = filterBy(out, problem, func(v *model.NicheVideoRecord) string { return v.Problem })
	out = filterBy(out, audience, func(v *model.NicheVideoRecord) string { return v.Audience })
	return out
}

func filterBy(videos []model.NicheVideoRecord, target string, field func(*model.NicheVideoRecord) string) []model.NicheVideoRecord {
	target = strings.ToLower(strings.TrimSpace(target))
	if target == "" {
		return videos
	}
	out := make([]model.NicheVideoRecord, 0, len(videos))
	for i := range videos {
		if strings.Contains(strings.ToLower(field(&videos[i])), target) {
			out = append(out, videos[i])
		}
	}
	return out
}

// CollectInsights gathers the sorted distinct non-empty values of each
// research field.
func CollectInsights(videos []model.NicheVideoRecord) *model.NicheInsights {
	collect := func(field func(*model.NicheVideoRecord) string) []string {
		out := []string{}
		for i := range videos {
			if s := strings.TrimSpace(field(&videos[i])); s != "" {
				out = append(out, s)
			}
		}
		slices.Sort(out)
		return slices.Compact(out)
	}
	return &model.NicheInsights{
		Problems:          collect(func(v *model.NicheVideoRecord) string { return v.Problem }),
		Audiences:         collect(func(v *model.NicheVideoRecord) string { return v.Audience }),
		Solutions:         collect(func(v *model.NicheVideoRecord) string { return v.Solution }),
		EmotionalTriggers: collect(func(v *model.NicheVideoRecord) string { return v.EmotionalTriggers }),
		Niches:            collect(func(v *model.NicheVideoRecord) string { return v.Niche }),
		SubNiches:         collect(func(v *model.NicheVideoRecord) string { return v.SubNiche }),
		PainPoints:        collect(func(v *model.NicheVideoRecord) string { return v.PainPoints }),
		ValuePropositions: collect(func(v *model.NicheVideoRecord) string { return v.ValueProposition }),
	}
}

// HasNicheData reports whether any video carries research fields.
func HasNicheData(videos []model.NicheVideoRecord) bool {
	return slices.ContainsFunc(videos, func(v model.NicheVideoRecord) bool { return v.HasNicheData() })
}
