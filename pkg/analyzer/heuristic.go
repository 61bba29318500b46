package analyzer

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"reelsmith/pkg/model"
	"reelsmith/pkg/rules"
)

// Heuristic runs every detector over videos. It never fails and never
// modifies its input.
func Heuristic(videos []model.VideoRecord) model.InsightSet {
	return HeuristicType(videos, model.AnalysisFull)
}

// HeuristicType computes only the categories selected by t. The summary
// covers whatever was computed.
func HeuristicType(videos []model.VideoRecord, t model.AnalysisType) model.InsightSet {
	ins := model.NewInsightSet()
	if t.Includes(model.AnalysisHooks) {
		ins.HookPatterns = DetectHooks(videos)
	}
	if t.Includes(model.AnalysisFormat) {
		ins.FormatTrends = DetectFormats(videos)
	}
	if t.Includes(model.AnalysisEngagement) {
		ins.EngagementTactics = DetectEngagement(videos)
	}
	if t.Includes(model.AnalysisThemes) {
		ins.ContentThemes = DetectThemes(videos)
	}
	ins.Summary = Summarize(videos, &ins)
	return ins
}

// DetectHooks emits one pattern per hook class with at least one matching
// video, using the first match's title as the example.
func DetectHooks(videos []model.VideoRecord) []model.HookPattern {
	out := []model.HookPattern{}
	for _, d := range HookDetectors {
		if v := firstMatch(videos, d); v != nil {
			out = append(out, model.HookPattern{Type: d.Value, Example: v.Title})
		}
	}
	return out
}

// DetectFormats returns matched format trends followed by the defaults.
// An empty collection yields no trends at all.
func DetectFormats(videos []model.VideoRecord) []string {
	return detect(videos, FormatDetectors, FormatDefaults)
}

// DetectEngagement returns matched tactics followed by the defaults.
func DetectEngagement(videos []model.VideoRecord) []string {
	return detect(videos, EngagementDetectors, EngagementDefaults)
}

// DetectThemes returns matched themes followed by the defaults.
func DetectThemes(videos []model.VideoRecord) []string {
	if len(videos) == 0 {
		return []string{}
	}
	texts := make([]string, 0, 2*len(videos))
	for _, v := range videos {
		texts = append(texts, v.Title, v.Description)
	}
	out := ThemeRules.MatchAll(texts...)
	return append(out, ThemeDefaults...)
}

func detect(videos []model.VideoRecord, detectors []Detector, defaults []string) []string {
	out := []string{}
	if len(videos) == 0 {
		return out
	}
	for _, d := range detectors {
		if firstMatch(videos, d) != nil {
			out = append(out, d.Value)
		}
	}
	return append(out, defaults...)
}

func firstMatch(videos []model.VideoRecord, d Detector) *model.VideoRecord {
	for i := range videos {
		if d.Match(&videos[i]) {
			return &videos[i]
		}
	}
	return nil
}

var printer = message.NewPrinter(language.English)

// AverageViews is the arithmetic mean of the view counts, 0 for no videos.
func AverageViews(videos []model.VideoRecord) float64 {
	if len(videos) == 0 {
		return 0
	}
	var total float64
	for _, v := range videos {
		total += float64(v.Views)
	}
	return total / float64(len(videos))
}

// Summarize composes the summary from the populated categories. A clause
// whose source list is empty is left out.
func Summarize(videos []model.VideoRecord, ins *model.InsightSet) string {
	var sb strings.Builder
	sb.WriteString(printer.Sprintf("The analyzed videos (averaging %.0f views)", AverageViews(videos)))

	hooks := ins.HookTypes()
	switch {
	case len(hooks) > 0 && len(ins.FormatTrends) > 0:
		sb.WriteString(" typically use " + rules.JoinAnd(hooks) + " hooks, with a structure that typically follows " +
			strings.ToLower(ins.FormatTrends[0]) + ".")
	case len(hooks) > 0:
		sb.WriteString(" typically use " + rules.JoinAnd(hooks) + " hooks.")
	case len(ins.FormatTrends) > 0:
		sb.WriteString(" typically follow " + strings.ToLower(ins.FormatTrends[0]) + ".")
	default:
		sb.WriteString(".")
	}

	if n := len(ins.EngagementTactics); n > 0 {
		tactics := lowerAll(ins.EngagementTactics[:min(n, 2)])
		sb.WriteString(" Successful videos employ " + rules.JoinAnd(tactics) + " to drive viewer interaction.")
	}

	if n := len(ins.ContentThemes); n > 0 {
		themes := lowerAll(ins.ContentThemes[:min(n, 2)])
		sb.WriteString(" The most popular content focuses on " + rules.JoinAnd(themes) + ".")
	}

	return sb.String()
}

func lowerAll(items []string) []string {
	out := make([]string, len(items))
	for i, s := range items {
		out[i] = strings.ToLower(s)
	}
	return out
}
