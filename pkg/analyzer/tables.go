package analyzer

import (
	"strings"

	"reelsmith/pkg/model"
	"reelsmith/pkg/rules"
)

// Lexicons used by the hook and engagement detectors.
var (
	ShockWords   = []string{"wrong", "mistake", "shocking", "never", "secret"}
	CTAWords     = []string{"follow", "subscribe", "like", "comment", "share"}
	NumberTokens = []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"}
)

// Insight strings emitted by the detectors.
const (
	TrendList           = "List-based format (e.g., '5 tips', '3 mistakes')"
	TrendTutorial       = "Tutorial/How-to format with step-by-step instructions"
	TrendTransformation = "Before/After transformation format"
	TrendStructure      = "Hook (0-3s) → Problem/Pain Point (3-8s) → Solution/Value (8-20s) → CTA (last 5s)"
	TrendEditing        = "Fast-paced editing with text overlays and background music"

	TacticQuestions     = "Direct questions to viewers to encourage comments"
	TacticExplicitCTA   = "Explicit calls-to-action (follow, like, comment)"
	TacticOpenLoops     = "Open loops (creating curiosity gaps that keep viewers watching)"
	TacticTagFriends    = "Relatable scenarios that prompt viewers to tag friends"
	TacticControversial = "Controversial or counterintuitive statements to drive discussion"

	ThemeProductivity    = "Personal productivity and habit formation"
	ThemeTechnology      = "Technology tips and gadget hacks"
	ThemeHealth          = "Health, nutrition, and wellness advice"
	ThemeLifeHacks       = "Life hacks and everyday problem-solving"
	ThemeBehindTheScenes = "Behind-the-scenes or 'day in the life' content"
)

// Detector is one conditional check. Match reports whether a single video
// triggers it; the first matching video supplies the example.
type Detector struct {
	Value string
	Match func(v *model.VideoRecord) bool
}

// HookDetectors run in emission order.
var HookDetectors = []Detector{
	{model.HookQuestion, isQuestionHook},
	{model.HookShock, func(v *model.VideoRecord) bool { return rules.ContainsAny(v.Title, ShockWords) }},
	{model.HookNumber, hasNumberToken},
	{model.HookPersonal, isPersonalStory},
}

// FormatDetectors run in emission order; FormatDefaults always follow.
var FormatDetectors = []Detector{
	{TrendList, func(v *model.VideoRecord) bool { return strings.ContainsAny(v.Title, "0123456789") }},
	{TrendTutorial, func(v *model.VideoRecord) bool {
		return rules.ContainsAny(v.Title, []string{"how to"}) || rules.ContainsAny(v.Description, []string{"how to"})
	}},
	{TrendTransformation, func(v *model.VideoRecord) bool {
		return beforeAfter(v.Title) || beforeAfter(v.Description)
	}},
}

// EngagementDetectors run in emission order; EngagementDefaults always follow.
var EngagementDetectors = []Detector{
	{TacticQuestions, func(v *model.VideoRecord) bool {
		return strings.Contains(v.Title, "?") || strings.Contains(v.Description, "?")
	}},
	{TacticExplicitCTA, func(v *model.VideoRecord) bool { return rules.ContainsAny(v.Description, CTAWords) }},
}

// ThemeRules are keyword pairs scanned against title and description.
var ThemeRules = rules.Table[string]{
	{Keywords: []string{"habit", "productivity"}, Value: ThemeProductivity},
	{Keywords: []string{"tech", "phone"}, Value: ThemeTechnology},
	{Keywords: []string{"health", "diet"}, Value: ThemeHealth},
}

var (
	FormatDefaults     = []string{TrendStructure, TrendEditing}
	EngagementDefaults = []string{TacticOpenLoops, TacticTagFriends, TacticControversial}
	ThemeDefaults      = []string{ThemeLifeHacks, ThemeBehindTheScenes}
)

// isQuestionHook matches a title ending in "?" or a question in the first
// sentence of the description.
func isQuestionHook(v *model.VideoRecord) bool {
	if strings.HasSuffix(strings.TrimSpace(v.Title), "?") {
		return true
	}
	first, _, _ := strings.Cut(v.Description, ".")
	return strings.Contains(first, "?")
}

// hasNumberToken matches 1 through 10 as a standalone title token.
func hasNumberToken(v *model.VideoRecord) bool {
	for _, tok := range rules.Tokens(v.Title) {
		for _, n := range NumberTokens {
			if tok == n {
				return true
			}
		}
	}
	return false
}

// isPersonalStory matches "I" as a whole word in the title or in the first
// five words of the description.
func isPersonalStory(v *model.VideoRecord) bool {
	for _, tok := range rules.Tokens(v.Title) {
		if tok == "I" {
			return true
		}
	}
	words := strings.Fields(v.Description)
	if len(words) > 5 {
		words = words[:5]
	}
	for _, w := range words {
		if rules.TrimPunct(w) == "I" {
			return true
		}
	}
	return false
}

func beforeAfter(s string) bool {
	lower := strings.ToLower(s)
	return strings.Contains(lower, "before") && strings.Contains(lower, "after")
}
